package product

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"oudora_back_end/internal/cache"
	"oudora_back_end/internal/models"
	"oudora_back_end/internal/store"
)

// FragranceTypeStore is the persistence seam for the fragrance type
// taxonomy.
type FragranceTypeStore interface {
	List(ctx context.Context) ([]models.FragranceType, error)
	Insert(ctx context.Context, t *models.FragranceType) error
	GetByID(ctx context.Context, id gocql.UUID) (*models.FragranceType, error)
	Update(ctx context.Context, t *models.FragranceType) error
	Delete(ctx context.Context, id gocql.UUID) error
}

type FragranceTypeHandler struct {
	Store FragranceTypeStore
}

func NewFragranceTypeHandler(s FragranceTypeStore) *FragranceTypeHandler {
	return &FragranceTypeHandler{Store: s}
}

var defaultFragranceTypes = []models.FragranceType{
	{Name: "Oriental", Description: "Warm, spicy, and exotic scents"},
	{Name: "Floral", Description: "Delicate flower-based fragrances"},
	{Name: "Floral Oriental", Description: "A blend of floral and oriental notes"},
	{Name: "Woody", Description: "Rich wood and earthy scents"},
	{Name: "Fresh", Description: "Crisp, clean, and invigorating"},
}

// List returns every fragrance type sorted by name, seeding the
// defaults on an empty table.
func (h *FragranceTypeHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var cached []models.FragranceType
	if cache.GetList(ctx, cache.FragranceTypesKey, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	types, err := h.Store.List(ctx)
	if err != nil {
		log.Println("❌ Fragrance type list failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	if len(types) == 0 {
		for _, d := range defaultFragranceTypes {
			d.ID = gocql.TimeUUID()
			d.CreatedAt = time.Now()
			if err := h.Store.Insert(ctx, &d); err != nil {
				log.Println("⚠️ Fragrance type seed failed:", err)
			}
		}
		types, err = h.Store.List(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}
	}

	cache.SetList(ctx, cache.FragranceTypesKey, types)
	c.JSON(http.StatusOK, types)
}

type fragranceTypeInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *FragranceTypeHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var input fragranceTypeInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	t := models.FragranceType{
		ID:          gocql.TimeUUID(),
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		CreatedAt:   time.Now(),
	}

	if err := h.Store.Insert(ctx, &t); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Fragrance type already exists"})
			return
		}
		log.Println("❌ Fragrance type insert failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	cache.Invalidate(ctx, cache.FragranceTypesKey)
	c.JSON(http.StatusCreated, t)
}

func (h *FragranceTypeHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid fragrance type ID format"})
		return
	}

	var input fragranceTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	existing, err := h.Store.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Fragrance type not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	if input.Name != "" {
		existing.Name = strings.TrimSpace(input.Name)
	}
	existing.Description = input.Description

	if err := h.Store.Update(ctx, existing); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Fragrance type already exists"})
			return
		}
		log.Println("❌ Fragrance type update failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	cache.Invalidate(ctx, cache.FragranceTypesKey)
	c.JSON(http.StatusOK, existing)
}

func (h *FragranceTypeHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid fragrance type ID format"})
		return
	}

	err = h.Store.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Fragrance type not found"})
		return
	}
	if err != nil {
		log.Println("❌ Fragrance type delete failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	cache.Invalidate(ctx, cache.FragranceTypesKey)
	c.JSON(http.StatusOK, gin.H{"message": "Fragrance type deleted successfully"})
}
