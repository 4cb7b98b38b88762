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

// CategoryStore is the persistence seam for the category taxonomy.
type CategoryStore interface {
	List(ctx context.Context) ([]models.Category, error)
	Insert(ctx context.Context, c *models.Category) error
	GetByID(ctx context.Context, id gocql.UUID) (*models.Category, error)
	Update(ctx context.Context, c *models.Category) error
	DeleteByName(ctx context.Context, name string) error
}

type CategoryHandler struct {
	Store CategoryStore
}

func NewCategoryHandler(s CategoryStore) *CategoryHandler {
	return &CategoryHandler{Store: s}
}

var defaultCategories = []models.Category{
	{Name: "Woody", Description: "Rich oud, sandalwood, and amber scents", Image: "/images/1.png"},
	{Name: "Floral", Description: "Delicate roses, jasmine, and gardenia", Image: "/images/2.png"},
	{Name: "Fresh", Description: "Crisp citrus and aquatic notes", Image: "/images/3.png"},
}

// List returns every category, seeding the defaults on an empty table
// so a fresh deployment has something to show.
func (h *CategoryHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var cached []models.Category
	if cache.GetList(ctx, cache.CategoriesKey, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	categories, err := h.Store.List(ctx)
	if err != nil {
		log.Println("❌ Category list failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	if len(categories) == 0 {
		for _, d := range defaultCategories {
			d.ID = gocql.TimeUUID()
			d.CreatedAt = time.Now()
			if err := h.Store.Insert(ctx, &d); err != nil {
				log.Println("⚠️ Category seed failed:", err)
			}
		}
		categories, err = h.Store.List(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}
	}

	cache.SetList(ctx, cache.CategoriesKey, categories)
	c.JSON(http.StatusOK, categories)
}

type categoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// Create adds a category and answers with the full list, which is what
// the admin panel re-renders from.
func (h *CategoryHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var input categoryInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category name is required"})
		return
	}

	category := models.Category{
		ID:          gocql.TimeUUID(),
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Image:       input.Image,
		CreatedAt:   time.Now(),
	}

	if err := h.Store.Insert(ctx, &category); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Category already exists"})
			return
		}
		log.Println("❌ Category insert failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	cache.Invalidate(ctx, cache.CategoriesKey)

	categories, err := h.Store.List(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusCreated, categories)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID format"})
		return
	}

	var input categoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	existing, err := h.Store.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	if input.Name != "" {
		existing.Name = strings.TrimSpace(input.Name)
	}
	existing.Description = strings.TrimSpace(input.Description)
	existing.Image = input.Image

	if err := h.Store.Update(ctx, existing); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Category name already exists"})
			return
		}
		log.Println("❌ Category update failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	cache.Invalidate(ctx, cache.CategoriesKey)
	c.JSON(http.StatusOK, existing)
}

// Delete removes a category by name, matching how the admin panel
// identifies categories.
func (h *CategoryHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	err := h.Store.DeleteByName(ctx, c.Param("name"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	if err != nil {
		log.Println("❌ Category delete failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	cache.Invalidate(ctx, cache.CategoriesKey)
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
