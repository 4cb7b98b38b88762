// Package review serves product reviews. Every mutation recomputes the
// parent product's rating aggregate.
package review

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"oudora_back_end/internal/models"
	"oudora_back_end/internal/store"
)

type ReviewStore interface {
	Insert(ctx context.Context, r *models.Review) error
	GetByID(ctx context.Context, id gocql.UUID) (*models.Review, error)
	ListByProduct(ctx context.Context, productID gocql.UUID) ([]models.Review, error)
	ListAll(ctx context.Context) ([]models.Review, error)
	Update(ctx context.Context, r *models.Review) error
	Delete(ctx context.Context, r *models.Review) error
}

type ProductChecker interface {
	Exists(ctx context.Context, id gocql.UUID) (bool, error)
}

type Recomputer interface {
	Recompute(ctx context.Context, productID gocql.UUID) error
}

type ReviewHandler struct {
	Reviews  ReviewStore
	Products ProductChecker
	Ratings  Recomputer
}

func NewReviewHandler(reviews ReviewStore, products ProductChecker, ratings Recomputer) *ReviewHandler {
	return &ReviewHandler{Reviews: reviews, Products: products, Ratings: ratings}
}

// List returns reviews newest first, optionally scoped to a product.
func (h *ReviewHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		reviews []models.Review
		err     error
	)
	if pid := c.Query("productId"); pid != "" {
		productID, parseErr := gocql.ParseUUID(pid)
		if parseErr != nil {
			// Match the listing contract: an unknown product has no reviews.
			c.JSON(http.StatusOK, []models.Review{})
			return
		}
		reviews, err = h.Reviews.ListByProduct(ctx, productID)
	} else {
		reviews, err = h.Reviews.ListAll(ctx)
	}
	if err != nil {
		log.Println("❌ Review list failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	if reviews == nil {
		reviews = []models.Review{}
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) Get(c *gin.Context) {
	id, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}

	review, err := h.Reviews.GetByID(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, review)
}

type reviewInput struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

// Create accepts a public review submission and refreshes the
// product's rating aggregate.
func (h *ReviewHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var input reviewInput
	if err := c.ShouldBindJSON(&input); err != nil ||
		input.ProductID == "" || input.Name == "" || input.Email == "" ||
		input.Rating == 0 || input.Comment == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	if input.Rating < 1 || input.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 1 and 5"})
		return
	}

	productID, err := gocql.ParseUUID(input.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID format"})
		return
	}

	exists, err := h.Products.Exists(ctx, productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	review := models.Review{
		ID:        gocql.TimeUUID(),
		ProductID: productID,
		Name:      input.Name,
		Email:     input.Email,
		Rating:    input.Rating,
		Comment:   input.Comment,
		Date:      time.Now(),
	}

	if err := h.Reviews.Insert(ctx, &review); err != nil {
		log.Println("❌ Review insert failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	if err := h.Ratings.Recompute(ctx, productID); err != nil {
		log.Println("⚠️ Rating recompute failed:", err)
	}

	c.JSON(http.StatusCreated, review)
}

func (h *ReviewHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}

	var input reviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	review, err := h.Reviews.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	if input.Name != "" {
		review.Name = input.Name
	}
	if input.Email != "" {
		review.Email = input.Email
	}
	if input.Comment != "" {
		review.Comment = input.Comment
	}
	if input.Rating != 0 {
		if input.Rating < 1 || input.Rating > 5 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 1 and 5"})
			return
		}
		review.Rating = input.Rating
	}

	if err := h.Reviews.Update(ctx, review); err != nil {
		log.Println("❌ Review update failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	if err := h.Ratings.Recompute(ctx, review.ProductID); err != nil {
		log.Println("⚠️ Rating recompute failed:", err)
	}

	c.JSON(http.StatusOK, review)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}

	review, err := h.Reviews.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	if err := h.Reviews.Delete(ctx, review); err != nil {
		log.Println("❌ Review delete failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	if err := h.Ratings.Recompute(ctx, review.ProductID); err != nil {
		log.Println("⚠️ Rating recompute failed:", err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}
