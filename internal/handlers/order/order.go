// Package order serves order placement, tracking and the back-office
// order management routes.
package order

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"oudora_back_end/internal/models"
	"oudora_back_end/internal/services"
	"oudora_back_end/internal/store"
)

// OrderReader covers the read and admin-mutation paths; placement goes
// through the OrderService.
type OrderReader interface {
	GetByID(ctx context.Context, id gocql.UUID) (*models.Order, error)
	List(ctx context.Context) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id gocql.UUID, status string) (*models.Order, error)
	Delete(ctx context.Context, id gocql.UUID) error
}

type OrderHandler struct {
	Service *services.OrderService
	Store   OrderReader
}

func NewOrderHandler(service *services.OrderService, s OrderReader) *OrderHandler {
	return &OrderHandler{Service: service, Store: s}
}

// Create places an order. Validation failures come back as 400 with
// the specific message; anything after validation is a 500.
func (h *OrderHandler) Create(c *gin.Context) {
	var input services.OrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	order, err := h.Service.PlaceOrder(c.Request.Context(), input)
	if err != nil {
		if services.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, order)
}

// List returns every order, newest first.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.Store.List(c.Request.Context())
	if err != nil {
		log.Println("❌ Order list failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	if orders == nil {
		orders = []models.Order{}
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) Get(c *gin.Context) {
	h.serveOrder(c)
}

// Track is the public lookup behind the emailed tracking link. Knowing
// the order id is the access control.
func (h *OrderHandler) Track(c *gin.Context) {
	h.serveOrder(c)
}

func (h *OrderHandler) serveOrder(c *gin.Context) {
	id, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	order, err := h.Store.GetByID(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if err != nil {
		log.Println("❌ Order fetch failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, order)
}

// UpdateStatus moves an order to any of the five statuses. There is no
// transition table; the back office may also move an order backward.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || !models.ValidOrderStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid status is required"})
		return
	}

	order, err := h.Store.UpdateStatus(c.Request.Context(), id, input.Status)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if err != nil {
		log.Println("❌ Order status update failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Delete(c *gin.Context) {
	id, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if _, err := h.Store.GetByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	if err := h.Store.Delete(c.Request.Context(), id); err != nil {
		log.Println("❌ Order delete failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}
