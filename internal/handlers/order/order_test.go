package order

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"oudora_back_end/internal/models"
	"oudora_back_end/internal/services"
	"oudora_back_end/internal/store"
)

type mockOrderStore struct {
	mock.Mock
}

func (m *mockOrderStore) Insert(ctx context.Context, o *models.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *mockOrderStore) GetByID(ctx context.Context, id gocql.UUID) (*models.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *mockOrderStore) List(ctx context.Context) ([]models.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *mockOrderStore) UpdateStatus(ctx context.Context, id gocql.UUID, status string) (*models.Order, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *mockOrderStore) Delete(ctx context.Context, id gocql.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) SendInvoice(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *mockMailer) SendAdminAlert(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *mockMailer) SendContactMessage(name, email, message string) error {
	args := m.Called(name, email, message)
	return args.Error(0)
}

func orderRouter(s *mockOrderStore, m *mockMailer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewOrderHandler(services.NewOrderService(s, m), s)
	r := gin.New()
	r.POST("/api/orders", h.Create)
	r.GET("/api/orders/track/:id", h.Track)
	r.PUT("/api/orders/:id/status", h.UpdateStatus)
	return r
}

func sampleOrder() *models.Order {
	return &models.Order{
		ID: gocql.TimeUUID(),
		Items: []models.OrderItem{
			{Name: "Royal Oud 50ml", Price: 4500, Quantity: 1},
		},
		CustomerName:  "Ayesha Khan",
		CustomerEmail: "ayesha@example.com",
		CustomerPhone: "+923001234567",
		ShippingAddress: models.ShippingAddress{
			Address: "12 Mall Road", City: "Lahore", State: "Punjab",
			ZipCode: "54000", Country: "Pakistan",
		},
		PaymentMethod: "cash_on_delivery",
		Subtotal:      4500,
		Total:         4500,
		Status:        models.OrderStatusPending,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
}

func TestTrackOrder(t *testing.T) {
	s := new(mockOrderStore)
	o := sampleOrder()
	s.On("GetByID", mock.Anything, o.ID).Return(o, nil).Once()

	r := orderRouter(s, new(mockMailer))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/orders/track/"+o.ID.String(), nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, models.OrderStatusPending, got.Status)
	assert.Equal(t, o.Items, got.Items)
	assert.Equal(t, o.ID, got.ID)
}

func TestTrackOrderNotFound(t *testing.T) {
	s := new(mockOrderStore)
	id := gocql.TimeUUID()
	s.On("GetByID", mock.Anything, id).Return(nil, store.ErrNotFound).Once()

	r := orderRouter(s, new(mockMailer))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/orders/track/"+id.String(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Order not found")
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	s := new(mockOrderStore)
	r := orderRouter(s, new(mockMailer))

	body, _ := json.Marshal(gin.H{"status": "teleported"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/orders/"+gocql.TimeUUID().String()+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Valid status is required")
	s.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatus(t *testing.T) {
	s := new(mockOrderStore)
	o := sampleOrder()
	shipped := *o
	shipped.Status = models.OrderStatusShipped
	s.On("UpdateStatus", mock.Anything, o.ID, models.OrderStatusShipped).Return(&shipped, nil).Once()

	r := orderRouter(s, new(mockMailer))

	body, _ := json.Marshal(gin.H{"status": "shipped"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/orders/"+o.ID.String()+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, models.OrderStatusShipped, got.Status)

	s.AssertExpectations(t)
}

func TestCreateOrderValidationFailure(t *testing.T) {
	s := new(mockOrderStore)
	r := orderRouter(s, new(mockMailer))

	body, _ := json.Marshal(gin.H{"items": []gin.H{}})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Order items are required")
	s.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCreateOrderEmailFailureIs500(t *testing.T) {
	s := new(mockOrderStore)
	m := new(mockMailer)
	s.On("Insert", mock.Anything, mock.Anything).Return(nil).Once()
	m.On("SendInvoice", mock.Anything).Return(assert.AnError).Once()
	s.On("Delete", mock.Anything, mock.Anything).Return(nil).Once()

	r := orderRouter(s, m)

	o := sampleOrder()
	body, _ := json.Marshal(services.OrderInput{
		Items:           o.Items,
		CustomerName:    o.CustomerName,
		CustomerEmail:   o.CustomerEmail,
		CustomerPhone:   o.CustomerPhone,
		ShippingAddress: o.ShippingAddress,
		Total:           o.Total,
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Order was not created")
	s.AssertExpectations(t)
}
