package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/gocql/gocql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oudora_back_end/internal/models"
)

func invoiceOrder() *models.Order {
	return &models.Order{
		ID: gocql.TimeUUID(),
		Items: []models.OrderItem{
			{Name: "Royal Oud 50ml", Price: 4500, Quantity: 2},
			{Name: "Rose Mukhallat 30ml", Price: 3200, Quantity: 1},
		},
		CustomerName:  "Ayesha Khan",
		CustomerEmail: "ayesha@example.com",
		CustomerPhone: "+923001234567",
		ShippingAddress: models.ShippingAddress{
			Address: "12 Mall Road", City: "Lahore", State: "Punjab",
			ZipCode: "54000", Country: "Pakistan",
		},
		PaymentMethod: "cash_on_delivery",
		Subtotal:      12200,
		Total:         12200,
		Status:        models.OrderStatusPending,
		CreatedAt:     time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
	}
}

func TestInvoiceEmailHTML(t *testing.T) {
	order := invoiceOrder()
	trackURL := TrackingURL(order.ID.String())

	html, err := InvoiceEmailHTML(order, trackURL, "")
	require.NoError(t, err)

	assert.Contains(t, html, "Oudora")
	assert.Contains(t, html, order.ID.String())
	assert.Contains(t, html, "Royal Oud 50ml")
	assert.Contains(t, html, "Rs 4500.00")
	// Line total multiplies price by quantity.
	assert.Contains(t, html, "Rs 9000.00")
	assert.Contains(t, html, "Rs 12200.00")
	assert.Contains(t, html, trackURL)
	assert.Contains(t, html, "12 Mall Road, Lahore, Punjab 54000, Pakistan")
}

func TestTrackingURL(t *testing.T) {
	t.Setenv("FRONTEND_URL", "https://oudora.example")
	assert.Equal(t, "https://oudora.example/track-order?orderId=abc-123", TrackingURL("abc-123"))
}

func TestTrackingQRIsDataURI(t *testing.T) {
	qr, err := TrackingQR("https://oudora.example/track-order?orderId=abc")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(qr, "data:image/png;base64,"))
}

func TestAdminAlertHTML(t *testing.T) {
	order := invoiceOrder()

	html, err := AdminAlertHTML(order)
	require.NoError(t, err)

	assert.Contains(t, html, "Ayesha Khan")
	assert.Contains(t, html, "ayesha@example.com")
	assert.Contains(t, html, "Rs 12200.00")
}

func TestContactEmailHTML(t *testing.T) {
	html, err := ContactEmailHTML("Bilal", "bilal@example.com", "Do you ship to Karachi?")
	require.NoError(t, err)

	assert.Contains(t, html, "Bilal")
	assert.Contains(t, html, "bilal@example.com")
	assert.Contains(t, html, "Do you ship to Karachi?")
}
