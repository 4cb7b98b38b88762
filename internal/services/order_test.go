package services

import (
	"context"
	"errors"
	"testing"

	"github.com/gocql/gocql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"oudora_back_end/internal/models"
)

type mockOrderStore struct {
	mock.Mock
}

func (m *mockOrderStore) Insert(ctx context.Context, o *models.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
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

func validInput() OrderInput {
	return OrderInput{
		Items: []models.OrderItem{
			{Name: "Royal Oud 50ml", Price: 4500, Quantity: 1},
		},
		CustomerName:  "Ayesha Khan",
		CustomerEmail: "ayesha@example.com",
		CustomerPhone: "+92 300 1234567",
		ShippingAddress: models.ShippingAddress{
			Address: "12 Mall Road",
			City:    "Lahore",
			State:   "Punjab",
			ZipCode: "54000",
			Country: "Pakistan",
		},
		Total: 4500,
	}
}

func TestPlaceOrderSuccess(t *testing.T) {
	store := new(mockOrderStore)
	mailer := new(mockMailer)
	svc := NewOrderService(store, mailer)

	store.On("Insert", mock.Anything, mock.AnythingOfType("*models.Order")).Return(nil).Once()
	mailer.On("SendInvoice", mock.AnythingOfType("*models.Order")).Return(nil).Once()
	mailer.On("SendAdminAlert", mock.AnythingOfType("*models.Order")).Return(nil).Once()

	order, err := svc.PlaceOrder(context.Background(), validInput())
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "Ayesha Khan", order.CustomerName)
	assert.Equal(t, "+92 300 1234567", order.CustomerPhone)
	assert.Equal(t, "Royal Oud 50ml", order.Items[0].Name)
	assert.Equal(t, 4500.0, order.Total)
	// Defaults fill in when the client omits them.
	assert.Equal(t, "cash_on_delivery", order.PaymentMethod)
	assert.Equal(t, 4500.0, order.Subtotal)
	assert.Zero(t, order.Tax)

	store.AssertExpectations(t)
	mailer.AssertExpectations(t)
	store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestPlaceOrderInvoiceEmailFailureRollsBack(t *testing.T) {
	store := new(mockOrderStore)
	mailer := new(mockMailer)
	svc := NewOrderService(store, mailer)

	store.On("Insert", mock.Anything, mock.Anything).Return(nil).Once()
	mailer.On("SendInvoice", mock.Anything).Return(errors.New("smtp down")).Once()
	store.On("Delete", mock.Anything, mock.AnythingOfType("gocql.UUID")).Return(nil).Once()

	order, err := svc.PlaceOrder(context.Background(), validInput())
	require.Error(t, err)
	assert.Nil(t, order)
	assert.False(t, IsValidationError(err))
	assert.Equal(t, "Failed to send invoice email. Order was not created. Please check your email configuration and try again.", err.Error())

	store.AssertExpectations(t)
	mailer.AssertNotCalled(t, "SendAdminAlert", mock.Anything)
}

func TestPlaceOrderAdminEmailFailureRollsBack(t *testing.T) {
	store := new(mockOrderStore)
	mailer := new(mockMailer)
	svc := NewOrderService(store, mailer)

	store.On("Insert", mock.Anything, mock.Anything).Return(nil).Once()
	mailer.On("SendInvoice", mock.Anything).Return(nil).Once()
	mailer.On("SendAdminAlert", mock.Anything).Return(errors.New("admin inbox rejected")).Once()
	store.On("Delete", mock.Anything, mock.AnythingOfType("gocql.UUID")).Return(nil).Once()

	order, err := svc.PlaceOrder(context.Background(), validInput())
	require.Error(t, err)
	assert.Nil(t, order)
	assert.Equal(t, "Failed to send admin notification email. Order was not created. Please check your ADMIN_EMAIL configuration and try again.", err.Error())

	store.AssertExpectations(t)
	mailer.AssertExpectations(t)
}

func TestPlaceOrderRollbackDeleteFailureIsSwallowed(t *testing.T) {
	store := new(mockOrderStore)
	mailer := new(mockMailer)
	svc := NewOrderService(store, mailer)

	store.On("Insert", mock.Anything, mock.Anything).Return(nil).Once()
	mailer.On("SendInvoice", mock.Anything).Return(errors.New("smtp down")).Once()
	store.On("Delete", mock.Anything, mock.Anything).Return(errors.New("scylla timeout")).Once()

	_, err := svc.PlaceOrder(context.Background(), validInput())
	require.Error(t, err)
	// The caller still sees the email failure, not the delete failure.
	assert.Equal(t, "Failed to send invoice email. Order was not created. Please check your email configuration and try again.", err.Error())

	store.AssertExpectations(t)
}

func TestPlaceOrderPersistFailure(t *testing.T) {
	store := new(mockOrderStore)
	mailer := new(mockMailer)
	svc := NewOrderService(store, mailer)

	store.On("Insert", mock.Anything, mock.Anything).Return(errors.New("scylla down")).Once()

	order, err := svc.PlaceOrder(context.Background(), validInput())
	require.Error(t, err)
	assert.Nil(t, order)
	assert.Equal(t, "Server error: Failed to create order. Please try again.", err.Error())

	mailer.AssertNotCalled(t, "SendInvoice", mock.Anything)
	store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestPlaceOrderValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*OrderInput)
		wantErr string
	}{
		{
			name:    "no items",
			mutate:  func(in *OrderInput) { in.Items = nil },
			wantErr: "Order items are required",
		},
		{
			name:    "missing name",
			mutate:  func(in *OrderInput) { in.CustomerName = "" },
			wantErr: "Missing required fields (name, email, phone, address, total)",
		},
		{
			name:    "blank phone",
			mutate:  func(in *OrderInput) { in.CustomerPhone = "   " },
			wantErr: "Missing required fields (name, email, phone, address, total)",
		},
		{
			name:    "empty address",
			mutate:  func(in *OrderInput) { in.ShippingAddress = models.ShippingAddress{} },
			wantErr: "Missing required fields (name, email, phone, address, total)",
		},
		{
			name:    "partial structured address",
			mutate:  func(in *OrderInput) { in.ShippingAddress.ZipCode = "" },
			wantErr: "Complete shipping address is required (address, city, state, zipCode, country)",
		},
		{
			name:    "bad email",
			mutate:  func(in *OrderInput) { in.CustomerEmail = "not-an-email" },
			wantErr: "Invalid email format",
		},
		{
			name:    "bad phone",
			mutate:  func(in *OrderInput) { in.CustomerPhone = "call me maybe" },
			wantErr: "Invalid phone number format",
		},
		{
			name:    "negative total",
			mutate:  func(in *OrderInput) { in.Total = -10 },
			wantErr: "Invalid total amount",
		},
		{
			name:    "item without name",
			mutate:  func(in *OrderInput) { in.Items[0].Name = "" },
			wantErr: "All items must have name, price, and quantity",
		},
		{
			name:    "negative item price",
			mutate:  func(in *OrderInput) { in.Items[0].Price = -5 },
			wantErr: "Invalid item price",
		},
		{
			name:    "negative item quantity",
			mutate:  func(in *OrderInput) { in.Items[0].Quantity = -1 },
			wantErr: "Invalid item quantity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(mockOrderStore)
			mailer := new(mockMailer)
			svc := NewOrderService(store, mailer)

			input := validInput()
			tt.mutate(&input)

			order, err := svc.PlaceOrder(context.Background(), input)
			require.Error(t, err)
			assert.Nil(t, order)
			assert.True(t, IsValidationError(err))
			assert.Equal(t, tt.wantErr, err.Error())

			store.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
		})
	}
}

func TestPlaceOrderFreeformAddress(t *testing.T) {
	store := new(mockOrderStore)
	mailer := new(mockMailer)
	svc := NewOrderService(store, mailer)

	store.On("Insert", mock.Anything, mock.Anything).Return(nil).Once()
	mailer.On("SendInvoice", mock.Anything).Return(nil).Once()
	mailer.On("SendAdminAlert", mock.Anything).Return(nil).Once()

	input := validInput()
	input.ShippingAddress = models.ShippingAddress{Freeform: "12 Mall Road, Lahore"}

	order, err := svc.PlaceOrder(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "12 Mall Road, Lahore", order.ShippingAddress.Freeform)
}
