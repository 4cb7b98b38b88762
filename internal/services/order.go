package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gocql/gocql"

	"oudora_back_end/internal/models"
	"oudora_back_end/internal/utils"
)

// OrderStore is the slice of the persistence layer the placement flow
// needs: one write and the compensating delete.
type OrderStore interface {
	Insert(ctx context.Context, o *models.Order) error
	Delete(ctx context.Context, id gocql.UUID) error
}

// OrderService runs the order placement sequence: validate, persist,
// notify customer, notify admin. Either email leg failing removes the
// persisted order again — the system never keeps an order the customer
// or the operator was not told about.
type OrderService struct {
	Store  OrderStore
	Mailer Mailer
}

func NewOrderService(store OrderStore, mailer Mailer) *OrderService {
	return &OrderService{Store: store, Mailer: mailer}
}

// ValidationError marks a rejected submission; handlers answer 400.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func invalid(msg string) error { return &ValidationError{msg: msg} }

func IsValidationError(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

type OrderInput struct {
	Items           []models.OrderItem     `json:"items"`
	CustomerName    string                 `json:"customerName"`
	CustomerEmail   string                 `json:"customerEmail"`
	CustomerPhone   string                 `json:"customerPhone"`
	ShippingAddress models.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string                 `json:"paymentMethod"`
	Subtotal        float64                `json:"subtotal"`
	Tax             float64                `json:"tax"`
	Total           float64                `json:"total"`
}

// Validate checks the whole submission before anything is written.
// Fail closed on the first violation; no partial persistence.
func (in *OrderInput) Validate() error {
	if len(in.Items) == 0 {
		return invalid("Order items are required")
	}

	if in.CustomerName == "" || in.CustomerEmail == "" ||
		strings.TrimSpace(in.CustomerPhone) == "" ||
		in.ShippingAddress.IsEmpty() || in.Total == 0 {
		return invalid("Missing required fields (name, email, phone, address, total)")
	}

	if in.ShippingAddress.IsStructured() {
		a := in.ShippingAddress
		if a.Address == "" || a.City == "" || a.State == "" || a.ZipCode == "" || a.Country == "" {
			return invalid("Complete shipping address is required (address, city, state, zipCode, country)")
		}
	}

	if !utils.IsValidEmail(in.CustomerEmail) {
		return invalid("Invalid email format")
	}

	if !utils.IsValidPhone(in.CustomerPhone) {
		return invalid("Invalid phone number format")
	}

	if in.Total <= 0 {
		return invalid("Invalid total amount")
	}

	for _, item := range in.Items {
		if item.Name == "" || item.Price == 0 || item.Quantity == 0 {
			return invalid("All items must have name, price, and quantity")
		}
		if item.Price <= 0 {
			return invalid("Invalid item price")
		}
		if item.Quantity <= 0 {
			return invalid("Invalid item quantity")
		}
	}

	return nil
}

// PlaceOrder is the only multi-step write in the system. Persisting
// the order is the single state change before notification; every later
// failure compensates with a best-effort delete. There is no
// idempotency key, so a client retry after a response timeout can
// create a duplicate order.
func (s *OrderService) PlaceOrder(ctx context.Context, input OrderInput) (*models.Order, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	subtotal := input.Subtotal
	if subtotal <= 0 {
		subtotal = input.Total
	}
	paymentMethod := input.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "cash_on_delivery"
	}

	now := time.Now()
	order := &models.Order{
		ID:              gocql.TimeUUID(),
		Items:           input.Items,
		CustomerName:    input.CustomerName,
		CustomerEmail:   input.CustomerEmail,
		CustomerPhone:   strings.TrimSpace(input.CustomerPhone),
		ShippingAddress: input.ShippingAddress,
		PaymentMethod:   paymentMethod,
		Subtotal:        subtotal,
		Tax:             input.Tax,
		Total:           input.Total,
		Status:          models.OrderStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.Store.Insert(ctx, order); err != nil {
		log.Printf("❌ Order persist failed: %v", err)
		return nil, errors.New("Server error: Failed to create order. Please try again.")
	}

	if err := s.Mailer.SendInvoice(order); err != nil {
		s.rollback(ctx, order.ID, "customer email", err)
		return nil, errors.New("Failed to send invoice email. Order was not created. Please check your email configuration and try again.")
	}

	if err := s.Mailer.SendAdminAlert(order); err != nil {
		s.rollback(ctx, order.ID, "admin email", err)
		return nil, errors.New("Failed to send admin notification email. Order was not created. Please check your ADMIN_EMAIL configuration and try again.")
	}

	log.Printf("✅ Order %s placed for %s (%d items, Rs %.2f)",
		order.ID, order.CustomerEmail, len(order.Items), order.Total)
	return order, nil
}

// rollback removes the just-created order. The delete itself is
// best-effort: a failure here is logged, not retried.
func (s *OrderService) rollback(ctx context.Context, id gocql.UUID, stage string, cause error) {
	log.Printf("❌ Order creation failed - %s error: %v", stage, cause)
	if err := s.Store.Delete(ctx, id); err != nil {
		log.Printf("⚠️ Error deleting order %s after failure: %v", id, err)
	}
}
