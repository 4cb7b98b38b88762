package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gocql/gocql"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// ValidOrderStatus reports whether s is one of the five order statuses.
// There is deliberately no transition table: admins may move an order to
// any status, including backward.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type OrderItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// ShippingAddress accepts either a free-text string or a structured
// address on the wire. Exactly one form is populated.
type ShippingAddress struct {
	Freeform string
	Address  string
	City     string
	State    string
	ZipCode  string
	Country  string
}

type structuredAddress struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

func (a *ShippingAddress) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &a.Freeform)
	}
	var s structuredAddress
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	a.Address = s.Address
	a.City = s.City
	a.State = s.State
	a.ZipCode = s.ZipCode
	a.Country = s.Country
	return nil
}

func (a ShippingAddress) MarshalJSON() ([]byte, error) {
	if a.Freeform != "" {
		return json.Marshal(a.Freeform)
	}
	return json.Marshal(structuredAddress{
		Address: a.Address,
		City:    a.City,
		State:   a.State,
		ZipCode: a.ZipCode,
		Country: a.Country,
	})
}

func (a ShippingAddress) IsStructured() bool {
	return a.Freeform == ""
}

func (a ShippingAddress) IsEmpty() bool {
	return a.Freeform == "" && a.Address == "" && a.City == "" &&
		a.State == "" && a.ZipCode == "" && a.Country == ""
}

// String renders the address on a single line for emails.
func (a ShippingAddress) String() string {
	if !a.IsStructured() {
		return a.Freeform
	}
	return fmt.Sprintf("%s, %s, %s %s, %s", a.Address, a.City, a.State, a.ZipCode, a.Country)
}

type Order struct {
	ID              gocql.UUID      `json:"id" db:"order_id"`
	Items           []OrderItem     `json:"items" db:"items"`
	CustomerName    string          `json:"customerName" db:"customer_name"`
	CustomerEmail   string          `json:"customerEmail" db:"customer_email"`
	CustomerPhone   string          `json:"customerPhone" db:"customer_phone"`
	ShippingAddress ShippingAddress `json:"shippingAddress" db:"shipping_address"`
	PaymentMethod   string          `json:"paymentMethod" db:"payment_method"`
	Subtotal        float64         `json:"subtotal" db:"subtotal"`
	Tax             float64         `json:"tax" db:"tax"`
	Total           float64         `json:"total" db:"total"`
	Status          string          `json:"status" db:"status"`
	CreatedAt       time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time       `json:"updatedAt" db:"updated_at"`
}
