package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/gocql/gocql"

	"oudora_back_end/internal/database"
	"oudora_back_end/internal/models"
)

// OrderStore persists orders in the orders keyspace. Items and the
// shipping address are stored as JSON text columns.
type OrderStore struct{}

func NewOrderStore() *OrderStore {
	return &OrderStore{}
}

func (s *OrderStore) Insert(ctx context.Context, o *models.Order) error {
	session, err := database.GetOrdersSession()
	if err != nil {
		return err
	}

	itemsJSON, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("encode items: %v", err)
	}
	addressJSON, err := json.Marshal(o.ShippingAddress)
	if err != nil {
		return fmt.Errorf("encode shipping address: %v", err)
	}

	return session.Query(`INSERT INTO orders (order_id, items, customer_name, customer_email, customer_phone, shipping_address, payment_method, subtotal, tax, total, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		o.ID, string(itemsJSON), o.CustomerName, o.CustomerEmail, o.CustomerPhone,
		string(addressJSON), o.PaymentMethod, o.Subtotal, o.Tax, o.Total,
		o.Status, o.CreatedAt, o.UpdatedAt).WithContext(ctx).Exec()
}

func (s *OrderStore) GetByID(ctx context.Context, id gocql.UUID) (*models.Order, error) {
	session, err := database.GetOrdersSession()
	if err != nil {
		return nil, err
	}

	var (
		o           models.Order
		itemsJSON   string
		addressJSON string
	)
	err = session.Query(`SELECT order_id, items, customer_name, customer_email, customer_phone, shipping_address, payment_method, subtotal, tax, total, status, created_at, updated_at
		FROM orders WHERE order_id = ?`, id).WithContext(ctx).Scan(
		&o.ID, &itemsJSON, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone,
		&addressJSON, &o.PaymentMethod, &o.Subtotal, &o.Tax, &o.Total,
		&o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err == gocql.ErrNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(itemsJSON), &o.Items); err != nil {
		return nil, fmt.Errorf("decode items: %v", err)
	}
	if err := json.Unmarshal([]byte(addressJSON), &o.ShippingAddress); err != nil {
		return nil, fmt.Errorf("decode shipping address: %v", err)
	}
	return &o, nil
}

// List returns every order, newest first.
func (s *OrderStore) List(ctx context.Context) ([]models.Order, error) {
	session, err := database.GetOrdersSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT order_id, items, customer_name, customer_email, customer_phone, shipping_address, payment_method, subtotal, tax, total, status, created_at, updated_at
		FROM orders`).WithContext(ctx).Iter()

	var (
		orders      []models.Order
		o           models.Order
		itemsJSON   string
		addressJSON string
	)
	for iter.Scan(&o.ID, &itemsJSON, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone,
		&addressJSON, &o.PaymentMethod, &o.Subtotal, &o.Tax, &o.Total,
		&o.Status, &o.CreatedAt, &o.UpdatedAt) {
		if json.Unmarshal([]byte(itemsJSON), &o.Items) == nil &&
			json.Unmarshal([]byte(addressJSON), &o.ShippingAddress) == nil {
			orders = append(orders, o)
		}
		o = models.Order{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (s *OrderStore) UpdateStatus(ctx context.Context, id gocql.UUID, status string) (*models.Order, error) {
	order, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	session, err := database.GetOrdersSession()
	if err != nil {
		return nil, err
	}
	if err := session.Query(`UPDATE orders SET status = ?, updated_at = toTimestamp(now()) WHERE order_id = ?`,
		status, id).WithContext(ctx).Exec(); err != nil {
		return nil, err
	}
	order.Status = status
	return order, nil
}

func (s *OrderStore) Delete(ctx context.Context, id gocql.UUID) error {
	session, err := database.GetOrdersSession()
	if err != nil {
		return err
	}
	return session.Query(`DELETE FROM orders WHERE order_id = ?`, id).WithContext(ctx).Exec()
}
