package store

import (
	"context"

	"github.com/gocql/gocql"

	"oudora_back_end/internal/database"
)

// ProductStore covers the product operations the review flow needs:
// existence checks and the derived rating aggregate. Catalog CRUD is
// handled directly by the product handlers.
type ProductStore struct{}

func NewProductStore() *ProductStore {
	return &ProductStore{}
}

func (s *ProductStore) Exists(ctx context.Context, id gocql.UUID) (bool, error) {
	session, err := database.GetCatalogSession()
	if err != nil {
		return false, err
	}

	var found gocql.UUID
	err = session.Query(`SELECT product_id FROM products WHERE product_id = ?`, id).
		WithContext(ctx).Scan(&found)
	if err == gocql.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// UpdateRating writes the recomputed review aggregate onto the product.
func (s *ProductStore) UpdateRating(ctx context.Context, id gocql.UUID, rating float64, count int) error {
	session, err := database.GetCatalogSession()
	if err != nil {
		return err
	}
	return session.Query(`UPDATE products SET rating = ?, reviews_count = ?, updated_at = toTimestamp(now()) WHERE product_id = ?`,
		rating, count, id).WithContext(ctx).Exec()
}
