package store

import (
	"context"
	"sort"

	"github.com/gocql/gocql"

	"oudora_back_end/internal/database"
	"oudora_back_end/internal/models"
)

// ReviewStore persists reviews in the catalog keyspace. Rows are
// written to both the reviews table and the reviews_by_product index.
type ReviewStore struct{}

func NewReviewStore() *ReviewStore {
	return &ReviewStore{}
}

func (s *ReviewStore) Insert(ctx context.Context, r *models.Review) error {
	session, err := database.GetCatalogSession()
	if err != nil {
		return err
	}

	if err := session.Query(`INSERT INTO reviews (review_id, product_id, name, email, rating, comment, date)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.ProductID, r.Name, r.Email, r.Rating, r.Comment, r.Date).WithContext(ctx).Exec(); err != nil {
		return err
	}

	return session.Query(`INSERT INTO reviews_by_product (product_id, review_id, name, email, rating, comment, date)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ProductID, r.ID, r.Name, r.Email, r.Rating, r.Comment, r.Date).WithContext(ctx).Exec()
}

func (s *ReviewStore) GetByID(ctx context.Context, id gocql.UUID) (*models.Review, error) {
	session, err := database.GetCatalogSession()
	if err != nil {
		return nil, err
	}

	var r models.Review
	err = session.Query(`SELECT review_id, product_id, name, email, rating, comment, date
		FROM reviews WHERE review_id = ?`, id).WithContext(ctx).Scan(
		&r.ID, &r.ProductID, &r.Name, &r.Email, &r.Rating, &r.Comment, &r.Date)
	if err == gocql.ErrNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// ListByProduct returns all reviews for a product, newest first.
func (s *ReviewStore) ListByProduct(ctx context.Context, productID gocql.UUID) ([]models.Review, error) {
	session, err := database.GetCatalogSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT review_id, name, email, rating, comment, date
		FROM reviews_by_product WHERE product_id = ?`, productID).WithContext(ctx).Iter()

	var (
		reviews []models.Review
		r       models.Review
	)
	for iter.Scan(&r.ID, &r.Name, &r.Email, &r.Rating, &r.Comment, &r.Date) {
		r.ProductID = productID
		reviews = append(reviews, r)
		r = models.Review{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}

	sortNewestFirst(reviews)
	return reviews, nil
}

// ListAll returns every review, newest first.
func (s *ReviewStore) ListAll(ctx context.Context) ([]models.Review, error) {
	session, err := database.GetCatalogSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT review_id, product_id, name, email, rating, comment, date
		FROM reviews`).WithContext(ctx).Iter()

	var (
		reviews []models.Review
		r       models.Review
	)
	for iter.Scan(&r.ID, &r.ProductID, &r.Name, &r.Email, &r.Rating, &r.Comment, &r.Date) {
		reviews = append(reviews, r)
		r = models.Review{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}

	sortNewestFirst(reviews)
	return reviews, nil
}

func (s *ReviewStore) Update(ctx context.Context, r *models.Review) error {
	session, err := database.GetCatalogSession()
	if err != nil {
		return err
	}

	if err := session.Query(`UPDATE reviews SET name = ?, email = ?, rating = ?, comment = ? WHERE review_id = ?`,
		r.Name, r.Email, r.Rating, r.Comment, r.ID).WithContext(ctx).Exec(); err != nil {
		return err
	}
	return session.Query(`UPDATE reviews_by_product SET name = ?, email = ?, rating = ?, comment = ? WHERE product_id = ? AND review_id = ?`,
		r.Name, r.Email, r.Rating, r.Comment, r.ProductID, r.ID).WithContext(ctx).Exec()
}

func (s *ReviewStore) Delete(ctx context.Context, r *models.Review) error {
	session, err := database.GetCatalogSession()
	if err != nil {
		return err
	}

	if err := session.Query(`DELETE FROM reviews WHERE review_id = ?`, r.ID).WithContext(ctx).Exec(); err != nil {
		return err
	}
	return session.Query(`DELETE FROM reviews_by_product WHERE product_id = ? AND review_id = ?`,
		r.ProductID, r.ID).WithContext(ctx).Exec()
}

func sortNewestFirst(reviews []models.Review) {
	sort.Slice(reviews, func(i, j int) bool {
		return reviews[i].Date.After(reviews[j].Date)
	})
}
