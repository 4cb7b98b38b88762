package services

import (
	"context"
	"log"
	"math"

	"github.com/gocql/gocql"

	"oudora_back_end/internal/models"
)

type ReviewLister interface {
	ListByProduct(ctx context.Context, productID gocql.UUID) ([]models.Review, error)
}

type RatingUpdater interface {
	UpdateRating(ctx context.Context, id gocql.UUID, rating float64, count int) error
}

// RatingService keeps a product's rating/reviewsCount equal to the
// aggregate of its live review set. The whole set is reloaded and the
// mean recomputed from scratch on every review mutation — O(n) per
// mutation, which is fine at review volume.
type RatingService struct {
	Reviews  ReviewLister
	Products RatingUpdater
}

func NewRatingService(reviews ReviewLister, products RatingUpdater) *RatingService {
	return &RatingService{Reviews: reviews, Products: products}
}

// AverageRating returns the mean review rating rounded to 1 decimal,
// or 0 for an empty set.
func AverageRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum int
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := float64(sum) / float64(len(reviews))
	return math.Round(avg*10) / 10
}

// Recompute reloads the product's reviews and writes the fresh
// aggregate. Deleting the last review resets the product to 0/0.
// Concurrent review writes on the same product can race and leave a
// rating computed from a stale set; that window is accepted.
func (s *RatingService) Recompute(ctx context.Context, productID gocql.UUID) error {
	reviews, err := s.Reviews.ListByProduct(ctx, productID)
	if err != nil {
		return err
	}

	rating := AverageRating(reviews)
	if err := s.Products.UpdateRating(ctx, productID, rating, len(reviews)); err != nil {
		return err
	}

	log.Printf("⭐ Product %s rating recomputed: %.1f (%d reviews)", productID, rating, len(reviews))
	return nil
}
