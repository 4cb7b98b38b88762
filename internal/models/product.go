package models

import (
	"time"

	"github.com/gocql/gocql"
)

type Product struct {
	ID             gocql.UUID `json:"id" db:"product_id"`
	Name           string     `json:"name" db:"name"`
	Description    string     `json:"description" db:"description"`
	Price          float64    `json:"price" db:"price"`
	Image          string     `json:"image" db:"image"`
	Images         []string   `json:"images" db:"images"`
	Category       string     `json:"category" db:"category"`
	FragranceType  string     `json:"fragranceType" db:"fragrance_type"`
	FragranceNotes []string   `json:"fragranceNotes" db:"fragrance_notes"`
	Rating         float64    `json:"rating" db:"rating"`             // derived from reviews
	ReviewsCount   int        `json:"reviewsCount" db:"reviews_count"` // derived from reviews
	InStock        bool       `json:"inStock" db:"in_stock"`
	Size           string     `json:"size" db:"size"`
	Discount       float64    `json:"discount" db:"discount"` // percent, 0-100
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time  `json:"updatedAt" db:"updated_at"`
}
