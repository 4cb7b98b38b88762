package models

import (
	"time"

	"github.com/gocql/gocql"
)

type Testimonial struct {
	ID        gocql.UUID `json:"id" db:"testimonial_id"`
	Name      string     `json:"name" db:"name"`
	Rating    int        `json:"rating" db:"rating"` // 1-5
	Comment   string     `json:"comment" db:"comment"`
	Location  string     `json:"location" db:"location"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
}
