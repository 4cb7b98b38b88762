package models

import (
	"time"

	"github.com/gocql/gocql"
)

type Category struct {
	ID          gocql.UUID `json:"id" db:"category_id"`
	Name        string     `json:"name" db:"name"`
	Description string     `json:"description" db:"description"`
	Image       string     `json:"image" db:"image"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
}

type FragranceType struct {
	ID          gocql.UUID `json:"id" db:"type_id"`
	Name        string     `json:"name" db:"name"`
	Description string     `json:"description" db:"description"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
}
