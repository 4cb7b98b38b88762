package models

import (
	"time"

	"github.com/gocql/gocql"
)

// User is an optional stored admin account. The default back-office
// login uses the static ADMIN_EMAIL/ADMIN_PASSWORD credentials instead.
type User struct {
	ID        gocql.UUID `json:"id" db:"user_id"`
	Email     string     `json:"email" db:"email"`
	Password  string     `json:"-" db:"password"` // bcrypt hash
	Role      string     `json:"role" db:"role"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
}
