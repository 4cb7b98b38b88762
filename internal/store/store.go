// Package store holds the ScyllaDB persistence for entities whose
// handlers need a seam for testing: orders, reviews, product rating
// aggregates and the taxonomy tables with unique names. Plain catalog
// CRUD queries ScyllaDB directly from the handlers.
package store

import "errors"

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("already exists")
)
