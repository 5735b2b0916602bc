package domain

import "github.com/google/uuid"

// Category lives in the relational store and is referenced by tasks
// across the store boundary.
type Category struct {
	ID    uuid.UUID
	Name  string
	Color string
}
