package domain

import (
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Task is the aggregate root. Properties, blocks and the optional chat
// thread are owned by reference; the category is referenced across stores
// and never embedded. ParentID links a subtask to its parent.
type Task struct {
	ID         primitive.ObjectID
	UserID     uuid.UUID
	Title      string
	StartDate  *string // date-only, DateLayout
	DueAt      *time.Time
	CategoryID uuid.UUID
	ParentID   *primitive.ObjectID
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type CreateTaskInput struct {
	UserID     uuid.UUID
	Title      string
	StartDate  *string
	DueAt      *time.Time
	CategoryID uuid.UUID
	ParentID   *primitive.ObjectID
}

// UpdateTaskInput distinguishes absent fields from explicit nulls with the
// Set flags; a null parent_id detaches the task from its parent.
type UpdateTaskInput struct {
	Title        *string
	StartDate    *string
	StartDateSet bool
	DueAt        *time.Time
	DueAtSet     bool
	CategoryID   *uuid.UUID
	ParentID     *primitive.ObjectID
	ParentIDSet  bool
}
