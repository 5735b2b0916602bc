package ports

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/seungyeah/tootodo-be/internal/core/domain"
)

// TaskStore owns task records in the document store.
type TaskStore interface {
	Get(ctx context.Context, id primitive.ObjectID) (domain.Task, error)
	// ChildrenOf returns the direct subtasks ordered by creation time.
	ChildrenOf(ctx context.Context, parentID primitive.ObjectID) ([]domain.Task, error)
	ListRoots(ctx context.Context, userID uuid.UUID) ([]domain.Task, error)
	Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	Update(ctx context.Context, id primitive.ObjectID, input domain.UpdateTaskInput) (domain.Task, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	// DetachChildren clears parent_id on every direct subtask.
	DetachChildren(ctx context.Context, parentID primitive.ObjectID) error
}

type PropertyStore interface {
	Get(ctx context.Context, id primitive.ObjectID) (domain.Property, error)
	// ListForTask returns properties in insertion order.
	ListForTask(ctx context.Context, taskID primitive.ObjectID) ([]domain.Property, error)
	Create(ctx context.Context, input domain.CreatePropertyInput) (domain.Property, error)
	Update(ctx context.Context, id primitive.ObjectID, input domain.UpdatePropertyInput) (domain.Property, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteForTask(ctx context.Context, taskID primitive.ObjectID) error
}

type BlockStore interface {
	// ListForTask returns blocks ordered by their persisted sequence.
	ListForTask(ctx context.Context, taskID primitive.ObjectID) ([]domain.Block, error)
	DeleteForTask(ctx context.Context, taskID primitive.ObjectID) error
}

type ChatStore interface {
	// GetForTask returns nil when the task has no thread.
	GetForTask(ctx context.Context, taskID primitive.ObjectID) (*domain.ChatThread, error)
}

// CategoryStore reads category metadata from the relational store.
type CategoryStore interface {
	Get(ctx context.Context, id uuid.UUID) (domain.Category, error)
}

type TaskService interface {
	GetTask(ctx context.Context, taskID primitive.ObjectID, userID uuid.UUID, depth int) (domain.TaskView, error)
	ListRootTasks(ctx context.Context, userID uuid.UUID) ([]domain.Task, error)
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, taskID primitive.ObjectID, userID uuid.UUID, input domain.UpdateTaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, taskID primitive.ObjectID, userID uuid.UUID) error
}

type PropertyService interface {
	CreateProperty(ctx context.Context, userID uuid.UUID, input domain.CreatePropertyInput) (domain.Property, error)
	UpdateProperty(ctx context.Context, propertyID primitive.ObjectID, userID uuid.UUID, input domain.UpdatePropertyInput) (domain.Property, error)
	DeleteProperty(ctx context.Context, propertyID primitive.ObjectID, userID uuid.UUID) error
}
