package service

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/seungyeah/tootodo-be/internal/core/domain"
	"github.com/seungyeah/tootodo-be/internal/core/ports"
)

// maxAncestorWalk bounds the cycle-guard traversal; hierarchies deeper
// than this are rejected as cyclic rather than walked forever.
const maxAncestorWalk = 64

type TaskService struct {
	tasks      ports.TaskStore
	properties ports.PropertyStore
	blocks     ports.BlockStore
	categories ports.CategoryStore
	builder    *AggregateBuilder
}

func NewTaskService(
	tasks ports.TaskStore,
	properties ports.PropertyStore,
	blocks ports.BlockStore,
	categories ports.CategoryStore,
	builder *AggregateBuilder,
) *TaskService {
	return &TaskService{
		tasks:      tasks,
		properties: properties,
		blocks:     blocks,
		categories: categories,
		builder:    builder,
	}
}

var _ ports.TaskService = (*TaskService)(nil)

func (s *TaskService) GetTask(ctx context.Context, taskID primitive.ObjectID, userID uuid.UUID, depth int) (domain.TaskView, error) {
	return s.builder.Build(ctx, taskID, userID, depth)
}

func (s *TaskService) ListRootTasks(ctx context.Context, userID uuid.UUID) ([]domain.Task, error) {
	return s.tasks.ListRoots(ctx, userID)
}

func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	if _, err := s.categories.Get(ctx, input.CategoryID); err != nil {
		return domain.Task{}, err
	}
	if input.ParentID != nil {
		parent, err := s.tasks.Get(ctx, *input.ParentID)
		if err != nil {
			return domain.Task{}, err
		}
		if parent.UserID != input.UserID {
			return domain.Task{}, domain.ErrTaskNotFound
		}
	}
	return s.tasks.Create(ctx, input)
}

func (s *TaskService) UpdateTask(ctx context.Context, taskID primitive.ObjectID, userID uuid.UUID, input domain.UpdateTaskInput) (domain.Task, error) {
	task, err := s.tasks.Get(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}
	if task.UserID != userID {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	if input.CategoryID != nil {
		if _, err := s.categories.Get(ctx, *input.CategoryID); err != nil {
			return domain.Task{}, err
		}
	}

	if input.ParentIDSet && input.ParentID != nil {
		if err := s.guardCycle(ctx, taskID, *input.ParentID, userID); err != nil {
			return domain.Task{}, err
		}
	}

	return s.tasks.Update(ctx, taskID, input)
}

// DeleteTask removes the task with its owned properties and blocks.
// Subtasks are detached, not deleted: they survive as root tasks with no
// parent. Data preservation over cascade.
func (s *TaskService) DeleteTask(ctx context.Context, taskID primitive.ObjectID, userID uuid.UUID) error {
	task, err := s.tasks.Get(ctx, taskID)
	if err != nil {
		return err
	}
	if task.UserID != userID {
		return domain.ErrTaskNotFound
	}

	if err := s.tasks.DetachChildren(ctx, taskID); err != nil {
		return err
	}
	if err := s.properties.DeleteForTask(ctx, taskID); err != nil {
		return err
	}
	if err := s.blocks.DeleteForTask(ctx, taskID); err != nil {
		return err
	}
	return s.tasks.Delete(ctx, taskID)
}

// guardCycle walks the ancestor chain of the proposed parent before the
// reparent commits. Finding taskID in the chain, or exceeding the walk
// bound, rejects the move.
func (s *TaskService) guardCycle(ctx context.Context, taskID, newParentID primitive.ObjectID, userID uuid.UUID) error {
	if newParentID == taskID {
		return domain.ErrHierarchyCycle
	}

	current := newParentID
	for i := 0; i < maxAncestorWalk; i++ {
		ancestor, err := s.tasks.Get(ctx, current)
		if err != nil {
			return err
		}
		if ancestor.UserID != userID {
			return domain.ErrTaskNotFound
		}
		if ancestor.ParentID == nil {
			return nil
		}
		if *ancestor.ParentID == taskID {
			return domain.ErrHierarchyCycle
		}
		current = *ancestor.ParentID
	}
	return domain.ErrHierarchyCycle
}
