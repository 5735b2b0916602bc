package service_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/seungyeah/tootodo-be/internal/core/domain"
)

type taskStoreMock struct {
	mock.Mock
}

func (m *taskStoreMock) Get(ctx context.Context, id primitive.ObjectID) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskStoreMock) ChildrenOf(ctx context.Context, parentID primitive.ObjectID) ([]domain.Task, error) {
	args := m.Called(ctx, parentID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskStoreMock) ListRoots(ctx context.Context, userID uuid.UUID) ([]domain.Task, error) {
	args := m.Called(ctx, userID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskStoreMock) Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskStoreMock) Update(ctx context.Context, id primitive.ObjectID, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskStoreMock) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *taskStoreMock) DetachChildren(ctx context.Context, parentID primitive.ObjectID) error {
	args := m.Called(ctx, parentID)
	return args.Error(0)
}

type propertyStoreMock struct {
	mock.Mock
}

func (m *propertyStoreMock) Get(ctx context.Context, id primitive.ObjectID) (domain.Property, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Property), args.Error(1)
}

func (m *propertyStoreMock) ListForTask(ctx context.Context, taskID primitive.ObjectID) ([]domain.Property, error) {
	args := m.Called(ctx, taskID)

	var properties []domain.Property
	if value := args.Get(0); value != nil {
		properties = value.([]domain.Property)
	}
	return properties, args.Error(1)
}

func (m *propertyStoreMock) Create(ctx context.Context, input domain.CreatePropertyInput) (domain.Property, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Property), args.Error(1)
}

func (m *propertyStoreMock) Update(ctx context.Context, id primitive.ObjectID, input domain.UpdatePropertyInput) (domain.Property, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(domain.Property), args.Error(1)
}

func (m *propertyStoreMock) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *propertyStoreMock) DeleteForTask(ctx context.Context, taskID primitive.ObjectID) error {
	args := m.Called(ctx, taskID)
	return args.Error(0)
}

type blockStoreMock struct {
	mock.Mock
}

func (m *blockStoreMock) ListForTask(ctx context.Context, taskID primitive.ObjectID) ([]domain.Block, error) {
	args := m.Called(ctx, taskID)

	var blocks []domain.Block
	if value := args.Get(0); value != nil {
		blocks = value.([]domain.Block)
	}
	return blocks, args.Error(1)
}

func (m *blockStoreMock) DeleteForTask(ctx context.Context, taskID primitive.ObjectID) error {
	args := m.Called(ctx, taskID)
	return args.Error(0)
}

type chatStoreMock struct {
	mock.Mock
}

func (m *chatStoreMock) GetForTask(ctx context.Context, taskID primitive.ObjectID) (*domain.ChatThread, error) {
	args := m.Called(ctx, taskID)

	var thread *domain.ChatThread
	if value := args.Get(0); value != nil {
		thread = value.(*domain.ChatThread)
	}
	return thread, args.Error(1)
}

type categoryStoreMock struct {
	mock.Mock
}

func (m *categoryStoreMock) Get(ctx context.Context, id uuid.UUID) (domain.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Category), args.Error(1)
}
