package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/seungyeah/tootodo-be/internal/app/service"
	"github.com/seungyeah/tootodo-be/internal/core/domain"
)

type builderFixture struct {
	tasks      *taskStoreMock
	properties *propertyStoreMock
	blocks     *blockStoreMock
	chats      *chatStoreMock
	categories *categoryStoreMock
	builder    *service.AggregateBuilder
}

func newBuilderFixture() *builderFixture {
	f := &builderFixture{
		tasks:      new(taskStoreMock),
		properties: new(propertyStoreMock),
		blocks:     new(blockStoreMock),
		chats:      new(chatStoreMock),
		categories: new(categoryStoreMock),
	}
	f.builder = service.NewAggregateBuilder(f.tasks, f.properties, f.blocks, f.chats, f.categories)
	return f
}

// expectLeafTask registers every fetch for a task with no owned children.
func (f *builderFixture) expectLeafTask(task domain.Task) {
	f.tasks.On("Get", mock.Anything, task.ID).Return(task, nil)
	f.properties.On("ListForTask", mock.Anything, task.ID).Return(nil, nil)
	f.blocks.On("ListForTask", mock.Anything, task.ID).Return(nil, nil)
	f.chats.On("GetForTask", mock.Anything, task.ID).Return(nil, nil)
	f.tasks.On("ChildrenOf", mock.Anything, task.ID).Return(nil, nil)
}

func newTask(userID uuid.UUID, categoryID uuid.UUID, title string) domain.Task {
	now := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	return domain.Task{
		ID:         primitive.NewObjectID(),
		UserID:     userID,
		Title:      title,
		CategoryID: categoryID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestBuild_EmptyTask(t *testing.T) {
	userID := uuid.New()
	category := domain.Category{ID: uuid.New(), Name: "Work", Color: "#0b7285"}
	task := newTask(userID, category.ID, "empty task")

	f := newBuilderFixture()
	f.expectLeafTask(task)
	f.categories.On("Get", mock.Anything, category.ID).Return(category, nil)

	view, err := f.builder.Build(context.Background(), task.ID, userID, service.DefaultDepth)
	require.NoError(t, err)

	require.Equal(t, task.ID, view.Task.ID)
	require.Equal(t, category, view.Category)
	require.Empty(t, view.Properties)
	require.Empty(t, view.PropertyIssues)
	require.Empty(t, view.Blocks)
	require.Nil(t, view.Chat)
	require.Empty(t, view.Subtasks)
	require.Empty(t, view.SubtaskRefs)
}

func TestBuild_OwnerMismatch(t *testing.T) {
	owner := uuid.New()
	categoryID := uuid.New()
	task := newTask(owner, categoryID, "private task")

	f := newBuilderFixture()
	f.tasks.On("Get", mock.Anything, task.ID).Return(task, nil)

	_, err := f.builder.Build(context.Background(), task.ID, uuid.New(), service.DefaultDepth)
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestBuild_DanglingCategory(t *testing.T) {
	userID := uuid.New()
	categoryID := uuid.New()
	task := newTask(userID, categoryID, "orphaned reference")

	f := newBuilderFixture()
	f.expectLeafTask(task)
	f.categories.On("Get", mock.Anything, categoryID).Return(domain.Category{}, domain.ErrCategoryNotFound)

	_, err := f.builder.Build(context.Background(), task.ID, userID, service.DefaultDepth)
	require.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestBuild_CorruptPropertyCollected(t *testing.T) {
	userID := uuid.New()
	category := domain.Category{ID: uuid.New(), Name: "Home", Color: "#fa5252"}
	task := newTask(userID, category.ID, "task with bad data")

	good := domain.Property{
		ID:     primitive.NewObjectID(),
		TaskID: task.ID,
		Name:   "estimate",
		Type:   domain.PropertyTypeNumber,
	}
	goodValue := domain.NumberValue(3)
	good.Value = &goodValue

	corrupt := domain.Property{
		ID:     primitive.NewObjectID(),
		TaskID: task.ID,
		Name:   "status",
		Type:   domain.PropertyTypeSelect,
	}
	corruptValue := domain.TextValue("stored under the wrong tag")
	corrupt.Value = &corruptValue

	f := newBuilderFixture()
	f.tasks.On("Get", mock.Anything, task.ID).Return(task, nil)
	f.categories.On("Get", mock.Anything, category.ID).Return(category, nil)
	f.properties.On("ListForTask", mock.Anything, task.ID).Return([]domain.Property{good, corrupt}, nil)
	f.blocks.On("ListForTask", mock.Anything, task.ID).Return(nil, nil)
	f.chats.On("GetForTask", mock.Anything, task.ID).Return(nil, nil)
	f.tasks.On("ChildrenOf", mock.Anything, task.ID).Return(nil, nil)

	view, err := f.builder.Build(context.Background(), task.ID, userID, service.DefaultDepth)
	require.NoError(t, err)

	require.Len(t, view.Properties, 2)
	require.Equal(t, "estimate", view.Properties[0].Name)
	require.NotNil(t, view.Properties[0].Value)
	require.Equal(t, "status", view.Properties[1].Name)
	require.Nil(t, view.Properties[1].Value, "corrupt value must be stripped")

	require.Len(t, view.PropertyIssues, 1)
	require.Equal(t, corrupt.ID.Hex(), view.PropertyIssues[0].PropertyID)
	require.Equal(t, "status", view.PropertyIssues[0].Name)
}

func TestBuild_BlockOrderPreserved(t *testing.T) {
	userID := uuid.New()
	category := domain.Category{ID: uuid.New(), Name: "Notes", Color: "#e8590c"}
	task := newTask(userID, category.ID, "ordered content")

	blocks := []domain.Block{
		{ID: primitive.NewObjectID(), TaskID: task.ID, Kind: domain.BlockKindHeading, Content: "Plan", Seq: 0},
		{ID: primitive.NewObjectID(), TaskID: task.ID, Kind: domain.BlockKindParagraph, Content: "First step", Seq: 1},
		{ID: primitive.NewObjectID(), TaskID: task.ID, Kind: domain.BlockKindTodo, Content: "Ship it", Seq: 2},
	}

	f := newBuilderFixture()
	f.tasks.On("Get", mock.Anything, task.ID).Return(task, nil)
	f.categories.On("Get", mock.Anything, category.ID).Return(category, nil)
	f.properties.On("ListForTask", mock.Anything, task.ID).Return(nil, nil)
	f.blocks.On("ListForTask", mock.Anything, task.ID).Return(blocks, nil)
	f.chats.On("GetForTask", mock.Anything, task.ID).Return(nil, nil)
	f.tasks.On("ChildrenOf", mock.Anything, task.ID).Return(nil, nil)

	view, err := f.builder.Build(context.Background(), task.ID, userID, service.DefaultDepth)
	require.NoError(t, err)

	require.Len(t, view.Blocks, 3)
	for i, block := range view.Blocks {
		require.Equal(t, i, block.Seq)
	}
}

func TestBuild_DepthZeroReturnsRefs(t *testing.T) {
	userID := uuid.New()
	category := domain.Category{ID: uuid.New(), Name: "Work", Color: "#1864ab"}
	parent := newTask(userID, category.ID, "parent")

	childA := newTask(userID, category.ID, "child a")
	childA.ParentID = &parent.ID
	childB := newTask(userID, category.ID, "child b")
	childB.ParentID = &parent.ID

	f := newBuilderFixture()
	f.tasks.On("Get", mock.Anything, parent.ID).Return(parent, nil)
	f.categories.On("Get", mock.Anything, category.ID).Return(category, nil)
	f.properties.On("ListForTask", mock.Anything, parent.ID).Return(nil, nil)
	f.blocks.On("ListForTask", mock.Anything, parent.ID).Return(nil, nil)
	f.chats.On("GetForTask", mock.Anything, parent.ID).Return(nil, nil)
	f.tasks.On("ChildrenOf", mock.Anything, parent.ID).Return([]domain.Task{childA, childB}, nil)

	view, err := f.builder.Build(context.Background(), parent.ID, userID, 0)
	require.NoError(t, err)

	require.Empty(t, view.Subtasks)
	require.Len(t, view.SubtaskRefs, 2)
	require.Equal(t, childA.ID, view.SubtaskRefs[0].ID)
	require.Equal(t, "child a", view.SubtaskRefs[0].Title)
	require.Equal(t, childB.ID, view.SubtaskRefs[1].ID)

	// Identity refs must not trigger child expansion.
	f.tasks.AssertNotCalled(t, "Get", mock.Anything, childA.ID)
	f.tasks.AssertNotCalled(t, "Get", mock.Anything, childB.ID)
}

func TestBuild_DepthTwoExpandsTwoLevels(t *testing.T) {
	userID := uuid.New()
	category := domain.Category{ID: uuid.New(), Name: "Deep", Color: "#5f3dc4"}

	root := newTask(userID, category.ID, "root")
	level1 := newTask(userID, category.ID, "level 1")
	level1.ParentID = &root.ID
	level2 := newTask(userID, category.ID, "level 2")
	level2.ParentID = &level1.ID
	level3 := newTask(userID, category.ID, "level 3")
	level3.ParentID = &level2.ID

	f := newBuilderFixture()
	f.categories.On("Get", mock.Anything, category.ID).Return(category, nil)

	for _, task := range []domain.Task{root, level1, level2} {
		f.tasks.On("Get", mock.Anything, task.ID).Return(task, nil)
		f.properties.On("ListForTask", mock.Anything, task.ID).Return(nil, nil)
		f.blocks.On("ListForTask", mock.Anything, task.ID).Return(nil, nil)
		f.chats.On("GetForTask", mock.Anything, task.ID).Return(nil, nil)
	}
	f.tasks.On("ChildrenOf", mock.Anything, root.ID).Return([]domain.Task{level1}, nil)
	f.tasks.On("ChildrenOf", mock.Anything, level1.ID).Return([]domain.Task{level2}, nil)
	f.tasks.On("ChildrenOf", mock.Anything, level2.ID).Return([]domain.Task{level3}, nil)

	view, err := f.builder.Build(context.Background(), root.ID, userID, 2)
	require.NoError(t, err)

	require.Len(t, view.Subtasks, 1)
	first := view.Subtasks[0]
	require.Equal(t, level1.ID, first.Task.ID)

	require.Len(t, first.Subtasks, 1)
	second := first.Subtasks[0]
	require.Equal(t, level2.ID, second.Task.ID)

	// The third level sits past the depth limit: identity only.
	require.Empty(t, second.Subtasks)
	require.Len(t, second.SubtaskRefs, 1)
	require.Equal(t, level3.ID, second.SubtaskRefs[0].ID)
	f.tasks.AssertNotCalled(t, "Get", mock.Anything, level3.ID)
}

func TestBuild_SubtaskFailureDegradesToRef(t *testing.T) {
	userID := uuid.New()
	category := domain.Category{ID: uuid.New(), Name: "Flaky", Color: "#862e9c"}
	parent := newTask(userID, category.ID, "parent")
	child := newTask(userID, category.ID, "broken child")
	child.ParentID = &parent.ID

	f := newBuilderFixture()
	f.tasks.On("Get", mock.Anything, parent.ID).Return(parent, nil)
	f.tasks.On("Get", mock.Anything, child.ID).Return(domain.Task{}, errors.New("socket reset"))
	f.categories.On("Get", mock.Anything, category.ID).Return(category, nil)
	f.properties.On("ListForTask", mock.Anything, parent.ID).Return(nil, nil)
	f.blocks.On("ListForTask", mock.Anything, parent.ID).Return(nil, nil)
	f.chats.On("GetForTask", mock.Anything, parent.ID).Return(nil, nil)
	f.tasks.On("ChildrenOf", mock.Anything, parent.ID).Return([]domain.Task{child}, nil)

	view, err := f.builder.Build(context.Background(), parent.ID, userID, 1)
	require.NoError(t, err)

	require.Empty(t, view.Subtasks)
	require.Len(t, view.SubtaskRefs, 1)
	require.Equal(t, child.ID, view.SubtaskRefs[0].ID)
}

func TestBuild_ChatThreadResolved(t *testing.T) {
	userID := uuid.New()
	category := domain.Category{ID: uuid.New(), Name: "Chatty", Color: "#087f5b"}
	task := newTask(userID, category.ID, "discussed task")

	thread := &domain.ChatThread{
		Type: domain.ChatTypeAsk,
		Messages: []domain.Message{
			{ID: primitive.NewObjectID(), Sender: "me", Content: "how long will this take?"},
		},
	}

	f := newBuilderFixture()
	f.tasks.On("Get", mock.Anything, task.ID).Return(task, nil)
	f.categories.On("Get", mock.Anything, category.ID).Return(category, nil)
	f.properties.On("ListForTask", mock.Anything, task.ID).Return(nil, nil)
	f.blocks.On("ListForTask", mock.Anything, task.ID).Return(nil, nil)
	f.chats.On("GetForTask", mock.Anything, task.ID).Return(thread, nil)
	f.tasks.On("ChildrenOf", mock.Anything, task.ID).Return(nil, nil)

	view, err := f.builder.Build(context.Background(), task.ID, userID, service.DefaultDepth)
	require.NoError(t, err)

	require.NotNil(t, view.Chat)
	require.Equal(t, domain.ChatTypeAsk, view.Chat.Type)
	require.Len(t, view.Chat.Messages, 1)
}
