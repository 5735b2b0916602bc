package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/seungyeah/tootodo-be/internal/core/domain"
	"github.com/seungyeah/tootodo-be/internal/core/ports"
)

// DefaultDepth expands one level of subtasks.
const DefaultDepth = 1

// AggregateBuilder assembles the full read model for one task by joining
// the document store (task, properties, blocks, chat) with the relational
// store (category). It performs reads only, so an abandoned build leaves
// no state behind.
type AggregateBuilder struct {
	tasks      ports.TaskStore
	properties ports.PropertyStore
	blocks     ports.BlockStore
	chats      ports.ChatStore
	categories ports.CategoryStore
}

func NewAggregateBuilder(
	tasks ports.TaskStore,
	properties ports.PropertyStore,
	blocks ports.BlockStore,
	chats ports.ChatStore,
	categories ports.CategoryStore,
) *AggregateBuilder {
	return &AggregateBuilder{
		tasks:      tasks,
		properties: properties,
		blocks:     blocks,
		chats:      chats,
		categories: categories,
	}
}

// Build produces the task view for taskID. Ownership is enforced here: a
// task belonging to another user is indistinguishable from a missing one.
// The root fetch and the category fetch are fatal; properties, blocks,
// chat and subtasks degrade per item.
//
// depth bounds subtask recursion. At depth 0 direct subtasks are returned
// as identity refs only.
func (b *AggregateBuilder) Build(ctx context.Context, taskID primitive.ObjectID, userID uuid.UUID, depth int) (domain.TaskView, error) {
	task, err := b.tasks.Get(ctx, taskID)
	if err != nil {
		return domain.TaskView{}, err
	}
	if task.UserID != userID {
		return domain.TaskView{}, domain.ErrTaskNotFound
	}

	// The five child fetches have no ordering dependency; dispatch them
	// together and join before assembly.
	var (
		wg sync.WaitGroup

		category    domain.Category
		categoryErr error

		properties []domain.Property
		propsErr   error

		blocks    []domain.Block
		blocksErr error

		chat    *domain.ChatThread
		chatErr error

		children    []domain.Task
		childrenErr error
	)

	wg.Add(5)
	go func() {
		defer wg.Done()
		category, categoryErr = b.categories.Get(ctx, task.CategoryID)
	}()
	go func() {
		defer wg.Done()
		properties, propsErr = b.properties.ListForTask(ctx, taskID)
	}()
	go func() {
		defer wg.Done()
		blocks, blocksErr = b.blocks.ListForTask(ctx, taskID)
	}()
	go func() {
		defer wg.Done()
		chat, chatErr = b.chats.GetForTask(ctx, taskID)
	}()
	go func() {
		defer wg.Done()
		children, childrenErr = b.tasks.ChildrenOf(ctx, taskID)
	}()
	wg.Wait()

	// A category that no longer resolves is a cross-store integrity
	// fault and fails the whole build.
	if categoryErr != nil {
		return domain.TaskView{}, categoryErr
	}

	view := domain.TaskView{
		Task:       task,
		Category:   category,
		Properties: make([]domain.Property, 0, len(properties)),
		Blocks:     make([]domain.Block, 0, len(blocks)),
		Chat:       chat,
	}

	if propsErr != nil {
		zap.L().Warn("property fetch degraded", zap.String("task_id", taskID.Hex()), zap.Error(propsErr))
	}
	for _, p := range properties {
		view.Properties = append(view.Properties, b.checkProperty(&view, p))
	}

	if blocksErr != nil {
		zap.L().Warn("block fetch degraded", zap.String("task_id", taskID.Hex()), zap.Error(blocksErr))
	}
	view.Blocks = append(view.Blocks, blocks...)

	if chatErr != nil {
		zap.L().Warn("chat fetch degraded", zap.String("task_id", taskID.Hex()), zap.Error(chatErr))
		view.Chat = nil
	}

	if childrenErr != nil {
		zap.L().Warn("subtask fetch degraded", zap.String("task_id", taskID.Hex()), zap.Error(childrenErr))
		return view, nil
	}

	b.expandChildren(ctx, &view, children, userID, depth)
	return view, nil
}

// checkProperty re-validates a stored property against its declared type.
// A corrupt value is stripped and recorded so the caller can render that
// one field as unavailable.
func (b *AggregateBuilder) checkProperty(view *domain.TaskView, p domain.Property) domain.Property {
	if p.Value == nil {
		return p
	}
	if err := domain.ValidateValue(p.Type, *p.Value, p.Options); err != nil {
		view.PropertyIssues = append(view.PropertyIssues, domain.CorruptProperty{
			PropertyID: p.ID.Hex(),
			Name:       p.Name,
			Reason:     err.Error(),
		})
		p.Value = nil
	}
	return p
}

// expandChildren fills Subtasks (depth > 0) or SubtaskRefs (depth == 0).
// Child builds run concurrently; a failed child degrades to a ref so one
// bad subtask cannot sink its parent.
func (b *AggregateBuilder) expandChildren(ctx context.Context, view *domain.TaskView, children []domain.Task, userID uuid.UUID, depth int) {
	if len(children) == 0 {
		return
	}

	if depth <= 0 {
		view.SubtaskRefs = make([]domain.SubtaskRef, 0, len(children))
		for _, child := range children {
			view.SubtaskRefs = append(view.SubtaskRefs, domain.SubtaskRef{ID: child.ID, Title: child.Title})
		}
		return
	}

	type childResult struct {
		view domain.TaskView
		err  error
	}

	results := make([]childResult, len(children))
	var wg sync.WaitGroup
	wg.Add(len(children))
	for i, child := range children {
		go func(i int, child domain.Task) {
			defer wg.Done()
			v, err := b.Build(ctx, child.ID, userID, depth-1)
			results[i] = childResult{view: v, err: err}
		}(i, child)
	}
	wg.Wait()

	view.Subtasks = make([]domain.TaskView, 0, len(children))
	for i, res := range results {
		if res.err != nil {
			zap.L().Warn("subtask build degraded",
				zap.String("task_id", view.Task.ID.Hex()),
				zap.String("subtask_id", children[i].ID.Hex()),
				zap.Error(res.err))
			view.SubtaskRefs = append(view.SubtaskRefs, domain.SubtaskRef{
				ID:    children[i].ID,
				Title: children[i].Title,
			})
			continue
		}
		view.Subtasks = append(view.Subtasks, res.view)
	}
}
