package mapper

import (
	"time"

	"github.com/seungyeah/tootodo-be/internal/adapter/http/dto"
	"github.com/seungyeah/tootodo-be/internal/core/domain"
)

func ToTaskView(view domain.TaskView) dto.TaskView {
	task := view.Task

	item := dto.TaskView{
		ID:            task.ID.Hex(),
		User:          task.UserID.String(),
		Title:         task.Title,
		CategoryID:    view.Category.ID.String(),
		CategoryColor: view.Category.Color,
		CategoryName:  view.Category.Name,
		CreatedAt:     task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     task.UpdatedAt.Format(time.RFC3339),
	}

	if task.StartDate != nil {
		value := *task.StartDate
		item.StartDate = &value
	}

	if task.DueAt != nil {
		value := task.DueAt.Format(time.RFC3339)
		item.DueAt = &value
	}

	if task.ParentID != nil {
		value := task.ParentID.Hex()
		item.ParentID = &value
	}

	// Collection fields always serialize, as [] when empty.
	item.Properties = ToPropertyItems(view.Properties)
	item.Blocks = make([]dto.BlockItem, 0, len(view.Blocks))
	item.Subtasks = make([]dto.TaskView, 0, len(view.Subtasks)+len(view.SubtaskRefs))

	for _, issue := range view.PropertyIssues {
		item.PropertyIssues = append(item.PropertyIssues, dto.PropertyIssue{
			PropertyID: issue.PropertyID,
			Name:       issue.Name,
			Reason:     issue.Reason,
		})
	}

	for _, block := range view.Blocks {
		item.Blocks = append(item.Blocks, dto.BlockItem{
			ID:      block.ID.Hex(),
			Kind:    string(block.Kind),
			Content: block.Content,
			Seq:     block.Seq,
		})
	}

	if view.Chat != nil {
		item.ChatType = string(view.Chat.Type)
		for _, msg := range view.Chat.Messages {
			item.ChatMessages = append(item.ChatMessages, dto.MessageItem{
				ID:        msg.ID.Hex(),
				Sender:    msg.Sender,
				Content:   msg.Content,
				CreatedAt: msg.CreatedAt.Format(time.RFC3339),
			})
		}
	}

	for _, sub := range view.Subtasks {
		item.Subtasks = append(item.Subtasks, ToTaskView(sub))
	}
	// Depth-limited children appear by identity only.
	for _, ref := range view.SubtaskRefs {
		item.Subtasks = append(item.Subtasks, dto.TaskView{
			ID:    ref.ID.Hex(),
			Title: ref.Title,
			Stub:  true,
		})
	}

	return item
}

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:         task.ID.Hex(),
		Title:      task.Title,
		CategoryID: task.CategoryID.String(),
		CreatedAt:  task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  task.UpdatedAt.Format(time.RFC3339),
	}

	if task.StartDate != nil {
		value := *task.StartDate
		item.StartDate = &value
	}

	if task.DueAt != nil {
		value := task.DueAt.Format(time.RFC3339)
		item.DueAt = &value
	}

	if task.ParentID != nil {
		value := task.ParentID.Hex()
		item.ParentID = &value
	}

	return item
}
