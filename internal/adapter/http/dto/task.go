package dto

import "encoding/json"

// TaskView is the aggregate response. Its field set is stable: collection
// fields serialize even when empty, only genuinely optional fields are
// omitted. Depth-limited children marshal by identity only.
type TaskView struct {
	ID        string  `json:"id"`
	User      string  `json:"user"`
	Title     string  `json:"title"`
	StartDate *string `json:"start_date,omitempty"`
	DueAt     *string `json:"due_at,omitempty"`

	CategoryID    string `json:"category_id"`
	CategoryColor string `json:"category_color"`
	CategoryName  string `json:"category_name"`

	Properties     []PropertyItem  `json:"properties"`
	PropertyIssues []PropertyIssue `json:"property_issues,omitempty"`

	Blocks []BlockItem `json:"blocks"`

	Subtasks []TaskView `json:"subtasks"`
	ParentID *string    `json:"parent_id,omitempty"`

	ChatType     string        `json:"chat_type"`
	ChatMessages []MessageItem `json:"chat_messages,omitempty"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`

	// Stub marks a child that was not expanded; it serializes as id and
	// title only.
	Stub bool `json:"-"`
}

type expandedTaskView TaskView

func (v TaskView) MarshalJSON() ([]byte, error) {
	if v.Stub {
		return json.Marshal(struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		}{ID: v.ID, Title: v.Title})
	}
	return json.Marshal(expandedTaskView(v))
}

type TaskItem struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	StartDate  *string `json:"start_date,omitempty"`
	DueAt      *string `json:"due_at,omitempty"`
	CategoryID string  `json:"category_id"`
	ParentID   *string `json:"parent_id,omitempty"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

type BlockItem struct {
	ID      string `json:"id"`
	Kind    string `json:"kind"`
	Content string `json:"content"`
	Seq     int    `json:"seq"`
}

type MessageItem struct {
	ID        string `json:"id"`
	Sender    string `json:"sender"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

type CreateTaskRequest struct {
	Title      string  `json:"title" binding:"required,max=255"`
	StartDate  *string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	DueAt      *string `json:"due_at" binding:"omitempty"`
	CategoryID string  `json:"category_id" binding:"required,uuid"`
	ParentID   *string `json:"parent_id" binding:"omitempty,len=24"`
}

type UpdateTaskRequest struct {
	Title      *string `json:"title" binding:"omitempty,max=255"`
	StartDate  *string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	DueAt      *string `json:"due_at" binding:"omitempty"`
	CategoryID *string `json:"category_id" binding:"omitempty,uuid"`
	ParentID   *string `json:"parent_id" binding:"omitempty,len=24"`
}
