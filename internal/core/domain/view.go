package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// SubtaskRef identifies a subtask without expanding it. Returned in place
// of full views once the build's depth limit is reached.
type SubtaskRef struct {
	ID    primitive.ObjectID
	Title string
}

// TaskView is the composed read model for one task: the task record
// joined with its category, validated properties, ordered blocks,
// optional chat thread and depth-bounded subtasks.
type TaskView struct {
	Task     Task
	Category Category

	Properties []Property
	// PropertyIssues lists stored properties whose value failed type
	// validation; the rest of the view is still served.
	PropertyIssues []CorruptProperty

	Blocks []Block
	Chat   *ChatThread

	Subtasks    []TaskView
	SubtaskRefs []SubtaskRef
}
