package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ChatType string

const (
	ChatTypeTask ChatType = "task"
	ChatTypeAsk  ChatType = "ask"
)

type Message struct {
	ID        primitive.ObjectID
	Sender    string
	Content   string
	CreatedAt time.Time
}

// ChatThread is the optional discussion attached to a task. A task
// without a thread is a normal state, not a fault.
type ChatThread struct {
	Type     ChatType
	Messages []Message
}
