package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BlockKind string

const (
	BlockKindParagraph BlockKind = "paragraph"
	BlockKindHeading   BlockKind = "heading"
	BlockKindTodo      BlockKind = "todo"
)

// Block is one ordered content fragment of a task. Seq is the display
// position and must round-trip through storage.
type Block struct {
	ID        primitive.ObjectID
	TaskID    primitive.ObjectID
	Kind      BlockKind
	Content   string
	Seq       int
	CreatedAt time.Time
	UpdatedAt time.Time
}
