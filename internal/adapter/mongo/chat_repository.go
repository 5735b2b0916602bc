package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/seungyeah/tootodo-be/internal/core/domain"
	"github.com/seungyeah/tootodo-be/internal/core/ports"
)

const chatCollection = "chats"

type ChatRepository struct {
	collection *mongo.Collection
}

type chatDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	TaskID   primitive.ObjectID `bson:"task_id"`
	Type     string             `bson:"type"`
	Messages []messageDoc       `bson:"messages"`
}

type messageDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Sender    string             `bson:"sender"`
	Content   string             `bson:"content"`
	CreatedAt time.Time          `bson:"createdAt"`
}

var _ ports.ChatStore = (*ChatRepository)(nil)

func NewChatRepository(db *mongo.Database) *ChatRepository {
	return &ChatRepository{collection: db.Collection(chatCollection)}
}

// GetForTask returns the task's thread, or nil when none exists; a task
// without a thread is a normal state.
func (r *ChatRepository) GetForTask(ctx context.Context, taskID primitive.ObjectID) (*domain.ChatThread, error) {
	var doc chatDoc
	err := withRetry(ctx, func() error {
		return r.collection.FindOne(ctx, bson.M{"task_id": taskID}).Decode(&doc)
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	messages := make([]domain.Message, 0, len(doc.Messages))
	for _, m := range doc.Messages {
		messages = append(messages, domain.Message{
			ID:        m.ID,
			Sender:    m.Sender,
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		})
	}

	return &domain.ChatThread{
		Type:     domain.ChatType(doc.Type),
		Messages: messages,
	}, nil
}
