package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/seungyeah/tootodo-be/internal/core/domain"
	"github.com/seungyeah/tootodo-be/internal/core/ports"
)

const blockCollection = "blocks"

type BlockRepository struct {
	collection *mongo.Collection
}

type blockDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	TaskID    primitive.ObjectID `bson:"task_id"`
	Kind      string             `bson:"kind"`
	Content   string             `bson:"content"`
	Seq       int                `bson:"seq"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

var _ ports.BlockStore = (*BlockRepository)(nil)

func NewBlockRepository(db *mongo.Database) *BlockRepository {
	return &BlockRepository{collection: db.Collection(blockCollection)}
}

// ListForTask returns blocks in display order; seq is the persisted
// sequence and must round-trip untouched.
func (r *BlockRepository) ListForTask(ctx context.Context, taskID primitive.ObjectID) ([]domain.Block, error) {
	var docs []blockDoc
	err := withRetry(ctx, func() error {
		cursor, err := r.collection.Find(ctx, bson.M{"task_id": taskID},
			options.Find().SetSort(bson.D{{Key: "seq", Value: 1}}))
		if err != nil {
			return err
		}
		docs = docs[:0]
		return cursor.All(ctx, &docs)
	})
	if err != nil {
		return nil, err
	}

	blocks := make([]domain.Block, 0, len(docs))
	for _, doc := range docs {
		blocks = append(blocks, domain.Block{
			ID:        doc.ID,
			TaskID:    doc.TaskID,
			Kind:      domain.BlockKind(doc.Kind),
			Content:   doc.Content,
			Seq:       doc.Seq,
			CreatedAt: doc.CreatedAt,
			UpdatedAt: doc.UpdatedAt,
		})
	}
	return blocks, nil
}

func (r *BlockRepository) DeleteForTask(ctx context.Context, taskID primitive.ObjectID) error {
	return withRetry(ctx, func() error {
		_, err := r.collection.DeleteMany(ctx, bson.M{"task_id": taskID})
		return err
	})
}
