package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/seungyeah/tootodo-be/internal/core/domain"
	"github.com/seungyeah/tootodo-be/internal/core/ports"
)

const taskCollection = "tasks"

type TaskRepository struct {
	collection *mongo.Collection
}

type taskDoc struct {
	ID         primitive.ObjectID  `bson:"_id,omitempty"`
	User       string              `bson:"user"`
	Title      string              `bson:"title"`
	StartDate  *string             `bson:"start_date,omitempty"`
	DueAt      *time.Time          `bson:"due_at,omitempty"`
	CategoryID string              `bson:"category_id"`
	ParentID   *primitive.ObjectID `bson:"parent_id,omitempty"`
	CreatedAt  time.Time           `bson:"createdAt"`
	UpdatedAt  time.Time           `bson:"updatedAt"`
}

var _ ports.TaskStore = (*TaskRepository)(nil)

func NewTaskRepository(db *mongo.Database) *TaskRepository {
	return &TaskRepository{collection: db.Collection(taskCollection)}
}

func (r *TaskRepository) Get(ctx context.Context, id primitive.ObjectID) (domain.Task, error) {
	var doc taskDoc
	err := withRetry(ctx, func() error {
		return r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	return mapTaskDoc(doc)
}

func (r *TaskRepository) ChildrenOf(ctx context.Context, parentID primitive.ObjectID) ([]domain.Task, error) {
	return r.find(ctx, bson.M{"parent_id": parentID})
}

func (r *TaskRepository) ListRoots(ctx context.Context, userID uuid.UUID) ([]domain.Task, error) {
	return r.find(ctx, bson.M{
		"user":      userID.String(),
		"parent_id": bson.M{"$exists": false},
	})
}

func (r *TaskRepository) find(ctx context.Context, filter bson.M) ([]domain.Task, error) {
	var docs []taskDoc
	err := withRetry(ctx, func() error {
		cursor, err := r.collection.Find(ctx, filter,
			options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
		if err != nil {
			return err
		}
		docs = docs[:0]
		return cursor.All(ctx, &docs)
	})
	if err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(docs))
	for _, doc := range docs {
		task, err := mapTaskDoc(doc)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func (r *TaskRepository) Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	now := time.Now().UTC()
	doc := taskDoc{
		ID:         primitive.NewObjectID(),
		User:       input.UserID.String(),
		Title:      input.Title,
		StartDate:  input.StartDate,
		DueAt:      input.DueAt,
		CategoryID: input.CategoryID.String(),
		ParentID:   input.ParentID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err := withRetry(ctx, func() error {
		_, err := r.collection.InsertOne(ctx, doc)
		return err
	})
	if err != nil {
		return domain.Task{}, err
	}
	return mapTaskDoc(doc)
}

func (r *TaskRepository) Update(ctx context.Context, id primitive.ObjectID, input domain.UpdateTaskInput) (domain.Task, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	unset := bson.M{}

	if input.Title != nil {
		set["title"] = *input.Title
	}
	if input.StartDateSet {
		if input.StartDate != nil {
			set["start_date"] = *input.StartDate
		} else {
			unset["start_date"] = ""
		}
	}
	if input.DueAtSet {
		if input.DueAt != nil {
			set["due_at"] = *input.DueAt
		} else {
			unset["due_at"] = ""
		}
	}
	if input.CategoryID != nil {
		set["category_id"] = input.CategoryID.String()
	}
	if input.ParentIDSet {
		if input.ParentID != nil {
			set["parent_id"] = *input.ParentID
		} else {
			unset["parent_id"] = ""
		}
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	var doc taskDoc
	err := withRetry(ctx, func() error {
		return r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update,
			options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&doc)
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	return mapTaskDoc(doc)
}

func (r *TaskRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	var deleted int64
	err := withRetry(ctx, func() error {
		res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			return err
		}
		deleted = res.DeletedCount
		return nil
	})
	if err != nil {
		return err
	}
	if deleted == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) DetachChildren(ctx context.Context, parentID primitive.ObjectID) error {
	return withRetry(ctx, func() error {
		_, err := r.collection.UpdateMany(ctx,
			bson.M{"parent_id": parentID},
			bson.M{"$unset": bson.M{"parent_id": ""}})
		return err
	})
}

func mapTaskDoc(doc taskDoc) (domain.Task, error) {
	userID, err := uuid.Parse(doc.User)
	if err != nil {
		return domain.Task{}, err
	}
	categoryID, err := uuid.Parse(doc.CategoryID)
	if err != nil {
		return domain.Task{}, err
	}

	return domain.Task{
		ID:         doc.ID,
		UserID:     userID,
		Title:      doc.Title,
		StartDate:  doc.StartDate,
		DueAt:      doc.DueAt,
		CategoryID: categoryID,
		ParentID:   doc.ParentID,
		CreatedAt:  doc.CreatedAt,
		UpdatedAt:  doc.UpdatedAt,
	}, nil
}
