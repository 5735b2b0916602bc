package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/seungyeah/tootodo-be/internal/core/domain"
	"github.com/seungyeah/tootodo-be/internal/core/ports"
)

const propertyCollection = "properties"

type PropertyRepository struct {
	collection *mongo.Collection
}

type propertyDoc struct {
	ID        primitive.ObjectID    `bson:"_id,omitempty"`
	TaskID    primitive.ObjectID    `bson:"task_id"`
	Name      string                `bson:"name"`
	Type      domain.PropertyType   `bson:"type"`
	Options   []string              `bson:"options,omitempty"`
	Value     *domain.PropertyValue `bson:"value,omitempty"`
	CreatedAt time.Time             `bson:"createdAt"`
	UpdatedAt time.Time             `bson:"updatedAt"`
}

var _ ports.PropertyStore = (*PropertyRepository)(nil)

func NewPropertyRepository(db *mongo.Database) *PropertyRepository {
	return &PropertyRepository{collection: db.Collection(propertyCollection)}
}

func (r *PropertyRepository) Get(ctx context.Context, id primitive.ObjectID) (domain.Property, error) {
	var doc propertyDoc
	err := withRetry(ctx, func() error {
		return r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Property{}, domain.ErrPropertyNotFound
		}
		return domain.Property{}, err
	}
	return mapPropertyDoc(doc), nil
}

// ListForTask returns the task's properties in insertion order. ObjectIDs
// are time-ordered, so sorting on _id preserves it.
func (r *PropertyRepository) ListForTask(ctx context.Context, taskID primitive.ObjectID) ([]domain.Property, error) {
	var docs []propertyDoc
	err := withRetry(ctx, func() error {
		cursor, err := r.collection.Find(ctx, bson.M{"task_id": taskID},
			options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
		if err != nil {
			return err
		}
		docs = docs[:0]
		return cursor.All(ctx, &docs)
	})
	if err != nil {
		return nil, err
	}

	properties := make([]domain.Property, 0, len(docs))
	for _, doc := range docs {
		properties = append(properties, mapPropertyDoc(doc))
	}
	return properties, nil
}

func (r *PropertyRepository) Create(ctx context.Context, input domain.CreatePropertyInput) (domain.Property, error) {
	now := time.Now().UTC()
	doc := propertyDoc{
		ID:        primitive.NewObjectID(),
		TaskID:    input.TaskID,
		Name:      input.Name,
		Type:      input.Type,
		Options:   input.Options,
		Value:     input.Value,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := withRetry(ctx, func() error {
		_, err := r.collection.InsertOne(ctx, doc)
		return err
	})
	if err != nil {
		return domain.Property{}, err
	}
	return mapPropertyDoc(doc), nil
}

// Update is last-write-wins: updatedAt is assigned here, concurrent
// writers serialize at the collection level.
func (r *PropertyRepository) Update(ctx context.Context, id primitive.ObjectID, input domain.UpdatePropertyInput) (domain.Property, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	unset := bson.M{}

	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.Type != nil {
		set["type"] = *input.Type
	}
	if input.OptionsSet {
		if len(input.Options) > 0 {
			set["options"] = input.Options
		} else {
			unset["options"] = ""
		}
	}
	if input.ValueSet {
		if input.Value != nil {
			set["value"] = *input.Value
		} else {
			unset["value"] = ""
		}
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	var doc propertyDoc
	err := withRetry(ctx, func() error {
		return r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update,
			options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&doc)
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Property{}, domain.ErrPropertyNotFound
		}
		return domain.Property{}, err
	}
	return mapPropertyDoc(doc), nil
}

func (r *PropertyRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
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
		return domain.ErrPropertyNotFound
	}
	return nil
}

func (r *PropertyRepository) DeleteForTask(ctx context.Context, taskID primitive.ObjectID) error {
	return withRetry(ctx, func() error {
		_, err := r.collection.DeleteMany(ctx, bson.M{"task_id": taskID})
		return err
	})
}

func mapPropertyDoc(doc propertyDoc) domain.Property {
	return domain.Property{
		ID:        doc.ID,
		TaskID:    doc.TaskID,
		Name:      doc.Name,
		Type:      doc.Type,
		Options:   doc.Options,
		Value:     doc.Value,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}
