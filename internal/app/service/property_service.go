package service

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/seungyeah/tootodo-be/internal/core/domain"
	"github.com/seungyeah/tootodo-be/internal/core/ports"
)

type PropertyService struct {
	tasks      ports.TaskStore
	properties ports.PropertyStore
}

func NewPropertyService(tasks ports.TaskStore, properties ports.PropertyStore) *PropertyService {
	return &PropertyService{tasks: tasks, properties: properties}
}

var _ ports.PropertyService = (*PropertyService)(nil)

func (s *PropertyService) CreateProperty(ctx context.Context, userID uuid.UUID, input domain.CreatePropertyInput) (domain.Property, error) {
	if err := s.ownedTask(ctx, input.TaskID, userID); err != nil {
		return domain.Property{}, err
	}
	if !input.Type.Valid() {
		return domain.Property{}, &domain.ValidationError{Field: "type", Reason: domain.ReasonShapeError}
	}
	if input.Value != nil {
		if err := domain.ValidateValue(input.Type, *input.Value, input.Options); err != nil {
			return domain.Property{}, err
		}
	}
	return s.properties.Create(ctx, input)
}

// UpdateProperty applies a partial update. Changing the type of a
// property that already carries a value clears the value, and narrowing
// the option set clears a value that falls outside it; the new value,
// when supplied in the same update, is validated against the new type
// and options. Nothing is written when validation fails.
func (s *PropertyService) UpdateProperty(ctx context.Context, propertyID primitive.ObjectID, userID uuid.UUID, input domain.UpdatePropertyInput) (domain.Property, error) {
	prop, err := s.properties.Get(ctx, propertyID)
	if err != nil {
		return domain.Property{}, err
	}
	if err := s.ownedTask(ctx, prop.TaskID, userID); err != nil {
		return domain.Property{}, err
	}

	newType := prop.Type
	if input.Type != nil {
		if !input.Type.Valid() {
			return domain.Property{}, &domain.ValidationError{Field: "type", Reason: domain.ReasonShapeError}
		}
		newType = *input.Type
		if newType != prop.Type && !input.ValueSet {
			// Type changed with a materialized value present: clear it.
			input.Value = nil
			input.ValueSet = prop.Value != nil
		}
	}

	options := prop.Options
	if input.OptionsSet {
		options = input.Options
		// Changed options orphan an existing selection the same way a
		// type change does: the stored value is cleared, not left to
		// surface as corrupt on the next read.
		if !input.ValueSet && prop.Value != nil {
			if domain.ValidateValue(newType, *prop.Value, options) != nil {
				input.Value = nil
				input.ValueSet = true
			}
		}
	}

	if input.ValueSet && input.Value != nil {
		if err := domain.ValidateValue(newType, *input.Value, options); err != nil {
			return domain.Property{}, err
		}
	}

	return s.properties.Update(ctx, propertyID, input)
}

func (s *PropertyService) DeleteProperty(ctx context.Context, propertyID primitive.ObjectID, userID uuid.UUID) error {
	prop, err := s.properties.Get(ctx, propertyID)
	if err != nil {
		return err
	}
	if err := s.ownedTask(ctx, prop.TaskID, userID); err != nil {
		return err
	}
	return s.properties.Delete(ctx, propertyID)
}

func (s *PropertyService) ownedTask(ctx context.Context, taskID primitive.ObjectID, userID uuid.UUID) error {
	task, err := s.tasks.Get(ctx, taskID)
	if err != nil {
		return err
	}
	if task.UserID != userID {
		return domain.ErrTaskNotFound
	}
	return nil
}
