package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/seungyeah/tootodo-be/internal/adapter/http/dto"
	"github.com/seungyeah/tootodo-be/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

func BuildCreateTaskInput(userID uuid.UUID, req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	input := domain.CreateTaskInput{
		UserID:     userID,
		Title:      title,
		StartDate:  req.StartDate,
		CategoryID: categoryID,
	}

	if req.DueAt != nil {
		dueAt, err := time.Parse(time.RFC3339, *req.DueAt)
		if err != nil {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
		input.DueAt = &dueAt
	}

	if req.ParentID != nil {
		parentID, err := primitive.ObjectIDFromHex(*req.ParentID)
		if err != nil {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
		input.ParentID = &parentID
	}

	return input, nil
}

// BuildUpdateTaskInput turns a patch body into an update input. The raw
// message map distinguishes absent fields from explicit nulls: a null
// start_date, due_at or parent_id clears that field.
func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if !hasTaskUpdateFields(raw) {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var input domain.UpdateTaskInput

	if hasJSONField(raw, "title") {
		if req.Title == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		input.Title = &value
	}

	if hasJSONField(raw, "start_date") {
		input.StartDateSet = true
		if !isJSONNull(raw["start_date"]) {
			if req.StartDate == nil {
				return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
			}
			input.StartDate = req.StartDate
		}
	}

	if hasJSONField(raw, "due_at") {
		input.DueAtSet = true
		if !isJSONNull(raw["due_at"]) {
			if req.DueAt == nil {
				return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
			}
			dueAt, err := time.Parse(time.RFC3339, *req.DueAt)
			if err != nil {
				return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
			}
			input.DueAt = &dueAt
		}
	}

	if hasJSONField(raw, "category_id") {
		if isJSONNull(raw["category_id"]) || req.CategoryID == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		input.CategoryID = &categoryID
	}

	if hasJSONField(raw, "parent_id") {
		input.ParentIDSet = true
		if !isJSONNull(raw["parent_id"]) {
			if req.ParentID == nil {
				return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
			}
			parentID, err := primitive.ObjectIDFromHex(*req.ParentID)
			if err != nil {
				return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
			}
			input.ParentID = &parentID
		}
	}

	return input, nil
}

func hasTaskUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "title") ||
		hasJSONField(raw, "start_date") ||
		hasJSONField(raw, "due_at") ||
		hasJSONField(raw, "category_id") ||
		hasJSONField(raw, "parent_id")
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
