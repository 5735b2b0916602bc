package validation

import (
	"encoding/json"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/seungyeah/tootodo-be/internal/adapter/http/dto"
	"github.com/seungyeah/tootodo-be/internal/adapter/http/mapper"
	"github.com/seungyeah/tootodo-be/internal/core/domain"
)

var ErrInvalidPropertyPayload = errors.New("invalid property payload")

func BuildCreatePropertyInput(taskID primitive.ObjectID, req dto.CreatePropertyRequest) (domain.CreatePropertyInput, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.CreatePropertyInput{}, ErrInvalidPropertyPayload
	}

	input := domain.CreatePropertyInput{
		TaskID:  taskID,
		Name:    name,
		Type:    domain.PropertyType(req.Type),
		Options: req.Options,
	}

	if req.Value != nil {
		value := mapper.FromPropertyValue(*req.Value)
		input.Value = &value
	}

	return input, nil
}

// BuildUpdatePropertyInput builds a property patch. A null value clears
// the materialized value; an absent value leaves it alone (unless a type
// change clears it downstream).
func BuildUpdatePropertyInput(req dto.UpdatePropertyRequest, raw map[string]json.RawMessage) (domain.UpdatePropertyInput, error) {
	if !hasPropertyUpdateFields(raw) {
		return domain.UpdatePropertyInput{}, ErrInvalidPropertyPayload
	}

	var input domain.UpdatePropertyInput

	if hasJSONField(raw, "name") {
		if req.Name == nil {
			return domain.UpdatePropertyInput{}, ErrInvalidPropertyPayload
		}
		value := strings.TrimSpace(*req.Name)
		if value == "" {
			return domain.UpdatePropertyInput{}, ErrInvalidPropertyPayload
		}
		input.Name = &value
	}

	if hasJSONField(raw, "type") {
		if isJSONNull(raw["type"]) || req.Type == nil {
			return domain.UpdatePropertyInput{}, ErrInvalidPropertyPayload
		}
		value := domain.PropertyType(*req.Type)
		input.Type = &value
	}

	if hasJSONField(raw, "options") {
		input.OptionsSet = true
		if !isJSONNull(raw["options"]) {
			input.Options = req.Options
		}
	}

	if hasJSONField(raw, "value") {
		input.ValueSet = true
		if !isJSONNull(raw["value"]) {
			if req.Value == nil {
				return domain.UpdatePropertyInput{}, ErrInvalidPropertyPayload
			}
			value := mapper.FromPropertyValue(*req.Value)
			input.Value = &value
		}
	}

	return input, nil
}

func hasPropertyUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "name") ||
		hasJSONField(raw, "type") ||
		hasJSONField(raw, "options") ||
		hasJSONField(raw, "value")
}
