package domain

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PropertyType string

const (
	PropertyTypeText        PropertyType = "text"
	PropertyTypeNumber      PropertyType = "number"
	PropertyTypeDate        PropertyType = "date"
	PropertyTypeSelect      PropertyType = "select"
	PropertyTypeMultiSelect PropertyType = "multi_select"
	PropertyTypeCheckbox    PropertyType = "checkbox"
)

// DateLayout is the wire format for date-only values.
const DateLayout = "2006-01-02"

func (t PropertyType) Valid() bool {
	switch t {
	case PropertyTypeText, PropertyTypeNumber, PropertyTypeDate,
		PropertyTypeSelect, PropertyTypeMultiSelect, PropertyTypeCheckbox:
		return true
	}
	return false
}

// PropertyValue is a tagged value. Type names the variant; exactly the
// payload field matching the tag may be set. The tag is the source of
// truth everywhere, payload shape is never used to infer the type.
type PropertyValue struct {
	Type        PropertyType `bson:"type" json:"type"`
	Text        *string      `bson:"text,omitempty" json:"text,omitempty"`
	Number      *float64     `bson:"number,omitempty" json:"number,omitempty"`
	Date        *string      `bson:"date,omitempty" json:"date,omitempty"`
	Select      *string      `bson:"select,omitempty" json:"select,omitempty"`
	MultiSelect []string     `bson:"multi_select,omitempty" json:"multi_select,omitempty"`
	Checkbox    *bool        `bson:"checkbox,omitempty" json:"checkbox,omitempty"`
}

func TextValue(s string) PropertyValue {
	return PropertyValue{Type: PropertyTypeText, Text: &s}
}

func NumberValue(n float64) PropertyValue {
	return PropertyValue{Type: PropertyTypeNumber, Number: &n}
}

func DateValue(d string) PropertyValue {
	return PropertyValue{Type: PropertyTypeDate, Date: &d}
}

func SelectValue(s string) PropertyValue {
	return PropertyValue{Type: PropertyTypeSelect, Select: &s}
}

func MultiSelectValue(vs []string) PropertyValue {
	return PropertyValue{Type: PropertyTypeMultiSelect, MultiSelect: vs}
}

func CheckboxValue(b bool) PropertyValue {
	return PropertyValue{Type: PropertyTypeCheckbox, Checkbox: &b}
}

// Property is a user-defined typed field attached to one task. A property
// may be declared without a materialized value.
type Property struct {
	ID        primitive.ObjectID
	TaskID    primitive.ObjectID
	Name      string
	Type      PropertyType
	Options   []string // allowed values for select / multi_select
	Value     *PropertyValue
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateValue checks that value is legal for the declared type. A tag
// that differs from the declared type is a type mismatch, never coerced.
// Payloads that carry the right tag but malformed data are shape errors.
func ValidateValue(t PropertyType, value PropertyValue, options []string) error {
	if !t.Valid() {
		return &ValidationError{Field: "type", Reason: ReasonShapeError}
	}
	if value.Type != t {
		return &ValidationError{Field: "value", Reason: ReasonTypeMismatch}
	}
	if err := checkSinglePayload(value); err != nil {
		return err
	}

	switch t {
	case PropertyTypeText:
		if value.Text == nil {
			return &ValidationError{Field: "value", Reason: ReasonShapeError}
		}
	case PropertyTypeNumber:
		if value.Number == nil || math.IsNaN(*value.Number) || math.IsInf(*value.Number, 0) {
			return &ValidationError{Field: "value", Reason: ReasonShapeError}
		}
	case PropertyTypeDate:
		if value.Date == nil {
			return &ValidationError{Field: "value", Reason: ReasonShapeError}
		}
		if _, err := time.Parse(DateLayout, *value.Date); err != nil {
			return &ValidationError{Field: "value", Reason: ReasonShapeError}
		}
	case PropertyTypeSelect:
		if value.Select == nil || *value.Select == "" {
			return &ValidationError{Field: "value", Reason: ReasonShapeError}
		}
		if len(options) > 0 && !contains(options, *value.Select) {
			return &ValidationError{Field: "value", Reason: ReasonShapeError}
		}
	case PropertyTypeMultiSelect:
		// A nil list is an empty selection. Slice codecs collapse empty
		// to nil on decode, so a stored empty value must stay valid.
		for _, v := range value.MultiSelect {
			if v == "" {
				return &ValidationError{Field: "value", Reason: ReasonShapeError}
			}
			if len(options) > 0 && !contains(options, v) {
				return &ValidationError{Field: "value", Reason: ReasonShapeError}
			}
		}
	case PropertyTypeCheckbox:
		if value.Checkbox == nil {
			return &ValidationError{Field: "value", Reason: ReasonShapeError}
		}
	}

	return nil
}

// checkSinglePayload rejects values carrying payload fields outside the
// variant named by the tag.
func checkSinglePayload(value PropertyValue) error {
	mismatch := func(t PropertyType, set bool) bool {
		return set && value.Type != t
	}

	if mismatch(PropertyTypeText, value.Text != nil) ||
		mismatch(PropertyTypeNumber, value.Number != nil) ||
		mismatch(PropertyTypeDate, value.Date != nil) ||
		mismatch(PropertyTypeSelect, value.Select != nil) ||
		mismatch(PropertyTypeMultiSelect, value.MultiSelect != nil) ||
		mismatch(PropertyTypeCheckbox, value.Checkbox != nil) {
		return &ValidationError{Field: "value", Reason: ReasonShapeError}
	}
	return nil
}

func contains(options []string, v string) bool {
	for _, opt := range options {
		if opt == v {
			return true
		}
	}
	return false
}

type CreatePropertyInput struct {
	TaskID  primitive.ObjectID
	Name    string
	Type    PropertyType
	Options []string
	Value   *PropertyValue
}

// UpdatePropertyInput follows the Set-flag pattern so a JSON null can be
// told apart from an absent field.
type UpdatePropertyInput struct {
	Name       *string
	Type       *PropertyType
	Options    []string
	OptionsSet bool
	Value      *PropertyValue
	ValueSet   bool
}
