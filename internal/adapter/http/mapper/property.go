package mapper

import (
	"github.com/seungyeah/tootodo-be/internal/adapter/http/dto"
	"github.com/seungyeah/tootodo-be/internal/core/domain"
)

func ToPropertyItems(properties []domain.Property) []dto.PropertyItem {
	items := make([]dto.PropertyItem, 0, len(properties))
	for _, p := range properties {
		items = append(items, ToPropertyItem(p))
	}
	return items
}

func ToPropertyItem(p domain.Property) dto.PropertyItem {
	item := dto.PropertyItem{
		ID:      p.ID.Hex(),
		Name:    p.Name,
		Type:    string(p.Type),
		Options: p.Options,
	}
	if p.Value != nil {
		item.Value = toPropertyValue(*p.Value)
	}
	return item
}

func toPropertyValue(v domain.PropertyValue) *dto.PropertyValue {
	out := dto.PropertyValue{Type: string(v.Type)}

	switch v.Type {
	case domain.PropertyTypeText:
		out.Text = v.Text
	case domain.PropertyTypeNumber:
		out.Number = v.Number
	case domain.PropertyTypeDate:
		out.Date = v.Date
	case domain.PropertyTypeSelect:
		out.Select = v.Select
	case domain.PropertyTypeMultiSelect:
		out.MultiSelect = v.MultiSelect
	case domain.PropertyTypeCheckbox:
		out.Checkbox = v.Checkbox
	}

	return &out
}

// FromPropertyValue maps an inbound value onto the domain tagged union.
// The tag drives the mapping; stray payload fields are dropped here and
// caught by domain validation if the remaining shape is wrong.
func FromPropertyValue(v dto.PropertyValue) domain.PropertyValue {
	out := domain.PropertyValue{Type: domain.PropertyType(v.Type)}

	switch out.Type {
	case domain.PropertyTypeText:
		out.Text = v.Text
	case domain.PropertyTypeNumber:
		out.Number = v.Number
	case domain.PropertyTypeDate:
		out.Date = v.Date
	case domain.PropertyTypeSelect:
		out.Select = v.Select
	case domain.PropertyTypeMultiSelect:
		out.MultiSelect = v.MultiSelect
	case domain.PropertyTypeCheckbox:
		out.Checkbox = v.Checkbox
	}

	return out
}
