package dto

type PropertyItem struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Type    string         `json:"type"`
	Options []string       `json:"options,omitempty"`
	Value   *PropertyValue `json:"value,omitempty"`
}

// PropertyValue mirrors the domain tagged value: type names the variant,
// only the matching payload field is populated.
type PropertyValue struct {
	Type        string   `json:"type"`
	Text        *string  `json:"text,omitempty"`
	Number      *float64 `json:"number,omitempty"`
	Date        *string  `json:"date,omitempty"`
	Select      *string  `json:"select,omitempty"`
	MultiSelect []string `json:"multi_select,omitempty"`
	Checkbox    *bool    `json:"checkbox,omitempty"`
}

type PropertyIssue struct {
	PropertyID string `json:"property_id"`
	Name       string `json:"name"`
	Reason     string `json:"reason"`
}

type CreatePropertyRequest struct {
	Name    string         `json:"name" binding:"required,max=255"`
	Type    string         `json:"type" binding:"required,oneof=text number date select multi_select checkbox"`
	Options []string       `json:"options" binding:"omitempty,dive,max=255"`
	Value   *PropertyValue `json:"value" binding:"omitempty"`
}

type UpdatePropertyRequest struct {
	Name    *string        `json:"name" binding:"omitempty,max=255"`
	Type    *string        `json:"type" binding:"omitempty,oneof=text number date select multi_select checkbox"`
	Options []string       `json:"options" binding:"omitempty,dive,max=255"`
	Value   *PropertyValue `json:"value" binding:"omitempty"`
}
