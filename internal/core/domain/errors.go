package domain

import (
	"errors"
	"fmt"
)

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrPropertyNotFound = errors.New("property not found")
	// ErrCategoryNotFound doubles as the dangling-reference fault: the
	// category lives in another store, so a task can outlive it.
	ErrCategoryNotFound = errors.New("category not found")
	ErrHierarchyCycle   = errors.New("task hierarchy cycle")
	ErrStoreUnavailable = errors.New("store unavailable")
)

const (
	ReasonTypeMismatch = "type_mismatch"
	ReasonShapeError   = "shape_error"
)

// ValidationError rejects a property create/update whose value does not
// fit its declared type.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// CorruptProperty marks one stored property whose value failed defensive
// validation during aggregate assembly. It is collected into the view,
// never fatal to the build.
type CorruptProperty struct {
	PropertyID string `json:"property_id"`
	Name       string `json:"name"`
	Reason     string `json:"reason"`
}

func (e CorruptProperty) Error() string {
	return fmt.Sprintf("corrupt property %s (%s): %s", e.PropertyID, e.Name, e.Reason)
}
