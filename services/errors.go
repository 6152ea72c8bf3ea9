package services

import (
	"errors"
	"strings"
)

var (
	// ErrUnauthenticated means the caller has no valid session.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrNotFound means no item has the requested id.
	ErrNotFound = errors.New("item not found")
	// ErrForbidden means the item belongs to another user.
	ErrForbidden = errors.New("item belongs to another user")
)

// FieldError describes one rejected payload field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every problem found in a request payload.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "invalid payload: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// errOrNil returns e only when it holds at least one field error.
func (e *ValidationError) errOrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
