package booking

import (
	"errors"
	"fmt"
)

// The engine's failure taxonomy. "No availability" and "no discount" are
// normal results, never errors; errors cover malformed input, missing
// records, and calendar conflicts.

// ValidationError rejects malformed input before the store is touched.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// ConflictError reports that a target interval overlaps an existing
// commitment, with enough detail to render a useful message.
type ConflictError struct {
	ProfessionalID string
	Date           string
	ExistingID     string
	ExistingStart  string // "HH:MM"
	ExistingEnd    string // "HH:MM"
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("time conflict with appointment %s (%s %s-%s)",
		e.ExistingID, e.Date, e.ExistingStart, e.ExistingEnd)
}

// NotFoundError reports a missing appointment, service or professional.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// ErrNoProfessionalForSlot aborts a commit whose "any professional"
// resolution matched nobody for the requested start time. The whole cart
// aborts with no appointments created.
var ErrNoProfessionalForSlot = errors.New("no eligible professional available at the requested time")
