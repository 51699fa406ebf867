package planner

import (
	"errors"
	"fmt"
)

// Error types
type ErrorType string

const (
	ErrDuplicateUser       ErrorType = "duplicate_user"
	ErrDuplicateEventName  ErrorType = "duplicate_event_name"
	ErrUnknownUser         ErrorType = "unknown_user"
	ErrUnknownEvent        ErrorType = "unknown_event"
	ErrInvalidField        ErrorType = "invalid_field"
	ErrInvalidParticipant  ErrorType = "invalid_participant"
	ErrConflict            ErrorType = "conflict"
	ErrNotScheduled        ErrorType = "not_scheduled"
	ErrNotFound            ErrorType = "not_found"
	ErrNoActiveUser        ErrorType = "no_active_user"
	ErrInvalidModification ErrorType = "invalid_modification"
	ErrDurationTooLong     ErrorType = "duration_too_long"
	ErrNoSlotFound         ErrorType = "no_slot_found"
	ErrInvalidDay          ErrorType = "invalid_day"
)

// Error represents a planner-related error
type Error struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// TypeOf extracts the ErrorType from err, or returns the empty string if err
// does not carry a planner Error anywhere in its chain.
func TypeOf(err error) ErrorType {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Type
	}
	return ""
}
