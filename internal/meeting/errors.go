package meeting

import (
	"errors"
	"fmt"
)

// Validation errors, in the order Validate checks them.
var (
	ErrMissingParticipants = errors.New("no participants found")
	ErrUnknownParticipant  = errors.New("participant not found in directory")
	ErrUnparseableTime     = errors.New("start time missing or unparseable")
	ErrPastTime            = errors.New("start time is in the past")
	ErrInvalidDuration     = errors.New("duration must be positive")
)

// Domain-specific errors for the meeting package.
var (
	ErrEmptyInput      = errors.New("input text is empty")
	ErrMeetingNotFound = errors.New("meeting not found")
)

// ValidationFailure reports why a candidate was rejected. Err is one of
// the validation sentinels above, usable with errors.Is; Field names the
// candidate field that failed and Reason carries the human-readable
// detail (e.g. which participant was unknown).
type ValidationFailure struct {
	Field  string
	Reason string
	Err    error
}

func (f *ValidationFailure) Error() string {
	return fmt.Sprintf("%s: %s", f.Field, f.Reason)
}

func (f *ValidationFailure) Unwrap() error {
	return f.Err
}

func newFailure(field, reason string, err error) *ValidationFailure {
	return &ValidationFailure{Field: field, Reason: reason, Err: err}
}
