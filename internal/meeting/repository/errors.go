package repository

import "errors"

// ErrNotFound is returned when no meeting exists for the requested ID.
var ErrNotFound = errors.New("meeting not found")
