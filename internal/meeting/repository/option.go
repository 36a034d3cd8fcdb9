package repository

import (
	"time"

	"smartmeet/internal/model"
)

// CreateOptions holds the parameters for storing a validated meeting.
// CreatedAt is passed in rather than read from the clock so storage
// stays deterministic under test.
type CreateOptions struct {
	Topic           string
	Participants    []model.Participant
	StartTime       time.Time
	DurationMinutes int
	Priority        model.Priority
	CreatedAt       time.Time
}

// ListOptions holds the filters for listing stored meetings.
type ListOptions struct {
	From   *time.Time          // Meetings starting at or after this (optional)
	To     *time.Time          // Meetings starting before this (optional)
	Status model.MeetingStatus // Filter by status (optional)
	Limit  int                 // Max number of results, 0 means all
}
