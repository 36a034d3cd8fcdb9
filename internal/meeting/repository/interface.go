package repository

import (
	"context"
	"time"

	"smartmeet/internal/model"
)

// MeetingRepository is the interface for meeting storage operations.
type MeetingRepository interface {
	Create(ctx context.Context, opt CreateOptions) (model.Meeting, error)
	Get(ctx context.Context, id string) (model.Meeting, error)
	List(ctx context.Context, opt ListOptions) ([]model.Meeting, error)
	// ListOverlapping returns scheduled meetings intersecting the window,
	// ordered by start time. Cancelled meetings never conflict.
	ListOverlapping(ctx context.Context, start time.Time, durationMinutes int) ([]model.Meeting, error)
	UpdateStatus(ctx context.Context, id string, status model.MeetingStatus, at time.Time) (model.Meeting, error)
}
