package meeting

import (
	"context"

	"smartmeet/internal/model"
)

// UseCase defines the business logic interface for the meeting domain.
type UseCase interface {
	// Preview runs the full parse-resolve-validate pipeline without storing
	// anything, so a UI can show the outcome and ask for confirmation.
	Preview(ctx context.Context, input PreviewInput) (PreviewOutput, error)

	// Schedule parses the request, validates the candidate against the
	// directory and stores the meeting. Overlap conflicts are returned as
	// warnings, never as errors.
	Schedule(ctx context.Context, input ScheduleInput) (ScheduleOutput, error)

	// List returns stored meetings ordered by start time.
	List(ctx context.Context, input ListInput) (ListOutput, error)

	// Detail returns a single stored meeting by ID.
	Detail(ctx context.Context, id string) (model.Meeting, error)

	// Cancel marks a stored meeting cancelled.
	Cancel(ctx context.Context, id string) error

	// SuggestSlots scans a day for windows where every requested
	// participant is free.
	SuggestSlots(ctx context.Context, input SlotsInput) (SlotsOutput, error)
}
