package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"smartmeet/internal/meeting"
	"smartmeet/internal/meeting/repository"
)

// Schedule parses, validates and stores a meeting end-to-end. Overlap
// conflicts come back as warnings on the result, never as errors — the
// caller decides whether to double-book.
func (uc *implUseCase) Schedule(ctx context.Context, input meeting.ScheduleInput) (meeting.ScheduleOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return meeting.ScheduleOutput{}, meeting.ErrEmptyInput
	}

	now := resolveNow(input.ReferenceTime)

	// Step 1: extract a candidate from the request text
	candidate := uc.engine.Parse(ctx, input.Text, now)
	uc.l.Infof(ctx, "Schedule: engine=%s confidence=%s participants=%d", uc.engine.Name(), candidate.Confidence, len(candidate.Participants))

	// Step 2: validate against the directory and the reference time
	finalized, err := meeting.Validate(candidate, uc.dir, now)
	if err != nil {
		uc.l.Warnf(ctx, "Schedule: validation failed: %v", err)
		return meeting.ScheduleOutput{}, err
	}

	// Step 3: collect conflict warnings before booking
	conflicts, err := uc.findConflicts(ctx, finalized.StartTime, finalized.DurationMinutes, finalized.Participants)
	if err != nil {
		return meeting.ScheduleOutput{}, err
	}

	// Step 4: store the meeting
	created, err := uc.repo.Create(ctx, repository.CreateOptions{
		Topic:           finalized.Topic,
		Participants:    finalized.Participants,
		StartTime:       finalized.StartTime,
		DurationMinutes: finalized.DurationMinutes,
		Priority:        finalized.Priority,
		CreatedAt:       now,
	})
	if err != nil {
		uc.l.Errorf(ctx, "Schedule: failed to store meeting: %v", err)
		return meeting.ScheduleOutput{}, fmt.Errorf("failed to store meeting: %w", err)
	}

	uc.l.Infof(ctx, "Schedule: created meeting id=%s start=%s conflicts=%d",
		created.ID, created.StartTime.Format(time.RFC3339), len(conflicts))

	return meeting.ScheduleOutput{
		Meeting:   created,
		Conflicts: conflicts,
	}, nil
}
