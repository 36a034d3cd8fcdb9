package usecase

import (
	"context"
	"errors"
	"strings"

	"smartmeet/internal/meeting"
)

// Preview runs the scheduling pipeline without storing anything so the
// UI can show the outcome and ask the user to confirm.
func (uc *implUseCase) Preview(ctx context.Context, input meeting.PreviewInput) (meeting.PreviewOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return meeting.PreviewOutput{}, meeting.ErrEmptyInput
	}

	now := resolveNow(input.ReferenceTime)

	// Step 1: extract a candidate from the request text
	candidate := uc.engine.Parse(ctx, input.Text, now)
	uc.l.Infof(ctx, "Preview: engine=%s confidence=%s participants=%d", uc.engine.Name(), candidate.Confidence, len(candidate.Participants))

	out := meeting.PreviewOutput{
		Candidate:   candidate,
		Resolutions: uc.resolveNames(candidate.Participants),
	}

	// Step 2: dry-run validation
	finalized, err := meeting.Validate(candidate, uc.dir, now)
	if err != nil {
		var failure *meeting.ValidationFailure
		if !errors.As(err, &failure) {
			return meeting.PreviewOutput{}, err
		}
		out.Failure = failure
		return out, nil
	}
	out.Meeting = &finalized

	// Step 3: availability check, with alternatives when the slot is taken
	conflicts, err := uc.findConflicts(ctx, finalized.StartTime, finalized.DurationMinutes, finalized.Participants)
	if err != nil {
		return meeting.PreviewOutput{}, err
	}
	out.Conflicts = conflicts

	if len(conflicts) > 0 {
		slots, err := uc.freeSlots(ctx, finalized.StartTime, finalized.DurationMinutes, finalized.Participants, now, defaultMaxSlots)
		if err != nil {
			return meeting.PreviewOutput{}, err
		}
		out.AlternativeSlots = slots
	}

	return out, nil
}
