package usecase

import (
	"context"
	"fmt"
	"time"

	"smartmeet/internal/meeting"
	"smartmeet/internal/model"
)

// SuggestSlots scans one day's business hours for windows where every
// requested participant is free. With no participants it simply returns
// the open grid of the day.
func (uc *implUseCase) SuggestSlots(ctx context.Context, input meeting.SlotsInput) (meeting.SlotsOutput, error) {
	duration := input.DurationMinutes
	if duration <= 0 {
		duration = meeting.DefaultDurationMinutes
	}

	participants := make([]model.Participant, 0, len(input.Participants))
	seen := make(map[string]struct{}, len(input.Participants))
	for _, name := range input.Participants {
		p, ok := uc.dir.Resolve(name)
		if !ok {
			return meeting.SlotsOutput{}, &meeting.ValidationFailure{
				Field:  "participants",
				Reason: fmt.Sprintf("participant %q not found in directory", name),
				Err:    meeting.ErrUnknownParticipant,
			}
		}
		if _, dup := seen[p.Email]; dup {
			continue
		}
		seen[p.Email] = struct{}{}
		participants = append(participants, p)
	}

	slots, err := uc.freeSlots(ctx, input.Day, duration, participants, time.Time{}, input.MaxSlots)
	if err != nil {
		uc.l.Errorf(ctx, "SuggestSlots: failed to scan day: %v", err)
		return meeting.SlotsOutput{}, err
	}

	return meeting.SlotsOutput{Slots: slots}, nil
}
