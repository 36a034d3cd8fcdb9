package usecase

import (
	"context"
	"fmt"
	"time"

	"smartmeet/internal/meeting"
	"smartmeet/internal/model"
	"smartmeet/pkg/datemath"
)

// resolveNow picks the reference instant for one request: the explicit
// reference time when the caller supplied one, otherwise the clock read
// once and passed down so parsing and validation stay consistent.
func resolveNow(ref *time.Time) time.Time {
	if ref != nil {
		return *ref
	}
	return time.Now()
}

// resolveNames maps each extracted name to its directory entry, with
// fuzzy suggestions for names that do not resolve exactly.
func (uc *implUseCase) resolveNames(names []string) []meeting.NameResolution {
	out := make([]meeting.NameResolution, 0, len(names))
	for _, name := range names {
		res := meeting.NameResolution{Name: name}
		if p, ok := uc.dir.Resolve(name); ok {
			res.Resolved = &p
		} else if match := uc.dir.Search(name); len(match.Matches) > 0 {
			suggestions := match.Matches
			if len(suggestions) > maxNameSuggestions {
				suggestions = suggestions[:maxNameSuggestions]
			}
			res.Suggestions = suggestions
		}
		out = append(out, res)
	}
	return out
}

// findConflicts reports scheduled meetings that overlap the window and
// share at least one of the given participants.
func (uc *implUseCase) findConflicts(ctx context.Context, start time.Time, durationMinutes int, participants []model.Participant) ([]meeting.Conflict, error) {
	overlapping, err := uc.repo.ListOverlapping(ctx, start, durationMinutes)
	if err != nil {
		return nil, fmt.Errorf("failed to list overlapping meetings: %w", err)
	}

	emails := make(map[string]struct{}, len(participants))
	for _, p := range participants {
		emails[p.Email] = struct{}{}
	}

	var conflicts []meeting.Conflict
	for _, m := range overlapping {
		for _, p := range m.Participants {
			if _, busy := emails[p.Email]; busy {
				conflicts = append(conflicts, meeting.Conflict{
					ParticipantEmail: p.Email,
					MeetingID:        m.ID,
					Topic:            m.Topic,
					StartTime:        m.StartTime,
					EndTime:          m.EndTime(),
				})
			}
		}
	}
	return conflicts, nil
}

// freeSlots walks the business-hours grid of the given day and collects
// up to max windows where none of the participants has a conflict.
// Slots starting at or before notBefore are skipped; pass the zero time
// to scan the whole day.
func (uc *implUseCase) freeSlots(ctx context.Context, day time.Time, durationMinutes int, participants []model.Participant, notBefore time.Time, max int) ([]meeting.Slot, error) {
	if max <= 0 {
		max = defaultMaxSlots
	}

	dayStart := uc.dates.At(day, datemath.Clock{Hour: uc.businessStartHour})
	dayEnd := uc.dates.At(day, datemath.Clock{Hour: uc.businessEndHour})
	window := time.Duration(durationMinutes) * time.Minute

	var slots []meeting.Slot
	for s := dayStart; !s.Add(window).After(dayEnd); s = s.Add(slotStepMinutes * time.Minute) {
		if !notBefore.IsZero() && !s.After(notBefore) {
			continue
		}
		conflicts, err := uc.findConflicts(ctx, s, durationMinutes, participants)
		if err != nil {
			return nil, err
		}
		if len(conflicts) > 0 {
			continue
		}
		slots = append(slots, meeting.Slot{StartTime: s, EndTime: s.Add(window)})
		if len(slots) >= max {
			break
		}
	}
	return slots, nil
}
