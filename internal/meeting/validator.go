package meeting

import (
	"fmt"
	"strings"
	"time"

	"smartmeet/internal/directory"
	"smartmeet/internal/model"
)

// Validate turns an extraction candidate into a finalized meeting. It is
// a pure function of its arguments: no clock reads, no stored state, and
// calling it twice with the same inputs yields the same result.
//
// Checks run in a fixed order and stop at the first failure:
// participants present, every participant known to the directory, start
// time present, start time strictly after now, duration positive. A
// missing duration defaults to DefaultDurationMinutes; an empty topic is
// auto-generated from the resolved participants.
func Validate(c model.CandidateMeeting, dir *directory.Directory, now time.Time) (model.FinalizedMeeting, error) {
	if len(c.Participants) == 0 {
		return model.FinalizedMeeting{}, newFailure("participants", "no participants found in the request", ErrMissingParticipants)
	}

	resolved := make([]model.Participant, 0, len(c.Participants))
	seen := make(map[string]struct{}, len(c.Participants))
	for _, name := range c.Participants {
		p, ok := dir.Resolve(name)
		if !ok {
			reason := fmt.Sprintf("participant %q not found in directory", name)
			return model.FinalizedMeeting{}, newFailure("participants", reason, ErrUnknownParticipant)
		}
		if _, dup := seen[p.Email]; dup {
			continue
		}
		seen[p.Email] = struct{}{}
		resolved = append(resolved, p)
	}

	if c.StartTime == nil {
		return model.FinalizedMeeting{}, newFailure("start_time", "could not determine a start time from the request", ErrUnparseableTime)
	}
	if !c.StartTime.After(now) {
		reason := fmt.Sprintf("start time %s is not in the future", c.StartTime.Format(time.RFC3339))
		return model.FinalizedMeeting{}, newFailure("start_time", reason, ErrPastTime)
	}

	duration := DefaultDurationMinutes
	if c.DurationMinutes != nil {
		if *c.DurationMinutes <= 0 {
			reason := fmt.Sprintf("duration %d minutes is not positive", *c.DurationMinutes)
			return model.FinalizedMeeting{}, newFailure("duration_minutes", reason, ErrInvalidDuration)
		}
		duration = *c.DurationMinutes
	}

	topic := strings.TrimSpace(c.Topic)
	if topic == "" {
		topic = autoTitle(resolved)
	}

	priority := c.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}

	return model.FinalizedMeeting{
		Participants:    resolved,
		StartTime:       *c.StartTime,
		DurationMinutes: duration,
		Topic:           topic,
		Priority:        priority,
	}, nil
}

// autoTitle generates a meeting title from the resolved participants:
// "Meeting with A", "Meeting with A and B", "Meeting with A, B, and C"
// up to four people, "Team Meeting (N participants)" beyond that.
func autoTitle(participants []model.Participant) string {
	switch n := len(participants); {
	case n == 0:
		return "New Meeting"
	case n == 1:
		return fmt.Sprintf("Meeting with %s", participants[0].Name)
	case n == 2:
		return fmt.Sprintf("Meeting with %s and %s", participants[0].Name, participants[1].Name)
	case n <= 4:
		names := make([]string, 0, n-1)
		for _, p := range participants[:n-1] {
			names = append(names, p.Name)
		}
		return fmt.Sprintf("Meeting with %s, and %s", strings.Join(names, ", "), participants[n-1].Name)
	default:
		return fmt.Sprintf("Team Meeting (%d participants)", n)
	}
}
