package meeting

import (
	"time"

	"smartmeet/internal/model"
)

// DefaultDurationMinutes is applied when a request carries no duration.
const DefaultDurationMinutes = 30

// PreviewInput is the input for the dry-run scheduling flow.
type PreviewInput struct {
	Text          string     // Natural language meeting request from the user
	ReferenceTime *time.Time // Explicit "now" for reproducible parsing (optional)
}

// NameResolution describes how one extracted participant name resolved
// against the directory.
type NameResolution struct {
	Name        string              // Name as extracted from the request
	Resolved    *model.Participant  // Exact directory match (nil when unknown)
	Suggestions []model.Participant // Fuzzy candidates for correction flows
}

// Conflict flags an already-scheduled meeting overlapping the requested
// window for one of the resolved participants.
type Conflict struct {
	ParticipantEmail string    `json:"participant_email"`
	MeetingID        string    `json:"meeting_id"`
	Topic            string    `json:"topic"`
	StartTime        time.Time `json:"start_time"`
	EndTime          time.Time `json:"end_time"`
}

// Slot is a free time window every requested participant can attend.
type Slot struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// PreviewOutput is the result of the dry-run flow. Exactly one of
// Meeting and Failure is set.
type PreviewOutput struct {
	Candidate        model.CandidateMeeting
	Meeting          *model.FinalizedMeeting
	Failure          *ValidationFailure
	Resolutions      []NameResolution
	Conflicts        []Conflict
	AlternativeSlots []Slot
}

// ScheduleInput is the input for end-to-end scheduling.
type ScheduleInput struct {
	Text          string
	ReferenceTime *time.Time
}

// ScheduleOutput is the result of a successful scheduling operation.
// Conflicts are warnings; they never block the booking.
type ScheduleOutput struct {
	Meeting   model.Meeting
	Conflicts []Conflict
}

// ListInput filters the stored meetings.
type ListInput struct {
	From   *time.Time          // Keep meetings starting at or after this (optional)
	To     *time.Time          // Keep meetings starting before this (optional)
	Status model.MeetingStatus // Filter by status (optional)
	Limit  int                 // Max results, 0 means no cap
}

// ListOutput is the filtered, start-time-ordered meeting list.
type ListOutput struct {
	Meetings []model.Meeting
	Count    int
}

// SlotsInput asks for free windows on a given day.
type SlotsInput struct {
	Day             time.Time // Day to scan, normalized to its date part
	DurationMinutes int       // Slot length, defaults to DefaultDurationMinutes
	Participants    []string  // Names or emails, resolved against the directory
	MaxSlots        int       // Max suggestions, 0 uses the built-in cap
}

// SlotsOutput carries the suggested free windows.
type SlotsOutput struct {
	Slots []Slot
}
