package model

import "time"

// Confidence grades how reliable an extraction is
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
	ConfidenceFailed Confidence = "failed"
)

// Priority represents meeting urgency
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// MeetingStatus represents the lifecycle state of a meeting
type MeetingStatus string

const (
	StatusScheduled MeetingStatus = "scheduled"
	StatusCancelled MeetingStatus = "cancelled"
)

// CandidateMeeting is the raw extraction result from a natural-language
// request. Fields the extractor could not determine are left zero/nil.
type CandidateMeeting struct {
	Participants    []string   // Names as mentioned in the text
	StartTime       *time.Time // Resolved start time, nil when absent
	DurationMinutes *int       // Requested duration, nil when absent
	Topic           string     // Meeting subject, empty when absent
	Priority        Priority   // Urgency hint, defaults to medium
	Confidence      Confidence // Extraction confidence grade
	DateMention     string     // Original date phrase (e.g. "tomorrow")
	TimeMention     string     // Original time phrase (e.g. "2 pm")
}

// FinalizedMeeting is a fully validated meeting ready to be scheduled.
// All participants are resolved directory entries and the start time is
// a concrete future instant.
type FinalizedMeeting struct {
	Participants    []Participant
	StartTime       time.Time
	DurationMinutes int
	Topic           string
	Priority        Priority
}

// Meeting is a scheduled meeting record
type Meeting struct {
	ID              string
	Topic           string
	Participants    []Participant
	StartTime       time.Time
	DurationMinutes int
	Priority        Priority
	Status          MeetingStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// EndTime returns the instant the meeting finishes
func (m Meeting) EndTime() time.Time {
	return m.StartTime.Add(time.Duration(m.DurationMinutes) * time.Minute)
}

// Overlaps reports whether two meetings occupy intersecting time ranges
func (m Meeting) Overlaps(start time.Time, durationMinutes int) bool {
	end := start.Add(time.Duration(durationMinutes) * time.Minute)
	return m.StartTime.Before(end) && start.Before(m.EndTime())
}
