package meeting

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"smartmeet/internal/directory"
	"smartmeet/internal/model"
)

func testDirectory() *directory.Directory {
	return directory.New([]model.Participant{
		{Email: "john@company.com", Name: "John", Department: "Engineering", Title: "Software Engineer"},
		{Email: "sarah@company.com", Name: "Sarah", Department: "Product", Title: "Product Manager"},
		{Email: "lisa@company.com", Name: "Lisa", Department: "Design", Title: "UX Designer"},
		{Email: "david@company.com", Name: "David", Department: "Engineering", Title: "DevOps Engineer"},
		{Email: "emily@company.com", Name: "Emily", Department: "Marketing", Title: "Marketing Manager"},
	})
}

func TestValidate_Success(t *testing.T) {
	dir := testDirectory()
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	start := time.Date(2024, 1, 2, 14, 0, 0, 0, time.UTC)

	c := model.CandidateMeeting{
		Participants: []string{"John", "Sarah"},
		StartTime:    &start,
		Confidence:   model.ConfidenceHigh,
	}

	m, err := Validate(c, dir, now)
	if err != nil {
		t.Fatalf("Validate() error = %v, want nil", err)
	}
	if !m.StartTime.Equal(start) {
		t.Errorf("start time = %v, want %v", m.StartTime, start)
	}
	if m.DurationMinutes != DefaultDurationMinutes {
		t.Errorf("duration = %d, want default %d", m.DurationMinutes, DefaultDurationMinutes)
	}
	if len(m.Participants) != 2 {
		t.Fatalf("participants = %d, want 2", len(m.Participants))
	}
	if m.Participants[0].Email != "john@company.com" || m.Participants[1].Email != "sarah@company.com" {
		t.Errorf("participants = %v, want John then Sarah", m.Participants)
	}
	if m.Topic != "Meeting with John and Sarah" {
		t.Errorf("topic = %q, want auto-generated title", m.Topic)
	}
	if m.Priority != model.PriorityMedium {
		t.Errorf("priority = %s, want medium", m.Priority)
	}
}

func TestValidate_MissingParticipants(t *testing.T) {
	dir := testDirectory()
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	start := time.Date(2024, 1, 2, 14, 0, 0, 0, time.UTC)
	duration := 45

	// Empty participants fail regardless of what else the candidate carries
	tests := []struct {
		name string
		c    model.CandidateMeeting
	}{
		{
			name: "Empty candidate",
			c:    model.CandidateMeeting{Confidence: model.ConfidenceFailed},
		},
		{
			name: "All other fields set",
			c: model.CandidateMeeting{
				StartTime:       &start,
				DurationMinutes: &duration,
				Topic:           "Budget review",
				Priority:        model.PriorityHigh,
				Confidence:      model.ConfidenceHigh,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(tt.c, dir, now)
			if !errors.Is(err, ErrMissingParticipants) {
				t.Fatalf("Validate() error = %v, want ErrMissingParticipants", err)
			}
		})
	}
}

func TestValidate_UnknownParticipant(t *testing.T) {
	dir := testDirectory()
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	start := time.Date(2024, 1, 2, 14, 0, 0, 0, time.UTC)

	c := model.CandidateMeeting{
		Participants: []string{"Mike"},
		StartTime:    &start,
	}

	_, err := Validate(c, dir, now)
	if !errors.Is(err, ErrUnknownParticipant) {
		t.Fatalf("Validate() error = %v, want ErrUnknownParticipant", err)
	}

	var failure *ValidationFailure
	if !errors.As(err, &failure) {
		t.Fatalf("Validate() error type = %T, want *ValidationFailure", err)
	}
	if failure.Field != "participants" {
		t.Errorf("failure field = %q, want participants", failure.Field)
	}
	if !strings.Contains(failure.Reason, "Mike") {
		t.Errorf("failure reason = %q, want the unresolved name in it", failure.Reason)
	}
}

func TestValidate_NamesFirstUnknownParticipant(t *testing.T) {
	dir := testDirectory()
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	c := model.CandidateMeeting{
		Participants: []string{"John", "Mike", "Bob"},
	}

	_, err := Validate(c, dir, now)

	var failure *ValidationFailure
	if !errors.As(err, &failure) {
		t.Fatalf("Validate() error type = %T, want *ValidationFailure", err)
	}
	if !strings.Contains(failure.Reason, "Mike") || strings.Contains(failure.Reason, "Bob") {
		t.Errorf("failure reason = %q, want the first unresolved name only", failure.Reason)
	}
}

func TestValidate_CaseInsensitiveResolution(t *testing.T) {
	dir := testDirectory()
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	start := time.Date(2024, 1, 2, 14, 0, 0, 0, time.UTC)

	c := model.CandidateMeeting{
		Participants: []string{"JOHN", "sarah", "lisa@company.com"},
		StartTime:    &start,
	}

	m, err := Validate(c, dir, now)
	if err != nil {
		t.Fatalf("Validate() error = %v, want nil", err)
	}
	if len(m.Participants) != 3 {
		t.Fatalf("participants = %d, want 3", len(m.Participants))
	}
	if m.Participants[2].Email != "lisa@company.com" {
		t.Errorf("email lookup failed, participants = %v", m.Participants)
	}
}

func TestValidate_DeduplicatesParticipants(t *testing.T) {
	dir := testDirectory()
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	start := time.Date(2024, 1, 2, 14, 0, 0, 0, time.UTC)

	c := model.CandidateMeeting{
		Participants: []string{"John", "JOHN", "john@company.com"},
		StartTime:    &start,
	}

	m, err := Validate(c, dir, now)
	if err != nil {
		t.Fatalf("Validate() error = %v, want nil", err)
	}
	if len(m.Participants) != 1 {
		t.Errorf("participants = %v, want single entry after dedupe", m.Participants)
	}
}

func TestValidate_UnparseableTime(t *testing.T) {
	dir := testDirectory()
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	c := model.CandidateMeeting{
		Participants: []string{"John"},
	}

	_, err := Validate(c, dir, now)
	if !errors.Is(err, ErrUnparseableTime) {
		t.Fatalf("Validate() error = %v, want ErrUnparseableTime", err)
	}
}

func TestValidate_PastTime(t *testing.T) {
	dir := testDirectory()
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
	}{
		{name: "Before now", start: now.Add(-time.Hour)},
		{name: "Exactly now", start: now},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := model.CandidateMeeting{
				Participants: []string{"John"},
				StartTime:    &tt.start,
			}

			_, err := Validate(c, dir, now)
			if !errors.Is(err, ErrPastTime) {
				t.Fatalf("Validate() error = %v, want ErrPastTime", err)
			}
		})
	}
}

func TestValidate_Duration(t *testing.T) {
	dir := testDirectory()
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	start := time.Date(2024, 1, 2, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		duration *int
		want     int
		wantErr  error
	}{
		{name: "Absent defaults", duration: nil, want: DefaultDurationMinutes},
		{name: "Explicit kept", duration: intPtr(45), want: 45},
		{name: "Zero rejected", duration: intPtr(0), wantErr: ErrInvalidDuration},
		{name: "Negative rejected", duration: intPtr(-15), wantErr: ErrInvalidDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := model.CandidateMeeting{
				Participants:    []string{"John"},
				StartTime:       &start,
				DurationMinutes: tt.duration,
			}

			m, err := Validate(c, dir, now)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Validate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() error = %v, want nil", err)
			}
			if m.DurationMinutes != tt.want {
				t.Errorf("duration = %d, want %d", m.DurationMinutes, tt.want)
			}
		})
	}
}

func TestValidate_ShortCircuitOrder(t *testing.T) {
	dir := testDirectory()
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	badDuration := -10

	// Several defects at once: the first check in order wins
	tests := []struct {
		name string
		c    model.CandidateMeeting
		want error
	}{
		{
			name: "Missing participants beats past time",
			c:    model.CandidateMeeting{StartTime: &past},
			want: ErrMissingParticipants,
		},
		{
			name: "Unknown participant beats past time",
			c: model.CandidateMeeting{
				Participants: []string{"Mike"},
				StartTime:    &past,
			},
			want: ErrUnknownParticipant,
		},
		{
			name: "Missing time beats bad duration",
			c: model.CandidateMeeting{
				Participants:    []string{"John"},
				DurationMinutes: &badDuration,
			},
			want: ErrUnparseableTime,
		},
		{
			name: "Past time beats bad duration",
			c: model.CandidateMeeting{
				Participants:    []string{"John"},
				StartTime:       &past,
				DurationMinutes: &badDuration,
			},
			want: ErrPastTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(tt.c, dir, now)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestValidate_Idempotent(t *testing.T) {
	dir := testDirectory()
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	start := time.Date(2024, 1, 2, 14, 0, 0, 0, time.UTC)
	duration := 60

	c := model.CandidateMeeting{
		Participants:    []string{"John", "Sarah", "Lisa"},
		StartTime:       &start,
		DurationMinutes: &duration,
		Topic:           "Quarterly planning",
		Priority:        model.PriorityHigh,
	}

	first, err1 := Validate(c, dir, now)
	second, err2 := Validate(c, dir, now)

	if err1 != nil || err2 != nil {
		t.Fatalf("Validate() errors = %v, %v, want nil", err1, err2)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated validation differs:\nfirst  = %+v\nsecond = %+v", first, second)
	}

	// Failures repeat identically too
	bad := model.CandidateMeeting{Participants: []string{"Mike"}, StartTime: &start}
	_, failErr1 := Validate(bad, dir, now)
	_, failErr2 := Validate(bad, dir, now)
	if failErr1 == nil || failErr2 == nil || failErr1.Error() != failErr2.Error() {
		t.Errorf("repeated failure differs: %v vs %v", failErr1, failErr2)
	}
}

func TestValidate_TopicAndPriorityPreserved(t *testing.T) {
	dir := testDirectory()
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	start := time.Date(2024, 1, 2, 14, 0, 0, 0, time.UTC)

	c := model.CandidateMeeting{
		Participants: []string{"John"},
		StartTime:    &start,
		Topic:        "Budget review",
		Priority:     model.PriorityUrgent,
	}

	m, err := Validate(c, dir, now)
	if err != nil {
		t.Fatalf("Validate() error = %v, want nil", err)
	}
	if m.Topic != "Budget review" {
		t.Errorf("topic = %q, want explicit topic preserved", m.Topic)
	}
	if m.Priority != model.PriorityUrgent {
		t.Errorf("priority = %s, want urgent", m.Priority)
	}
}

func TestAutoTitle(t *testing.T) {
	people := []model.Participant{
		{Email: "john@company.com", Name: "John"},
		{Email: "sarah@company.com", Name: "Sarah"},
		{Email: "lisa@company.com", Name: "Lisa"},
		{Email: "david@company.com", Name: "David"},
		{Email: "emily@company.com", Name: "Emily"},
	}

	tests := []struct {
		n    int
		want string
	}{
		{0, "New Meeting"},
		{1, "Meeting with John"},
		{2, "Meeting with John and Sarah"},
		{3, "Meeting with John, Sarah, and Lisa"},
		{4, "Meeting with John, Sarah, Lisa, and David"},
		{5, "Team Meeting (5 participants)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := autoTitle(people[:tt.n]); got != tt.want {
				t.Errorf("autoTitle(%d) = %q, want %q", tt.n, got, tt.want)
			}
		})
	}
}

func intPtr(i int) *int {
	return &i
}
