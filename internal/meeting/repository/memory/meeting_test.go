package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"smartmeet/internal/meeting/repository"
	"smartmeet/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func newTestRepository(t *testing.T, capacity int) repository.MeetingRepository {
	t.Helper()
	repo, err := New(capacity, &mockLogger{})
	if err != nil {
		t.Fatalf("failed to create repository: %v", err)
	}
	return repo
}

func createOpt(topic string, start time.Time) repository.CreateOptions {
	return repository.CreateOptions{
		Topic:           topic,
		Participants:    []model.Participant{{Email: "john@company.com", Name: "John Smith"}},
		StartTime:       start,
		DurationMinutes: 30,
		Priority:        model.PriorityMedium,
		CreatedAt:       time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestCreateAndGet(t *testing.T) {
	repo := newTestRepository(t, 10)
	ctx := context.Background()
	start := time.Date(2024, 1, 2, 14, 0, 0, 0, time.UTC)

	created, err := repo.Create(ctx, createOpt("Budget review", start))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.ID == "" {
		t.Fatal("Create() must assign an ID")
	}
	if created.Status != model.StatusScheduled {
		t.Errorf("status = %s, want scheduled", created.Status)
	}
	if !created.CreatedAt.Equal(created.UpdatedAt) {
		t.Errorf("timestamps differ on creation: %v vs %v", created.CreatedAt, created.UpdatedAt)
	}

	got, err := repo.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Topic != "Budget review" || !got.StartTime.Equal(start) {
		t.Errorf("Get() = %+v, want stored meeting", got)
	}
}

func TestGet_NotFound(t *testing.T) {
	repo := newTestRepository(t, 10)

	_, err := repo.Get(context.Background(), "nope")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestList(t *testing.T) {
	repo := newTestRepository(t, 10)
	ctx := context.Background()

	day := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	late, _ := repo.Create(ctx, createOpt("Late", day.Add(16*time.Hour)))
	early, _ := repo.Create(ctx, createOpt("Early", day.Add(9*time.Hour)))
	mid, _ := repo.Create(ctx, createOpt("Mid", day.Add(12*time.Hour)))
	if _, err := repo.UpdateStatus(ctx, mid.ID, model.StatusCancelled, day); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}

	t.Run("Ordered by start time", func(t *testing.T) {
		got, err := repo.List(ctx, repository.ListOptions{})
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("List() returned %d meetings, want 3", len(got))
		}
		if got[0].ID != early.ID || got[1].ID != mid.ID || got[2].ID != late.ID {
			t.Errorf("List() order = %s, %s, %s", got[0].Topic, got[1].Topic, got[2].Topic)
		}
	})

	t.Run("From filter", func(t *testing.T) {
		from := day.Add(10 * time.Hour)
		got, err := repo.List(ctx, repository.ListOptions{From: &from})
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("List() returned %d meetings, want 2", len(got))
		}
	})

	t.Run("To filter", func(t *testing.T) {
		to := day.Add(10 * time.Hour)
		got, err := repo.List(ctx, repository.ListOptions{To: &to})
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(got) != 1 || got[0].ID != early.ID {
			t.Fatalf("List() = %v, want only the early meeting", got)
		}
	})

	t.Run("Status filter", func(t *testing.T) {
		got, err := repo.List(ctx, repository.ListOptions{Status: model.StatusCancelled})
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(got) != 1 || got[0].ID != mid.ID {
			t.Fatalf("List() = %v, want only the cancelled meeting", got)
		}
	})

	t.Run("Limit", func(t *testing.T) {
		got, err := repo.List(ctx, repository.ListOptions{Limit: 2})
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(got) != 2 || got[0].ID != early.ID {
			t.Fatalf("List() = %v, want the two earliest", got)
		}
	})
}

func TestListOverlapping(t *testing.T) {
	repo := newTestRepository(t, 10)
	ctx := context.Background()

	start := time.Date(2024, 1, 2, 14, 0, 0, 0, time.UTC)
	booked, _ := repo.Create(ctx, createOpt("Booked", start)) // 14:00-14:30

	tests := []struct {
		name     string
		at       time.Time
		duration int
		want     int
	}{
		{name: "Same window", at: start, duration: 30, want: 1},
		{name: "Partial overlap", at: start.Add(15 * time.Minute), duration: 30, want: 1},
		{name: "Contains window", at: start.Add(-time.Hour), duration: 180, want: 1},
		{name: "Adjacent after", at: start.Add(30 * time.Minute), duration: 30, want: 0},
		{name: "Adjacent before", at: start.Add(-30 * time.Minute), duration: 30, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.ListOverlapping(ctx, tt.at, tt.duration)
			if err != nil {
				t.Fatalf("ListOverlapping() error = %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("ListOverlapping() returned %d meetings, want %d", len(got), tt.want)
			}
		})
	}

	t.Run("Cancelled meetings never conflict", func(t *testing.T) {
		if _, err := repo.UpdateStatus(ctx, booked.ID, model.StatusCancelled, start); err != nil {
			t.Fatalf("UpdateStatus() error = %v", err)
		}
		got, err := repo.ListOverlapping(ctx, start, 30)
		if err != nil {
			t.Fatalf("ListOverlapping() error = %v", err)
		}
		if len(got) != 0 {
			t.Errorf("ListOverlapping() returned %d meetings, want 0", len(got))
		}
	})
}

func TestUpdateStatus(t *testing.T) {
	repo := newTestRepository(t, 10)
	ctx := context.Background()
	start := time.Date(2024, 1, 2, 14, 0, 0, 0, time.UTC)

	created, _ := repo.Create(ctx, createOpt("Standup", start))

	at := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	updated, err := repo.UpdateStatus(ctx, created.ID, model.StatusCancelled, at)
	if err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	if updated.Status != model.StatusCancelled {
		t.Errorf("status = %s, want cancelled", updated.Status)
	}
	if !updated.UpdatedAt.Equal(at) {
		t.Errorf("updated at = %v, want %v", updated.UpdatedAt, at)
	}

	got, _ := repo.Get(ctx, created.ID)
	if got.Status != model.StatusCancelled {
		t.Error("status change was not stored")
	}

	if _, err := repo.UpdateStatus(ctx, "nope", model.StatusCancelled, at); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("UpdateStatus() error = %v, want ErrNotFound", err)
	}
}

func TestEviction(t *testing.T) {
	repo := newTestRepository(t, 2)
	ctx := context.Background()
	start := time.Date(2024, 1, 2, 14, 0, 0, 0, time.UTC)

	first, _ := repo.Create(ctx, createOpt("First", start))
	second, _ := repo.Create(ctx, createOpt("Second", start.Add(time.Hour)))
	third, _ := repo.Create(ctx, createOpt("Third", start.Add(2*time.Hour)))

	if _, err := repo.Get(ctx, first.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("oldest meeting should be evicted, got err = %v", err)
	}
	for _, id := range []string{second.ID, third.ID} {
		if _, err := repo.Get(ctx, id); err != nil {
			t.Errorf("Get(%s) error = %v, want kept", id, err)
		}
	}
}
