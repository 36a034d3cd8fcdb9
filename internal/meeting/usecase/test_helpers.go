package usecase

import (
	"context"
	"testing"
	"time"

	"smartmeet/internal/directory"
	"smartmeet/internal/meeting/repository/memory"
	"smartmeet/internal/model"
	"smartmeet/pkg/datemath"
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

// Mock extraction engine returning a fixed candidate
type mockEngine struct {
	candidate model.CandidateMeeting
	lastText  string
	lastNow   time.Time
	calls     int
}

func (m *mockEngine) Parse(ctx context.Context, text string, now time.Time) model.CandidateMeeting {
	m.calls++
	m.lastText = text
	m.lastNow = now
	return m.candidate
}

func (m *mockEngine) Name() string {
	return "mock"
}

func testParticipants() []model.Participant {
	return []model.Participant{
		{Email: "john@company.com", Name: "John", Department: "Engineering", Title: "Software Engineer"},
		{Email: "sarah@company.com", Name: "Sarah", Department: "Product", Title: "Product Manager"},
		{Email: "lisa@company.com", Name: "Lisa", Department: "Design", Title: "UX Designer"},
	}
}

func newTestUseCase(t *testing.T, engine *mockEngine) *implUseCase {
	t.Helper()

	repo, err := memory.New(16, &mockLogger{})
	if err != nil {
		t.Fatalf("failed to create repository: %v", err)
	}
	dates, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("failed to create date parser: %v", err)
	}
	dir := directory.New(testParticipants())

	return New(&mockLogger{}, engine, dir, repo, dates, 9, 17)
}
