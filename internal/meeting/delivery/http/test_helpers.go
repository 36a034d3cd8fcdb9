package http

import (
	"context"

	"smartmeet/internal/meeting"
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

// Function-field mock for the meeting UseCase
type mockUseCase struct {
	previewFn  func(ctx context.Context, input meeting.PreviewInput) (meeting.PreviewOutput, error)
	scheduleFn func(ctx context.Context, input meeting.ScheduleInput) (meeting.ScheduleOutput, error)
	listFn     func(ctx context.Context, input meeting.ListInput) (meeting.ListOutput, error)
	detailFn   func(ctx context.Context, id string) (model.Meeting, error)
	cancelFn   func(ctx context.Context, id string) error
	slotsFn    func(ctx context.Context, input meeting.SlotsInput) (meeting.SlotsOutput, error)
}

func (m *mockUseCase) Preview(ctx context.Context, input meeting.PreviewInput) (meeting.PreviewOutput, error) {
	return m.previewFn(ctx, input)
}

func (m *mockUseCase) Schedule(ctx context.Context, input meeting.ScheduleInput) (meeting.ScheduleOutput, error) {
	return m.scheduleFn(ctx, input)
}

func (m *mockUseCase) List(ctx context.Context, input meeting.ListInput) (meeting.ListOutput, error) {
	return m.listFn(ctx, input)
}

func (m *mockUseCase) Detail(ctx context.Context, id string) (model.Meeting, error) {
	return m.detailFn(ctx, id)
}

func (m *mockUseCase) Cancel(ctx context.Context, id string) error {
	return m.cancelFn(ctx, id)
}

func (m *mockUseCase) SuggestSlots(ctx context.Context, input meeting.SlotsInput) (meeting.SlotsOutput, error) {
	return m.slotsFn(ctx, input)
}
