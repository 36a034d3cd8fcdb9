package log

import "context"

// Logger is the logging interface used across the service.
// The context is accepted on every call so request-scoped fields can be
// attached later without changing call sites.
type Logger interface {
	Debug(ctx context.Context, arg ...any)
	Debugf(ctx context.Context, template string, arg ...any)

	Info(ctx context.Context, arg ...any)
	Infof(ctx context.Context, template string, arg ...any)

	Warn(ctx context.Context, arg ...any)
	Warnf(ctx context.Context, template string, arg ...any)

	Error(ctx context.Context, arg ...any)
	Errorf(ctx context.Context, template string, arg ...any)

	DPanic(ctx context.Context, arg ...any)
	DPanicf(ctx context.Context, template string, arg ...any)

	Panic(ctx context.Context, arg ...any)
	Panicf(ctx context.Context, template string, arg ...any)

	Fatal(ctx context.Context, arg ...any)
	Fatalf(ctx context.Context, template string, arg ...any)
}
