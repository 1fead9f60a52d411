// Package logging defines the minimal structured-logging interface shared by
// the StoreHub client packages. The concrete implementation wraps slog;
// consumers depend on the interface so tests can inject a silent logger.
package logging

import "context"

// Logger is a context-aware, structured logger. The variadic args are
// key–value pairs:
//
//	log.Info(ctx, "query issued", "seq", seq, "field", q.Sort.Field)
type Logger interface {
	// Debug logs fine-grained diagnostics (sequence numbers, discards).
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs unusual but non-fatal conditions (stale responses, demotions).
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given pairs.
	With(args ...any) Logger
}
