// Package logging defines the small structured-logging interface the
// server components depend on, keeping them decoupled from any concrete
// logging backend.
package logging

import "context"

// Logger is a context-aware, leveled, key-value logger.
//
// The variadic args are alternating key-value pairs:
//
//	log.Info(ctx, "starting HTTP server", "address", addr)
type Logger interface {
	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning for unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs a failure.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always carries the given
	// key-value pairs, used to tag per-component loggers.
	With(args ...any) Logger
}
