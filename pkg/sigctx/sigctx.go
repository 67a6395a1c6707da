// Package sigctx derives the application root context from shutdown
// signals.
package sigctx

import (
	"context"
	"os/signal"
	"syscall"
)

// NotifyContext returns a context that is cancelled on SIGINT or
// SIGTERM. The returned stop function releases the signal handlers.
func NotifyContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(
		context.Background(), syscall.SIGINT, syscall.SIGTERM,
	)
}
