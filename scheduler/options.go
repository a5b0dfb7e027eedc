package scheduler

import (
	"log/slog"
	"runtime"
	"time"
)

// Options configures a Scheduler.
type Options struct {
	// TickRate is the wall-clock length of a tick.
	// Default: 50ms (20 TPS).
	TickRate time.Duration

	// Workers is the number of goroutines running async tasks.
	// Default: GOMAXPROCS.
	Workers int

	// Log receives task panics.
	// Default: slog.Default().
	Log *slog.Logger
}

// defaultOptions returns sensible defaults.
func defaultOptions() Options {
	return Options{
		TickRate: TickDuration,
		Workers:  max(runtime.GOMAXPROCS(0), 1),
		Log:      slog.Default(),
	}
}

// Option configures a Scheduler.
type Option func(*Options)

// WithTickRate sets the tick rate.
func WithTickRate(d time.Duration) Option {
	return func(o *Options) {
		if d > 0 {
			o.TickRate = d
		}
	}
}

// WithWorkers sets the number of async workers.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Workers = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(o *Options) {
		if log != nil {
			o.Log = log
		}
	}
}

// TaskOption configures a single task.
type TaskOption func(*Task)

// Async runs the task on the worker pool instead of inside a world
// transaction.
func Async() TaskOption {
	return func(t *Task) {
		t.async = true
	}
}

// AsyncIf runs the task asynchronously when async is true.
func AsyncIf(async bool) TaskOption {
	return func(t *Task) {
		t.async = async
	}
}
