package interaction

import (
	"log/slog"
)

// options holds the settings shared by registries, listeners and the handler.
type options struct {
	log *slog.Logger
}

// Option configures a registry, listener or handler.
type Option func(*options)

// WithLogger sets the logger used to report panicking actions and failed
// dispatches. Default: slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

func newOptions(opts []Option) options {
	o := options{log: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
