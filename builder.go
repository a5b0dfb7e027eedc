package dfx

import (
	"errors"
	"io"
	"log/slog"

	"github.com/oriumgames/dfx/scheduler"
)

// ErrNoBroadcaster is returned when broadcasting from a Host built without a
// broadcast writer.
var ErrNoBroadcaster = errors.New("no broadcaster configured")

// Builder configures a Host before creation.
// Use NewBuilder() to create a builder and chain configuration methods.
type Builder struct {
	roster    Roster
	broadcast io.Writer
	log       *slog.Logger
	config    *Config
	schedOpts []scheduler.Option
}

// NewBuilder creates a new host builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Roster sets the source of online players, usually the *server.Server.
func (b *Builder) Roster(r Roster) *Builder {
	b.roster = r
	return b
}

// Broadcaster sets where broadcasts are written, usually chat.Global.
func (b *Builder) Broadcaster(w io.Writer) *Builder {
	b.broadcast = w
	return b
}

// Logger sets the logger. It takes precedence over the logger of Config.
func (b *Builder) Logger(log *slog.Logger) *Builder {
	b.log = log
	return b
}

// Config applies a file configuration.
func (b *Builder) Config(c Config) *Builder {
	b.config = &c
	return b
}

// SchedulerOptions adds options for the scheduler. They are applied after
// the options of Config.
func (b *Builder) SchedulerOptions(opts ...scheduler.Option) *Builder {
	b.schedOpts = append(b.schedOpts, opts...)
	return b
}

// Build creates the host. Sync tasks of its scheduler run through exec,
// for example scheduler.WorldExecutor(srv.World()).
func (b *Builder) Build(exec scheduler.Executor) *Host {
	log := b.log
	var opts []scheduler.Option
	if b.config != nil {
		if log == nil {
			log = b.config.Logger()
		}
		opts = append(opts, b.config.SchedulerOptions()...)
	}
	if log == nil {
		log = slog.Default()
	}
	opts = append(opts, scheduler.WithLogger(log))
	opts = append(opts, b.schedOpts...)

	return &Host{
		roster:    b.roster,
		broadcast: b.broadcast,
		sched:     scheduler.New(exec, opts...),
		log:       log,
	}
}
