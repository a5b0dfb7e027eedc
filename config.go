package dfx

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/oriumgames/dfx/scheduler"
	"github.com/pelletier/go-toml/v2"
)

// Config is the file configuration of a Host.
type Config struct {
	Log struct {
		// Level is one of debug, info, warn or error.
		Level string `toml:"level"`
		// Format is text or json.
		Format string `toml:"format"`
	} `toml:"log"`
	Scheduler struct {
		// TicksPerSecond is the tick rate of the scheduler.
		TicksPerSecond int `toml:"ticks-per-second"`
		// Workers is the size of the async worker pool. Zero uses GOMAXPROCS.
		Workers int `toml:"workers"`
	} `toml:"scheduler"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() Config {
	c := Config{}
	c.Log.Level = "info"
	c.Log.Format = "text"
	c.Scheduler.TicksPerSecond = scheduler.TicksPerSecond
	return c
}

// LoadConfig reads the TOML configuration at path. If the file does not
// exist it is created with default values.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		data, err = toml.Marshal(c)
		if err != nil {
			return c, fmt.Errorf("encode default config: %w", err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return c, fmt.Errorf("create default config: %w", err)
		}
		return c, nil
	}
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a TOML configuration. Missing keys keep their default
// values.
func ParseConfig(data []byte) (Config, error) {
	c := DefaultConfig()
	if err := toml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if c.Scheduler.TicksPerSecond <= 0 {
		return c, fmt.Errorf("scheduler.ticks-per-second must be positive, got %d", c.Scheduler.TicksPerSecond)
	}
	if _, err := c.level(); err != nil {
		return c, err
	}
	return c, nil
}

// Logger creates a logger writing to stderr as configured.
func (c Config) Logger() *slog.Logger {
	return c.LoggerTo(os.Stderr)
}

// LoggerTo creates a logger writing to w as configured. An invalid level
// falls back to info.
func (c Config) LoggerTo(w io.Writer) *slog.Logger {
	lvl, err := c.level()
	if err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(c.Log.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// SchedulerOptions returns the scheduler options described by c.
func (c Config) SchedulerOptions() []scheduler.Option {
	opts := []scheduler.Option{scheduler.WithWorkers(c.Scheduler.Workers)}
	if tps := c.Scheduler.TicksPerSecond; tps > 0 {
		opts = append(opts, scheduler.WithTickRate(time.Second/time.Duration(tps)))
	}
	return opts
}

func (c Config) level() (slog.Level, error) {
	var lvl slog.Level
	if c.Log.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return lvl, fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	return lvl, nil
}
