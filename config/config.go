// Package config loads ctxlog settings from YAML and CTXLOG_* environment
// variables and turns them into a ready FileLogger.
package config

import (
	"github.com/cockroachdb/errors"

	"github.com/trickstertwo/ctxlog"
)

// Backends.
const (
	BackendZap     = "zap"
	BackendZerolog = "zerolog"
	BackendSlog    = "slog"
)

// Formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
	FormatText    = "text"
)

// Destination kinds.
const (
	KindStatic    = "static"
	KindDaily     = "daily"
	KindDailyFile = "dailyfile"
	KindScoped    = "scoped"
)

// ErrInvalid marks every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the application-level logging configuration.
type Config struct {
	Backend     string      `koanf:"backend"`
	Level       string      `koanf:"level"`
	Format      string      `koanf:"format"`
	MaxSizeMB   int         `koanf:"max_size_mb"`
	Destination Destination `koanf:"destination"`
}

// Destination selects and parameterizes a destination policy.
type Destination struct {
	Kind   string `koanf:"kind"`
	Root   string `koanf:"root"`
	File   string `koanf:"file"`
	Layout string `koanf:"layout"`
	Prefix string `koanf:"prefix"`
	Scope  string `koanf:"scope"`
}

func applyDefaults(cfg *Config) {
	if cfg.Backend == "" {
		cfg.Backend = BackendZap
	}
	if cfg.Level == "" {
		cfg.Level = "debug"
	}
	if cfg.Format == "" {
		cfg.Format = FormatJSON
	}
	if cfg.Destination.Kind == "" {
		cfg.Destination.Kind = KindStatic
	}
	if cfg.Destination.File == "" && cfg.Destination.Kind != KindDailyFile {
		cfg.Destination.File = "app.log"
	}
	if cfg.Destination.Prefix == "" && cfg.Destination.Kind == KindDailyFile {
		cfg.Destination.Prefix = "app"
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendZap, BackendZerolog, BackendSlog:
	default:
		return errors.Wrapf(ErrInvalid, "unknown backend %q", c.Backend)
	}
	switch c.Format {
	case FormatJSON, FormatConsole, FormatText:
	default:
		return errors.Wrapf(ErrInvalid, "unknown format %q", c.Format)
	}
	if _, err := ctxlog.ParseLevel(c.Level); err != nil {
		return errors.Mark(errors.Wrap(err, "level"), ErrInvalid)
	}
	if c.MaxSizeMB < 0 {
		return errors.Wrapf(ErrInvalid, "max_size_mb must not be negative, got %d", c.MaxSizeMB)
	}
	switch c.Destination.Kind {
	case KindStatic, KindDaily, KindDailyFile, KindScoped:
	default:
		return errors.Wrapf(ErrInvalid, "unknown destination kind %q", c.Destination.Kind)
	}
	if c.Destination.Root == "" {
		return errors.Wrap(ErrInvalid, "destination root is required")
	}
	return nil
}
