package config

import (
	"github.com/spf13/afero"

	"github.com/trickstertwo/ctxlog"
	slogadapter "github.com/trickstertwo/ctxlog/adapter/slog"
	zapadapter "github.com/trickstertwo/ctxlog/adapter/zap"
	zerologadapter "github.com/trickstertwo/ctxlog/adapter/zerolog"
)

// NewDestination builds the configured destination policy.
func (c *Config) NewDestination() ctxlog.Destination {
	d := c.Destination
	switch d.Kind {
	case KindDaily:
		return ctxlog.DailyDirectory{Root: d.Root, Layout: d.Layout, File: d.File}
	case KindDailyFile:
		return ctxlog.DailyFile{Dir: d.Root, Prefix: d.Prefix, Layout: d.Layout}
	case KindScoped:
		scope := d.Scope
		return ctxlog.Scoped{Root: d.Root, File: d.File, Scope: func() string { return scope }}
	default:
		return ctxlog.Static{Dir: d.Root, File: d.File}
	}
}

// NewOpener builds the sink opener for the configured backend on fs.
func (c *Config) NewOpener(fs afero.Fs) (ctxlog.Opener, error) {
	level, err := ctxlog.ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}
	switch c.Backend {
	case BackendZerolog:
		return zerologadapter.Opener(zerologadapter.Config{
			Fs:       fs,
			MinLevel: level,
			Console:  c.Format != FormatJSON,
		}), nil
	case BackendSlog:
		format := slogadapter.FormatJSON
		if c.Format != FormatJSON {
			format = slogadapter.FormatText
		}
		return slogadapter.Opener(slogadapter.Config{
			Fs:       fs,
			MinLevel: level,
			Format:   format,
		}), nil
	default:
		return zapadapter.Opener(zapadapter.Config{
			Fs:        fs,
			MinLevel:  level,
			Console:   c.Format != FormatJSON,
			MaxSizeMB: c.MaxSizeMB,
		}), nil
	}
}

// Build wires a FileLogger from the configuration.
func (c *Config) Build(fs afero.Fs, observers ...ctxlog.Observer) (*ctxlog.FileLogger, error) {
	opener, err := c.NewOpener(fs)
	if err != nil {
		return nil, err
	}
	if c.Backend == BackendZap && c.MaxSizeMB > 0 {
		// lumberjack writes to the OS filesystem; the directory must be
		// guaranteed there.
		fs = zapadapter.Config{Fs: fs, MaxSizeMB: c.MaxSizeMB}.Filesystem()
	}
	b := ctxlog.NewBuilder().
		WithDestination(c.NewDestination()).
		WithOpener(opener).
		WithFs(fs)
	for _, o := range observers {
		b = b.AddObserver(o)
	}
	return b.Build()
}
