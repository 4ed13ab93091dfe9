package slog

import (
	"io"
	"log/slog"

	"github.com/spf13/afero"

	"github.com/trickstertwo/ctxlog"
)

// Format selects the slog handler format.
type Format uint8

const (
	FormatJSON Format = iota + 1
	FormatText
)

// Config is an explicit, code-first configuration for slog file sinks.
type Config struct {
	Fs        afero.Fs // default: OS filesystem
	MinLevel  ctxlog.Level
	Format    Format // JSON (default) or Text
	AddSource bool
}

// Opener returns a ctxlog.Opener producing one slog handler per file.
func Opener(cfg Config) ctxlog.OpenerFunc {
	return func(path string) (ctxlog.Sink, error) {
		f, err := ctxlog.OpenFile(cfg.Fs, path)
		if err != nil {
			return nil, err
		}
		a := New(slog.New(newHandler(f, cfg)))
		a.closer = f
		return a, nil
	}
}

// NewFileLogger wires a slog-backed FileLogger for d.
func NewFileLogger(d ctxlog.Destination, cfg Config, observers ...ctxlog.Observer) (*ctxlog.FileLogger, error) {
	b := ctxlog.NewBuilder().
		WithDestination(d).
		WithOpener(Opener(cfg)).
		WithFs(cfg.Fs)
	for _, o := range observers {
		b = b.AddObserver(o)
	}
	return b.Build()
}

func newHandler(w io.Writer, cfg Config) slog.Handler {
	opts := &slog.HandlerOptions{
		Level:       toSlog(cfg.MinLevel),
		AddSource:   cfg.AddSource,
		ReplaceAttr: ReplaceLevelNames,
	}
	if cfg.Format == FormatText {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}
