package zerolog

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/trickstertwo/ctxlog"
)

// Config is an explicit, code-first configuration for zerolog file sinks.
type Config struct {
	Fs                afero.Fs // default: OS filesystem
	MinLevel          ctxlog.Level
	Console           bool   // console output instead of JSON
	ConsoleTimeFormat string // only used if Console; default time.RFC3339Nano
}

// Opener returns a ctxlog.Opener producing one zerolog logger per file.
func Opener(cfg Config) ctxlog.OpenerFunc {
	return func(path string) (ctxlog.Sink, error) {
		f, err := ctxlog.OpenFile(cfg.Fs, path)
		if err != nil {
			return nil, err
		}
		return newSink(f, cfg), nil
	}
}

// newSink builds an Adapter that owns w and reports its write errors.
func newSink(w io.WriteCloser, cfg Config) *Adapter {
	tw := ctxlog.TrackWrites(w)
	a := New(newZerolog(tw, cfg))
	a.closer = tw
	a.writes = tw
	return a
}

// NewFileLogger wires a zerolog-backed FileLogger for d.
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

func newZerolog(w io.Writer, cfg Config) zerolog.Logger {
	var zl zerolog.Logger
	if cfg.Console {
		// The adapter writes its own "ts" field; hide zerolog's empty time column.
		cw := zerolog.ConsoleWriter{Out: w, NoColor: true, PartsExclude: []string{zerolog.TimestampFieldName}}
		cw.TimeFormat = cfg.ConsoleTimeFormat
		if cw.TimeFormat == "" {
			cw.TimeFormat = time.RFC3339Nano
		}
		zl = zerolog.New(cw)
	} else {
		zl = zerolog.New(w)
	}
	return zl.Level(mapLevel(cfg.MinLevel))
}
