package zap

import (
	"io"

	"github.com/spf13/afero"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/trickstertwo/ctxlog"
)

// Config is an explicit, code-first configuration for zap-backed file sinks.
type Config struct {
	Fs                 afero.Fs // default: OS filesystem
	MinLevel           ctxlog.Level
	Console            bool                  // console encoder instead of JSON
	EncoderConfig      zapcore.EncoderConfig // if zero, a sensible default is used
	TimestampFieldName string                // default "ts"

	// MaxSizeMB > 0 writes through lumberjack, which caps the file size on
	// the OS filesystem. Fs is replaced by the OS filesystem in that case.
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// Opener returns a ctxlog.Opener producing one zap logger per file.
func Opener(cfg Config) ctxlog.OpenerFunc {
	return func(path string) (ctxlog.Sink, error) {
		w, err := openWriter(cfg, path)
		if err != nil {
			return nil, err
		}
		return newSink(w, cfg), nil
	}
}

// newSink builds an Adapter that owns w and reports its write errors.
func newSink(w io.WriteCloser, cfg Config) *Adapter {
	if cfg.TimestampFieldName == "" {
		cfg.TimestampFieldName = "ts"
	}
	tw := ctxlog.TrackWrites(w)
	core := zapcore.NewCore(encoder(cfg), zapcore.AddSync(tw), toZapLevel(cfg.MinLevel))
	return &Adapter{
		// Write failures are returned by Log instead of printed.
		l:      zap.New(core, zap.AddStacktrace(zapcore.FatalLevel+1), zap.ErrorOutput(zapcore.AddSync(io.Discard))),
		tsKey:  cfg.TimestampFieldName,
		closer: tw,
		writes: tw,
	}
}

// Filesystem returns the filesystem the sink files live on. Size-capped
// files are written by lumberjack, which only knows the OS filesystem.
func (cfg Config) Filesystem() afero.Fs {
	if cfg.MaxSizeMB > 0 {
		return afero.NewOsFs()
	}
	return cfg.Fs
}

// NewFileLogger wires a zap-backed FileLogger for d.
func NewFileLogger(d ctxlog.Destination, cfg Config, observers ...ctxlog.Observer) (*ctxlog.FileLogger, error) {
	b := ctxlog.NewBuilder().
		WithDestination(d).
		WithOpener(Opener(cfg)).
		WithFs(cfg.Filesystem())
	for _, o := range observers {
		b = b.AddObserver(o)
	}
	return b.Build()
}

func openWriter(cfg Config, path string) (io.WriteCloser, error) {
	if cfg.MaxSizeMB > 0 {
		return &lumberjack.Logger{
			Filename:   path,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		}, nil
	}
	return ctxlog.OpenFile(cfg.Fs, path)
}

func encoder(cfg Config) zapcore.Encoder {
	encCfg := cfg.EncoderConfig
	if encCfg.LevelKey == "" && encCfg.MessageKey == "" {
		encCfg = zapcore.EncoderConfig{
			TimeKey:        "", // the adapter injects "ts"
			LevelKey:       "level",
			MessageKey:     "message",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		}
	} else {
		encCfg.TimeKey = ""
	}
	if cfg.Console {
		return zapcore.NewConsoleEncoder(encCfg)
	}
	return zapcore.NewJSONEncoder(encCfg)
}
