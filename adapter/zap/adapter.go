package zap

import (
	"io"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/trickstertwo/xclock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/ctxlog"
)

// SeverityKey carries the original ctxlog level name, since zap has fewer
// levels than ctxlog.
const SeverityKey = "severity"

// Adapter bridges ctxlog to go.uber.org/zap.
//
//   - Uses Logger.Check(level, msg) to avoid building fields when disabled.
//   - Writes xclock's timestamp as a RFC3339Nano "ts" string field.
//   - Never maps to DPanic/Panic/Fatal, so no exits in library code.
type Adapter struct {
	l      *zap.Logger
	tsKey  string
	closer io.Closer            // file behind l, when opened by Opener
	writes *ctxlog.WriteTracker // write errors of that file
}

// New creates an adapter for the provided zap logger.
func New(l *zap.Logger) *Adapter {
	if l == nil {
		l = zap.NewNop()
	}
	return &Adapter{l: l, tsKey: "ts"}
}

// Log emits a single entry. For adapters built by Opener it returns the
// error of the underlying file write; otherwise zap reports write failures
// through its own ErrorOutput and Log returns nil.
func (a *Adapter) Log(level ctxlog.Level, msg string, ctx ctxlog.Context) error {
	ce := a.l.Check(toZapLevel(level), msg)
	if ce == nil {
		return nil
	}

	zfs := make([]zap.Field, 0, 2+len(ctx))
	if a.tsKey != "" {
		zfs = append(zfs, zap.String(a.tsKey, xclock.Now().UTC().Format(time.RFC3339Nano)))
	}
	zfs = append(zfs, zap.String(SeverityKey, level.String()))
	for _, k := range ctx.Keys() {
		zfs = append(zfs, zap.Any(k, ctx[k]))
	}

	ce.Write(zfs...)
	if a.writes != nil {
		return a.writes.Take()
	}
	return nil
}

// Close flushes zap and closes the underlying file, if any.
func (a *Adapter) Close() error {
	syncErr := a.l.Sync()
	if a.closer == nil {
		return syncErr
	}
	return errors.CombineErrors(syncErr, a.closer.Close())
}

func toZapLevel(l ctxlog.Level) zapcore.Level {
	switch {
	case l <= ctxlog.LevelDebug:
		return zapcore.DebugLevel
	case l <= ctxlog.LevelNotice:
		return zapcore.InfoLevel // zap has no notice
	case l <= ctxlog.LevelWarning:
		return zapcore.WarnLevel
	default:
		// Critical and above stay at Error to avoid DPanic/Fatal side effects.
		return zapcore.ErrorLevel
	}
}
