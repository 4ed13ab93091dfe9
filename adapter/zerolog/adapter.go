package zerolog

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/trickstertwo/xclock"

	"github.com/trickstertwo/ctxlog"
)

// SeverityKey carries the original ctxlog level name.
const SeverityKey = "severity"

// Adapter bridges ctxlog to rs/zerolog with low overhead.
//
//   - Fast pre-check using GetLevel() to avoid allocating zerolog.Event when
//     the level is disabled.
//   - Uses Logger.WithLevel(...), which never exits or panics, even for
//     zerolog.FatalLevel.
type Adapter struct {
	l      zerolog.Logger
	closer io.Closer
	writes *ctxlog.WriteTracker
}

func New(l zerolog.Logger) *Adapter {
	return &Adapter{l: l}
}

// Log emits a single entry with xclock's timestamp as "ts". Adapters built
// by Opener return the error of the underlying file write.
func (a *Adapter) Log(level ctxlog.Level, msg string, ctx ctxlog.Context) error {
	zlvl := mapLevel(level)

	// Fast path: drop early if below logger's min level (no Event allocation).
	if zlvl < a.l.GetLevel() {
		return nil
	}

	ev := a.l.WithLevel(zlvl)
	ev.Str("ts", xclock.Now().UTC().Format(time.RFC3339Nano))
	ev.Str(SeverityKey, level.String())
	for _, k := range ctx.Keys() {
		appendEventField(ev, k, ctx[k])
	}
	ev.Msg(msg)
	if a.writes != nil {
		return a.writes.Take()
	}
	return nil
}

// Close closes the file behind the logger, if any.
func (a *Adapter) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

// mapLevel converts ctxlog.Level to zerolog.Level. Alert and Emergency map to
// FatalLevel; WithLevel does not call os.Exit for it.
func mapLevel(l ctxlog.Level) zerolog.Level {
	switch {
	case l <= ctxlog.LevelDebug:
		return zerolog.DebugLevel
	case l <= ctxlog.LevelNotice:
		return zerolog.InfoLevel
	case l <= ctxlog.LevelWarning:
		return zerolog.WarnLevel
	case l <= ctxlog.LevelCritical:
		return zerolog.ErrorLevel
	default:
		return zerolog.FatalLevel
	}
}

// appendEventField writes one context value to a zerolog.Event.
func appendEventField(e *zerolog.Event, k string, v any) {
	switch x := v.(type) {
	case string:
		e.Str(k, x)
	case int:
		e.Int(k, x)
	case int64:
		e.Int64(k, x)
	case uint64:
		e.Uint64(k, x)
	case float64:
		e.Float64(k, x)
	case bool:
		e.Bool(k, x)
	case time.Duration:
		e.Dur(k, x)
	case time.Time:
		e.Time(k, x)
	case error:
		if k == "error" {
			e.Err(x)
		} else {
			e.AnErr(k, x)
		}
	case []byte:
		e.Bytes(k, x)
	default:
		e.Interface(k, x)
	}
}
