package slog

import (
	"context"
	"io"
	"log/slog"

	"github.com/trickstertwo/xclock"

	"github.com/trickstertwo/ctxlog"
)

// Adapter adapts ctxlog to the Go slog API (Adapter Strategy).
// ctxlog levels share slog's numeric scale, so levels map one to one.
type Adapter struct {
	l      *slog.Logger
	closer io.Closer
}

func toSlog(l ctxlog.Level) slog.Level {
	return slog.Level(l)
}

func New(l *slog.Logger) *Adapter {
	if l == nil {
		l = slog.Default()
	}
	return &Adapter{l: l}
}

// Log hands the record straight to the handler so that write failures
// reach the caller; slog.Logger drops them.
func (a *Adapter) Log(level ctxlog.Level, msg string, ctx ctxlog.Context) error {
	bg := context.Background()
	lvl := toSlog(level)
	if !a.l.Enabled(bg, lvl) {
		return nil
	}

	keys := ctx.Keys()
	attrs := make([]slog.Attr, 0, len(keys)+1)

	// Single authoritative timestamp from xclock
	now := xclock.Now()
	attrs = append(attrs, slog.Time("ts", now))
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, ctx[k]))
	}

	r := slog.NewRecord(now, lvl, msg, 0)
	r.AddAttrs(attrs...)
	return a.l.Handler().Handle(bg, r)
}

func (a *Adapter) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

// ReplaceLevelNames renders ctxlog level names ("notice", "alert" ...)
// instead of slog's "INFO+2" style. Use as slog.HandlerOptions.ReplaceAttr.
func ReplaceLevelNames(groups []string, attr slog.Attr) slog.Attr {
	if len(groups) > 0 || attr.Key != slog.LevelKey {
		return attr
	}
	if lvl, ok := attr.Value.Any().(slog.Level); ok {
		attr.Value = slog.StringValue(ctxlog.Level(lvl).String())
	}
	return attr
}
