package ctxlog

import (
	"sync"
	"time"
)

// Entry is a fluent builder (Builder pattern) for a single record.
// API: logger.At(LevelInfo).Str("from", ...).Dur("took", d).Send("state changed")
//
// The builder only assembles the Context; Send hands level, message and
// context to the Logger untouched.
type Entry struct {
	l     *Logger
	level Level
	ctx   Context
}

var entryPool = sync.Pool{
	New: func() any { return &Entry{} },
}

// At starts a record at level.
func (l *Logger) At(level Level) *Entry {
	e := entryPool.Get().(*Entry)
	e.l = l
	e.level = level
	e.ctx = make(Context, 8)
	return e
}

func (e *Entry) putBack() {
	e.l = nil
	e.level = 0
	e.ctx = nil
	entryPool.Put(e)
}

func (e *Entry) Str(k, v string) *Entry { e.ctx[k] = v; return e }

func (e *Entry) Int(k string, v int) *Entry { e.ctx[k] = v; return e }

func (e *Entry) Int64(k string, v int64) *Entry { e.ctx[k] = v; return e }

func (e *Entry) Float64(k string, v float64) *Entry { e.ctx[k] = v; return e }

func (e *Entry) Bool(k string, v bool) *Entry { e.ctx[k] = v; return e }

func (e *Entry) Dur(k string, v time.Duration) *Entry { e.ctx[k] = v; return e }

func (e *Entry) Time(k string, v time.Time) *Entry { e.ctx[k] = v; return e }

func (e *Entry) Any(k string, v any) *Entry { e.ctx[k] = v; return e }

// Err records err under "error"; nil is ignored.
func (e *Entry) Err(err error) *Entry {
	if err == nil {
		return e
	}
	e.ctx["error"] = err
	return e
}

// Fields merges ctx into the record.
func (e *Entry) Fields(ctx Context) *Entry {
	for k, v := range ctx {
		e.ctx[k] = v
	}
	return e
}

// Send terminates the builder and emits the record.
func (e *Entry) Send(msg string) error {
	err := e.l.Log(e.level, msg, e.ctx)
	e.putBack()
	return err
}
