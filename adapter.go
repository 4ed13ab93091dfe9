package ctxlog

import "io"

// Adapter is the leveled-logging capability: one entry point per severity
// plus a generic Log. Anything satisfying it can be wrapped by a Logger.
type Adapter interface {
	Emergency(msg string, ctx Context) error
	Alert(msg string, ctx Context) error
	Critical(msg string, ctx Context) error
	Error(msg string, ctx Context) error
	Warning(msg string, ctx Context) error
	Notice(msg string, ctx Context) error
	Info(msg string, ctx Context) error
	Debug(msg string, ctx Context) error
	Log(level Level, msg string, ctx Context) error
}

// Backend is the minimal logging backend Strategy (zap, zerolog, slog ...).
type Backend interface {
	Log(level Level, msg string, ctx Context) error
}

// BackendFunc adapter.
type BackendFunc func(level Level, msg string, ctx Context) error

func (f BackendFunc) Log(level Level, msg string, ctx Context) error { return f(level, msg, ctx) }

// Sink is a Backend bound to a single file; Close releases that file.
type Sink interface {
	Backend
	io.Closer
}

// Opener builds a Sink writing to the given path. The directory of path
// already exists when Open is called.
type Opener interface {
	Open(path string) (Sink, error)
}

// OpenerFunc adapter.
type OpenerFunc func(path string) (Sink, error)

func (f OpenerFunc) Open(path string) (Sink, error) { return f(path) }

// Leveled lifts a Backend to the full Adapter capability.
func Leveled(b Backend) Adapter { return leveled{b} }

type leveled struct{ b Backend }

func (a leveled) Emergency(msg string, ctx Context) error { return a.b.Log(LevelEmergency, msg, ctx) }
func (a leveled) Alert(msg string, ctx Context) error     { return a.b.Log(LevelAlert, msg, ctx) }
func (a leveled) Critical(msg string, ctx Context) error  { return a.b.Log(LevelCritical, msg, ctx) }
func (a leveled) Error(msg string, ctx Context) error     { return a.b.Log(LevelError, msg, ctx) }
func (a leveled) Warning(msg string, ctx Context) error   { return a.b.Log(LevelWarning, msg, ctx) }
func (a leveled) Notice(msg string, ctx Context) error    { return a.b.Log(LevelNotice, msg, ctx) }
func (a leveled) Info(msg string, ctx Context) error      { return a.b.Log(LevelInfo, msg, ctx) }
func (a leveled) Debug(msg string, ctx Context) error     { return a.b.Log(LevelDebug, msg, ctx) }

func (a leveled) Log(level Level, msg string, ctx Context) error { return a.b.Log(level, msg, ctx) }
