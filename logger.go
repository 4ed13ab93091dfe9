package ctxlog

// Logger is the severity dispatcher. It forwards every call to the wrapped
// Adapter unchanged and returns the adapter's error as is. It holds no state
// besides the adapter, so concurrent calls need no locking here.
type Logger struct {
	adapter Adapter
}

// New wraps a; panics on nil to surface misconfiguration early.
func New(a Adapter) *Logger {
	if a == nil {
		panic("ctxlog: New called with a nil adapter")
	}
	return &Logger{adapter: a}
}

// Adapter returns the wrapped adapter.
func (l *Logger) Adapter() Adapter { return l.adapter }

// Emergency logs that the system is unusable.
func (l *Logger) Emergency(msg string, ctx Context) error {
	return l.adapter.Emergency(msg, orEmpty(ctx))
}

// Alert logs a condition needing immediate action, e.g. site down or
// database unavailable.
func (l *Logger) Alert(msg string, ctx Context) error {
	return l.adapter.Alert(msg, orEmpty(ctx))
}

// Critical logs critical conditions such as an unavailable component.
func (l *Logger) Critical(msg string, ctx Context) error {
	return l.adapter.Critical(msg, orEmpty(ctx))
}

// Error logs runtime errors that need monitoring but no immediate action.
func (l *Logger) Error(msg string, ctx Context) error {
	return l.adapter.Error(msg, orEmpty(ctx))
}

// Warning logs exceptional occurrences that are not errors, e.g. use of a
// deprecated API.
func (l *Logger) Warning(msg string, ctx Context) error {
	return l.adapter.Warning(msg, orEmpty(ctx))
}

// Notice logs normal but significant events.
func (l *Logger) Notice(msg string, ctx Context) error {
	return l.adapter.Notice(msg, orEmpty(ctx))
}

// Info logs interesting events such as a user logging in.
func (l *Logger) Info(msg string, ctx Context) error {
	return l.adapter.Info(msg, orEmpty(ctx))
}

// Debug logs detailed debug information.
func (l *Logger) Debug(msg string, ctx Context) error {
	return l.adapter.Debug(msg, orEmpty(ctx))
}

// Log logs at an arbitrary level.
func (l *Logger) Log(level Level, msg string, ctx Context) error {
	return l.adapter.Log(level, msg, orEmpty(ctx))
}
