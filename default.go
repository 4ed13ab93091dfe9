package ctxlog

import (
	"io"
	"os"
	"sync/atomic"
)

// Facade: global access (Singleton + Facade).
var global atomic.Pointer[Logger]

// SetGlobal sets the global Logger (Singleton setter).
func SetGlobal(l *Logger) { global.Store(l) }

// L returns the global Logger; panic if unset to surface misconfig early.
func L() *Logger {
	l := global.Load()
	if l == nil {
		panic("ctxlog: global logger not set. Build one and call ctxlog.SetGlobal(...)")
	}
	return l
}

// defaultAdapterFactory is set by an adapter package (e.g. adapter/zerolog)
// in its init() to avoid import cycles. Default() uses this to build a logger.
var defaultAdapterFactory atomic.Pointer[func(io.Writer) Adapter]

// RegisterDefaultAdapterFactory registers the constructor used by Default().
// Adapters should call this from init() to avoid import cycles:
//
//	func init() {
//	  ctxlog.RegisterDefaultAdapterFactory(func(w io.Writer) ctxlog.Adapter {
//	    return ctxlog.Leveled(New(zerolog.New(w)))
//	  })
//	}
func RegisterDefaultAdapterFactory(f func(io.Writer) Adapter) {
	defaultAdapterFactory.Store(&f)
}

// Default creates a stderr logger using the registered adapter factory.
// Side import github.com/trickstertwo/ctxlog/adapter/zerolog to register one.
// Panics if no factory is registered.
func Default() *Logger {
	f := defaultAdapterFactory.Load()
	if f == nil || *f == nil {
		panic("ctxlog: no default adapter registered. Import adapter/zerolog or call ctxlog.RegisterDefaultAdapterFactory")
	}
	return New((*f)(os.Stderr))
}

// UseAdapter wraps a, sets the result as the global logger and returns it.
func UseAdapter(a Adapter) *Logger {
	l := New(a)
	SetGlobal(l)
	return l
}
