package ctxlog

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/trickstertwo/xclock"
)

// FileLogger is the path-aware variant: every record is routed to the file
// its Destination names at that moment. The directory is guaranteed before
// the sink for the path is opened or written to.
type FileLogger struct {
	*Logger

	dest     Destination
	resolver *Resolver
	opener   Opener
	obs      observers

	mu     sync.Mutex
	path   string
	sink   Sink
	closed bool
}

func newFileLogger(cfg Config) *FileLogger {
	fl := &FileLogger{
		dest:     cfg.Destination,
		resolver: NewResolver(cfg.Fs, cfg.Observers...),
		opener:   cfg.Opener,
		obs:      observers(cfg.Observers),
	}
	fl.Logger = New(Leveled(BackendFunc(fl.write)))
	return fl
}

// Resolver returns the resolver used for every record.
func (fl *FileLogger) Resolver() *Resolver { return fl.resolver }

// Path returns the destination of the last record, empty before the first.
func (fl *FileLogger) Path() string {
	fl.mu.Lock()
	defer fl.mu.Unlock()
	return fl.path
}

func (fl *FileLogger) isClosed() bool {
	fl.mu.Lock()
	defer fl.mu.Unlock()
	return fl.closed
}

func (fl *FileLogger) write(level Level, msg string, ctx Context) error {
	if fl.isClosed() {
		return ErrLoggerClosed
	}
	path, created, err := fl.resolver.prepare(fl.dest)
	if err != nil {
		return err
	}

	var events []Event
	defer func() { fl.obs.emit(events...) }()

	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.closed {
		return ErrLoggerClosed
	}
	// A recreated directory means the open file was removed with it.
	if fl.sink == nil || fl.path != path || created {
		if err := fl.switchTo(path, &events); err != nil {
			return err
		}
	}
	return fl.sink.Log(level, msg, ctx)
}

// switchTo opens a sink for path and retires the previous one. fl.mu held;
// events are queued for delivery after unlock.
func (fl *FileLogger) switchTo(path string, events *[]Event) error {
	next, err := fl.opener.Open(path)
	if err != nil {
		err = errors.Mark(errors.Wrapf(err, "ctxlog: open sink %q", path), ErrOpenSink)
		*events = append(*events, event(EventFailed, path, err))
		return err
	}
	*events = append(*events, event(EventSinkOpened, path, nil))

	prev, prevPath := fl.sink, fl.path
	fl.sink, fl.path = next, path
	if prev != nil {
		_ = retire(prev, prevPath, events)
	}
	return nil
}

func retire(s Sink, path string, events *[]Event) error {
	if err := s.Close(); err != nil {
		*events = append(*events, event(EventFailed, path, err))
		return err
	}
	*events = append(*events, event(EventSinkClosed, path, nil))
	return nil
}

func event(kind EventKind, path string, err error) Event {
	return Event{Kind: kind, Path: path, At: xclock.Now(), Err: err}
}

// Close releases the current sink. Later writes fail with ErrLoggerClosed.
func (fl *FileLogger) Close() error {
	var events []Event
	defer func() { fl.obs.emit(events...) }()

	fl.mu.Lock()
	defer fl.mu.Unlock()
	if fl.closed {
		return nil
	}
	fl.closed = true
	if fl.sink == nil {
		return nil
	}
	s := fl.sink
	fl.sink = nil
	return retire(s, fl.path, &events)
}
