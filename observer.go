package ctxlog

import "time"

// Observer pattern

// EventKind identifies what happened to a destination.
type EventKind uint8

const (
	EventResolved EventKind = iota + 1
	EventDirectoryCreated
	EventSinkOpened
	EventSinkClosed
	EventFailed
)

func (k EventKind) String() string {
	switch k {
	case EventResolved:
		return "resolved"
	case EventDirectoryCreated:
		return "directory_created"
	case EventSinkOpened:
		return "sink_opened"
	case EventSinkClosed:
		return "sink_closed"
	case EventFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Event is a read-only snapshot of a destination lifecycle step.
type Event struct {
	Kind EventKind
	Path string
	At   time.Time
	Err  error // set for EventFailed
}

// Observer receives destination events.
// Implementations MUST be concurrency-safe. Events are delivered with no
// FileLogger lock held, so an observer may log through the logger it observes.
type Observer interface {
	OnEvent(e Event)
}

// ObserverFunc adapter.
type ObserverFunc func(Event)

func (f ObserverFunc) OnEvent(e Event) { f(e) }

type observers []Observer

func (obs observers) notify(kind EventKind, path string, err error) {
	if len(obs) == 0 {
		return
	}
	obs.emit(event(kind, path, err))
}

func (obs observers) emit(events ...Event) {
	for _, e := range events {
		for _, o := range obs {
			o.OnEvent(e)
		}
	}
}
