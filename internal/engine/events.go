package engine

import (
	"macsweep/internal/remove"
	"macsweep/internal/resolve"
)

// EventKind identifies a structured run event.
type EventKind int

const (
	EventRunStarted EventKind = iota
	EventCategoryStarted
	EventOutcome
	EventRunFinished
)

func (k EventKind) String() string {
	switch k {
	case EventRunStarted:
		return "run-started"
	case EventCategoryStarted:
		return "category-started"
	case EventOutcome:
		return "outcome"
	case EventRunFinished:
		return "run-finished"
	default:
		return "unknown"
	}
}

// Event is one structured observation emitted during a run. The engine does
// not open or format a log file itself; the caller supplies the sink.
type Event struct {
	Kind       EventKind
	Mode       remove.Mode
	Category   resolve.Category
	Outcome    *remove.Outcome
	BytesFreed int64
}

// Sink consumes run events.
type Sink interface {
	Emit(Event)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Event)

func (f SinkFunc) Emit(e Event) { f(e) }

// NopSink discards all events.
type NopSink struct{}

func (NopSink) Emit(Event) {}
