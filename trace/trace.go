package trace

import (
	"fmt"

	"github.com/katalvlaran/roadmst/core"
)

// Decision is the verdict an algorithm reached for one edge at one step.
type Decision uint8

const (
	// Accepted means the edge was added to the spanning tree/forest.
	Accepted Decision = iota

	// Rejected means the edge was examined and permanently excluded.
	Rejected

	// Considered means the edge improved a frontier key (Prim relaxation)
	// without being committed yet.
	Considered
)

// String returns the lower-case name of the decision.
func (d Decision) String() string {
	switch d {
	case Accepted:
		return "accepted"
	case Rejected:
		return "rejected"
	case Considered:
		return "considered"
	default:
		return fmt.Sprintf("decision(%d)", uint8(d))
	}
}

// Event is one step of an algorithm run.
type Event struct {
	// Edge is the edge the decision concerns.
	Edge core.Edge

	// Decision is the verdict for this step.
	Decision Decision

	// Total is the running total weight of accepted edges after this step.
	Total float64

	// Step is the zero-based position of this event in the run.
	Step int
}

// Recorder is an append-only event log. The zero value is ready to use;
// a Recorder is created fresh per algorithm invocation and is not safe
// for concurrent use.
type Recorder struct {
	events []Event
}

// NewRecorder returns an empty Recorder with capacity for hint events.
// A negative hint is treated as zero.
func NewRecorder(hint int) *Recorder {
	if hint < 0 {
		hint = 0
	}

	return &Recorder{events: make([]Event, 0, hint)}
}

// Record appends one event, assigning its Step from the current length.
// It never fails.
// Complexity: O(1) amortized.
func (r *Recorder) Record(e core.Edge, d Decision, total float64) {
	r.events = append(r.events, Event{
		Edge:     e,
		Decision: d,
		Total:    total,
		Step:     len(r.events),
	})
}

// Len returns the number of recorded events.
func (r *Recorder) Len() int { return len(r.events) }

// Events returns the recorded sequence in order. Ownership transfers to
// the caller once the producing algorithm returns; the slice is not
// copied because the Recorder is discarded at that point.
func (r *Recorder) Events() []Event { return r.events }
