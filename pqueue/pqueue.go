package pqueue

import (
	"errors"
	"fmt"

	"github.com/rhartert/yagh"
)

// Sentinel errors for queue operations.
var (
	// ErrOutOfRange indicates a vertex index outside [0, n).
	ErrOutOfRange = errors.New("pqueue: vertex index out of range")

	// ErrEmpty indicates ExtractMin on an empty queue.
	ErrEmpty = errors.New("pqueue: queue is empty")

	// ErrNotPresent indicates DecreaseKey on a vertex that is not queued.
	ErrNotPresent = errors.New("pqueue: vertex not present in queue")

	// ErrDuplicate indicates Insert of a vertex that is already queued.
	ErrDuplicate = errors.New("pqueue: vertex already queued")
)

// vertexState tracks the lifecycle of each vertex within one queue.
type vertexState uint8

const (
	stateAbsent    vertexState = iota // never inserted
	stateQueued                       // inserted, not yet extracted
	stateExtracted                    // popped; decrease-key is an error now
)

// MinQueue is a decrease-key min-priority queue of (vertex, key) pairs.
type MinQueue struct {
	heap  *yagh.IntMap[float64]
	keys  []float64
	state []vertexState
}

// New returns a MinQueue sized for vertices 0..n-1. A negative n is
// treated as zero; construction itself has no failure mode.
// Complexity: O(n).
func New(n int) *MinQueue {
	if n < 0 {
		n = 0
	}

	return &MinQueue{
		heap:  yagh.New[float64](n),
		keys:  make([]float64, n),
		state: make([]vertexState, n),
	}
}

// Len returns the number of currently queued vertices.
func (q *MinQueue) Len() int { return q.heap.Size() }

// Contains reports whether v is currently queued (inserted and not yet
// extracted). Out-of-range indices report false.
func (q *MinQueue) Contains(v int) bool {
	return v >= 0 && v < len(q.state) && q.state[v] == stateQueued
}

// Key returns the current key of a queued vertex.
// Errors: ErrOutOfRange on an invalid index, ErrNotPresent if v is not queued.
func (q *MinQueue) Key(v int) (float64, error) {
	if v < 0 || v >= len(q.state) {
		return 0, fmt.Errorf("Key: v=%d, n=%d: %w", v, len(q.state), ErrOutOfRange)
	}
	if q.state[v] != stateQueued {
		return 0, fmt.Errorf("Key: v=%d: %w", v, ErrNotPresent)
	}

	return q.keys[v], nil
}

// Insert queues vertex v with the given key.
// Errors: ErrOutOfRange on an invalid index, ErrDuplicate if v is queued
// already. Re-inserting a previously extracted vertex is allowed.
// Complexity: O(log n).
func (q *MinQueue) Insert(v int, key float64) error {
	if v < 0 || v >= len(q.state) {
		return fmt.Errorf("Insert: v=%d, n=%d: %w", v, len(q.state), ErrOutOfRange)
	}
	if q.state[v] == stateQueued {
		return fmt.Errorf("Insert: v=%d: %w", v, ErrDuplicate)
	}

	q.state[v] = stateQueued
	q.keys[v] = key
	q.heap.Put(v, key)

	return nil
}

// DecreaseKey lowers the key of a queued vertex. A key that is not
// strictly lower than the current one is rejected without mutation, so
// the heap never sees a (disallowed) increase.
// Errors: ErrOutOfRange on an invalid index, ErrNotPresent if v was never
// inserted or has already been extracted.
// Complexity: O(log n).
func (q *MinQueue) DecreaseKey(v int, key float64) error {
	if v < 0 || v >= len(q.state) {
		return fmt.Errorf("DecreaseKey: v=%d, n=%d: %w", v, len(q.state), ErrOutOfRange)
	}
	if q.state[v] != stateQueued {
		return fmt.Errorf("DecreaseKey: v=%d: %w", v, ErrNotPresent)
	}
	if key >= q.keys[v] {
		return nil
	}

	q.keys[v] = key
	q.heap.Put(v, key)

	return nil
}

// ExtractMin removes and returns the queued vertex with the smallest key.
// Errors: ErrEmpty when no vertices remain.
// Complexity: O(log n).
func (q *MinQueue) ExtractMin() (int, float64, error) {
	if q.heap.Size() == 0 {
		return 0, 0, ErrEmpty
	}

	entry := q.heap.Pop()
	q.state[entry.Elem] = stateExtracted

	return entry.Elem, entry.Cost, nil
}
