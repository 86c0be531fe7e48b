// Package pqueue adapts an indexed min-heap (github.com/rhartert/yagh)
// into the decrease-key priority queue Prim's algorithm needs: a mapping
// from vertex index to a float64 key, ordered by smallest key first.
//
// What
//
//   - New(n) sizes the queue for vertices 0..n-1.
//   - Insert(v, key) queues an absent vertex.
//   - DecreaseKey(v, key) lowers a queued vertex's key; true decrease-key,
//     not the lazy duplicate-entry workaround.
//   - ExtractMin() pops the queued vertex with the smallest key.
//   - Key(v), Contains(v), Len() inspect current state.
//
// Why an adapter
//
//	yagh's IntMap gives O(log n) Put/Pop over integer elements but does not
//	distinguish "never inserted" from "already popped", and cannot report a
//	queued element's current cost. The adapter mirrors per-vertex key and
//	lifecycle state so those questions - and their error cases - are cheap.
//
// Errors
//
//   - ErrOutOfRange  if a vertex index is outside [0, n).
//   - ErrEmpty       on ExtractMin from an empty queue.
//   - ErrNotPresent  on DecreaseKey for a vertex that is not currently
//     queued (never inserted, or already extracted).
//   - ErrDuplicate   on Insert of a vertex that is queued already.
//
// Complexity: Insert, DecreaseKey and ExtractMin are O(log n); Key,
// Contains and Len are O(1). Queue instances are created fresh per
// algorithm invocation and are not safe for concurrent use.
package pqueue
