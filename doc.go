// Package ringkit provides fixed-capacity circular buffers for single-owner
// data paths, with an opt-in lock decorator for concurrent use.
//
// # Philosophy
//
// RingKit is a small container library, not a messaging system. It offers one
// data structure — a preallocated ring of N slots addressed by head/tail
// indexes — and the operations that make it useful in streaming hot paths:
//
//   - Push: insert at head, silently evicting the oldest element at capacity
//   - Pop / Peek: remove or inspect the oldest element
//   - PushFront: return a just-popped element to the front (undo a pop)
//   - SetLast: overwrite the most recently pushed element in place
//   - Clear: bulk reset without reallocation
//
// The buffer distinguishes empty from full by keeping one slot open: a ring
// constructed with capacity N holds at most N-1 live elements. Emptiness is
// always decided by index comparison, never by inspecting slot values, so a
// stored zero value is a real element like any other.
//
// # Packages
//
//   - pkg/ring: the circular buffer core, options, statistics, metrics
//   - errors: classified error handling shared across the library
//   - metric: Prometheus registry and HTTP exposition
//
// # Storage Modes
//
// Value mode (the default) zero-initializes slots and suits plain data.
// Object mode pre-fills every slot with instances from a caller factory; the
// instances must implement ring.Resettable so Clear can return them to their
// empty state for reuse without reallocation.
//
// # Concurrency
//
// The core ring is single-owner: no operation locks, blocks, or retries, and
// every operation is O(1). Callers that need concurrent producers and
// consumers wrap the ring with ring.NewSynchronized, which holds an exclusive
// lock for the duration of each operation.
package ringkit
