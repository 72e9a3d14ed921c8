// Package flight provides the single-flight admission gate used for
// pagination: at most one load may be airborne at a time, and results that
// land after the collection was replaced or torn down are rejected.
package flight

import "sync"

// Gate admits at most one operation at a time and tags each admission with
// a generation number. Invalidate bumps the generation, so an operation
// started before it lands stale and its result must be discarded.
//
// Concurrency notes:
//   - Begin/Land/Invalidate are atomic with respect to each other; callers
//     may hold their own lock around them (Gate never calls out).
//   - Invalidate clears the busy flag: the superseded operation no longer
//     blocks admission of a fresh one, it merely cannot publish its result.
type Gate struct {
	mu   sync.Mutex
	busy bool
	gen  uint64
}

// Begin admits a new operation. ok is false while another operation is
// airborne. The returned generation must be handed back to Land.
func (g *Gate) Begin() (gen uint64, ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.busy {
		return 0, false
	}
	g.busy = true
	return g.gen, true
}

// Land completes the operation admitted at gen. fresh is false when
// Invalidate ran while the operation was airborne; the caller must then
// discard the result without touching shared state.
func (g *Gate) Land(gen uint64) (fresh bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if gen != g.gen {
		return false
	}
	g.busy = false
	return true
}

// Invalidate bumps the generation and reopens admission. It does not abort
// the airborne operation itself; cancellation is the caller's concern.
func (g *Gate) Invalidate() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.gen++
	g.busy = false
}

// InFlight reports whether an operation is currently airborne.
func (g *Gate) InFlight() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.busy
}
