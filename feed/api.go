package feed

import (
	"context"

	"github.com/JSONbored/scrollfeed/window"
)

// Feed is a windowed, incrementally loaded collection of T.
// All methods are safe for concurrent use by multiple goroutines.
//
// Typical complexity is O(window) for rendering and amortized O(page) for
// appends; scroll handling is O(1) plus the pure window recomputation.
type Feed[T any] interface {
	// Scroll records a new scroll offset (pixels from the top of the
	// content) and recomputes the window. It reports the proximity
	// trigger: true when the remaining content below the viewport is
	// within Options.LoadAhead pixels and a load is admissible (idle,
	// not exhausted, no displayed error, not closed).
	Scroll(top int) (needLoad bool)

	// Resize records a new viewport height and recomputes the window.
	Resize(height int)

	// LoadMore requests the next page through the single-flight gate and
	// is the manual trigger. It is a silent no-op while a load is in
	// flight, after exhaustion, while an uncleared load error is
	// displayed, or after Close. The loader runs synchronously on the
	// calling goroutine; callers that must not block run it from a
	// goroutine of their own. Returns ErrNoLoader if no loader was
	// configured, or a *LoadError if this call's load failed.
	LoadMore(ctx context.Context) error

	// Retry clears a displayed load error and re-attempts pagination
	// exactly once. No-op when no error is displayed.
	Retry(ctx context.Context) error

	// Reset replaces the collection wholesale: the load error is cleared,
	// exhaustion is forgotten (only a fetched short page can prove the
	// fresh collection complete), and any in-flight load result is
	// invalidated. The items slice is copied.
	Reset(items []T)

	// Window returns the currently visible index range.
	Window() window.Range

	// Visible returns a copy of the items inside the current window.
	Visible() []T

	// RenderFrame maps the current window to rendered output, with
	// padding spacers for the off-window items. Each render call is
	// isolated: an error or panic yields fallback content for that item
	// only.
	RenderFrame(render RenderFunc[T]) Frame

	// Len returns the number of retained items.
	Len() int

	// HasMore reports whether further pages may exist. It turns false
	// exactly when a successful page comes back shorter than
	// Options.PageSize and stays false until Reset.
	HasMore() bool

	// State returns the current load state.
	State() State

	// Err returns the displayed page-load failure (a *LoadError), or nil.
	Err() error

	// Stats returns cumulative counters.
	Stats() Stats

	// Close tears the feed down: the in-flight loader context is
	// cancelled, its late result is discarded, retained items and
	// callbacks are released. Idempotent.
	Close() error
}

// State is the pagination state machine: Idle → Loading → Idle on success,
// Loading → Error → (Retry) → Loading on failure. Exhaustion freezes the
// machine in Idle until Reset.
type State int32

const (
	StateIdle State = iota
	StateLoading
	StateError
)

// String returns a stable label for the state.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateError:
		return "error"
	default:
		return "idle"
	}
}

// Stats are cumulative per-instance counters.
type Stats struct {
	// Pages is the number of successfully loaded pages.
	Pages uint64
	// PageErrors is the number of failed loads.
	PageErrors uint64
	// Evicted is the total number of items dropped by retention.
	Evicted uint64
}

// LoadError wraps a loader failure. The collection and the exhaustion flag
// are untouched when it occurs, so Retry can re-attempt the same page.
type LoadError struct {
	Err error
}

// Error implements the error interface.
func (e *LoadError) Error() string { return "feed: load failed: " + e.Err.Error() }

// Unwrap exposes the loader's error to errors.Is/As.
func (e *LoadError) Unwrap() error { return e.Err }
