package feed

import (
	"context"
	"errors"
	"sync"

	"github.com/JSONbored/scrollfeed/internal/flight"
	"github.com/JSONbored/scrollfeed/internal/util"
	"github.com/JSONbored/scrollfeed/window"
)

// ErrNoLoader is returned by LoadMore when no Load was configured in Options.
var ErrNoLoader = errors.New("feed: no Load provided")

// feed is the single owner of the retained collection: all mutations go
// through appendLocked/Reset under mu, and loads are serialized by the
// flight gate, so appends and evictions are total-ordered.
type feed[T any] struct {
	// ---- guarded by mu ----
	mu      sync.Mutex
	items   []T
	view    window.Viewport
	win     window.Range
	hasMore bool
	loadErr *LoadError
	closed  bool

	// gate admits one load at a time and stales results that land after
	// Reset or Close.
	gate flight.Gate

	// lifetime is cancelled by Close so an airborne loader can abort.
	lifetime context.Context
	cancel   context.CancelFunc

	opt Options[T]
	geo window.Geometry

	// ---- hot counters (separate cache lines to avoid false sharing) ----
	_        util.CacheLinePad
	pages    util.PaddedAtomicUint64
	pageErrs util.PaddedAtomicUint64
	evicted  util.PaddedAtomicUint64
}

// New constructs a feed holding the initial items (copied; may be nil).
// The retention policy applies immediately, so an oversized initial slice is
// trimmed before the feed is returned.
// Invalid Options fields are silently normalized to the documented defaults.
// The exhaustion flag starts true: only a fetched page that comes back short
// can prove the collection complete.
func New[T any](initial []T, opt Options[T]) Feed[T] {
	opt = opt.normalized()
	ctx, cancel := context.WithCancel(context.Background())

	f := &feed[T]{
		items:    append([]T(nil), initial...),
		hasMore:  true,
		lifetime: ctx,
		cancel:   cancel,
		opt:      opt,
		geo: window.Geometry{
			ItemHeight:  opt.ItemHeight,
			ItemsPerRow: opt.ItemsPerRow,
			Overscan:    opt.Overscan,
			Threshold:   opt.VirtualizeThreshold,
		},
	}
	f.trimLocked()
	f.opt.Metrics.Size(len(f.items))
	f.recomputeLocked()
	return f
}

// ---- Feed[T] implementation ----

// Scroll records the new offset, recomputes the window, and evaluates the
// proximity trigger.
func (f *feed[T]) Scroll(top int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return false
	}
	if top < 0 {
		top = 0
	}
	f.view.Top = top
	f.recomputeLocked()
	return f.nearEndLocked() && f.admissibleLocked()
}

// Resize records the new viewport height and recomputes the window.
func (f *feed[T]) Resize(height int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	if height < 0 {
		height = 0
	}
	f.view.Height = height
	f.recomputeLocked()
}

// LoadMore runs one pagination attempt through the gate. The loader executes
// outside the lock; its result is applied only if the flight is still fresh
// (no Reset/Close happened while it was airborne).
func (f *feed[T]) LoadMore(ctx context.Context) error {
	f.mu.Lock()
	if f.closed || !f.hasMore || f.loadErr != nil {
		f.mu.Unlock()
		return nil
	}
	load := f.opt.Load
	if load == nil {
		f.mu.Unlock()
		return ErrNoLoader
	}
	gen, ok := f.gate.Begin()
	if !ok {
		f.mu.Unlock()
		return nil
	}
	f.mu.Unlock()

	// Bind the loader to both the caller's context and the feed lifetime,
	// so Close aborts an airborne load.
	lctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(f.lifetime, cancel)
	defer stop()

	page, err := load(lctx)

	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.gate.Land(gen) || f.closed {
		// Stale: the collection was replaced or torn down mid-flight.
		return nil
	}
	if err != nil {
		f.loadErr = &LoadError{Err: err}
		f.pageErrs.Add(1)
		f.opt.Metrics.PageError()
		return f.loadErr
	}

	f.pages.Add(1)
	f.opt.Metrics.PageLoad(len(page))
	if len(page) < f.opt.PageSize {
		f.hasMore = false
	}
	f.appendLocked(page)
	return nil
}

// Retry clears a displayed error and re-attempts pagination once.
func (f *feed[T]) Retry(ctx context.Context) error {
	f.mu.Lock()
	if f.closed || f.loadErr == nil {
		f.mu.Unlock()
		return nil
	}
	f.loadErr = nil
	f.mu.Unlock()
	return f.LoadMore(ctx)
}

// Reset replaces the collection wholesale and invalidates airborne loads.
// The retention policy applies to the replacement slice as well.
func (f *feed[T]) Reset(items []T) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.gate.Invalidate()
	f.items = append([]T(nil), items...)
	f.loadErr = nil
	f.hasMore = true
	f.trimLocked()
	f.opt.Metrics.Size(len(f.items))
	f.recomputeLocked()
}

func (f *feed[T]) Window() window.Range {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.win
}

func (f *feed[T]) Visible() []T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]T(nil), f.items[f.win.Start:f.win.End]...)
}

func (f *feed[T]) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items)
}

func (f *feed[T]) HasMore() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hasMore
}

func (f *feed[T]) State() State {
	if f.gate.InFlight() {
		return StateLoading
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr != nil {
		return StateError
	}
	return StateIdle
}

func (f *feed[T]) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr == nil {
		return nil
	}
	return f.loadErr
}

func (f *feed[T]) Stats() Stats {
	return Stats{
		Pages:      f.pages.Load(),
		PageErrors: f.pageErrs.Load(),
		Evicted:    f.evicted.Load(),
	}
}

// Close tears the feed down. Idempotent; always returns nil.
func (f *feed[T]) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return nil
	}
	f.closed = true
	f.gate.Invalidate()
	f.cancel()
	// Release retained items and host callbacks.
	f.items = nil
	f.win = window.Range{}
	f.opt.OnEvict = nil
	f.opt.Load = nil
	return nil
}

// -------------------- internals (mu held) --------------------

// appendLocked merges a page onto the tail and applies retention.
// A trim that discards tail items means later pages would be discarded too,
// so it also marks the collection exhausted.
func (f *feed[T]) appendLocked(page []T) {
	if len(page) > 0 {
		f.items = append(f.items, page...)
		f.trimLocked()
	}
	f.opt.Metrics.Size(len(f.items))
	f.recomputeLocked()
}

func (f *feed[T]) trimLocked() {
	n := len(f.items)
	head, tail := f.opt.Retention.Trim(n, f.opt.MaxRetained)
	if head < 0 {
		head = 0
	}
	if tail < 0 {
		tail = 0
	}
	if head+tail > n {
		// Misbehaving policy; drop everything rather than index out of range.
		head, tail = n, 0
	}
	if head == 0 && tail == 0 {
		return
	}

	dropped := make([]T, 0, head+tail)
	dropped = append(dropped, f.items[:head]...)
	dropped = append(dropped, f.items[n-tail:]...)

	// Copy survivors into a fresh backing array so evicted items are
	// actually released, not pinned by the old array.
	kept := make([]T, n-head-tail)
	copy(kept, f.items[head:n-tail])
	f.items = kept

	if tail > 0 {
		f.hasMore = false
	}
	f.evicted.Add(uint64(len(dropped)))
	f.opt.Metrics.Evict(len(dropped))
	if cb := f.opt.OnEvict; cb != nil {
		// Called under the lock; keep callbacks lightweight.
		cb(dropped)
	}
}

func (f *feed[T]) recomputeLocked() {
	f.win = window.Compute(f.view, f.geo, len(f.items))
	f.opt.Metrics.Window(f.win.Len())
}

// nearEndLocked reports whether the viewport bottom is within LoadAhead
// pixels of the content end. An empty collection is trivially near its end,
// which lets the proximity trigger drive the initial fill.
func (f *feed[T]) nearEndLocked() bool {
	remaining := f.geo.ContentHeight(len(f.items)) - (f.view.Top + f.view.Height)
	return remaining <= f.opt.LoadAhead
}

func (f *feed[T]) admissibleLocked() bool {
	return f.hasMore && f.loadErr == nil && f.opt.Load != nil && !f.gate.InFlight()
}
