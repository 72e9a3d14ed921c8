// Package feed provides a generic, windowed, incrementally loaded collection
// that bounds both the number of retained items and the number of items
// materialized for rendering.
//
// Design
//
//   - Concurrency: one mutex owns the retained items, the visible window and
//     the load state. The loader collaborator runs outside the lock; an
//     internal single-flight gate admits at most one load at a time, so all
//     appends (and therefore evictions) are total-ordered.
//
//   - Storage: an ordered slice, insertion order preserved, capped by a
//     pluggable retention policy. The default (policy/fifo) is a sliding
//     window over history: overflow is dropped from the head and survivors
//     are copied into a fresh backing array so evicted memory is released.
//
//   - Windowing: above Options.VirtualizeThreshold only the index range the
//     viewport can see (plus Overscan rows on each side) is considered
//     visible; RenderFrame replaces everything outside it with two padding
//     spacers so the scrollbar keeps its proportions. At or below the
//     threshold the full collection is the window.
//
//   - Pagination: Scroll reports a proximity trigger when the remaining
//     content below the viewport is within Options.LoadAhead pixels;
//     LoadMore is the manual trigger. Both go through the same admission:
//     no load while one is in flight, after the collection is exhausted, or
//     while an uncleared load error is displayed. A page shorter than
//     Options.PageSize (including an empty one) marks the collection
//     exhausted until Reset.
//
//   - Failure isolation: a loader failure is captured as a *LoadError and
//     leaves the collection and the exhaustion flag untouched; Retry
//     re-attempts the same page. A render error or panic is contained to
//     that one item, which gets fallback content.
//
//   - Teardown: Close cancels the in-flight loader's context and, together
//     with Reset, invalidates any result that lands afterwards. A loader
//     that ignores cancellation can therefore still not mutate a torn-down
//     or replaced collection.
//
//   - Metrics: Options.Metrics receives PageLoad/PageError/Evict/Size/Window
//     signals. By default NoopMetrics is used; plug the Prometheus adapter
//     from metrics/prom to export them.
//
// Eviction and identity
//
// Dropping items from the head shifts every surviving item's index. The
// default render key is index-derived and therefore unsupported as a stable
// identity once eviction has occurred; hosts that key external caches off
// item identity must supply a content-derived Options.Key.
//
// Basic usage
//
//	f := feed.New[string](nil, feed.Options[string]{
//		PageSize: 20,
//		Load: func(ctx context.Context) ([]string, error) {
//			return nextPage(ctx) // host owns the cursor
//		},
//	})
//	defer f.Close()
//
//	if f.Scroll(scrollTop) {
//		go f.LoadMore(ctx)
//	}
//	frame := f.RenderFrame(renderItem)
package feed
