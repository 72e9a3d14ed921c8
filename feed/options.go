package feed

import (
	"context"

	"github.com/JSONbored/scrollfeed/policy"
	"github.com/JSONbored/scrollfeed/policy/fifo"
)

// Defaults applied by New when an Options field is unset or invalid.
// Invalid values are normalized silently and deterministically rather than
// rejected; a misconfigured feed degrades to the defaults instead of
// breaking the page around it.
const (
	DefaultPageSize            = 20
	DefaultMaxRetained         = 500
	DefaultVirtualizeThreshold = 100
	DefaultOverscan            = 5
	DefaultItemHeight          = 100
	DefaultLoadAhead           = 200
)

// LoadFunc returns the next page of items. The host owns its own pagination
// cursor (offset, page number, continuation token); the feed only interprets
// the result: a page shorter than Options.PageSize (including an empty one)
// signals exhaustion, an error signals a recoverable page-load failure.
// The context is cancelled when the feed is closed mid-load.
type LoadFunc[T any] func(ctx context.Context) ([]T, error)

// KeyFunc derives a stable render key for an item. Eviction shifts indices,
// so keys derived from the index alone stop being stable once eviction has
// occurred; prefer content-derived keys when external caches key off them.
type KeyFunc[T any] func(item T, index int) string

// FallbackFunc produces replacement content for an item whose render call
// failed or panicked.
type FallbackFunc func(index int, err error) string

// Options configures a feed instance. Options are immutable for the
// lifetime of the instance; a new logical collection (e.g. after a filter
// change) is made with Reset, not by mutating configuration.
type Options[T any] struct {
	// PageSize is the expected page length; a shorter successful page
	// marks the collection exhausted.
	PageSize int

	// MaxRetained caps the number of resident items.
	MaxRetained int

	// VirtualizeThreshold disables windowing for small collections: at or
	// below this many items the full collection is always visible.
	VirtualizeThreshold int

	// Overscan is the number of extra rows materialized on each side of
	// the visible rows.
	Overscan int

	// ItemHeight is the estimated row height in pixels.
	ItemHeight int

	// ItemsPerRow lays items out as a fixed grid; 1 (the default) is a
	// plain vertical list.
	ItemsPerRow int

	// LoadAhead is the proximity margin in pixels: scrolling to within
	// this distance of the content end fires the load trigger.
	LoadAhead int

	// Load fetches the next page. Without it LoadMore returns ErrNoLoader.
	Load LoadFunc[T]

	// Key derives render keys; nil means index-derived keys (see KeyFunc
	// for the eviction caveat).
	Key KeyFunc[T]

	// Fallback renders an item whose render call failed; nil means empty
	// content.
	Fallback FallbackFunc

	// OnEvict is called with the dropped items on every eviction, under
	// the feed lock; keep callbacks lightweight.
	OnEvict func(dropped []T)

	// Retention is the pluggable eviction policy; nil means FIFO
	// (policy/fifo), a bounded sliding window over history.
	Retention policy.Retention

	// Metrics receives observability signals; nil means NoopMetrics.
	Metrics Metrics
}

// normalized applies the documented defaults. Deterministic: the same input
// always normalizes to the same configuration.
func (o Options[T]) normalized() Options[T] {
	if o.PageSize <= 0 {
		o.PageSize = DefaultPageSize
	}
	if o.MaxRetained <= 0 {
		o.MaxRetained = DefaultMaxRetained
	}
	if o.VirtualizeThreshold <= 0 {
		o.VirtualizeThreshold = DefaultVirtualizeThreshold
	}
	if o.Overscan <= 0 {
		o.Overscan = DefaultOverscan
	}
	if o.ItemHeight <= 0 {
		o.ItemHeight = DefaultItemHeight
	}
	if o.ItemsPerRow <= 0 {
		o.ItemsPerRow = 1
	}
	if o.LoadAhead <= 0 {
		o.LoadAhead = DefaultLoadAhead
	}
	if o.Retention == nil {
		o.Retention = fifo.New()
	}
	if o.Metrics == nil {
		o.Metrics = NoopMetrics{}
	}
	return o
}
