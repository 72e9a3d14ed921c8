package feed

// Metrics exposes feed-level observability hooks.
// A NoopMetrics implementation is provided and used by default.
type Metrics interface {
	// PageLoad is called after each successful page with the item count.
	PageLoad(items int)
	// PageError is called after each failed load.
	PageError()
	// Evict is called with the number of items dropped by retention.
	Evict(dropped int)
	// Size reports the retained item count after every mutation.
	Size(retained int)
	// Window reports the visible item count after every recomputation.
	Window(size int)
}

// NoopMetrics is a drop-in Metrics implementation that does nothing.
// It is safe for concurrent use and intended as the default when
// no observability backend is configured.
type NoopMetrics struct{}

func (NoopMetrics) PageLoad(int) {}
func (NoopMetrics) PageError()   {}
func (NoopMetrics) Evict(int)    {}
func (NoopMetrics) Size(int)     {}
func (NoopMetrics) Window(int)   {}

// Ensure NoopMetrics implements the Metrics interface at compile time.
var _ Metrics = NoopMetrics{}
