// Package prom exports feed metrics to Prometheus.
package prom

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/JSONbored/scrollfeed/feed"
)

// Adapter implements feed.Metrics and exports Prometheus counters/gauges.
// Safe for concurrent use; all Prometheus metric types are goroutine-safe.
type Adapter struct {
	pages     prometheus.Counter
	pageItems prometheus.Counter
	pageErrs  prometheus.Counter
	evicted   prometheus.Counter
	retained  prometheus.Gauge
	windowLen prometheus.Gauge
}

// New constructs a Prometheus metrics adapter.
//   - reg:          registry to register metrics with (nil => prometheus.DefaultRegisterer)
//   - ns, sub:      Prometheus namespace and subsystem
//   - constLabels:  static labels applied to all metrics (may be nil)
func New(reg prometheus.Registerer, ns, sub string, constLabels prometheus.Labels) *Adapter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	a := &Adapter{
		pages: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "pages_total",
			Help:        "Successfully loaded pages",
			ConstLabels: constLabels,
		}),
		pageItems: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "page_items_total",
			Help:        "Items returned by successful pages",
			ConstLabels: constLabels,
		}),
		pageErrs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "page_errors_total",
			Help:        "Failed page loads",
			ConstLabels: constLabels,
		}),
		evicted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "evicted_items_total",
			Help:        "Items dropped by the retention policy",
			ConstLabels: constLabels,
		}),
		retained: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "retained_items",
			Help:        "Number of resident items",
			ConstLabels: constLabels,
		}),
		windowLen: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "window_items",
			Help:        "Number of items inside the visible window",
			ConstLabels: constLabels,
		}),
	}
	reg.MustRegister(a.pages, a.pageItems, a.pageErrs, a.evicted, a.retained, a.windowLen)
	return a
}

// PageLoad counts a successful page and its items.
func (a *Adapter) PageLoad(items int) {
	a.pages.Inc()
	a.pageItems.Add(float64(items))
}

// PageError counts a failed load.
func (a *Adapter) PageError() { a.pageErrs.Inc() }

// Evict counts items dropped by retention.
func (a *Adapter) Evict(dropped int) { a.evicted.Add(float64(dropped)) }

// Size updates the retained item gauge.
func (a *Adapter) Size(retained int) { a.retained.Set(float64(retained)) }

// Window updates the visible window gauge.
func (a *Adapter) Window(size int) { a.windowLen.Set(float64(size)) }

// Compile-time check: ensure Adapter implements feed.Metrics.
var _ feed.Metrics = (*Adapter)(nil)
