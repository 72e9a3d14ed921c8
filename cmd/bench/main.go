// Command bench runs a synthetic scroll/pagination workload against a feed
// and exposes optional pprof/Prometheus endpoints.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	_ "net/http/pprof" // registers /debug/pprof/* on DefaultServeMux
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/JSONbored/scrollfeed/feed"
	pmet "github.com/JSONbored/scrollfeed/metrics/prom"
)

func main() {
	// ---- Flags ----
	var (
		pageSize    = flag.Int("page", 20, "page size (items)")
		maxRetained = flag.Int("retain", 500, "retention cap (items)")
		threshold   = flag.Int("threshold", 100, "virtualization threshold (items)")
		overscan    = flag.Int("overscan", 5, "overscan (rows)")
		itemHeight  = flag.Int("item_height", 100, "item height estimate (px)")
		viewHeight  = flag.Int("view", 800, "viewport height (px)")
		loadAhead   = flag.Int("lookahead", 200, "load trigger margin (px)")

		scrollers = flag.Int("scrollers", 2*runtime.GOMAXPROCS(0), "number of scrolling goroutines")
		duration  = flag.Duration("duration", 10*time.Second, "benchmark duration")
		latency   = flag.Duration("latency", 2*time.Millisecond, "simulated loader latency")
		totalRows = flag.Int("source", 1_000_000, "size of the synthetic data source")
		seed      = flag.Int64("seed", time.Now().UnixNano(), "random seed")

		pprofAddr   = flag.String("pprof", "", "serve pprof at addr (e.g. :6060); empty = disabled")
		metricsAddr = flag.String("http", ":8080", "serve Prometheus metrics at addr")
	)
	flag.Parse()

	// ---- pprof server (on DefaultServeMux) ----
	if *pprofAddr != "" {
		go func() {
			log.Printf("pprof: serving at %s", *pprofAddr)
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	// ---- Prometheus metrics (on DefaultServeMux) ----
	metrics := pmet.New(nil, "scrollfeed", "bench", nil)
	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Printf("metrics: serving at %s", *metricsAddr)
		log.Println(http.ListenAndServe(*metricsAddr, nil))
	}()

	// ---- Synthetic data source: the host owns the cursor ----
	var offset atomic.Int64
	load := func(ctx context.Context) ([]int, error) {
		select {
		case <-time.After(*latency):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		from := int(offset.Add(int64(*pageSize))) - *pageSize
		if from >= *totalRows {
			return nil, nil // exhausted
		}
		n := *pageSize
		if from+n > *totalRows {
			n = *totalRows - from
		}
		page := make([]int, n)
		for i := range page {
			page[i] = from + i
		}
		return page, nil
	}

	f := feed.New[int](nil, feed.Options[int]{
		PageSize:            *pageSize,
		MaxRetained:         *maxRetained,
		VirtualizeThreshold: *threshold,
		Overscan:            *overscan,
		ItemHeight:          *itemHeight,
		LoadAhead:           *loadAhead,
		Load:                load,
		Metrics:             metrics,
	})
	defer func() { _ = f.Close() }()
	f.Resize(*viewHeight)

	// ---- Workload: scrollers jitter around the tail to drive pagination ----
	log.Printf("bench: %d scrollers for %s (page=%d retain=%d)",
		*scrollers, *duration, *pageSize, *maxRetained)

	var scrolls, loads, frames atomic.Int64
	deadline := time.Now().Add(*duration)

	var wg sync.WaitGroup
	wg.Add(*scrollers)
	for w := 0; w < *scrollers; w++ {
		go func(id int) {
			defer wg.Done()
			r := rand.New(rand.NewSource(*seed + int64(id)*7919))
			for time.Now().Before(deadline) {
				// Bias towards the bottom so the proximity trigger fires.
				content := *itemHeight * f.Len()
				top := content - *viewHeight - r.Intn(*loadAhead*4+1)
				if f.Scroll(top) {
					if err := f.LoadMore(context.Background()); err != nil {
						log.Printf("load: %v", err)
					} else {
						loads.Add(1)
					}
				}
				scrolls.Add(1)

				if r.Intn(10) == 0 {
					f.RenderFrame(func(item, index int) (string, error) {
						return fmt.Sprintf("row %d", item), nil
					})
					frames.Add(1)
				}
			}
		}(w)
	}
	wg.Wait()

	st := f.Stats()
	secs := (*duration).Seconds()
	fmt.Printf("scrolls:    %d (%.0f/s)\n", scrolls.Load(), float64(scrolls.Load())/secs)
	fmt.Printf("loads:      %d (pages=%d errors=%d)\n", loads.Load(), st.Pages, st.PageErrors)
	fmt.Printf("frames:     %d\n", frames.Load())
	fmt.Printf("evicted:    %d\n", st.Evicted)
	fmt.Printf("retained:   %d (hasMore=%v)\n", f.Len(), f.HasMore())
}
