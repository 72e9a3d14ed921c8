// Package fifo implements the default retention policy: a bounded sliding
// window over history. Overflow is dropped from the head, so the cap worth
// of most recently appended items always survives.
//
// FIFO rather than LRU: the collection has no re-access signal to rank
// entries by, only insertion order.
package fifo

import "github.com/JSONbored/scrollfeed/policy"

type fifoRetention struct{}

// New returns the FIFO retention policy.
func New() policy.Retention { return fifoRetention{} }

// Trim drops the overflow from the head. A non-positive cap disables
// trimming entirely.
func (fifoRetention) Trim(n, max int) (head, tail int) {
	if max <= 0 || n <= max {
		return 0, 0
	}
	return n - max, 0
}
