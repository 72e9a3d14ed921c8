// Package clamp implements a retention policy that preserves the earliest
// items: once the collection is full, newly appended overflow is discarded
// from the tail instead of evicting history from the head.
//
// Useful when the host pins external state (anchors, render caches) to the
// first items and prefers to stop paginating over losing them. The feed
// stops requesting further pages once a clamp trim discards tail items,
// since later pages would be discarded too.
package clamp

import "github.com/JSONbored/scrollfeed/policy"

type clampRetention struct{}

// New returns the clamp retention policy.
func New() policy.Retention { return clampRetention{} }

// Trim drops the overflow from the tail. A non-positive cap disables
// trimming entirely.
func (clampRetention) Trim(n, max int) (head, tail int) {
	if max <= 0 || n <= max {
		return 0, 0
	}
	return 0, n - max
}
