// Package policy defines the pluggable retention contract used by the feed
// to bound how many items stay resident after an append.
package policy

// Retention decides what to drop when an append pushes the collection past
// its cap. Trim is called after every append with the post-append length n
// and the configured cap; it reports how many items to drop from the head
// (the oldest) and from the tail (the newest).
//
// Implementations must be deterministic and must satisfy
// head >= 0, tail >= 0, head+tail <= n. Trim runs under the collection lock,
// so it must not block.
type Retention interface {
	Trim(n, max int) (head, tail int)
}

// Func adapts a plain function to the Retention interface.
type Func func(n, max int) (head, tail int)

// Trim implements Retention.
func (f Func) Trim(n, max int) (head, tail int) { return f(n, max) }
