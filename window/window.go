// Package window computes which contiguous slice of a retained collection
// should be materialized for rendering, given scroll state and a fixed
// per-item height estimate. All functions are pure and never block.
package window

// Range is a half-open index range [Start, End) into the retained collection.
// A valid range satisfies 0 <= Start <= End <= collection length.
type Range struct {
	Start int
	End   int
}

// Len returns the number of indices covered by the range.
func (r Range) Len() int { return r.End - r.Start }

// Contains reports whether index i falls inside the range.
func (r Range) Contains(i int) bool { return i >= r.Start && i < r.End }

// Viewport is the visible portion of the scrollable content, in pixels.
// Top is the scroll offset from the top of the content.
type Viewport struct {
	Top    int
	Height int
}

// Geometry describes the fixed layout of the rendered collection.
// ItemsPerRow > 1 models a fixed grid; every row is ItemHeight tall.
type Geometry struct {
	// ItemHeight is the estimated height of one row in pixels.
	ItemHeight int

	// ItemsPerRow is the number of items laid out per row (1 = plain list).
	ItemsPerRow int

	// Overscan is the number of extra rows materialized on each side of the
	// visible rows to reduce flicker during fast scrolling.
	Overscan int

	// Threshold disables virtualization for small collections: at or below
	// this many items the full collection is the window.
	Threshold int
}

// Rows returns how many rows n items occupy.
func (g Geometry) Rows(n int) int {
	per := g.itemsPerRow()
	return (n + per - 1) / per
}

// ContentHeight returns the total scrollable height for n items.
func (g Geometry) ContentHeight(n int) int {
	return g.Rows(n) * g.itemHeight()
}

// PadTop returns the height of the spacer standing in for the rows above r,
// so the scrollbar keeps its proportions without materializing them.
func (g Geometry) PadTop(r Range) int {
	return (r.Start / g.itemsPerRow()) * g.itemHeight()
}

// PadBottom returns the spacer height for the rows below r in a collection
// of n items.
func (g Geometry) PadBottom(r Range, n int) int {
	per := g.itemsPerRow()
	lastRow := (r.End + per - 1) / per
	rows := g.Rows(n)
	if lastRow > rows {
		lastRow = rows
	}
	return (rows - lastRow) * g.itemHeight()
}

// Compute returns the window for n retained items under viewport v.
//
// At or below the virtualization threshold the whole collection is the
// window, regardless of scroll position. Above it, the visible rows are
// derived from the scroll offset and widened by Overscan rows on each side.
// The result always satisfies 0 <= Start <= End <= n.
func Compute(v Viewport, g Geometry, n int) Range {
	if n <= 0 {
		return Range{}
	}
	if n <= g.Threshold {
		return Range{Start: 0, End: n}
	}

	ih := g.itemHeight()
	per := g.itemsPerRow()
	rows := g.Rows(n)

	top := v.Top
	if top < 0 {
		top = 0
	}
	height := v.Height
	if height < 0 {
		height = 0
	}

	first := top/ih - g.Overscan
	if first < 0 {
		first = 0
	}
	if first > rows {
		first = rows
	}
	last := (top+height+ih-1)/ih + g.Overscan
	if last > rows {
		last = rows
	}
	if last < first {
		last = first
	}

	start := first * per
	end := last * per
	if end > n {
		end = n
	}
	if start > end {
		start = end
	}
	return Range{Start: start, End: end}
}

// itemHeight guards against a zero-valued Geometry; callers are expected to
// normalize their configuration, this only keeps the math total.
func (g Geometry) itemHeight() int {
	if g.ItemHeight <= 0 {
		return 1
	}
	return g.ItemHeight
}

func (g Geometry) itemsPerRow() int {
	if g.ItemsPerRow <= 0 {
		return 1
	}
	return g.ItemsPerRow
}
