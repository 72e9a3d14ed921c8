package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute_BelowThresholdFullWindow(t *testing.T) {
	t.Parallel()

	g := Geometry{ItemHeight: 100, ItemsPerRow: 1, Overscan: 5, Threshold: 100}

	// 80 items: the window is always the full collection, regardless of
	// scroll position.
	for _, top := range []int{0, 500, 100_000} {
		r := Compute(Viewport{Top: top, Height: 600}, g, 80)
		assert.Equal(t, Range{Start: 0, End: 80}, r, "top=%d", top)
	}
}

func TestCompute_AboveThresholdNarrows(t *testing.T) {
	t.Parallel()

	g := Geometry{ItemHeight: 100, ItemsPerRow: 1, Overscan: 5, Threshold: 100}

	// 150 items: somewhere mid-list the window must be strictly narrower
	// than the full range.
	r := Compute(Viewport{Top: 5000, Height: 600}, g, 150)
	require.Greater(t, r.Start, 0)
	require.Less(t, r.End-r.Start, 150)

	// Exact math at top=5000: first = 5000/100-5 = 45,
	// last = ceil(5600/100)+5 = 61.
	assert.Equal(t, Range{Start: 45, End: 61}, r)
}

func TestCompute_TopOfList(t *testing.T) {
	t.Parallel()

	g := Geometry{ItemHeight: 100, ItemsPerRow: 1, Overscan: 5, Threshold: 0}
	r := Compute(Viewport{Top: 0, Height: 600}, g, 150)
	assert.Equal(t, Range{Start: 0, End: 11}, r) // ceil(600/100)+5
}

func TestCompute_Bounds(t *testing.T) {
	t.Parallel()

	g := Geometry{ItemHeight: 100, ItemsPerRow: 1, Overscan: 5, Threshold: 0}

	cases := []struct {
		name string
		v    Viewport
		n    int
	}{
		{"empty collection", Viewport{Top: 0, Height: 600}, 0},
		{"negative scroll", Viewport{Top: -500, Height: 600}, 150},
		{"scrolled far past the end", Viewport{Top: 1_000_000, Height: 600}, 150},
		{"zero-height viewport", Viewport{Top: 5000, Height: 0}, 150},
		{"negative height", Viewport{Top: 5000, Height: -10}, 150},
		{"single item", Viewport{Top: 0, Height: 600}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := Compute(tc.v, g, tc.n)
			assert.GreaterOrEqual(t, r.Start, 0)
			assert.LessOrEqual(t, r.Start, r.End)
			assert.LessOrEqual(t, r.End, tc.n)
		})
	}
}

func TestCompute_Grid(t *testing.T) {
	t.Parallel()

	// 3 items per row, 10 rows of content (28 items, last row partial).
	g := Geometry{ItemHeight: 100, ItemsPerRow: 3, Overscan: 1, Threshold: 0}
	n := 28

	require.Equal(t, 10, g.Rows(n))
	require.Equal(t, 1000, g.ContentHeight(n))

	// Viewport covers rows 2..3; overscan widens to rows 1..4 (indices 3..15).
	r := Compute(Viewport{Top: 200, Height: 200}, g, n)
	assert.Equal(t, Range{Start: 3, End: 15}, r)

	// Bottom of the grid: End clamps to the partial last row.
	r = Compute(Viewport{Top: 900, Height: 200}, g, n)
	assert.Equal(t, n, r.End)
}

func TestPadding_PreservesContentHeight(t *testing.T) {
	t.Parallel()

	g := Geometry{ItemHeight: 100, ItemsPerRow: 1, Overscan: 5, Threshold: 0}
	n := 150

	for _, top := range []int{0, 3000, 5000, 14_900} {
		r := Compute(Viewport{Top: top, Height: 600}, g, n)
		windowHeight := g.Rows(r.Len()) * g.ItemHeight
		total := g.PadTop(r) + windowHeight + g.PadBottom(r, n)
		assert.Equal(t, g.ContentHeight(n), total, "top=%d window=%+v", top, r)
	}
}

func TestPadding_GridPartialLastRow(t *testing.T) {
	t.Parallel()

	g := Geometry{ItemHeight: 100, ItemsPerRow: 3, Overscan: 0, Threshold: 0}
	n := 28 // 10 rows

	r := Compute(Viewport{Top: 0, Height: 100}, g, n)
	assert.Equal(t, 0, g.PadTop(r))
	assert.Equal(t, 900, g.PadBottom(r, n))
}

func TestRange_Helpers(t *testing.T) {
	t.Parallel()

	r := Range{Start: 3, End: 7}
	assert.Equal(t, 4, r.Len())
	assert.True(t, r.Contains(3))
	assert.True(t, r.Contains(6))
	assert.False(t, r.Contains(7))
	assert.False(t, r.Contains(2))
}

func TestGeometry_ZeroValueIsTotal(t *testing.T) {
	t.Parallel()

	// Callers normalize configuration, but the math must stay total for a
	// zero-valued Geometry.
	var g Geometry
	r := Compute(Viewport{Top: 10, Height: 10}, g, 50)
	assert.GreaterOrEqual(t, r.Start, 0)
	assert.LessOrEqual(t, r.End, 50)
	assert.LessOrEqual(t, r.Start, r.End)
}
