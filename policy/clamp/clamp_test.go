package clamp

import "testing"

// Clamp drops exactly the overflow, always from the tail.
func TestTrim(t *testing.T) {
	t.Parallel()

	p := New()

	cases := []struct {
		n, max   int
		wantTail int
	}{
		{0, 500, 0},
		{500, 500, 0},
		{501, 500, 1},
		{620, 500, 120},
		{10, 0, 0}, // non-positive cap disables trimming
	}
	for _, tc := range cases {
		head, tail := p.Trim(tc.n, tc.max)
		if head != 0 || tail != tc.wantTail {
			t.Fatalf("Trim(%d,%d) = (%d,%d), want (0,%d)", tc.n, tc.max, head, tail, tc.wantTail)
		}
	}
}
