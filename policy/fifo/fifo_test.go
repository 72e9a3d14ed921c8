package fifo

import "testing"

// FIFO drops exactly the overflow, always from the head.
func TestTrim(t *testing.T) {
	t.Parallel()

	p := New()

	cases := []struct {
		n, max   int
		wantHead int
	}{
		{0, 500, 0},
		{500, 500, 0},
		{501, 500, 1},
		{620, 500, 120},
		{10, 0, 0},  // non-positive cap disables trimming
		{10, -1, 0}, //
	}
	for _, tc := range cases {
		head, tail := p.Trim(tc.n, tc.max)
		if head != tc.wantHead || tail != 0 {
			t.Fatalf("Trim(%d,%d) = (%d,%d), want (%d,0)", tc.n, tc.max, head, tail, tc.wantHead)
		}
	}
}
