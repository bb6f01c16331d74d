package binanceadapter

import "testing"

func TestClampDepthLimit(t *testing.T) {
	cases := []struct{ in, want int }{
		{0, 5},
		{3, 5},
		{5, 5},
		{7, 10},
		{10, 10},
		{60, 100},
		{100, 100},
		{300, 500},
		{5000, 1000},
	}
	for _, tc := range cases {
		if got := ClampDepthLimit(tc.in); got != tc.want {
			t.Errorf("ClampDepthLimit(%d)=%d want=%d", tc.in, got, tc.want)
		}
	}
}
