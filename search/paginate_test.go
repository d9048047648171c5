package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseWindow(t *testing.T) {
	tests := []struct {
		name string
		page string
		rng  string
		want Window
	}{
		{name: "defaults to page 1", want: Window{Page: 1}},
		{name: "page", page: "3", want: Window{Page: 3}},
		{name: "padded page", page: " 2 ", want: Window{Page: 2}},
		{name: "zero page", page: "0", want: Window{Page: 0}},
		{name: "negative page", page: "-1", want: Window{Page: -1}},
		{name: "non-numeric page", page: "two", want: Window{Page: 1}},
		{name: "fractional page", page: "1.5", want: Window{Page: 1}},
		{name: "huge page", page: "99999999999999999999999", want: Window{Page: int(^uint(0) >> 1)}},
		{name: "huge negative page", page: "-99999999999999999999999", want: Window{Page: 0}},
		{name: "range", rng: "[0, 15]", want: Window{Mode: RangeMode, Start: 0, End: 15}},
		{name: "range wins over page", page: "4", rng: "[2,3]", want: Window{Mode: RangeMode, Start: 2, End: 3}},
		{name: "reversed range", page: "4", rng: "[3, 1]", want: Window{Page: 1}},
		{name: "negative range", rng: "[-1, 3]", want: Window{Page: 1}},
		{name: "three bounds", rng: "[1, 2, 3]", want: Window{Page: 1}},
		{name: "unparseable range", page: "2", rng: "1-5", want: Window{Page: 1}},
		{name: "float range", rng: "[0.5, 3]", want: Window{Page: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseWindow(tt.page, tt.rng))
		})
	}
}

func TestWindow_Bounds(t *testing.T) {
	tests := []struct {
		name   string
		window Window
		n      int
		lo, hi int
	}{
		{name: "first page", window: Window{Page: 1}, n: 25, lo: 0, hi: 10},
		{name: "last partial page", window: Window{Page: 3}, n: 25, lo: 20, hi: 25},
		{name: "past the end", window: Window{Page: 4}, n: 25, lo: 25, hi: 25},
		{name: "exact end", window: Window{Page: 3}, n: 20, lo: 20, hi: 20},
		{name: "zero page", window: Window{Page: 0}, n: 25, lo: 25, hi: 25},
		{name: "negative page", window: Window{Page: -3}, n: 25, lo: 25, hi: 25},
		{name: "huge page", window: Window{Page: int(^uint(0) >> 1)}, n: 25, lo: 25, hi: 25},
		{name: "empty list", window: Window{Page: 1}, n: 0, lo: 0, hi: 0},
		{name: "small range", window: Window{Mode: RangeMode, Start: 5, End: 7}, n: 25, lo: 5, hi: 8},
		{name: "range capped", window: Window{Mode: RangeMode, Start: 0, End: 15}, n: 25, lo: 0, hi: 10},
		{name: "range single", window: Window{Mode: RangeMode, Start: 4, End: 4}, n: 25, lo: 4, hi: 5},
		{name: "range clipped by length", window: Window{Mode: RangeMode, Start: 20, End: 29}, n: 25, lo: 20, hi: 25},
		{name: "range past the end", window: Window{Mode: RangeMode, Start: 30, End: 31}, n: 25, lo: 25, hi: 25},
		{name: "range with huge end", window: Window{Mode: RangeMode, Start: 1, End: int(^uint(0) >> 1)}, n: 25, lo: 1, hi: 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := tt.window.Bounds(tt.n)
			assert.Equal(t, tt.lo, lo)
			assert.Equal(t, tt.hi, hi)
		})
	}
}

func TestWindow_PagesPartition(t *testing.T) {
	const n = 47
	seen := make([]int, n)
	for page := 1; page <= 6; page++ {
		lo, hi := Window{Page: page}.Bounds(n)
		assert.LessOrEqual(t, hi-lo, PageSize)
		for i := lo; i < hi; i++ {
			seen[i]++
		}
	}
	for i, c := range seen {
		assert.Equal(t, 1, c, "position %d", i)
	}
}
