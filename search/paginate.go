package search

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// PageSize is the number of entries in a page, and the most a range may return.
const PageSize = 10

// WindowMode selects how a Window addresses the ordered results.
type WindowMode int

const (
	// PageMode addresses fixed pages of PageSize entries, starting at 1.
	PageMode WindowMode = iota
	// RangeMode addresses a closed interval of positions, starting at 0.
	RangeMode
)

// Window is a parsed pagination modifier. It is a pure description and
// can be applied to any result length.
type Window struct {
	Mode  WindowMode
	Page  int // PageMode only; values <= 0 select nothing
	Start int // RangeMode only
	End   int // RangeMode only, inclusive
}

func (w Window) String() string {
	if w.Mode == RangeMode {
		return fmt.Sprintf("range:%d-%d", w.Start, w.End)
	}
	return "page:" + strconv.Itoa(w.Page)
}

// Empty reports whether the window selects nothing regardless of length.
func (w Window) Empty() bool {
	return w.Mode == PageMode && w.Page <= 0
}

// Bounds returns the half-open slice bounds of the window over n results.
// lo == hi when the window selects nothing.
func (w Window) Bounds(n int) (lo, hi int) {
	switch w.Mode {
	case RangeMode:
		if w.Start >= n {
			return n, n
		}
		lo = w.Start
		hi = min(lo+PageSize, n)
		if w.End-lo < hi-lo {
			hi = w.End + 1
		}
		return lo, hi
	default:
		if w.Page <= 0 || w.Page-1 > n/PageSize {
			return n, n
		}
		lo = (w.Page - 1) * PageSize
		if lo >= n {
			return n, n
		}
		return lo, min(lo+PageSize, n)
	}
}

// ParsePage parses a page modifier. Empty or non-numeric input selects
// page 1. Numbers too large to represent select a page past the end.
func ParsePage(raw string) Window {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Window{Page: 1}
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			if strings.HasPrefix(raw, "-") {
				return Window{Page: 0}
			}
			return Window{Page: int(^uint(0) >> 1)}
		}
		return Window{Page: 1}
	}
	return Window{Page: page}
}

// ParseRange parses a range modifier of the form [start, end]: two
// integers with 0 <= start <= end. The second result is false for
// anything else.
func ParseRange(raw string) (Window, bool) {
	var bounds []int
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &bounds); err != nil {
		return Window{}, false
	}
	if len(bounds) != 2 || bounds[0] < 0 || bounds[1] < bounds[0] {
		return Window{}, false
	}
	return Window{Mode: RangeMode, Start: bounds[0], End: bounds[1]}, true
}

// ParseWindow combines the page and range modifiers. A well-formed range
// wins; a malformed range falls back to page 1; without a range the page
// modifier applies.
func ParseWindow(page, rng string) Window {
	if strings.TrimSpace(rng) == "" {
		return ParsePage(page)
	}
	if w, ok := ParseRange(rng); ok {
		return w
	}
	return Window{Page: 1}
}
