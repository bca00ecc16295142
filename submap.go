package ranges

import (
	"github.com/npillmayer/ranges/interval"
	"github.com/npillmayer/ranges/seq"
)

// SubRangeMap returns the restriction of the map to window: a new MultiMap
// holding the intersection of every entry with window.
//
// The result shares the receiver's backing sequences; only the two boundary
// intervals are trimmed, and those lazily on access. An empty window yields
// the empty map, a window enclosing Span yields the receiver unchanged.
//
// Views compose flat: restricting a view with a second window is the same
// as restricting the original map with the intersection of both windows
// (or the empty map when the windows are not connected). No view ever
// wraps another view, so lookup stays O(log n) at any slicing depth.
func (m MultiMap[K, V]) SubRangeMap(window interval.Interval[K]) MultiMap[K, V] {
	if window.IsEmpty() {
		return MultiMap[K, V]{}
	}
	if m.IsEmpty() {
		return m
	}
	span, err := m.Span()
	assert(err == nil, "non-empty range map must have a span")
	if window.Encloses(span) {
		return m
	}
	if m.clipped {
		if !m.window.IsConnected(window) {
			return MultiMap[K, V]{}
		}
		window = m.window.Intersection(window)
		if window.IsEmpty() {
			return MultiMap[K, V]{}
		}
	}
	lowerIndex, upperIndex := m.windowIndexes(window)
	if lowerIndex >= upperIndex {
		return MultiMap[K, V]{}
	}
	return MultiMap[K, V]{
		ranges:  m.ranges.Slice(lowerIndex, upperIndex),
		values:  m.values.Slice(lowerIndex, upperIndex),
		window:  window,
		clipped: true,
	}
}

// windowIndexes locates the index range [lower, upper) of entries
// intersecting window.
//
// The lower index is the first entry whose upper boundary lies strictly
// after window's lower boundary; entries ending exactly at a shared
// boundary cut do not intersect, hence the first-after policy. The upper
// index is the first entry whose lower boundary lies at or after window's
// upper boundary.
func (m MultiMap[K, V]) windowIndexes(window interval.Interval[K]) (int, int) {
	n := m.ranges.Len()
	lowerIndex := seq.Search(n, func(i int) int {
		return m.rangeAt(i).UpperCut().Compare(window.LowerCut())
	}, seq.FirstAfter, seq.NextHigher)
	upperIndex := seq.Search(n, func(i int) int {
		return m.rangeAt(i).LowerCut().Compare(window.UpperCut())
	}, seq.AnyPresent, seq.NextHigher)
	return lowerIndex, upperIndex
}
