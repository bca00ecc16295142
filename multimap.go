package ranges

import (
	"cmp"

	"github.com/npillmayer/ranges/interval"
	"github.com/npillmayer/ranges/seq"
)

// MultiMap maps disjoint non-empty intervals to collections of values.
//
// A multimap created by
//
//	MultiMap[int, string]{}
//
// is a valid object and behaves like the empty map. Non-empty maps are
// created by a Builder.
//
// MultiMap is immutable: queries never modify it and the mutation entry
// points always fail (see ErrImmutable). Sub-range views returned by
// SubRangeMap share the backing sequences of their parent, which is safe
// precisely because nothing ever writes to them. Value collections handed
// out by queries are views into the backing storage as well and must be
// treated as read-only by convention.
//
// Lookup characteristics:
//
//	Operation     |  cost
//	--------------+----------
//	Get           |  O(log n)
//	Span          |  O(1)
//	SubRangeMap   |  O(log n)
//	Size          |  O(1)
type MultiMap[K cmp.Ordered, V any] struct {
	ranges seq.Slice[interval.Interval[K]]
	values seq.Slice[[]V]

	// window clips the first and last interval of a sub-range view; clipped
	// distinguishes views from built maps, whose entries are stored fully
	// trimmed.
	window  interval.Interval[K]
	clipped bool
}

// Entry is one (interval, value collection) association of a range map.
type Entry[K cmp.Ordered, V any] struct {
	Interval interval.Interval[K]
	Values   []V
}

// rangeAt returns the effective interval at index i, with the view window
// applied to the two boundary entries. Interior entries of a view are
// enclosed by the window by construction and need no trimming.
func (m MultiMap[K, V]) rangeAt(i int) interval.Interval[K] {
	iv := m.ranges.At(i)
	if m.clipped && (i == 0 || i == m.ranges.Len()-1) {
		return iv.Intersection(m.window)
	}
	return iv
}

// Size returns the number of entries, i.e. distinct intervals. An interval
// carrying several values counts once.
func (m MultiMap[K, V]) Size() int {
	return m.ranges.Len()
}

// IsEmpty reports whether the map holds no entries.
func (m MultiMap[K, V]) IsEmpty() bool {
	return m.ranges.IsEmpty()
}

// Span returns the minimal interval enclosing every entry of the map.
// Returns ErrNoSuchEntry for an empty map.
func (m MultiMap[K, V]) Span() (interval.Interval[K], error) {
	if m.ranges.IsEmpty() {
		return interval.Interval[K]{}, ErrNoSuchEntry
	}
	first := m.rangeAt(0)
	last := m.rangeAt(m.ranges.Len() - 1)
	span, err := interval.New(first.LowerCut(), last.UpperCut())
	assert(err == nil, "span of sorted entries must have ordered cuts")
	return span, nil
}

// Get returns the value collection of the entry whose interval contains
// key, or nil if no interval contains it.
func (m MultiMap[K, V]) Get(key K) []V {
	entry, ok := m.GetEntry(key)
	if !ok {
		return nil
	}
	return entry.Values
}

// GetEntry returns the entry whose interval contains key.
//
// The search locates the entry with the greatest lower boundary at or below
// the cut just before key. That entry is the only candidate, but it may
// still end before key, hence the containment check.
func (m MultiMap[K, V]) GetEntry(key K) (Entry[K, V], bool) {
	at := interval.Below(key)
	index := seq.Search(m.ranges.Len(), func(i int) int {
		return m.rangeAt(i).LowerCut().Compare(at)
	}, seq.AnyPresent, seq.NextLower)
	if index == -1 {
		return Entry[K, V]{}, false
	}
	iv := m.rangeAt(index)
	if !iv.Contains(key) {
		return Entry[K, V]{}, false
	}
	return Entry[K, V]{Interval: iv, Values: m.values.At(index)}, true
}

// Equal reports whether both maps hold the same intervals with the same
// value collections. Collections compare as multisets: order does not
// matter, duplicates do. Views and built maps with the same logical content
// are equal.
func (m MultiMap[K, V]) Equal(other MultiMap[K, V]) bool {
	return m.AsMapOfRanges().Equal(other.AsMapOfRanges())
}

// String renders the canonical ascending map form, e.g.
// "{[1‥5]=[a b], (6‥8)=[c]}".
func (m MultiMap[K, V]) String() string {
	return m.AsMapOfRanges().String()
}
