package ranges

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/npillmayer/ranges/interval"
	"github.com/npillmayer/ranges/seq"
)

// Builder incrementally stages (interval, value) associations and finalizes
// them into a MultiMap.
//
// Associations may be put in any order; Build sorts them and verifies that
// no two intervals overlap. Equal intervals are legal and merge into a
// single entry carrying all their values.
//
// A builder is confined to a single goroutine during staging. The empty
// instance is a valid builder, but clients may use NewBuilder.
type Builder[K cmp.Ordered, V any] struct {
	entries []staged[K, V]
}

// staged is one un-sorted builder association.
type staged[K cmp.Ordered, V any] struct {
	iv    interval.Interval[K]
	value V
}

// NewBuilder creates a new and empty range map builder.
func NewBuilder[K cmp.Ordered, V any]() *Builder[K, V] {
	return &Builder[K, V]{}
}

// Put stages one association. Returns ErrEmptyRange (wrapped, naming the
// interval) if iv is empty: an empty interval can never hold a key and is
// never admitted.
func (b *Builder[K, V]) Put(iv interval.Interval[K], value V) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if iv.IsEmpty() {
		return fmt.Errorf("%w, but was %s", ErrEmptyRange, iv)
	}
	b.entries = append(b.entries, staged[K, V]{iv: iv, value: value})
	return nil
}

// PutAll stages every association of m, value by value. A no-op for an
// empty m.
func (b *Builder[K, V]) PutAll(m MultiMap[K, V]) error {
	if b == nil {
		return ErrIllegalArguments
	}
	for iv, values := range m.AsMapOfRanges().All() {
		for _, v := range values {
			if err := b.Put(iv, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// Reset drops all staged associations.
func (b *Builder[K, V]) Reset() {
	b.entries = nil
}

// Build finalizes the staged associations into an immutable MultiMap.
//
// Staged entries are sorted by interval order; the sort is stable so equal
// intervals stay adjacent in input order and can be grouped. A single scan
// over neighbors then merges equal intervals and rejects overlapping ones
// with ErrOverlap, naming both offenders. Two intervals overlap when they
// are connected and their intersection is non-empty; [1‥3) followed by
// [3‥5) merely touches and passes.
//
// Build does not consume the builder: the staged list is copied before
// sorting, further Put calls and repeated builds are legal.
func (b *Builder[K, V]) Build() (MultiMap[K, V], error) {
	if b == nil || len(b.entries) == 0 {
		tracer().Debugf("range map builder: map is empty")
		return MultiMap[K, V]{}, nil
	}
	entries := make([]staged[K, V], len(b.entries))
	copy(entries, b.entries)
	slices.SortStableFunc(entries, func(x, y staged[K, V]) int {
		return x.iv.Compare(y.iv)
	})
	intervals := make([]interval.Interval[K], 0, len(entries))
	values := make([][]V, 0, len(entries))
	for _, e := range entries {
		if n := len(intervals); n > 0 {
			prev := intervals[n-1]
			if prev.Equal(e.iv) {
				values[n-1] = append(values[n-1], e.value)
				continue
			}
			if prev.IsConnected(e.iv) && !prev.Intersection(e.iv).IsEmpty() {
				return MultiMap[K, V]{}, fmt.Errorf("%w: range %s overlaps with entry %s",
					ErrOverlap, prev, e.iv)
			}
		}
		intervals = append(intervals, e.iv)
		values = append(values, []V{e.value})
	}
	return MultiMap[K, V]{
		ranges: seq.Wrap(intervals),
		values: seq.Wrap(values),
	}, nil
}
