package ranges

import (
	"cmp"
	"fmt"
	"iter"
	"reflect"
	"strings"

	"github.com/OneOfOne/xxhash"
	"github.com/npillmayer/ranges/interval"
	"github.com/npillmayer/ranges/seq"
)

// MapOfRanges is an ordered (interval → value collection) view of a
// MultiMap, backed by the map's own sequences without copying.
//
// The ascending view is the canonical form of a range map: equality,
// hashing and the string form of MultiMap all derive from it. Descending
// views flip index order only.
type MapOfRanges[K cmp.Ordered, V any] struct {
	m          MultiMap[K, V]
	descending bool
}

// AsMapOfRanges returns the canonical ascending view of the map.
func (m MultiMap[K, V]) AsMapOfRanges() MapOfRanges[K, V] {
	return MapOfRanges[K, V]{m: m}
}

// AsDescendingMapOfRanges returns the view in descending interval order.
func (m MultiMap[K, V]) AsDescendingMapOfRanges() MapOfRanges[K, V] {
	return MapOfRanges[K, V]{m: m, descending: true}
}

// Len returns the number of entries.
func (v MapOfRanges[K, V]) Len() int {
	return v.m.Size()
}

// IsEmpty reports whether the view has no entries.
func (v MapOfRanges[K, V]) IsEmpty() bool {
	return v.m.IsEmpty()
}

// At returns the i-th entry in view order.
func (v MapOfRanges[K, V]) At(i int) Entry[K, V] {
	if v.descending {
		i = v.m.Size() - 1 - i
	}
	return Entry[K, V]{
		Interval: v.m.rangeAt(i),
		Values:   v.m.values.At(i),
	}
}

// Get returns the value collection stored under exactly iv. Boundary-exact:
// an interval covering the same keys with different boundary flavors does
// not match.
func (v MapOfRanges[K, V]) Get(iv interval.Interval[K]) ([]V, bool) {
	index := seq.Search(v.m.Size(), func(i int) int {
		return v.m.rangeAt(i).Compare(iv)
	}, seq.AnyPresent, seq.InvertedInsertionIndex)
	if index < 0 {
		return nil, false
	}
	return v.m.values.At(index), true
}

// All iterates over (interval, value collection) pairs in view order.
func (v MapOfRanges[K, V]) All() iter.Seq2[interval.Interval[K], []V] {
	return func(yield func(interval.Interval[K], []V) bool) {
		for i := 0; i < v.Len(); i++ {
			e := v.At(i)
			if !yield(e.Interval, e.Values) {
				return
			}
		}
	}
}

// Equal compares entry by entry in view order: intervals boundary-exactly,
// value collections as multisets.
func (v MapOfRanges[K, V]) Equal(other MapOfRanges[K, V]) bool {
	if v.Len() != other.Len() {
		return false
	}
	for i := 0; i < v.Len(); i++ {
		a, b := v.At(i), other.At(i)
		if !a.Interval.Equal(b.Interval) {
			return false
		}
		if !sameValues(a.Values, b.Values) {
			return false
		}
	}
	return true
}

// String renders the view as "{[1‥5]=[a b], (6‥8)=[c]}".
func (v MapOfRanges[K, V]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i := 0; i < v.Len(); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		e := v.At(i)
		fmt.Fprintf(&sb, "%s=%v", e.Interval, e.Values)
	}
	sb.WriteByte('}')
	return sb.String()
}

// Hash returns a checksum of the map content. Maps that are Equal hash
// alike, including views and built maps with the same content. Value
// collections contribute commutatively, matching the multiset semantics
// of Equal.
func (m MultiMap[K, V]) Hash() uint64 {
	var h uint64
	for iv, values := range m.AsMapOfRanges().All() {
		var vh uint64
		for _, v := range values {
			vh += xxhash.ChecksumString64(fmt.Sprintf("%v", v))
		}
		h = h*31 + (xxhash.ChecksumString64(iv.String()) ^ vh)
	}
	return h
}

// sameValues compares two value collections as multisets: order-irrelevant,
// duplicates counted. Values match by deep equality, since V is not
// required to be comparable.
func sameValues[V any](a, b []V) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
outer:
	for _, x := range a {
		for j, y := range b {
			if !used[j] && reflect.DeepEqual(x, y) {
				used[j] = true
				continue outer
			}
		}
		return false
	}
	return true
}
