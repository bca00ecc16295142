package seq

import "iter"

// Slice is an immutable random-access view over a backing array.
//
// Views created by Slice and Reverse share the backing array; no construction
// or view operation copies elements. Immutability is by convention, as with
// chunk storage: the package never hands out the backing array, and callers
// of Wrap yield ownership of theirs.
type Slice[T any] struct {
	items    []T
	reversed bool
}

// From creates a slice view from a copy of items. Later changes to items do
// not show through.
func From[T any](items []T) Slice[T] {
	if len(items) == 0 {
		return Slice[T]{}
	}
	dup := make([]T, len(items))
	copy(dup, items)
	return Slice[T]{items: dup}
}

// Of creates a slice view of the given elements.
func Of[T any](items ...T) Slice[T] {
	return From(items)
}

// Wrap adopts items without copying. The caller must not retain a mutable
// reference to items.
func Wrap[T any](items []T) Slice[T] {
	return Slice[T]{items: items}
}

// Len returns the number of elements.
func (s Slice[T]) Len() int {
	return len(s.items)
}

// IsEmpty reports whether the view has no elements.
func (s Slice[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// At returns the element at index i. Panics when i is out of range, like
// indexing a Go slice.
func (s Slice[T]) At(i int) T {
	if s.reversed {
		return s.items[len(s.items)-1-i]
	}
	return s.items[i]
}

// Slice returns the zero-copy sub-view [i, j).
func (s Slice[T]) Slice(i, j int) Slice[T] {
	if s.reversed {
		n := len(s.items)
		return Slice[T]{items: s.items[n-j : n-i], reversed: true}
	}
	return Slice[T]{items: s.items[i:j]}
}

// Reverse returns a view with inverted index order, sharing the backing
// array.
func (s Slice[T]) Reverse() Slice[T] {
	return Slice[T]{items: s.items, reversed: !s.reversed}
}

// All iterates over (index, element) pairs in view order.
func (s Slice[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < len(s.items); i++ {
			if !yield(i, s.At(i)) {
				return
			}
		}
	}
}
