package ranges

import "github.com/npillmayer/ranges/interval"

// The mutation entry points below exist to satisfy the range-map contract
// shared with mutable implementations. On MultiMap every one of them fails
// with ErrImmutable, unconditionally: a built map is read-only forever.
// Use a Builder (possibly seeded with PutAll) to derive a changed map.

// Put always fails with ErrImmutable.
func (m MultiMap[K, V]) Put(interval.Interval[K], V) error {
	return ErrImmutable
}

// PutCoalescing always fails with ErrImmutable.
func (m MultiMap[K, V]) PutCoalescing(interval.Interval[K], V) error {
	return ErrImmutable
}

// PutAll always fails with ErrImmutable.
func (m MultiMap[K, V]) PutAll(MultiMap[K, V]) error {
	return ErrImmutable
}

// Clear always fails with ErrImmutable.
func (m MultiMap[K, V]) Clear() error {
	return ErrImmutable
}

// Remove always fails with ErrImmutable.
func (m MultiMap[K, V]) Remove(interval.Interval[K]) error {
	return ErrImmutable
}

// Merge always fails with ErrImmutable.
func (m MultiMap[K, V]) Merge(interval.Interval[K], V, func([]V, V) []V) error {
	return ErrImmutable
}
