package seq

// PresentPolicy selects which index to report when the binary search finds
// one or more elements comparing equal to the target.
type PresentPolicy int8

const (
	// AnyPresent reports an arbitrary index whose element equals the target.
	AnyPresent PresentPolicy = iota
	// FirstPresent reports the lowest index whose element equals the target.
	FirstPresent
	// LastPresent reports the highest index whose element equals the target.
	LastPresent
	// FirstAfter reports the index just past the last element equal to the
	// target.
	FirstAfter
)

// AbsentPolicy selects the result when no element compares equal to the
// target. The insertion index is the number of elements sorting before the
// target.
type AbsentPolicy int8

const (
	// NextLower reports the greatest index whose element sorts before the
	// target, or −1 when every element sorts after it.
	NextLower AbsentPolicy = iota
	// NextHigher reports the insertion index, i.e. the lowest index whose
	// element sorts after the target (possibly n).
	NextHigher
	// InvertedInsertionIndex reports -(insertion index) − 1, so callers can
	// distinguish hits from misses when combined with a present policy that
	// reports plain indexes.
	InvertedInsertionIndex
)

// Search binary-searches the index space [0, n) of a sequence sorted
// relative to some target. cmp(i) compares element i against the target:
// negative when the element sorts before it, zero on a match, positive when
// after. Runs of equal elements are permitted; the present policy picks the
// reported index among them.
//
// The search axis is whatever cmp projects out of the elements, so the same
// primitive serves point lookups by lower boundary and window clipping by
// upper boundary.
func Search(n int, cmp func(i int) int, present PresentPolicy, absent AbsentPolicy) int {
	lo, hi := 0, n-1
	for lo <= hi {
		mid := int(uint(lo+hi) >> 1)
		c := cmp(mid)
		if c < 0 {
			lo = mid + 1
		} else if c > 0 {
			hi = mid - 1
		} else {
			switch present {
			case FirstPresent:
				return firstEqual(lo, mid, cmp)
			case LastPresent:
				return lastEqual(mid, hi, cmp)
			case FirstAfter:
				return lastEqual(mid, hi, cmp) + 1
			default:
				return mid
			}
		}
	}
	switch absent {
	case NextLower:
		return lo - 1
	case NextHigher:
		return lo
	default:
		return -lo - 1
	}
}

// firstEqual narrows [lo, mid] to the leftmost index comparing equal. mid is
// known to compare equal, so the window always keeps a hit.
func firstEqual(lo, mid int, cmp func(i int) int) int {
	for lo < mid {
		m := int(uint(lo+mid) >> 1)
		if cmp(m) < 0 {
			lo = m + 1
		} else {
			mid = m
		}
	}
	return mid
}

// lastEqual narrows [mid, hi] to the rightmost index comparing equal.
func lastEqual(mid, hi int, cmp func(i int) int) int {
	for mid < hi {
		m := int(uint(mid+hi+1) >> 1)
		if cmp(m) > 0 {
			hi = m - 1
		} else {
			mid = m
		}
	}
	return mid
}
