package interval

import (
	"cmp"
	"fmt"
	"strings"
)

// Interval is a contiguous region of an ordered key domain, delimited by a
// lower and an upper cut. Each end is independently open, closed or
// unbounded, depending on the kind of its cut.
//
// Intervals are immutable value types. The zero value is the empty interval
// anchored at the key type's zero value ([z‥z) for zero key z).
//
// The lower cut never sorts after the upper cut; constructors reject
// reversed bounds. An interval is empty when both cuts coincide, e.g.
// [a‥a) or (a‥a]. The total order used by Compare is lexicographic by
// (lower, upper), which sorts disjoint intervals in domain order.
type Interval[K cmp.Ordered] struct {
	lower, upper Cut[K]
}

// New creates an interval from two cuts. Returns ErrInvalidBounds if lower
// sorts after upper.
func New[K cmp.Ordered](lower, upper Cut[K]) (Interval[K], error) {
	if lower.Compare(upper) > 0 {
		return Interval[K]{}, fmt.Errorf("%w: %s", ErrInvalidBounds,
			Interval[K]{lower, upper}.String())
	}
	return Interval[K]{lower: lower, upper: upper}, nil
}

// must wraps New for the fixed-shape constructors, where reversed bounds are
// a programming error at the call site.
func must[K cmp.Ordered](lower, upper Cut[K]) Interval[K] {
	iv, err := New(lower, upper)
	if err != nil {
		panic(err.Error())
	}
	return iv
}

// Open returns (lo‥hi). Panics if lo >= hi, as the above-cut of lo would
// sort after the below-cut of hi.
func Open[K cmp.Ordered](lo, hi K) Interval[K] {
	return must(Above(lo), Below(hi))
}

// Closed returns [lo‥hi]. Panics if lo > hi.
func Closed[K cmp.Ordered](lo, hi K) Interval[K] {
	return must(Below(lo), Above(hi))
}

// ClosedOpen returns [lo‥hi). Panics if lo > hi. ClosedOpen(v, v) is a valid
// empty interval.
func ClosedOpen[K cmp.Ordered](lo, hi K) Interval[K] {
	return must(Below(lo), Below(hi))
}

// OpenClosed returns (lo‥hi]. Panics if lo > hi. OpenClosed(v, v) is a valid
// empty interval.
func OpenClosed[K cmp.Ordered](lo, hi K) Interval[K] {
	return must(Above(lo), Above(hi))
}

// AtLeast returns [lo‥+∞).
func AtLeast[K cmp.Ordered](lo K) Interval[K] {
	return Interval[K]{lower: Below(lo), upper: AboveAll[K]()}
}

// GreaterThan returns (lo‥+∞).
func GreaterThan[K cmp.Ordered](lo K) Interval[K] {
	return Interval[K]{lower: Above(lo), upper: AboveAll[K]()}
}

// AtMost returns (-∞‥hi].
func AtMost[K cmp.Ordered](hi K) Interval[K] {
	return Interval[K]{lower: BelowAll[K](), upper: Above(hi)}
}

// LessThan returns (-∞‥hi).
func LessThan[K cmp.Ordered](hi K) Interval[K] {
	return Interval[K]{lower: BelowAll[K](), upper: Below(hi)}
}

// All returns (-∞‥+∞).
func All[K cmp.Ordered]() Interval[K] {
	return Interval[K]{lower: BelowAll[K](), upper: AboveAll[K]()}
}

// Singleton returns [v‥v], the interval containing exactly v.
func Singleton[K cmp.Ordered](v K) Interval[K] {
	return Closed(v, v)
}

// LowerCut returns the interval's lower boundary.
func (iv Interval[K]) LowerCut() Cut[K] {
	return iv.lower
}

// UpperCut returns the interval's upper boundary.
func (iv Interval[K]) UpperCut() Cut[K] {
	return iv.upper
}

// IsEmpty reports whether the interval contains no keys, i.e. both cuts
// coincide.
func (iv Interval[K]) IsEmpty() bool {
	return iv.lower.Compare(iv.upper) == 0
}

// Contains reports whether key k lies within the interval.
func (iv Interval[K]) Contains(k K) bool {
	at := Below(k)
	return iv.lower.Compare(at) <= 0 && iv.upper.Compare(at) > 0
}

// Encloses reports whether every key of other is also a key of iv.
func (iv Interval[K]) Encloses(other Interval[K]) bool {
	return iv.lower.Compare(other.lower) <= 0 && iv.upper.Compare(other.upper) >= 0
}

// IsConnected reports whether some (possibly empty) interval is enclosed by
// both iv and other. [1‥3) and [3‥5) are connected (their union is an
// interval), while [1‥3) and (3‥5) are not.
func (iv Interval[K]) IsConnected(other Interval[K]) bool {
	return iv.lower.Compare(other.upper) <= 0 && other.lower.Compare(iv.upper) <= 0
}

// Intersection returns the maximal interval enclosed by both iv and other.
// The receivers must be connected; the result may be empty, e.g. for
// [1‥3) ∩ [3‥5) = [3‥3).
func (iv Interval[K]) Intersection(other Interval[K]) Interval[K] {
	lower := iv.lower
	if lower.Compare(other.lower) < 0 {
		lower = other.lower
	}
	upper := iv.upper
	if upper.Compare(other.upper) > 0 {
		upper = other.upper
	}
	assert(lower.Compare(upper) <= 0, "interval: intersection of disconnected intervals")
	return Interval[K]{lower: lower, upper: upper}
}

// Compare orders intervals lexicographically by (lower, upper). Disjoint
// non-empty intervals order by their position in the key domain.
func (iv Interval[K]) Compare(other Interval[K]) int {
	if r := iv.lower.Compare(other.lower); r != 0 {
		return r
	}
	return iv.upper.Compare(other.upper)
}

// Equal reports boundary-exact equality. [1‥2] and [1‥3) differ even over
// an integer domain: no normalization across key representations happens.
func (iv Interval[K]) Equal(other Interval[K]) bool {
	return iv.Compare(other) == 0
}

// String renders the interval in mathematical notation, e.g. "[3‥7)" or
// "(-∞‥+∞)".
func (iv Interval[K]) String() string {
	var sb strings.Builder
	switch iv.lower.kind {
	case KindBelowAll:
		sb.WriteString("(-∞")
	case KindBelow:
		fmt.Fprintf(&sb, "[%v", iv.lower.endpoint)
	case KindAbove:
		fmt.Fprintf(&sb, "(%v", iv.lower.endpoint)
	}
	sb.WriteString("‥")
	switch iv.upper.kind {
	case KindAboveAll:
		sb.WriteString("+∞)")
	case KindAbove:
		fmt.Fprintf(&sb, "%v]", iv.upper.endpoint)
	case KindBelow:
		fmt.Fprintf(&sb, "%v)", iv.upper.endpoint)
	}
	return sb.String()
}
