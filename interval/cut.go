package interval

import "cmp"

// CutKind discriminates the four positions a cut can take in the key domain.
type CutKind int8

const (
	// KindBelowAll marks the cut before every key (−∞).
	KindBelowAll CutKind = iota
	// KindBelow marks the cut immediately before an endpoint.
	KindBelow
	// KindAbove marks the cut immediately after an endpoint.
	KindAbove
	// KindAboveAll marks the cut after every key (+∞).
	KindAboveAll
)

// Cut is a boundary position in an ordered key domain.
//
// A cut never coincides with a key: it sits immediately before or after an
// endpoint, or beyond all keys. Interval boundaries are cuts, which gives
// open, closed and unbounded interval ends a single total order:
//
//	belowAll < below(v) < above(v) < aboveAll
//
// with cuts at distinct endpoints ordered by endpoint. The zero value is the
// belowAll cut.
type Cut[K cmp.Ordered] struct {
	endpoint K
	kind     CutKind
}

// BelowAll returns the cut before every key.
func BelowAll[K cmp.Ordered]() Cut[K] {
	return Cut[K]{kind: KindBelowAll}
}

// AboveAll returns the cut after every key.
func AboveAll[K cmp.Ordered]() Cut[K] {
	return Cut[K]{kind: KindAboveAll}
}

// Below returns the cut immediately before endpoint v.
func Below[K cmp.Ordered](v K) Cut[K] {
	return Cut[K]{endpoint: v, kind: KindBelow}
}

// Above returns the cut immediately after endpoint v.
func Above[K cmp.Ordered](v K) Cut[K] {
	return Cut[K]{endpoint: v, kind: KindAbove}
}

// Kind returns the cut's position discriminator.
func (c Cut[K]) Kind() CutKind {
	return c.kind
}

// Endpoint returns the cut's endpoint. ok is false for the unbounded kinds,
// whose endpoint is meaningless.
func (c Cut[K]) Endpoint() (v K, ok bool) {
	if c.kind == KindBelowAll || c.kind == KindAboveAll {
		return v, false
	}
	return c.endpoint, true
}

// Compare orders c against other. The unbounded kinds sort before/after
// everything; bounded cuts order by endpoint, with the below-cut preceding
// the above-cut at equal endpoints.
func (c Cut[K]) Compare(other Cut[K]) int {
	if c.kind == KindBelowAll || other.kind == KindBelowAll ||
		c.kind == KindAboveAll || other.kind == KindAboveAll {
		return cmp.Compare(c.kind, other.kind)
	}
	if r := cmp.Compare(c.endpoint, other.endpoint); r != 0 {
		return r
	}
	return cmp.Compare(c.kind, other.kind)
}
