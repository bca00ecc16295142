package rangefile

import (
	"cmp"
	"fmt"
	"io"

	"github.com/npillmayer/ranges"
	"github.com/npillmayer/ranges/interval"
	"github.com/vmihailenco/msgpack/v5"
)

// Save encodes the canonical entry sequence of m to w.
func Save[K cmp.Ordered, V any](m ranges.MultiMap[K, V], w io.Writer) error {
	enc := msgpack.NewEncoder(w)
	view := m.AsMapOfRanges()
	if err := enc.EncodeInt(int64(view.Len())); err != nil {
		return err
	}
	for iv, values := range view.All() {
		if err := encodeCut(enc, iv.LowerCut()); err != nil {
			return err
		}
		if err := encodeCut(enc, iv.UpperCut()); err != nil {
			return err
		}
		if err := enc.Encode(values); err != nil {
			return err
		}
	}
	return nil
}

// Load decodes a canonical entry sequence from r and rebuilds the map.
//
// Entries are replayed through a fresh builder, so corrupted input that
// decodes into empty or overlapping intervals fails with the builder's
// errors rather than producing an invalid map.
func Load[K cmp.Ordered, V any](r io.Reader) (ranges.MultiMap[K, V], error) {
	b := ranges.NewBuilder[K, V]()
	if err := decodeInto(r, b, nil); err != nil {
		return ranges.MultiMap[K, V]{}, err
	}
	return b.Build()
}

// decodeInto replays every wire entry into b, reporting each decoded entry
// to onEntry if non-nil.
func decodeInto[K cmp.Ordered, V any](r io.Reader, b *ranges.Builder[K, V],
	onEntry func(ranges.Entry[K, V])) error {
	//
	dec := msgpack.NewDecoder(r)
	count, err := dec.DecodeInt()
	if err != nil {
		return fmt.Errorf("%w: cannot read entry count: %v", ErrCorruptEntry, err)
	}
	tracer().Debugf("range file: decoding %d entries", count)
	for i := 0; i < count; i++ {
		lower, err := decodeCut[K](dec)
		if err != nil {
			return fmt.Errorf("%w %d: %v", ErrCorruptEntry, i, err)
		}
		upper, err := decodeCut[K](dec)
		if err != nil {
			return fmt.Errorf("%w %d: %v", ErrCorruptEntry, i, err)
		}
		iv, err := interval.New(lower, upper)
		if err != nil {
			return fmt.Errorf("%w %d: %v", ErrCorruptEntry, i, err)
		}
		var values []V
		if err := dec.Decode(&values); err != nil {
			return fmt.Errorf("%w %d: %v", ErrCorruptEntry, i, err)
		}
		for _, v := range values {
			if err := b.Put(iv, v); err != nil {
				return err
			}
		}
		if onEntry != nil {
			onEntry(ranges.Entry[K, V]{Interval: iv, Values: values})
		}
	}
	return nil
}

// encodeCut writes a cut as (kind, endpoint). The endpoint of an unbounded
// cut is the key zero value, kept on the wire so every cut has the same
// framing.
func encodeCut[K cmp.Ordered](enc *msgpack.Encoder, c interval.Cut[K]) error {
	if err := enc.EncodeInt8(int8(c.Kind())); err != nil {
		return err
	}
	endpoint, _ := c.Endpoint()
	return enc.Encode(endpoint)
}

func decodeCut[K cmp.Ordered](dec *msgpack.Decoder) (interval.Cut[K], error) {
	kind, err := dec.DecodeInt8()
	if err != nil {
		return interval.Cut[K]{}, err
	}
	var endpoint K
	if err := dec.Decode(&endpoint); err != nil {
		return interval.Cut[K]{}, err
	}
	switch interval.CutKind(kind) {
	case interval.KindBelowAll:
		return interval.BelowAll[K](), nil
	case interval.KindBelow:
		return interval.Below(endpoint), nil
	case interval.KindAbove:
		return interval.Above(endpoint), nil
	case interval.KindAboveAll:
		return interval.AboveAll[K](), nil
	}
	return interval.Cut[K]{}, fmt.Errorf("unknown cut kind %d", kind)
}
