/*
Package ranges provides an immutable multimap from disjoint intervals to
collections of values.

Range maps

A range map associates non-overlapping intervals over an ordered key domain
with values. Point lookup answers which interval contains a key and which
values are attached to it; window extraction restricts the whole map to an
interval and yields a new first-class map sharing the original's storage.

A map is assembled through a Builder and is read-only forever after:

	b := ranges.NewBuilder[int, string]()
	_ = b.Put(interval.Closed(1, 5), "a")
	_ = b.Put(interval.Open(6, 8), "b")
	m, err := b.Build()

Internally a map is two parallel sorted sequences, one of intervals and one
of value collections. All queries are binary searches over interval
boundaries; sub-range views re-slice the two sequences and trim at most the
two boundary intervals. Due to immutability, maps and all views derived
from them may be shared freely between goroutines without synchronization.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package ranges

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// tracer writes to trace with key 'ranges'
func tracer() tracing.Trace {
	return tracing.Select("ranges")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

// RangeError is an error type for the ranges module
type RangeError string

func (e RangeError) Error() string {
	return string(e)
}

// ErrImmutable signals a call to a mutation entry point of an immutable
// range map. Built maps never change; mutation lives in builders.
const ErrImmutable = RangeError("forbidden to modify immutable range map")

// ErrNoSuchEntry is flagged when an operation needs at least one entry but
// the range map is empty.
const ErrNoSuchEntry = RangeError("range map holds no entries")

// ErrEmptyRange is flagged when an empty interval is put into a builder.
const ErrEmptyRange = RangeError("range must not be empty")

// ErrOverlap signals that two intervals put into a builder overlap.
const ErrOverlap = RangeError("overlapping ranges")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = RangeError("illegal arguments")
