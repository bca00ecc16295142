/*
Package rangefile persists range maps as canonical entry sequences.

The wire form is the ascending canonical map view, encoded entry by entry
with msgpack: a leading entry count, then per entry the two boundary cuts
(kind and endpoint), followed by the value collection. Decoding replays the
entries through a fresh builder, so a loaded map re-validates the
disjointness invariant and is indistinguishable from one built in process.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package rangefile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ranges'
func tracer() tracing.Trace {
	return tracing.Select("ranges")
}
