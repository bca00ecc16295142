/*
Package seq provides immutable sequence views and a policy-driven binary
search for the ranges container.

The container keeps its state in two parallel sorted sequences. Sub-range
views of the container need zero-copy contiguous sub-views and reversed
iteration, and its lookups need a binary search that can break ties between
equal boundary projections in several ways. Both live here, decoupled from
interval semantics.

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package seq
