/*
Package interval provides ordered-domain intervals with independently open,
closed or unbounded boundaries.

Boundaries are modelled as cuts: positions between keys rather than keys
themselves. This gives all boundary flavors one total order and makes
containment, connectedness and intersection two-comparison operations. The
ranges package builds its binary searches on cut comparison.

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package interval

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
