// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "math/rand/v2"

// globalRand is the sampling stream used when no Source is supplied.
// It is not safe for concurrent use; callers that sample from
// multiple goroutines must supply their own sources.
var globalRand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))

func newRand(src rand.Source) *rand.Rand {
	if src == nil {
		return globalRand
	}
	return rand.New(src)
}

// runif returns a uniform variate on [lo, hi).
func runif(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
