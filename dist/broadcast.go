// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Vector recycling and the per-element dispatch shared by every
// distribution function in this package.
//
// Inputs are recycled unconditionally: element i of a length-L input
// is read at position i mod L, with no requirement that lengths share
// a common multiple. Each output element goes through the same
// three-way dispatch: a missing input yields NA, an out-of-domain
// parameter yields NaN (reported once per call), and a valid element
// invokes the distribution's scalar kernel.

package dist

import (
	"math"
	"math/rand/v2"
)

// at returns element i of s under recycling.
func at(s []float64, i int) float64 {
	return s[i%len(s)]
}

// recycleLen returns the common result length for the given inputs:
// the maximum of their lengths, or 0 if any input is empty.
func recycleLen(seqs ...[]float64) int {
	n := 0
	for _, s := range seqs {
		if len(s) == 0 {
			return 0
		}
		if len(s) > n {
			n = len(s)
		}
	}
	return n
}

// eval3 evaluates kernel f elementwise over x and the recycled
// parameter vectors a and b. ok reports whether a parameter pair lies
// in the distribution's domain.
func eval3(name string, x, a, b []float64, ok func(a, b float64) bool, f func(x, a, b float64) float64) []float64 {
	out := make([]float64, recycleLen(x, a, b))
	bad := false
	for i := range out {
		xi, ai, bi := at(x, i), at(a, i), at(b, i)
		switch {
		case isMissing(xi) || isMissing(ai) || isMissing(bi):
			out[i] = NA
		case !ok(ai, bi):
			out[i] = nan
			bad = true
		default:
			out[i] = f(xi, ai, bi)
		}
	}
	if bad {
		warnNaNs(name)
	}
	return out
}

// quant3 is eval3 for quantile functions: the evaluation point must
// itself be a probability in [0, 1].
func quant3(name string, p, a, b []float64, ok func(a, b float64) bool, f func(p, a, b float64) float64) []float64 {
	out := make([]float64, recycleLen(p, a, b))
	bad := false
	for i := range out {
		pi, ai, bi := at(p, i), at(a, i), at(b, i)
		switch {
		case isMissing(pi) || isMissing(ai) || isMissing(bi):
			out[i] = NA
		case !ok(ai, bi) || pi < 0 || pi > 1:
			out[i] = nan
			bad = true
		default:
			out[i] = f(pi, ai, bi)
		}
	}
	if bad {
		warnNaNs(name)
	}
	return out
}

// eval5 is eval3 for distributions with four parameter vectors.
func eval5(name string, x, a, b, c, d []float64, ok func(a, b, c, d float64) bool, f func(x, a, b, c, d float64) float64) []float64 {
	out := make([]float64, recycleLen(x, a, b, c, d))
	bad := false
	for i := range out {
		xi, ai, bi, ci, di := at(x, i), at(a, i), at(b, i), at(c, i), at(d, i)
		switch {
		case isMissing(xi) || isMissing(ai) || isMissing(bi) || isMissing(ci) || isMissing(di):
			out[i] = NA
		case !ok(ai, bi, ci, di):
			out[i] = nan
			bad = true
		default:
			out[i] = f(xi, ai, bi, ci, di)
		}
	}
	if bad {
		warnNaNs(name)
	}
	return out
}

// quant5 is quant3 for distributions with four parameter vectors.
func quant5(name string, p, a, b, c, d []float64, ok func(a, b, c, d float64) bool, f func(p, a, b, c, d float64) float64) []float64 {
	out := make([]float64, recycleLen(p, a, b, c, d))
	bad := false
	for i := range out {
		pi, ai, bi, ci, di := at(p, i), at(a, i), at(b, i), at(c, i), at(d, i)
		switch {
		case isMissing(pi) || isMissing(ai) || isMissing(bi) || isMissing(ci) || isMissing(di):
			out[i] = NA
		case !ok(ai, bi, ci, di) || pi < 0 || pi > 1:
			out[i] = nan
			bad = true
		default:
			out[i] = f(pi, ai, bi, ci, di)
		}
	}
	if bad {
		warnNaNs(name)
	}
	return out
}

// rand2 draws n variates, recycling the parameter vectors a and b
// against the sample index. Invalid parameter elements produce NaN
// variates under the same dispatch as evaluation.
func rand2(name string, n int, a, b []float64, ok func(a, b float64) bool, g func(r *rand.Rand, a, b float64) float64, src rand.Source) []float64 {
	if recycleLen(a, b) == 0 {
		return nil
	}
	r := newRand(src)
	out := make([]float64, n)
	bad := false
	for i := range out {
		ai, bi := at(a, i), at(b, i)
		switch {
		case isMissing(ai) || isMissing(bi):
			out[i] = NA
		case !ok(ai, bi):
			out[i] = nan
			bad = true
		default:
			out[i] = g(r, ai, bi)
		}
	}
	if bad {
		warnNaNs(name)
	}
	return out
}

// rand4 is rand2 for distributions with four parameter vectors.
func rand4(name string, n int, a, b, c, d []float64, ok func(a, b, c, d float64) bool, g func(r *rand.Rand, a, b, c, d float64) float64, src rand.Source) []float64 {
	if recycleLen(a, b, c, d) == 0 {
		return nil
	}
	r := newRand(src)
	out := make([]float64, n)
	bad := false
	for i := range out {
		ai, bi, ci, di := at(a, i), at(b, i), at(c, i), at(d, i)
		switch {
		case isMissing(ai) || isMissing(bi) || isMissing(ci) || isMissing(di):
			out[i] = NA
		case !ok(ai, bi, ci, di):
			out[i] = nan
			bad = true
		default:
			out[i] = g(r, ai, bi, ci, di)
		}
	}
	if bad {
		warnNaNs(name)
	}
	return out
}

// The post-processing helpers below apply uniformly across a whole
// result and skip NaN-family elements so that NA payloads survive
// (arithmetic is not guaranteed to preserve NaN payloads).

// expEach exponentiates each non-missing element of p in place.
func expEach(p []float64) {
	for i, v := range p {
		if !math.IsNaN(v) {
			p[i] = math.Exp(v)
		}
	}
}

// logEach takes the log of each non-missing element of p in place.
func logEach(p []float64) {
	for i, v := range p {
		if !math.IsNaN(v) {
			p[i] = math.Log(v)
		}
	}
}

// complementEach replaces each non-missing element of p with 1-p in
// place.
func complementEach(p []float64) {
	for i, v := range p {
		if !math.IsNaN(v) {
			p[i] = 1 - v
		}
	}
}

// finishProbs applies the uniform tail and log post-processing to a
// vector of lower-tail probabilities.
func finishProbs(p []float64, lowerTail, logProb bool) []float64 {
	if !lowerTail {
		complementEach(p)
	}
	if logProb {
		logEach(p)
	}
	return p
}

// probInputs maps quantile-function inputs back to natural lower-tail
// probabilities, leaving the caller's slice untouched.
func probInputs(p []float64, lowerTail, logProb bool) []float64 {
	if lowerTail && !logProb {
		return p
	}
	pp := make([]float64, len(p))
	copy(pp, p)
	if logProb {
		expEach(pp)
	}
	if !lowerTail {
		complementEach(pp)
	}
	return pp
}
