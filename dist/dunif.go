// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand/v2"
)

// A DiscreteUniformDist is a uniform distribution on the integers
// Min..Max inclusive. Min and Max must be finite integer values with
// Min <= Max.
//
//	f(x)    = 1/(max-min+1)
//	F(x)    = (⌊x⌋-min+1)/(max-min+1)
//	F⁻¹(p)  = ⌈p(max-min+1)+min-1⌉
//
// Parameter vectors are recycled against the evaluation points.
type DiscreteUniformDist struct {
	Min, Max []float64
}

func dunifOK(min, max float64) bool {
	return min <= max && !math.IsInf(min, 0) && !math.IsInf(max, 0) &&
		isInt(min) && isInt(max)
}

func dunifPMF(x, min, max float64) float64 {
	if x < min || x > max || !isInt(x) {
		return 0
	}
	return 1 / (max - min + 1)
}

func dunifCDF(x, min, max float64) float64 {
	if x < min {
		return 0
	}
	if x >= max {
		return 1
	}
	return (math.Floor(x) - min + 1) / (max - min + 1)
}

func dunifInvCDF(p, min, max float64) float64 {
	if p == 0 || min == max {
		return min
	}
	return math.Ceil(p*(max-min+1) + min - 1)
}

func dunifRand(r *rand.Rand, min, max float64) float64 {
	if min == max {
		return min
	}
	return math.Ceil(runif(r, min-1, max))
}

// PMF returns the probability mass at each element of xs. Fractional
// or out-of-range evaluation points have mass 0.
func (d DiscreteUniformDist) PMF(xs []float64, logProb bool) []float64 {
	p := eval3("dunif", xs, d.Min, d.Max, dunifOK, dunifPMF)
	if logProb {
		logEach(p)
	}
	return p
}

// CDF returns P(X <= x) for each element of xs, or P(X > x) if
// lowerTail is unset; on the log scale if logProb is set.
func (d DiscreteUniformDist) CDF(xs []float64, lowerTail, logProb bool) []float64 {
	p := eval3("dunif", xs, d.Min, d.Max, dunifOK, dunifCDF)
	return finishProbs(p, lowerTail, logProb)
}

// InvCDF returns the smallest integer x with F(x) >= p for each
// probability in ps.
func (d DiscreteUniformDist) InvCDF(ps []float64, lowerTail, logProb bool) []float64 {
	pp := probInputs(ps, lowerTail, logProb)
	return quant3("dunif", pp, d.Min, d.Max, dunifOK, dunifInvCDF)
}

// Rand draws n variates. A nil src selects the package-level stream.
func (d DiscreteUniformDist) Rand(n int, src rand.Source) []float64 {
	return rand2("dunif", n, d.Min, d.Max, dunifOK, dunifRand, src)
}
