// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand/v2"
)

// A DiscreteWeibullDist is a discrete Weibull distribution (type I)
// with parameters 0 < Q < 1 and shape Beta > 0, supported on the
// non-negative integers.
//
//	f(x)    = q^(x^β) - q^((x+1)^β)
//	F(x)    = 1 - q^((x+1)^β)
//	F⁻¹(p)  = ⌈(log(1-p)/log q)^(1/β) - 1⌉
//
// See Nakagawa and Osaki (1975), "The Discrete Weibull Distribution",
// IEEE Transactions on Reliability, R-24, pp. 300-301.
//
// Parameter vectors are recycled against the evaluation points.
type DiscreteWeibullDist struct {
	Q, Beta []float64
}

func dweibullOK(q, beta float64) bool {
	return q > 0 && q < 1 && beta > 0
}

func dweibullPMF(x, q, beta float64) float64 {
	if x < 0 || !isInt(x) {
		return 0
	}
	return math.Pow(q, math.Pow(x, beta)) - math.Pow(q, math.Pow(x+1, beta))
}

func dweibullCDF(x, q, beta float64) float64 {
	if x < 0 {
		return 0
	}
	return 1 - math.Pow(q, math.Pow(x+1, beta))
}

func dweibullInvCDF(p, q, beta float64) float64 {
	if p == 0 {
		return 0
	}
	return math.Ceil(math.Pow(math.Log(1-p)/math.Log(q), 1/beta) - 1)
}

// PMF returns the probability mass at each element of xs. Fractional
// evaluation points have mass 0.
func (d DiscreteWeibullDist) PMF(xs []float64, logProb bool) []float64 {
	p := eval3("dweibull", xs, d.Q, d.Beta, dweibullOK, dweibullPMF)
	if logProb {
		logEach(p)
	}
	return p
}

// CDF returns P(X <= x) for each element of xs, or P(X > x) if
// lowerTail is unset; on the log scale if logProb is set.
func (d DiscreteWeibullDist) CDF(xs []float64, lowerTail, logProb bool) []float64 {
	p := eval3("dweibull", xs, d.Q, d.Beta, dweibullOK, dweibullCDF)
	return finishProbs(p, lowerTail, logProb)
}

// InvCDF returns the smallest integer x with F(x) >= p for each
// probability in ps.
func (d DiscreteWeibullDist) InvCDF(ps []float64, lowerTail, logProb bool) []float64 {
	pp := probInputs(ps, lowerTail, logProb)
	return quant3("dweibull", pp, d.Q, d.Beta, dweibullOK, dweibullInvCDF)
}

// Rand draws n variates by inverse-transform sampling. A nil src
// selects the package-level stream.
func (d DiscreteWeibullDist) Rand(n int, src rand.Source) []float64 {
	return rand2("dweibull", n, d.Q, d.Beta, dweibullOK,
		func(r *rand.Rand, q, beta float64) float64 {
			return dweibullInvCDF(r.Float64(), q, beta)
		}, src)
}
