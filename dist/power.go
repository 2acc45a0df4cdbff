// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand/v2"
)

// A PowerDist is a power-function distribution with scale Alpha > 0
// and shape Beta > 0, supported on 0 < x < α.
//
//	f(x)    = βx^(β-1) / α^β
//	F(x)    = (x/α)^β
//	F⁻¹(p)  = α·p^(1/β)
//
// Parameter vectors are recycled against the evaluation points.
type PowerDist struct {
	Alpha, Beta []float64
}

func powerOK(alpha, beta float64) bool {
	return alpha > 0 && beta > 0
}

// powerLogPDF computes the density in log space so that large shapes
// do not underflow before the optional exponentiation.
func powerLogPDF(x, alpha, beta float64) float64 {
	if x <= 0 || x >= alpha {
		return -inf
	}
	return math.Log(beta) + math.Log(x)*(beta-1) - math.Log(alpha)*beta
}

func powerCDF(x, alpha, beta float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= alpha {
		return 1
	}
	return math.Pow(x, beta) / math.Pow(alpha, beta)
}

func powerInvCDF(p, alpha, beta float64) float64 {
	return alpha * math.Pow(p, 1/beta)
}

// PDF returns the density at each element of xs, on the log scale if
// logProb is set.
func (d PowerDist) PDF(xs []float64, logProb bool) []float64 {
	p := eval3("power", xs, d.Alpha, d.Beta, powerOK, powerLogPDF)
	if !logProb {
		expEach(p)
	}
	return p
}

// CDF returns P(X <= x) for each element of xs, or P(X > x) if
// lowerTail is unset; on the log scale if logProb is set.
func (d PowerDist) CDF(xs []float64, lowerTail, logProb bool) []float64 {
	p := eval3("power", xs, d.Alpha, d.Beta, powerOK, powerCDF)
	return finishProbs(p, lowerTail, logProb)
}

// InvCDF returns the quantile for each probability in ps.
func (d PowerDist) InvCDF(ps []float64, lowerTail, logProb bool) []float64 {
	pp := probInputs(ps, lowerTail, logProb)
	return quant3("power", pp, d.Alpha, d.Beta, powerOK, powerInvCDF)
}

// Rand draws n variates by inverse-transform sampling. A nil src
// selects the package-level stream.
func (d PowerDist) Rand(n int, src rand.Source) []float64 {
	return rand2("power", n, d.Alpha, d.Beta, powerOK,
		func(r *rand.Rand, alpha, beta float64) float64 {
			return powerInvCDF(r.Float64(), alpha, beta)
		}, src)
}
