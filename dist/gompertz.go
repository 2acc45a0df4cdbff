// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand/v2"
)

// A GompertzDist is a Gompertz distribution with shape A > 0 and rate
// B > 0, supported on x >= 0.
//
//	f(x)    = a·exp(bx - (a/b)(e^(bx)-1))
//	F(x)    = 1 - exp(-(a/b)(e^(bx)-1))
//	F⁻¹(p)  = (1/b)·log(1 - (b/a)log(1-p))
//
// See Lenart (2012), "The Gompertz distribution and Maximum
// Likelihood Estimation of its parameters - a revision", MPIDR
// Working Paper WP 2012-008.
//
// Parameter vectors are recycled against the evaluation points.
type GompertzDist struct {
	A, B []float64
}

func gompertzOK(a, b float64) bool {
	return a > 0 && b > 0
}

// gompertzLogPDF computes the density in log space so that the
// doubly-exponential tail does not underflow before the optional
// exponentiation.
func gompertzLogPDF(x, a, b float64) float64 {
	if x < 0 || math.IsInf(x, 0) {
		return -inf
	}
	return math.Log(a) + b*x - a/b*math.Expm1(b*x)
}

func gompertzCDF(x, a, b float64) float64 {
	if x < 0 {
		return 0
	}
	if math.IsInf(x, 1) {
		return 1
	}
	return 1 - math.Exp(-a/b*math.Expm1(b*x))
}

func gompertzInvCDF(p, a, b float64) float64 {
	return 1 / b * math.Log(1-b/a*math.Log(1-p))
}

// PDF returns the density at each element of xs, on the log scale if
// logProb is set.
func (d GompertzDist) PDF(xs []float64, logProb bool) []float64 {
	p := eval3("gompertz", xs, d.A, d.B, gompertzOK, gompertzLogPDF)
	if !logProb {
		expEach(p)
	}
	return p
}

// CDF returns P(X <= x) for each element of xs, or P(X > x) if
// lowerTail is unset; on the log scale if logProb is set.
func (d GompertzDist) CDF(xs []float64, lowerTail, logProb bool) []float64 {
	p := eval3("gompertz", xs, d.A, d.B, gompertzOK, gompertzCDF)
	return finishProbs(p, lowerTail, logProb)
}

// InvCDF returns the quantile for each probability in ps.
func (d GompertzDist) InvCDF(ps []float64, lowerTail, logProb bool) []float64 {
	pp := probInputs(ps, lowerTail, logProb)
	return quant3("gompertz", pp, d.A, d.B, gompertzOK, gompertzInvCDF)
}

// Rand draws n variates by inverse-transform sampling. A nil src
// selects the package-level stream.
func (d GompertzDist) Rand(n int, src rand.Source) []float64 {
	return rand2("gompertz", n, d.A, d.B, gompertzOK,
		func(r *rand.Rand, a, b float64) float64 {
			return gompertzInvCDF(r.Float64(), a, b)
		}, src)
}
