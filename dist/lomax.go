// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand/v2"
)

// A LomaxDist is a Lomax (Pareto type II) distribution with rate
// Lambda > 0 and shape Kappa > 0, supported on x > 0.
//
//	f(x)    = λκ / (1+λx)^(κ+1)
//	F(x)    = 1 - (1+λx)^-κ
//	F⁻¹(p)  = ((1-p)^(-1/κ) - 1) / λ
//
// Parameter vectors are recycled against the evaluation points.
type LomaxDist struct {
	Lambda, Kappa []float64
}

func lomaxOK(lambda, kappa float64) bool {
	return lambda > 0 && kappa > 0
}

// lomaxLogPDF computes the density in log space so that the far tail
// does not underflow before the optional exponentiation.
func lomaxLogPDF(x, lambda, kappa float64) float64 {
	if x <= 0 {
		return -inf
	}
	return math.Log(lambda) + math.Log(kappa) - math.Log(1+lambda*x)*(kappa+1)
}

func lomaxCDF(x, lambda, kappa float64) float64 {
	if x <= 0 {
		return 0
	}
	return 1 - math.Pow(1+lambda*x, -kappa)
}

func lomaxInvCDF(p, lambda, kappa float64) float64 {
	return (math.Pow(1-p, -1/kappa) - 1) / lambda
}

// PDF returns the density at each element of xs, on the log scale if
// logProb is set.
func (d LomaxDist) PDF(xs []float64, logProb bool) []float64 {
	p := eval3("lomax", xs, d.Lambda, d.Kappa, lomaxOK, lomaxLogPDF)
	if !logProb {
		expEach(p)
	}
	return p
}

// CDF returns P(X <= x) for each element of xs, or P(X > x) if
// lowerTail is unset; on the log scale if logProb is set.
func (d LomaxDist) CDF(xs []float64, lowerTail, logProb bool) []float64 {
	p := eval3("lomax", xs, d.Lambda, d.Kappa, lomaxOK, lomaxCDF)
	return finishProbs(p, lowerTail, logProb)
}

// InvCDF returns the quantile for each probability in ps. The
// lowerTail and logProb flags describe the scale of ps.
func (d LomaxDist) InvCDF(ps []float64, lowerTail, logProb bool) []float64 {
	pp := probInputs(ps, lowerTail, logProb)
	return quant3("lomax", pp, d.Lambda, d.Kappa, lomaxOK, lomaxInvCDF)
}

// Rand draws n variates by inverse-transform sampling. A nil src
// selects the package-level stream.
func (d LomaxDist) Rand(n int, src rand.Source) []float64 {
	return rand2("lomax", n, d.Lambda, d.Kappa, lomaxOK,
		func(r *rand.Rand, lambda, kappa float64) float64 {
			return lomaxInvCDF(r.Float64(), lambda, kappa)
		}, src)
}
