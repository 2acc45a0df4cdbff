// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand/v2"
)

// A KumaraswamyDist is a Kumaraswamy distribution with shapes A > 0
// and B > 0, supported on [0, 1].
//
//	f(x)    = abx^(a-1)(1-x^a)^(b-1)
//	F(x)    = 1 - (1-x^a)^b
//	F⁻¹(p)  = (1-(1-p)^(1/b))^(1/a)
//
// Parameter vectors are recycled against the evaluation points.
type KumaraswamyDist struct {
	A, B []float64
}

func kumarOK(a, b float64) bool {
	return a > 0 && b > 0
}

// kumarLogPDF computes the density in log space so that extreme
// shapes do not underflow before the optional exponentiation. Shape-1
// terms are dropped rather than multiplied out to keep the support
// endpoints finite.
func kumarLogPDF(x, a, b float64) float64 {
	if x < 0 || x > 1 {
		return -inf
	}
	lp := math.Log(a) + math.Log(b)
	if a != 1 {
		lp += math.Log(x) * (a - 1)
	}
	if b != 1 {
		lp += math.Log(1-math.Pow(x, a)) * (b - 1)
	}
	return lp
}

func kumarCDF(x, a, b float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return 1 - math.Pow(1-math.Pow(x, a), b)
}

func kumarInvCDF(p, a, b float64) float64 {
	return math.Pow(1-math.Pow(1-p, 1/b), 1/a)
}

// PDF returns the density at each element of xs, on the log scale if
// logProb is set.
func (d KumaraswamyDist) PDF(xs []float64, logProb bool) []float64 {
	p := eval3("kumar", xs, d.A, d.B, kumarOK, kumarLogPDF)
	if !logProb {
		expEach(p)
	}
	return p
}

// CDF returns P(X <= x) for each element of xs, or P(X > x) if
// lowerTail is unset; on the log scale if logProb is set.
func (d KumaraswamyDist) CDF(xs []float64, lowerTail, logProb bool) []float64 {
	p := eval3("kumar", xs, d.A, d.B, kumarOK, kumarCDF)
	return finishProbs(p, lowerTail, logProb)
}

// InvCDF returns the quantile for each probability in ps.
func (d KumaraswamyDist) InvCDF(ps []float64, lowerTail, logProb bool) []float64 {
	pp := probInputs(ps, lowerTail, logProb)
	return quant3("kumar", pp, d.A, d.B, kumarOK, kumarInvCDF)
}

// Rand draws n variates by inverse-transform sampling. A nil src
// selects the package-level stream.
func (d KumaraswamyDist) Rand(n int, src rand.Source) []float64 {
	return rand2("kumar", n, d.A, d.B, kumarOK,
		func(r *rand.Rand, a, b float64) float64 {
			return kumarInvCDF(r.Float64(), a, b)
		}, src)
}
