// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand/v2"
)

// A GumbelDist is a Gumbel (type I extreme value) distribution with
// location Mu and scale Sigma > 0.
//
// With z = (x-μ)/σ:
//
//	f(x)    = exp(-(z+e^-z))/σ
//	F(x)    = exp(-e^-z)
//	F⁻¹(p)  = μ - σ·log(-log p)
//
// Parameter vectors are recycled against the evaluation points.
type GumbelDist struct {
	Mu, Sigma []float64
}

func gumbelOK(mu, sigma float64) bool {
	return sigma > 0
}

func gumbelPDF(x, mu, sigma float64) float64 {
	if math.IsInf(x, 0) {
		return 0
	}
	z := (x - mu) / sigma
	return math.Exp(-(z + math.Exp(-z))) / sigma
}

func gumbelCDF(x, mu, sigma float64) float64 {
	z := (x - mu) / sigma
	return math.Exp(-math.Exp(-z))
}

func gumbelInvCDF(p, mu, sigma float64) float64 {
	return mu - sigma*math.Log(-math.Log(p))
}

// PDF returns the density at each element of xs, on the log scale if
// logProb is set.
func (d GumbelDist) PDF(xs []float64, logProb bool) []float64 {
	p := eval3("gumbel", xs, d.Mu, d.Sigma, gumbelOK, gumbelPDF)
	if logProb {
		logEach(p)
	}
	return p
}

// CDF returns P(X <= x) for each element of xs, or P(X > x) if
// lowerTail is unset; on the log scale if logProb is set.
func (d GumbelDist) CDF(xs []float64, lowerTail, logProb bool) []float64 {
	p := eval3("gumbel", xs, d.Mu, d.Sigma, gumbelOK, gumbelCDF)
	return finishProbs(p, lowerTail, logProb)
}

// InvCDF returns the quantile for each probability in ps.
func (d GumbelDist) InvCDF(ps []float64, lowerTail, logProb bool) []float64 {
	pp := probInputs(ps, lowerTail, logProb)
	return quant3("gumbel", pp, d.Mu, d.Sigma, gumbelOK, gumbelInvCDF)
}

// Rand draws n variates by inverse-transform sampling. A nil src
// selects the package-level stream.
func (d GumbelDist) Rand(n int, src rand.Source) []float64 {
	return rand2("gumbel", n, d.Mu, d.Sigma, gumbelOK,
		func(r *rand.Rand, mu, sigma float64) float64 {
			return gumbelInvCDF(r.Float64(), mu, sigma)
		}, src)
}
