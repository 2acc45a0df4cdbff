// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// A TruncNormalDist is a normal distribution with mean Mu and
// standard deviation Sigma > 0, truncated to the interval (A, B) with
// A < B. A and B may be infinite.
//
// With z = (x-μ)/σ and Φ, φ the standard normal CDF and density:
//
//	f(x)    = φ(z) / (σ(Φ(z_b)-Φ(z_a)))
//	F(x)    = (Φ(z)-Φ(z_a)) / (Φ(z_b)-Φ(z_a))
//	F⁻¹(p)  = Φ⁻¹(Φ(z_a) + p(Φ(z_b)-Φ(z_a)))
//
// Parameter vectors are recycled against the evaluation points.
type TruncNormalDist struct {
	Mu, Sigma, A, B []float64
}

const sqrt2Pi = 2.50662827463100050241576528481104525 // sqrt(2π)

func tnormOK(mu, sigma, a, b float64) bool {
	return sigma > 0 && a < b
}

func tnormPDF(x, mu, sigma, a, b float64) float64 {
	if x <= a || x >= b {
		return 0
	}
	z := (x - mu) / sigma
	pa := distuv.UnitNormal.CDF((a - mu) / sigma)
	pb := distuv.UnitNormal.CDF((b - mu) / sigma)
	return distuv.UnitNormal.Prob(z) / (sigma * (pb - pa))
}

func tnormCDF(x, mu, sigma, a, b float64) float64 {
	if x <= a {
		return 0
	}
	if x >= b {
		return 1
	}
	pa := distuv.UnitNormal.CDF((a - mu) / sigma)
	pb := distuv.UnitNormal.CDF((b - mu) / sigma)
	return (distuv.UnitNormal.CDF((x-mu)/sigma) - pa) / (pb - pa)
}

func tnormInvCDF(p, mu, sigma, a, b float64) float64 {
	pa := distuv.UnitNormal.CDF((a - mu) / sigma)
	pb := distuv.UnitNormal.CDF((b - mu) / sigma)
	q := pa + p*(pb-pa)
	// Keep rounding from pushing q outside Quantile's domain.
	q = math.Max(0, math.Min(1, q))
	return mu + sigma*distuv.UnitNormal.Quantile(q)
}

// tnormRand samples one variate by rejection. Narrow truncation
// intervals (shorter than sqrt(2π) in standardized units) use a
// uniform envelope; wide ones draw from the untruncated normal until
// the draw lands in range.
func tnormRand(r *rand.Rand, mu, sigma, a, b float64) float64 {
	za := (a - mu) / sigma
	zb := (b - mu) / sigma
	var z float64
	if zb-za < sqrt2Pi {
		for {
			z = runif(r, za, zb)
			u := r.Float64()
			var bound float64
			switch {
			case za > 0:
				bound = math.Exp((za*za - z*z) / 2)
			case zb < 0:
				bound = math.Exp((zb*zb - z*z) / 2)
			default:
				bound = math.Exp(-z * z / 2)
			}
			if u <= bound {
				break
			}
		}
	} else {
		for {
			z = r.NormFloat64()
			if z > za && z < zb {
				break
			}
		}
	}
	return mu + sigma*z
}

// PDF returns the density at each element of xs, on the log scale if
// logProb is set.
func (d TruncNormalDist) PDF(xs []float64, logProb bool) []float64 {
	p := eval5("tnorm", xs, d.Mu, d.Sigma, d.A, d.B, tnormOK, tnormPDF)
	if logProb {
		logEach(p)
	}
	return p
}

// CDF returns P(X <= x) for each element of xs, or P(X > x) if
// lowerTail is unset; on the log scale if logProb is set.
func (d TruncNormalDist) CDF(xs []float64, lowerTail, logProb bool) []float64 {
	p := eval5("tnorm", xs, d.Mu, d.Sigma, d.A, d.B, tnormOK, tnormCDF)
	return finishProbs(p, lowerTail, logProb)
}

// InvCDF returns the quantile for each probability in ps.
func (d TruncNormalDist) InvCDF(ps []float64, lowerTail, logProb bool) []float64 {
	pp := probInputs(ps, lowerTail, logProb)
	return quant5("tnorm", pp, d.Mu, d.Sigma, d.A, d.B, tnormOK, tnormInvCDF)
}

// Rand draws n variates by rejection sampling. A nil src selects the
// package-level stream.
func (d TruncNormalDist) Rand(n int, src rand.Source) []float64 {
	return rand4("tnorm", n, d.Mu, d.Sigma, d.A, d.B, tnormOK, tnormRand, src)
}
