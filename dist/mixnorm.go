// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math/rand/v2"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// A NormalMixtureDist is a finite mixture of k normal components.
// Mu, Sigma, and Alpha are matrices (row-major slices of rows) with
// one column per component; rows are recycled against the evaluation
// points the same way parameter vectors are. Mixing weights Alpha
// must be non-negative and are normalized within each row, so a row's
// weights need not sum to 1.
//
//	f(x) = Σⱼ (αⱼ/Σα)·φ(x; μⱼ, σⱼ)
//	F(x) = Σⱼ (αⱼ/Σα)·Φ(x; μⱼ, σⱼ)
//
// The mixture CDF has no closed-form inverse, so there is no InvCDF;
// sampling picks a component by its normalized weight and draws from
// that component's normal.
type NormalMixtureDist struct {
	Mu, Sigma, Alpha [][]float64
}

// errMixtureShape is returned when the parameter matrices disagree on
// the number of mixture components. This is the only structural
// error in the package: it aborts the whole call before any element
// is evaluated.
var errMixtureShape = errors.New("sizes of 'mu', 'sigma', and 'alpha' do not match")

// components returns the number of mixture components, verifying that
// every row of every parameter matrix agrees on it. A matrix with no
// rows is degenerate and yields k = 0 with no error; every operation
// then returns an empty result.
func (d NormalMixtureDist) components() (int, error) {
	if len(d.Mu) == 0 || len(d.Sigma) == 0 || len(d.Alpha) == 0 {
		return 0, nil
	}
	k := len(d.Alpha[0])
	if k == 0 {
		return 0, errors.New("mixture needs at least one component")
	}
	for _, m := range [][][]float64{d.Mu, d.Sigma, d.Alpha} {
		for _, row := range m {
			if len(row) != k {
				return 0, errMixtureShape
			}
		}
	}
	return k, nil
}

func maxRows(ns ...int) int {
	n := 0
	for _, l := range ns {
		if l == 0 {
			return 0
		}
		if l > n {
			n = l
		}
	}
	return n
}

// mixRow validates one broadcast row. A missing entry anywhere in
// the row marks the whole row missing; a negative weight or
// non-positive sigma marks it invalid. tot is the row's weight sum,
// used for normalization.
func mixRow(mu, sigma, alpha []float64) (miss, wrong bool, tot float64) {
	for j := range alpha {
		if isMissing(alpha[j]) || isMissing(mu[j]) || isMissing(sigma[j]) {
			return true, false, 0
		}
		if alpha[j] < 0 || sigma[j] <= 0 {
			return false, true, 0
		}
		tot += alpha[j]
	}
	return false, false, tot
}

// PDF returns the mixture density at each element of xs, on the log
// scale if logProb is set. It fails if the parameter matrices
// disagree on the component count.
func (d NormalMixtureDist) PDF(xs []float64, logProb bool) ([]float64, error) {
	k, err := d.components()
	if err != nil {
		return nil, err
	}
	if k == 0 || len(xs) == 0 {
		return nil, nil
	}
	out := make([]float64, maxRows(len(xs), len(d.Mu), len(d.Sigma), len(d.Alpha)))
	bad := false
	for i := range out {
		x := at(xs, i)
		mu, sigma, alpha := d.Mu[i%len(d.Mu)], d.Sigma[i%len(d.Sigma)], d.Alpha[i%len(d.Alpha)]
		miss, wrong, tot := mixRow(mu, sigma, alpha)
		switch {
		case miss || isMissing(x):
			out[i] = NA
		case wrong:
			out[i] = nan
			bad = true
		default:
			var p float64
			for j := 0; j < k; j++ {
				p += alpha[j] / tot * distuv.Normal{Mu: mu[j], Sigma: sigma[j]}.Prob(x)
			}
			out[i] = p
		}
	}
	if bad {
		warnNaNs("mixnorm")
	}
	if logProb {
		logEach(out)
	}
	return out, nil
}

// CDF returns the mixture cumulative probability at each element of
// xs, or its complement if lowerTail is unset; on the log scale if
// logProb is set. It fails if the parameter matrices disagree on the
// component count.
func (d NormalMixtureDist) CDF(xs []float64, lowerTail, logProb bool) ([]float64, error) {
	k, err := d.components()
	if err != nil {
		return nil, err
	}
	if k == 0 || len(xs) == 0 {
		return nil, nil
	}
	out := make([]float64, maxRows(len(xs), len(d.Mu), len(d.Sigma), len(d.Alpha)))
	bad := false
	for i := range out {
		x := at(xs, i)
		mu, sigma, alpha := d.Mu[i%len(d.Mu)], d.Sigma[i%len(d.Sigma)], d.Alpha[i%len(d.Alpha)]
		miss, wrong, tot := mixRow(mu, sigma, alpha)
		switch {
		case miss || isMissing(x):
			out[i] = NA
		case wrong:
			out[i] = nan
			bad = true
		default:
			var p float64
			for j := 0; j < k; j++ {
				p += alpha[j] / tot * distuv.Normal{Mu: mu[j], Sigma: sigma[j]}.CDF(x)
			}
			out[i] = p
		}
	}
	if bad {
		warnNaNs("mixnorm")
	}
	return finishProbs(out, lowerTail, logProb), nil
}

// Rand draws n variates. For each draw it walks the components from
// last to first, subtracting normalized weights from a running total
// until the total drops below a uniform draw, then samples that
// component's normal. A nil src selects the package-level stream.
func (d NormalMixtureDist) Rand(n int, src rand.Source) ([]float64, error) {
	k, err := d.components()
	if err != nil {
		return nil, err
	}
	if k == 0 {
		return nil, nil
	}
	r := newRand(src)
	out := make([]float64, n)
	bad := false
	for i := range out {
		mu, sigma, alpha := d.Mu[i%len(d.Mu)], d.Sigma[i%len(d.Sigma)], d.Alpha[i%len(d.Alpha)]
		miss, wrong, tot := mixRow(mu, sigma, alpha)
		switch {
		case miss:
			out[i] = NA
		case wrong:
			out[i] = nan
			bad = true
		default:
			u := r.Float64()
			run := 1.0
			jj := 0
			for j := k - 1; j >= 0; j-- {
				run -= alpha[j] / tot
				if u > run {
					jj = j
					break
				}
			}
			out[i] = mu[jj] + sigma[jj]*r.NormFloat64()
		}
	}
	if bad {
		warnNaNs("mixnorm")
	}
	return out, nil
}
