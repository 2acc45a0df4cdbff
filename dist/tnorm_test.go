// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestTruncNormalDist(t *testing.T) {
	d := TruncNormalDist{
		Mu:    []float64{0},
		Sigma: []float64{1},
		A:     []float64{-1},
		B:     []float64{2},
	}
	testFunc(t, "tnorm.PDF", func(x float64) float64 { return d.PDF([]float64{x}, false)[0] },
		map[float64]float64{
			-2:   0,
			-1:   0,
			-0.5: 0.43008508,
			0:    0.48735024,
			1:    0.29559286,
			1.5:  0.15821946,
			2:    0,
			3:    0,
		})
	testFunc(t, "tnorm.CDF", func(x float64) float64 { return d.CDF([]float64{x}, true, false)[0] },
		map[float64]float64{
			-2:   0,
			-0.5: 0.18309708,
			0:    0.41698875,
			1:    0.83397750,
			1.5:  0.94617962,
			2:    1,
			3:    1,
		})
	testFunc(t, "tnorm.InvCDF", func(p float64) float64 { return d.InvCDF([]float64{p}, true, false)[0] },
		map[float64]float64{
			0:   -1,
			0.1: -0.70464782,
			0.5: 0.17116392,
			0.9: 1.25571536,
			1:   2,
		})
}

func TestTruncNormalHalfLine(t *testing.T) {
	// One-sided truncation with an infinite upper bound.
	d := TruncNormalDist{
		Mu:    []float64{1},
		Sigma: []float64{2},
		A:     []float64{0},
		B:     []float64{inf},
	}
	testFunc(t, "tnorm.PDF", func(x float64) float64 { return d.PDF([]float64{x}, false)[0] },
		map[float64]float64{
			0.5: 0.27960167,
			1:   0.28847718,
			3:   0.17497025,
		})
	testFunc(t, "tnorm.CDF", func(x float64) float64 { return d.CDF([]float64{x}, true, false)[0] },
		map[float64]float64{
			0.5: 0.13414486,
			1:   0.27689495,
			3:   0.77055117,
		})
	testFunc(t, "tnorm.InvCDF", func(p float64) float64 { return d.InvCDF([]float64{p}, true, false)[0] },
		map[float64]float64{
			0.5: 0.39687118,
		})
}

func TestTruncNormalDomain(t *testing.T) {
	d := TruncNormalDist{
		Mu:    []float64{0, 0},
		Sigma: []float64{-1, 1},
		A:     []float64{-1, 3},
		B:     []float64{1, 2},
	}
	for i, got := range d.PDF([]float64{0}, false) {
		if !math.IsNaN(got) || IsNA(got) {
			t.Errorf("PDF[%d] = %v, want NaN", i, got)
		}
	}
}

// Each rejection regime must only produce variates inside the
// truncation interval.
func TestTruncNormalRand(t *testing.T) {
	cases := []struct {
		name string
		a, b float64
	}{
		{"straddling", -1, 1}, // narrow interval containing 0
		{"positive", 2, 3},    // narrow interval right of 0
		{"negative", -3, -2},  // narrow interval left of 0
		{"wide", -2, 2},       // wider than sqrt(2π), normal rejection
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := TruncNormalDist{
				Mu:    []float64{0},
				Sigma: []float64{1},
				A:     []float64{c.a},
				B:     []float64{c.b},
			}
			for i, x := range d.Rand(200, rand.NewPCG(5, 5)) {
				if x <= c.a || x >= c.b {
					t.Errorf("variate %d = %v, want in (%v, %v)", i, x, c.a, c.b)
				}
			}
		})
	}
}
