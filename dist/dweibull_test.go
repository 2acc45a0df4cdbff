// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestDiscreteWeibullDist(t *testing.T) {
	// Beta = 1 reduces to a geometric distribution.
	d := DiscreteWeibullDist{Q: []float64{0.5}, Beta: []float64{1}}
	testFunc(t, "dweibull.PMF", func(x float64) float64 { return d.PMF([]float64{x}, false)[0] },
		map[float64]float64{
			-1:  0,
			0:   0.5,
			1:   0.25,
			1.5: 0,
			2:   0.125,
			3:   0.0625,
		})
	testFunc(t, "dweibull.CDF", func(x float64) float64 { return d.CDF([]float64{x}, true, false)[0] },
		map[float64]float64{
			-1:  0,
			0:   0.5,
			0.5: 0.64644661,
			1:   0.75,
			2:   0.875,
			2.3: 0.89846845,
		})

	d = DiscreteWeibullDist{Q: []float64{0.7}, Beta: []float64{2}}
	testFunc(t, "dweibull.PMF", func(x float64) float64 { return d.PMF([]float64{x}, false)[0] },
		map[float64]float64{
			0: 0.3,
			1: 0.4599,
			2: 0.19974639,
		})
	testFunc(t, "dweibull.CDF", func(x float64) float64 { return d.CDF([]float64{x}, true, false)[0] },
		map[float64]float64{
			0:   0.3,
			1:   0.7599,
			1.5: 0.89238749,
			2:   0.95964639,
		})
	testFunc(t, "dweibull.InvCDF", func(p float64) float64 { return d.InvCDF([]float64{p}, true, false)[0] },
		map[float64]float64{
			0:   0,
			0.5: 1,
			0.9: 2,
			1:   inf,
		})
}

func TestDiscreteWeibullDomain(t *testing.T) {
	d := DiscreteWeibullDist{Q: []float64{1.2}, Beta: []float64{1}}
	if got := d.PMF([]float64{1}, false)[0]; !math.IsNaN(got) || IsNA(got) {
		t.Errorf("PMF with q > 1 = %v, want NaN", got)
	}
}

func TestDiscreteWeibullRand(t *testing.T) {
	d := DiscreteWeibullDist{Q: []float64{0.5}, Beta: []float64{1}}
	for i, x := range d.Rand(100, rand.NewPCG(7, 7)) {
		if x < 0 || x != math.Floor(x) {
			t.Errorf("variate %d = %v, want non-negative integer", i, x)
		}
	}
}
