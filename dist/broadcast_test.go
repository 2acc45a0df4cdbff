// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecycleLen(t *testing.T) {
	assert.Equal(t, 5, recycleLen([]float64{1, 2, 3, 4, 5}, []float64{1, 2}, []float64{1}))
	assert.Equal(t, 1, recycleLen([]float64{1}, []float64{1}))
	assert.Equal(t, 0, recycleLen([]float64{1, 2}, nil))
}

func TestAt(t *testing.T) {
	s := []float64{10, 20, 30}
	for i, want := range []float64{10, 20, 30, 10, 20, 30, 10} {
		assert.Equal(t, want, at(s, i), "at(s, %d)", i)
	}
}

// Recycling must behave exactly as if the shorter vectors had been
// repeated out to the longest length, with no multiple-of requirement
// between lengths.
func TestRecyclingLaw(t *testing.T) {
	d := LomaxDist{
		Lambda: []float64{1, 2},
		Kappa:  []float64{2, 3, 2, 3, 2},
	}
	got := d.PDF([]float64{1}, false)
	require.Len(t, got, 5)

	want := make([]float64, 5)
	for i := 0; i < 5; i++ {
		di := LomaxDist{
			Lambda: []float64{d.Lambda[i%2]},
			Kappa:  []float64{d.Kappa[i%5]},
		}
		want[i] = di.PDF([]float64{1}, false)[0]
	}
	if diff := cmp.Diff(want, got, eqFloats); diff != "" {
		t.Errorf("recycled result mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptyInputs(t *testing.T) {
	d := GumbelDist{Mu: []float64{0}, Sigma: nil}
	assert.Empty(t, d.PDF([]float64{1, 2}, false))
	assert.Empty(t, d.CDF([]float64{1}, true, false))
	assert.Empty(t, d.InvCDF([]float64{0.5}, true, false))
	assert.Empty(t, d.Rand(3, nil))

	ok := GumbelDist{Mu: []float64{0}, Sigma: []float64{1}}
	assert.Empty(t, ok.PDF(nil, false))
}

func TestProbInputsDoesNotMutate(t *testing.T) {
	ps := []float64{0.25, 0.5, 0.75}
	orig := append([]float64(nil), ps...)

	pp := probInputs(ps, false, false)
	assert.Equal(t, orig, ps)
	assert.Equal(t, []float64{0.75, 0.5, 0.25}, pp)

	d := GumbelDist{Mu: []float64{0}, Sigma: []float64{1}}
	d.InvCDF(ps, false, false)
	assert.Equal(t, orig, ps)
}

func TestFinishProbs(t *testing.T) {
	p := []float64{0, 0.25, 1, NA, nan}
	got := finishProbs(p, false, false)
	if diff := cmp.Diff([]float64{1, 0.75, 0, NA, nan}, got, eqFloats); diff != "" {
		t.Errorf("complement mismatch (-want +got):\n%s", diff)
	}
}
