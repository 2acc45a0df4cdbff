// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func aeq(expect, got float64) bool {
	if math.IsInf(expect, 0) || math.IsInf(got, 0) {
		return expect == got
	}
	return math.Abs(expect-got) < 0.00001
}

// eqFloats compares slices of float64 treating NA as equal only to NA
// and any other NaN as equal to any other NaN.
var eqFloats = cmp.Comparer(func(x, y float64) bool {
	switch {
	case IsNA(x) || IsNA(y):
		return IsNA(x) && IsNA(y)
	case math.IsNaN(x) || math.IsNaN(y):
		return math.IsNaN(x) && math.IsNaN(y)
	default:
		return aeq(x, y)
	}
})

// testFunc checks a scalar projection of a vectorized operation
// against a table of expected values.
func testFunc(t *testing.T, name string, f func(float64) float64, table map[float64]float64) {
	t.Helper()
	for x, want := range table {
		got := f(x)
		if !aeq(want, got) {
			t.Errorf("%s(%v) = %v, want %v", name, x, got, want)
		}
	}
}
