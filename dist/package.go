// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// dist provides vectorized density, cumulative distribution,
// quantile, and random generation functions for a catalog of
// closed-form statistical distributions.
//
// Every operation accepts vector-valued evaluation points and
// parameters that need not share a common length: shorter inputs are
// recycled cyclically against the longest one, and the result has the
// longest input's length. Missing inputs (see NA) propagate to the
// output; parameters outside a distribution's domain produce NaN for
// the affected elements and a single diagnostic per call (see
// SetLogger).
package dist // import "github.com/aclements/go-vecdist/dist"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()

// isInt reports whether x is an exact integer. The discrete
// distributions assign zero mass to fractional evaluation points.
func isInt(x float64) bool {
	return x == math.Floor(x)
}
