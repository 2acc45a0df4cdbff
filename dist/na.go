// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "math"

// naBits is a quiet NaN carrying the payload 1954, following the
// convention R uses for NA_real_.
const naBits = 0x7FF80000000007A2

// NA is the missing-value marker. It is a NaN with a distinguished
// payload, so it stores in a []float64 like any other value, but IsNA
// tells it apart from an ordinary NaN. An NA evaluation point or
// parameter makes the corresponding result element NA.
var NA = math.Float64frombits(naBits)

// IsNA reports whether x is the missing-value marker NA.
//
// Note that arithmetic on NA is not guaranteed to preserve its
// payload, so IsNA is only meaningful for values that have been
// stored, not computed with.
func IsNA(x float64) bool {
	return math.Float64bits(x) == naBits
}

// isMissing reports whether x is missing. NA and ordinary NaN inputs
// are both treated as missing and propagate to the output as NA.
func isMissing(x float64) bool {
	return math.IsNaN(x)
}
