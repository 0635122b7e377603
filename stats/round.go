// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"strconv"
)

// Round returns x rounded to the given number of decimal places.
//
// Ties are broken to even on the exact binary value of x, not on its
// shortest decimal form. For example, Round(2.675, 2) is 2.67 because
// the float64 nearest 2.675 is slightly below it, and Round(4.25, 1)
// is 4.2.
//
// NaN and ±Inf are returned unchanged.
func Round(x float64, places int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	if places < 0 {
		places = 0
	}
	// FormatFloat rounds the exact value correctly; the parse back
	// cannot fail on its output.
	r, _ := strconv.ParseFloat(strconv.FormatFloat(x, 'f', places, 64), 64)
	return r
}
