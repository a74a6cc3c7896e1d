// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathx implements special functions and numeric helpers
// shared by the probability distributions in package stats.
package mathx // import "github.com/aclements/go-probdist/mathx"

import "math"

var nan = math.NaN()

// lgamma returns the natural logarithm of |Γ(x)|.
func lgamma(x float64) float64 {
	y, _ := math.Lgamma(x)
	return y
}
