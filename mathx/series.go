// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// Log1pOverX returns log(1+x)/x, which tends to 1 as x → 0.
//
// Near 0 this uses the first terms of the Taylor series
// 1 - x/2 + x²/3 - x³/4 instead of dividing two vanishing
// quantities.
func Log1pOverX(x float64) float64 {
	if math.Abs(x) > 1e-8 {
		return math.Log1p(x) / x
	}
	return 1 - x*(1.0/2-x*(1.0/3-x*(1.0/4)))
}

// Expm1OverX returns (exp(x)-1)/x, which tends to 1 as x → 0.
//
// Near 0 this uses the first terms of the Taylor series
// 1 + x/2 + x²/6 + x³/24.
func Expm1OverX(x float64) float64 {
	if math.Abs(x) > 1e-8 {
		return math.Expm1(x) / x
	}
	return 1 + x*(1.0/2)*(1+x*(1.0/3)*(1+x*(1.0/4)))
}
