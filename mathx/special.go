// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// Lgamma returns the natural logarithm of |Γ(x)|.
func Lgamma(x float64) float64 {
	return lgamma(x)
}

// BetaInc returns the value of the regularized incomplete beta
// function Iₓ(a, b).
//
// This is not to be confused with the "incomplete beta function",
// which can be computed as BetaInc(x, a, b)*Beta(a, b).
//
// If x < 0 or x > 1, returns NaN.
func BetaInc(x, a, b float64) float64 {
	if math.IsNaN(x) || x < 0 || x > 1 || !(a > 0) || !(b > 0) {
		return nan
	}
	switch x {
	case 0:
		return 0
	case 1:
		return 1
	}
	return mathext.RegIncBeta(a, b, x)
}

// Lbeta returns the natural logarithm of the complete beta function
// B(a, b) = Γ(a)Γ(b)/Γ(a+b).
func Lbeta(a, b float64) float64 {
	return mathext.Lbeta(a, b)
}

// GammaInc returns the value of the regularized lower incomplete
// gamma function:
//
//	P(a, x) = 1 / Γ(a) * ∫₀ˣ exp(-t) t**(a-1) dt
func GammaInc(a, x float64) float64 {
	if !(a > 0) || math.IsNaN(x) || x < 0 {
		return nan
	}
	if x == 0 {
		return 0
	}
	if math.IsInf(x, 1) {
		return 1
	}
	return mathext.GammaIncReg(a, x)
}

// GammaIncComp returns the complement of the incomplete gamma
// function 1 - GammaInc(a, x). This is more numerically stable for
// values near 0.
func GammaIncComp(a, x float64) float64 {
	if !(a > 0) || math.IsNaN(x) || x < 0 {
		return nan
	}
	if x == 0 {
		return 1
	}
	if math.IsInf(x, 1) {
		return 0
	}
	return mathext.GammaIncRegComp(a, x)
}

// factorials holds n! for n in [0, 20], all of which are exactly
// representable as float64.
var factorials = func() [21]float64 {
	var f [21]float64
	f[0] = 1
	for i := 1; i < len(f); i++ {
		f[i] = f[i-1] * float64(i)
	}
	return f
}()

// LogFactorial returns log(n!). n must be >= 0.
func LogFactorial(n int) float64 {
	if n < 0 {
		return nan
	}
	if n < len(factorials) {
		return math.Log(factorials[n])
	}
	return lgamma(float64(n) + 1)
}

// Lchoose returns math.Log(Choose(n, k)).
func Lchoose(n, k int) float64 {
	if k < 0 || k > n {
		return math.Inf(-1)
	}
	return LogFactorial(n) - LogFactorial(k) - LogFactorial(n-k)
}

// Choose returns the binomial coefficient of n and k.
func Choose(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if n < len(factorials) {
		return factorials[n] / (factorials[k] * factorials[n-k])
	}
	return math.Round(math.Exp(Lchoose(n, k)))
}
