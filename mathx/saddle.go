// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// The saddle-point expansion of binomial-type probabilities follows
// Loader, C. (2000). "Fast and Accurate Computation of Binomial
// Probabilities". It evaluates log C(n,x)pˣqⁿ⁻ˣ as a sum of small
// correction terms, so nothing large is ever subtracted from
// anything else that is large.

// halfLog2Pi is 0.5 * log(2π).
const halfLog2Pi = 0.91893853320467274178032973640562

// exactStirlingErrors[i] is StirlingError(i/2) for i in [0, 30].
var exactStirlingErrors = [...]float64{
	0.0,                           // 0.0 (unused)
	0.1534264097200273452913848,   // 0.5
	0.0810614667953272582196702,   // 1.0
	0.0548141210519176538961390,   // 1.5
	0.0413406959554092940938221,   // 2.0
	0.03316287351993628748511048,  // 2.5
	0.02767792568499833914878929,  // 3.0
	0.02374616365629749597132920,  // 3.5
	0.02079067210376509311152277,  // 4.0
	0.01848845053267318523077934,  // 4.5
	0.01664469118982119216319487,  // 5.0
	0.01513497322191737887351255,  // 5.5
	0.01387612882307074799874573,  // 6.0
	0.01281046524292022692424986,  // 6.5
	0.01189670994589177009505572,  // 7.0
	0.01110455975820691732662991,  // 7.5
	0.010411265261972096497478567, // 8.0
	0.009799416126158803298389475, // 8.5
	0.009255462182712732917728637, // 9.0
	0.008768700134139385462952823, // 9.5
	0.008330563433362871256469318, // 10.0
	0.007934114564314020547248100, // 10.5
	0.007573675487951840794972024, // 11.0
	0.007244554301320383179543912, // 11.5
	0.006942840107209529865664152, // 12.0
	0.006665247032707682442354394, // 12.5
	0.006408994188004207068439631, // 13.0
	0.006171712263039457647532867, // 13.5
	0.005951370112758847735624416, // 14.0
	0.005746216513010115682023589, // 14.5
	0.005554733551962801371038690, // 15.0
}

// StirlingError returns the error of Stirling's approximation to
// log(z!):
//
//	δ(z) = log Γ(z+1) - (z + ½) log z + z - ½ log 2π
//
// For z < 15 at multiples of ½ this is an exact table lookup. Other
// z < 15 are computed directly and z >= 15 uses the asymptotic
// series in 1/z².
func StirlingError(z float64) float64 {
	if z < 15 {
		z2 := 2 * z
		if math.Floor(z2) == z2 && z2 >= 0 {
			return exactStirlingErrors[int(z2)]
		}
		return lgamma(z+1) - (z+0.5)*math.Log(z) + z - halfLog2Pi
	}
	const (
		s0 = 1.0 / 12
		s1 = 1.0 / 360
		s2 = 1.0 / 1260
		s3 = 1.0 / 1680
		s4 = 1.0 / 1188
	)
	zz := z * z
	return (s0 - (s1-(s2-(s3-s4/zz)/zz)/zz)/zz) / z
}

// DeviancePart returns the deviance term
//
//	D₀(x, μ) = x log(x/μ) + μ - x
//
// When x is within 10% of μ the direct formula cancels
// catastrophically, so this sums the power series
//
//	D₀ = (x-μ)²/(x+μ) + 2x Σⱼ v²ʲ⁺¹/(2j+1),  v = (x-μ)/(x+μ)
//
// until it stops changing.
func DeviancePart(x, mu float64) float64 {
	if math.Abs(x-mu) >= 0.1*(x+mu) {
		return x*math.Log(x/mu) + mu - x
	}
	d := x - mu
	v := d / (x + mu)
	s1 := v * d
	s := nan
	ej := 2 * x * v
	v *= v
	for j := 1; s1 != s; j++ {
		s = s1
		ej *= v
		s1 = s + ej/float64(2*j+1)
	}
	return s1
}

// LogBinomialProbability returns log(C(n,x) pˣ qⁿ⁻ˣ), where q is
// 1-p passed separately so callers can supply it without rounding
// error.
//
// The result is -Inf for x outside [0, n], and 0 for n=0, where the
// only outcome is x=0.
func LogBinomialProbability(x, n int, p, q float64) float64 {
	if x < 0 || x > n {
		return math.Inf(-1)
	}
	if n == 0 {
		return 0
	}
	fn := float64(n)
	switch x {
	case 0:
		if p < 0.1 {
			return -DeviancePart(fn, fn*q) - fn*p
		}
		return fn * math.Log(q)
	case n:
		if q < 0.1 {
			return -DeviancePart(fn, fn*p) - fn*q
		}
		return fn * math.Log(p)
	}
	fx := float64(x)
	ret := StirlingError(fn) - StirlingError(fx) - StirlingError(fn-fx) -
		DeviancePart(fx, fn*p) - DeviancePart(fn-fx, fn*q)
	f := (2 * math.Pi * fx * (fn - fx)) / fn
	return -0.5*math.Log(f) + ret
}
