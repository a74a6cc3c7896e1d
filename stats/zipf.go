// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sync"

	"github.com/aclements/go-probdist/mathx"
)

// ZipfDist is a Zipf distribution over {1, ..., n}, where
// Pr[X = k] is proportional to 1/kˢ.
type ZipfDist struct {
	sampler
	n        int
	s        float64
	harmonic float64 // H(n, s)

	mean     func() float64
	variance func() float64

	// Rejection-inversion constants.
	hIntegralX1, hIntegralN, squeeze float64
}

// NewZipfDist returns a Zipf distribution with n elements and
// exponent s. n and s must be positive.
func NewZipfDist(n int, s float64, src Source) (*ZipfDist, error) {
	if n <= 0 {
		return nil, invalidParam("zipf", "number of elements %d must be positive", n)
	}
	if !(s > 0) || math.IsInf(s, 1) {
		return nil, invalidParam("zipf", "exponent %v must be positive", s)
	}
	d := &ZipfDist{sampler: sampler{src}, n: n, s: s}
	d.harmonic = generalizedHarmonic(n, s)
	d.mean = sync.OnceValue(func() float64 {
		return generalizedHarmonic(n, s-1) / d.harmonic
	})
	d.variance = sync.OnceValue(func() float64 {
		hs1 := generalizedHarmonic(n, s-1)
		hs2 := generalizedHarmonic(n, s-2)
		return hs2/d.harmonic - (hs1*hs1)/(d.harmonic*d.harmonic)
	})
	d.hIntegralX1 = d.hIntegral(1.5) - 1
	d.hIntegralN = d.hIntegral(float64(n) + 0.5)
	d.squeeze = 2 - d.hIntegralInverse(d.hIntegral(2.5)-d.h(2))
	return d, nil
}

func (d *ZipfDist) N() int            { return d.n }
func (d *ZipfDist) Exponent() float64 { return d.s }

// generalizedHarmonic returns Σ_{k=1..n} 1/kᵐ, summing the smallest
// terms first.
func generalizedHarmonic(n int, m float64) float64 {
	var sum float64
	for k := n; k > 0; k-- {
		sum += 1 / math.Pow(float64(k), m)
	}
	return sum
}

func (d *ZipfDist) PMF(x int) float64 {
	if x <= 0 || x > d.n {
		return 0
	}
	return (1 / math.Pow(float64(x), d.s)) / d.harmonic
}

func (d *ZipfDist) LogPMF(x int) float64 {
	if x <= 0 || x > d.n {
		return -inf
	}
	return -math.Log(float64(x))*d.s - math.Log(d.harmonic)
}

func (d *ZipfDist) CDF(x int) float64 {
	if x <= 0 {
		return 0
	} else if x >= d.n {
		return 1
	}
	return generalizedHarmonic(x, d.s) / d.harmonic
}

func (d *ZipfDist) InvCDF(p float64) (int, error) {
	return InvertDiscreteCDF(d, p)
}

// Probability returns Pr[x0 < X <= x1].
func (d *ZipfDist) Probability(x0, x1 int) (float64, error) {
	return DiscreteProbability(d, x0, x1)
}

// Mean returns H(n, s-1)/H(n, s). It is computed on first use.
func (d *ZipfDist) Mean() float64 { return d.mean() }

// Variance returns H(n, s-2)/H(n, s) - Mean()². It is computed on
// first use.
func (d *ZipfDist) Variance() float64 { return d.variance() }

func (d *ZipfDist) Support() IntSupport {
	return IntSupport{1, d.n}
}

// Sample draws a variate using rejection-inversion.
//
// W. Hörmann, G. Derflinger (1996). "Rejection-inversion to generate
// variates from monotone discrete distributions". ACM Transactions on
// Modeling and Computer Simulation 6 (3): 169-184.
func (d *ZipfDist) Sample() (int, error) {
	src, err := d.source()
	if err != nil {
		return 0, err
	}
	for {
		u := d.hIntegralN + src.Float64()*(d.hIntegralX1-d.hIntegralN)
		x := d.hIntegralInverse(u)
		k := int(x + 0.5)
		if k < 1 {
			k = 1
		} else if k > d.n {
			k = d.n
		}
		if float64(k)-x <= d.squeeze || u >= d.hIntegral(float64(k)+0.5)-d.h(float64(k)) {
			return k, nil
		}
	}
}

func (d *ZipfDist) SampleN(n int) ([]int, error) {
	return sampleN(d.Sample, n)
}

// h is the unnormalized mass x^-s, extended to real x.
func (d *ZipfDist) h(x float64) float64 {
	return math.Exp(-d.s * math.Log(x))
}

// hIntegral is the integral of h from 1 to x,
// (x^(1-s) - 1)/(1-s), or log(x) when s is 1.
func (d *ZipfDist) hIntegral(x float64) float64 {
	logX := math.Log(x)
	return mathx.Expm1OverX((1-d.s)*logX) * logX
}

// hIntegralInverse is the inverse of hIntegral.
func (d *ZipfDist) hIntegralInverse(x float64) float64 {
	t := x * (1 - d.s)
	if t < -1 {
		// Limit x to the range where hIntegral is defined.
		t = -1
	}
	return math.Exp(mathx.Log1pOverX(t) * x)
}
