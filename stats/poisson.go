// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/aclements/go-probdist/mathx"
)

// PoissonDist is a Poisson distribution with the given mean.
type PoissonDist struct {
	sampler
	mean   float64
	normal *NormalDist
}

// poissonPivot is the mean at and above which sampling switches from
// simulating the Poisson process to Devroye's rejection method.
const poissonPivot = 40

// poissonEventCeiling bounds the number of simulated events per
// sample, as a multiple of the mean, in the small-mean sampler.
const poissonEventCeiling = 1000

// NewPoissonDist returns a Poisson distribution. mean must be
// positive and finite.
func NewPoissonDist(mean float64, src Source) (*PoissonDist, error) {
	if !(mean > 0) || math.IsInf(mean, 1) {
		return nil, invalidParam("poisson", "mean %v must be positive", mean)
	}
	normal, err := NewNormalDist(mean, math.Sqrt(mean), src)
	if err != nil {
		return nil, err
	}
	return &PoissonDist{sampler{src}, mean, normal}, nil
}

func (d *PoissonDist) PMF(x int) float64 {
	return math.Exp(d.LogPMF(x))
}

func (d *PoissonDist) LogPMF(x int) float64 {
	switch {
	case x < 0 || x == math.MaxInt:
		return -inf
	case x == 0:
		return -d.mean
	}
	fx := float64(x)
	return -mathx.StirlingError(fx) - mathx.DeviancePart(fx, d.mean) -
		0.5*math.Log(2*math.Pi) - 0.5*math.Log(fx)
}

func (d *PoissonDist) CDF(x int) float64 {
	switch {
	case x < 0:
		return 0
	case x == math.MaxInt:
		return 1
	}
	return mathx.GammaIncComp(float64(x)+1, d.mean)
}

// NormalApproxCDF approximates CDF(x) by a normal distribution with
// the same mean and variance, using a continuity correction of 1/2.
func (d *PoissonDist) NormalApproxCDF(x int) float64 {
	return d.normal.CDF(float64(x) + 0.5)
}

func (d *PoissonDist) InvCDF(p float64) (int, error) {
	return InvertDiscreteCDF(d, p)
}

// Probability returns Pr[x0 < X <= x1].
func (d *PoissonDist) Probability(x0, x1 int) (float64, error) {
	return DiscreteProbability(d, x0, x1)
}

func (d *PoissonDist) Mean() float64     { return d.mean }
func (d *PoissonDist) Variance() float64 { return d.mean }

func (d *PoissonDist) Support() IntSupport {
	return IntSupport{0, math.MaxInt}
}

// Sample draws a variate. For means below 40 it counts arrivals of a
// simulated Poisson process; otherwise it uses Devroye's rejection
// method.
//
// L. Devroye (1986). Non-Uniform Random Variate Generation, section
// X.3. Springer.
func (d *PoissonDist) Sample() (int, error) {
	src, err := d.source()
	if err != nil {
		return 0, err
	}
	return poissonSample(src, d.mean), nil
}

func (d *PoissonDist) SampleN(n int) ([]int, error) {
	return sampleN(d.Sample, n)
}

func poissonSample(src Source, mean float64) int {
	if mean < poissonPivot {
		return poissonProduct(src, mean)
	}

	lambda := math.Floor(mean)
	frac := mean - lambda
	logLambda := math.Log(lambda)
	logLambdaFactorial := mathx.LogFactorial(int(lambda))
	y2 := 0
	if frac >= math.SmallestNonzeroFloat64 {
		y2 = poissonSample(src, frac)
	}
	delta := math.Sqrt(lambda * math.Log(32*lambda/math.Pi+1))
	halfDelta := delta / 2
	twolpd := 2*lambda + delta
	a1 := math.Sqrt(math.Pi*twolpd) * math.Exp(1/(8*lambda))
	a2 := (twolpd / delta) * math.Exp(-delta*(1+delta)/twolpd)
	aSum := a1 + a2 + 1
	p1 := a1 / aSum
	p2 := a2 / aSum
	c1 := 1 / (8 * lambda)

	var x, y, v float64
	for {
		u := src.Float64()
		if u <= p1 {
			n := src.NormFloat64()
			x = n*math.Sqrt(lambda+halfDelta) - 0.5
			if x > delta || x < -lambda {
				continue
			}
			if x < 0 {
				y = math.Floor(x)
			} else {
				y = math.Ceil(x)
			}
			v = -src.ExpFloat64() - n*n/2 + c1
		} else if u > p1+p2 {
			y = lambda
			return y2 + int(y)
		} else {
			x = delta + (twolpd/delta)*src.ExpFloat64()
			y = math.Ceil(x)
			v = -src.ExpFloat64() - delta*(x+1)/twolpd
		}

		a := 0.0
		if x < 0 {
			a = 1
		}
		t := y * (y + 1) / (2 * lambda)
		if v < -t && a == 0 {
			break
		}
		qr := t * ((2*y+1)/(6*lambda) - 1)
		qa := qr - (t*t)/(3*(lambda+a*(y+1)))
		if v < qa {
			break
		}
		if v > qr {
			continue
		}
		if v < y*logLambda-mathx.LogFactorial(int(y+lambda))+logLambdaFactorial {
			break
		}
	}
	return y2 + int(lambda+y)
}

// poissonProduct multiplies uniform deviates until the product falls
// below exp(-mean) and returns the number of factors that kept it
// above. The count is capped at poissonEventCeiling*mean.
func poissonProduct(src Source, mean float64) int {
	p := math.Exp(-mean)
	n := 0
	r := 1.0
	limit := poissonEventCeiling * mean
	for float64(n) < limit {
		r *= src.Float64()
		if r < p {
			return n
		}
		n++
	}
	log.Warningf("poisson sampler reached event ceiling %v for mean %v", limit, mean)
	return n
}
