// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// NormalDist is a normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma.
type NormalDist struct {
	sampler
	mu, sigma float64
}

// StdNormal is the standard normal distribution. It has no Source.
var StdNormal = &NormalDist{mu: 0, sigma: 1}

// NewNormalDist returns a normal distribution with mean mu and
// standard deviation sigma, which must be positive. src may be nil if
// the distribution will not be sampled.
func NewNormalDist(mu, sigma float64, src Source) (*NormalDist, error) {
	if !isFinite(mu) {
		return nil, invalidParam("normal", "mean %v must be finite", mu)
	}
	if !(sigma > 0) || math.IsInf(sigma, 1) {
		return nil, invalidParam("normal", "standard deviation %v must be positive and finite", sigma)
	}
	return &NormalDist{sampler{src}, mu, sigma}, nil
}

// Mu returns the mean of d.
func (d *NormalDist) Mu() float64 { return d.mu }

// Sigma returns the standard deviation of d.
func (d *NormalDist) Sigma() float64 { return d.sigma }

const invSqrt2Pi = 0.39894228040143267793994605993438186847585863116493465766592583

func (d *NormalDist) PDF(x float64) float64 {
	z := (x - d.mu) / d.sigma
	return math.Exp(-z*z/2) * invSqrt2Pi / d.sigma
}

func (d *NormalDist) LogPDF(x float64) float64 {
	z := (x - d.mu) / d.sigma
	return -z*z/2 + math.Log(invSqrt2Pi/d.sigma)
}

func (d *NormalDist) CDF(x float64) float64 {
	return math.Erfc(-(x-d.mu)/(d.sigma*math.Sqrt2)) / 2
}

// InvCDF returns the p-quantile of d in closed form. It is -Inf at
// p=0 and +Inf at p=1.
func (d *NormalDist) InvCDF(p float64) (float64, error) {
	if err := checkProb(p); err != nil {
		return nan, err
	}
	return d.mu - d.sigma*math.Sqrt2*math.Erfcinv(2*p), nil
}

// Probability returns Pr[x0 < X <= x1].
func (d *NormalDist) Probability(x0, x1 float64) (float64, error) {
	return Probability(d, x0, x1)
}

func (d *NormalDist) Mean() float64 { return d.mu }

func (d *NormalDist) Variance() float64 { return d.sigma * d.sigma }

func (d *NormalDist) Support() Support {
	return Support{Lo: -inf, Hi: inf, Connected: true}
}

func (d *NormalDist) Sample() (float64, error) {
	src, err := d.source()
	if err != nil {
		return nan, err
	}
	return d.mu + d.sigma*src.NormFloat64(), nil
}

func (d *NormalDist) SampleN(n int) ([]float64, error) {
	return sampleN(d.Sample, n)
}
