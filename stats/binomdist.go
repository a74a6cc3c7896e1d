// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/aclements/go-probdist/mathx"
)

// BinomialDist is a binomial distribution.
type BinomialDist struct {
	sampler

	// n is the number of independent Bernoulli trials. n >= 0.
	//
	// If n=1, this is equivalent to the Bernoulli distribution.
	n int

	// p is the probability of success in each trial. 0 <= p <= 1.
	p float64
}

// NewBinomialDist returns the distribution of the number of successes
// in n independent trials that each succeed with probability p.
func NewBinomialDist(n int, p float64, src Source) (*BinomialDist, error) {
	if n < 0 {
		return nil, invalidParam("binomial", "trials %d must be non-negative", n)
	}
	if !(p >= 0 && p <= 1) {
		return nil, invalidParam("binomial", "probability %v not in [0, 1]", p)
	}
	return &BinomialDist{sampler{src}, n, p}, nil
}

func (d *BinomialDist) N() int     { return d.n }
func (d *BinomialDist) P() float64 { return d.p }

// PMF is the probability of getting exactly k successes in d.N()
// independent Bernoulli trials with probability d.P().
func (d *BinomialDist) PMF(k int) float64 {
	return math.Exp(d.LogPMF(k))
}

// LogPMF returns log(PMF(k)) using the saddle-point expansion, which
// stays accurate for large N.
func (d *BinomialDist) LogPMF(k int) float64 {
	if k < 0 || k > d.n {
		return -inf
	}
	if d.n == 0 {
		return 0
	}
	return mathx.LogBinomialProbability(k, d.n, d.p, 1-d.p)
}

// CDF is the probability of getting k or fewer successes in d.N()
// independent Bernoulli trials with probability d.P().
func (d *BinomialDist) CDF(k int) float64 {
	if k < 0 {
		return 0
	} else if k >= d.n {
		return 1
	}
	return mathx.BetaInc(1-d.p, float64(d.n-k), float64(k)+1)
}

func (d *BinomialDist) InvCDF(p float64) (int, error) {
	return InvertDiscreteCDF(d, p)
}

// Probability returns Pr[x0 < X <= x1].
func (d *BinomialDist) Probability(x0, x1 int) (float64, error) {
	return DiscreteProbability(d, x0, x1)
}

func (d *BinomialDist) Support() IntSupport {
	return IntSupport{0, d.n}
}

func (d *BinomialDist) Mean() float64 {
	return float64(d.n) * d.p
}

func (d *BinomialDist) Variance() float64 {
	return float64(d.n) * d.p * (1 - d.p)
}

// Sample draws a variate by inverting the CDF at a uniform deviate.
func (d *BinomialDist) Sample() (int, error) {
	return sampleInversion(d.sampler, d.InvCDF)
}

func (d *BinomialDist) SampleN(n int) ([]int, error) {
	return sampleN(d.Sample, n)
}

// NormalApprox returns a normal distribution approximation of
// binomial distribution d. It fails if d has zero variance.
//
// Because the binomial distribution is discrete and the normal
// distribution is continuous, the caller must apply a continuity
// correction when using this approximation. Specifically, if b is the
// binomial distribution and n is the normal approximation, operations
// map as follows:
//
//	b.PMF(k) => n.CDF(k+0.5) - n.CDF(k-0.5)
//	b.CDF(k) => n.CDF(k+0.5)
//
// The approximation shares d's Source.
func (d *BinomialDist) NormalApprox() (*NormalDist, error) {
	return NewNormalDist(d.Mean(), math.Sqrt(d.Variance()), d.src)
}
