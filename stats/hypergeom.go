// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/aclements/go-probdist/mathx"
)

// HypergeometricDist is the distribution of the number of successes
// in a sample of size n drawn without replacement from a population
// of size N containing m successes.
type HypergeometricDist struct {
	sampler
	pop, successes, sample int
	lo, hi                 int
}

// NewHypergeometricDist returns a hypergeometric distribution.
// populationSize must be positive, and successes and sampleSize must
// be in [0, populationSize].
func NewHypergeometricDist(populationSize, successes, sampleSize int, src Source) (*HypergeometricDist, error) {
	if populationSize <= 0 {
		return nil, invalidParam("hypergeometric", "population size %d must be positive", populationSize)
	}
	if successes < 0 || successes > populationSize {
		return nil, invalidParam("hypergeometric", "successes %d not in [0, %d]", successes, populationSize)
	}
	if sampleSize < 0 || sampleSize > populationSize {
		return nil, invalidParam("hypergeometric", "sample size %d not in [0, %d]", sampleSize, populationSize)
	}
	d := &HypergeometricDist{
		sampler:   sampler{src},
		pop:       populationSize,
		successes: successes,
		sample:    sampleSize,
		lo:        max(0, successes-(populationSize-sampleSize)),
		hi:        min(successes, sampleSize),
	}
	return d, nil
}

func (d *HypergeometricDist) PopulationSize() int { return d.pop }
func (d *HypergeometricDist) Successes() int      { return d.successes }
func (d *HypergeometricDist) SampleSize() int     { return d.sample }

func (d *HypergeometricDist) PMF(x int) float64 {
	return math.Exp(d.LogPMF(x))
}

func (d *HypergeometricDist) LogPMF(x int) float64 {
	if x < d.lo || x > d.hi {
		return -inf
	}
	p := float64(d.sample) / float64(d.pop)
	q := float64(d.pop-d.sample) / float64(d.pop)
	p1 := mathx.LogBinomialProbability(x, d.successes, p, q)
	p2 := mathx.LogBinomialProbability(d.sample-x, d.pop-d.successes, p, q)
	p3 := mathx.LogBinomialProbability(d.sample, d.pop, p, q)
	return p1 + p2 - p3
}

func (d *HypergeometricDist) CDF(x int) float64 {
	switch {
	case x < d.lo:
		return 0
	case x >= d.hi:
		return 1
	}
	return d.sumPMF(d.lo, x, 1)
}

// UpperCDF returns Pr[X >= x].
func (d *HypergeometricDist) UpperCDF(x int) float64 {
	switch {
	case x <= d.lo:
		return 1
	case x > d.hi:
		return 0
	}
	return d.sumPMF(d.hi, x, -1)
}

// sumPMF sums PMF from x0 to x1 inclusive, stepping by dx.
func (d *HypergeometricDist) sumPMF(x0, x1, dx int) float64 {
	sum := d.PMF(x0)
	for x0 != x1 {
		x0 += dx
		sum += d.PMF(x0)
	}
	return sum
}

func (d *HypergeometricDist) InvCDF(p float64) (int, error) {
	return InvertDiscreteCDF(d, p)
}

// Probability returns Pr[x0 < X <= x1].
func (d *HypergeometricDist) Probability(x0, x1 int) (float64, error) {
	return DiscreteProbability(d, x0, x1)
}

func (d *HypergeometricDist) Mean() float64 {
	return float64(d.sample) * float64(d.successes) / float64(d.pop)
}

func (d *HypergeometricDist) Variance() float64 {
	N := float64(d.pop)
	if d.pop == 1 {
		return 0
	}
	m, n := float64(d.successes), float64(d.sample)
	return n * m * (N - n) * (N - m) / (N * N * (N - 1))
}

func (d *HypergeometricDist) Support() IntSupport {
	return IntSupport{d.lo, d.hi}
}

// Sample draws a variate by inverting the CDF at a uniform deviate.
func (d *HypergeometricDist) Sample() (int, error) {
	return sampleInversion(d.sampler, d.InvCDF)
}

func (d *HypergeometricDist) SampleN(n int) ([]int, error) {
	return sampleN(d.Sample, n)
}
