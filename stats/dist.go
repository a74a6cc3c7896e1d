// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "github.com/cockroachdb/errors"

// A Dist is a continuous statistical distribution.
type Dist interface {
	// PDF returns the value of the probability density function
	// of this distribution at x. It is 0 outside the support.
	PDF(x float64) float64

	// LogPDF returns log(PDF(x)), computed directly where that is
	// more accurate. It is -Inf outside the support.
	LogPDF(x float64) float64

	// CDF returns the value of the cumulative distribution
	// function for this distribution at x. This is Pr[X <= x].
	CDF(x float64) float64

	// InvCDF returns the smallest x such that CDF(x) >= p. The
	// value of p must be in [0, 1].
	InvCDF(p float64) (float64, error)

	// Mean and Variance return the moments of the distribution.
	// They are NaN if undefined and +Inf if infinite.
	Mean() float64
	Variance() float64

	// Support returns the set of values with non-zero density.
	Support() Support

	// Sample returns one random variate drawn from the
	// distribution using its Source.
	Sample() (float64, error)

	// SampleN returns n independent variates.
	SampleN(n int) ([]float64, error)

	// Reseed resets the distribution's Source to seed.
	Reseed(seed uint64) error
}

// A DiscreteDist is a statistical distribution over the integers.
type DiscreteDist interface {
	// PMF returns Pr[X = x]. It is 0 outside the support.
	PMF(x int) float64

	// LogPMF returns log(PMF(x)). It is -Inf outside the support.
	LogPMF(x int) float64

	// CDF returns Pr[X <= x].
	CDF(x int) float64

	// InvCDF returns the smallest x such that CDF(x) >= p. The
	// value of p must be in [0, 1].
	InvCDF(p float64) (int, error)

	Mean() float64
	Variance() float64
	Support() IntSupport

	Sample() (int, error)
	SampleN(n int) ([]int, error)
	Reseed(seed uint64) error
}

// Support describes the support of a continuous distribution as an
// interval. Either end may be infinite.
type Support struct {
	Lo, Hi float64

	// LoInclusive and HiInclusive report whether Lo and Hi
	// themselves belong to the support.
	LoInclusive, HiInclusive bool

	// Connected reports whether every point between Lo and Hi has
	// non-zero density. If false, the CDF may have plateaus and
	// inversion takes extra care to return the leftmost point of
	// a plateau.
	Connected bool
}

// IntSupport describes the support of a discrete distribution as the
// inclusive integer range [Lo, Hi]. math.MinInt and math.MaxInt stand
// for unbounded ends.
type IntSupport struct {
	Lo, Hi int
}

// Contains reports whether x is in s.
func (s IntSupport) Contains(x int) bool {
	return s.Lo <= x && x <= s.Hi
}

// A CDFInverter is the subset of Dist needed to invert its CDF.
type CDFInverter interface {
	CDF(x float64) float64
	Mean() float64
	Variance() float64
	Support() Support
}

// A DiscreteCDFInverter is the subset of DiscreteDist needed to
// invert its CDF.
type DiscreteCDFInverter interface {
	CDF(x int) float64
	Mean() float64
	Variance() float64
	Support() IntSupport
}

// Probability returns Pr[x0 < X <= x1] for distribution d.
func Probability(d interface{ CDF(float64) float64 }, x0, x1 float64) (float64, error) {
	if x0 > x1 {
		return 0, errors.Wrapf(ErrInvalidRange, "(%v, %v]", x0, x1)
	}
	return d.CDF(x1) - d.CDF(x0), nil
}

// DiscreteProbability returns Pr[x0 < X <= x1] for discrete
// distribution d.
func DiscreteProbability(d interface{ CDF(int) float64 }, x0, x1 int) (float64, error) {
	if x0 > x1 {
		return 0, errors.Wrapf(ErrInvalidRange, "(%d, %d]", x0, x1)
	}
	return d.CDF(x1) - d.CDF(x0), nil
}

// sampler carries the random source of a distribution.
type sampler struct {
	src Source
}

// Reseed resets the random source to seed.
func (s sampler) Reseed(seed uint64) error {
	if s.src == nil {
		return errors.WithStack(ErrNoSource)
	}
	s.src.Seed(seed)
	return nil
}

func (s sampler) source() (Source, error) {
	if s.src == nil {
		return nil, errors.WithStack(ErrNoSource)
	}
	return s.src, nil
}

// sampleN calls sample n times.
func sampleN[T any](sample func() (T, error), n int) ([]T, error) {
	if n <= 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "sample count %d must be positive", n)
	}
	out := make([]T, n)
	for i := range out {
		x, err := sample()
		if err != nil {
			return nil, err
		}
		out[i] = x
	}
	return out, nil
}

// sampleInversion draws a variate by applying invCDF to a uniform
// deviate.
func sampleInversion[T any](s sampler, invCDF func(p float64) (T, error)) (T, error) {
	src, err := s.source()
	if err != nil {
		var zero T
		return zero, err
	}
	return invCDF(src.Float64())
}
