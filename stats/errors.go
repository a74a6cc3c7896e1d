// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidParameter is returned when a distribution is
	// constructed with parameters outside its domain.
	ErrInvalidParameter = errors.New("invalid distribution parameter")

	// ErrOutOfRange is returned when a probability argument is
	// not in [0, 1].
	ErrOutOfRange = errors.New("probability out of range [0, 1]")

	// ErrInvalidRange is returned when the lower end of an
	// interval exceeds its upper end.
	ErrInvalidRange = errors.New("lower endpoint exceeds upper endpoint")

	// ErrInvalidArgument is returned for other invalid operation
	// arguments, such as a non-positive sample count.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNoSource is returned when sampling from a distribution
	// that was constructed without a random Source.
	ErrNoSource = errors.New("distribution has no random source")

	// ErrNumerical indicates an internal numerical failure, such
	// as a CDF returning NaN during inversion. It is returned
	// instead of a NaN result so that a corrupted computation is
	// never mistaken for a value.
	ErrNumerical = errors.New("internal numerical error")

	// ErrSampleSize is returned by tests that are given an empty
	// sample.
	ErrSampleSize = errors.New("sample is too small")
)

func invalidParam(dist, format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidParameter, dist+": "+format, args...)
}

func checkProb(p float64) error {
	if !(p >= 0 && p <= 1) {
		return errors.Wrapf(ErrOutOfRange, "p = %v", p)
	}
	return nil
}
