// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/cockroachdb/errors"
)

// DefaultAbsAccuracy is the absolute accuracy of continuous quantiles
// unless a distribution chooses a tighter one.
const DefaultAbsAccuracy = 1e-6

// A Solver configures the bracketing root finder used to invert
// continuous CDFs. Zero fields take their defaults.
type Solver struct {
	// AbsAccuracy is the absolute accuracy of the returned
	// quantile. Default DefaultAbsAccuracy.
	AbsAccuracy float64

	// RelAccuracy is the accuracy relative to the magnitude of
	// the quantile. Default 1e-14.
	RelAccuracy float64

	// FuncAccuracy is how close CDF(x)-p must be to zero for x
	// to be accepted immediately. Default 1e-15.
	FuncAccuracy float64

	// MaxEval bounds the number of CDF evaluations. Default 1<<20.
	MaxEval int
}

func (s Solver) withDefaults() Solver {
	if s.AbsAccuracy <= 0 {
		s.AbsAccuracy = DefaultAbsAccuracy
	}
	if s.RelAccuracy <= 0 {
		s.RelAccuracy = 1e-14
	}
	if s.FuncAccuracy <= 0 {
		s.FuncAccuracy = 1e-15
	}
	if s.MaxEval <= 0 {
		s.MaxEval = 1 << 20
	}
	return s
}

// solve finds a zero of f in [lo, hi] using Brent's method, starting
// from the midpoint of the interval. f(lo) and f(hi) must have
// opposite signs, or one of them must be within FuncAccuracy of 0.
func (s Solver) solve(f func(float64) float64, lo, hi float64) (float64, error) {
	s = s.withDefaults()
	evals := 0
	eval := func(x float64) (float64, error) {
		evals++
		if evals > s.MaxEval {
			return 0, errors.Wrapf(ErrNumerical, "root finder exceeded %d evaluations", s.MaxEval)
		}
		y := f(x)
		if math.IsNaN(y) {
			return 0, errors.Wrapf(ErrNumerical, "objective is NaN at %v", x)
		}
		return y, nil
	}

	mid := lo + 0.5*(hi-lo)
	yMid, err := eval(mid)
	if err != nil {
		return nan, err
	}
	if math.Abs(yMid) <= s.FuncAccuracy {
		return mid, nil
	}
	yLo, err := eval(lo)
	if err != nil {
		return nan, err
	}
	if math.Abs(yLo) <= s.FuncAccuracy {
		return lo, nil
	}
	if yMid*yLo < 0 {
		return s.brent(eval, lo, mid, yLo, yMid)
	}
	yHi, err := eval(hi)
	if err != nil {
		return nan, err
	}
	if math.Abs(yHi) <= s.FuncAccuracy {
		return hi, nil
	}
	if yMid*yHi < 0 {
		return s.brent(eval, mid, hi, yMid, yHi)
	}
	return nan, errors.Wrapf(ErrNumerical, "[%v, %v] does not bracket a root (f = %v, %v)", lo, hi, yLo, yHi)
}

func (s Solver) brent(eval func(float64) (float64, error), lo, hi, fLo, fHi float64) (float64, error) {
	a, fa := lo, fLo
	b, fb := hi, fHi
	c, fc := a, fa
	d := b - a
	e := d

	t := s.AbsAccuracy
	eps := s.RelAccuracy

	for {
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}

		tol := 2*eps*math.Abs(b) + t
		m := 0.5 * (c - b)

		if math.Abs(m) <= tol || fb == 0 {
			return b, nil
		}
		if math.Abs(e) < tol || math.Abs(fa) <= math.Abs(fb) {
			// Force bisection.
			d = m
			e = d
		} else {
			sb := fb / fa
			var p, q float64
			if a == c {
				// Linear interpolation.
				p = 2 * m * sb
				q = 1 - sb
			} else {
				// Inverse quadratic interpolation.
				q = fa / fc
				r := fb / fc
				p = sb * (2*m*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (sb - 1)
			}
			if p > 0 {
				q = -q
			} else {
				p = -p
			}
			if p >= 1.5*m*q-math.Abs(tol*q) || p >= math.Abs(0.5*e*q) {
				// Interpolation failed; fall back to
				// bisection.
				d = m
				e = d
			} else {
				e = d
				d = p / q
			}
		}
		a, fa = b, fb

		if math.Abs(d) > tol {
			b += d
		} else if m > 0 {
			b += tol
		} else {
			b -= tol
		}
		var err error
		fb, err = eval(b)
		if err != nil {
			return nan, err
		}
		if (fb > 0 && fc > 0) || (fb <= 0 && fc <= 0) {
			c, fc = a, fa
			d = b - a
			e = d
		}
	}
}
