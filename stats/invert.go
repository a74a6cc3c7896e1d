// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/cockroachdb/errors"
)

// InvertCDF returns the smallest x such that d.CDF(x) >= p by
// numerically inverting d's CDF with solver.
//
// The search is bracketed by d's support. Infinite ends of the support
// are replaced by one-sided Chebyshev bounds when d has a finite,
// positive variance, and otherwise found by doubling outward from ±1.
// If d's support is not connected, a result that lands on a plateau
// of the CDF is moved to the left edge of the plateau.
func InvertCDF(d CDFInverter, p float64, solver Solver) (float64, error) {
	if err := checkProb(p); err != nil {
		return nan, err
	}
	sup := d.Support()
	lo, hi := sup.Lo, sup.Hi
	if p == 0 {
		return lo, nil
	}
	if p == 1 {
		return hi, nil
	}
	solver = solver.withDefaults()

	mu, sigma := d.Mean(), math.Sqrt(d.Variance())
	chebyshev := isFinite(mu) && isFinite(sigma) && sigma > 0
	if !chebyshev && (math.IsInf(lo, -1) || math.IsInf(hi, 1)) {
		log.Debugf("no usable moments; doubling bracket for quantile %v", p)
	}

	if math.IsInf(lo, -1) {
		if chebyshev {
			lo = mu - sigma*math.Sqrt((1-p)/p)
		} else {
			lo = -1
			for d.CDF(lo) >= p && !math.IsInf(lo, -1) {
				lo *= 2
			}
		}
	}
	if math.IsInf(hi, 1) {
		if chebyshev {
			hi = mu + sigma*math.Sqrt(p/(1-p))
		} else {
			hi = 1
			for d.CDF(hi) < p && !math.IsInf(hi, 1) {
				hi *= 2
			}
		}
	}
	if math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nan, errors.Wrapf(ErrNumerical, "cannot bracket quantile %v", p)
	}

	x, err := solver.solve(func(x float64) float64 { return d.CDF(x) - p }, lo, hi)
	if err != nil {
		return nan, errors.Wrapf(err, "inverting CDF at %v", p)
	}

	if !sup.Connected {
		// The root finder may land anywhere on a flat stretch
		// of the CDF. Bisect back to its left edge.
		dx := solver.AbsAccuracy
		if x-dx >= sup.Lo {
			px := d.CDF(x)
			if d.CDF(x-dx) == px {
				hi = x
				for hi-lo > dx {
					mid := 0.5 * (lo + hi)
					if d.CDF(mid) < px {
						lo = mid
					} else {
						hi = mid
					}
				}
				return hi, nil
			}
		}
	}
	return x, nil
}

// InvertDiscreteCDF returns the smallest x such that d.CDF(x) >= p by
// bisection over the integers.
//
// Like InvertCDF, infinite ends of d's support are replaced by
// Chebyshev bounds when d has a finite, positive variance and found
// by doubling otherwise.
func InvertDiscreteCDF(d DiscreteCDFInverter, p float64) (int, error) {
	if err := checkProb(p); err != nil {
		return 0, err
	}
	sup := d.Support()
	lower := sup.Lo
	if p == 0 {
		return lower, nil
	}
	if lower == math.MinInt {
		c, err := checkedCDF(d, lower)
		if err != nil {
			return 0, err
		}
		if c >= p {
			return lower, nil
		}
	} else {
		lower--
	}
	// Now d.CDF(lower) < p.

	upper := sup.Hi
	if p == 1 {
		return upper, nil
	}

	mu, sigma := d.Mean(), math.Sqrt(d.Variance())
	if isFinite(mu) && isFinite(sigma) && sigma > 0 {
		k := math.Sqrt((1 - p) / p)
		if tmp := mu - k*sigma; tmp > float64(lower) {
			lower = int(math.Ceil(tmp)) - 1
		}
		k = 1 / k
		if tmp := mu + k*sigma; tmp < float64(upper) {
			upper = int(math.Ceil(tmp))
		}
	} else {
		log.Debugf("no usable moments; doubling bracket for quantile %v", p)
		if lower == math.MinInt {
			for l := min(-1, upper-1); ; l *= 2 {
				c, err := checkedCDF(d, l)
				if err != nil {
					return 0, err
				}
				if c < p {
					lower = l
					break
				}
				if l < math.MinInt/2 {
					break
				}
			}
		}
		if upper == math.MaxInt {
			for u := max(1, lower+1); ; u *= 2 {
				c, err := checkedCDF(d, u)
				if err != nil {
					return 0, err
				}
				if c >= p {
					upper = u
					break
				}
				if u > math.MaxInt/2 {
					break
				}
			}
		}
	}
	return bisectDiscrete(d, p, lower, upper)
}

// bisectDiscrete finds the smallest x in (lower, upper] with
// d.CDF(x) >= p, assuming d.CDF(lower) < p <= d.CDF(upper).
func bisectDiscrete(d DiscreteCDFInverter, p float64, lower, upper int) (int, error) {
	for lower+1 < upper {
		// Avoid overflow in (lower+upper)/2.
		xm := lower/2 + upper/2 + (lower%2+upper%2)/2
		if xm <= lower || xm >= upper {
			xm = lower + (upper-lower)/2
		}
		pm, err := checkedCDF(d, xm)
		if err != nil {
			return 0, err
		}
		if pm >= p {
			upper = xm
		} else {
			lower = xm
		}
	}
	return upper, nil
}

func checkedCDF(d DiscreteCDFInverter, x int) (float64, error) {
	c := d.CDF(x)
	if math.IsNaN(c) {
		return 0, errors.Wrapf(ErrNumerical, "CDF(%d) is NaN", x)
	}
	return c, nil
}
