// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math"
	"math/big"

	"github.com/cockroachdb/errors"
)

// ErrRatConversion is returned by RatApprox when no convergent of the
// continued fraction expansion is close enough to the input.
var ErrRatConversion = errors.New("cannot approximate value by a rational")

// ratOverflow bounds the numerator and denominator of convergents.
const ratOverflow = math.MaxInt32

// RatApprox returns a rational approximation of x that is within
// epsilon of x, using at most maxIterations terms of the continued
// fraction expansion of x.
//
// It fails with ErrRatConversion if a convergent's numerator or
// denominator would exceed 2³¹-1 before reaching epsilon, or if
// maxIterations terms are not enough.
func RatApprox(x, epsilon float64, maxIterations int) (*big.Rat, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil, errors.Wrapf(ErrRatConversion, "%v is not finite", x)
	}
	r0 := x
	a0 := int64(math.Floor(r0))
	if a0 > ratOverflow || a0 < -ratOverflow {
		return nil, errors.Wrapf(ErrRatConversion, "%v: integer part %d overflows", x, a0)
	}
	// Almost-integers don't need any iterations.
	if math.Abs(float64(a0)-x) < epsilon {
		return new(big.Rat).SetInt64(a0), nil
	}

	p0, q0 := int64(1), int64(0)
	p1, q1 := a0, int64(1)
	var p2, q2 int64
	n := 0
	for {
		n++
		r1 := 1 / (r0 - float64(a0))
		if r1 > ratOverflow {
			return nil, errors.Wrapf(ErrRatConversion,
				"%v: continued fraction term %g overflows at epsilon %g", x, r1, epsilon)
		}
		a1 := int64(math.Floor(r1))
		p2 = a1*p1 + p0
		q2 = a1*q1 + q0
		if p2 > ratOverflow || q2 > ratOverflow || p2 < -ratOverflow {
			return nil, errors.Wrapf(ErrRatConversion,
				"%v: convergent %d/%d overflows at epsilon %g", x, p2, q2, epsilon)
		}
		convergent := float64(p2) / float64(q2)
		if n >= maxIterations || math.Abs(convergent-x) <= epsilon {
			break
		}
		p0, p1 = p1, p2
		q0, q1 = q1, q2
		a0, r0 = a1, r1
	}
	if n >= maxIterations && math.Abs(float64(p2)/float64(q2)-x) > epsilon {
		return nil, errors.Wrapf(ErrRatConversion,
			"%v: no convergent within %g after %d iterations", x, epsilon, maxIterations)
	}
	return big.NewRat(p2, q2), nil
}
