// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestBetaDist(t *testing.T) {
	for _, shapes := range [][2]float64{{2, 5}, {0.5, 0.5}, {1, 3}, {0.3, 4}, {7.5, 1.2}} {
		d, err := NewBetaDist(shapes[0], shapes[1], nil)
		require.NoError(t, err)
		ref := distuv.Beta{Alpha: shapes[0], Beta: shapes[1]}
		name := fmt.Sprintf("Beta(%v, %v)", shapes[0], shapes[1])
		for _, x := range []float64{0.001, 0.1, 0.25, 0.5, 0.75, 0.9, 0.999} {
			if got, want := d.PDF(x), ref.Prob(x); !scalar.EqualWithinAbsOrRel(got, want, 1e-10, 1e-10) {
				t.Errorf("%s.PDF(%v) = %v, want %v", name, x, got, want)
			}
			if got, want := d.CDF(x), ref.CDF(x); !scalar.EqualWithinAbsOrRel(got, want, 1e-10, 1e-10) {
				t.Errorf("%s.CDF(%v) = %v, want %v", name, x, got, want)
			}
		}
		testInvCDFBounds(t, name, d)
		for _, p := range []float64{0.01, 0.3, 0.5, 0.99} {
			x, err := d.InvCDF(p)
			require.NoError(t, err)
			// The quantile is accurate to about 1e-9 in x, which
			// near a pole of the density is not close in p.
			if lo, hi := d.CDF(x-3e-9), d.CDF(x+3e-9); p < lo || p > hi {
				t.Errorf("%s.InvCDF(%v) = %v, CDF in [%v, %v]", name, p, x, lo, hi)
			}
		}
	}
}

func TestBetaBoundary(t *testing.T) {
	check := func(alpha, beta, x, want float64) {
		t.Helper()
		d, err := NewBetaDist(alpha, beta, nil)
		require.NoError(t, err)
		if got := d.PDF(x); !(got == want || aeq(want, got)) {
			t.Errorf("Beta(%v, %v).PDF(%v) = %v, want %v", alpha, beta, x, got, want)
		}
	}
	check(0.5, 0.5, 0, math.Inf(1))
	check(0.5, 0.5, 1, math.Inf(1))
	check(1, 3, 0, 3)
	check(3, 1, 1, 3)
	check(2, 5, 0, 0)
	check(2, 5, 1, 0)
	check(2, 5, -0.5, 0)
	check(2, 5, 1.5, 0)

	for _, shapes := range [][2]float64{{0, 1}, {1, 0}, {-1, 1}, {math.Inf(1), 1}, {math.NaN(), 1}} {
		_, err := NewBetaDist(shapes[0], shapes[1], nil)
		require.ErrorIs(t, err, ErrInvalidParameter)
	}
}

func TestBetaSample(t *testing.T) {
	for _, test := range []struct {
		alpha, beta float64
		tol         float64
	}{
		// Algorithm BB.
		{2, 5, 0.02},
		{40, 30, 0.02},
		// Algorithm BC, with the smaller shape first and second.
		{0.5, 0.7, 0.05},
		{3, 0.8, 0.05},
	} {
		d, err := NewBetaDist(test.alpha, test.beta, NewSource(42))
		require.NoError(t, err)
		xs, err := d.SampleN(100000)
		require.NoError(t, err)
		for _, x := range xs {
			if x < 0 || x > 1 {
				t.Fatalf("Beta(%v, %v) sample %v out of range", test.alpha, test.beta, x)
			}
		}
		testMoments(t, fmt.Sprintf("Beta(%v, %v)", test.alpha, test.beta), xs, d.Mean(), d.Variance(), test.tol)
	}
}
