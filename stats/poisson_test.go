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

func TestPoissonDist(t *testing.T) {
	for _, mean := range []float64{0.3, 4, 25, 80, 1000.5} {
		d, err := NewPoissonDist(mean, nil)
		require.NoError(t, err)
		ref := distuv.Poisson{Lambda: mean}
		name := fmt.Sprintf("Poisson(%v)", mean)
		for _, x := range []int{0, 1, 3, 10, 24, 25, 60, 80, 100, 1000} {
			if got, want := d.PMF(x), ref.Prob(float64(x)); !scalar.EqualWithinAbsOrRel(got, want, 1e-14, 1e-9) {
				t.Errorf("%s.PMF(%v) = %v, want %v", name, x, got, want)
			}
			if got, want := d.CDF(x), ref.CDF(float64(x)); !scalar.EqualWithinAbsOrRel(got, want, 1e-12, 1e-9) {
				t.Errorf("%s.CDF(%v) = %v, want %v", name, x, got, want)
			}
		}
		require.Equal(t, 0.0, d.PMF(-1))
		require.Equal(t, 0.0, d.CDF(-1))
		require.Equal(t, math.Inf(-1), d.LogPMF(math.MaxInt))
		require.Equal(t, 1.0, d.CDF(math.MaxInt))
		require.Equal(t, -mean, d.LogPMF(0))
		testDiscreteInvCDFBounds(t, name, d)
	}

	d, err := NewPoissonDist(4, nil)
	require.NoError(t, err)
	testDiscreteInvCDF(t, "Poisson(4).InvCDF", d, 100)

	for _, mean := range []float64{0, -1, math.Inf(1), math.NaN()} {
		_, err := NewPoissonDist(mean, nil)
		require.ErrorIs(t, err, ErrInvalidParameter)
	}
}

func TestPoissonNormalApprox(t *testing.T) {
	d, err := NewPoissonDist(900, nil)
	require.NoError(t, err)
	for _, x := range []int{850, 900, 950} {
		if got, want := d.NormalApproxCDF(x), d.CDF(x); math.Abs(got-want) > 0.01 {
			t.Errorf("NormalApproxCDF(%d) = %v, want ≅ %v", x, got, want)
		}
	}
}

func TestPoissonSample(t *testing.T) {
	for _, mean := range []float64{0.5, 25, 39.9, 40, 80, 123.4} {
		d, err := NewPoissonDist(mean, NewSource(uint64(mean*10)))
		require.NoError(t, err)
		xs, err := d.SampleN(100000)
		require.NoError(t, err)
		for _, x := range xs {
			if x < 0 {
				t.Fatalf("Poisson(%v) sample %d is negative", mean, x)
			}
		}
		testMoments(t, fmt.Sprintf("Poisson(%v)", mean), intsToFloats(xs), mean, mean, 0.03)
	}
}
