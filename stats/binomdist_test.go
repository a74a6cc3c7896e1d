// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestBinomialDist(t *testing.T) {
	dist, err := NewBinomialDist(5, 0.2, nil)
	require.NoError(t, err)
	testIntFunc(t, fmt.Sprintf("%+v.PMF", dist), dist.PMF,
		map[int]float64{
			-1000: 0,
			-1:    0,
			0:     0.32768,
			1:     0.4096,
			2:     0.2048,
			3:     0.0512,
			4:     0.0064,
			5:     math.Pow(dist.P(), 5),
			6:     0,
			1000:  0,
		})
	testDiscreteCDF(t, fmt.Sprintf("%+v.CDF", dist), dist)
	testDiscreteInvCDF(t, fmt.Sprintf("%+v.InvCDF", dist), dist, 5)
	testDiscreteInvCDFBounds(t, "Binomial(5, 0.2)", dist)

	dist, err = NewBinomialDist(30, 0.5, nil)
	require.NoError(t, err)
	norm, err := dist.NormalApprox()
	require.NoError(t, err)
	for k := 10; k <= 20; k++ {
		b := dist.PMF(k)
		n := norm.CDF(float64(k)+0.5) - norm.CDF(float64(k)-0.5)

		// The normal approximation isn't actually very close,
		// even with high N and P near 0.5, so we only check
		// the center of the distribution and we're pretty
		// lax.
		err := math.Abs(b/n - 1)
		if err > 0.01 {
			t.Errorf("want %v ≅ %v at %d", b, n, k)
		}
	}
}

func TestBinomialLarge(t *testing.T) {
	// The saddle-point mass function stays accurate where
	// multiplying out C(n, k) pᵏ qⁿ⁻ᵏ would overflow.
	dist, err := NewBinomialDist(10000, 0.3, nil)
	require.NoError(t, err)
	ref := distuv.Binomial{N: 10000, P: 0.3}
	for _, k := range []int{2800, 2950, 3000, 3100, 3300} {
		got, want := dist.LogPMF(k), ref.LogProb(float64(k))
		if math.Abs(got-want) > 1e-8*math.Abs(want) {
			t.Errorf("LogPMF(%d) = %v, want %v", k, got, want)
		}
	}
}

func TestBinomialDegenerate(t *testing.T) {
	dist, err := NewBinomialDist(0, 0.5, nil)
	require.NoError(t, err)
	require.Equal(t, 1.0, dist.PMF(0))
	require.Equal(t, 1.0, dist.CDF(0))

	dist, err = NewBinomialDist(4, 0, NewSource(1))
	require.NoError(t, err)
	require.Equal(t, 1.0, dist.PMF(0))
	require.Equal(t, 0.0, dist.PMF(1))
	x, err := dist.Sample()
	require.NoError(t, err)
	require.Equal(t, 0, x)
	_, err = dist.NormalApprox()
	require.ErrorIs(t, err, ErrInvalidParameter)

	_, err = NewBinomialDist(-1, 0.5, nil)
	require.ErrorIs(t, err, ErrInvalidParameter)
	_, err = NewBinomialDist(3, 1.5, nil)
	require.ErrorIs(t, err, ErrInvalidParameter)
}

func TestBinomialSample(t *testing.T) {
	dist, err := NewBinomialDist(40, 0.3, NewSource(3))
	require.NoError(t, err)
	xs, err := dist.SampleN(20000)
	require.NoError(t, err)
	testMoments(t, "Binomial(40, 0.3)", intsToFloats(xs), dist.Mean(), dist.Variance(), 0.05)
}
