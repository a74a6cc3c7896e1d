// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"

	"github.com/op/go-logging"
	"gonum.org/v1/gonum/stat"
)

func init() {
	logging.SetLevel(logging.ERROR, "stats")
}

var (
	_ Dist = (*NormalDist)(nil)
	_ Dist = (*BetaDist)(nil)
	_ Dist = (*GammaDist)(nil)

	_ DiscreteDist = (*BinomialDist)(nil)
	_ DiscreteDist = (*PoissonDist)(nil)
	_ DiscreteDist = (*HypergeometricDist)(nil)
	_ DiscreteDist = (*ZipfDist)(nil)
	_ DiscreteDist = (*MannWhitneyUDist)(nil)

	_ CDFInverter = (*KolmogorovSmirnovDist)(nil)

	_ Source = (*LockedSource)(nil)
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	for in, want := range vals {
		if got := f(in); !aeq(want, got) && !(math.IsInf(want, 0) && want == got) {
			t.Errorf("%s(%v) = %v, want %v", name, in, got, want)
		}
	}
}

func testIntFunc(t *testing.T, name string, f func(int) float64, vals map[int]float64) {
	t.Helper()
	for in, want := range vals {
		if got := f(in); !aeq(want, got) {
			t.Errorf("%s(%v) = %v, want %v", name, in, got, want)
		}
	}
}

// testDiscreteCDF checks that dist's CDF is the running sum of its
// PMF over its (finite) support.
func testDiscreteCDF(t *testing.T, name string, dist DiscreteDist) {
	t.Helper()
	sup := dist.Support()
	want := map[int]float64{sup.Lo - 1: 0, sup.Hi: 1}
	sum := 0.0
	for x := sup.Lo; x < sup.Hi; x++ {
		sum += dist.PMF(x)
		want[x] = sum
	}
	testIntFunc(t, name, dist.CDF, want)
}

// testDiscreteInvCDF checks dist.InvCDF against a linear scan for the
// smallest x with CDF(x) >= p.
func testDiscreteInvCDF(t *testing.T, name string, dist DiscreteDist, hi int) {
	t.Helper()
	for i := 1; i < 100; i++ {
		p := float64(i) / 100
		want := dist.Support().Lo
		for dist.CDF(want) < p && want < hi {
			want++
		}
		got, err := dist.InvCDF(p)
		if err != nil {
			t.Errorf("%s(%v): %v", name, p, err)
			continue
		}
		if got != want {
			t.Errorf("%s(%v) = %v, want %v", name, p, got, want)
		}
	}
}

// testInvCDFBounds checks that the 0- and 1-quantiles of dist are the
// ends of its support.
func testInvCDFBounds(t *testing.T, name string, dist interface {
	InvCDF(float64) (float64, error)
	Support() Support
}) {
	t.Helper()
	sup := dist.Support()
	for p, want := range map[float64]float64{0: sup.Lo, 1: sup.Hi} {
		got, err := dist.InvCDF(p)
		if err != nil || got != want {
			t.Errorf("%s.InvCDF(%v) = %v, %v; want %v", name, p, got, err, want)
		}
	}
}

func testDiscreteInvCDFBounds(t *testing.T, name string, dist DiscreteDist) {
	t.Helper()
	sup := dist.Support()
	for p, want := range map[float64]int{0: sup.Lo, 1: sup.Hi} {
		got, err := dist.InvCDF(p)
		if err != nil || got != want {
			t.Errorf("%s.InvCDF(%v) = %v, %v; want %v", name, p, got, err, want)
		}
	}
}

// testMoments checks that the sample mean and variance of xs are
// within relative tolerance tol of the given moments.
func testMoments(t *testing.T, name string, xs []float64, mean, variance, tol float64) {
	t.Helper()
	m, v := stat.MeanVariance(xs, nil)
	if math.Abs(m-mean) > tol*math.Abs(mean) {
		t.Errorf("%s: sample mean %v, want %v", name, m, mean)
	}
	if math.Abs(v-variance) > tol*variance {
		t.Errorf("%s: sample variance %v, want %v", name, v, variance)
	}
}

func intsToFloats(xs []int) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = float64(x)
	}
	return out
}
