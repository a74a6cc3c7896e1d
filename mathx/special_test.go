// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math"
	"testing"
)

func TestBetaInc(t *testing.T) {
	testFunc(t, "BetaInc(x, 2, 2)",
		func(x float64) float64 { return BetaInc(x, 2, 2) },
		map[float64]float64{
			-0.1: nan,
			0:    0,
			0.25: 0.15625,
			0.5:  0.5,
			0.75: 0.84375,
			1:    1,
			1.1:  nan,
		})
	testFunc(t, "BetaInc(x, 1, 3)",
		func(x float64) float64 { return BetaInc(x, 1, 3) },
		map[float64]float64{
			0.5: 1 - math.Pow(0.5, 3),
			0.9: 1 - math.Pow(0.1, 3),
		})
}

func TestGammaInc(t *testing.T) {
	// For a=1, P(1, x) = 1 - exp(-x).
	for _, x := range []float64{0, 0.1, 1, 2.5, 10} {
		if want, got := 1-math.Exp(-x), GammaInc(1, x); !aeq(want, got) {
			t.Errorf("GammaInc(1, %v) = %v, want %v", x, got, want)
		}
		if want, got := math.Exp(-x), GammaIncComp(1, x); !aeq(want, got) {
			t.Errorf("GammaIncComp(1, %v) = %v, want %v", x, got, want)
		}
	}
	if got := GammaInc(2, math.Inf(1)); got != 1 {
		t.Errorf("GammaInc(2, +Inf) = %v, want 1", got)
	}
	if got := GammaInc(0, 1); !math.IsNaN(got) {
		t.Errorf("GammaInc(0, 1) = %v, want NaN", got)
	}
}

func TestChoose(t *testing.T) {
	for _, test := range []struct {
		n, k int
		want float64
	}{
		{5, 0, 1},
		{5, 2, 10},
		{5, 5, 1},
		{5, 6, 0},
		{5, -1, 0},
		{20, 10, 184756},
		{30, 15, 155117520},
	} {
		if got := Choose(test.n, test.k); got != test.want {
			t.Errorf("Choose(%d, %d) = %v, want %v", test.n, test.k, got, test.want)
		}
	}
}

func TestLogFactorial(t *testing.T) {
	for n := 0; n < 40; n++ {
		want := lgamma(float64(n) + 1)
		if got := LogFactorial(n); math.Abs(got-want) > 1e-12*math.Max(1, want) {
			t.Errorf("LogFactorial(%d) = %v, want %v", n, got, want)
		}
	}
}
