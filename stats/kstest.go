// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"

	"github.com/cockroachdb/errors"
)

// A KolmogorovSmirnovTestResult is the result of a one-sample
// Kolmogorov-Smirnov test.
type KolmogorovSmirnovTestResult struct {
	// N is the size of the sample.
	N int

	// D is the Kolmogorov-Smirnov statistic, the largest absolute
	// difference between the empirical CDF of the sample and the
	// CDF of the reference distribution.
	D float64

	// P is the p-value of the test: the probability of a
	// statistic at least as large as D if the sample was drawn
	// from the reference distribution.
	P float64
}

// KolmogorovSmirnovTest performs a one-sample Kolmogorov-Smirnov test
// of the null hypothesis that xs was drawn from the continuous
// distribution with CDF dist.CDF.
//
// The p-value is computed from the rounded-mode CDF of
// KolmogorovSmirnovDist. This can fail with ErrSampleSize if xs is
// empty.
func KolmogorovSmirnovTest(xs []float64, dist interface{ CDF(float64) float64 }) (*KolmogorovSmirnovTestResult, error) {
	n := len(xs)
	if n == 0 {
		return nil, errors.WithStack(ErrSampleSize)
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)

	fn := float64(n)
	d := 0.0
	for i, x := range sorted {
		c := dist.CDF(x)
		if math.IsNaN(c) {
			return nil, errors.Wrapf(ErrNumerical, "CDF(%v) is NaN", x)
		}
		d = math.Max(d, math.Max(float64(i+1)/fn-c, c-float64(i)/fn))
	}

	cdf, err := KolmogorovSmirnovCDF(d, n, false)
	if err != nil {
		return nil, err
	}
	return &KolmogorovSmirnovTestResult{N: n, D: d, P: 1 - cdf}, nil
}
