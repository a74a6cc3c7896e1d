// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats implements univariate probability distributions:
// their densities, cumulative distribution functions, quantiles,
// moments, and exact random variate generation.
//
// Continuous distributions implement Dist and discrete distributions
// implement DiscreteDist. Quantiles default to a generic inversion of
// the CDF (see InvertCDF and InvertDiscreteCDF), and sampling
// defaults to inversion of a uniform deviate, but most distributions
// here use a dedicated rejection sampler instead.
//
// Distributions are immutable after construction and safe for
// concurrent PDF, CDF and quantile queries. Sampling draws from a
// shared Source and must be serialized by the caller.
package stats // import "github.com/aclements/go-probdist/stats"

import (
	"math"

	"github.com/op/go-logging"
)

var inf = math.Inf(1)
var nan = math.NaN()

var log = logging.MustGetLogger("stats")

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
