// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/aclements/go-probdist/mathx"
)

// BetaDist is a beta distribution on [0, 1] with shape parameters
// Alpha and Beta.
type BetaDist struct {
	sampler
	alpha, beta float64
	lbeta       float64
}

// NewBetaDist returns a beta distribution. Both shape parameters must
// be positive and finite.
func NewBetaDist(alpha, beta float64, src Source) (*BetaDist, error) {
	if !(alpha > 0) || math.IsInf(alpha, 1) {
		return nil, invalidParam("beta", "alpha %v must be positive", alpha)
	}
	if !(beta > 0) || math.IsInf(beta, 1) {
		return nil, invalidParam("beta", "beta %v must be positive", beta)
	}
	return &BetaDist{sampler{src}, alpha, beta, mathx.Lbeta(alpha, beta)}, nil
}

func (d *BetaDist) Alpha() float64 { return d.alpha }
func (d *BetaDist) Beta() float64  { return d.beta }

// PDF returns the density of d at x. At x=0 (x=1) the density is
// +Inf when Alpha (Beta) is below 1.
func (d *BetaDist) PDF(x float64) float64 {
	return math.Exp(d.LogPDF(x))
}

func (d *BetaDist) LogPDF(x float64) float64 {
	switch {
	case x < 0 || x > 1 || math.IsNaN(x):
		return -inf
	case x == 0:
		return boundaryLogDensity(d.alpha, -d.lbeta)
	case x == 1:
		return boundaryLogDensity(d.beta, -d.lbeta)
	}
	return (d.alpha-1)*math.Log(x) + (d.beta-1)*math.Log1p(-x) - d.lbeta
}

// boundaryLogDensity returns the log density at an end of the support
// whose exponent is shape-1, where the rest of the density
// contributes logRest.
func boundaryLogDensity(shape, logRest float64) float64 {
	switch {
	case shape < 1:
		return inf
	case shape == 1:
		return logRest
	}
	return -inf
}

func (d *BetaDist) CDF(x float64) float64 {
	switch {
	case x <= 0:
		return 0
	case x >= 1:
		return 1
	}
	return mathx.BetaInc(x, d.alpha, d.beta)
}

// InvCDF returns the p-quantile of d by numerical inversion to an
// absolute accuracy of 1e-9 in x. For very small shapes the quantile
// may lie far below 1e-9, where that accuracy says little about p; use
// InvertCDF with a smaller Solver.AbsAccuracy for such quantiles.
func (d *BetaDist) InvCDF(p float64) (float64, error) {
	return InvertCDF(d, p, Solver{AbsAccuracy: 1e-9})
}

// Probability returns Pr[x0 < X <= x1].
func (d *BetaDist) Probability(x0, x1 float64) (float64, error) {
	return Probability(d, x0, x1)
}

func (d *BetaDist) Mean() float64 {
	return d.alpha / (d.alpha + d.beta)
}

func (d *BetaDist) Variance() float64 {
	ab := d.alpha + d.beta
	return d.alpha * d.beta / (ab * ab * (ab + 1))
}

func (d *BetaDist) Support() Support {
	return Support{Lo: 0, Hi: 1, LoInclusive: true, HiInclusive: true, Connected: true}
}

// Sample draws a variate using Cheng's algorithms BB (both shapes
// above 1) and BC (otherwise).
//
// R. C. H. Cheng (1978). "Generating beta variates with nonintegral
// shape parameters". Communications of the ACM 21 (4): 317-322.
func (d *BetaDist) Sample() (float64, error) {
	src, err := d.source()
	if err != nil {
		return nan, err
	}
	a := math.Min(d.alpha, d.beta)
	b := math.Max(d.alpha, d.beta)
	if a > 1 {
		return chengBB(src, d.alpha, a, b), nil
	}
	return chengBC(src, d.alpha, b, a), nil
}

func (d *BetaDist) SampleN(n int) ([]float64, error) {
	return sampleN(d.Sample, n)
}

// ln4 is log(4), rounded the way Cheng's tables give it.
const ln4 = 1.3862944

// chengBB samples Beta(a0, ·) where a = min shape > 1 and b = max
// shape.
func chengBB(src Source, a0, a, b float64) float64 {
	alpha := a + b
	beta := math.Sqrt((alpha - 2) / (2*a*b - alpha))
	gamma := a + 1/beta

	var w float64
	for {
		u1 := src.Float64()
		u2 := src.Float64()
		v := beta * (math.Log(u1) - math.Log1p(-u1))
		w = a * math.Exp(v)
		z := u1 * u1 * u2
		r := gamma*v - ln4
		s := a + r - w
		if s+2.609438 >= 5*z {
			break
		}
		t := math.Log(z)
		if s > t {
			break
		}
		if r+alpha*(math.Log(alpha)-math.Log(b+w)) >= t {
			break
		}
	}
	return chengResult(a0, a, b, w)
}

// chengBC samples Beta(a0, ·) where a = max shape and b = min shape
// <= 1.
func chengBC(src Source, a0, a, b float64) float64 {
	alpha := a + b
	beta := 1 / b
	delta := 1 + a - b
	k1 := delta * (0.0138889 + 0.0416667*b) / (a*beta - 0.777778)
	k2 := 0.25 + (0.5+0.25/delta)*b

	var w float64
	for {
		u1 := src.Float64()
		u2 := src.Float64()
		y := u1 * u2
		z := u1 * y
		if u1 < 0.5 {
			if 0.25*u2+z-y >= k1 {
				continue
			}
		} else {
			if z <= 0.25 {
				v := beta * (math.Log(u1) - math.Log1p(-u1))
				w = a * math.Exp(v)
				break
			}
			if z >= k2 {
				continue
			}
		}
		v := beta * (math.Log(u1) - math.Log1p(-u1))
		w = a * math.Exp(v)
		if alpha*(math.Log(alpha)-math.Log(b+w)+v)-ln4 >= math.Log(z) {
			break
		}
	}
	return chengResult(a0, a, b, w)
}

// chengResult maps the auxiliary variate w to (0, 1). Which ratio is
// returned depends on whether the first shape a0 took the role of a.
func chengResult(a0, a, b, w float64) float64 {
	w = math.Min(w, math.MaxFloat64)
	if a == a0 {
		return w / (b + w)
	}
	return b / (b + w)
}
