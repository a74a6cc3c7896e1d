// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"math/big"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/aclements/go-probdist/mathx"
)

// KolmogorovSmirnovDist is the distribution of the one-sample
// Kolmogorov-Smirnov statistic D_n = sup |F_n(x) - F(x)| for samples
// of size n.
//
// Its CDF is computed by the matrix method of Marsaglia, Tsang and
// Wang, either exactly in rational arithmetic or with floating-point
// matrix entries.
//
// G. Marsaglia, W. W. Tsang, J. Wang (2003). "Evaluating Kolmogorov's
// Distribution". Journal of Statistical Software 8 (18).
type KolmogorovSmirnovDist struct {
	sampler
	n int
}

// NewKolmogorovSmirnovDist returns the distribution of D_n. n must be
// positive.
func NewKolmogorovSmirnovDist(n int, src Source) (*KolmogorovSmirnovDist, error) {
	if n <= 0 {
		return nil, invalidParam("kolmogorov-smirnov", "sample size %d must be positive", n)
	}
	return &KolmogorovSmirnovDist{sampler{src}, n}, nil
}

// N returns the sample size.
func (d *KolmogorovSmirnovDist) N() int { return d.n }

// CDF returns Pr[D_n <= x] computed with floating-point matrix
// entries. It returns NaN if the computation fails; use CDFRounded to
// see the error.
func (d *KolmogorovSmirnovDist) CDF(x float64) float64 {
	p, err := d.CDFRounded(x)
	if err != nil {
		log.Errorf("kolmogorov-smirnov CDF(%v) with n=%d: %v", x, d.n, err)
		return nan
	}
	return p
}

// CDFRounded returns Pr[D_n <= x], rounding the matrix entries to
// float64 before taking the matrix power.
func (d *KolmogorovSmirnovDist) CDFRounded(x float64) (float64, error) {
	return KolmogorovSmirnovCDF(x, d.n, false)
}

// CDFExact returns Pr[D_n <= x], computing the matrix power in exact
// rational arithmetic. This is much slower than CDFRounded.
func (d *KolmogorovSmirnovDist) CDFExact(x float64) (float64, error) {
	return KolmogorovSmirnovCDF(x, d.n, true)
}

// InvCDF returns the p-quantile of D_n using the rounded CDF.
func (d *KolmogorovSmirnovDist) InvCDF(p float64) (float64, error) {
	return InvertCDF(d, p, Solver{})
}

// Probability returns Pr[x0 < D_n <= x1].
func (d *KolmogorovSmirnovDist) Probability(x0, x1 float64) (float64, error) {
	return Probability(d, x0, x1)
}

// Mean returns NaN. The moments of D_n have no closed form.
func (d *KolmogorovSmirnovDist) Mean() float64 { return nan }

// Variance returns NaN.
func (d *KolmogorovSmirnovDist) Variance() float64 { return nan }

// Support returns [1/(2n), 1]. The CDF is 0 at and below 1/(2n).
func (d *KolmogorovSmirnovDist) Support() Support {
	return Support{Lo: 0.5 / float64(d.n), Hi: 1, HiInclusive: true, Connected: true}
}

// Sample draws a value of D_n by inverting the CDF.
func (d *KolmogorovSmirnovDist) Sample() (float64, error) {
	return sampleInversion(d.sampler, d.InvCDF)
}

func (d *KolmogorovSmirnovDist) SampleN(n int) ([]float64, error) {
	return sampleN(d.Sample, n)
}

// KolmogorovSmirnovCDF returns Pr[D_n <= x] for samples of size n. If
// exact is true, the matrix power is computed in rational arithmetic;
// otherwise, in float64.
func KolmogorovSmirnovCDF(x float64, n int, exact bool) (float64, error) {
	if n <= 0 {
		return nan, errors.Wrapf(ErrInvalidArgument, "sample size %d must be positive", n)
	}
	if math.IsNaN(x) {
		return nan, errors.Wrap(ErrInvalidArgument, "statistic is NaN")
	}
	fn := float64(n)
	ninv := 1 / fn
	ninvhalf := 0.5 * ninv

	switch {
	case x <= ninvhalf:
		return 0, nil
	case x <= ninv:
		res := 1.0
		f := 2*x - ninv
		for i := 1; i <= n; i++ {
			res *= float64(i) * f
		}
		return res, nil
	case x >= 1:
		return 1, nil
	case x >= 1-ninv:
		return 1 - 2*math.Pow(1-x, fn), nil
	}

	k := int(math.Ceil(fn * x))
	h, err := ksH(x, n)
	if err != nil {
		return nan, err
	}
	if exact {
		return ksExact(h, k, n), nil
	}
	return ksRounded(h, k, n), nil
}

// ksTolerances are the accuracies tried, in order, when approximating
// the fractional remainder h by a rational.
var ksTolerances = []float64{1e-20, 1e-10, 1e-5}

const ksMaxIterations = 10000

// ksH builds the (2k-1)-square matrix H for statistic x.
func ksH(x float64, n int) ([][]*big.Rat, error) {
	k := int(math.Ceil(float64(n) * x))
	m := 2*k - 1
	hf := float64(k) - float64(n)*x
	if hf >= 1 {
		return nil, errors.Wrapf(ErrNumerical, "remainder %v is not below 1", hf)
	}

	var h *big.Rat
	var err error
	for i, tol := range ksTolerances {
		h, err = mathx.RatApprox(hf, tol, ksMaxIterations)
		if err == nil {
			break
		}
		if i+1 < len(ksTolerances) {
			log.Debugf("approximating %v at tolerance %g: %v; retrying", hf, tol, err)
		}
	}
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "kolmogorov-smirnov remainder %v", hf), ErrNumerical)
	}

	H := make([][]*big.Rat, m)
	for i := range H {
		H[i] = make([]*big.Rat, m)
		for j := range H[i] {
			if i-j+1 < 0 {
				H[i][j] = new(big.Rat)
			} else {
				H[i][j] = big.NewRat(1, 1)
			}
		}
	}

	// hPowers[i] = h^(i+1).
	hPowers := make([]*big.Rat, m)
	hPowers[0] = h
	for i := 1; i < m; i++ {
		hPowers[i] = new(big.Rat).Mul(h, hPowers[i-1])
	}
	for i := 0; i < m; i++ {
		H[i][0].Sub(H[i][0], hPowers[i])
		H[m-1][i].Sub(H[m-1][i], hPowers[m-i-1])
	}
	if h.Cmp(big.NewRat(1, 2)) > 0 {
		t := new(big.Rat).Mul(h, big.NewRat(2, 1))
		t.Sub(t, big.NewRat(1, 1))
		H[m-1][0].Add(H[m-1][0], ratPow(t, m))
	}

	for i := 0; i < m; i++ {
		for j := 0; j <= i; j++ {
			// Divide by (i-j+1)!.
			f := new(big.Int).MulRange(1, int64(i-j+1))
			H[i][j].Quo(H[i][j], new(big.Rat).SetInt(f))
		}
	}
	return H, nil
}

func ratPow(x *big.Rat, n int) *big.Rat {
	num := new(big.Int).Exp(x.Num(), big.NewInt(int64(n)), nil)
	den := new(big.Int).Exp(x.Denom(), big.NewInt(int64(n)), nil)
	return new(big.Rat).SetFrac(num, den)
}

func ksExact(H [][]*big.Rat, k, n int) float64 {
	P := ratMatPow(H, n)
	p := new(big.Rat).Set(P[k-1][k-1])
	bn := big.NewRat(int64(n), 1)
	for i := 1; i <= n; i++ {
		p.Mul(p, big.NewRat(int64(i), 1))
		p.Quo(p, bn)
	}
	f, _ := p.Float64()
	return f
}

func ratMatMul(a, b [][]*big.Rat) [][]*big.Rat {
	m := len(a)
	out := make([][]*big.Rat, m)
	var t big.Rat
	for i := range out {
		out[i] = make([]*big.Rat, m)
		for j := range out[i] {
			sum := new(big.Rat)
			for l := 0; l < m; l++ {
				if a[i][l].Sign() == 0 || b[l][j].Sign() == 0 {
					continue
				}
				sum.Add(sum, t.Mul(a[i][l], b[l][j]))
			}
			out[i][j] = sum
		}
	}
	return out
}

// ratMatPow returns a^n for n >= 1 by repeated squaring.
func ratMatPow(a [][]*big.Rat, n int) [][]*big.Rat {
	var result [][]*big.Rat
	base := a
	for {
		if n&1 != 0 {
			if result == nil {
				result = base
			} else {
				result = ratMatMul(result, base)
			}
		}
		n >>= 1
		if n == 0 {
			return result
		}
		base = ratMatMul(base, base)
	}
}

// ksScale is the decimal exponent by which matrix powers are rescaled
// when their central entry grows too large.
const ksScale = 140

func ksRounded(H [][]*big.Rat, k, n int) float64 {
	m := len(H)
	A := mat.NewDense(m, m, nil)
	for i := range H {
		for j := range H[i] {
			f, _ := H[i][j].Float64()
			A.Set(i, j, f)
		}
	}
	V, e := floatMatPow(A, n, k-1)
	s := V.At(k-1, k-1)
	fn := float64(n)
	for i := 1; i <= n; i++ {
		s *= float64(i) / fn
		if s < 1e-140 {
			s *= 1e140
			e -= ksScale
		}
	}
	return s * math.Pow(10, float64(e))
}

// floatMatPow returns a matrix V and decimal exponent e such that
// a^n = V * 10^e. The exponent is raised whenever the diagonal entry
// (c, c) exceeds 1e140.
func floatMatPow(a *mat.Dense, n, c int) (*mat.Dense, int) {
	if n == 1 {
		return mat.DenseCopyOf(a), 0
	}
	v, ev := floatMatPow(a, n/2, c)
	b := new(mat.Dense)
	b.Mul(v, v)
	eb := 2 * ev
	if n%2 == 1 {
		t := new(mat.Dense)
		t.Mul(a, b)
		b = t
	}
	if b.At(c, c) > 1e140 {
		b.Scale(1e-140, b)
		eb += ksScale
	}
	return b, eb
}
