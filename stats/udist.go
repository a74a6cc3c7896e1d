// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// MannWhitneyUDist is the discrete distribution of the Mann-Whitney U
// statistic for a pair of samples of sizes N1 and N2 with no ties.
//
// Mann, Henry B.; Whitney, Donald R. (1947). "On a Test of Whether one
// of Two Random Variables is Stochastically Larger than the Other".
// Annals of Mathematical Statistics 18 (1): 50–60.
type MannWhitneyUDist struct {
	sampler
	n1, n2 int
}

// NewMannWhitneyUDist returns the U distribution for samples of sizes
// n1 and n2, which must be positive.
func NewMannWhitneyUDist(n1, n2 int, src Source) (*MannWhitneyUDist, error) {
	if n1 <= 0 || n2 <= 0 {
		return nil, invalidParam("mann-whitney", "sample sizes %d, %d must be positive", n1, n2)
	}
	return &MannWhitneyUDist{sampler{src}, n1, n2}, nil
}

func (d *MannWhitneyUDist) N1() int { return d.n1 }
func (d *MannWhitneyUDist) N2() int { return d.n2 }

// p returns the PMF for values of U from 0 up to and including the U
// argument.
//
// This runs in Θ(N1*N2*U) = O(N1²N2²) time.
func (d *MannWhitneyUDist) p(U int) []float64 {
	// Dynamic programming over the recurrence
	//
	//   p_{n,m}(U) = (n * p_{n-1,m}(U-m) + m * p_{n,m-1}(U)) / (n+m)
	//   p_{n,m}(U) = 0                           if U < 0
	//   p_{0,m}(U) = p{n,0}(U) = 1 / nCr(m+n, n) if U = 0
	//                          = 0               if U > 0
	//
	// (The paper has a typo: the first application of p is at
	// U-m, not U-M.)
	//
	// p_{n,m} = p_{m,n}, so only n <= m is computed, one row of m
	// at a time. Each U slice depends only on the same and smaller
	// U, so it is updated in place from the largest U down.

	N, M := d.n1, d.n2
	if N > M {
		N, M = M, N
	}

	memo := make([][]float64, N+1)
	for n := range memo {
		memo[n] = make([]float64, U+1)
	}

	for m := 0; m <= M; m++ {
		// p_{0,m} is zero except at U=0.
		memo[0][0] = 1

		nlim := min(N, m)
		for n := 1; n <= nlim; n++ {
			lp := memo[n-1] // p_{n-1,m}
			var rp []float64
			if n <= m-1 {
				rp = memo[n] // p_{n,m-1}
			} else {
				rp = memo[m-1] // p{m-1,n} and m==n
			}

			ulim := min(U, n*m)
			out := memo[n] // p_{n,m}
			nplusm := float64(n + m)
			for U1 := ulim; U1 >= 0; U1-- {
				l := 0.0
				if U1-m >= 0 {
					l = float64(n) * lp[U1-m]
				}
				r := float64(m) * rp[U1]
				out[U1] = (l + r) / nplusm
			}
		}
	}
	return memo[N]
}

// PMF returns Pr[U = u].
func (d *MannWhitneyUDist) PMF(u int) float64 {
	top := d.n1 * d.n2
	if u < 0 || u > top {
		return 0
	}
	// The distribution is symmetric about N1*N2/2.
	u = min(u, top-u)
	return d.p(u)[u]
}

func (d *MannWhitneyUDist) LogPMF(u int) float64 {
	return math.Log(d.PMF(u))
}

// CDF returns Pr[U <= u].
func (d *MannWhitneyUDist) CDF(u int) float64 {
	if u < 0 {
		return 0
	} else if u >= d.n1*d.n2 {
		return 1
	}

	// Sum whichever tail is smaller.
	flip := u >= (d.n1*d.n2+1)/2
	if flip {
		u = d.n1*d.n2 - u - 1
	}
	p := 0.0
	for _, pmf := range d.p(u) {
		p += pmf
	}
	if flip {
		p = 1 - p
	}
	return p
}

func (d *MannWhitneyUDist) InvCDF(p float64) (int, error) {
	return InvertDiscreteCDF(d, p)
}

// Probability returns Pr[u0 < U <= u1].
func (d *MannWhitneyUDist) Probability(u0, u1 int) (float64, error) {
	return DiscreteProbability(d, u0, u1)
}

func (d *MannWhitneyUDist) Mean() float64 {
	return float64(d.n1*d.n2) / 2
}

func (d *MannWhitneyUDist) Variance() float64 {
	return float64(d.n1*d.n2) * float64(d.n1+d.n2+1) / 12
}

func (d *MannWhitneyUDist) Support() IntSupport {
	return IntSupport{0, d.n1 * d.n2}
}

// Sample draws a variate by inverting the CDF at a uniform deviate.
func (d *MannWhitneyUDist) Sample() (int, error) {
	return sampleInversion(d.sampler, d.InvCDF)
}

func (d *MannWhitneyUDist) SampleN(n int) ([]int, error) {
	return sampleN(d.Sample, n)
}
