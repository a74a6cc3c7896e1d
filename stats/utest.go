// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"

	"github.com/cockroachdb/errors"
)

// ErrSamplesEqual is returned by MannWhitneyUTest when all sample
// values are equal and the test is meaningless.
var ErrSamplesEqual = errors.New("all samples are equal")

// A MannWhitneyUTestResult is the result of a Mann-Whitney U-test.
type MannWhitneyUTestResult struct {
	// N1 and N2 are the sizes of the input samples.
	N1, N2 int

	// U is the value of the Mann-Whitney U statistic for this
	// test, generalized by counting ties as 0.5.
	//
	// Given the Cartesian product of the two samples, this is the
	// number of pairs in which the value from the first sample is
	// less than the value of the second, plus 0.5 times the
	// number of pairs where the values from the two samples are
	// equal. Hence, U is always an integer multiple of 0.5 (it is
	// a whole integer if there are no ties) in the range [0, N1*N2].
	//
	// The value of U given here is always the smaller of the two
	// possible values of U. The other U can be calculated as
	// N1*N2 - U.
	U float64

	// P is the two-tailed p-value of the Mann-Whitney test.
	P float64
}

// MannWhitneyExactLimit gives the largest sample size for which the
// exact U distribution will be used for the Mann-Whitney U-test.
//
// Computing the distribution for two 50 value samples takes a few
// milliseconds.
var MannWhitneyExactLimit = 50

// MannWhitneyUTest performs a Mann-Whitney U-test of the null
// hypothesis that two samples come from the same population against
// the alternative hypothesis that one sample tends to have larger or
// smaller values than the other.
//
// If there are no ties and both samples are no larger than
// MannWhitneyExactLimit, the p-value comes from MannWhitneyUDist.
// Otherwise it uses a normal approximation with both the tie
// correction and the continuity correction.
//
// This can fail with ErrSampleSize if either sample is empty or
// ErrSamplesEqual if all sample values are equal.
func MannWhitneyUTest(x1, x2 []float64) (*MannWhitneyUTestResult, error) {
	n1, n2 := len(x1), len(x2)
	if n1 == 0 || n2 == 0 {
		return nil, errors.WithStack(ErrSampleSize)
	}

	x1 = append([]float64(nil), x1...)
	x2 = append([]float64(nil), x2...)
	sort.Float64s(x1)
	sort.Float64s(x2)
	merged, labels := labeledMerge(x1, x2)

	// Rank sum of x1, with tied values sharing their average rank.
	R1 := 0.0
	hasTies := false
	for i := 0; i < len(merged); {
		rank1, nx1, v1 := i+1, 0, merged[i]
		for ; i < len(merged) && merged[i] == v1; i++ {
			if labels[i] == 1 {
				nx1++
			}
		}
		if nx1 != 0 {
			rank := float64(i+rank1) / 2
			R1 += rank * float64(nx1)
		}
		if i > rank1 {
			hasTies = true
		}
	}
	U1 := R1 - float64(n1*(n1+1))/2

	U2 := float64(n1*n2) - U1
	if U2 < U1 {
		U1, U2 = U2, U1
	}

	var p float64
	if !hasTies && n1 <= MannWhitneyExactLimit && n2 <= MannWhitneyExactLimit {
		if U1 == U2 {
			// Doubling CDF(U1) would count the mass at U1
			// twice. The whole distribution is at least as
			// extreme.
			p = 1
		} else {
			udist, err := NewMannWhitneyUDist(n1, n2, nil)
			if err != nil {
				return nil, err
			}
			p = udist.CDF(int(U1)) * 2
		}
	} else {
		t := tieCorrection(merged)
		N := float64(n1 + n2)
		μ_U := float64(n1*n2) / 2
		σ_U := math.Sqrt(float64(n1*n2) * ((N + 1) - t/(N*(N-1))) / 12)
		if σ_U == 0 {
			return nil, errors.WithStack(ErrSamplesEqual)
		}
		numer := U1 - μ_U
		numer -= sign(numer) * 0.5 // Continuity correction
		z := numer / σ_U
		p = 2 * math.Min(StdNormal.CDF(z), 1-StdNormal.CDF(z))
	}

	return &MannWhitneyUTestResult{N1: n1, N2: n2, U: U1, P: p}, nil
}

// labeledMerge merges sorted lists x1 and x2 into sorted list merged.
// labels[i] is 1 or 2 depending on whether merged[i] is a value from
// x1 or x2, respectively.
func labeledMerge(x1, x2 []float64) (merged []float64, labels []byte) {
	merged = make([]float64, 0, len(x1)+len(x2))
	labels = make([]byte, 0, len(x1)+len(x2))

	i, j := 0, 0
	for i < len(x1) && j < len(x2) {
		if x1[i] < x2[j] {
			merged, labels = append(merged, x1[i]), append(labels, 1)
			i++
		} else {
			merged, labels = append(merged, x2[j]), append(labels, 2)
			j++
		}
	}
	for ; i < len(x1); i++ {
		merged, labels = append(merged, x1[i]), append(labels, 1)
	}
	for ; j < len(x2); j++ {
		merged, labels = append(merged, x2[j]), append(labels, 2)
	}
	return
}

// tieCorrection computes the tie correction factor Σ_j (t_j³ - t_j)
// where t_j is the number of ties in the j'th rank.
func tieCorrection(xs []float64) float64 {
	t := 0
	for i := 0; i < len(xs); {
		i1, v1 := i, xs[i]
		for ; i < len(xs) && xs[i] == v1; i++ {
		}
		run := i - i1
		t += run*run*run - run
	}
	return float64(t)
}

func sign(x float64) float64 {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
