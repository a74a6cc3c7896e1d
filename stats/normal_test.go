// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalDist(t *testing.T) {
	d, err := NewNormalDist(0, 1, nil)
	require.NoError(t, err)
	testFunc(t, "StdNormal.PDF", d.PDF, map[float64]float64{
		-10000: 0,
		-1:     0.24197072451914337,
		0:      0.3989422804014327,
		1:      0.24197072451914337,
		10000:  0,
	})
	testFunc(t, "StdNormal.CDF", d.CDF, map[float64]float64{
		-10000: 0,
		-1:     0.15865525393145705,
		0:      0.5,
		1.96:   0.9750021048517795,
		10000:  1,
	})
	testFunc(t, "StdNormal.InvCDF", func(p float64) float64 {
		x, _ := d.InvCDF(p)
		return x
	}, map[float64]float64{
		0:     math.Inf(-1),
		0.025: -1.959963984540054,
		0.5:   0,
		0.975: 1.959963984540054,
		1:     math.Inf(1),
	})

	d, err = NewNormalDist(3, 2, nil)
	require.NoError(t, err)
	require.InDelta(t, math.Log(d.PDF(4.5)), d.LogPDF(4.5), 1e-12)
	require.InDelta(t, 0.5, d.CDF(3), 1e-15)
	testInvCDFBounds(t, "Normal(3, 2)", d)

	_, err = NewNormalDist(0, 0, nil)
	require.ErrorIs(t, err, ErrInvalidParameter)
	_, err = NewNormalDist(math.NaN(), 1, nil)
	require.ErrorIs(t, err, ErrInvalidParameter)
}

func TestNormalSample(t *testing.T) {
	d, err := NewNormalDist(-2, 3, NewSource(7))
	require.NoError(t, err)
	xs, err := d.SampleN(100000)
	require.NoError(t, err)
	testMoments(t, "Normal(-2, 3)", xs, -2, 9, 0.03)
}
