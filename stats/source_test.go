// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSource(t *testing.T) {
	draw := func(src Source) []float64 {
		var out []float64
		for i := 0; i < 5; i++ {
			out = append(out, src.Float64(), src.NormFloat64(), src.ExpFloat64())
		}
		return out
	}

	a, b := NewSource(123), NewSource(123)
	first := draw(a)
	require.Equal(t, first, draw(b))
	require.NotEqual(t, first, draw(NewSource(124)))

	a.Seed(123)
	require.Equal(t, first, draw(a))

	for i := 0; i < 1000; i++ {
		u := a.Float64()
		require.True(t, u >= 0 && u < 1)
		require.Greater(t, a.ExpFloat64(), 0.0)
	}
}

func TestLockedSource(t *testing.T) {
	src := NewLockedSource(NewSource(8))
	d, err := NewPoissonDist(60, src)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([][]int, 4)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			xs, err := d.SampleN(5000)
			if err != nil {
				t.Error(err)
				return
			}
			results[i] = xs
		}(i)
	}
	wg.Wait()

	var all []int
	for _, xs := range results {
		all = append(all, xs...)
	}
	require.Len(t, all, 20000)
	testMoments(t, "Poisson(60) concurrent", intsToFloats(all), 60, 60, 0.05)
}
