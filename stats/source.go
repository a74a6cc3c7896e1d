// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math/rand/v2"
	"sync"

	"gonum.org/v1/gonum/mathext/prng"
)

// A Source supplies the uniform, normal and exponential deviates
// that samplers consume. A Source is not safe for concurrent use.
type Source interface {
	// Float64 returns a uniform deviate in [0, 1).
	Float64() float64
	// NormFloat64 returns a standard normal deviate.
	NormFloat64() float64
	// ExpFloat64 returns an exponential deviate with rate 1.
	ExpFloat64() float64
	// Seed resets the generator state to seed.
	Seed(seed uint64)
}

// mtSource is a Source backed by a 32-bit Mersenne Twister.
type mtSource struct {
	*rand.Rand
	mt *prng.MT19937
}

// NewSource returns a new Mersenne Twister Source seeded with seed.
// Two Sources created with the same seed produce the same sequence.
func NewSource(seed uint64) Source {
	mt := prng.NewMT19937()
	mt.Seed(seed)
	return &mtSource{Rand: rand.New(mt), mt: mt}
}

func (s *mtSource) Seed(seed uint64) {
	s.mt.Seed(seed)
}

// LockedSource is a Source that is safe for concurrent use. Each
// deviate is drawn under a lock, so distributions sharing a
// LockedSource may be sampled from multiple goroutines. The sequence
// each goroutine sees depends on scheduling.
type LockedSource struct {
	mu sync.Mutex
	s  Source
}

// NewLockedSource returns a LockedSource wrapping src.
func NewLockedSource(src Source) *LockedSource {
	return &LockedSource{s: src}
}

func (s *LockedSource) Float64() float64 {
	s.mu.Lock()
	v := s.s.Float64()
	s.mu.Unlock()
	return v
}

func (s *LockedSource) NormFloat64() float64 {
	s.mu.Lock()
	v := s.s.NormFloat64()
	s.mu.Unlock()
	return v
}

func (s *LockedSource) ExpFloat64() float64 {
	s.mu.Lock()
	v := s.s.ExpFloat64()
	s.mu.Unlock()
	return v
}

func (s *LockedSource) Seed(seed uint64) {
	s.mu.Lock()
	s.s.Seed(seed)
	s.mu.Unlock()
}
