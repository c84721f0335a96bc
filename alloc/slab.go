// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package alloc

import (
	"unsafe"

	"github.com/cockroachdb/wrangle/internal/invariants"
)

// Slab is the arena allocation strategy for values of type T. It bump
// allocates from chunks of T; a chunk is never moved or shrunk, so pointers
// into it stay valid until the arena is reset or released.
type Slab[T any] struct {
	arena *Arena
	// perChunk is the number of elements in a regular chunk.
	perChunk int
	// chunks holds every chunk obtained so far. chunks[idx] is the chunk being
	// carved from; its length is only accurate once sync has been called, cur
	// being authoritative in the meantime.
	chunks [][]T
	idx    int
	cur    []T
	allocs int
}

var _ Strategy[int] = (*Slab[int])(nil)

// NewSlab creates a slab for values of type T and registers it with a.
func NewSlab[T any](a *Arena) *Slab[T] {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		size = 1
	}
	s := &Slab[T]{
		arena:    a,
		perChunk: max(a.chunkSize/size, 1),
		idx:      -1,
	}
	a.register(s)
	return s
}

// New implements Strategy.
func (s *Slab[T]) New(v T) *T {
	buf := s.carve(1)
	buf[0] = v
	return &buf[0]
}

// MakeSlice implements Strategy. The returned slice's capacity is exact, so
// appending past it never writes into a neighbouring allocation.
func (s *Slab[T]) MakeSlice(capacity int) []T {
	if capacity <= 0 {
		s.arena.panicIfReleased()
		return nil
	}
	return s.carve(capacity)[:0]
}

func (s *Slab[T]) carve(n int) []T {
	s.arena.panicIfReleased()
	if cap(s.cur)-len(s.cur) < n {
		s.grow(n)
	}
	start := len(s.cur)
	s.cur = s.cur[:start+n]
	s.allocs++
	return s.cur[start : start+n : start+n]
}

// grow makes cur a chunk with room for at least n elements, reusing chunks
// retained by a previous reset before allocating a new one.
func (s *Slab[T]) grow(n int) {
	s.sync()
	for s.idx+1 < len(s.chunks) {
		s.idx++
		if c := s.chunks[s.idx]; cap(c) >= n {
			s.cur = c[:0]
			return
		}
	}
	s.chunks = append(s.chunks, make([]T, 0, max(s.perChunk, n)))
	s.idx = len(s.chunks) - 1
	s.cur = s.chunks[s.idx]
}

func (s *Slab[T]) sync() {
	if s.idx >= 0 {
		s.chunks[s.idx] = s.cur
	}
}

func (s *Slab[T]) reset() {
	s.sync()
	for i, c := range s.chunks {
		// Drop references held by stale values so the collector can reclaim
		// whatever they pointed to.
		clear(c)
		s.chunks[i] = c[:0]
	}
	s.idx = -1
	s.cur = nil
	s.allocs = 0
}

func (s *Slab[T]) release() {
	if invariants.Enabled {
		s.sync()
		for _, c := range s.chunks {
			clear(c)
		}
	}
	s.chunks = nil
	s.cur = nil
	s.idx = -1
}

func (s *Slab[T]) addMetrics(m *Metrics) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	s.sync()
	for _, c := range s.chunks {
		m.SizeInUse += len(c) * size
		m.Capacity += cap(c) * size
	}
	m.NumChunks += len(s.chunks)
	m.Allocs += s.allocs
}
