// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package alloc

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/wrangle/internal/invariants"
)

// DefaultChunkSize is the default chunk size for new arenas (64 KiB).
const DefaultChunkSize = 64 << 10

// Arena is a region shared by a set of typed slabs. Values handed out by the
// slabs live until the arena is released; there is no way to free one of
// them earlier. An Arena is not safe for concurrent use.
//
// Memory is kept in per-type chunks rather than one byte buffer so that the
// garbage collector can see pointers stored inside arena values.
type Arena struct {
	chunkSize int
	slabs     []slab
	released  bool
	closed    invariants.CloseChecker
}

// slab is the type-erased view an Arena has of a Slab[T].
type slab interface {
	reset()
	release()
	addMetrics(m *Metrics)
}

// NewArena creates a new Arena whose slabs grow in chunks of roughly
// chunkSize bytes. If chunkSize <= 0, DefaultChunkSize is used.
func NewArena(chunkSize int) *Arena {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Arena{chunkSize: chunkSize}
}

// ChunkSize returns the chunk size used by this arena's slabs.
func (a *Arena) ChunkSize() int {
	return a.chunkSize
}

// Released returns true once Release has been called.
func (a *Arena) Released() bool {
	return a.released
}

// Reset forgets every allocation made from the arena but keeps the chunks for
// reuse. Values previously handed out must no longer be used.
func (a *Arena) Reset() {
	a.panicIfReleased()
	for _, s := range a.slabs {
		s.reset()
	}
}

// Release drops every chunk of every slab in one step and makes the arena
// unusable. Any subsequent allocation panics. Values previously handed out
// must no longer be used; in invariant builds their storage is zeroed to make
// such use visible.
func (a *Arena) Release() {
	a.closed.Close()
	for _, s := range a.slabs {
		s.release()
	}
	a.slabs = nil
	a.released = true
}

func (a *Arena) register(s slab) {
	a.panicIfReleased()
	a.slabs = append(a.slabs, s)
}

func (a *Arena) panicIfReleased() {
	if a.released {
		panic(errors.AssertionFailedf("arena: use after Release()"))
	}
}
