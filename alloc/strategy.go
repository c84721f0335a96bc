// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package alloc provides the allocation strategies trees are built with. A
// Heap strategy gives every value its own heap object, owned by whoever holds
// the pointer and collected once nothing does. A Slab strategy carves values
// out of an Arena shared by every slab registered with it; nothing is freed
// individually and the whole region is reclaimed by Arena.Release.
//
// Code written against Strategy must not care which of the two it was handed:
// both hand out values that behave identically, and only the lifetime of the
// underlying storage differs.
package alloc

// Strategy allocates values of type T.
type Strategy[T any] interface {
	// New returns a pointer to a newly allocated copy of v.
	New(v T) *T
	// MakeSlice returns an empty slice with room for capacity elements.
	// Appending beyond the capacity moves the slice to the heap, so growable
	// sequences go through Seq, which asks the strategy for more room.
	MakeSlice(capacity int) []T
}

// For returns the strategy for values of type T drawing from a. A nil arena
// selects heap allocation.
func For[T any](a *Arena) Strategy[T] {
	if a == nil {
		return Heap[T]{}
	}
	return NewSlab[T](a)
}

// Heap is the owned allocation strategy: each call performs an independent
// heap allocation.
type Heap[T any] struct{}

var _ Strategy[int] = Heap[int]{}

// New implements Strategy.
func (Heap[T]) New(v T) *T {
	p := new(T)
	*p = v
	return p
}

// MakeSlice implements Strategy.
func (Heap[T]) MakeSlice(capacity int) []T {
	return make([]T, 0, capacity)
}
