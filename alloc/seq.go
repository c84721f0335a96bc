// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package alloc

import "slices"

// Seq is a growable ordered sequence whose storage comes from the strategy it
// was made with. Seq values are moved, not shared: after copying a Seq into
// another node the copy it was taken from must not be pushed to again.
type Seq[T any] struct {
	elems []T
	s     Strategy[T]
}

// MakeSeq returns an empty sequence with room for capacity elements, drawing
// storage from s.
func MakeSeq[T any](s Strategy[T], capacity int) Seq[T] {
	return Seq[T]{elems: s.MakeSlice(capacity), s: s}
}

// Push appends v, asking the sequence's strategy for a larger backing slice
// when the current one is full.
func (q *Seq[T]) Push(v T) {
	if len(q.elems) == cap(q.elems) {
		grown := q.s.MakeSlice(max(2*cap(q.elems), 4))
		q.elems = append(grown, q.elems...)
	}
	q.elems = append(q.elems, v)
}

// Len returns the number of elements.
func (q *Seq[T]) Len() int {
	return len(q.elems)
}

// At returns a pointer to the i-th element. The pointer is invalidated by the
// next Push.
func (q *Seq[T]) At(i int) *T {
	return &q.elems[i]
}

// All returns the elements as a slice sharing the sequence's storage.
func (q *Seq[T]) All() []T {
	return q.elems
}

// Reverse reverses the order of the elements in place.
func (q *Seq[T]) Reverse() {
	slices.Reverse(q.elems)
}
