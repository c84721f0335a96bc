// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package alloc

import "fmt"

// Metrics contains statistical information about an arena.
type Metrics struct {
	SizeInUse int // Bytes currently allocated
	Capacity  int // Total capacity in bytes
	NumChunks int // Number of chunks across all slabs
	NumSlabs  int // Number of registered slabs
	Allocs    int // Number of allocations since the last reset
}

// Utilization returns the ratio of bytes in use to total capacity (0.0 to 1.0).
// Returns 0.0 if the arena has no capacity.
func (m Metrics) Utilization() float64 {
	if m.Capacity == 0 {
		return 0
	}
	return float64(m.SizeInUse) / float64(m.Capacity)
}

// String implements fmt.Stringer.
func (m Metrics) String() string {
	return fmt.Sprintf("size=%d capacity=%d chunks=%d slabs=%d allocs=%d",
		m.SizeInUse, m.Capacity, m.NumChunks, m.NumSlabs, m.Allocs)
}

// Metrics returns a snapshot of arena statistics. A released arena reports
// zero for everything.
func (a *Arena) Metrics() Metrics {
	var m Metrics
	for _, s := range a.slabs {
		s.addMetrics(&m)
	}
	m.NumSlabs = len(a.slabs)
	return m
}

// Size returns the number of bytes currently allocated across all slabs.
func (a *Arena) Size() int {
	return a.Metrics().SizeInUse
}

// Capacity returns the capacity in bytes of all chunks held by the arena.
func (a *Arena) Capacity() int {
	return a.Metrics().Capacity
}
