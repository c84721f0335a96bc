// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package invariants holds assertions that are only checked when the module is
// built with the "invariants" or "race" build tags.
package invariants

// Integer is a constraint that permits any integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// SatSub returns a - b, or 0 if b > a. Unlike SafeSub it never panics: callers
// use it where flooring at zero is the intended behavior.
func SatSub[T Integer](a, b T) T {
	if a < b {
		return 0
	}
	return a - b
}
