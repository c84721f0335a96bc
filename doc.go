// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package wrangle runs the build-and-wrangle cycle that compares owned and
// arena allocation of trees. The trees and the algorithm live in package ast,
// the allocation strategies in package alloc; this package decides which
// strategy and hash a cycle uses, when arenas are created and released, and
// measures each phase. cmd/wrangle drives it from the command line.
//
// A cycle with the default configuration:
//
//	cycle := wrangle.RunCycle(wrangle.DefaultConfig(), wrangle.Arena, wrangle.HashXXHash)
//	fmt.Printf("%x %s\n", cycle.Sum, cycle.Counts)
package wrangle
