// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package wrangle

import (
	"time"

	"github.com/cockroachdb/crlib/crtime"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/wrangle/alloc"
	"github.com/cockroachdb/wrangle/ast"
)

// Cycle describes one build-and-wrangle cycle.
type Cycle struct {
	Config   Config
	Strategy Strategy
	Hash     HashKind
	// Sum is the digest of everything wrangling fed to the hasher.
	Sum []byte
	// Counts describes the tree after wrangling.
	Counts ast.Counts
	// Arena holds the arena metrics observed after wrangling and before the
	// arena was released. It is zero for Owned.
	Arena alloc.Metrics
	// Released is set when the cycle released its arena.
	Released bool

	Build    time.Duration
	Wrangle  time.Duration
	Teardown time.Duration
}

// Total returns the duration of the whole cycle.
func (c *Cycle) Total() time.Duration {
	return c.Build + c.Wrangle + c.Teardown
}

// RunCycle builds a random tree described by cfg under the given strategy,
// wrangles it into a hasher of the given kind and disposes of the tree the way
// the strategy prescribes. RunCycle panics if cfg is invalid; callers that take
// configuration from users should call cfg.Validate first.
func RunCycle(cfg Config, strategy Strategy, hashKind HashKind) Cycle {
	if err := cfg.Validate(); err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "invalid config"))
	}
	if strategy >= numStrategies {
		panic(errors.AssertionFailedf("unknown strategy %d", strategy))
	}
	if hashKind >= numHashKinds {
		panic(errors.AssertionFailedf("unknown hash kind %d", hashKind))
	}
	cycle := Cycle{Config: cfg, Strategy: strategy, Hash: hashKind}
	h, sum := NewHasher(hashKind)

	var arena *alloc.Arena
	if strategy.UsesArena() {
		chunkSize := cfg.ChunkSize
		if chunkSize == 0 {
			chunkSize = alloc.DefaultChunkSize
		}
		arena = alloc.NewArena(chunkSize)
	}

	start := crtime.NowMono()
	c := ast.NewContext(arena)
	tree := ast.Generate(cfg.Source, cfg.Seed, cfg.Depth, cfg.Width, c)
	cycle.Build = start.Elapsed()

	start = crtime.NowMono()
	ast.Wrangle(&tree, c, h)
	cycle.Wrangle = start.Elapsed()

	cycle.Sum = sum()
	cycle.Counts = ast.Count(&tree)
	if arena != nil {
		cycle.Arena = arena.Metrics()
	}

	// Owned trees and abandoned arenas are left to the garbage collector.
	start = crtime.NowMono()
	if strategy == Arena {
		arena.Release()
		cycle.Released = true
	}
	cycle.Teardown = start.Elapsed()
	return cycle
}
