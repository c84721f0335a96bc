// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package wrangle

import (
	"fmt"
	"testing"

	"github.com/cockroachdb/crlib/testutils/leaktest"
	"github.com/cockroachdb/wrangle/alloc"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, Config{
		Source: "source", Seed: 0, Depth: 7, Width: 100, ChunkSize: alloc.DefaultChunkSize,
	}, cfg)

	cfg = Config{Depth: -1, Width: -2, ChunkSize: -3}
	err := cfg.Validate()
	require.Error(t, err)
	require.Equal(t,
		"Source must not be empty\nDepth (-1) must be >= 0\nWidth (-2) must be >= 0\nChunkSize (-3) must be >= 0\n",
		err.Error())

	cfg = Config{Source: "s"}
	require.NoError(t, cfg.Validate())
}

func TestParseStrategy(t *testing.T) {
	for _, s := range Strategies {
		got, err := ParseStrategy(s.String())
		require.NoError(t, err)
		require.Equal(t, s, got)
	}
	_, err := ParseStrategy("bump")
	require.ErrorContains(t, err, `unknown strategy "bump"`)

	require.False(t, Owned.UsesArena())
	require.True(t, Arena.UsesArena())
	require.True(t, ArenaNoRelease.UsesArena())
	require.Equal(t, "unknown", Strategy(42).String())
}

func TestParseHashKind(t *testing.T) {
	for _, k := range []HashKind{HashXXHash, HashBlake2b} {
		got, err := ParseHashKind(k.String())
		require.NoError(t, err)
		require.Equal(t, k, got)
	}
	_, err := ParseHashKind("md5")
	require.ErrorContains(t, err, `unknown hash "md5"`)
}

func TestNewHasher(t *testing.T) {
	for _, tc := range []struct {
		kind HashKind
		size int
	}{
		{HashXXHash, 8},
		{HashBlake2b, 32},
	} {
		t.Run(tc.kind.String(), func(t *testing.T) {
			h, sum := NewHasher(tc.kind)
			empty := sum()
			require.Len(t, empty, tc.size)
			_, _ = h.WriteString("x")
			require.NotEqual(t, empty, sum())

			// Write and WriteString feed the same bytes.
			h2, sum2 := NewHasher(tc.kind)
			_, _ = h2.Write([]byte("x"))
			require.Equal(t, sum(), sum2())
		})
	}
}

func TestRunCycle(t *testing.T) {
	defer leaktest.AfterTest(t)()

	configs := []Config{
		DefaultConfig(),
		{Source: "source", Seed: 1},
		{Source: "the quick brown fox", Seed: 42, Depth: 4, Width: 10},
		{Source: "x", Seed: 7, Depth: 3, Width: 1, ChunkSize: 64},
	}
	for _, cfg := range configs {
		for _, hk := range []HashKind{HashXXHash, HashBlake2b} {
			t.Run(fmt.Sprintf("%s/%s", cfg, hk), func(t *testing.T) {
				var first Cycle
				for i, s := range Strategies {
					c := RunCycle(cfg, s, hk)
					require.Equal(t, s, c.Strategy)
					require.Zero(t, c.Counts.Null)
					require.NotZero(t, c.Counts.Stmts())
					require.Equal(t, s == Arena, c.Released)
					if s.UsesArena() {
						require.NotZero(t, c.Arena.Allocs)
						require.LessOrEqual(t, c.Arena.SizeInUse, c.Arena.Capacity)
					} else {
						require.Zero(t, c.Arena)
					}
					if i == 0 {
						first = c
						continue
					}
					require.Equal(t, first.Sum, c.Sum, "%s vs %s", first.Strategy, s)
					require.Equal(t, first.Counts, c.Counts, "%s vs %s", first.Strategy, s)
				}

				// Reproducible across runs.
				again := RunCycle(cfg, Owned, hk)
				require.Equal(t, first.Sum, again.Sum)
			})
		}
	}
}

func TestRunCycleDepthZero(t *testing.T) {
	c := RunCycle(Config{Source: "source", Seed: 1}, Arena, HashXXHash)
	require.Equal(t, 1, c.Counts.Total()-c.Counts.Variable)
	require.Equal(t, 1, c.Counts.VarDecl)
	require.LessOrEqual(t, c.Counts.Inits, 1)
}

func TestRunCycleSeedsDiffer(t *testing.T) {
	sums := make(map[string]uint64)
	for seed := uint64(0); seed < 32; seed++ {
		cfg := Config{Source: "the quick brown fox jumps over the lazy dog", Seed: seed, Depth: 5, Width: 8}
		c := RunCycle(cfg, Owned, HashXXHash)
		sums[string(c.Sum)] = seed
	}
	// Not every seed has to produce a distinct tree, but most must.
	require.Greater(t, len(sums), 16)
}

func TestRunCycleInvalid(t *testing.T) {
	require.Panics(t, func() { RunCycle(Config{}, Owned, HashXXHash) })
	require.Panics(t, func() { RunCycle(DefaultConfig(), Strategy(9), HashXXHash) })
	require.Panics(t, func() { RunCycle(DefaultConfig(), Owned, HashKind(9)) })
	require.Panics(t, func() { NewHasher(numHashKinds) })
	require.Equal(t, "unknown", HashKind(9).String())
}
