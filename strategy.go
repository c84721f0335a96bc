// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package wrangle

import (
	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/wrangle/ast"
	"github.com/minio/blake2b-simd"
)

// Strategy selects how a cycle allocates its tree and what happens to that
// storage afterwards.
type Strategy uint8

const (
	// Owned allocates every node independently on the heap; the tree is
	// dropped at the end of the cycle and collected like any other garbage.
	Owned Strategy = iota
	// Arena allocates every node from one arena per cycle and releases the
	// arena at the end of the cycle.
	Arena
	// ArenaNoRelease allocates like Arena but abandons the arena without
	// releasing it, isolating the cost of building and wrangling from the cost
	// of tearing down.
	ArenaNoRelease
	numStrategies
)

// Strategies lists every strategy.
var Strategies = []Strategy{Owned, Arena, ArenaNoRelease}

var strategyNames = [numStrategies]string{
	Owned:          "owned",
	Arena:          "arena",
	ArenaNoRelease: "arena-no-release",
}

// String implements fmt.Stringer.
func (s Strategy) String() string {
	if s >= numStrategies {
		return "unknown"
	}
	return strategyNames[s]
}

// SafeValue implements redact.SafeValue.
func (Strategy) SafeValue() {}

// UsesArena returns true for the strategies that allocate from an arena.
func (s Strategy) UsesArena() bool {
	return s == Arena || s == ArenaNoRelease
}

// ParseStrategy returns the strategy named s.
func ParseStrategy(s string) (Strategy, error) {
	for i, name := range strategyNames {
		if name == s {
			return Strategy(i), nil
		}
	}
	return 0, errors.Newf("unknown strategy %q (expected one of owned, arena, arena-no-release)", s)
}

// HashKind selects the hash function wrangling feeds.
type HashKind uint8

const (
	// HashXXHash is xxHash64, the default.
	HashXXHash HashKind = iota
	// HashBlake2b is BLAKE2b-256.
	HashBlake2b
	numHashKinds
)

// String implements fmt.Stringer.
func (k HashKind) String() string {
	switch k {
	case HashXXHash:
		return "xxhash"
	case HashBlake2b:
		return "blake2b"
	default:
		return "unknown"
	}
}

// SafeValue implements redact.SafeValue.
func (HashKind) SafeValue() {}

// ParseHashKind returns the hash kind named s.
func ParseHashKind(s string) (HashKind, error) {
	switch s {
	case "xxhash":
		return HashXXHash, nil
	case "blake2b":
		return HashBlake2b, nil
	default:
		return 0, errors.Newf("unknown hash %q (expected xxhash or blake2b)", s)
	}
}

// accumulator is an ast.Hasher that can report its digest.
type accumulator interface {
	ast.Hasher
	Sum(b []byte) []byte
}

// NewHasher returns a fresh hasher of the given kind, along with a function
// returning its current digest. It panics on an unknown kind.
func NewHasher(k HashKind) (ast.Hasher, func() []byte) {
	var h accumulator
	switch k {
	case HashXXHash:
		h = xxhash.New()
	case HashBlake2b:
		h = ast.HashWriter{Hash: blake2b.New256()}
	default:
		panic(errors.AssertionFailedf("unknown hash kind %d", k))
	}
	return h, func() []byte { return h.Sum(nil) }
}
