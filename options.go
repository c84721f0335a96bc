// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package wrangle

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/wrangle/alloc"
)

// The fixed configuration the benchmarks run with. A fixed seed makes every
// iteration build the same tree.
const (
	DefaultSource = "source"
	DefaultSeed   = 0
	DefaultDepth  = 7
	DefaultWidth  = 100
)

// Config holds the parameters of the trees a cycle builds.
type Config struct {
	// Source is the text leaf names are taken from. It must not be empty.
	Source string
	// Seed seeds the generator.
	Seed uint64
	// Depth bounds the nesting of the tree.
	Depth int
	// Width bounds the fan-out of lists and comma expressions.
	Width int
	// ChunkSize is the chunk size of the arenas created for arena
	// strategies. Zero selects alloc.DefaultChunkSize.
	ChunkSize int
}

// DefaultConfig returns the configuration the benchmarks run with.
func DefaultConfig() Config {
	return Config{
		Source:    DefaultSource,
		Seed:      DefaultSeed,
		Depth:     DefaultDepth,
		Width:     DefaultWidth,
		ChunkSize: alloc.DefaultChunkSize,
	}
}

// Validate returns an error describing every invalid field.
func (c *Config) Validate() error {
	var buf strings.Builder
	if c.Source == "" {
		fmt.Fprintf(&buf, "Source must not be empty\n")
	}
	if c.Depth < 0 {
		fmt.Fprintf(&buf, "Depth (%d) must be >= 0\n", c.Depth)
	}
	if c.Width < 0 {
		fmt.Fprintf(&buf, "Width (%d) must be >= 0\n", c.Width)
	}
	if c.ChunkSize < 0 {
		fmt.Fprintf(&buf, "ChunkSize (%d) must be >= 0\n", c.ChunkSize)
	}
	if buf.Len() == 0 {
		return nil
	}
	return errors.New(buf.String())
}

// String implements fmt.Stringer.
func (c Config) String() string {
	return fmt.Sprintf("source=%q seed=%d depth=%d width=%d", c.Source, c.Seed, c.Depth, c.Width)
}
