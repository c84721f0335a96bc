// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/crlib/crhumanize"
	"github.com/cockroachdb/crlib/crstrings"
	"github.com/cockroachdb/wrangle"
	"github.com/cockroachdb/wrangle/alloc"
	"github.com/cockroachdb/wrangle/ast"
	"github.com/spf13/cobra"
)

var (
	dumpStrategy string
	dumpSpans    bool
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "print a random tree before and after wrangling",
	Long: `
Builds one random tree and prints it, wrangles it and prints it again,
followed by the digest, node counts and, for arena strategies, arena usage.
Use small --depth and --width values; the default configuration produces
large trees.
`,
	Args: cobra.NoArgs,
	RunE: runDump,
}

func runDump(cmd *cobra.Command, args []string) error {
	hashKind, err := options()
	if err != nil {
		return err
	}
	s, err := wrangle.ParseStrategy(dumpStrategy)
	if err != nil {
		return err
	}
	return dump(os.Stdout, s, hashKind)
}

func dump(w io.Writer, s wrangle.Strategy, hashKind wrangle.HashKind) error {
	var arena *alloc.Arena
	if s.UsesArena() {
		arena = alloc.NewArena(cfg.ChunkSize)
		if s == wrangle.Arena {
			defer arena.Release()
		}
	}
	c := ast.NewContext(arena)
	tree := ast.Generate(cfg.Source, cfg.Seed, cfg.Depth, cfg.Width, c)
	logger().Infof("built %s under %s", ast.Count(&tree), s)

	format := (*ast.Stmt).String
	if dumpSpans {
		format = ast.Dump
	}
	fmt.Fprintf(w, "before%s:\n%s", crstrings.If(dumpSpans, " (with spans)"), format(&tree))

	h, sum := wrangle.NewHasher(hashKind)
	ast.Wrangle(&tree, c, h)
	fmt.Fprintf(w, "after:\n%s", format(&tree))

	counts := ast.Count(&tree)
	fmt.Fprintf(w, "%s %x\n", hashKind, sum())
	fmt.Fprintf(w, "nodes %d: %s\n", counts.Total(), counts)
	fmt.Fprintf(w, "names %d\n", len(ast.Names(&tree)))
	if arena != nil {
		m := arena.Metrics()
		fmt.Fprintf(w, "arena %s in use of %s (%s) in %d chunks, %d allocations\n",
			crhumanize.Bytes(m.SizeInUse, crhumanize.Compact, crhumanize.OmitI),
			crhumanize.Bytes(m.Capacity, crhumanize.Compact, crhumanize.OmitI),
			utilization(m),
			m.NumChunks, m.Allocs)
	}
	return nil
}
