// Copyright 2018 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"log"
	"os"
	"time"

	"github.com/cockroachdb/wrangle"
	"github.com/spf13/cobra"
)

var (
	cfg        = wrangle.DefaultConfig()
	duration   time.Duration
	hashName   string
	iterations int
	strategies []string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "wrangle [command] (flags)",
	Short: "tree allocation benchmarking/introspection tool",
	Long:  ``,
}

func main() {
	log.SetFlags(0)

	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(
		benchCmd,
		dumpCmd,
	)

	for _, cmd := range []*cobra.Command{benchCmd, dumpCmd} {
		cmd.Flags().StringVar(
			&cfg.Source, "source", cfg.Source, "text that leaf names are taken from")
		cmd.Flags().Uint64Var(
			&cfg.Seed, "seed", cfg.Seed, "generator seed")
		cmd.Flags().IntVar(
			&cfg.Depth, "depth", cfg.Depth, "maximum nesting depth of the tree")
		cmd.Flags().IntVar(
			&cfg.Width, "width", cfg.Width, "maximum fan-out of lists and comma expressions")
		cmd.Flags().IntVar(
			&cfg.ChunkSize, "chunk-size", cfg.ChunkSize, "arena chunk size in bytes")
		cmd.Flags().StringVar(
			&hashName, "hash", wrangle.HashXXHash.String(), "hash to wrangle into (xxhash, blake2b)")
		cmd.Flags().BoolVarP(
			&verbose, "verbose", "v", false, "enable verbose logging")
	}

	benchCmd.Flags().StringSliceVarP(
		&strategies, "strategy", "s", []string{"owned", "arena", "arena-no-release"},
		"allocation strategies to run (owned, arena, arena-no-release)")
	benchCmd.Flags().DurationVarP(
		&duration, "duration", "d", 10*time.Second, "the duration to run each strategy (0, no limit)")
	benchCmd.Flags().IntVarP(
		&iterations, "iterations", "n", 0, "maximum number of cycles per strategy (0 means unlimited)")
	benchCmd.Flags().BoolVar(
		&benchPlot, "plot", false, "plot cycle latencies over the run")

	dumpCmd.Flags().StringVar(
		&dumpStrategy, "strategy", wrangle.Arena.String(), "allocation strategy to build the tree with")
	dumpCmd.Flags().BoolVar(
		&dumpSpans, "spans", false, "include node spans in the dump")

	if err := rootCmd.Execute(); err != nil {
		// Cobra has already printed the error message.
		os.Exit(1)
	}
}

func logger() wrangle.Logger {
	if verbose {
		return wrangle.DefaultLogger{}
	}
	return quietLogger{}
}

// quietLogger drops informational messages.
type quietLogger struct {
	wrangle.DefaultLogger
}

func (quietLogger) Infof(format string, args ...interface{}) {}

// options validates the flags shared by every command.
func options() (wrangle.HashKind, error) {
	if err := cfg.Validate(); err != nil {
		return 0, err
	}
	return wrangle.ParseHashKind(hashName)
}
