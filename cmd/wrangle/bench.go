// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/cockroachdb/crlib/crhumanize"
	"github.com/cockroachdb/crlib/crtime"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/wrangle"
	"github.com/guptarohit/asciigraph"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var benchPlot bool

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "run the build-and-wrangle benchmark",
	Long: `
Repeatedly builds a random tree and wrangles it under each of the given
allocation strategies, reporting per-second throughput while running and a
latency summary at the end. Every strategy must produce the same digest.
`,
	Args: cobra.NoArgs,
	RunE: runBench,
}

// plotWidth is the number of points in a latency plot.
const plotWidth = 72

// benchRun holds the results of running one strategy.
type benchRun struct {
	strategy wrangle.Strategy
	hist     *namedHistogram
	// latencies holds the latency of every cycle, in microseconds, for
	// plotting.
	latencies []float64
	first     wrangle.Cycle
	elapsed   time.Duration
}

func runBench(cmd *cobra.Command, args []string) error {
	hashKind, err := options()
	if err != nil {
		return err
	}
	var ss []wrangle.Strategy
	for _, name := range strategies {
		s, err := wrangle.ParseStrategy(name)
		if err != nil {
			return err
		}
		ss = append(ss, s)
	}
	if len(ss) == 0 {
		return errors.New("no strategies given")
	}
	if duration <= 0 && iterations <= 0 {
		return errors.New("one of --duration or --iterations must be positive")
	}

	log := logger()
	fmt.Printf("config %s\nhash %s\n", cfg, hashKind)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt)
	defer signal.Stop(done)

	metrics := newBenchMetrics()
	var runs []*benchRun
	for _, s := range ss {
		fmt.Printf("\nstrategy %s\n", s)
		run, interrupted := benchStrategy(s, hashKind, metrics, done)
		runs = append(runs, run)
		log.Infof("%s: %d cycles, first cycle: %s, arena: %s",
			s, run.hist.cumulative.TotalCount(), run.first.Counts, run.first.Arena)
		if interrupted {
			break
		}
	}

	if fams, err := metrics.families(); err == nil {
		names := make([]string, 0, len(fams))
		for name := range fams {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			log.Infof("metric %s: %d series", name, fams[name])
		}
	}

	fmt.Println()
	writeSummary(os.Stdout, runs, metrics)
	if benchPlot {
		for _, run := range runs {
			fmt.Println()
			fmt.Println(plotLatencies(run))
		}
	}
	return checkDigests(runs)
}

// benchStrategy runs cycles under s until the duration or iteration limit is
// reached, or until done fires. It returns true if it was interrupted.
func benchStrategy(
	s wrangle.Strategy, hashKind wrangle.HashKind, metrics *benchMetrics, done <-chan os.Signal,
) (*benchRun, bool) {
	run := &benchRun{
		strategy: s,
		hist:     newNamedHistogram(s.String()),
	}

	var (
		lastElapsed time.Duration
		ticks       int
	)
	tick := func(elapsed time.Duration) {
		if ticks%20 == 0 {
			fmt.Println("_elapsed____cycles/sec___nodes/sec___p50(µs)___p99(µs)")
		}
		ticks++
		run.hist.tick(func(h *hdrhistogram.Histogram) {
			cycles := h.TotalCount()
			dur := elapsed - lastElapsed
			fmt.Printf("%8s %12.1f %11.0f %9.1f %9.1f\n",
				time.Duration(elapsed.Seconds()+0.5)*time.Second,
				float64(cycles)/dur.Seconds(),
				float64(cycles)*float64(run.first.Counts.Total())/dur.Seconds(),
				micros(quantile(h, 50)),
				micros(quantile(h, 99)),
			)
		})
		lastElapsed = elapsed
	}

	start := crtime.NowMono()
	interrupted := false
	for i := 0; iterations <= 0 || i < iterations; i++ {
		c := wrangle.RunCycle(cfg, s, hashKind)
		if i == 0 {
			run.first = c
		}
		run.hist.Record(c.Total())
		run.latencies = append(run.latencies, micros(c.Total()))
		metrics.observe(&c)

		elapsed := start.Elapsed()
		if elapsed-lastElapsed >= time.Second {
			tick(elapsed)
		}
		if duration > 0 && elapsed >= duration {
			break
		}
		select {
		case <-done:
			interrupted = true
		default:
		}
		if interrupted {
			break
		}
	}
	run.elapsed = start.Elapsed()
	// Fold the last partial period into the cumulative histogram.
	run.hist.tick(func(*hdrhistogram.Histogram) {})

	cum := run.hist.cumulative
	fmt.Println("\n_elapsed___cycles/sec(cum)___ns/cycle(avg)")
	fmt.Printf("%7.1fs %17.1f %15.1f\n",
		run.elapsed.Seconds(),
		float64(cum.TotalCount())/run.elapsed.Seconds(),
		cum.Mean(),
	)
	return run, interrupted
}

func micros(d time.Duration) float64 {
	return float64(d) / float64(time.Microsecond)
}

// writeSummary renders one table row per strategy.
func writeSummary(w io.Writer, runs []*benchRun, metrics *benchMetrics) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{
		"Strategy", "Cycles", "Cycles/sec", "Nodes", "Build", "Wrangle", "Teardown",
		"p50", "p99", "Max", "Arena", "Util",
	})
	tbl.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, run := range runs {
		cum := run.hist.cumulative
		cycles := int64(metrics.counter(metrics.cycles, run.strategy))
		arena, util := "-", "-"
		if run.strategy.UsesArena() && cycles > 0 {
			perCycle := int64(metrics.counter(metrics.arenaBytes, run.strategy)) / cycles
			arena = string(crhumanize.Bytes(perCycle, crhumanize.Compact, crhumanize.OmitI))
			util = utilization(run.first.Arena)
		}
		tbl.Append([]string{
			run.strategy.String(),
			string(crhumanize.Count(cycles, crhumanize.Compact)),
			fmt.Sprintf("%.1f", float64(cycles)/run.elapsed.Seconds()),
			string(crhumanize.Count(int64(metrics.counter(metrics.nodes, run.strategy)), crhumanize.Compact)),
			metrics.meanPhase(run.strategy, phaseBuild).String(),
			metrics.meanPhase(run.strategy, phaseWrangle).String(),
			metrics.meanPhase(run.strategy, phaseTeardown).String(),
			quantile(cum, 50).String(),
			quantile(cum, 99).String(),
			time.Duration(cum.Max()).String(),
			arena,
			util,
		})
	}
	tbl.Render()
}

// plotLatencies plots the cycle latencies of a run, averaged into plotWidth
// buckets.
func plotLatencies(run *benchRun) string {
	values := bucketMeans(run.latencies, plotWidth)
	if len(values) == 0 {
		return fmt.Sprintf("%s: no cycles", run.strategy)
	}
	return asciigraph.Plot(values,
		asciigraph.Height(10),
		asciigraph.Caption(fmt.Sprintf("%s cycle latency (µs)", run.strategy)))
}

// bucketMeans averages values into at most n consecutive buckets.
func bucketMeans(values []float64, n int) []float64 {
	if len(values) <= n {
		return values
	}
	res := make([]float64, n)
	for i := range res {
		lo := i * len(values) / n
		hi := (i + 1) * len(values) / n
		var sum float64
		for _, v := range values[lo:hi] {
			sum += v
		}
		res[i] = sum / float64(hi-lo)
	}
	return res
}

// checkDigests verifies that every strategy wrangled the same tree.
func checkDigests(runs []*benchRun) error {
	if len(runs) == 0 {
		return nil
	}
	want := runs[0].first
	for _, run := range runs[1:] {
		if !bytes.Equal(run.first.Sum, want.Sum) {
			return errors.Newf("digest mismatch: %s produced %x, %s produced %x",
				want.Strategy, want.Sum, run.strategy, run.first.Sum)
		}
		if run.first.Counts != want.Counts {
			return errors.Newf("node count mismatch: %s produced %s, %s produced %s",
				want.Strategy, want.Counts, run.strategy, run.first.Counts)
		}
	}
	fmt.Printf("\ndigest %x\n", want.Sum)
	return nil
}
