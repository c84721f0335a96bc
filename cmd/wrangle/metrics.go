// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"time"

	"github.com/cockroachdb/crlib/crhumanize"
	"github.com/cockroachdb/wrangle"
	"github.com/cockroachdb/wrangle/alloc"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// benchMetrics collects the counters and phase histograms of a bench run.
// The report reads them back rather than keeping its own tallies.
type benchMetrics struct {
	registry *prometheus.Registry

	cycles     *prometheus.CounterVec
	nodes      *prometheus.CounterVec
	arenaBytes *prometheus.CounterVec
	phases     *prometheus.HistogramVec
}

const (
	phaseBuild    = "build"
	phaseWrangle  = "wrangle"
	phaseTeardown = "teardown"
)

func newBenchMetrics() *benchMetrics {
	m := &benchMetrics{
		registry: prometheus.NewRegistry(),
		cycles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wrangle_cycles_total",
			Help: "Number of build-and-wrangle cycles run.",
		}, []string{"strategy"}),
		nodes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wrangle_nodes_total",
			Help: "Number of tree nodes built and wrangled.",
		}, []string{"strategy"}),
		arenaBytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wrangle_arena_bytes_total",
			Help: "Arena bytes in use at the end of each cycle.",
		}, []string{"strategy"}),
		phases: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "wrangle_phase_duration_seconds",
			Help:    "Duration of each phase of a cycle.",
			Buckets: prometheus.ExponentialBuckets(1e-7, 4, 14),
		}, []string{"strategy", "phase"}),
	}
	m.registry.MustRegister(m.cycles, m.nodes, m.arenaBytes, m.phases)
	return m
}

func (m *benchMetrics) observe(c *wrangle.Cycle) {
	s := c.Strategy.String()
	m.cycles.WithLabelValues(s).Inc()
	m.nodes.WithLabelValues(s).Add(float64(c.Counts.Total()))
	m.arenaBytes.WithLabelValues(s).Add(float64(c.Arena.SizeInUse))
	m.phases.WithLabelValues(s, phaseBuild).Observe(c.Build.Seconds())
	m.phases.WithLabelValues(s, phaseWrangle).Observe(c.Wrangle.Seconds())
	m.phases.WithLabelValues(s, phaseTeardown).Observe(c.Teardown.Seconds())
}

func (m *benchMetrics) counter(vec *prometheus.CounterVec, s wrangle.Strategy) float64 {
	metric := &dto.Metric{}
	if err := vec.WithLabelValues(s.String()).Write(metric); err != nil {
		return 0
	}
	return metric.GetCounter().GetValue()
}

// meanPhase returns the mean duration of a phase for a strategy.
func (m *benchMetrics) meanPhase(s wrangle.Strategy, phase string) time.Duration {
	metric := &dto.Metric{}
	h, err := m.phases.GetMetricWithLabelValues(s.String(), phase)
	if err != nil {
		return 0
	}
	if err := h.(prometheus.Metric).Write(metric); err != nil {
		return 0
	}
	count := metric.GetHistogram().GetSampleCount()
	if count == 0 {
		return 0
	}
	return time.Duration(metric.GetHistogram().GetSampleSum() / float64(count) * float64(time.Second))
}

// families returns the number of metric series gathered per family name.
func (m *benchMetrics) families() (map[string]int, error) {
	mfs, err := m.registry.Gather()
	if err != nil {
		return nil, err
	}
	res := make(map[string]int, len(mfs))
	for _, mf := range mfs {
		res[mf.GetName()] = len(mf.GetMetric())
	}
	return res, nil
}

// utilization formats the share of an arena's capacity in use, e.g. "87.5%".
func utilization(m alloc.Metrics) string {
	return string(crhumanize.Float(100*m.Utilization(), 1)) + "%"
}
