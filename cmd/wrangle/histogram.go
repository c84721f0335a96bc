// Copyright 2018 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"fmt"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

const (
	minLatency = 100 * time.Nanosecond
	maxLatency = 10 * time.Second
)

func newHistogram() *hdrhistogram.Histogram {
	return hdrhistogram.New(minLatency.Nanoseconds(), maxLatency.Nanoseconds(), 1)
}

// namedHistogram records cycle latencies for one strategy. The current
// histogram covers the period since the last tick; the cumulative one covers
// the whole run.
type namedHistogram struct {
	name       string
	current    *hdrhistogram.Histogram
	cumulative *hdrhistogram.Histogram
}

func newNamedHistogram(name string) *namedHistogram {
	return &namedHistogram{
		name:       name,
		current:    newHistogram(),
		cumulative: newHistogram(),
	}
}

func (w *namedHistogram) Record(elapsed time.Duration) {
	if elapsed < minLatency {
		elapsed = minLatency
	} else if elapsed > maxLatency {
		elapsed = maxLatency
	}

	if err := w.current.RecordValue(elapsed.Nanoseconds()); err != nil {
		// Note that a histogram only drops recorded values that are out of range,
		// but we clamp the latency value to the configured range to prevent such
		// drops. This code path should never happen.
		panic(fmt.Sprintf(`%s: recording value: %s`, w.name, err))
	}
}

// tick hands the histogram of the period since the last tick to fn and starts
// a new period.
func (w *namedHistogram) tick(fn func(h *hdrhistogram.Histogram)) {
	h := w.current
	w.current = newHistogram()
	w.cumulative.Merge(h)
	fn(h)
}

// quantile returns the latency at quantile q (0-100) of h.
func quantile(h *hdrhistogram.Histogram, q float64) time.Duration {
	return time.Duration(h.ValueAtQuantile(q))
}
