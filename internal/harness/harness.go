// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package harness runs one observer and any number of mutators side by
// side and reports each one's latency as soon as it finishes.
package harness

import (
	"fmt"
	"io"

	"github.com/pingcap/errors"

	"golang.org/x/benchmarks/gcpause/internal/clock"
	"golang.org/x/benchmarks/gcpause/internal/latency"
	"golang.org/x/benchmarks/gcpause/internal/log"
	"golang.org/x/benchmarks/gcpause/internal/par"
	"golang.org/x/benchmarks/gcpause/internal/report"
	"golang.org/x/benchmarks/gcpause/internal/thread"
)

// Result is what one worker measured.
type Result struct {
	Role   latency.Role
	Stats  latency.Statistics
	Thread int // OS thread id, 0 if unknown
}

// Banner returns the line printed before any worker starts.
func Banner(cfg Config) string {
	return fmt.Sprintf("Running %d mutators and 1 non-mutator for %d million cycles...", cfg.Mutators, cfg.MillionCycles)
}

// Run writes the banner to out, runs the mutators and the observer
// concurrently, and lets each write its own line to out when done. Mutators
// start first, in index order, and the observer last; they are joined in the
// same order. out must tolerate concurrent writes; lines appear in
// completion order. The results are in start order.
func Run(cfg Config, out io.Writer, clk clock.Clock) ([]Result, error) {
	if _, err := io.WriteString(out, Banner(cfg)+"\n"); err != nil {
		return nil, errors.Trace(err)
	}
	log.Printf("%d workers, %d iterations each, %s report in %s", cfg.Mutators+1, cfg.Iterations(), cfg.Format.Mode, cfg.Format.Unit)

	results := make([]Result, cfg.Mutators+1)
	var g par.Group
	for i := 0; i < cfg.Mutators; i++ {
		w := &latency.Worker{Role: latency.Mutator(i), Iterations: cfg.Iterations(), Clock: clk}
		g.Add(task(w, &results[i], cfg.Format, out))
	}
	w := &latency.Worker{Role: latency.Observer(), Iterations: cfg.Iterations(), Clock: clk}
	g.Add(task(w, &results[cfg.Mutators], cfg.Format, out))

	if err := g.Run(); err != nil {
		return results, errors.Annotate(err, "writing report")
	}
	return results, nil
}

// task returns the body of one worker goroutine. r is written only by that
// goroutine and read after the join.
func task(w *latency.Worker, r *Result, f report.Format, out io.Writer) func() error {
	return func() error {
		tid, unpin := thread.Pin()
		defer unpin()

		s := w.Run()
		err := f.Write(out, w.Role, s)
		*r = Result{Role: w.Role, Stats: s, Thread: tid}

		l := log.With("worker", w.Role.String(), "tid", tid)
		if s.Anomalies > 0 {
			l.Debugw("clock went backward", "count", s.Anomalies)
		}
		l.Debugw("finished", "samples", s.Samples, "worst", s.Max, "total", s.Total)
		return err
	}
}
