// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Gcpause measures the worst latencies visible to the application for one
// goroutine that does not touch the heap and N goroutines that allocate on
// every iteration. Each goroutine runs on its own OS thread and times
// millions of iterations of a trivial loop; collector pauses show up as
// outliers in the worst case, and comparing the allocating threads with the
// idle one separates allocation cost from stop-the-world exposure.
//
// Usage:
//
//	gcpause [flags] <mutator-count> <million-cycles>
//
//	Flags:
//		-report string
//		statistics per worker = {max,summary} (default "max")
//		-unit string
//		latency unit = {usec,nsec} (default "usec")
//		-v
//		log activity to stderr
//
// Each worker prints one line as soon as it finishes, so the order of the
// lines varies from run to run.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/benchmarks/gcpause/internal/clock"
	"golang.org/x/benchmarks/gcpause/internal/harness"
	"golang.org/x/benchmarks/gcpause/internal/log"
	"golang.org/x/benchmarks/gcpause/internal/report"
)

const usage = "usage: gcpause [flags] <mutator-count> <million-cycles>"

func main() {
	code := run(os.Args[1:], os.Stdout, os.Stderr)
	log.Sync()
	os.Exit(code)
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("gcpause", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, usage)
		fs.PrintDefaults()
	}
	mode := fs.String("report", "max", "statistics per worker = {max,summary}")
	unit := fs.String("unit", "usec", "latency unit = {usec,nsec}")
	verbose := fs.Bool("v", false, "log activity to stderr")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	log.SetActivityLog(*verbose)
	log.TraceInvocation(append([]string{"gcpause"}, args...))

	cfg, err := harness.ParseArgs(fs.Args())
	if err != nil {
		if !harness.IsUsage(err) {
			fmt.Fprintf(stderr, "gcpause: %v\n", err)
		}
		fs.Usage()
		return 1
	}
	if cfg.Format.Mode, err = report.ParseMode(*mode); err != nil {
		fmt.Fprintf(stderr, "gcpause: %v\n", err)
		return 1
	}
	if cfg.Format.Unit, err = report.ParseUnit(*unit); err != nil {
		fmt.Fprintf(stderr, "gcpause: %v\n", err)
		return 1
	}

	if _, err := harness.Run(cfg, stdout, clock.NewMonotonic()); err != nil {
		log.Error(err)
		return 1
	}
	return 0
}
