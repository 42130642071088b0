// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package harness

import (
	"math"
	"strconv"

	"github.com/pingcap/errors"

	"golang.org/x/benchmarks/gcpause/internal/report"
)

const (
	// CycleSize is the number of iterations in one cycle.
	CycleSize = 1_000_000

	// MaxMutators bounds the mutator count. Every worker holds an OS
	// thread for its whole run and the runtime aborts at 10000 threads.
	MaxMutators = 4096

	maxMillionCycles = math.MaxInt64 / CycleSize
)

// ErrUsage reports a command line with the wrong number of arguments.
var ErrUsage = errors.New("wrong number of arguments")

// Config is a fully resolved run.
type Config struct {
	Mutators      int
	MillionCycles int64
	Format        report.Format
}

// Iterations is the number of measured iterations every worker performs.
func (c Config) Iterations() int64 {
	return c.MillionCycles * CycleSize
}

// ParseArgs resolves the two positional arguments, the mutator count and the
// cycle count in millions. The returned Config uses the default format.
func ParseArgs(args []string) (Config, error) {
	if len(args) != 2 {
		return Config{}, ErrUsage
	}
	mutators, err := parseCount("mutator-count", args[0], MaxMutators)
	if err != nil {
		return Config{}, err
	}
	cycles, err := parseCount("million-cycles", args[1], maxMillionCycles)
	if err != nil {
		return Config{}, err
	}
	return Config{
		Mutators:      int(mutators),
		MillionCycles: cycles,
		Format:        report.Format{Mode: report.ModeMax, Unit: report.Microseconds},
	}, nil
}

// IsUsage reports whether err is, or wraps, ErrUsage.
func IsUsage(err error) bool {
	return errors.Cause(err) == ErrUsage
}

func parseCount(name, s string, limit uint64) (int64, error) {
	n, err := strconv.ParseUint(s, 10, 63)
	if err != nil {
		return 0, errors.Annotatef(err, "invalid %s %q", name, s)
	}
	if n > limit {
		return 0, errors.Errorf("%s %d exceeds the limit of %d", name, n, limit)
	}
	return int64(n), nil
}
