// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package latency measures the time an application thread loses per
// iteration of a trivial loop, with or without allocating on every
// iteration. Comparing the worst cases of allocating and non-allocating
// loops running side by side exposes collector pauses.
package latency

import (
	"fmt"
	"math"
	"time"
)

// MaxDuration is the initial minimum of a fresh Statistics.
const MaxDuration = time.Duration(math.MaxInt64)

// Kind distinguishes the two worker roles.
type Kind int

const (
	// KindObserver workers time an empty loop body.
	KindObserver Kind = iota
	// KindMutator workers allocate one object per iteration.
	KindMutator
)

// Role identifies a worker for measurement and reporting.
type Role struct {
	Kind  Kind
	Index int // ordinal of a mutator, 0-based; unused for the observer
}

// Observer returns the role of the non-allocating baseline worker.
func Observer() Role {
	return Role{Kind: KindObserver}
}

// Mutator returns the role of the index'th allocating worker.
func Mutator(index int) Role {
	return Role{Kind: KindMutator, Index: index}
}

// Allocates reports whether workers in this role allocate per iteration.
func (r Role) Allocates() bool {
	return r.Kind == KindMutator
}

func (r Role) String() string {
	if r.Allocates() {
		return fmt.Sprintf("mutator-%d", r.Index)
	}
	return "observer"
}

// Statistics summarizes the per-iteration durations of one worker run.
type Statistics struct {
	Iterations int64         // planned iterations
	Samples    int64         // recorded iterations
	Min        time.Duration // MaxDuration until the first sample
	Max        time.Duration
	Total      time.Duration

	// Anomalies counts negative clock deltas, recorded as zero.
	Anomalies int64
}

// NewStatistics returns empty statistics for a run of n iterations.
func NewStatistics(n int64) Statistics {
	return Statistics{Iterations: n, Min: MaxDuration}
}

// Record folds one iteration's duration into s.
func (s *Statistics) Record(d time.Duration) {
	if d < 0 {
		s.Anomalies++
		d = 0
	}
	if d < s.Min {
		s.Min = d
	}
	if d > s.Max {
		s.Max = d
	}
	s.Total += d
	s.Samples++
}

// Average returns Total divided by the planned iteration count. ok is false
// when no iterations were planned, in which case the average is undefined.
func (s Statistics) Average() (avg time.Duration, ok bool) {
	if s.Iterations <= 0 {
		return 0, false
	}
	return s.Total / time.Duration(s.Iterations), true
}
