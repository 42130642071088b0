// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package clock provides the timestamps the latency loops are built on.
package clock

import (
	"fmt"
	"time"
)

// Clock returns monotonic timestamps as offsets from an arbitrary epoch.
// Differences between two readings are elapsed nanoseconds.
type Clock interface {
	Now() time.Duration
}

// Monotonic reads the runtime's monotonic clock. Wall clock adjustments do
// not affect it. The zero value is not usable; call NewMonotonic.
type Monotonic struct {
	epoch time.Time
}

// NewMonotonic returns a Monotonic whose epoch is the current instant.
func NewMonotonic() Monotonic {
	return Monotonic{epoch: time.Now()}
}

// Now returns the monotonic time elapsed since the clock's epoch.
func (m Monotonic) Now() time.Duration {
	return time.Since(m.epoch)
}

// Sequence is a deterministic Clock for tests. Each call to Now returns the
// next element of Times.
type Sequence struct {
	Times []time.Duration
	next  int
}

// Now returns the next timestamp. It panics when the sequence is exhausted,
// since that means the caller read the clock more often than planned.
func (s *Sequence) Now() time.Duration {
	if s.next >= len(s.Times) {
		panic(fmt.Sprintf("clock: sequence exhausted after %d readings", len(s.Times)))
	}
	t := s.Times[s.next]
	s.next++
	return t
}

// Reads reports how many timestamps have been handed out.
func (s *Sequence) Reads() int {
	return s.next
}
