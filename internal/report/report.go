// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report renders worker statistics as single lines of text.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pingcap/errors"

	"golang.org/x/benchmarks/gcpause/internal/latency"
)

// Mode selects which statistics a line carries.
type Mode int

const (
	// ModeMax reports only the worst iteration.
	ModeMax Mode = iota
	// ModeSummary reports minimum, average and maximum.
	ModeSummary
)

func (m Mode) String() string {
	switch m {
	case ModeMax:
		return "max"
	case ModeSummary:
		return "summary"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode maps a -report flag value to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "max":
		return ModeMax, nil
	case "summary":
		return ModeSummary, nil
	}
	return 0, errors.Errorf("unknown report mode %q, want 'max' or 'summary'", s)
}

// Unit is the unit every latency in a run is printed in.
type Unit time.Duration

const (
	Microseconds = Unit(time.Microsecond)
	Nanoseconds  = Unit(time.Nanosecond)
)

func (u Unit) String() string {
	switch u {
	case Microseconds:
		return "usec"
	case Nanoseconds:
		return "nsec"
	}
	return time.Duration(u).String()
}

// ParseUnit maps a -unit flag value to a Unit.
func ParseUnit(s string) (Unit, error) {
	switch s {
	case "usec", "us":
		return Microseconds, nil
	case "nsec", "ns":
		return Nanoseconds, nil
	}
	return 0, errors.Errorf("unknown unit %q, want 'usec' or 'nsec'", s)
}

// NotAvailable stands in for a statistic that is undefined because the
// worker ran no iterations.
const NotAvailable = "n/a"

// Format is a line format shared by every worker of a run.
type Format struct {
	Mode Mode
	Unit Unit
}

// Label returns the fixed-width name of a worker.
func Label(role latency.Role) string {
	if role.Allocates() {
		return fmt.Sprintf("Mutator %-4d", role.Index)
	}
	return "No mutation "
}

// Line formats s, without a trailing newline.
func (f Format) Line(role latency.Role, s latency.Statistics) string {
	var b strings.Builder
	b.WriteString(Label(role))
	b.WriteByte(' ')
	switch f.Mode {
	case ModeSummary:
		lo := NotAvailable
		if s.Samples > 0 {
			lo = f.value(s.Min)
		}
		avg := NotAvailable
		if d, ok := s.Average(); ok {
			avg = f.value(d)
		}
		fmt.Fprintf(&b, "min %s  avg %s  max %s", lo, avg, f.value(s.Max))
	default:
		b.WriteString(f.value(s.Max))
	}
	return b.String()
}

func (f Format) value(d time.Duration) string {
	u := f.Unit
	if u <= 0 {
		u = Microseconds
	}
	return fmt.Sprintf("%d %s", int64(d)/int64(u), u)
}

// Write emits one line for role to w with a single Write call, so lines
// from concurrent workers are never torn.
func (f Format) Write(w io.Writer, role latency.Role, s latency.Statistics) error {
	_, err := io.WriteString(w, f.Line(role, s)+"\n")
	return errors.Trace(err)
}
