// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"golang.org/x/benchmarks/gcpause/internal/latency"
)

func stats(ds ...time.Duration) latency.Statistics {
	s := latency.NewStatistics(int64(len(ds)))
	for _, d := range ds {
		s.Record(d)
	}
	return s
}

func TestLabel(t *testing.T) {
	require.Equal(t, "No mutation ", Label(latency.Observer()))
	require.Equal(t, "Mutator 0   ", Label(latency.Mutator(0)))
	require.Equal(t, "Mutator 1234", Label(latency.Mutator(1234)))
	require.Len(t, Label(latency.Observer()), len(Label(latency.Mutator(7))))
}

func TestLine(t *testing.T) {
	s := stats(1500*time.Nanosecond, 2500*time.Nanosecond, 12999*time.Nanosecond)
	tests := []struct {
		name   string
		format Format
		role   latency.Role
		want   string
	}{
		{"max-usec", Format{ModeMax, Microseconds}, latency.Observer(), "No mutation  12 usec"},
		{"max-nsec", Format{ModeMax, Nanoseconds}, latency.Mutator(3), "Mutator 3    12999 nsec"},
		{"summary-usec", Format{ModeSummary, Microseconds}, latency.Mutator(0),
			"Mutator 0    min 1 usec  avg 5 usec  max 12 usec"},
		{"summary-nsec", Format{ModeSummary, Nanoseconds}, latency.Observer(),
			"No mutation  min 1500 nsec  avg 5666 nsec  max 12999 nsec"},
		{"zero-unit", Format{ModeMax, 0}, latency.Observer(), "No mutation  12 usec"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.format.Line(tc.role, s))
		})
	}
}

func TestLineZeroIterations(t *testing.T) {
	s := latency.NewStatistics(0)
	require.Equal(t, "No mutation  min n/a  avg n/a  max 0 usec",
		Format{ModeSummary, Microseconds}.Line(latency.Observer(), s))
	require.Equal(t, "No mutation  0 usec",
		Format{ModeMax, Microseconds}.Line(latency.Observer(), s))
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	f := Format{ModeMax, Nanoseconds}
	require.NoError(t, f.Write(&buf, latency.Mutator(1), stats(9)))
	require.Equal(t, "Mutator 1    9 nsec\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWriteError(t *testing.T) {
	err := Format{}.Write(failingWriter{}, latency.Observer(), stats(1))
	require.ErrorContains(t, err, "closed")
}

func TestParse(t *testing.T) {
	m, err := ParseMode("summary")
	require.NoError(t, err)
	require.Equal(t, ModeSummary, m)
	m, err = ParseMode("max")
	require.NoError(t, err)
	require.Equal(t, ModeMax, m)
	_, err = ParseMode("p99")
	require.Error(t, err)

	u, err := ParseUnit("ns")
	require.NoError(t, err)
	require.Equal(t, Nanoseconds, u)
	u, err = ParseUnit("usec")
	require.NoError(t, err)
	require.Equal(t, Microseconds, u)
	_, err = ParseUnit("ms")
	require.Error(t, err)

	require.Equal(t, "summary", ModeSummary.String())
	require.Equal(t, "nsec", Nanoseconds.String())
}
