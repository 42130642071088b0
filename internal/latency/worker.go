// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package latency

import (
	"unsafe"

	"golang.org/x/benchmarks/gcpause/internal/clock"
)

// Object is what a mutator allocates on each iteration. It must have a
// non-zero size, otherwise the runtime hands out a shared address instead of
// allocating.
type Object struct {
	_ [2]uint64
}

// NewObject allocates a fresh Object on the heap.
//
//go:noinline
func NewObject() *Object {
	return new(Object)
}

// Worker runs one measured loop. A Worker is owned by a single goroutine.
type Worker struct {
	Role       Role
	Iterations int64
	Clock      clock.Clock

	// Alloc is called once per mutator iteration. Nil means NewObject.
	Alloc func() *Object

	sink *Object // assign each new object here to ensure heap allocation
	hash uintptr // addresses of all objects, OR-ed together
}

// Run performs all planned iterations and returns their statistics.
// Nothing is reported until the loop completes.
func (w *Worker) Run() Statistics {
	if w.Role.Allocates() {
		return w.mutate()
	}
	return w.observe()
}

// Hash returns the mutator's allocation accumulator. It stays zero for an
// observer, and for a mutator that has not run.
func (w *Worker) Hash() uintptr {
	return w.hash
}

//go:noinline
func (w *Worker) observe() Statistics {
	s := NewStatistics(w.Iterations)
	for i := int64(0); i < w.Iterations; i++ {
		start := w.Clock.Now()
		end := w.Clock.Now()
		s.Record(end - start)
	}
	return s
}

//go:noinline
func (w *Worker) mutate() Statistics {
	alloc := w.Alloc
	if alloc == nil {
		alloc = NewObject
	}
	s := NewStatistics(w.Iterations)
	for i := int64(0); i < w.Iterations; i++ {
		start := w.Clock.Now()
		// Folding the address into hash gives the allocation a visible
		// effect, so the compiler cannot discard it.
		obj := alloc()
		w.sink = obj
		w.hash |= uintptr(unsafe.Pointer(obj))
		end := w.Clock.Now()
		s.Record(end - start)
	}
	w.sink = nil
	return s
}
