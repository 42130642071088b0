// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package par runs functions in parallel with a fixed start and join order.
package par

import (
	"golang.org/x/sync/errgroup"
)

// Group starts each added function on its own goroutine in the order the
// functions were added, and joins them in that same order.
type Group struct {
	funcs []func() error
	done  []chan struct{}
	eg    errgroup.Group
}

// Add queues fn. It must not be called after Start.
func (g *Group) Add(fn func() error) {
	g.funcs = append(g.funcs, fn)
}

// Len returns the number of queued functions.
func (g *Group) Len() int {
	return len(g.funcs)
}

// Start launches every queued function.
func (g *Group) Start() {
	g.done = make([]chan struct{}, len(g.funcs))
	for i, fn := range g.funcs {
		done := make(chan struct{})
		g.done[i] = done
		g.eg.Go(func() error {
			defer close(done)
			return fn()
		})
	}
	g.funcs = nil
}

// Wait blocks until each function has returned, in start order, and
// returns the first non-nil error any of them produced.
func (g *Group) Wait() error {
	for _, done := range g.done {
		<-done
	}
	g.done = nil
	return g.eg.Wait()
}

// Run is Start followed by Wait.
func (g *Group) Run() error {
	g.Start()
	return g.Wait()
}
