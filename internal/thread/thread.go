// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package thread gives each latency worker an OS thread of its own.
package thread

import "runtime"

// Pin wires the calling goroutine to its current OS thread until unpin is
// called. tid names that thread, or is 0 where the platform has no thread id.
func Pin() (tid int, unpin func()) {
	runtime.LockOSThread()
	return id(), runtime.UnlockOSThread
}
