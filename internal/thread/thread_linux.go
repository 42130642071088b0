// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux

package thread

import "golang.org/x/sys/unix"

func id() int {
	return unix.Gettid()
}
