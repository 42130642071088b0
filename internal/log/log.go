// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package log is the harness's diagnostic log. It only ever writes to
// stderr, leaving stdout to the report.
package log

import (
	"io"
	"os"

	shellquote "github.com/kballard/go-shellquote"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	actLog *zap.SugaredLogger
	actOn  = false
)

func init() {
	SetOutput(os.Stderr)
}

// SetOutput sends all log entries to w.
func SetOutput(w io.Writer) {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""
	cfg.CallerKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.Lock(zapcore.AddSync(w)), zapcore.DebugLevel)
	actLog = zap.New(core).Named("gcpause").Sugar()
}

// SetActivityLog turns the activity log on or off. Errors are always logged.
func SetActivityLog(on bool) {
	actOn = on
}

// TraceInvocation logs the command line the harness was started with.
func TraceInvocation(args []string) {
	if !actOn {
		return
	}
	actLog.Debugf("%s", shellquote.Join(args...))
}

func Printf(format string, args ...interface{}) {
	if !actOn {
		return
	}
	actLog.Debugf(format, args...)
}

// With returns a child logger carrying the given key/value pairs, or a no-op
// logger while the activity log is off.
func With(args ...interface{}) *zap.SugaredLogger {
	if !actOn {
		return zap.NewNop().Sugar()
	}
	return actLog.With(args...)
}

func Error(err error) {
	actLog.Errorf("error: %v", err)
}

// Sync flushes buffered entries.
func Sync() {
	_ = actLog.Sync()
}
