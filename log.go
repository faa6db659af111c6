// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package libsa

import (
	"log"
	"os"
)

// Logger is the diagnostic-output capability design note §9 of the
// original spec calls for in place of the original's process-global
// verbose flag: build operations take one explicitly through Options
// instead of reading global state, so concurrent, disjoint calls never
// interfere with each other's logging configuration.
type Logger interface {
	Logf(format string, args ...interface{})
}

type discardLogger struct{}

func (discardLogger) Logf(string, ...interface{}) {}

type stdLogger struct {
	l *log.Logger
}

func (s stdLogger) Logf(format string, args ...interface{}) {
	s.l.Printf(format, args...)
}

// NewEnvLogger resolves the LIBSA_LOG environment variable exactly as the
// original's verbose flag did: non-empty enables diagnostic printing to
// standard output.
func NewEnvLogger() Logger {
	if os.Getenv("LIBSA_LOG") == "" {
		return discardLogger{}
	}
	return stdLogger{l: log.New(os.Stdout, "libsa: ", 0)}
}

// Options carries the capabilities a build operation needs beyond its
// buffers. A nil *Options resolves its Logger from LIBSA_LOG, matching the
// original's environment-driven behavior without any process-global
// state.
type Options struct {
	Logger Logger
}

func resolveLogger(opts *Options) Logger {
	if opts != nil && opts.Logger != nil {
		return opts.Logger
	}
	return NewEnvLogger()
}
