// Copyright (c) 2026 amannb All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides logging abstractions for certpath.
//
// It defines a minimal [Logger] interface with two implementations:
//   - [CLILogger]: human-readable output for interactive use.
//   - [JSONLogger]: single-line structured JSON for machine consumption.
//
// Library packages that log accept a Logger and default to [Discard],
// keeping the core verification paths silent unless a caller opts in.
package logger
