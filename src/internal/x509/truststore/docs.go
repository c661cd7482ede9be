// Copyright (c) 2026 amannb All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package truststore holds the caller-supplied set of trusted root
// certificates. The [Store] is built once, never mutated by chain
// building or verification, and safe for concurrent readers without
// locking. Its lifetime spans as many verification calls as the caller
// wants to share it across.
package truststore
