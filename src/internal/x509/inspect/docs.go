// Copyright (c) 2026 amannb All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package inspect builds human- and machine-readable summaries of
// certificate chains: a JSON [Report] with a stable field contract,
// a markdown table, and an ASCII tree.
package inspect
