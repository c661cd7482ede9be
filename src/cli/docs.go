// Copyright (c) 2026 amannb All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for certpath. It
// implements a Cobra-based CLI with subcommands for inspecting single
// certificates, resolving certificate chains (with AIA fetching),
// verifying chains under the legacy or PKIX policy, and examining the
// chain presented by a remote TLS server. Configuration can be supplied
// through a YAML file shared by all subcommands.
package cli
