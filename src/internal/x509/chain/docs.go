// Copyright (c) 2026 amannb All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509chain assembles candidate certification paths from a leaf
// certificate to a trusted anchor. It provides:
//   - A depth-first [Builder] drawing issuer candidates from explicit
//     intermediates, the trust store, an injected nickname repository,
//     and optional AIA (Authority Information Access) fetching.
//   - Cycle detection, so maliciously self-referential chains terminate.
//   - A bounded, retrying HTTP fetcher for CA-issuers URLs that degrades
//     a failed fetch to an abandoned search branch, never a failed build.
//   - Remote chain seeding from a live TLS handshake.
//
// The package handles context-aware cancellation and HTTP client
// configuration for reliable network operations.
package x509chain
