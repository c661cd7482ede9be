// Copyright (c) 2026 amannb All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package verify evaluates certification paths against trust policies.
//
// One [Verify] entry point is parameterized by:
//   - [Policy]: legacy sequential chain validation or PKIX-style path
//     validation. Both apply the same per-link checks; they differ in
//     constraint propagation order and in anchor selection (the PKIX
//     policy honors an explicit trusted-roots list).
//   - [Mode]: boolean mode stops at the first failing check; log mode
//     accumulates one (certificate, code) entry per failing check.
//
// Verification failures are ordinary outcome values carrying stable
// numeric [Code]s, not errors: an invalid certificate is an expected
// result. Only structural misuse (an empty chain) returns an error.
package verify
