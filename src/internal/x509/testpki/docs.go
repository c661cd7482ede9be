// Copyright (c) 2026 amannb All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package testpki generates throwaway certificate hierarchies for tests.
//
// Tests build roots, intermediates, and leaves at runtime instead of
// carrying PEM fixtures, so validity windows and key types can be chosen
// per test case and never rot.
package testpki
