// Copyright (c) 2026 amannb All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package certinfo

import "strings"

// MatchesHostname reports whether the certificate is valid for host.
//
// Candidate names come from the Subject Alternative Name extension when
// present; only when the certificate carries no SAN extension does the
// subject common name serve as a fallback, mirroring common TLS client
// practice. Matching is case-insensitive; a leftmost "*" label matches
// exactly one label and never a registrable TLD alone.
//
// MatchesHostname never fails: a malformed SAN extension or an empty
// candidate set simply yields false.
func (i *Info) MatchesHostname(host string) bool {
	host = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(host)), ".")
	if host == "" {
		return false
	}

	var candidates []string
	names, present, err := i.DNSNames()
	switch {
	case err != nil:
		return false
	case present:
		candidates = names
	default:
		if cn, ok := i.Subject().CommonName(); ok {
			candidates = []string{cn}
		}
	}

	for _, candidate := range candidates {
		if matchHostname(strings.ToLower(candidate), host) {
			return true
		}
	}
	return false
}

// matchHostname matches one candidate pattern against a hostname.
// Both arguments must already be lowercased.
func matchHostname(pattern, host string) bool {
	pattern = strings.TrimSuffix(pattern, ".")
	if pattern == "" {
		return false
	}

	if !strings.Contains(pattern, "*") {
		return pattern == host
	}

	// Only a single left-most wildcard label is honored; partial-label
	// wildcards like "f*o.example.com" are rejected outright.
	if !strings.HasPrefix(pattern, "*.") || strings.Contains(pattern[2:], "*") {
		return false
	}

	patternLabels := strings.Split(pattern, ".")
	hostLabels := strings.Split(host, ".")

	// "*.com" would match every registrable domain under the TLD;
	// require at least two fixed labels after the wildcard.
	if len(patternLabels) < 3 {
		return false
	}

	// The wildcard consumes exactly one label, so label counts must agree.
	// This also rejects matching the bare parent domain.
	if len(hostLabels) != len(patternLabels) {
		return false
	}

	for idx := 1; idx < len(patternLabels); idx++ {
		if patternLabels[idx] != hostLabels[idx] {
			return false
		}
	}
	return hostLabels[0] != ""
}
