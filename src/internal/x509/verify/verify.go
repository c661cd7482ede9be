// Copyright (c) 2026 amannb All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package verify

import (
	"context"
	"crypto/x509"
	"errors"
	"fmt"
	"time"

	"github.com/amannb/certpath/src/internal/x509/certinfo"
	x509chain "github.com/amannb/certpath/src/internal/x509/chain"
	"github.com/amannb/certpath/src/internal/x509/truststore"
)

// ErrEmptyChain indicates that Verify was called without certificates.
var ErrEmptyChain = errors.New("verify: empty chain")

// Policy selects the validation strategy.
type Policy int

const (
	// PolicyLegacy walks the chain leaf to root, checking each adjacent
	// pair sequentially.
	PolicyLegacy Policy = iota
	// PolicyPKIX walks the chain root to leaf in RFC 5280 style,
	// propagating constraints downward, and honors Options.TrustedRoots
	// as an explicit anchor restriction.
	PolicyPKIX
)

// String returns the CLI-facing name of the policy.
func (p Policy) String() string {
	switch p {
	case PolicyLegacy:
		return "legacy"
	case PolicyPKIX:
		return "pkix"
	default:
		return "unknown"
	}
}

// ParsePolicy converts a CLI-facing policy name into a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "legacy":
		return PolicyLegacy, nil
	case "pkix":
		return PolicyPKIX, nil
	default:
		return 0, fmt.Errorf("verify: unknown policy %q", s)
	}
}

// Mode selects how failures are reported.
type Mode int

const (
	// ModeBoolean stops at the first failing check.
	ModeBoolean Mode = iota
	// ModeLog continues past failures, accumulating one entry per
	// failing check across the whole chain.
	ModeLog
)

// Options parameterizes one verification call. Every call carries its
// own trust store, time, and usage explicitly; there is no ambient
// verification context.
type Options struct {
	// Store is the ambient trust store. Required unless TrustedRoots is
	// set and the PKIX policy is selected.
	Store *truststore.Store

	// TrustedRoots, when non-nil, restricts acceptable anchors to this
	// explicit set instead of Store. Honored by the PKIX policy only.
	TrustedRoots []*x509.Certificate

	Policy Policy
	Mode   Mode

	// At is the verification time. The zero value means time.Now().
	At time.Time

	// Usage defaults to UsageSSLServer.
	Usage Usage

	// Hostname, when non-empty, additionally requires the leaf to match
	// this name per the SAN/CN wildcard rules.
	Hostname string

	// Revocation, when non-nil, is consulted for every non-anchor
	// certificate. Failures to determine status are soft unless
	// RequireRevocation is set.
	Revocation        RevocationChecker
	RequireRevocation bool
}

// policyRunner is implemented by the two validation strategies. Both
// apply the shared per-link checks; they differ in traversal direction,
// constraint propagation, and anchor selection.
type policyRunner interface {
	run(certs []*x509.Certificate, opts Options, at time.Time, rec *recorder)
}

// Verify evaluates the chain under the selected policy and mode.
//
// Verification failures are reported through the returned Outcome; the
// error return is reserved for structural misuse such as an empty chain.
// Verify is pure over its inputs except for the optional revocation
// check, which is bounded by ctx.
func Verify(ctx context.Context, chain *x509chain.Chain, opts Options) (Outcome, error) {
	if chain == nil || chain.Len() == 0 {
		return Outcome{}, ErrEmptyChain
	}

	certs := chain.Certs()
	at := opts.At
	if at.IsZero() {
		at = time.Now()
	}

	rec := &recorder{mode: opts.Mode}

	if opts.Hostname != "" {
		if info, err := certinfo.FromCertificate(certs[0]); err != nil || !info.MatchesHostname(opts.Hostname) {
			rec.add(certs[0], CodeNameMismatch)
		}
	}

	var runner policyRunner
	switch opts.Policy {
	case PolicyPKIX:
		runner = pkixPolicy{}
	default:
		runner = legacyPolicy{}
	}
	runner.run(certs, opts, at, rec)

	if opts.Revocation != nil {
		checkRevocation(ctx, certs, opts, rec)
	}

	return rec.outcome(), nil
}

// anchorSet answers "is this certificate an acceptable trust anchor"
// for one verification call.
type anchorSet struct {
	store *truststore.Store
	list  []*x509.Certificate
}

func newAnchorSet(opts Options) anchorSet {
	if opts.Policy == PolicyPKIX && opts.TrustedRoots != nil {
		return anchorSet{list: opts.TrustedRoots}
	}
	return anchorSet{store: opts.Store}
}

// contains reports anchor membership by raw DER equality.
func (a anchorSet) contains(cert *x509.Certificate) bool {
	if a.list != nil {
		for _, anchor := range a.list {
			if anchor != nil && string(anchor.Raw) == string(cert.Raw) {
				return true
			}
		}
		return false
	}
	if a.store == nil {
		return false
	}
	return a.store.Contains(cert)
}

// anchorIssues reports whether some anchor directly issued cert, which
// accepts chains that stop one link short of including the root itself.
func (a anchorSet) anchorIssues(cert *x509.Certificate) bool {
	candidates := a.list
	if candidates == nil {
		if a.store == nil {
			return false
		}
		candidates = a.store.FindIssuers(cert.RawIssuer)
	}
	for _, anchor := range candidates {
		if anchor != nil && cert.CheckSignatureFrom(anchor) == nil {
			return true
		}
	}
	return false
}

// checkAnchor records the appropriate failure for an unanchored chain
// top: untrusted-root for a self-signed top, incomplete-chain for a
// truncated one. Under sequential validation the link that fails is
// the one issued by the untrusted top, so untrusted-root is attributed
// to the certificate below the top; a lone self-signed certificate is
// attributed to itself. A truncated chain is attributed to the top,
// the certificate whose issuer is missing.
func checkAnchor(certs []*x509.Certificate, anchors anchorSet, rec *recorder) {
	top := certs[len(certs)-1]
	if anchors.contains(top) || anchors.anchorIssues(top) {
		return
	}
	if top.CheckSignatureFrom(top) == nil {
		subject := top
		if len(certs) > 1 {
			subject = certs[len(certs)-2]
		}
		rec.add(subject, CodeUntrustedRoot)
	} else {
		rec.add(top, CodeIncompleteChain)
	}
}

// checkValidity returns the code for a validity-period violation at time
// at, or CodeOK.
func checkValidity(cert *x509.Certificate, at time.Time) Code {
	if at.After(cert.NotAfter) {
		return CodeExpired
	}
	if at.Before(cert.NotBefore) {
		return CodeNotYetValid
	}
	return CodeOK
}

// checkIssuerFitness records the issuer-side link checks: CA basic
// constraint and certificate-signing key usage.
func checkIssuerFitness(issuer *x509.Certificate, rec *recorder) {
	if issuer.BasicConstraintsValid && !issuer.IsCA {
		rec.add(issuer, CodeNotCA)
	}
	if issuer.KeyUsage != 0 && issuer.KeyUsage&x509.KeyUsageCertSign == 0 {
		rec.add(issuer, CodeUsageMismatch)
	}
}

// pathLenConstrained reports whether the certificate carries an explicit
// path-length constraint, honoring Go's MaxPathLenZero convention.
func pathLenConstrained(cert *x509.Certificate) bool {
	return cert.MaxPathLen > 0 || (cert.MaxPathLen == 0 && cert.MaxPathLenZero)
}
