// Copyright (c) 2026 amannb All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package verify

import (
	"crypto/x509"
	"time"
)

// legacyPolicy validates the chain sequentially, leaf to root: for each
// adjacent (certificate, issuer) pair it checks signature, validity,
// issuer fitness, and path length, then checks the chain top against
// the ambient trust store. In boolean mode the reported failure is the
// first one in that leaf-to-root order. Path-length constraints count
// every intermediate below the constrained issuer, including
// self-issued ones, matching older sequential validators; the PKIX
// policy excludes self-issued certificates from the count.
type legacyPolicy struct{}

func (legacyPolicy) run(certs []*x509.Certificate, opts Options, at time.Time, rec *recorder) {
	anchors := newAnchorSet(opts)
	n := len(certs)

	for i := 0; i < n && !rec.stopped(); i++ {
		cert := certs[i]

		if code := checkValidity(cert, at); code != CodeOK {
			rec.add(cert, code)
		}

		if i == 0 {
			if code := opts.Usage.checkLeaf(cert); code != CodeOK {
				rec.add(cert, code)
			}
		}

		if i < n-1 {
			issuer := certs[i+1]
			if cert.CheckSignatureFrom(issuer) != nil {
				rec.add(cert, CodeBadSignature)
			}
			checkIssuerFitness(issuer, rec)
			// The constraint bounds the number of intermediates below
			// the issuer, which is i here (the leaf does not count).
			if pathLenConstrained(issuer) && i > issuer.MaxPathLen {
				rec.add(issuer, CodePathLenExceeded)
			}
		}
	}

	if !rec.stopped() {
		checkAnchor(certs, anchors, rec)
	}
}

// pkixPolicy validates the chain in RFC 5280 order: anchor first, then
// root to leaf, propagating a working path-length budget downward. It
// honors Options.TrustedRoots as an explicit anchor restriction.
//
// Because the anchor is checked before any link, boolean mode under
// this policy reports an anchor failure ahead of failures lower in the
// chain; the legacy policy reports the first failure in leaf-to-root
// order instead, so the two can surface different codes for a chain
// with multiple defects. Self-issued certificates do not consume
// path-length budget here, per RFC 5280 section 6.1.4; the legacy
// policy counts them.
type pkixPolicy struct{}

func (pkixPolicy) run(certs []*x509.Certificate, opts Options, at time.Time, rec *recorder) {
	anchors := newAnchorSet(opts)
	n := len(certs)

	checkAnchor(certs, anchors, rec)

	// Working path-length budget: how many more non-self-issued
	// intermediates the path may still contain. constrainer remembers
	// which certificate imposed the current budget so a violation is
	// attributed to it.
	budget := n
	var constrainer *x509.Certificate

	for i := n - 1; i >= 0 && !rec.stopped(); i-- {
		cert := certs[i]

		if code := checkValidity(cert, at); code != CodeOK {
			rec.add(cert, code)
		}

		if i == 0 {
			if code := opts.Usage.checkLeaf(cert); code != CodeOK {
				rec.add(cert, code)
			}
			break
		}

		// cert issues certs[i-1]: it must be a fit CA.
		checkIssuerFitness(cert, rec)

		if child := certs[i-1]; child.CheckSignatureFrom(cert) != nil {
			rec.add(child, CodeBadSignature)
		}

		// Intermediates (everything between leaf and chain top) consume
		// path-length budget unless self-issued.
		if i < n-1 && !selfIssued(cert) {
			if budget <= 0 && constrainer != nil {
				rec.add(constrainer, CodePathLenExceeded)
			}
			budget--
		}

		if pathLenConstrained(cert) && cert.MaxPathLen < budget {
			budget = cert.MaxPathLen
			constrainer = cert
		}
	}
}

// selfIssued reports whether subject equals issuer.
func selfIssued(cert *x509.Certificate) bool {
	return string(cert.RawSubject) == string(cert.RawIssuer)
}
