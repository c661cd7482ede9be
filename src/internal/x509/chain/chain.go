// Copyright (c) 2026 amannb All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509chain

import (
	"crypto/x509"
)

// Chain is an ordered certification path, leaf first. Each certificate's
// issuer nominally matches the next certificate's subject. A Chain may be
// incomplete: the builder returns the longest partial path it found when
// no trusted anchor was reachable.
//
// A Chain is immutable once built and safe for concurrent readers.
type Chain struct {
	certs    []*x509.Certificate
	complete bool
}

// NewChain wraps an already-ordered certificate sequence, leaf first.
// complete records whether the path terminates at a trusted anchor.
// Callers normally obtain chains from [Builder.Build] instead.
func NewChain(certs []*x509.Certificate, complete bool) *Chain {
	owned := make([]*x509.Certificate, len(certs))
	copy(owned, certs)
	return &Chain{certs: owned, complete: complete}
}

// Certs returns the ordered certificates, leaf first.
func (c *Chain) Certs() []*x509.Certificate {
	out := make([]*x509.Certificate, len(c.certs))
	copy(out, c.certs)
	return out
}

// Len returns the number of certificates in the path.
func (c *Chain) Len() int { return len(c.certs) }

// Complete reports whether the path terminates at a trust-store anchor.
func (c *Chain) Complete() bool { return c.complete }

// Leaf returns the end-entity certificate, or nil for an empty chain.
func (c *Chain) Leaf() *x509.Certificate {
	if len(c.certs) == 0 {
		return nil
	}
	return c.certs[0]
}

// Root returns the last certificate in the path, or nil for an empty
// chain. For an incomplete chain this is merely the furthest issuer
// reached, not necessarily a trust anchor.
func (c *Chain) Root() *x509.Certificate {
	if len(c.certs) == 0 {
		return nil
	}
	return c.certs[len(c.certs)-1]
}

// Intermediates returns the certificates between the leaf and the last
// entry, or nil when the chain has two or fewer certificates.
func (c *Chain) Intermediates() []*x509.Certificate {
	if len(c.certs) <= 2 {
		return nil
	}
	out := make([]*x509.Certificate, len(c.certs)-2)
	copy(out, c.certs[1:len(c.certs)-1])
	return out
}
