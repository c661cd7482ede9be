// Copyright (c) 2026 amannb All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509chain

import (
	"bytes"
	"context"
	"crypto/x509"
	"errors"

	"github.com/amannb/certpath/src/logger"
	"github.com/amannb/certpath/src/internal/x509/certinfo"
	"github.com/amannb/certpath/src/internal/x509/truststore"
)

var (
	// ErrNoLeaf indicates that Build was called without a leaf certificate.
	ErrNoLeaf = errors.New("x509chain: no leaf certificate")

	// ErrChainIncomplete indicates that the builder exhausted all issuer
	// candidates without reaching a trust anchor. The partial chain built
	// so far is still returned alongside this error.
	ErrChainIncomplete = errors.New("x509chain: chain incomplete: no path to a trusted root")
)

// defaultMaxDepth bounds the search so degenerate candidate sets cannot
// produce unbounded paths even before cycle detection kicks in.
const defaultMaxDepth = 8

// Repository looks up certificates by nickname in an external backing
// store. The builder only ever reads from it; ownership and mutation stay
// with the caller. Implementations must be safe for concurrent use.
type Repository interface {
	Lookup(nickname string) (*x509.Certificate, bool)
}

// Builder assembles certification paths. All collaborators are injected
// and never mutated, so one Builder may serve concurrent Build calls.
//
// Candidate issuers for each certificate are tried in order: the explicit
// Intermediates list, the trust store, the nickname Repository (queried
// with the issuer common name), and finally AIA fetching when a Fetcher
// is configured.
type Builder struct {
	Store         *truststore.Store
	Intermediates []*x509.Certificate
	Fetcher       Fetcher    // nil disables AIA fetching
	Repository    Repository // nil disables nickname lookups
	MaxDepth      int        // 0 means defaultMaxDepth
	Log           logger.Logger
}

// Build performs a depth-first search from leaf toward a trust anchor.
//
// The search terminates successfully when the current certificate is
// present in the trust store. A certificate already on the in-progress
// path is never revisited, so mutually-issued certificate cycles
// terminate. Fetch failures abort only the branch that needed them.
//
// On success the complete chain is returned. On exhaustion the longest
// partial chain found is returned together with [ErrChainIncomplete].
func (b *Builder) Build(ctx context.Context, leaf *x509.Certificate) (*Chain, error) {
	if leaf == nil {
		return nil, ErrNoLeaf
	}

	path := []*x509.Certificate{leaf}
	best := append([]*x509.Certificate(nil), path...)

	complete, found := b.search(ctx, path, &best)
	if complete {
		return &Chain{certs: found, complete: true}, nil
	}
	return &Chain{certs: best, complete: false}, ErrChainIncomplete
}

// search extends path by one issuer at a time, backtracking across
// candidates. best tracks the longest path seen across all branches.
func (b *Builder) search(ctx context.Context, path []*x509.Certificate, best *[]*x509.Certificate) (bool, []*x509.Certificate) {
	if len(path) > len(*best) {
		*best = append([]*x509.Certificate(nil), path...)
	}

	current := path[len(path)-1]

	if b.Store != nil && b.Store.Contains(current) {
		return true, append([]*x509.Certificate(nil), path...)
	}

	if ctx.Err() != nil {
		return false, nil
	}

	maxDepth := b.MaxDepth
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}
	if len(path) >= maxDepth {
		return false, nil
	}

	// A self-signed certificate has no distinct issuer to chase; the
	// trust-store membership check above was its only way to succeed.
	if isSelfSigned(current) {
		return false, nil
	}

	for _, candidate := range b.localCandidates(current) {
		if onPath(path, candidate) {
			continue
		}
		if ok, chain := b.search(ctx, append(path, candidate), best); ok {
			return true, chain
		}
	}

	if b.Fetcher != nil {
		for _, url := range current.IssuingCertificateURL {
			fetched, err := b.Fetcher.Fetch(ctx, url)
			if err != nil {
				// Branch-local failure: the rest of the search continues.
				b.log().Printf("AIA fetch failed: %v", err)
				continue
			}
			for _, candidate := range fetched {
				if !isIssuerOf(current, candidate) || onPath(path, candidate) {
					continue
				}
				if ok, chain := b.search(ctx, append(path, candidate), best); ok {
					return true, chain
				}
			}
		}
	}

	return false, nil
}

// localCandidates gathers issuer candidates available without network
// I/O: explicit intermediates first, then trust-store roots, then the
// nickname repository.
func (b *Builder) localCandidates(current *x509.Certificate) []*x509.Certificate {
	var out []*x509.Certificate

	for _, candidate := range b.Intermediates {
		if isIssuerOf(current, candidate) {
			out = append(out, candidate)
		}
	}

	if b.Store != nil {
		for _, candidate := range b.Store.FindIssuers(current.RawIssuer) {
			if current.CheckSignatureFrom(candidate) == nil {
				out = append(out, candidate)
			}
		}
	}

	if b.Repository != nil {
		if nickname := current.Issuer.CommonName; nickname != "" {
			if candidate, ok := b.Repository.Lookup(nickname); ok && isIssuerOf(current, candidate) {
				out = append(out, candidate)
			}
		}
	}

	return out
}

func (b *Builder) log() logger.Logger {
	if b.Log != nil {
		return b.Log
	}
	return logger.Discard
}

// isIssuerOf reports whether candidate's subject matches cert's issuer
// name and candidate's public key verifies cert's signature. Names are
// compared on the raw encoding first, then on the normalized string form.
func isIssuerOf(cert, candidate *x509.Certificate) bool {
	if candidate == nil {
		return false
	}
	if !bytes.Equal(cert.RawIssuer, candidate.RawSubject) {
		want := certinfo.NormalizeName(cert.RawIssuer)
		if want == "" || want != certinfo.NormalizeName(candidate.RawSubject) {
			return false
		}
	}
	return cert.CheckSignatureFrom(candidate) == nil
}

// isSelfSigned reports whether cert's signature verifies under its own key.
func isSelfSigned(cert *x509.Certificate) bool {
	return cert.CheckSignatureFrom(cert) == nil
}

// onPath reports whether candidate is already part of the in-progress
// path, by raw DER equality.
func onPath(path []*x509.Certificate, candidate *x509.Certificate) bool {
	for _, cert := range path {
		if bytes.Equal(cert.Raw, candidate.Raw) {
			return true
		}
	}
	return false
}
