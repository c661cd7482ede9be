// Copyright (c) 2026 amannb All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package truststore

import (
	"crypto/x509"
	"errors"

	"github.com/amannb/certpath/src/internal/x509/certinfo"
)

// ErrEmptyStore indicates that no certificates were supplied to New.
var ErrEmptyStore = errors.New("truststore: no certificates")

// Store is a read-only set of trusted root certificates.
//
// A Store is immutable after construction, so concurrent readers need no
// external synchronization. Membership is defined by raw DER equality;
// issuer lookup is keyed by the exact raw subject encoding with a
// fallback on the normalized string form for encodings that differ only
// in string representation.
type Store struct {
	certs        []*x509.Certificate
	byDER        map[string]struct{}
	bySubject    map[string][]*x509.Certificate
	byNormalized map[string][]*x509.Certificate
}

// New builds a Store from the given root certificates. Duplicates
// (by raw DER) are collapsed. Nil entries are ignored.
func New(certs ...*x509.Certificate) *Store {
	s := &Store{
		byDER:        make(map[string]struct{}, len(certs)),
		bySubject:    make(map[string][]*x509.Certificate, len(certs)),
		byNormalized: make(map[string][]*x509.Certificate, len(certs)),
	}

	for _, cert := range certs {
		if cert == nil {
			continue
		}
		key := string(cert.Raw)
		if _, dup := s.byDER[key]; dup {
			continue
		}
		s.byDER[key] = struct{}{}
		s.certs = append(s.certs, cert)
		s.bySubject[string(cert.RawSubject)] = append(s.bySubject[string(cert.RawSubject)], cert)
		if norm := certinfo.NormalizeName(cert.RawSubject); norm != "" {
			s.byNormalized[norm] = append(s.byNormalized[norm], cert)
		}
	}

	return s
}

// NewFromPEM builds a Store from a PEM bundle of root certificates.
func NewFromPEM(data []byte) (*Store, error) {
	certs, err := certinfo.DecodeMultiple(data)
	if err != nil {
		return nil, err
	}
	if len(certs) == 0 {
		return nil, ErrEmptyStore
	}
	return New(certs...), nil
}

// Contains reports whether the store holds a certificate with an
// identical raw DER encoding.
func (s *Store) Contains(cert *x509.Certificate) bool {
	if cert == nil {
		return false
	}
	_, ok := s.byDER[string(cert.Raw)]
	return ok
}

// FindIssuers returns the stored certificates whose subject matches the
// given raw DER-encoded issuer name.
func (s *Store) FindIssuers(rawIssuer []byte) []*x509.Certificate {
	if matches, ok := s.bySubject[string(rawIssuer)]; ok {
		return matches
	}
	if norm := certinfo.NormalizeName(rawIssuer); norm != "" {
		return s.byNormalized[norm]
	}
	return nil
}

// Certificates returns a copy of the stored roots, preserving insertion order.
func (s *Store) Certificates() []*x509.Certificate {
	out := make([]*x509.Certificate, len(s.certs))
	copy(out, s.certs)
	return out
}

// Len returns the number of distinct roots in the store.
func (s *Store) Len() int { return len(s.certs) }
