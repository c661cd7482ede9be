// Copyright (c) 2026 amannb All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package certinfo

import (
	"bytes"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/asn1"
	"fmt"
	"math/big"
	"time"
)

// Info is an immutable, queryable view over a parsed [X.509] certificate.
//
// An Info is created by [Parse] or [FromCertificate] and never mutated
// afterwards; all accessors are pure projections over the parsed structure
// and safe for concurrent use.
//
// [X.509]: https://grokipedia.com/page/X.509
type Info struct {
	cert    *x509.Certificate
	subject DN
	issuer  DN

	// nickname is set only when the certificate was resolved through a
	// backing-store lookup. Empty otherwise.
	nickname string
}

// Parse decodes and parses a certificate from PEM, DER, or PKCS7 data.
//
// Parsing fails atomically: on error, no partially-constructed Info is
// observable. A present-but-malformed extension does not fail Parse; its
// decode error surfaces from the corresponding accessor instead.
func Parse(data []byte) (*Info, error) {
	cert, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return FromCertificate(cert)
}

// FromCertificate builds an Info from an already-parsed certificate.
func FromCertificate(cert *x509.Certificate) (*Info, error) {
	if cert == nil {
		return nil, ErrParseCertificate
	}

	subject, err := parseDN(cert.RawSubject)
	if err != nil {
		return nil, fmt.Errorf("%w: subject: %v", ErrParseCertificate, err)
	}
	issuer, err := parseDN(cert.RawIssuer)
	if err != nil {
		return nil, fmt.Errorf("%w: issuer: %v", ErrParseCertificate, err)
	}

	return &Info{cert: cert, subject: subject, issuer: issuer}, nil
}

// WithNickname returns a copy of the Info carrying the backing-store
// nickname it was resolved under. The receiver is not modified.
func (i *Info) WithNickname(nickname string) *Info {
	clone := *i
	clone.nickname = nickname
	return &clone
}

// Nickname returns the backing-store nickname and whether one is set.
func (i *Info) Nickname() (string, bool) { return i.nickname, i.nickname != "" }

// Certificate returns the underlying parsed certificate.
func (i *Info) Certificate() *x509.Certificate { return i.cert }

// Raw returns the raw DER encoding of the certificate.
func (i *Info) Raw() []byte { return i.cert.Raw }

// RawSPKI returns the raw SubjectPublicKeyInfo bytes.
func (i *Info) RawSPKI() []byte { return i.cert.RawSubjectPublicKeyInfo }

// Equal reports whether two certificates are identical. Equality is
// defined as byte-identical raw DER encodings.
func (i *Info) Equal(other *Info) bool {
	if other == nil {
		return false
	}
	return bytes.Equal(i.cert.Raw, other.cert.Raw)
}

// Subject returns the subject distinguished name.
func (i *Info) Subject() DN { return i.subject }

// Issuer returns the issuer distinguished name.
func (i *Info) Issuer() DN { return i.issuer }

// SerialNumber returns the certificate serial number.
func (i *Info) SerialNumber() *big.Int { return i.cert.SerialNumber }

// SerialNumberHex returns the serial number as a lowercase hex string.
func (i *Info) SerialNumberHex() string { return i.cert.SerialNumber.Text(16) }

// NotBefore returns the start of the validity period.
func (i *Info) NotBefore() time.Time { return i.cert.NotBefore }

// NotAfter returns the end of the validity period.
func (i *Info) NotAfter() time.Time { return i.cert.NotAfter }

// ValidAt reports whether t falls within the certificate validity period.
func (i *Info) ValidAt(t time.Time) bool {
	return !t.Before(i.cert.NotBefore) && !t.After(i.cert.NotAfter)
}

// Version returns the X.509 version number (1, 2, or 3).
func (i *Info) Version() int { return i.cert.Version }

// SignatureAlgorithm returns the name of the signature algorithm.
func (i *Info) SignatureAlgorithm() string { return i.cert.SignatureAlgorithm.String() }

// PublicKeyAlgorithm returns the name of the public-key algorithm.
func (i *Info) PublicKeyAlgorithm() string { return i.cert.PublicKeyAlgorithm.String() }

// IsCA reports whether the basic-constraints extension marks this
// certificate as a CA.
func (i *Info) IsCA() bool { return i.cert.BasicConstraintsValid && i.cert.IsCA }

// IsSelfIssued reports whether subject and issuer names are identical.
func (i *Info) IsSelfIssued() bool {
	return bytes.Equal(i.cert.RawSubject, i.cert.RawIssuer)
}

// IsRoot reports whether the certificate looks like a trust-anchor
// candidate: a self-issued CA certificate whose signature verifies
// under its own key.
func (i *Info) IsRoot() bool {
	if !i.IsSelfIssued() || !i.IsCA() {
		return false
	}
	return i.cert.CheckSignatureFrom(i.cert) == nil
}

// parseDN decodes a raw DER-encoded distinguished name.
func parseDN(raw []byte) (DN, error) {
	var seq pkix.RDNSequence
	rest, err := asn1.Unmarshal(raw, &seq)
	if err != nil {
		return DN{}, err
	}
	if len(rest) != 0 {
		return DN{}, fmt.Errorf("trailing data after RDNSequence")
	}
	return DN{seq: seq}, nil
}
