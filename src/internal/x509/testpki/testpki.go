// Copyright (c) 2026 amannb All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package testpki

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"fmt"
	"math/big"
	"time"
)

// Identity pairs a certificate with its private key so it can issue
// further certificates in a generated hierarchy.
type Identity struct {
	Cert *x509.Certificate
	Key  crypto.Signer
}

// Spec describes the certificate to generate. Zero values get sensible
// defaults: ECDSA P-256 key, one-hour-old NotBefore, 24h lifetime,
// server-auth leaf usage or cert-sign CA usage.
type Spec struct {
	CommonName string
	Subject    *pkix.Name // overrides CommonName when set
	DNSNames   []string

	NotBefore time.Time
	NotAfter  time.Time

	IsCA           bool
	MaxPathLen     int  // honored when MaxPathLenSet
	MaxPathLenSet  bool //
	RSA            bool // generate an RSA 2048 key instead of ECDSA P-256
	KeyUsage       x509.KeyUsage
	ExtKeyUsage    []x509.ExtKeyUsage
	AIAIssuerURLs  []string
	SerialNumber   *big.Int
	OmitBasicConst bool // leave BasicConstraintsValid unset
}

// NewRoot generates a self-signed CA.
func NewRoot(spec Spec) (*Identity, error) {
	spec.IsCA = true
	key, err := generateKey(spec.RSA)
	if err != nil {
		return nil, err
	}

	tmpl, err := template(spec)
	if err != nil {
		return nil, err
	}

	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, key.Public(), key)
	if err != nil {
		return nil, fmt.Errorf("testpki: create root: %w", err)
	}

	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, err
	}
	return &Identity{Cert: cert, Key: key}, nil
}

// Issue generates a certificate signed by the receiver.
func (id *Identity) Issue(spec Spec) (*Identity, error) {
	key, err := generateKey(spec.RSA)
	if err != nil {
		return nil, err
	}

	tmpl, err := template(spec)
	if err != nil {
		return nil, err
	}

	der, err := x509.CreateCertificate(rand.Reader, tmpl, id.Cert, key.Public(), id.Key)
	if err != nil {
		return nil, fmt.Errorf("testpki: issue %q: %w", spec.CommonName, err)
	}

	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, err
	}
	return &Identity{Cert: cert, Key: key}, nil
}

// CrossSignedPair generates two CA certificates that mutually claim to
// issue each other, for exercising cycle detection in path building.
func CrossSignedPair() (*x509.Certificate, *x509.Certificate, error) {
	a, err := NewRoot(Spec{CommonName: "cross-a"})
	if err != nil {
		return nil, nil, err
	}
	b, err := NewRoot(Spec{CommonName: "cross-b"})
	if err != nil {
		return nil, nil, err
	}

	// a2 keeps a's subject and key but is signed by b, and vice versa.
	a2, err := reissue(a, b)
	if err != nil {
		return nil, nil, err
	}
	b2, err := reissue(b, a)
	if err != nil {
		return nil, nil, err
	}
	return a2, b2, nil
}

// reissue re-creates subject's certificate under issuer's name and key.
func reissue(subject, issuer *Identity) (*x509.Certificate, error) {
	tmpl := *subject.Cert
	tmpl.SerialNumber = mustSerial()

	der, err := x509.CreateCertificate(rand.Reader, &tmpl, issuer.Cert, subject.Key.Public(), issuer.Key)
	if err != nil {
		return nil, err
	}
	return x509.ParseCertificate(der)
}

func generateKey(useRSA bool) (crypto.Signer, error) {
	if useRSA {
		return rsa.GenerateKey(rand.Reader, 2048)
	}
	return ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
}

func template(spec Spec) (*x509.Certificate, error) {
	serial := spec.SerialNumber
	if serial == nil {
		serial = mustSerial()
	}

	subject := pkix.Name{CommonName: spec.CommonName}
	if spec.Subject != nil {
		subject = *spec.Subject
	}

	notBefore := spec.NotBefore
	if notBefore.IsZero() {
		notBefore = time.Now().Add(-time.Hour)
	}
	notAfter := spec.NotAfter
	if notAfter.IsZero() {
		notAfter = notBefore.Add(25 * time.Hour)
	}

	keyUsage := spec.KeyUsage
	if keyUsage == 0 {
		if spec.IsCA {
			keyUsage = x509.KeyUsageCertSign | x509.KeyUsageCRLSign
		} else {
			keyUsage = x509.KeyUsageDigitalSignature | x509.KeyUsageKeyEncipherment
		}
	}

	extKeyUsage := spec.ExtKeyUsage
	if extKeyUsage == nil && !spec.IsCA {
		extKeyUsage = []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth}
	}

	tmpl := &x509.Certificate{
		SerialNumber:          serial,
		Subject:               subject,
		NotBefore:             notBefore,
		NotAfter:              notAfter,
		IsCA:                  spec.IsCA,
		BasicConstraintsValid: !spec.OmitBasicConst,
		KeyUsage:              keyUsage,
		ExtKeyUsage:           extKeyUsage,
		DNSNames:              spec.DNSNames,
		IssuingCertificateURL: spec.AIAIssuerURLs,
	}

	if spec.MaxPathLenSet {
		tmpl.MaxPathLen = spec.MaxPathLen
		tmpl.MaxPathLenZero = spec.MaxPathLen == 0
	}

	return tmpl, nil
}

func mustSerial() *big.Int {
	limit := new(big.Int).Lsh(big.NewInt(1), 128)
	serial, err := rand.Int(rand.Reader, limit)
	if err != nil {
		panic(err)
	}
	return serial
}
