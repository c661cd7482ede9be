// Copyright (c) 2026 amannb All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package verify

import (
	"bytes"
	"context"
	"crypto/x509"
	"fmt"
	"net/http"

	"golang.org/x/crypto/ocsp"

	"github.com/amannb/certpath/src/internal/helper/gc"
	x509chain "github.com/amannb/certpath/src/internal/x509/chain"
)

// Status is the revocation state reported by a RevocationChecker.
type Status int

const (
	// StatusUnknown means the checker could not determine a state.
	StatusUnknown Status = iota
	// StatusGood means the certificate is not revoked.
	StatusGood
	// StatusRevoked means the certificate has been revoked.
	StatusRevoked
)

// String returns the display name of the status.
func (s Status) String() string {
	switch s {
	case StatusGood:
		return "good"
	case StatusRevoked:
		return "revoked"
	default:
		return "unknown"
	}
}

// RevocationChecker determines the revocation state of one certificate
// given its issuer. Implementations may perform network I/O and must
// honor ctx. They must be safe for concurrent use.
type RevocationChecker interface {
	Check(ctx context.Context, cert, issuer *x509.Certificate) (Status, error)
}

// checkRevocation runs the checker over every (certificate, issuer) pair
// in the chain. Revoked is always a failure; an undeterminable status is
// a failure only when the caller required revocation information.
func checkRevocation(ctx context.Context, certs []*x509.Certificate, opts Options, rec *recorder) {
	for i := 0; i < len(certs)-1 && !rec.stopped(); i++ {
		status, err := opts.Revocation.Check(ctx, certs[i], certs[i+1])
		switch {
		case err == nil && status == StatusRevoked:
			rec.add(certs[i], CodeRevoked)
		case (err != nil || status == StatusUnknown) && opts.RequireRevocation:
			rec.add(certs[i], CodeRevocationUnknown)
		}
	}
}

// OCSPChecker is the default RevocationChecker, querying the OCSP
// responder named by the certificate's authority-information-access
// extension. A certificate without an OCSP responder reports
// StatusUnknown with no error.
//
// OCSPChecker is safe for concurrent use.
type OCSPChecker struct {
	Config *x509chain.HTTPConfig
}

// NewOCSPChecker creates an OCSPChecker with default HTTP configuration.
func NewOCSPChecker(version string) *OCSPChecker {
	return &OCSPChecker{Config: x509chain.NewHTTPConfig(version)}
}

// Check queries the certificate's first OCSP responder (RFC 6960 POST).
func (c *OCSPChecker) Check(ctx context.Context, cert, issuer *x509.Certificate) (Status, error) {
	if len(cert.OCSPServer) == 0 {
		return StatusUnknown, nil
	}

	reqData, err := ocsp.CreateRequest(cert, issuer, nil)
	if err != nil {
		return StatusUnknown, fmt.Errorf("verify: create OCSP request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cert.OCSPServer[0], bytes.NewReader(reqData))
	if err != nil {
		return StatusUnknown, fmt.Errorf("verify: create OCSP HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/ocsp-request")
	req.Header.Set("Accept", "application/ocsp-response")
	req.Header.Set("User-Agent", c.Config.GetUserAgent())

	resp, err := c.Config.Client().Do(req)
	if err != nil {
		return StatusUnknown, fmt.Errorf("verify: OCSP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return StatusUnknown, fmt.Errorf("verify: OCSP responder returned status %d", resp.StatusCode)
	}

	// Get a buffer from the pool
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()         // Reset the buffer to prevent data leaks
		gc.Default.Put(buf) // Return the buffer to the pool for reuse
	}()

	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return StatusUnknown, fmt.Errorf("verify: read OCSP response: %w", err)
	}

	parsed, err := ocsp.ParseResponseForCert(buf.Bytes(), cert, issuer)
	if err != nil {
		return StatusUnknown, fmt.Errorf("verify: parse OCSP response: %w", err)
	}

	switch parsed.Status {
	case ocsp.Good:
		return StatusGood, nil
	case ocsp.Revoked:
		return StatusRevoked, nil
	default:
		return StatusUnknown, nil
	}
}
