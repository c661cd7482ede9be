// Copyright (c) 2026 amannb All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package verify

import (
	"crypto/x509"
	"fmt"
)

// Usage selects the purpose a chain is verified for. The zero value is
// UsageSSLServer, matching the most common TLS-client caller.
type Usage int

const (
	// UsageSSLServer verifies the leaf as a TLS server certificate.
	UsageSSLServer Usage = iota
	// UsageSSLClient verifies the leaf as a TLS client certificate.
	UsageSSLClient
	// UsageEmailSigner verifies the leaf for S/MIME signing.
	UsageEmailSigner
	// UsageEmailRecipient verifies the leaf for S/MIME encryption.
	UsageEmailRecipient
	// UsageObjectSigner verifies the leaf for code/object signing.
	UsageObjectSigner
	// UsageAnyCA verifies the leaf as a certificate authority.
	UsageAnyCA
)

// String returns the CLI-facing name of the usage.
func (u Usage) String() string {
	switch u {
	case UsageSSLServer:
		return "ssl-server"
	case UsageSSLClient:
		return "ssl-client"
	case UsageEmailSigner:
		return "email-signer"
	case UsageEmailRecipient:
		return "email-recipient"
	case UsageObjectSigner:
		return "object-signer"
	case UsageAnyCA:
		return "any-ca"
	default:
		return "unknown"
	}
}

// ParseUsage converts a CLI-facing usage name into a Usage.
func ParseUsage(s string) (Usage, error) {
	for _, u := range []Usage{
		UsageSSLServer, UsageSSLClient, UsageEmailSigner,
		UsageEmailRecipient, UsageObjectSigner, UsageAnyCA,
	} {
		if u.String() == s {
			return u, nil
		}
	}
	return 0, fmt.Errorf("verify: unknown usage %q", s)
}

// extKeyUsage maps the usage onto the extended-key-usage value expected
// on the leaf. UsageAnyCA has no EKU mapping and is handled separately.
func (u Usage) extKeyUsage() (x509.ExtKeyUsage, bool) {
	switch u {
	case UsageSSLServer:
		return x509.ExtKeyUsageServerAuth, true
	case UsageSSLClient:
		return x509.ExtKeyUsageClientAuth, true
	case UsageEmailSigner, UsageEmailRecipient:
		return x509.ExtKeyUsageEmailProtection, true
	case UsageObjectSigner:
		return x509.ExtKeyUsageCodeSigning, true
	default:
		return 0, false
	}
}

// checkLeaf reports whether the leaf certificate is consistent with the
// usage. A leaf without an extended-key-usage extension is treated as
// unconstrained.
func (u Usage) checkLeaf(leaf *x509.Certificate) Code {
	if u == UsageAnyCA {
		if !leaf.BasicConstraintsValid || !leaf.IsCA {
			return CodeUsageMismatch
		}
		if leaf.KeyUsage != 0 && leaf.KeyUsage&x509.KeyUsageCertSign == 0 {
			return CodeUsageMismatch
		}
		return CodeOK
	}

	want, ok := u.extKeyUsage()
	if !ok || len(leaf.ExtKeyUsage) == 0 {
		return CodeOK
	}
	for _, eku := range leaf.ExtKeyUsage {
		if eku == want || eku == x509.ExtKeyUsageAny {
			return CodeOK
		}
	}
	return CodeUsageMismatch
}
