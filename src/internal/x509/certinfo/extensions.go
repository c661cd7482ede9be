// Copyright (c) 2026 amannb All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package certinfo

import (
	"encoding/asn1"
	"fmt"
)

// Extension OIDs decoded by this package.
var (
	OIDExtSubjectAltName       = asn1.ObjectIdentifier{2, 5, 29, 17}
	OIDExtCertificatePolicies  = asn1.ObjectIdentifier{2, 5, 29, 32}
	OIDExtBasicConstraints     = asn1.ObjectIdentifier{2, 5, 29, 19}
	OIDExtAuthorityInfoAccess  = asn1.ObjectIdentifier{1, 3, 6, 1, 5, 5, 7, 1, 1}
	OIDExtKeyUsage             = asn1.ObjectIdentifier{2, 5, 29, 15}
	OIDExtExtendedKeyUsage     = asn1.ObjectIdentifier{2, 5, 29, 37}
	OIDExtCRLDistributionPoint = asn1.ObjectIdentifier{2, 5, 29, 31}
)

// ExtensionDecodeError reports that a specific extension's value is
// malformed. It is scoped to the accessor that decoded the extension;
// the rest of the certificate remains readable.
type ExtensionDecodeError struct {
	OID asn1.ObjectIdentifier
	Err error
}

// Error implements the error interface.
func (e *ExtensionDecodeError) Error() string {
	return fmt.Sprintf("certinfo: malformed extension %s: %v", e.OID, e.Err)
}

// Unwrap returns the underlying decode error.
func (e *ExtensionDecodeError) Unwrap() error { return e.Err }

// ExtensionOIDs returns the OIDs of all extensions present on the
// certificate, dotted-decimal, in encounter order.
func (i *Info) ExtensionOIDs() []string {
	out := make([]string, 0, len(i.cert.Extensions))
	for _, ext := range i.cert.Extensions {
		out = append(out, ext.Id.String())
	}
	return out
}

// HasExtension reports whether the certificate carries the extension.
func (i *Info) HasExtension(oid asn1.ObjectIdentifier) bool {
	for _, ext := range i.cert.Extensions {
		if ext.Id.Equal(oid) {
			return true
		}
	}
	return false
}

// rawExtension returns the raw value of the extension, if present.
func (i *Info) rawExtension(oid asn1.ObjectIdentifier) ([]byte, bool) {
	for _, ext := range i.cert.Extensions {
		if ext.Id.Equal(oid) {
			return ext.Value, true
		}
	}
	return nil, false
}

// DNSNames returns the dNSName entries of the Subject Alternative Name
// extension, in encounter order. When the extension is absent, it returns
// (nil, false, nil). A present-but-malformed extension yields an
// [*ExtensionDecodeError] without invalidating the certificate.
func (i *Info) DNSNames() (names []string, present bool, err error) {
	raw, ok := i.rawExtension(OIDExtSubjectAltName)
	if !ok {
		return nil, false, nil
	}

	names, err = parseSANDNSNames(raw)
	if err != nil {
		return nil, true, &ExtensionDecodeError{OID: OIDExtSubjectAltName, Err: err}
	}
	return names, true, nil
}

// parseSANDNSNames walks the GeneralNames sequence collecting dNSName
// entries (context tag 2, IA5String).
func parseSANDNSNames(der []byte) ([]string, error) {
	var seq asn1.RawValue
	rest, err := asn1.Unmarshal(der, &seq)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("trailing data after GeneralNames")
	}
	if !seq.IsCompound || seq.Tag != asn1.TagSequence || seq.Class != asn1.ClassUniversal {
		return nil, fmt.Errorf("not a GeneralNames sequence")
	}

	var names []string
	data := seq.Bytes
	for len(data) > 0 {
		var v asn1.RawValue
		data, err = asn1.Unmarshal(data, &v)
		if err != nil {
			return nil, err
		}
		if v.Class == asn1.ClassContextSpecific && v.Tag == 2 {
			names = append(names, string(v.Bytes))
		}
	}
	return names, nil
}

// policyInformation mirrors the PolicyInformation structure of the
// certificatePolicies extension. Qualifiers are retained raw.
type policyInformation struct {
	Policy     asn1.ObjectIdentifier
	Qualifiers asn1.RawValue `asn1:"optional"`
}

// PolicyOIDs returns the certificate-policy OIDs, dotted-decimal, in
// encounter order. Absent extension yields (nil, false, nil); a malformed
// extension yields an [*ExtensionDecodeError].
func (i *Info) PolicyOIDs() (oids []string, present bool, err error) {
	raw, ok := i.rawExtension(OIDExtCertificatePolicies)
	if !ok {
		return nil, false, nil
	}

	var policies []policyInformation
	rest, err := asn1.Unmarshal(raw, &policies)
	if err != nil {
		return nil, true, &ExtensionDecodeError{OID: OIDExtCertificatePolicies, Err: err}
	}
	if len(rest) != 0 {
		return nil, true, &ExtensionDecodeError{
			OID: OIDExtCertificatePolicies,
			Err: fmt.Errorf("trailing data after certificatePolicies"),
		}
	}

	oids = make([]string, 0, len(policies))
	for _, p := range policies {
		oids = append(oids, p.Policy.String())
	}
	return oids, true, nil
}

// AIAIssuerURLs returns the CA-issuers URLs from the Authority Information
// Access extension, used to locate the issuing certificate.
func (i *Info) AIAIssuerURLs() []string { return i.cert.IssuingCertificateURL }
