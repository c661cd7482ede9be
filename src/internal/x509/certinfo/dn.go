// Copyright (c) 2026 amannb All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package certinfo

import (
	"crypto/x509/pkix"
	"encoding/asn1"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Attribute type OIDs appearing in subject and issuer distinguished names.
// The jurisdiction-of-incorporation OIDs carry the Extended Validation
// fields defined by the CA/Browser Forum EV guidelines.
var (
	OIDCommonName             = asn1.ObjectIdentifier{2, 5, 4, 3}
	OIDSubjectSerialNumber    = asn1.ObjectIdentifier{2, 5, 4, 5}
	OIDCountry                = asn1.ObjectIdentifier{2, 5, 4, 6}
	OIDLocality               = asn1.ObjectIdentifier{2, 5, 4, 7}
	OIDProvince               = asn1.ObjectIdentifier{2, 5, 4, 8}
	OIDStreetAddress          = asn1.ObjectIdentifier{2, 5, 4, 9}
	OIDOrganization           = asn1.ObjectIdentifier{2, 5, 4, 10}
	OIDOrganizationalUnit     = asn1.ObjectIdentifier{2, 5, 4, 11}
	OIDBusinessCategory       = asn1.ObjectIdentifier{2, 5, 4, 15}
	OIDPostalCode             = asn1.ObjectIdentifier{2, 5, 4, 17}
	OIDEVJurisdictionLocality = asn1.ObjectIdentifier{1, 3, 6, 1, 4, 1, 311, 60, 2, 1, 1}
	OIDEVJurisdictionProvince = asn1.ObjectIdentifier{1, 3, 6, 1, 4, 1, 311, 60, 2, 1, 2}
	OIDEVJurisdictionCountry  = asn1.ObjectIdentifier{1, 3, 6, 1, 4, 1, 311, 60, 2, 1, 3}
)

// DN is a decoded distinguished name: an ordered sequence of attribute
// type/value pairs, preserving the encounter order of the encoding.
//
// X.509 subjects list RDNs least-specific first, so "most specific"
// single-value accessors return the LAST occurrence of an attribute.
type DN struct {
	seq pkix.RDNSequence
}

// Values returns every string value for the given attribute type, in
// encounter order. Multi-valued attributes (several OU entries, say)
// come back as one ordered slice.
func (d DN) Values(oid asn1.ObjectIdentifier) []string {
	var out []string
	for _, rdn := range d.seq {
		for _, atv := range rdn {
			if !atv.Type.Equal(oid) {
				continue
			}
			if s, ok := atv.Value.(string); ok {
				out = append(out, s)
			}
		}
	}
	return out
}

// Last returns the most specific (last encountered) value for the given
// attribute type. ok is false when the attribute is absent.
func (d DN) Last(oid asn1.ObjectIdentifier) (value string, ok bool) {
	values := d.Values(oid)
	if len(values) == 0 {
		return "", false
	}
	return values[len(values)-1], true
}

// CommonName returns the most specific common name.
func (d DN) CommonName() (string, bool) { return d.Last(OIDCommonName) }

// CommonNames returns all common-name values in encounter order.
func (d DN) CommonNames() []string { return d.Values(OIDCommonName) }

// Organization returns the most specific organization value.
func (d DN) Organization() (string, bool) { return d.Last(OIDOrganization) }

// Organizations returns all organization values in encounter order.
func (d DN) Organizations() []string { return d.Values(OIDOrganization) }

// OrganizationalUnit returns the most specific organizational-unit value.
func (d DN) OrganizationalUnit() (string, bool) { return d.Last(OIDOrganizationalUnit) }

// OrganizationalUnits returns all organizational-unit values in encounter order.
func (d DN) OrganizationalUnits() []string { return d.Values(OIDOrganizationalUnit) }

// Locality returns the most specific locality value.
func (d DN) Locality() (string, bool) { return d.Last(OIDLocality) }

// Province returns the most specific state-or-province value.
func (d DN) Province() (string, bool) { return d.Last(OIDProvince) }

// Country returns the most specific country value.
func (d DN) Country() (string, bool) { return d.Last(OIDCountry) }

// StreetAddress returns the most specific street-address value.
func (d DN) StreetAddress() (string, bool) { return d.Last(OIDStreetAddress) }

// PostalCode returns the most specific postal-code value.
func (d DN) PostalCode() (string, bool) { return d.Last(OIDPostalCode) }

// BusinessCategory returns the most specific business-category value.
func (d DN) BusinessCategory() (string, bool) { return d.Last(OIDBusinessCategory) }

// SerialNumber returns the subject serialNumber attribute (2.5.4.5),
// which is distinct from the certificate serial number.
func (d DN) SerialNumber() (string, bool) { return d.Last(OIDSubjectSerialNumber) }

// EVIncorporationCountry returns the EV jurisdiction-of-incorporation
// country. Absent on non-EV certificates.
func (d DN) EVIncorporationCountry() (string, bool) { return d.Last(OIDEVJurisdictionCountry) }

// EVIncorporationLocality returns the EV jurisdiction-of-incorporation
// locality. Absent on non-EV certificates.
func (d DN) EVIncorporationLocality() (string, bool) { return d.Last(OIDEVJurisdictionLocality) }

// EVIncorporationState returns the EV jurisdiction-of-incorporation
// state or province. Absent on non-EV certificates.
func (d DN) EVIncorporationState() (string, bool) { return d.Last(OIDEVJurisdictionProvince) }

// String renders the DN in RFC 2253 style, least-specific RDN first.
func (d DN) String() string { return d.seq.String() }

// Normalized returns a canonical form of the DN string for loose name
// comparison: NFC-normalized, case-folded, with insignificant spacing
// collapsed. Chain building compares raw encodings first and falls back
// to this form for encodings that differ only in string representation.
func (d DN) Normalized() string {
	s := norm.NFC.String(d.String())
	s = strings.ToLower(s)
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeName canonicalizes a raw DER-encoded distinguished name for
// comparison. Undecodable names normalize to the empty string.
func NormalizeName(raw []byte) string {
	dn, err := parseDN(raw)
	if err != nil {
		return ""
	}
	return dn.Normalized()
}
