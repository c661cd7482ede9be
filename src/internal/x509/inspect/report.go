// Copyright (c) 2026 amannb All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package inspect

import (
	"encoding/json"
	"time"

	"github.com/amannb/certpath/src/internal/x509/certinfo"
	x509chain "github.com/amannb/certpath/src/internal/x509/chain"
)

// CertificateReport is the externally-visible summary of one certificate
// in a chain. Field names are part of the JSON report contract.
type CertificateReport struct {
	Index              int       `json:"index"`
	Role               string    `json:"role"`
	Subject            string    `json:"subject"`
	Issuer             string    `json:"issuer"`
	SerialNumber       string    `json:"serialNumber"`
	SignatureAlgorithm string    `json:"signatureAlgorithm"`
	PublicKeyAlgorithm string    `json:"publicKeyAlgorithm"`
	KeySize            int       `json:"keySize"`
	NotBefore          time.Time `json:"notBefore"`
	NotAfter           time.Time `json:"notAfter"`
	IsCA               bool      `json:"isCA"`
	DNSNames           []string  `json:"dnsNames,omitempty"`
	ExtensionOIDs      []string  `json:"extensionOIDs,omitempty"`
	SHA256Fingerprint  string    `json:"sha256Fingerprint"`
	SHA1Fingerprint    string    `json:"sha1Fingerprint"`

	// EV jurisdiction-of-incorporation fields; omitted entirely on
	// non-EV certificates rather than defaulted.
	EVIncorporationCountry  string `json:"evIncorporationCountry,omitempty"`
	EVIncorporationLocality string `json:"evIncorporationLocality,omitempty"`
	EVIncorporationState    string `json:"evIncorporationState,omitempty"`
}

// Relationship records that one certificate is signed by another.
type Relationship struct {
	FromIndex int    `json:"fromIndex"`
	ToIndex   int    `json:"toIndex"`
	Type      string `json:"type"`
}

// Report is the chain-level inspection report.
type Report struct {
	Timestamp     string              `json:"timestamp"`
	ChainLength   int                 `json:"chainLength"`
	Complete      bool                `json:"complete"`
	Certificates  []CertificateReport `json:"certificates"`
	Relationships []Relationship      `json:"relationships"`
}

// BuildReport summarizes a chain for JSON output or rendering.
func BuildReport(ch *x509chain.Chain) (*Report, error) {
	certs := ch.Certs()

	report := &Report{
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		ChainLength:   len(certs),
		Complete:      ch.Complete(),
		Certificates:  make([]CertificateReport, 0, len(certs)),
		Relationships: make([]Relationship, 0, max(len(certs)-1, 0)),
	}

	for i, cert := range certs {
		info, err := certinfo.FromCertificate(cert)
		if err != nil {
			return nil, err
		}

		cr := CertificateReport{
			Index:              i,
			Role:               role(i, len(certs)),
			Subject:            info.Subject().String(),
			Issuer:             info.Issuer().String(),
			SerialNumber:       info.SerialNumberHex(),
			SignatureAlgorithm: info.SignatureAlgorithm(),
			PublicKeyAlgorithm: info.PublicKeyAlgorithm(),
			KeySize:            info.BitLength(),
			NotBefore:          info.NotBefore(),
			NotAfter:           info.NotAfter(),
			IsCA:               info.IsCA(),
			ExtensionOIDs:      info.ExtensionOIDs(),
			SHA256Fingerprint:  info.FingerprintSHA256(),
			SHA1Fingerprint:    info.FingerprintSHA1(),
		}

		// A malformed SAN degrades to an empty name list; the rest of
		// the report stays intact.
		if names, _, err := info.DNSNames(); err == nil {
			cr.DNSNames = names
		}

		subject := info.Subject()
		cr.EVIncorporationCountry, _ = subject.EVIncorporationCountry()
		cr.EVIncorporationLocality, _ = subject.EVIncorporationLocality()
		cr.EVIncorporationState, _ = subject.EVIncorporationState()

		report.Certificates = append(report.Certificates, cr)
	}

	for i := 0; i < len(certs)-1; i++ {
		report.Relationships = append(report.Relationships, Relationship{
			FromIndex: i,
			ToIndex:   i + 1,
			Type:      "signed_by",
		})
	}

	return report, nil
}

// JSON renders the report with indentation for human and tool consumption.
func (r *Report) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// role describes a certificate's position within the chain.
func role(index, total int) string {
	switch {
	case total == 1:
		return "Self-Signed Certificate"
	case index == 0:
		return "End-Entity (Server/Leaf) Certificate"
	case index == total-1:
		return "Root CA Certificate"
	default:
		return "Intermediate CA Certificate"
	}
}
