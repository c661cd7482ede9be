// Copyright (c) 2026 amannb All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package inspect_test

import (
	"crypto/x509"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"

	x509chain "github.com/amannb/certpath/src/internal/x509/chain"
	"github.com/amannb/certpath/src/internal/x509/inspect"
	"github.com/amannb/certpath/src/internal/x509/testpki"
)

// reportSchema is the structural contract of the JSON report. Consumers
// rely on these field names and types staying put.
const reportSchema = `{
	"type": "object",
	"required": ["timestamp", "chainLength", "complete", "certificates", "relationships"],
	"properties": {
		"timestamp": {"type": "string"},
		"chainLength": {"type": "integer", "minimum": 0},
		"complete": {"type": "boolean"},
		"certificates": {
			"type": "array",
			"items": {
				"type": "object",
				"required": [
					"index", "role", "subject", "issuer", "serialNumber",
					"signatureAlgorithm", "publicKeyAlgorithm", "keySize",
					"notBefore", "notAfter", "isCA",
					"sha256Fingerprint", "sha1Fingerprint"
				],
				"properties": {
					"index": {"type": "integer", "minimum": 0},
					"role": {"type": "string"},
					"subject": {"type": "string"},
					"issuer": {"type": "string"},
					"serialNumber": {"type": "string"},
					"signatureAlgorithm": {"type": "string"},
					"publicKeyAlgorithm": {"type": "string"},
					"keySize": {"type": "integer", "minimum": 0},
					"notBefore": {"type": "string"},
					"notAfter": {"type": "string"},
					"isCA": {"type": "boolean"},
					"dnsNames": {"type": "array", "items": {"type": "string"}},
					"extensionOIDs": {"type": "array", "items": {"type": "string"}},
					"sha256Fingerprint": {"type": "string", "pattern": "^[0-9a-f]{64}$"},
					"sha1Fingerprint": {"type": "string", "pattern": "^[0-9a-f]{40}$"},
					"evIncorporationCountry": {"type": "string"},
					"evIncorporationLocality": {"type": "string"},
					"evIncorporationState": {"type": "string"}
				}
			}
		},
		"relationships": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["fromIndex", "toIndex", "type"],
				"properties": {
					"fromIndex": {"type": "integer"},
					"toIndex": {"type": "integer"},
					"type": {"type": "string"}
				}
			}
		}
	}
}`

func newReportChain(t *testing.T) *x509chain.Chain {
	t.Helper()

	root, err := testpki.NewRoot(testpki.Spec{CommonName: "report root"})
	require.NoError(t, err)
	inter, err := root.Issue(testpki.Spec{CommonName: "report intermediate", IsCA: true})
	require.NoError(t, err)
	leaf, err := inter.Issue(testpki.Spec{
		CommonName: "www.example.com",
		DNSNames:   []string{"www.example.com"},
	})
	require.NoError(t, err)

	return x509chain.NewChain([]*x509.Certificate{leaf.Cert, inter.Cert, root.Cert}, true)
}

func TestBuildReport(t *testing.T) {
	ch := newReportChain(t)

	report, err := inspect.BuildReport(ch)
	require.NoError(t, err, "BuildReport() error")

	assert.Equal(t, 3, report.ChainLength)
	assert.True(t, report.Complete)
	require.Len(t, report.Certificates, 3)

	assert.Equal(t, "End-Entity (Server/Leaf) Certificate", report.Certificates[0].Role)
	assert.Equal(t, "Intermediate CA Certificate", report.Certificates[1].Role)
	assert.Equal(t, "Root CA Certificate", report.Certificates[2].Role)

	assert.Contains(t, report.Certificates[0].Subject, "www.example.com")
	assert.Equal(t, []string{"www.example.com"}, report.Certificates[0].DNSNames)
	assert.False(t, report.Certificates[0].IsCA)
	assert.True(t, report.Certificates[2].IsCA)
	assert.Equal(t, 256, report.Certificates[0].KeySize)

	require.Len(t, report.Relationships, 2)
	assert.Equal(t, inspect.Relationship{FromIndex: 0, ToIndex: 1, Type: "signed_by"}, report.Relationships[0])
	assert.Equal(t, inspect.Relationship{FromIndex: 1, ToIndex: 2, Type: "signed_by"}, report.Relationships[1])
}

func TestBuildReportSingleCertificate(t *testing.T) {
	root, err := testpki.NewRoot(testpki.Spec{CommonName: "lonely root"})
	require.NoError(t, err)

	report, err := inspect.BuildReport(x509chain.NewChain([]*x509.Certificate{root.Cert}, true))
	require.NoError(t, err)

	require.Len(t, report.Certificates, 1)
	assert.Equal(t, "Self-Signed Certificate", report.Certificates[0].Role)
	assert.Empty(t, report.Relationships)
}

func TestReportJSONMatchesSchema(t *testing.T) {
	ch := newReportChain(t)

	report, err := inspect.BuildReport(ch)
	require.NoError(t, err)

	data, err := report.JSON()
	require.NoError(t, err, "JSON() error")

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(reportSchema),
		gojsonschema.NewBytesLoader(data),
	)
	require.NoError(t, err, "schema validation error")

	for _, desc := range result.Errors() {
		t.Errorf("schema violation: %s", desc)
	}
	assert.True(t, result.Valid())

	// The document round-trips as plain JSON too.
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.EqualValues(t, 3, decoded["chainLength"])
}

func TestRenderTree(t *testing.T) {
	ch := newReportChain(t)
	report, err := inspect.BuildReport(ch)
	require.NoError(t, err)

	statuses := map[string]string{
		report.Certificates[0].SerialNumber: "revoked",
	}

	tree := inspect.RenderTree(report, statuses)
	assert.Contains(t, tree, "├── ")
	assert.Contains(t, tree, "└── ")
	assert.Contains(t, tree, "www.example.com")
	assert.Contains(t, tree, "✗", "the revoked leaf is flagged")
	assert.Contains(t, tree, "✓")

	empty := inspect.RenderTree(&inspect.Report{}, nil)
	assert.Equal(t, "No certificates in chain", empty)
}

func TestRenderTable(t *testing.T) {
	ch := newReportChain(t)
	report, err := inspect.BuildReport(ch)
	require.NoError(t, err)

	table := inspect.RenderTable(report, nil)
	assert.Contains(t, table, "Subject")
	assert.Contains(t, table, "www.example.com")
	assert.Contains(t, table, "unknown", "missing statuses default to unknown")

	empty := inspect.RenderTable(&inspect.Report{}, nil)
	assert.Equal(t, "No certificates to display", empty)
}
