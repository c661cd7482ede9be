// Copyright (c) 2026 amannb All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package truststore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amannb/certpath/src/internal/x509/certinfo"
	"github.com/amannb/certpath/src/internal/x509/testpki"
	"github.com/amannb/certpath/src/internal/x509/truststore"
)

func TestStoreMembership(t *testing.T) {
	rootA, err := testpki.NewRoot(testpki.Spec{CommonName: "root-a"})
	require.NoError(t, err)
	rootB, err := testpki.NewRoot(testpki.Spec{CommonName: "root-b"})
	require.NoError(t, err)

	// Duplicates by raw DER collapse; nil entries are ignored.
	store := truststore.New(rootA.Cert, rootA.Cert, nil, rootB.Cert)
	assert.Equal(t, 2, store.Len())

	assert.True(t, store.Contains(rootA.Cert))
	assert.True(t, store.Contains(rootB.Cert))
	assert.False(t, store.Contains(nil))

	outsider, err := testpki.NewRoot(testpki.Spec{CommonName: "root-a"})
	require.NoError(t, err)
	assert.False(t, store.Contains(outsider.Cert),
		"a different certificate with the same subject is not a member")

	certs := store.Certificates()
	require.Len(t, certs, 2)
	assert.Equal(t, rootA.Cert.Raw, certs[0].Raw, "insertion order preserved")
}

func TestFindIssuers(t *testing.T) {
	root, err := testpki.NewRoot(testpki.Spec{CommonName: "issuer root"})
	require.NoError(t, err)
	leaf, err := root.Issue(testpki.Spec{CommonName: "leaf", DNSNames: []string{"leaf.example.com"}})
	require.NoError(t, err)

	other, err := testpki.NewRoot(testpki.Spec{CommonName: "other root"})
	require.NoError(t, err)

	store := truststore.New(root.Cert, other.Cert)

	issuers := store.FindIssuers(leaf.Cert.RawIssuer)
	require.Len(t, issuers, 1)
	assert.Equal(t, root.Cert.Raw, issuers[0].Raw)

	assert.Empty(t, store.FindIssuers([]byte("no such subject")))
}

func TestNewFromPEM(t *testing.T) {
	root, err := testpki.NewRoot(testpki.Spec{CommonName: "pem root"})
	require.NoError(t, err)

	store, err := truststore.NewFromPEM(certinfo.EncodePEM(root.Cert))
	require.NoError(t, err, "NewFromPEM() error")
	assert.Equal(t, 1, store.Len())
	assert.True(t, store.Contains(root.Cert))

	_, err = truststore.NewFromPEM([]byte("not a pem bundle"))
	assert.Error(t, err)
}
