// Copyright (c) 2026 amannb All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509chain_test

import (
	"context"
	"crypto/x509"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	x509chain "github.com/amannb/certpath/src/internal/x509/chain"
	"github.com/amannb/certpath/src/internal/x509/testpki"
	"github.com/amannb/certpath/src/internal/x509/truststore"
)

// stubFetcher maps AIA URLs to canned responses for hermetic builds.
type stubFetcher struct {
	mu        sync.Mutex
	responses map[string][]*x509.Certificate
	calls     map[string]int
}

func (f *stubFetcher) Fetch(ctx context.Context, url string) ([]*x509.Certificate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.calls == nil {
		f.calls = make(map[string]int)
	}
	f.calls[url]++

	certs, ok := f.responses[url]
	if !ok {
		return nil, &x509chain.FetchError{URL: url, Attempts: 1, Err: errors.New("no responder")}
	}
	return certs, nil
}

// stubRepository looks certificates up by nickname.
type stubRepository map[string]*x509.Certificate

func (r stubRepository) Lookup(nickname string) (*x509.Certificate, bool) {
	cert, ok := r[nickname]
	return cert, ok
}

// newHierarchy generates root -> intermediate -> leaf. aiaURL, when
// non-empty, is placed on the leaf as its CA-issuers pointer.
func newHierarchy(t *testing.T, aiaURL string) (root, inter, leaf *testpki.Identity) {
	t.Helper()

	root, err := testpki.NewRoot(testpki.Spec{CommonName: "build test root"})
	require.NoError(t, err)

	inter, err = root.Issue(testpki.Spec{CommonName: "build test intermediate", IsCA: true})
	require.NoError(t, err)

	var urls []string
	if aiaURL != "" {
		urls = []string{aiaURL}
	}
	leaf, err = inter.Issue(testpki.Spec{
		CommonName:    "www.example.com",
		DNSNames:      []string{"www.example.com"},
		AIAIssuerURLs: urls,
	})
	require.NoError(t, err)

	return root, inter, leaf
}

func TestBuildWithLocalIntermediates(t *testing.T) {
	root, inter, leaf := newHierarchy(t, "")

	builder := &x509chain.Builder{
		Store:         truststore.New(root.Cert),
		Intermediates: []*x509.Certificate{inter.Cert},
	}

	ch, err := builder.Build(context.Background(), leaf.Cert)
	require.NoError(t, err, "Build() error")

	assert.True(t, ch.Complete())
	require.Equal(t, 3, ch.Len())

	certs := ch.Certs()
	assert.Equal(t, leaf.Cert.Raw, certs[0].Raw, "leaf first")
	assert.Equal(t, inter.Cert.Raw, certs[1].Raw)
	assert.Equal(t, root.Cert.Raw, certs[2].Raw, "root last")

	assert.Equal(t, leaf.Cert.Raw, ch.Leaf().Raw)
	assert.Equal(t, root.Cert.Raw, ch.Root().Raw)
	require.Len(t, ch.Intermediates(), 1)
	assert.Equal(t, inter.Cert.Raw, ch.Intermediates()[0].Raw)
}

func TestBuildViaAIAFetch(t *testing.T) {
	const interURL = "http://pki.test/intermediate.der"
	root, inter, leaf := newHierarchy(t, interURL)

	fetcher := &stubFetcher{responses: map[string][]*x509.Certificate{
		interURL: {inter.Cert},
	}}

	builder := &x509chain.Builder{
		Store:   truststore.New(root.Cert),
		Fetcher: fetcher,
	}

	ch, err := builder.Build(context.Background(), leaf.Cert)
	require.NoError(t, err)
	assert.True(t, ch.Complete())
	assert.Equal(t, 3, ch.Len())
	assert.Equal(t, 1, fetcher.calls[interURL])
}

func TestBuildFetchFailureAbortsBranchOnly(t *testing.T) {
	const interURL = "http://pki.test/unreachable.der"
	root, inter, leaf := newHierarchy(t, interURL)

	// The fetch fails, but the same intermediate is available locally,
	// so the build still completes.
	builder := &x509chain.Builder{
		Store:         truststore.New(root.Cert),
		Intermediates: []*x509.Certificate{inter.Cert},
		Fetcher:       &stubFetcher{},
	}

	ch, err := builder.Build(context.Background(), leaf.Cert)
	require.NoError(t, err)
	assert.True(t, ch.Complete())
	assert.Equal(t, 3, ch.Len())
}

func TestBuildIncompleteReturnsLongestPartial(t *testing.T) {
	_, inter, leaf := newHierarchy(t, "")

	// No trusted root anywhere: the builder exhausts candidates and
	// hands back the longest partial path it reached.
	builder := &x509chain.Builder{
		Store:         truststore.New(),
		Intermediates: []*x509.Certificate{inter.Cert},
	}

	ch, err := builder.Build(context.Background(), leaf.Cert)
	require.ErrorIs(t, err, x509chain.ErrChainIncomplete)
	require.NotNil(t, ch)
	assert.False(t, ch.Complete())
	assert.Equal(t, 2, ch.Len(), "partial path should include the reachable intermediate")
}

func TestBuildTerminatesOnCrossSignedCycle(t *testing.T) {
	a, b, err := testpki.CrossSignedPair()
	require.NoError(t, err)

	builder := &x509chain.Builder{
		Store:         truststore.New(),
		Intermediates: []*x509.Certificate{a, b},
	}

	// The pair mutually claim to issue each other; without path
	// membership checks this search would never end.
	ch, err := builder.Build(context.Background(), a)
	require.ErrorIs(t, err, x509chain.ErrChainIncomplete)
	assert.False(t, ch.Complete())
	assert.LessOrEqual(t, ch.Len(), 2)
}

func TestBuildUsesNicknameRepository(t *testing.T) {
	root, inter, leaf := newHierarchy(t, "")

	builder := &x509chain.Builder{
		Store:      truststore.New(root.Cert),
		Repository: stubRepository{"build test intermediate": inter.Cert},
	}

	ch, err := builder.Build(context.Background(), leaf.Cert)
	require.NoError(t, err)
	assert.True(t, ch.Complete())
	assert.Equal(t, 3, ch.Len())
}

func TestBuildNilLeaf(t *testing.T) {
	builder := &x509chain.Builder{Store: truststore.New()}
	_, err := builder.Build(context.Background(), nil)
	assert.ErrorIs(t, err, x509chain.ErrNoLeaf)
}

func TestBuildHonorsContextCancellation(t *testing.T) {
	root, inter, leaf := newHierarchy(t, "")

	builder := &x509chain.Builder{
		Store:         truststore.New(root.Cert),
		Intermediates: []*x509.Certificate{inter.Cert},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ch, err := builder.Build(ctx, leaf.Cert)
	require.ErrorIs(t, err, x509chain.ErrChainIncomplete)
	assert.False(t, ch.Complete())
}

func TestBuildSelfSignedLeaf(t *testing.T) {
	root, err := testpki.NewRoot(testpki.Spec{CommonName: "standalone root"})
	require.NoError(t, err)

	// Trusted: a one-certificate complete chain.
	builder := &x509chain.Builder{Store: truststore.New(root.Cert)}
	ch, err := builder.Build(context.Background(), root.Cert)
	require.NoError(t, err)
	assert.True(t, ch.Complete())
	assert.Equal(t, 1, ch.Len())

	// Untrusted: nothing further to chase.
	builder = &x509chain.Builder{Store: truststore.New()}
	ch, err = builder.Build(context.Background(), root.Cert)
	require.ErrorIs(t, err, x509chain.ErrChainIncomplete)
	assert.Equal(t, 1, ch.Len())
}

func TestFetchErrorMessage(t *testing.T) {
	inner := errors.New("connection refused")
	err := &x509chain.FetchError{URL: "http://pki.test/ca.der", Attempts: 2, Err: inner}

	assert.ErrorIs(t, err, inner)
	assert.Equal(t,
		fmt.Sprintf("x509chain: fetch %s failed after %d attempt(s): %v", "http://pki.test/ca.der", 2, inner),
		err.Error())
}
