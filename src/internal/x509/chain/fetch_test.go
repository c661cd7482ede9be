// Copyright (c) 2026 amannb All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509chain_test

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amannb/certpath/src/internal/x509/certinfo"
	x509chain "github.com/amannb/certpath/src/internal/x509/chain"
	"github.com/amannb/certpath/src/internal/x509/testpki"
)

func TestHTTPFetcherFetchAndCache(t *testing.T) {
	inter, err := testpki.NewRoot(testpki.Spec{CommonName: "aia intermediate"})
	require.NoError(t, err)

	var hits atomic.Int64
	var lastUserAgent atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		lastUserAgent.Store(r.Header.Get("User-Agent"))
		w.Write(certinfo.EncodeDER(inter.Cert))
	}))
	defer server.Close()

	fetcher := x509chain.NewHTTPFetcher("0.0.0-test")

	certs, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err, "Fetch() error")
	require.Len(t, certs, 1)
	assert.Equal(t, inter.Cert.Raw, certs[0].Raw)
	assert.Contains(t, lastUserAgent.Load().(string), "certpath/0.0.0-test")

	// The second fetch of the same URL is served from the LRU cache.
	certs, err = fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	require.Len(t, certs, 1)
	assert.Equal(t, int64(1), hits.Load(), "cached fetch must not hit the server again")
}

func TestHTTPFetcherRetries(t *testing.T) {
	inter, err := testpki.NewRoot(testpki.Spec{CommonName: "flaky intermediate"})
	require.NoError(t, err)

	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			http.Error(w, "transient", http.StatusInternalServerError)
			return
		}
		w.Write(certinfo.EncodeDER(inter.Cert))
	}))
	defer server.Close()

	fetcher := x509chain.NewHTTPFetcher("0.0.0-test") // one retry by default

	certs, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err, "the retry should have recovered the fetch")
	require.Len(t, certs, 1)
	assert.Equal(t, int64(2), hits.Load())
}

func TestHTTPFetcherExhaustedRetries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	fetcher := x509chain.NewHTTPFetcher("0.0.0-test")
	fetcher.Retries = 2

	_, err := fetcher.Fetch(context.Background(), server.URL)
	require.Error(t, err)

	var fetchErr *x509chain.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, server.URL, fetchErr.URL)
	assert.Equal(t, 3, fetchErr.Attempts)
}

func TestHTTPFetcherContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(50 * time.Millisecond)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fetcher := x509chain.NewHTTPFetcher("0.0.0-test")
	_, err := fetcher.Fetch(ctx, server.URL)

	var fetchErr *x509chain.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.ErrorIs(t, fetchErr.Err, context.Canceled)
}

func TestHTTPConfigUserAgent(t *testing.T) {
	config := x509chain.NewHTTPConfig("1.2.3")
	assert.Equal(t, "certpath/1.2.3 (+https://github.com/amannb/certpath)", config.GetUserAgent())

	config.UserAgent = "custom-agent/9"
	assert.Equal(t, "custom-agent/9", config.GetUserAgent())

	assert.Equal(t, 10*time.Second, config.Timeout)
	assert.Same(t, config.Client(), config.Client(), "client is constructed once")
}

func TestFetchRemotePeers(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	parsed, err := url.Parse(server.URL)
	require.NoError(t, err)
	host, portStr, err := net.SplitHostPort(parsed.Host)
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	peers, err := x509chain.FetchRemotePeers(context.Background(), host, port, 5*time.Second)
	require.NoError(t, err, "FetchRemotePeers() error")
	require.NotEmpty(t, peers)
	assert.Equal(t, server.Certificate().Raw, peers[0].Raw, "leaf comes first")
}
