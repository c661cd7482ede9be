// Copyright (c) 2026 amannb All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509chain

import (
	"context"
	"crypto/x509"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/amannb/certpath/src/internal/helper/gc"
	"github.com/amannb/certpath/src/internal/x509/certinfo"
)

// HTTPConfig holds HTTP client configuration for certificate operations.
type HTTPConfig struct {
	Timeout   time.Duration // HTTP request timeout
	Version   string        // Application version for User-Agent
	UserAgent string        // Custom User-Agent string, if empty will be constructed from Version

	mu     sync.Mutex
	client *http.Client
}

// NewHTTPConfig creates a new HTTP configuration with a default timeout
// of 10 seconds and the provided application version.
func NewHTTPConfig(version string) *HTTPConfig {
	return &HTTPConfig{
		Timeout: 10 * time.Second,
		Version: version,
	}
}

// GetUserAgent returns the User-Agent string, constructing it from the
// application version if no custom value is set.
func (c *HTTPConfig) GetUserAgent() string {
	if c.UserAgent != "" {
		return c.UserAgent
	}
	return fmt.Sprintf("certpath/%s (+https://github.com/amannb/certpath)", c.Version)
}

// Client returns an HTTP client configured with the current timeout.
//
// Thread Safety: Safe for concurrent use.
func (c *HTTPConfig) Client() *http.Client {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client == nil {
		c.client = &http.Client{Timeout: c.Timeout}
		return c.client
	}

	if c.client.Timeout != c.Timeout {
		c.client.Timeout = c.Timeout
	}

	return c.client
}

// FetchError reports a failed AIA retrieval. It aborts only the search
// branch that needed the fetch, never the whole build.
type FetchError struct {
	URL      string
	Attempts int
	Err      error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	return fmt.Sprintf("x509chain: fetch %s failed after %d attempt(s): %v", e.URL, e.Attempts, e.Err)
}

// Unwrap returns the underlying transport or decode error.
func (e *FetchError) Unwrap() error { return e.Err }

// Fetcher retrieves issuer certificates from a CA-issuers URL found in
// the AIA extension. Implementations must honor ctx cancellation and
// bound their own retries, so a single build call can never stall
// indefinitely. Fetchers must be safe for concurrent use.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]*x509.Certificate, error)
}

// defaultFetchCacheSize bounds the per-fetcher LRU of resolved URLs.
// Issuer bundles are small and heavily shared between leaf certificates
// of the same CA, so even a modest cache removes most repeat fetches.
const defaultFetchCacheSize = 64

// HTTPFetcher is the default Fetcher: a plain GET of the CA-issuers URL
// expecting a DER, PEM, or PKCS7 certificate response, with a fixed retry
// budget and a bounded LRU cache of successful fetches.
//
// HTTPFetcher is safe for concurrent use.
type HTTPFetcher struct {
	Config  *HTTPConfig
	Retries int // extra attempts after the first; 0 means try once

	mu      sync.Mutex
	cache   map[string][]*x509.Certificate
	order   []string
	maxSize int
}

// NewHTTPFetcher creates an HTTPFetcher with default configuration and
// one retry.
func NewHTTPFetcher(version string) *HTTPFetcher {
	return &HTTPFetcher{
		Config:  NewHTTPConfig(version),
		Retries: 1,
	}
}

// Fetch downloads and decodes the certificate(s) at url. Responses are
// cached per URL; failures are wrapped in [*FetchError].
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]*x509.Certificate, error) {
	if certs, ok := f.cached(url); ok {
		return certs, nil
	}

	attempts := f.Retries + 1
	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			lastErr = err
			break
		}

		certs, err := f.fetchOnce(ctx, url)
		if err == nil {
			f.store(url, certs)
			return certs, nil
		}
		lastErr = err
	}

	return nil, &FetchError{URL: url, Attempts: attempts, Err: lastErr}
}

func (f *HTTPFetcher) fetchOnce(ctx context.Context, url string) ([]*x509.Certificate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.Config.GetUserAgent())

	resp, err := f.Config.Client().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	// Get a buffer from the pool
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()         // Reset the buffer to prevent data leaks
		gc.Default.Put(buf) // Return the buffer to the pool for reuse
	}()

	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, err
	}

	data := append([]byte(nil), buf.Bytes()...)
	return certinfo.DecodeMultiple(data)
}

// cached returns the cached certificates for url, refreshing its LRU slot.
func (f *HTTPFetcher) cached(url string) ([]*x509.Certificate, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	certs, ok := f.cache[url]
	if !ok {
		return nil, false
	}
	f.touch(url)
	return certs, true
}

// store inserts certs under url, evicting the least recently used entry
// when the cache is full.
func (f *HTTPFetcher) store(url string, certs []*x509.Certificate) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.cache == nil {
		f.cache = make(map[string][]*x509.Certificate)
	}
	if f.maxSize <= 0 {
		f.maxSize = defaultFetchCacheSize
	}

	for len(f.cache) >= f.maxSize && len(f.order) > 0 {
		lru := f.order[0]
		f.order = f.order[1:]
		delete(f.cache, lru)
	}

	f.cache[url] = certs
	f.touch(url)
}

// touch moves url to the most-recently-used end of the order list.
// Callers must hold f.mu.
func (f *HTTPFetcher) touch(url string) {
	for i, u := range f.order {
		if u == url {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	f.order = append(f.order, url)
}
