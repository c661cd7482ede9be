// Copyright (c) 2026 amannb All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amannb/certpath/src/cli"
	"github.com/amannb/certpath/src/internal/x509/certinfo"
	"github.com/amannb/certpath/src/internal/x509/testpki"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := cli.DefaultConfig()

	assert.Equal(t, cli.Duration(10*time.Second), cfg.FetchTimeout)
	assert.Equal(t, 1, cfg.FetchRetries)
	assert.Equal(t, "legacy", cfg.Policy)
	assert.Equal(t, "ssl-server", cfg.Usage)
	assert.Empty(t, cfg.Roots)
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "certpath.yaml", []byte(`
roots:
  - /etc/ssl/roots.pem
intermediates:
  - /etc/ssl/intermediates.pem
fetch_timeout: 30s
fetch_retries: 3
policy: pkix
usage: ssl-client
`))

	cfg, err := cli.LoadConfig(path)
	require.NoError(t, err, "LoadConfig() error")

	assert.Equal(t, []string{"/etc/ssl/roots.pem"}, cfg.Roots)
	assert.Equal(t, []string{"/etc/ssl/intermediates.pem"}, cfg.Intermediates)
	assert.Equal(t, cli.Duration(30*time.Second), cfg.FetchTimeout)
	assert.Equal(t, 3, cfg.FetchRetries)
	assert.Equal(t, "pkix", cfg.Policy)
	assert.Equal(t, "ssl-client", cfg.Usage)
}

func TestLoadConfigEmptyPathYieldsDefaults(t *testing.T) {
	cfg, err := cli.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, cli.DefaultConfig(), cfg)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := cli.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "a named but unreadable config file is an error")

	path := writeFile(t, "bad.yaml", []byte("fetch_timeout: not-a-duration\n"))
	_, err = cli.LoadConfig(path)
	assert.Error(t, err, "an invalid duration is an error")
}

func TestTrustStoreAndIntermediates(t *testing.T) {
	root, err := testpki.NewRoot(testpki.Spec{CommonName: "config root"})
	require.NoError(t, err)
	inter, err := root.Issue(testpki.Spec{CommonName: "config intermediate", IsCA: true})
	require.NoError(t, err)

	rootPath := writeFile(t, "roots.pem", certinfo.EncodePEM(root.Cert))
	interPath := writeFile(t, "intermediates.pem", certinfo.EncodePEM(inter.Cert))

	cfg := cli.DefaultConfig()
	cfg.Roots = []string{rootPath}
	cfg.Intermediates = []string{interPath}

	store, err := cfg.TrustStore()
	require.NoError(t, err, "TrustStore() error")
	assert.Equal(t, 1, store.Len())
	assert.True(t, store.Contains(root.Cert))

	intermediates, err := cfg.LoadIntermediates()
	require.NoError(t, err)
	require.Len(t, intermediates, 1)
	assert.Equal(t, inter.Cert.Raw, intermediates[0].Raw)

	// Extra bundles from the command line merge into the store.
	extra, err := testpki.NewRoot(testpki.Spec{CommonName: "extra root"})
	require.NoError(t, err)
	extraPath := writeFile(t, "extra.pem", certinfo.EncodePEM(extra.Cert))

	store, err = cfg.TrustStore(extraPath)
	require.NoError(t, err)
	assert.Equal(t, 2, store.Len())
	assert.True(t, store.Contains(extra.Cert))

	// Unreadable bundles fail loudly.
	cfg.Roots = []string{filepath.Join(t.TempDir(), "missing.pem")}
	_, err = cfg.TrustStore()
	assert.Error(t, err)
}
