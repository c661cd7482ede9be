// Copyright (c) 2026 amannb All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"crypto/x509"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/amannb/certpath/src/internal/x509/certinfo"
	"github.com/amannb/certpath/src/internal/x509/truststore"
)

// Duration wraps time.Duration for YAML config values like "10s".
type Duration time.Duration

// UnmarshalYAML parses a Go duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("cli: invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Config holds the CLI configuration, loadable from a YAML file.
type Config struct {
	// Roots lists PEM bundle paths whose certificates form the trust store.
	Roots []string `yaml:"roots"`

	// Intermediates lists PEM bundle paths supplied to the chain builder
	// as explicit issuer candidates.
	Intermediates []string `yaml:"intermediates"`

	// FetchTimeout bounds each AIA HTTP request. Default 10s.
	FetchTimeout Duration `yaml:"fetch_timeout"`

	// FetchRetries is the number of extra attempts per AIA URL. Default 1.
	FetchRetries int `yaml:"fetch_retries"`

	// Policy is the default verification policy: "legacy" or "pkix".
	Policy string `yaml:"policy"`

	// Usage is the default verification usage, e.g. "ssl-server".
	Usage string `yaml:"usage"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		FetchTimeout: Duration(10 * time.Second),
		FetchRetries: 1,
		Policy:       "legacy",
		Usage:        "ssl-server",
	}
}

// LoadConfig reads a YAML config file. An empty path yields defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cli: read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("cli: parse config: %w", err)
	}

	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = Duration(10 * time.Second)
	}
	if cfg.FetchRetries < 0 {
		cfg.FetchRetries = 0
	}
	return cfg, nil
}

// TrustStore builds the trust store from the configured root bundles
// plus any extra bundle paths given on the command line.
func (c *Config) TrustStore(extraBundles ...string) (*truststore.Store, error) {
	var roots []*x509.Certificate

	paths := append(append([]string(nil), c.Roots...), extraBundles...)
	for _, path := range paths {
		certs, err := readBundle(path)
		if err != nil {
			return nil, err
		}
		roots = append(roots, certs...)
	}

	return truststore.New(roots...), nil
}

// LoadIntermediates reads the configured intermediate bundles.
func (c *Config) LoadIntermediates() ([]*x509.Certificate, error) {
	var out []*x509.Certificate
	for _, path := range c.Intermediates {
		certs, err := readBundle(path)
		if err != nil {
			return nil, err
		}
		out = append(out, certs...)
	}
	return out, nil
}

func readBundle(path string) ([]*x509.Certificate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cli: read bundle %s: %w", path, err)
	}
	certs, err := certinfo.DecodeMultiple(data)
	if err != nil {
		return nil, fmt.Errorf("cli: decode bundle %s: %w", path, err)
	}
	return certs, nil
}
