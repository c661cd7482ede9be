// Copyright (c) 2026 amannb All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/amannb/certpath/src/internal/x509/certinfo"
	x509chain "github.com/amannb/certpath/src/internal/x509/chain"
	"github.com/amannb/certpath/src/internal/x509/verify"
	"github.com/amannb/certpath/src/logger"
)

// newVerifyCmd builds the "verify" subcommand: it resolves the chain for
// a leaf certificate and then validates it under the selected policy.
func newVerifyCmd(version string, log logger.Logger) *cobra.Command {
	var (
		rootBundles []string
		policyName  string
		usageName   string
		host        string
		atUnix      int64
		logMode     bool
		noFetch     bool
		checkOCSP   bool
	)

	cmd := &cobra.Command{
		Use:   "verify INPUT_FILE",
		Short: "Build and verify the certificate chain for a leaf certificate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configFile)
			if err != nil {
				return err
			}
			if policyName == "" {
				policyName = cfg.Policy
			}
			if usageName == "" {
				usageName = cfg.Usage
			}

			policy, err := verify.ParsePolicy(policyName)
			if err != nil {
				return err
			}
			usage, err := verify.ParseUsage(usageName)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading input file: %w", err)
			}
			leaf, err := certinfo.Decode(data)
			if err != nil {
				return fmt.Errorf("decoding certificate: %w", err)
			}

			store, err := cfg.TrustStore(rootBundles...)
			if err != nil {
				return err
			}
			intermediates, err := cfg.LoadIntermediates()
			if err != nil {
				return err
			}

			builder := &x509chain.Builder{
				Store:         store,
				Intermediates: intermediates,
				Log:           log,
			}
			var httpConfig *x509chain.HTTPConfig
			if !noFetch {
				fetcher := x509chain.NewHTTPFetcher(version)
				fetcher.Config.Timeout = time.Duration(cfg.FetchTimeout)
				fetcher.Retries = cfg.FetchRetries
				builder.Fetcher = fetcher
				httpConfig = fetcher.Config
			}

			ch, err := builder.Build(cmd.Context(), leaf)
			if err != nil && !errors.Is(err, x509chain.ErrChainIncomplete) {
				return err
			}

			opts := verify.Options{
				Store:    store,
				Policy:   policy,
				Usage:    usage,
				Hostname: host,
			}
			if logMode {
				opts.Mode = verify.ModeLog
			}
			if atUnix != 0 {
				opts.At = time.Unix(atUnix, 0)
			}
			if checkOCSP {
				if httpConfig == nil {
					httpConfig = x509chain.NewHTTPConfig(version)
					httpConfig.Timeout = time.Duration(cfg.FetchTimeout)
				}
				opts.Revocation = &verify.OCSPChecker{Config: httpConfig}
			}

			outcome, err := verify.Verify(cmd.Context(), ch, opts)
			if err != nil {
				return err
			}

			if outcome.OK() {
				log.Printf("chain OK: %d certificate(s), policy=%s, usage=%s", ch.Len(), policy, usage)
				return nil
			}

			for _, entry := range outcome.Log() {
				log.Printf("%s: %s (code %d)", entry.Cert.Subject.String(), entry.Code, int(entry.Code))
			}
			return fmt.Errorf("verification failed: %s (code %d)", outcome.Code(), int(outcome.Code()))
		},
	}

	cmd.Flags().StringSliceVar(&rootBundles, "roots", nil, "additional PEM root bundle(s) to trust")
	cmd.Flags().StringVar(&policyName, "policy", "", "verification policy: legacy or pkix (default from config)")
	cmd.Flags().StringVar(&usageName, "usage", "", "certificate usage: ssl-server, ssl-client, email-signer, email-recipient, object-signer, any-ca")
	cmd.Flags().StringVar(&host, "host", "", "require the leaf to match this hostname")
	cmd.Flags().Int64Var(&atUnix, "at", 0, "verification time as a Unix timestamp (default: now)")
	cmd.Flags().BoolVar(&logMode, "log", false, "report every failing check instead of stopping at the first")
	cmd.Flags().BoolVar(&noFetch, "no-fetch", false, "disable AIA fetching; use local candidates only")
	cmd.Flags().BoolVar(&checkOCSP, "ocsp", false, "check revocation status over OCSP")

	return cmd
}
