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
	"github.com/amannb/certpath/src/logger"
)

// newResolveCmd builds the "resolve" subcommand: it reads a leaf
// certificate and assembles its certification path, fetching missing
// intermediates over AIA when allowed.
func newResolveCmd(version string, log logger.Logger) *cobra.Command {
	var (
		outputFile       string
		intermediateOnly bool
		derFormat        bool
		noFetch          bool
	)

	cmd := &cobra.Command{
		Use:   "resolve INPUT_FILE",
		Short: "Resolve the certificate chain for a leaf certificate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configFile)
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

			store, err := cfg.TrustStore()
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
			if !noFetch {
				fetcher := x509chain.NewHTTPFetcher(version)
				fetcher.Config.Timeout = time.Duration(cfg.FetchTimeout)
				fetcher.Retries = cfg.FetchRetries
				builder.Fetcher = fetcher
			}

			ch, err := builder.Build(cmd.Context(), leaf)
			if err != nil {
				if !errors.Is(err, x509chain.ErrChainIncomplete) {
					return err
				}
				// A partial chain is still useful output; just say so.
				log.Printf("chain incomplete: resolved %d certificate(s) without reaching a trusted root", ch.Len())
			}

			certsToOutput := ch.Certs()
			if intermediateOnly {
				certsToOutput = ch.Intermediates()
			}

			var outputData []byte
			if derFormat {
				outputData = certinfo.EncodeMultipleDER(certsToOutput)
			} else {
				outputData = certinfo.EncodeMultiplePEM(certsToOutput)
			}

			if outputFile != "" {
				if err := os.WriteFile(outputFile, outputData, 0644); err != nil {
					return fmt.Errorf("writing output file: %w", err)
				}
			} else {
				fmt.Print(string(outputData))
			}

			log.Printf("resolved %d certificate(s), complete=%v", ch.Len(), ch.Complete())
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "output to OUTPUT_FILE (default: stdout)")
	cmd.Flags().BoolVarP(&intermediateOnly, "intermediate-only", "i", false, "output intermediate certificates only")
	cmd.Flags().BoolVarP(&derFormat, "der", "d", false, "output DER format")
	cmd.Flags().BoolVar(&noFetch, "no-fetch", false, "disable AIA fetching; use local candidates only")

	return cmd
}
