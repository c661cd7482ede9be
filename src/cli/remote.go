// Copyright (c) 2026 amannb All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	x509chain "github.com/amannb/certpath/src/internal/x509/chain"
	"github.com/amannb/certpath/src/internal/x509/inspect"
	"github.com/amannb/certpath/src/logger"
)

// newRemoteCmd builds the "remote" subcommand: it connects to a TLS
// server, resolves the presented chain, and reports on it.
func newRemoteCmd(version string, log logger.Logger) *cobra.Command {
	var (
		asJSON  bool
		asTable bool
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "remote HOST[:PORT]",
		Short: "Inspect the certificate chain presented by a TLS server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configFile)
			if err != nil {
				return err
			}

			host, port, err := splitHostPort(args[0])
			if err != nil {
				return err
			}

			peers, err := x509chain.FetchRemotePeers(cmd.Context(), host, port, timeout)
			if err != nil {
				return err
			}
			log.Printf("received %d certificate(s) from %s:%d", len(peers), host, port)

			store, err := cfg.TrustStore()
			if err != nil {
				return err
			}

			fetcher := x509chain.NewHTTPFetcher(version)
			fetcher.Config.Timeout = time.Duration(cfg.FetchTimeout)
			fetcher.Retries = cfg.FetchRetries

			builder := &x509chain.Builder{
				Store:         store,
				Intermediates: peers[1:],
				Fetcher:       fetcher,
				Log:           log,
			}

			ch, err := builder.Build(cmd.Context(), peers[0])
			if err != nil {
				if !errors.Is(err, x509chain.ErrChainIncomplete) {
					return err
				}
				log.Printf("chain incomplete: no path to a trusted root")
			}

			report, err := inspect.BuildReport(ch)
			if err != nil {
				return err
			}

			switch {
			case asJSON:
				out, err := report.JSON()
				if err != nil {
					return err
				}
				fmt.Println(string(out))
			case asTable:
				fmt.Print(inspect.RenderTable(report, nil))
			default:
				fmt.Print(inspect.RenderTree(report, nil))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "emit JSON report")
	cmd.Flags().BoolVar(&asTable, "table", false, "emit markdown table")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "TLS connection timeout")

	return cmd
}

// splitHostPort parses HOST[:PORT], defaulting to the HTTPS port.
func splitHostPort(arg string) (string, int, error) {
	host, portStr, err := net.SplitHostPort(arg)
	if err != nil {
		return arg, 443, nil
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 || port > 65535 {
		return "", 0, fmt.Errorf("invalid port %q", portStr)
	}
	return host, port, nil
}
