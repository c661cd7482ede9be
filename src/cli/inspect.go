// Copyright (c) 2026 amannb All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"crypto/x509"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amannb/certpath/src/internal/x509/certinfo"
	x509chain "github.com/amannb/certpath/src/internal/x509/chain"
	"github.com/amannb/certpath/src/internal/x509/inspect"
	"github.com/amannb/certpath/src/logger"
)

// newInspectCmd builds the "inspect" subcommand: a single-certificate
// attribute and fingerprint report.
func newInspectCmd(log logger.Logger) *cobra.Command {
	var (
		asJSON  bool
		asTable bool
		asTree  bool
		host    string
	)

	cmd := &cobra.Command{
		Use:   "inspect INPUT_FILE",
		Short: "Show certificate attributes, fingerprints, and key parameters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading input file: %w", err)
			}

			info, err := certinfo.Parse(data)
			if err != nil {
				return fmt.Errorf("parsing certificate: %w", err)
			}

			if host != "" {
				if info.MatchesHostname(host) {
					log.Printf("hostname %s: match", host)
				} else {
					log.Printf("hostname %s: NO match", host)
				}
			}

			single := x509chain.NewChain([]*x509.Certificate{info.Certificate()}, false)
			report, err := inspect.BuildReport(single)
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
			case asTree:
				fmt.Print(inspect.RenderTree(report, nil))
			default:
				printSummary(info)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "emit JSON report")
	cmd.Flags().BoolVar(&asTable, "table", false, "emit markdown table")
	cmd.Flags().BoolVarP(&asTree, "tree", "t", false, "emit ASCII tree")
	cmd.Flags().StringVar(&host, "host", "", "check the certificate against this hostname")

	return cmd
}

// printSummary writes the default human-readable inspection output.
func printSummary(info *certinfo.Info) {
	fmt.Printf("Subject:      %s\n", info.Subject().String())
	fmt.Printf("Issuer:       %s\n", info.Issuer().String())
	fmt.Printf("Serial:       %s\n", info.SerialNumberHex())
	fmt.Printf("Not Before:   %s\n", info.NotBefore().Format("2006-01-02 15:04:05 MST"))
	fmt.Printf("Not After:    %s\n", info.NotAfter().Format("2006-01-02 15:04:05 MST"))
	fmt.Printf("Version:      %d\n", info.Version())
	fmt.Printf("Sig Alg:      %s\n", info.SignatureAlgorithm())
	fmt.Printf("Key Alg:      %s (%d bit)\n", info.PublicKeyAlgorithm(), info.BitLength())

	if modulus, err := info.RSAModulus(); err == nil {
		exponent, _ := info.RSAExponent()
		fmt.Printf("RSA Exponent: %d\n", exponent)
		fmt.Printf("RSA Modulus:  %s\n", shorten(modulus))
	}
	if curve, err := info.Curve(); err == nil {
		fmt.Printf("EC Curve:     %s\n", curve)
	}

	if names, present, err := info.DNSNames(); err != nil {
		fmt.Printf("SAN:          <malformed: %v>\n", err)
	} else if present {
		fmt.Printf("SAN:          %s\n", strings.Join(names, ", "))
	}

	if country, ok := info.Subject().EVIncorporationCountry(); ok {
		fmt.Printf("EV Country:   %s\n", country)
	}

	fmt.Printf("SHA-256:      %s\n", info.FingerprintSHA256())
	fmt.Printf("SHA-1:        %s\n", info.FingerprintSHA1())
	fmt.Printf("MD5:          %s\n", info.FingerprintMD5())
	fmt.Printf("Is CA:        %v\n", info.IsCA())
	fmt.Printf("Is Root:      %v\n", info.IsRoot())
}

func shorten(s string) string {
	if len(s) <= 32 {
		return s
	}
	return s[:16] + "..." + s[len(s)-16:]
}
