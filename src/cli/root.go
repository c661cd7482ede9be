// Copyright (c) 2026 amannb All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/amannb/certpath/src/logger"
)

// configFile is the persistent --config flag shared by all subcommands.
var configFile string

// Execute runs the root command with the given context, version, and logger.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	rootCmd := &cobra.Command{
		Use:           "certpath",
		Short:         "X.509 certificate inspection, chain building, and verification",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to YAML config file")

	rootCmd.AddCommand(
		newInspectCmd(log),
		newResolveCmd(version, log),
		newVerifyCmd(version, log),
		newRemoteCmd(version, log),
	)

	return rootCmd.ExecuteContext(ctx)
}
