package main

import (
	"fmt"

	"github.com/NeuralTrust/TrustDrift/pkg/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	RunE: func(cmd *cobra.Command, _ []string) error {
		info := version.GetInfo()
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s, %s, built %s)\n",
			info.AppName, info.Version, info.GoVersion, info.Platform, info.BuildDate)
		return err
	},
}
