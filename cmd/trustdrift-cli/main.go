// trustdrift-cli scores a recorded set of old/new response pairs without calling
// any model or endpoint.
//
// Usage:
//
//	trustdrift-cli score --pairs pairs.yaml [--deep] [--markers markers.yaml]
//	trustdrift-cli version
package main

import (
	"fmt"
	"os"

	"github.com/NeuralTrust/TrustDrift/pkg/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "trustdrift-cli",
	Short: "Offline behavioural drift scoring",
	Long:  "trustdrift-cli runs the deterministic drift scorers over a pairs file\nand prints the report as JSON.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.Version = version.Version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
