package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "toastdemo",
		Short: "Interactive demo of toastkit notifications",
		Long: `toastdemo shows a toast sliding in over a terminal event log.

Press t, o, i or s to show a toast, h to hide it, q to quit.
Settings are read from $TOASTKIT_CONFIG or ~/.config/toastkit/config.toml.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		runCmd(),
		configCmd(),
		versionCmd(),
	)

	return rootCmd
}
