package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.3.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dendrogram",
		Short: "Build dendrograms of N-dimensional scalar grids",
		Long: `dendrogram thresholds a scalar grid at a descending series of levels,
tracks how connected regions appear and merge, and prints the resulting
tree of structures.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(
		newVersionCmd(),
		newBuildCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dendrogram version %s\n", version)
		},
	}
}
