package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "contourgen",
	Short: "Reconstruct shapes-with-holes from a DXF-style primitive drawing",
}

// Execute runs the root command, printing any error to stderr and
// exiting non-zero rather than returning it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
