package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "symcorrect",
		Short: "SymSpell-based spelling correction service and CLI",
		Long:  `symcorrect builds a SymSpell index over a frequency dictionary and serves single-term lookup, compound correction, and word segmentation, over HTTP or directly from the command line.`,
	}

	rootCmd.AddCommand(
		createServeCmd(),
		createLookupCmd(),
		createCorrectCmd(),
		createSegmentCmd(),
		createCustomWordCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
