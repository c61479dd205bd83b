package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for wordcount.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordcount",
		Short: "Count word frequencies across text files with parallel workers",
		Long: `wordcount counts word occurrences across a set of text files.

Words are runs of non-whitespace bytes, lowered to ASCII lower case.
A fixed pool of workers claims files from a shared list, so files are
counted concurrently while each file is read by exactly one worker.
Unreadable files are reported and leave the other counts intact.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("log-json", false, "Write log records as JSON")

	// Add subcommands
	cmd.AddCommand(NewCountCmd())
	cmd.AddCommand(NewBenchCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
