package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"typefuzz/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "typefuzz",
	Short: "Type-directed fuzzer for SMT solvers",
	Long:  `typefuzz generates random well-typed constraint sets, round-trips them through an SMT backend and classifies the verdicts`,
}

// main initializes the CLI by setting the command version, registering
// subcommands and persistent flags, and then executes the root command.
// If command execution returns an error, the process exits with status code 1.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(probeCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
