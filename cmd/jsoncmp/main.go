package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"jsoncmp/internal/version"
)

// newRootCmd builds the jsoncmp command. A fresh command per call keeps flag
// state from leaking between test runs.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jsoncmp <left.json> <right.json>",
		Short: "Compare the structure of two JSON documents",
		Long: `jsoncmp reads two JSON files and reports how they differ: total and
per-level node counts for each document, and every path where their
values or keys diverge.`,
		Version:      version.Version,
		Args:         cobra.ExactArgs(2),
		RunE:         runCompare,
		SilenceUsage: true,
	}

	cmd.Flags().String("config", "jsoncmp.toml", "path to an optional toml config file")
	cmd.Flags().String("color", "auto", "colorize output (auto|on|off)")
	cmd.Flags().Bool("timings", false, "show per-stage timing information")
	cmd.Flags().Bool("quiet", false, "print only the differences")
	cmd.Flags().String("log", "", "append a structured run log to this file")
	cmd.Flags().Int("max-depth", 0, "diff recursion depth limit (0 = default)")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
