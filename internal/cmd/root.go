package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for addnl
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addnl",
		Short: "Prepend blank lines to text files in a directory",
		Long: `addnl rewrites every text file in a target directory in place,
inserting two blank lines before the existing content.

Only the immediate entries of the directory are considered (no recursion),
and only regular files whose name ends with an allow-listed extension
(.txt and .md by default, case-insensitive). The line terminator used for
the inserted lines is configurable: lf, crlf, or the platform default.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text; errors are
		// reported once by main
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	cmd.AddCommand(NewRunCommand())
	cmd.AddCommand(NewValidateCommand())

	return cmd
}
