package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/harrison/addnl/internal/prepend"
)

// NewValidateCommand creates and returns the validate subcommand
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [directory]",
		Short: "List the files a run would process, without writing anything",
		Long: `Scan the target directory and report which files a run would
rewrite, which entries would be skipped and why, without touching any file.

Exit code: 0 if the directory is valid, 1 otherwise`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return validateDirectory(cmd, args, cmd.OutOrStdout())
		},
	}

	cmd.Flags().String("config", "", "Path to config file (default: .addnl/config.yaml)")
	cmd.Flags().StringSlice("extensions", nil, "Extension allow-list (default: .txt,.md)")

	return cmd
}

// validateDirectory performs the dry-run scan and writes the findings to
// output. The candidate set is computed exactly as the run command computes
// it, so the listing matches what run would attempt.
func validateDirectory(cmd *cobra.Command, args []string, output io.Writer) error {
	cfg, err := loadMergedConfig(cmd)
	if err != nil {
		return err
	}

	dir, err := targetDirectory(args)
	if err != nil {
		return err
	}

	p := prepend.New(cfg.Policy(), cfg.Extensions)
	scan, err := p.Candidates(dir)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "Would process %d file(s) in %s:\n", len(scan.Files), dir)
	for _, path := range scan.Files {
		fmt.Fprintf(output, "  - %s\n", filepath.Base(path))
	}

	if len(scan.Skipped) > 0 {
		fmt.Fprintf(output, "\nSkipped entries (not regular files or not allow-listed):\n")
		for _, name := range scan.Skipped {
			fmt.Fprintf(output, "  - %s\n", name)
		}
	}

	for _, scanErr := range scan.Errors {
		fmt.Fprintf(output, "Warning: %v\n", scanErr)
	}

	return nil
}
