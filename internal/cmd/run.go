package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/harrison/addnl/internal/config"
	"github.com/harrison/addnl/internal/logger"
	"github.com/harrison/addnl/internal/prepend"
	"github.com/harrison/addnl/internal/report"
)

// NewRunCommand creates the run command
func NewRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [directory]",
		Short: "Prepend the blank-line header to every matching file",
		Long: `Process every allow-listed text file in the target directory,
rewriting each one in place with two blank lines prepended.

The directory defaults to the current working directory. A failure on one
file never aborts the run; files with non-UTF-8 content are skipped as
non-text. Running twice prepends twice.

Configuration is loaded from .addnl/config.yaml if present.
CLI flags override configuration file settings.

Examples:
  # Process the current directory with the platform newline
  addnl run

  # Process a specific directory, forcing LF terminators
  addnl run ./docs --newline lf

  # Extend the allow-list and write a run report
  addnl run ./notes --extensions .txt,.md,.log --report out/report.yaml

  # Show per-entry skip decisions
  addnl run ./docs --verbose`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCommand,
	}

	// Add flags
	cmd.Flags().String("config", "", "Path to config file (default: .addnl/config.yaml)")
	cmd.Flags().String("newline", "", "Newline mode: lf, crlf, or system (default: system)")
	cmd.Flags().StringSlice("extensions", nil, "Extension allow-list (default: .txt,.md)")
	cmd.Flags().String("report", "", "Write a YAML run report to this path")
	cmd.Flags().Bool("verbose", false, "Show per-entry skip decisions")

	return cmd
}

// runCommand implements the run command logic
func runCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadMergedConfig(cmd)
	if err != nil {
		return err
	}

	dir, err := targetDirectory(args)
	if err != nil {
		return err
	}

	// A bad target directory is the only error that aborts before any
	// file is touched
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("directory does not exist: %s", dir)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", dir)
	}

	// Determine log level: verbose flag overrides config
	logLevel := cfg.LogLevel
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logLevel = "debug"
	}
	log := logger.NewConsoleLogger(cmd.OutOrStdout(), logLevel)

	log.LogRunStart(dir)
	started := time.Now()

	p := prepend.New(cfg.Policy(), cfg.Extensions)
	summary, err := p.Run(dir)
	if err != nil {
		return err
	}

	for _, name := range summary.ScanSkipped {
		log.LogDebug(fmt.Sprintf("skipping %s: not a candidate", name))
	}
	for _, scanErr := range summary.ScanErrors {
		log.LogWarn(scanErr.Error())
	}
	for _, result := range summary.Results {
		log.LogFileResult(result, summary.Policy)
	}

	log.LogSummary(summary)

	if cfg.ReportPath != "" {
		r := report.Build(summary, started)
		if err := r.Write(cfg.ReportPath); err != nil {
			return fmt.Errorf("failed to write run report: %w", err)
		}
		log.LogDebug(fmt.Sprintf("run %s: report written to %s", r.RunID, cfg.ReportPath))
	}

	// Per-file failures never affect the exit code
	return nil
}

// loadMergedConfig loads the config file and merges changed CLI flags over
// it, flags taking precedence. Shared by the run and validate commands.
func loadMergedConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")

	var cfg *config.Config
	var err error
	if configPath != "" {
		// Load from explicit config path
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	} else {
		// Load from default .addnl/config.yaml
		cfg, err = config.LoadConfigFromDir(".")
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	// Build flag pointers for merge (only explicitly set values)
	var newlinePtr *string
	if cmd.Flags().Changed("newline") {
		newline, _ := cmd.Flags().GetString("newline")
		newlinePtr = &newline
	}

	var extensionsPtr *[]string
	if cmd.Flags().Changed("extensions") {
		extensions, _ := cmd.Flags().GetStringSlice("extensions")
		extensionsPtr = &extensions
	}

	var reportPtr *string
	if cmd.Flags().Changed("report") {
		reportPath, _ := cmd.Flags().GetString("report")
		reportPtr = &reportPath
	}

	cfg.MergeWithFlags(newlinePtr, extensionsPtr, nil, reportPtr)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// targetDirectory resolves the positional directory argument, defaulting to
// the current working directory.
func targetDirectory(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to resolve working directory: %w", err)
	}
	return cwd, nil
}
