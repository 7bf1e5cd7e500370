// Package report writes the optional end-of-run report.
//
// The report is a small YAML document describing a single run: a generated
// run ID, the target directory, the resolved newline mode, and the outcome
// counters with per-file failures. Writes go through a lock-then-rename
// sequence so a concurrent reader never observes a torn report. The target
// files themselves are never written this way; only the report file is.
package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/harrison/addnl/internal/prepend"
)

// Failure records one file that could not be processed.
type Failure struct {
	// File is the basename of the failed entry
	File string `yaml:"file"`
	// Error is the underlying error message
	Error string `yaml:"error"`
}

// Report is the YAML document written after a run.
type Report struct {
	// RunID uniquely identifies the run
	RunID string `yaml:"run_id"`

	// StartedAt is when the run began, RFC 3339
	StartedAt time.Time `yaml:"started_at"`

	// Directory is the target directory that was processed
	Directory string `yaml:"directory"`

	// Newline is the newline policy the run used (lf, crlf, system)
	Newline string `yaml:"newline"`

	// Processed is the number of files successfully rewritten
	Processed int `yaml:"processed"`

	// SkippedNonText is the number of candidates skipped as non-text
	SkippedNonText int `yaml:"skipped_non_text"`

	// Failed is the number of candidates that hit a read/write error
	Failed int `yaml:"failed"`

	// Failures lists the per-file errors, in processing order
	Failures []Failure `yaml:"failures,omitempty"`
}

// Build assembles a Report from a run summary, stamping a fresh run ID and
// the given start time.
func Build(summary *prepend.Summary, startedAt time.Time) *Report {
	r := &Report{
		RunID:          uuid.New().String(),
		StartedAt:      startedAt,
		Directory:      summary.Directory,
		Newline:        string(summary.Policy),
		Processed:      summary.Processed,
		SkippedNonText: summary.NotText,
		Failed:         summary.Failed,
	}

	for _, result := range summary.Results {
		if result.Status == prepend.StatusFailed && result.Err != nil {
			r.Failures = append(r.Failures, Failure{
				File:  result.Name,
				Error: result.Err.Error(),
			})
		}
	}

	return r
}
