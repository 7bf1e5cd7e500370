// Package prepend implements the batch prepender: a single synchronous pass
// over the immediate entries of a target directory that rewrites every
// allow-listed text file in place with a fixed two-line header prepended.
//
// The two header lines are empty strings, so the observable effect is two
// blank lines (two bare terminators) inserted before the original content.
// The terminator is resolved once per run from the newline Policy and is
// written byte-for-byte; no newline translation is performed on read or
// write. Reruns are not idempotent: each run prepends another header.
package prepend

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/harrison/addnl/internal/fileutil"
)

// DefaultExtensions is the built-in extension allow-list. Matching is
// case-insensitive against the lowercased filename suffix.
var DefaultExtensions = []string{".txt", ".md"}

// The two fixed header lines. Both are empty, which makes the inserted
// header exactly two bare terminators.
const (
	headerLine1 = ""
	headerLine2 = ""
)

// Prepender performs the batch prepend over one directory.
// It holds only run-scoped, read-only configuration; a single value may be
// reused across runs.
type Prepender struct {
	policy     Policy
	extensions []string
}

// New creates a Prepender with the given newline policy and extension
// allow-list. An empty extensions slice falls back to DefaultExtensions.
func New(policy Policy, extensions []string) *Prepender {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	return &Prepender{
		policy:     policy,
		extensions: extensions,
	}
}

// Candidates returns the files a run over dir would attempt, without
// touching any of them. Used by the dry-run path.
func (p *Prepender) Candidates(dir string) (*fileutil.ScanResult, error) {
	return fileutil.ScanDirectory(dir, fileutil.ScanOptions{
		Extensions: p.extensions,
	})
}

// Run processes every candidate file in dir and returns the run summary.
// The returned error is non-nil only for fatal conditions (dir missing or
// not a directory); individual file failures are recorded in the summary
// and never abort the run.
func (p *Prepender) Run(dir string) (*Summary, error) {
	scan, err := fileutil.ScanDirectory(dir, fileutil.ScanOptions{
		Extensions: p.extensions,
	})
	if err != nil {
		return nil, err
	}

	terminator := p.policy.Terminator()
	summary := &Summary{
		Directory:   dir,
		Policy:      p.policy,
		Results:     make([]FileResult, 0, len(scan.Files)),
		ScanSkipped: scan.Skipped,
		ScanErrors:  scan.Errors,
	}

	for _, path := range scan.Files {
		result := p.processFile(path, terminator)
		summary.Results = append(summary.Results, result)

		switch result.Status {
		case StatusProcessed:
			summary.Processed++
		case StatusNotText:
			summary.NotText++
		case StatusFailed:
			summary.Failed++
		}
	}

	return summary, nil
}

// processFile reads one file, prepends the header, and writes it back to
// the same path. All failure modes are folded into the returned FileResult.
func (p *Prepender) processFile(path, terminator string) FileResult {
	name := filepath.Base(path)

	original, err := os.ReadFile(path)
	if err != nil {
		return FileResult{
			Name:   name,
			Status: StatusFailed,
			Err:    fmt.Errorf("failed to read file: %w", err),
		}
	}

	// The fixed decoding is UTF-8. Invalid bytes mean the file is not
	// text; leave it untouched and report the skip.
	if !utf8.Valid(original) {
		return FileResult{
			Name:   name,
			Status: StatusNotText,
		}
	}

	header := headerLine1 + terminator + headerLine2 + terminator
	content := make([]byte, 0, len(header)+len(original))
	content = append(content, header...)
	content = append(content, original...)

	// In-place overwrite, byte-for-byte. os.WriteFile truncates the
	// existing file and leaves its permissions alone; the perm argument
	// only applies if the file was removed mid-run.
	if err := os.WriteFile(path, content, 0644); err != nil {
		return FileResult{
			Name:   name,
			Status: StatusFailed,
			Err:    fmt.Errorf("failed to write file: %w", err),
		}
	}

	return FileResult{
		Name:         name,
		Status:       StatusProcessed,
		BytesWritten: len(content),
	}
}
