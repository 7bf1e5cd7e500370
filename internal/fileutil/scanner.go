package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ScanOptions configures the directory scanning behavior
type ScanOptions struct {
	// Extensions is the list of filename suffixes to include (e.g., ".txt",
	// ".md"). Matching is case-insensitive against the lowercased filename.
	// An empty list matches every regular file.
	Extensions []string
}

// ScanResult contains the results of a directory scan
type ScanResult struct {
	// Files contains the paths of all matched regular files, joined onto
	// the scanned directory
	Files []string
	// Skipped contains the basenames of entries that were examined but did
	// not match (wrong suffix, or not a regular file)
	Skipped []string
	// Errors contains any non-fatal errors encountered during scanning
	Errors []error
}

// ScanDirectory lists the immediate entries of dir and returns the regular
// files whose lowercased name ends with an allow-listed suffix.
//
// Only the top level is scanned; subdirectories are never descended into.
// Symlinks are followed for the regular-file check, so a symlink to a
// regular file is a candidate. Entries that cannot be stat'd are recorded
// as non-fatal errors and scanning continues.
//
// A missing path or a path that is not a directory is a fatal error.
func ScanDirectory(dir string, opts ScanOptions) (*ScanResult, error) {
	// Validate directory exists before touching anything
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory: %w", err)
	}

	// Normalize suffixes once: leading dot, lowercase
	suffixes := make([]string, 0, len(opts.Extensions))
	for _, ext := range opts.Extensions {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		suffixes = append(suffixes, strings.ToLower(ext))
	}

	result := &ScanResult{
		Files:   make([]string, 0, len(entries)),
		Skipped: make([]string, 0),
		Errors:  make([]error, 0),
	}

	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(dir, name)

		// Stat follows symlinks, so a link to a regular file qualifies
		fi, err := os.Stat(path)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("error accessing %s: %w", path, err))
			continue
		}
		if !fi.Mode().IsRegular() {
			result.Skipped = append(result.Skipped, name)
			continue
		}

		if !matchesSuffix(name, suffixes) {
			result.Skipped = append(result.Skipped, name)
			continue
		}

		result.Files = append(result.Files, path)
	}

	return result, nil
}

// matchesSuffix reports whether the lowercased name ends with any of the
// normalized suffixes. An empty suffix list matches everything.
func matchesSuffix(name string, suffixes []string) bool {
	if len(suffixes) == 0 {
		return true
	}
	lower := strings.ToLower(name)
	for _, suffix := range suffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}
