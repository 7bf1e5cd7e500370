package prepend

// Status classifies the outcome of a single file attempt.
type Status int

const (
	// StatusProcessed means the file was rewritten with the header prepended.
	StatusProcessed Status = iota
	// StatusNotText means the file's bytes were not valid UTF-8 and the
	// file was left untouched. This is a skip, not an error.
	StatusNotText
	// StatusFailed means a read or write error occurred. The run continues
	// with the next file.
	StatusFailed
)

// String returns the lowercase label used in log output.
func (s Status) String() string {
	switch s {
	case StatusProcessed:
		return "processed"
	case StatusNotText:
		return "not-text"
	case StatusFailed:
		return "io-failure"
	default:
		return "unknown"
	}
}

// FileResult is the explicit per-file outcome: either a successful rewrite
// carrying the number of bytes written, or a classified failure carrying
// the underlying error. No per-file outcome ever aborts a run.
type FileResult struct {
	// Name is the basename of the directory entry.
	Name string

	// Status classifies the outcome.
	Status Status

	// BytesWritten is the size of the rewritten file. Zero unless
	// Status is StatusProcessed.
	BytesWritten int

	// Err holds the underlying error for StatusFailed results, nil otherwise.
	Err error
}

// Summary aggregates a whole run. Counters are populated as files are
// attempted and reported once at the end of the run.
type Summary struct {
	// Directory is the target directory that was scanned.
	Directory string

	// Policy is the newline policy the run resolved its terminator from.
	Policy Policy

	// Processed is the number of files successfully rewritten.
	Processed int

	// NotText is the number of candidates skipped as non-text.
	NotText int

	// Failed is the number of candidates that hit a read/write error.
	Failed int

	// Results holds the per-file outcomes in processing order.
	Results []FileResult

	// ScanSkipped holds the basenames of directory entries that were not
	// candidates (subdirectories, special files, non-matching suffixes).
	ScanSkipped []string

	// ScanErrors holds non-fatal errors from candidate selection, such as
	// entries that could not be stat'd.
	ScanErrors []error
}
