// Package fileutil provides the directory scanning used to select candidate
// files for a run.
//
// The scanner is deliberately narrow: it lists only the immediate entries of
// the target directory (never descending into subdirectories), keeps regular
// files whose lowercased name ends with an allow-listed suffix, and treats
// per-entry stat failures as non-fatal so a single unreadable entry cannot
// abort candidate selection. Only a missing or non-directory target path is
// a fatal error.
//
// Extension matching is a suffix check on the whole lowercased filename, so
// "NOTES.TXT" and "a.b.MD" match while a bare "mdfile" does not.
package fileutil
