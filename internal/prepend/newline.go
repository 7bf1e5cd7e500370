package prepend

import (
	"fmt"
	"runtime"
	"strings"
)

// Policy selects which literal line terminator is inserted by a run.
// It is resolved to a concrete byte sequence exactly once per run.
type Policy string

// Supported newline policies.
const (
	// PolicyLF forces "\n" regardless of platform.
	PolicyLF Policy = "lf"
	// PolicyCRLF forces "\r\n" regardless of platform.
	PolicyCRLF Policy = "crlf"
	// PolicySystem uses the host platform's default line separator.
	PolicySystem Policy = "system"
)

// ParsePolicy validates and normalizes a policy string from a flag or
// config value. Matching is case-insensitive; anything outside the three
// accepted values is an error.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case PolicyLF:
		return PolicyLF, nil
	case PolicyCRLF:
		return PolicyCRLF, nil
	case PolicySystem:
		return PolicySystem, nil
	default:
		return "", fmt.Errorf("invalid newline mode %q, must be one of: lf, crlf, system", s)
	}
}

// Terminator returns the literal byte sequence for the policy.
// PolicySystem resolves at call time: "\r\n" on Windows, "\n" elsewhere.
func (p Policy) Terminator() string {
	switch p {
	case PolicyLF:
		return "\n"
	case PolicyCRLF:
		return "\r\n"
	default:
		if runtime.GOOS == "windows" {
			return "\r\n"
		}
		return "\n"
	}
}

// Describe returns a human-readable label for the resolved terminator,
// used in per-file notices and the final summary.
func (p Policy) Describe() string {
	if p.Terminator() == "\n" {
		return `LF (\n)`
	}
	return `CRLF (\r\n)`
}
