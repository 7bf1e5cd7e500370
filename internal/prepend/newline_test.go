package prepend

import (
	"runtime"
	"testing"
)

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Policy
		wantErr bool
	}{
		{name: "lf", input: "lf", want: PolicyLF},
		{name: "crlf", input: "crlf", want: PolicyCRLF},
		{name: "system", input: "system", want: PolicySystem},
		{name: "uppercase is accepted", input: "LF", want: PolicyLF},
		{name: "surrounding whitespace is trimmed", input: " crlf ", want: PolicyCRLF},
		{name: "empty is invalid", input: "", wantErr: true},
		{name: "unknown mode", input: "cr", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePolicy(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParsePolicy(%q) expected error, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePolicy(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParsePolicy(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTerminator(t *testing.T) {
	if got := PolicyLF.Terminator(); got != "\n" {
		t.Errorf("PolicyLF.Terminator() = %q, want %q", got, "\n")
	}
	if got := PolicyCRLF.Terminator(); got != "\r\n" {
		t.Errorf("PolicyCRLF.Terminator() = %q, want %q", got, "\r\n")
	}

	want := "\n"
	if runtime.GOOS == "windows" {
		want = "\r\n"
	}
	if got := PolicySystem.Terminator(); got != want {
		t.Errorf("PolicySystem.Terminator() = %q, want %q", got, want)
	}
}

func TestDescribe(t *testing.T) {
	if got := PolicyLF.Describe(); got != `LF (\n)` {
		t.Errorf("PolicyLF.Describe() = %q", got)
	}
	if got := PolicyCRLF.Describe(); got != `CRLF (\r\n)` {
		t.Errorf("PolicyCRLF.Describe() = %q", got)
	}
}
