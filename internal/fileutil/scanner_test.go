package fileutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestScanDirectory(t *testing.T) {
	// Create a temporary test directory structure:
	// tmpDir/
	//   alpha.txt
	//   beta.md
	//   NOTES.TXT        (case-insensitive match)
	//   data.csv         (not allow-listed)
	//   noext            (no extension)
	//   subdir/          (never descended)
	//     nested.txt
	tmpDir := t.TempDir()

	testFiles := []string{
		"alpha.txt",
		"beta.md",
		"NOTES.TXT",
		"data.csv",
		"noext",
		"subdir/nested.txt",
	}

	for _, f := range testFiles {
		path := filepath.Join(tmpDir, f)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create directory: %v", err)
		}
		if err := os.WriteFile(path, []byte("test content"), 0644); err != nil {
			t.Fatalf("failed to create file: %v", err)
		}
	}

	tests := []struct {
		name          string
		opts          ScanOptions
		wantFileNames []string
		wantSkipped   []string
	}{
		{
			name:          "default allow-list",
			opts:          ScanOptions{Extensions: []string{".txt", ".md"}},
			wantFileNames: []string{"NOTES.TXT", "alpha.txt", "beta.md"},
			wantSkipped:   []string{"data.csv", "noext", "subdir"},
		},
		{
			name:          "single extension",
			opts:          ScanOptions{Extensions: []string{".md"}},
			wantFileNames: []string{"beta.md"},
		},
		{
			name:          "extension without leading dot is normalized",
			opts:          ScanOptions{Extensions: []string{"txt"}},
			wantFileNames: []string{"NOTES.TXT", "alpha.txt"},
		},
		{
			name:          "empty extension list matches all regular files",
			opts:          ScanOptions{},
			wantFileNames: []string{"NOTES.TXT", "alpha.txt", "beta.md", "data.csv", "noext"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ScanDirectory(tmpDir, tt.opts)
			if err != nil {
				t.Fatalf("ScanDirectory failed: %v", err)
			}

			gotNames := make([]string, 0, len(result.Files))
			for _, f := range result.Files {
				gotNames = append(gotNames, filepath.Base(f))
			}

			if len(gotNames) != len(tt.wantFileNames) {
				t.Fatalf("got files %v, want %v", gotNames, tt.wantFileNames)
			}
			for i, want := range tt.wantFileNames {
				if gotNames[i] != want {
					t.Errorf("file[%d] = %q, want %q", i, gotNames[i], want)
				}
			}

			if tt.wantSkipped != nil {
				if len(result.Skipped) != len(tt.wantSkipped) {
					t.Fatalf("got skipped %v, want %v", result.Skipped, tt.wantSkipped)
				}
				for i, want := range tt.wantSkipped {
					if result.Skipped[i] != want {
						t.Errorf("skipped[%d] = %q, want %q", i, result.Skipped[i], want)
					}
				}
			}
		})
	}
}

func TestScanDirectoryNeverDescends(t *testing.T) {
	tmpDir := t.TempDir()

	nested := filepath.Join(tmpDir, "docs", "nested.txt")
	if err := os.MkdirAll(filepath.Dir(nested), 0755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(nested, []byte("nested"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	result, err := ScanDirectory(tmpDir, ScanOptions{Extensions: []string{".txt"}})
	if err != nil {
		t.Fatalf("ScanDirectory failed: %v", err)
	}
	if len(result.Files) != 0 {
		t.Errorf("expected no candidates, got %v", result.Files)
	}
	// The subdirectory itself shows up as a skipped entry
	if len(result.Skipped) != 1 || result.Skipped[0] != "docs" {
		t.Errorf("expected skipped [docs], got %v", result.Skipped)
	}
}

func TestScanDirectoryFollowsSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires elevated privileges on Windows")
	}

	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "real.txt")
	if err := os.WriteFile(target, []byte("real"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	if err := os.Symlink(target, filepath.Join(tmpDir, "link.txt")); err != nil {
		t.Fatalf("failed to create symlink: %v", err)
	}
	if err := os.Mkdir(filepath.Join(tmpDir, "realdir"), 0755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	if err := os.Symlink(filepath.Join(tmpDir, "realdir"), filepath.Join(tmpDir, "dirlink.txt")); err != nil {
		t.Fatalf("failed to create symlink: %v", err)
	}

	result, err := ScanDirectory(tmpDir, ScanOptions{Extensions: []string{".txt"}})
	if err != nil {
		t.Fatalf("ScanDirectory failed: %v", err)
	}

	gotNames := make([]string, 0, len(result.Files))
	for _, f := range result.Files {
		gotNames = append(gotNames, filepath.Base(f))
	}
	// link.txt resolves to a regular file and qualifies; dirlink.txt
	// resolves to a directory and is skipped
	want := []string{"link.txt", "real.txt"}
	if len(gotNames) != len(want) {
		t.Fatalf("got files %v, want %v", gotNames, want)
	}
	for i := range want {
		if gotNames[i] != want[i] {
			t.Errorf("file[%d] = %q, want %q", i, gotNames[i], want[i])
		}
	}
}

func TestScanDirectoryErrors(t *testing.T) {
	t.Run("nonexistent directory", func(t *testing.T) {
		_, err := ScanDirectory("/nonexistent/path/for/test", ScanOptions{})
		if err == nil {
			t.Error("expected error for nonexistent directory")
		}
	})

	t.Run("path is a file", func(t *testing.T) {
		tmpDir := t.TempDir()
		file := filepath.Join(tmpDir, "file.txt")
		if err := os.WriteFile(file, []byte("content"), 0644); err != nil {
			t.Fatalf("failed to create file: %v", err)
		}

		_, err := ScanDirectory(file, ScanOptions{})
		if err == nil {
			t.Error("expected error for non-directory path")
		}
	})
}
