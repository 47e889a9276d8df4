package path

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestAbs(t *testing.T) {
	base := "/workspace"

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"relative path", "src/main.go", "/workspace/src/main.go"},
		{"absolute path", "/etc/hosts", "/etc/hosts"},
		{"path with dots", "src/../src/main.go", "/workspace/src/main.go"},
		{"empty path is base", "", "/workspace"},
		{"dot is base", ".", "/workspace"},
		{"parent escapes base", "../other", "/other"},
		{"trailing slash cleaned", "/tmp/dir/", "/tmp/dir"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Abs(base, tt.input); got != tt.expected {
				t.Errorf("Abs(%q, %q) = %q, want %q", base, tt.input, got, tt.expected)
			}
		})
	}
}

func TestAbsDir(t *testing.T) {
	dir := t.TempDir()

	t.Run("existing directory", func(t *testing.T) {
		got, err := AbsDir(os.Stat, "/unused", dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != dir {
			t.Errorf("got %q, want %q", got, dir)
		}
	})

	t.Run("relative to base", func(t *testing.T) {
		if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
			t.Fatal(err)
		}
		got, err := AbsDir(os.Stat, dir, "sub/../sub")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := filepath.Join(dir, "sub"); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := AbsDir(os.Stat, dir, "missing")
		var rootErr *RootError
		if !errors.As(err, &rootErr) {
			t.Fatalf("expected RootError, got %v", err)
		}
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected wrapped ErrNotExist, got %v", err)
		}
	})

	t.Run("file is not a directory", func(t *testing.T) {
		file := filepath.Join(dir, "f")
		if err := os.WriteFile(file, nil, 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := AbsDir(os.Stat, dir, "f")
		if !errors.Is(err, ErrNotADirectory) {
			t.Errorf("expected ErrNotADirectory, got %v", err)
		}
	})
}
