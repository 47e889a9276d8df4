package path

import (
	"os"
	"path/filepath"
)

// Abs resolves path against base. Absolute paths are only cleaned; an empty
// path resolves to base itself.
func Abs(base, path string) string {
	if path == "" {
		return filepath.Clean(base)
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Clean(filepath.Join(base, path))
}

// StatFunc reports file info for a path, following symlinks.
type StatFunc func(path string) (os.FileInfo, error)

// AbsDir resolves dir against base and checks with stat that it names an
// existing directory. Symlinks are kept as written so reported paths stay under
// the directory the user chose.
func AbsDir(stat StatFunc, base, dir string) (string, error) {
	abs := Abs(base, dir)

	info, err := stat(abs)
	if err != nil {
		return "", &RootError{Root: abs, Cause: err}
	}
	if !info.IsDir() {
		return "", &RootError{Root: abs, Cause: ErrNotADirectory}
	}
	return abs, nil
}
