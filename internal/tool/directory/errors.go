package directory

import "fmt"

// FileMissingError implements the behavioral interface for missing files.
type FileMissingError struct {
	Path string
}

func (e *FileMissingError) Error() string {
	return "directory does not exist: " + e.Path
}

func (e *FileMissingError) FileMissing() bool {
	return true
}

// NotDirectoryError implements the behavioral interface for non-directory paths.
type NotDirectoryError struct {
	Path string
}

func (e *NotDirectoryError) Error() string {
	return "path is not a directory: " + e.Path
}

func (e *NotDirectoryError) NotDirectory() bool {
	return true
}

// ListDirError is returned when a directory cannot be read.
type ListDirError struct {
	Path  string
	Cause error
}

func (e *ListDirError) Error() string {
	return fmt.Sprintf("failed to list directory %s: %v", e.Path, e.Cause)
}
func (e *ListDirError) Unwrap() error { return e.Cause }
func (e *ListDirError) IOError() bool { return true }

// PatternRequiredError is returned when no include pattern is given.
type PatternRequiredError struct{}

func (e *PatternRequiredError) Error() string { return "at least one regex pattern is required" }

func (e *PatternRequiredError) InvalidInput() bool { return true }

// InvalidPatternError is returned when a pattern does not compile.
type InvalidPatternError struct {
	Pattern string
	Cause   error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid regex pattern %q: %v", e.Pattern, e.Cause)
}
func (e *InvalidPatternError) Unwrap() error      { return e.Cause }
func (e *InvalidPatternError) InvalidInput() bool { return true }
