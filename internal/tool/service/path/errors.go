package path

import (
	"errors"
	"fmt"
)

// -- Error Types --

// RootError is returned when a starting directory is invalid.
type RootError struct {
	Root  string
	Cause error
}

func (e *RootError) Error() string {
	return fmt.Sprintf("invalid directory %s: %v", e.Root, e.Cause)
}
func (e *RootError) Unwrap() error { return e.Cause }

// -- Sentinels --

var (
	ErrNotADirectory = errors.New("not a directory")
)
