package adapter

import (
	"fmt"
	"strings"
)

// UnknownToolError is returned when a call names a tool that is not registered.
type UnknownToolError struct {
	Name      string
	Available []string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool '%s' (available: %s)", e.Name, strings.Join(e.Available, ", "))
}

func (e *UnknownToolError) InvalidInput() bool { return true }

// ArgumentsError is returned when call arguments do not fit the tool's request type.
type ArgumentsError struct {
	Tool  string
	Cause error
}

func (e *ArgumentsError) Error() string {
	return fmt.Sprintf("invalid arguments for %s: %v", e.Tool, e.Cause)
}
func (e *ArgumentsError) Unwrap() error      { return e.Cause }
func (e *ArgumentsError) InvalidInput() bool { return true }
