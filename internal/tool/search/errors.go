package search

import "fmt"

// PatternRequiredError is returned when no pattern is given.
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

// NegativeValueError is returned when a count argument is negative.
type NegativeValueError struct {
	Field string
	Value int64
}

func (e *NegativeValueError) Error() string {
	return fmt.Sprintf("%s cannot be negative: %d", e.Field, e.Value)
}

func (e *NegativeValueError) InvalidInput() bool { return true }
