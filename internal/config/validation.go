package config

import (
	"fmt"
	"strings"
)

// ValidationError lists every invalid config value found.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: %s", strings.Join(e.Problems, "; "))
}

func (e *ValidationError) InvalidInput() bool { return true }

// Validate checks config values for correctness.
// Returns an error if any values are invalid.
func (c *Config) Validate() error {
	var errs []string

	// Time limits: -1 disables the limit, otherwise non-negative
	if c.Tools.DefaultFindTimeLimit < 0 && c.Tools.DefaultFindTimeLimit != -1 {
		errs = append(errs, "tools.default_find_time_limit must be >= 0 or -1")
	}
	if c.Tools.DefaultSearchTimeLimit < 0 && c.Tools.DefaultSearchTimeLimit != -1 {
		errs = append(errs, "tools.default_search_time_limit must be >= 0 or -1")
	}
	if c.Tools.DefaultFindMaxDepth < -1 {
		errs = append(errs, "tools.default_find_max_depth must be >= -1")
	}
	if c.Tools.DefaultContextLines < 0 {
		errs = append(errs, "tools.default_context_lines must be >= 0")
	}
	if c.Tools.DefaultListLimit < -1 {
		errs = append(errs, "tools.default_list_limit must be >= -1")
	}
	if c.Tools.HiddenPrefix == "" {
		errs = append(errs, "tools.hidden_prefix must not be empty")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("log.level %q is not one of debug, info, warn, error", c.Log.Level))
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("log.format %q is not one of text, json", c.Log.Format))
	}

	if len(errs) > 0 {
		return &ValidationError{Problems: errs}
	}

	return nil
}
