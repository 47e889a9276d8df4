package config

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile or environment.
// NOTE: Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	// BaseDir is the initial working directory. Empty means the process working directory.
	BaseDir string      `json:"base_dir" toml:"base_dir"`
	Tools   ToolsConfig `json:"tools" toml:"tools"`
	Log     LogConfig   `json:"log" toml:"log"`
}

type ToolsConfig struct {
	// Filename search
	DefaultFindTimeLimit float64 `json:"default_find_time_limit" toml:"default_find_time_limit"` // Default: 5 (seconds, -1 = unbounded)
	DefaultFindMaxDepth  int     `json:"default_find_max_depth" toml:"default_find_max_depth"`   // Default: -1 (unbounded)

	// Content search
	DefaultSearchTimeLimit float64 `json:"default_search_time_limit" toml:"default_search_time_limit"` // Default: 5.0 (seconds, -1 = unbounded)
	DefaultContextLines    int     `json:"default_context_lines" toml:"default_context_lines"`         // Default: 0

	// Directory listing
	DefaultListLimit int    `json:"default_list_limit" toml:"default_list_limit"` // Default: -1 (no limit)
	HiddenPrefix     string `json:"hidden_prefix" toml:"hidden_prefix"`           // Default: "."
}

type LogConfig struct {
	Level  string `json:"level" toml:"level"`   // debug, info, warn, error. Default: warn
	Format string `json:"format" toml:"format"` // text or json. Default: text
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Tools: ToolsConfig{
			DefaultFindTimeLimit:   5,
			DefaultFindMaxDepth:    -1,
			DefaultSearchTimeLimit: 5.0,
			DefaultContextLines:    0,
			DefaultListLimit:       -1,
			HiddenPrefix:           ".",
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}
