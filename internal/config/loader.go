package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const (
	// ConfigDir is the directory name under ~/.config
	ConfigDir = "fsnav"
	// ConfigFile is the JSON config file name
	ConfigFile = "config.json"
	// TOMLConfigFile is read when ConfigFile is absent
	TOMLConfigFile = "config.toml"
)

// Environment variables that override BaseDir, in priority order.
var baseDirEnvVars = []string{"FSNAV_BASE_DIR", "BASE_DIR"}

// FileSystem abstracts file operations for testability
type FileSystem interface {
	UserHomeDir() (string, error)
	ReadFile(path string) ([]byte, error)
	Getenv(key string) string
}

// ConfigFileReader implements FileSystem using the real OS for config loading
type ConfigFileReader struct{}

func (ConfigFileReader) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

func (ConfigFileReader) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (ConfigFileReader) Getenv(key string) string {
	return os.Getenv(key)
}

// ParseError is returned when a config file exists but cannot be decoded.
type ParseError struct {
	Path  string
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse config %s: %v", e.Path, e.Cause)
}
func (e *ParseError) Unwrap() error { return e.Cause }

// Loader handles configuration loading with injected dependencies
type Loader struct {
	fs FileSystem
}

// NewLoader creates a production Loader using the real filesystem
func NewLoader() *Loader {
	return &Loader{fs: ConfigFileReader{}}
}

// NewLoaderWithFS creates a Loader with a custom filesystem (for testing)
func NewLoaderWithFS(fs FileSystem) *Loader {
	return &Loader{fs: fs}
}

// Load reads configuration from ~/.config/fsnav/config.json (or config.toml when
// the JSON file is absent), merges it over the defaults, applies the BaseDir
// environment overrides and validates the result.
// Returns default config if no dotfile exists.
// Returns error only for parse errors, permission issues, or validation failures.
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()

	if homeDir, err := l.fs.UserHomeDir(); err == nil {
		if err := l.loadFile(cfg, homeDir); err != nil {
			return nil, err
		}
	}

	for _, key := range baseDirEnvVars {
		if v := l.fs.Getenv(key); v != "" {
			cfg.BaseDir = v
			break
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFile decodes the first dotfile found directly over cfg, so present keys
// overwrite defaults (even if zero) and missing keys leave them untouched.
func (l *Loader) loadFile(cfg *Config, homeDir string) error {
	dir := filepath.Join(homeDir, ".config", ConfigDir)

	jsonPath := filepath.Join(dir, ConfigFile)
	data, err := l.fs.ReadFile(jsonPath)
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return &ParseError{Path: jsonPath, Cause: err}
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return err
	}

	tomlPath := filepath.Join(dir, TOMLConfigFile)
	data, err = l.fs.ReadFile(tomlPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return &ParseError{Path: tomlPath, Cause: err}
	}
	return nil
}

// Load is a convenience function using the default loader
func Load() (*Config, error) {
	return NewLoader().Load()
}
