package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_AllDefaults_Pass(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestValidate_Tools(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"Unbounded Find Time Limit Passes", func(c *Config) { c.Tools.DefaultFindTimeLimit = -1 }, ""},
		{"Zero Search Time Limit Passes", func(c *Config) { c.Tools.DefaultSearchTimeLimit = 0 }, ""},
		{"Negative Find Time Limit Fails", func(c *Config) { c.Tools.DefaultFindTimeLimit = -2 }, "default_find_time_limit"},
		{"Fractional Negative Search Limit Fails", func(c *Config) { c.Tools.DefaultSearchTimeLimit = -0.5 }, "default_search_time_limit"},
		{"Depth Below -1 Fails", func(c *Config) { c.Tools.DefaultFindMaxDepth = -2 }, "default_find_max_depth"},
		{"Negative Context Lines Fails", func(c *Config) { c.Tools.DefaultContextLines = -1 }, "default_context_lines"},
		{"List Limit Below -1 Fails", func(c *Config) { c.Tools.DefaultListLimit = -5 }, "default_list_limit"},
		{"Empty Hidden Prefix Fails", func(c *Config) { c.Tools.HiddenPrefix = "" }, "hidden_prefix"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_Log(t *testing.T) {
	t.Run("Unknown Format Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Log.Format = "xml"
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "log.format")
	})

	t.Run("Multiple Problems Reported Together", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Log.Level = ""
		cfg.Tools.DefaultContextLines = -3
		err := cfg.Validate()
		var ve *ValidationError
		assert.ErrorAs(t, err, &ve)
		assert.Len(t, ve.Problems, 2)
	})
}
