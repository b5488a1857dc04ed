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

func TestValidate_Fields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"Empty Model Fails", func(c *Config) { c.Chat.Model = " " }, "chat.model"},
		{"Zero Timeout Fails", func(c *Config) { c.Chat.RequestTimeoutSeconds = 0 }, "request_timeout_seconds"},
		{"Empty API Key Env Fails", func(c *Config) { c.Chat.APIKeyEnv = "" }, "api_key_env"},
		{"Negative Temperature Fails", func(c *Config) { t := float32(-0.1); c.Chat.Temperature = &t }, "chat.temperature"},
		{"Hot Temperature Fails", func(c *Config) { t := float32(2.5); c.Chat.Temperature = &t }, "chat.temperature"},
		{"Tiny Window Fails", func(c *Config) { c.Monitor.WindowSize = 1 }, "window_size"},
		{"Fast Refresh Fails", func(c *Config) { c.Monitor.RefreshIntervalMs = 10 }, "refresh_interval_ms"},
		{"Fast Clock Fails", func(c *Config) { c.UI.ClockIntervalMs = 0 }, "clock_interval_ms"},
		{"Zero Columns Fails", func(c *Config) { c.UI.GridColumns = 0 }, "grid_columns"},
		{"Too Many Columns Fails", func(c *Config) { c.UI.GridColumns = 13 }, "grid_columns"},
		{"Unknown Log Level Fails", func(c *Config) { c.Logging.Level = "verbose" }, "logging.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_ReportsAllFailures(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Monitor.WindowSize = 0
	cfg.UI.GridColumns = 0

	err := cfg.Validate()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "monitor.window_size")
	assert.Contains(t, err.Error(), "ui.grid_columns")
}
