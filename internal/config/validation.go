package config

import (
	"fmt"
	"strings"
)

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks config values for correctness.
// Returns an error listing every invalid value.
func (c *Config) Validate() error {
	var errs []string

	// Chat
	if strings.TrimSpace(c.Chat.Model) == "" {
		errs = append(errs, "chat.model must not be empty")
	}
	if c.Chat.RequestTimeoutSeconds < 1 {
		errs = append(errs, "chat.request_timeout_seconds must be >= 1")
	}
	if strings.TrimSpace(c.Chat.APIKeyEnv) == "" {
		errs = append(errs, "chat.api_key_env must not be empty")
	}
	if t := c.Chat.Temperature; t != nil && (*t < 0 || *t > 2) {
		errs = append(errs, fmt.Sprintf("chat.temperature must be between 0 and 2 (got %v)", *t))
	}

	// Monitor
	if c.Monitor.WindowSize < 2 {
		errs = append(errs, "monitor.window_size must be >= 2")
	}
	if c.Monitor.RefreshIntervalMs < 50 {
		errs = append(errs, "monitor.refresh_interval_ms must be >= 50")
	}

	// UI
	if c.UI.ClockIntervalMs < 100 {
		errs = append(errs, "ui.clock_interval_ms must be >= 100")
	}
	if c.UI.GridColumns < 1 || c.UI.GridColumns > 12 {
		errs = append(errs, "ui.grid_columns must be between 1 and 12")
	}

	// Logging
	if !validLogLevels[c.Logging.Level] {
		errs = append(errs, fmt.Sprintf("logging.level must be one of debug, info, warn, error (got %q)", c.Logging.Level))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}
