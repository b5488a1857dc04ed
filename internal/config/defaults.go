package config

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile.
// NOTE: Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	Chat    ChatConfig    `json:"chat"`
	Monitor MonitorConfig `json:"monitor"`
	UI      UIConfig      `json:"ui"`
	Catalog CatalogConfig `json:"catalog"`
	Logging LoggingConfig `json:"logging"`
}

type ChatConfig struct {
	Model                 string   `json:"model"`                   // Default: gemini-flash-latest
	SystemInstruction     string   `json:"system_instruction"`      // Default: the MOTHER persona
	RequestTimeoutSeconds int      `json:"request_timeout_seconds"` // Default: 60
	APIKeyEnv             string   `json:"api_key_env"`             // Default: GEMINI_API_KEY
	Greeting              string   `json:"greeting"`                // First transcript line
	Temperature           *float32 `json:"temperature"`             // Range [0, 2]; nil uses the model default
}

type MonitorConfig struct {
	WindowSize        int `json:"window_size"`         // Default: 20
	RefreshIntervalMs int `json:"refresh_interval_ms"` // Default: 500
}

type UIConfig struct {
	ClockIntervalMs int  `json:"clock_interval_ms"` // Default: 1000
	GridColumns     int  `json:"grid_columns"`      // Default: 4
	AltScreen       bool `json:"alt_screen"`        // Default: true
}

type CatalogConfig struct {
	// Path to a YAML tree definition. Empty uses the builtin tree.
	Path string `json:"path"`
}

type LoggingConfig struct {
	// Path of the log file. Empty disables logging.
	Path  string `json:"path"`
	Level string `json:"level"` // Default: info
}

const defaultSystemInstruction = "You are a retro-futuristic AI assistant named 'MOTHER'. " +
	"You exist inside a cassette futurism OS. Your responses should be technical, slightly robotic but helpful. " +
	"Keep responses concise and use monospace formatting where possible. " +
	"Avoid markdown bolding if possible, prefer UPPERCASE for emphasis."

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Chat: ChatConfig{
			Model:                 "gemini-flash-latest",
			SystemInstruction:     defaultSystemInstruction,
			RequestTimeoutSeconds: 60,
			APIKeyEnv:             "GEMINI_API_KEY",
			Greeting:              "MOTHER SYSTEM ONLINE. WAITING FOR INPUT...",
		},
		Monitor: MonitorConfig{
			WindowSize:        20,
			RefreshIntervalMs: 500,
		},
		UI: UIConfig{
			ClockIntervalMs: 1000,
			GridColumns:     4,
			AltScreen:       true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
