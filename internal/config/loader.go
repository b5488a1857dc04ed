package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// ConfigDir holds the dotfile and the default log, under ~/.config.
	ConfigDir = "cassette"
	// ConfigFile is the JSON dotfile read at startup.
	ConfigFile = "config.json"
	// LogFile is written next to ConfigFile unless logging.path says otherwise.
	LogFile = "cassette.log"
)

// FileSystem is the slice of the OS the loader touches.
type FileSystem interface {
	UserHomeDir() (string, error)
	ReadFile(path string) ([]byte, error)
}

// ConfigFileReader reads from the real OS.
type ConfigFileReader struct{}

func (ConfigFileReader) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

func (ConfigFileReader) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Loader builds a Config from defaults and the dotfile.
type Loader struct {
	fs FileSystem
}

// NewLoader returns a Loader backed by the OS.
func NewLoader() *Loader {
	return &Loader{fs: ConfigFileReader{}}
}

// NewLoaderWithFS returns a Loader backed by fs.
func NewLoaderWithFS(fs FileSystem) *Loader {
	return &Loader{fs: fs}
}

// Load returns the shell configuration.
//
// Keys present in ~/.config/cassette/config.json replace the matching defaults,
// zero values included; absent keys keep their defaults. A missing dotfile or
// home directory is not an error. Unreadable files, malformed JSON and values
// rejected by Validate are.
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()

	home, err := l.fs.UserHomeDir()
	if err != nil {
		return cfg, nil
	}
	dir := filepath.Join(home, ".config", ConfigDir)
	cfg.Logging.Path = filepath.Join(dir, LogFile)

	path := filepath.Join(dir, ConfigFile)
	data, err := l.fs.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		return cfg, nil
	case err != nil:
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads the configuration from the user's home directory.
func Load() (*Config, error) {
	return NewLoader().Load()
}
