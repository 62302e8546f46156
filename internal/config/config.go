// Package config persists application settings as JSON under the user's
// home directory. Loading merges the file over compiled-in defaults, so a
// config written by an older release picks up new keys without losing
// anything the user set.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	ConfigDirName  = ".kmd"
	ConfigFileName = "config.json"
)

// APIKeys holds the per-provider credentials. Empty means unconfigured.
type APIKeys struct {
	OpenAI string `json:"openai"`
	Gemini string `json:"gemini"`
}

// Config represents the application configuration. It is constructed
// explicitly and passed to whatever needs it; there is no global instance.
type Config struct {
	Provider  string  `json:"provider"`
	OllamaURL string  `json:"ollama_url"`
	Model     string  `json:"model"`
	APIKeys   APIKeys `json:"api_keys"`
	Hotkey    string  `json:"hotkey"`
	Theme     string  `json:"theme"`
}

// Default returns the configuration used when no file exists, and the base
// that a loaded file is merged over.
func Default() *Config {
	return &Config{
		Provider:  "ollama",
		OllamaURL: "http://localhost:11434",
		Model:     "llama3.2",
		Hotkey:    "ctrl+shift+space",
		Theme:     "dark",
	}
}

// GetConfigDir returns the path to the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ConfigDirName), nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, ConfigFileName), nil
}

// Load reads the configuration from its standard location. A missing file
// is not an error: defaults come back and the caller may Save them to
// create the file.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(configPath)
}

// LoadFrom reads the configuration at path, merged over defaults.
// Unmarshaling into a prefilled struct only touches keys present in the
// file, which is exactly the merge we want.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to its standard location.
func (c *Config) Save() error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(configPath)
}

// SaveTo writes the configuration to path, creating the directory if
// needed.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Exists checks if a configuration file exists
func Exists() (bool, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return false, err
	}

	_, err = os.Stat(configPath)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}
