package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Defaults written to a fresh config file
const (
	DefaultDealerStandsOn = 17
	DefaultColor          = "auto"
	DefaultLogLevel       = "warn"
)

// Config represents the application configuration
type Config struct {
	PlayerName     string `toml:"player_name"`
	DealerStandsOn int    `toml:"dealer_stands_on"`
	Color          string `toml:"color"`
	LogLevel       string `toml:"log_level"`
	Seed           int64  `toml:"seed"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		DealerStandsOn: DefaultDealerStandsOn,
		Color:          DefaultColor,
		LogLevel:       DefaultLogLevel,
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "blackjack", "config.toml")
}

// LoadConfig loads the config file, creating it with defaults if it doesn't exist
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := Default()
		if err := SaveConfigTo(configPath, config); err != nil {
			return nil, err
		}
		return config, nil
	}

	return LoadConfigFrom(configPath)
}

// LoadConfigFrom decodes the config file at path. Keys missing from the file
// keep their default values.
func LoadConfigFrom(path string) (*Config, error) {
	config := Default()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	return config, nil
}

// SaveConfig writes config to the default config path
func SaveConfig(config *Config) error {
	return SaveConfigTo(GetConfigFilePath(), config)
}

// SaveConfigTo writes config to path, creating the directory if needed
func SaveConfigTo(path string, config *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// SetPlayerName stores the name used instead of prompting
func SetPlayerName(name string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	config.PlayerName = name
	return SaveConfig(config)
}
