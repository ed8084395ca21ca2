package config

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/arcanaland/bingo/internal/deck"
	"github.com/arcanaland/bingo/internal/joker"
	"github.com/arcanaland/bingo/internal/layout"
)

// Config represents the application configuration
type Config struct {
	Model  deck.Settings `toml:"model"`
	Output Output        `toml:"output"`
}

// Output holds the page layout and document settings
type Output struct {
	layout.Layout
	FileName        string `toml:"file_name"`
	JokerBackground string `toml:"joker_background"`
}

// Default returns the configuration written on first use
func Default() *Config {
	return &Config{
		Model: deck.DefaultSettings(),
		Output: Output{
			Layout:          layout.Default(),
			FileName:        "bingo-cards.pdf",
			JokerBackground: "#ffffff",
		},
	}
}

// Layout returns the page layout with the fixed cards-per-page count applied
func (c *Config) Layout() layout.Layout {
	l := c.Output.Layout
	l.CardsPerPage = layout.Default().CardsPerPage
	return l
}

// JokerBackground returns the parsed joker background colour
func (c *Config) JokerBackground() (color.Color, error) {
	return joker.ParseBackground(c.Output.JokerBackground)
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
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

// GetDataDir returns the directory the joker image is stored in
func GetDataDir() string {
	return filepath.Join(GetXDGDataHome(), "bingo")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "bingo", "config.toml")
}

// GetJokerPath returns the path of the stored joker image
func GetJokerPath() string {
	return filepath.Join(GetDataDir(), "joker")
}

// LoadConfig loads the config file. Keys missing from the file keep their
// default values.
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	// Create default config if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	return config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := Default()
	if err := SaveConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig writes the config file, creating its directory if needed
func SaveConfig(config *Config) error {
	configPath := GetConfigFilePath()

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	// Encode the config to TOML
	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// LoadJoker returns the stored joker image, or nil if none was stored
func LoadJoker() ([]byte, error) {
	data, err := os.ReadFile(GetJokerPath())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading joker image: %w", err)
	}
	return data, nil
}

// SaveJoker stores the joker image in the data directory
func SaveJoker(data []byte) error {
	if err := os.MkdirAll(GetDataDir(), 0755); err != nil {
		return fmt.Errorf("error creating data directory: %w", err)
	}
	if err := os.WriteFile(GetJokerPath(), data, 0644); err != nil {
		return fmt.Errorf("error writing joker image: %w", err)
	}
	return nil
}
