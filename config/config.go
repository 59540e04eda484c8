package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config represents the assembler configuration
type Config struct {
	// Assembler settings
	Assembler struct {
		CodeSegmentOffset string `toml:"code_segment_offset"` // Go integer literal: 0x hex or decimal; a leading 0 reads as octal
		DefaultSource     string `toml:"default_source"`
		DefaultOutput     string `toml:"default_output"`
	} `toml:"assembler"`

	// Trace settings
	Trace struct {
		Enabled bool `toml:"enabled"` // log pass progress to stderr
	} `toml:"trace"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Assembler.CodeSegmentOffset = "0x00400000"
	cfg.Assembler.DefaultSource = "test.s"
	cfg.Assembler.DefaultOutput = "code.mem"

	cfg.Trace.Enabled = false

	return cfg
}

// SegmentOffset parses the configured code segment offset.
func (c *Config) SegmentOffset() (uint32, error) {
	value, err := strconv.ParseUint(c.Assembler.CodeSegmentOffset, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid code_segment_offset %q: %w",
			c.Assembler.CodeSegmentOffset, err)
	}
	return uint32(value), nil
}

// GetConfigPath returns the platform-specific config file path
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		// Windows: %APPDATA%\mips-assembler\config.toml
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "mips-assembler")

	case "darwin", "linux":
		// macOS/Linux: ~/.config/mips-assembler/config.toml
		homeDir, err := os.UserHomeDir()
		if err != nil {
			// Fallback to current directory
			return "config.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "mips-assembler")

	default:
		// Unknown platform: use current directory
		return "config.toml"
	}

	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0750); err != nil {
		// If we can't create the directory, fall back to current directory
		return "config.toml"
	}

	return filepath.Join(configDir, "config.toml")
}

// Load loads configuration from the default config file
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from the specified file
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	// If file doesn't exist, return default config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	// Read and parse config file
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to the default config file
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo saves configuration to the specified file
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Create file
	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close config file: %w", closeErr)
		}
	}()

	// Encode to TOML
	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
