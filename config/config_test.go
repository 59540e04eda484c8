package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	// Test assembler defaults
	if cfg.Assembler.CodeSegmentOffset != "0x00400000" {
		t.Errorf("Expected CodeSegmentOffset=0x00400000, got %s", cfg.Assembler.CodeSegmentOffset)
	}
	if cfg.Assembler.DefaultSource != "test.s" {
		t.Errorf("Expected DefaultSource=test.s, got %s", cfg.Assembler.DefaultSource)
	}
	if cfg.Assembler.DefaultOutput != "code.mem" {
		t.Errorf("Expected DefaultOutput=code.mem, got %s", cfg.Assembler.DefaultOutput)
	}

	// Test trace defaults
	if cfg.Trace.Enabled {
		t.Error("Expected Trace.Enabled=false")
	}
}

func TestSegmentOffset(t *testing.T) {
	cfg := DefaultConfig()

	offset, err := cfg.SegmentOffset()
	if err != nil {
		t.Fatalf("SegmentOffset failed: %v", err)
	}
	if offset != 0x00400000 {
		t.Errorf("Expected offset=0x00400000, got 0x%08x", offset)
	}

	cfg.Assembler.CodeSegmentOffset = "4096"
	offset, err = cfg.SegmentOffset()
	if err != nil {
		t.Fatalf("SegmentOffset failed on decimal: %v", err)
	}
	if offset != 4096 {
		t.Errorf("Expected offset=4096, got %d", offset)
	}

	cfg.Assembler.CodeSegmentOffset = "not an address"
	if _, err := cfg.SegmentOffset(); err == nil {
		t.Error("Expected error for invalid offset")
	}
}

func TestGetConfigPath(t *testing.T) {
	path := GetConfigPath()

	// Verify path is not empty
	if path == "" {
		t.Error("GetConfigPath returned empty string")
	}

	// Verify path ends with config.toml
	if filepath.Base(path) != "config.toml" {
		t.Errorf("Expected path to end with config.toml, got %s", path)
	}

	// Platform-specific checks
	switch runtime.GOOS {
	case "windows":
		if !filepath.IsAbs(path) && path != "config.toml" {
			t.Errorf("Expected absolute path on Windows, got %s", path)
		}

	case "darwin", "linux":
		// Should be in .config/mips-assembler or be fallback
		dir := filepath.Dir(path)
		if filepath.Base(dir) != "mips-assembler" && path != "config.toml" {
			t.Errorf("Expected path in mips-assembler directory or fallback, got %s", path)
		}
	}
}

func TestSaveAndLoad(t *testing.T) {
	// Create a temporary directory for testing
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "test_config.toml")

	// Create a config with custom values
	cfg := DefaultConfig()
	cfg.Assembler.CodeSegmentOffset = "0x1000"
	cfg.Assembler.DefaultSource = "prog.s"
	cfg.Trace.Enabled = true

	// Save config
	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	// Verify file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatal("Config file was not created")
	}

	// Load config
	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Verify values match
	if loaded.Assembler.CodeSegmentOffset != "0x1000" {
		t.Errorf("Expected CodeSegmentOffset=0x1000, got %s", loaded.Assembler.CodeSegmentOffset)
	}
	if loaded.Assembler.DefaultSource != "prog.s" {
		t.Errorf("Expected DefaultSource=prog.s, got %s", loaded.Assembler.DefaultSource)
	}
	if !loaded.Trace.Enabled {
		t.Error("Expected Trace.Enabled=true")
	}
}

func TestLoadNonExistent(t *testing.T) {
	// Try to load from a non-existent file
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "nonexistent.toml")

	// Should return default config without error
	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("LoadFrom should not error on non-existent file: %v", err)
	}

	// Verify we got default config
	if cfg.Assembler.DefaultOutput != "code.mem" {
		t.Error("Expected default config when file doesn't exist")
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	// Create a temporary file with invalid TOML
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "invalid.toml")

	invalidTOML := `
[trace]
enabled = "not a bool"  # Invalid: should be bool
`
	if err := os.WriteFile(configPath, []byte(invalidTOML), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	// Should return error
	_, err := LoadFrom(configPath)
	if err == nil {
		t.Error("Expected error when loading invalid TOML")
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	// Create a temporary directory
	tempDir := t.TempDir()

	// Try to save to a path with non-existent subdirectories
	configPath := filepath.Join(tempDir, "subdir1", "subdir2", "config.toml")

	cfg := DefaultConfig()
	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	// Verify file was created
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file was not created")
	}
}
