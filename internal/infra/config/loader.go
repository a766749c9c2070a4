// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// File names.
const (
	// FileName is the config file name in the global config directory.
	FileName = "config.toml"
	// LocalFileName is the per-directory config file name.
	LocalFileName = ".tracker.toml"
	// StorePathEnv overrides the store path when set.
	StorePathEnv = "TRACKER_STORE"
)

// Config represents the application configuration.
type Config struct {
	Store StoreConfig `toml:"store"`
	Log   LogConfig   `toml:"log"`
	List  ListConfig  `toml:"list"`
}

// StoreConfig holds persistence settings from the [store] section.
type StoreConfig struct {
	Path string `toml:"path"` // Store file path (relative to the working directory)
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level"` // Log level: debug, info, warn, error
}

// ListConfig holds list output settings from the [list] section.
type ListConfig struct {
	Output string `toml:"output"` // Default output format: plain, table, json, yaml
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Store: StoreConfig{Path: "tasks.json"},
		Log:   LogConfig{Level: "info"},
		List:  ListConfig{Output: "plain"},
	}
}

// Loader loads configuration from TOML files.
type Loader struct {
	globalDir string // Global config directory (e.g. ~/.config/tracker)
	workDir   string // Working directory holding the optional local file
}

// NewLoader creates a new Loader for the given working directory.
func NewLoader(workDir string) *Loader {
	return &Loader{
		globalDir: defaultGlobalConfigDir(),
		workDir:   workDir,
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config
// directory. This is useful for testing.
func NewLoaderWithGlobalDir(workDir, globalDir string) *Loader {
	return &Loader{
		globalDir: globalDir,
		workDir:   workDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "tracker")
}

// Load returns the merged configuration: defaults, then the global file,
// then the local file (later sources win), then the store path env override.
func (l *Loader) Load() (*Config, error) {
	cfg := Default()

	if l.globalDir != "" {
		if err := mergeFile(cfg, filepath.Join(l.globalDir, FileName)); err != nil {
			return nil, err
		}
	}
	if err := mergeFile(cfg, filepath.Join(l.workDir, LocalFileName)); err != nil {
		return nil, err
	}

	if p := os.Getenv(StorePathEnv); p != "" {
		cfg.Store.Path = p
	}

	return cfg, nil
}

// mergeFile decodes path into cfg. A missing file is not an error; fields
// present in the document override the values already in cfg.
func mergeFile(cfg *Config, path string) error {
	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(content, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}
