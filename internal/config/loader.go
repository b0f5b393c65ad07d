package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadOptions controls configuration loading.
type LoadOptions struct {
	// ExplicitPath is a config file path from --config. A missing explicit
	// file is an error; a missing user file is not.
	ExplicitPath string

	// IgnoreUserConfig skips $XDG_CONFIG_HOME/codeplus/config.yaml.
	IgnoreUserConfig bool

	// IgnoreEnv skips CODEPLUS_* overrides.
	IgnoreEnv bool
}

// LoadResult is the resolved configuration and where it came from.
type LoadResult struct {
	Config     *Config
	LoadedFrom string
}

// Load resolves the configuration.
// Precedence (highest to lowest):
//  1. Environment variables (CODEPLUS_*)
//  2. Explicit config file (opts.ExplicitPath)
//  3. User config ($XDG_CONFIG_HOME/codeplus/config.yaml)
//  4. Defaults
//
// CLI flags are applied by the caller on top of the result.
func Load(opts LoadOptions) (*LoadResult, error) {
	cfg := Default()
	result := &LoadResult{Config: cfg}

	path := opts.ExplicitPath
	if path == "" && !opts.IgnoreUserConfig {
		if p := UserConfigPath(); p != "" && fileExists(p) {
			path = p
		}
	}
	if path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
		result.LoadedFrom = path
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return result, nil
}

// UserConfigPath returns $XDG_CONFIG_HOME/codeplus/config.yaml, falling back
// to ~/.config when XDG_CONFIG_HOME is unset.
func UserConfigPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "codeplus", "config.yaml")
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
