package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// envVarPrefix is the prefix for all codeplus environment variables.
const envVarPrefix = "CODEPLUS_"

// envMappings maps environment variable names (without prefix) to setters.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]func(cfg *Config, value string) error{
	"LANGUAGE": func(cfg *Config, v string) error {
		cfg.DefaultLanguage = v
		return nil
	},
	"THEME": func(cfg *Config, v string) error {
		cfg.Theme = v
		return nil
	},
	"LOG_LEVEL": func(cfg *Config, v string) error {
		cfg.LogLevel = strings.ToLower(v)
		return nil
	},
	"LANGUAGES": func(cfg *Config, v string) error {
		cfg.Languages = parseSliceValue(v)
		return nil
	},
	"READ_ONLY": func(cfg *Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("expected true/false/1/0, got %q", v)
		}
		cfg.ReadOnly = b
		return nil
	},
	"MIN_HEIGHT": func(cfg *Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("expected an integer, got %q", v)
		}
		cfg.Resize.MinHeight = n
		return nil
	},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with CODEPLUS_ (e.g., CODEPLUS_THEME).
func LoadFromEnv(cfg *Config) error {
	if cfg == nil {
		return nil
	}
	for suffix, set := range envMappings {
		name := envVarPrefix + suffix
		value := os.Getenv(name)
		if value == "" {
			continue
		}
		if err := set(cfg, value); err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
	}
	return nil
}

// ListEnvVars returns the supported environment variables with descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"CODEPLUS_LANGUAGE":   "Language of new records",
		"CODEPLUS_LANGUAGES":  "Comma-separated language menu",
		"CODEPLUS_THEME":      "Chroma style name",
		"CODEPLUS_LOG_LEVEL":  "Log level: debug, info, warn, or error",
		"CODEPLUS_READ_ONLY":  "Open blocks read-only: true or false",
		"CODEPLUS_MIN_HEIGHT": "Collapsed height in rows",
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
