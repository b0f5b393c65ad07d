// Package config loads codeplus settings from YAML and the environment.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/codeplus/codeblock"
	"github.com/iw2rmb/codeplus/highlight"
)

// DefaultMinHeight is the collapsed height of the terminal widget, in rows.
const DefaultMinHeight = 10

// Config holds every user setting.
type Config struct {
	// DefaultLanguage is used for new records without a language.
	DefaultLanguage string `yaml:"default_language"`

	// Languages is the language menu. Empty means the built-in menu.
	Languages []string `yaml:"languages,omitempty"`

	// Theme is a Chroma style name.
	Theme string `yaml:"theme"`

	// Placeholder is shown in an empty block.
	Placeholder string `yaml:"placeholder"`

	// Messages translates user-facing strings, keyed by their English text.
	Messages map[string]string `yaml:"messages,omitempty"`

	Features FeaturesConfig `yaml:"features"`
	Resize   ResizeConfig   `yaml:"resize"`

	LogLevel string `yaml:"log_level"`
	ReadOnly bool   `yaml:"read_only"`
}

// FeaturesConfig toggles the optional parts of the block.
type FeaturesConfig struct {
	LanguageMenu bool `yaml:"language_menu"`
	CopyButton   bool `yaml:"copy_button"`
	ResizeHandle bool `yaml:"resize_handle"`
}

// ResizeConfig configures the resize handle.
type ResizeConfig struct {
	MinHeight int `yaml:"min_height"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DefaultLanguage: highlight.PlainText,
		Theme:           highlight.DefaultStyle,
		Placeholder:     codeblock.DefaultPlaceholder,
		Features: FeaturesConfig{
			LanguageMenu: true,
			CopyButton:   true,
			ResizeHandle: true,
		},
		Resize:   ResizeConfig{MinHeight: DefaultMinHeight},
		LogLevel: "info",
	}
}

// Menu returns the configured language menu, or the built-in one.
func (c *Config) Menu() []string {
	if len(c.Languages) == 0 {
		return highlight.DefaultLanguages()
	}
	return append([]string(nil), c.Languages...)
}

// BlockFeatures converts the feature toggles for codeblock.
func (c *Config) BlockFeatures() codeblock.Features {
	return codeblock.Features{
		LanguageMenu: c.Features.LanguageMenu,
		CopyButton:   c.Features.CopyButton,
		ResizeHandle: c.Features.ResizeHandle,
	}
}

// Localizer looks strings up in Messages and falls back to the key.
func (c *Config) Localizer() codeblock.Localizer {
	messages := c.Messages
	return codeblock.LocalizerFunc(func(key string) string {
		if v, ok := messages[key]; ok && v != "" {
			return v
		}
		return key
	})
}

// ToYAML serializes the configuration.
func (c *Config) ToYAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}
