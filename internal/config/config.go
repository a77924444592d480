// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

// Package config manages the persisted user configuration under
// ~/.buildpost and the prompts definition file next to it.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/yourorg/buildpost/internal/backend"
	"github.com/yourorg/buildpost/internal/errors"
)

const (
	configDirName   = ".buildpost"
	configFileName  = "config.yaml"
	promptsFileName = "prompts.yaml"
)

// API holds provider selection and credentials.
type API struct {
	Provider string            `yaml:"provider"`
	Keys     map[string]string `yaml:"api_keys"`
	Models   map[string]string `yaml:"models"`
}

// Defaults holds the pipeline defaults a flag can override.
type Defaults struct {
	PromptStyle     string `yaml:"prompt_style"`
	Platform        string `yaml:"platform"`
	IncludeHashtags *bool  `yaml:"include_hashtags"`
	CopyToClipboard *bool  `yaml:"copy_to_clipboard"`
}

// Generation holds LLM request parameters.
type Generation struct {
	Temperature float32 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
}

// Config is the persisted user configuration.
type Config struct {
	API        API        `yaml:"api"`
	Defaults   Defaults   `yaml:"defaults"`
	Generation Generation `yaml:"generation"`

	dir string
}

// Load reads the configuration from the user's home directory, creating
// the directory and filling defaults as needed. A .env file in the working
// directory is honored for provider keys.
func Load() (*Config, error) {
	_ = godotenv.Load()

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfig, "locate home directory")
	}
	return LoadFrom(filepath.Join(home, configDirName))
}

// LoadFrom reads the configuration rooted at dir. Used by tests.
func LoadFrom(dir string) (*Config, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfig, "create config directory")
	}

	cfg := &Config{dir: dir}
	raw, err := os.ReadFile(filepath.Join(dir, configFileName))
	if err == nil {
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfig, "parse config.yaml")
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrap(err, errors.ErrCodeConfig, "read config.yaml")
	}

	cfg.fillDefaults()
	return cfg, nil
}

func (c *Config) fillDefaults() {
	if c.API.Provider == "" {
		c.API.Provider = "openai"
	}
	if c.API.Keys == nil {
		c.API.Keys = make(map[string]string)
	}
	if c.API.Models == nil {
		c.API.Models = make(map[string]string)
	}
	if c.Defaults.PromptStyle == "" {
		c.Defaults.PromptStyle = "casual"
	}
	if c.Defaults.Platform == "" {
		c.Defaults.Platform = "twitter"
	}
	if c.Generation.Temperature == 0 {
		c.Generation.Temperature = 0.7
	}
	if c.Generation.MaxTokens == 0 {
		c.Generation.MaxTokens = 500
	}
}

// Save writes the configuration back to disk.
func (c *Config) Save() error {
	raw, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeConfig, "marshal config")
	}
	if err := os.WriteFile(filepath.Join(c.dir, configFileName), raw, 0o600); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfig, "write config.yaml")
	}
	return nil
}

// Dir returns the configuration directory.
func (c *Config) Dir() string {
	return c.dir
}

// PromptsFile returns the path of the prompts definition document.
func (c *Config) PromptsFile() string {
	return filepath.Join(c.dir, promptsFileName)
}

// EnsurePromptsFile writes the built-in prompts document if none exists and
// returns its path.
func (c *Config) EnsurePromptsFile(defaults []byte) (string, error) {
	path := c.PromptsFile()
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if err := os.WriteFile(path, defaults, 0o644); err != nil {
		return "", errors.Wrap(err, errors.ErrCodeConfig, "write prompts.yaml")
	}
	return path, nil
}

// APIKey returns the stored key for a provider, falling back to the
// provider's environment variable.
func (c *Config) APIKey(provider string) string {
	if key := c.API.Keys[provider]; key != "" {
		return key
	}
	if info, ok := backend.Lookup(provider); ok && info.EnvVar != "" {
		return os.Getenv(info.EnvVar)
	}
	return ""
}

// SetAPIKey stores a key for a provider.
func (c *Config) SetAPIKey(provider, key string) {
	c.API.Keys[provider] = key
}

// Model returns the configured model for a provider, falling back to the
// provider's default.
func (c *Config) Model(provider string) string {
	if model := c.API.Models[provider]; model != "" {
		return model
	}
	if info, ok := backend.Lookup(provider); ok {
		return info.DefaultModel
	}
	return ""
}

// SetModel stores the default model for a provider.
func (c *Config) SetModel(provider, model string) {
	c.API.Models[provider] = model
}

// IncludeHashtags reports the configured hashtag preference.
func (c *Config) IncludeHashtags() bool {
	if c.Defaults.IncludeHashtags == nil {
		return true
	}
	return *c.Defaults.IncludeHashtags
}

// CopyToClipboard reports whether generated posts are copied by default.
func (c *Config) CopyToClipboard() bool {
	if c.Defaults.CopyToClipboard == nil {
		return true
	}
	return *c.Defaults.CopyToClipboard
}

// Reset restores defaults and persists them.
func (c *Config) Reset() error {
	*c = Config{dir: c.dir}
	c.fillDefaults()
	return c.Save()
}

// Show renders the configuration as YAML with API keys masked.
func (c *Config) Show() (string, error) {
	masked := *c
	masked.API.Keys = make(map[string]string, len(c.API.Keys))
	for provider, key := range c.API.Keys {
		masked.API.Keys[provider] = maskKey(key)
	}
	raw, err := yaml.Marshal(&masked)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeConfig, "marshal config")
	}
	return string(raw), nil
}

func maskKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 8 {
		return "***"
	}
	return fmt.Sprintf("%s...%s", key[:4], key[len(key)-4:])
}
