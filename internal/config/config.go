// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config loads and persists git-ai configuration. A Config is an
// immutable snapshot taken at process start; the commit pipeline never
// writes it back.
// Implements: prd006-config R1, R2, R3;
//
//	docs/ARCHITECTURE § Configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// ErrUnknownKey is returned by Set for keys outside the config schema.
var ErrUnknownKey = errors.New("unknown config key")

// Defaults matching a fresh installation.
const (
	DefaultProvider      = "anthropic"
	DefaultStyle         = "conventional"
	DefaultMaxDiffLength = 4000
	DefaultTemperature   = 0.3
	DefaultMaxTokens     = 500
	DefaultOllamaBaseURL = "http://localhost:11434/v1"
)

// DefaultModels maps each provider to its default model identifier.
var DefaultModels = map[string]string{
	"anthropic": "claude-sonnet-4-20250514",
	"openai":    "gpt-4-turbo-preview",
	"ollama":    "llama2",
	"bedrock":   "anthropic.claude-3-sonnet-20240229-v1:0",
}

// DefaultCommitTypes is the conventional-commit type vocabulary offered to
// the backend when no override is configured.
var DefaultCommitTypes = []string{
	"feat", "fix", "docs", "style", "refactor", "perf", "test", "chore", "ci", "build",
}

// Config is the process-wide configuration snapshot. It is threaded
// explicitly into each component so behavior stays a function of explicit
// inputs.
type Config struct {
	Provider      string            // Active backend: anthropic, openai, ollama, bedrock
	Models        map[string]string // Model identifier per provider
	CommitTypes   []string          // Conventional-commit type vocabulary
	MaxDiffLength int               // Prompt diff section cap, in characters
	Temperature   float64           // Sampling temperature
	UseCompact    bool              // Compact prompt encoding (use_toon)
	DefaultStyle  string            // Style when none is requested
	MaxTokens     int               // Response token cap
	OllamaBaseURL string            // Local OpenAI-compatible endpoint
	AWSRegion     string            // Region for the bedrock provider
}

// DefaultPath returns the config file location, ~/.git-ai/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".git-ai", "config.yaml"), nil
}

// Load reads the config file at path, merging it over defaults. A missing
// file yields the defaults without error.
//
// Implements: prd006-config R1.1-R1.4.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	return fromViper(v), nil
}

// Set updates one key in the config file at path and persists it. Dotted
// keys address the model map, e.g. "model.anthropic".
//
// Implements: prd006-config R3.1-R3.3.
func Set(path, key, value string) error {
	if !knownKey(key) {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	_ = v.ReadInConfig() // Missing file: start from defaults.

	v.Set(key, value)

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// Get returns the string rendering of one key from the config file at path.
func Get(path, key string) (string, error) {
	if !knownKey(key) {
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	_ = v.ReadInConfig()

	return fmt.Sprintf("%v", v.Get(key)), nil
}

// Model returns the configured model for provider.
func (c *Config) Model(provider string) (string, bool) {
	m, ok := c.Models[provider]
	return m, ok && m != ""
}

// APIKey resolves the environment credential for provider. Providers
// without key-based auth (ollama, bedrock) return an empty string.
func (c *Config) APIKey(provider string) string {
	switch provider {
	case "anthropic":
		return os.Getenv("ANTHROPIC_API_KEY")
	case "openai":
		return os.Getenv("OPENAI_API_KEY")
	}
	return ""
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("provider", DefaultProvider)
	v.SetDefault("model", DefaultModels)
	v.SetDefault("commit_types", DefaultCommitTypes)
	v.SetDefault("max_diff_length", DefaultMaxDiffLength)
	v.SetDefault("temperature", DefaultTemperature)
	v.SetDefault("use_toon", false)
	v.SetDefault("default_style", DefaultStyle)
	v.SetDefault("max_tokens", DefaultMaxTokens)
	v.SetDefault("ollama_base_url", DefaultOllamaBaseURL)
	v.SetDefault("aws_region", "")
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Provider:      v.GetString("provider"),
		Models:        v.GetStringMapString("model"),
		CommitTypes:   v.GetStringSlice("commit_types"),
		MaxDiffLength: v.GetInt("max_diff_length"),
		Temperature:   v.GetFloat64("temperature"),
		UseCompact:    v.GetBool("use_toon"),
		DefaultStyle:  v.GetString("default_style"),
		MaxTokens:     v.GetInt("max_tokens"),
		OllamaBaseURL: v.GetString("ollama_base_url"),
		AWSRegion:     v.GetString("aws_region"),
	}
}

// knownKey checks a key (or its dotted prefix) against the schema.
func knownKey(key string) bool {
	root := key
	if i := strings.IndexByte(key, '.'); i >= 0 {
		root = key[:i]
	}
	switch root {
	case "provider", "model", "commit_types", "max_diff_length", "temperature",
		"use_toon", "default_style", "max_tokens", "ollama_base_url", "aws_region":
		return true
	}
	return false
}
