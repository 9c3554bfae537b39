// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultProvider, cfg.Provider)
	assert.Equal(t, DefaultMaxDiffLength, cfg.MaxDiffLength)
	assert.Equal(t, DefaultTemperature, cfg.Temperature)
	assert.Equal(t, DefaultStyle, cfg.DefaultStyle)
	assert.False(t, cfg.UseCompact)
	assert.Equal(t, DefaultModels["anthropic"], cfg.Models["anthropic"])
	assert.Equal(t, DefaultCommitTypes, cfg.CommitTypes)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `provider: ollama
max_diff_length: 2000
use_toon: true
model:
  ollama: codellama
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "ollama", cfg.Provider)
	assert.Equal(t, 2000, cfg.MaxDiffLength)
	assert.True(t, cfg.UseCompact)
	assert.Equal(t, "codellama", cfg.Models["ollama"])
	// Untouched keys keep their defaults.
	assert.Equal(t, DefaultTemperature, cfg.Temperature)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("provider: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSet_PersistsValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "git-ai", "config.yaml")

	require.NoError(t, Set(path, "provider", "openai"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "openai", cfg.Provider)
}

func TestSet_DottedModelKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, Set(path, "model.anthropic", "claude-opus-4"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "claude-opus-4", cfg.Models["anthropic"])
}

func TestSet_UnknownKey(t *testing.T) {
	err := Set(filepath.Join(t.TempDir(), "config.yaml"), "mystery", "value")
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, Set(path, "temperature", "0.7"))

	got, err := Get(path, "temperature")
	require.NoError(t, err)
	assert.Equal(t, "0.7", got)

	_, err = Get(path, "mystery")
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestModel(t *testing.T) {
	cfg := &Config{Models: map[string]string{"openai": "gpt-4-turbo-preview"}}

	m, ok := cfg.Model("openai")
	assert.True(t, ok)
	assert.Equal(t, "gpt-4-turbo-preview", m)

	_, ok = cfg.Model("bedrock")
	assert.False(t, ok)
}

func TestAPIKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "ant-key")
	t.Setenv("OPENAI_API_KEY", "oai-key")

	cfg := &Config{}
	assert.Equal(t, "ant-key", cfg.APIKey("anthropic"))
	assert.Equal(t, "oai-key", cfg.APIKey("openai"))
	assert.Empty(t, cfg.APIKey("ollama"))
	assert.Empty(t, cfg.APIKey("bedrock"))
}
