// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/git-ai/internal/config"
)

func TestRunSetup_PersistsAnswers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	in := strings.NewReader("ollama\nllama3\nsimple\n")
	var out bytes.Buffer

	require.NoError(t, runSetup(in, &out, path))

	provider, err := config.Get(path, "provider")
	require.NoError(t, err)
	assert.Equal(t, "ollama", provider)

	model, err := config.Get(path, "model.ollama")
	require.NoError(t, err)
	assert.Equal(t, "llama3", model)

	style, err := config.Get(path, "default_style")
	require.NoError(t, err)
	assert.Equal(t, "simple", style)

	assert.Contains(t, out.String(), "Configuration saved to "+path)
}

func TestRunSetup_EmptyAnswersKeepDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	in := strings.NewReader("\n\n\n")
	var out bytes.Buffer

	require.NoError(t, runSetup(in, &out, path))

	provider, err := config.Get(path, "provider")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultProvider, provider)

	model, err := config.Get(path, "model."+config.DefaultProvider)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultModels[config.DefaultProvider], model)

	style, err := config.Get(path, "default_style")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultStyle, style)
}

func TestRunSetup_RepromptsOnUnknownProvider(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	in := strings.NewReader("gemini\nopenai\n\nconventional\n")
	var out bytes.Buffer

	require.NoError(t, runSetup(in, &out, path))

	assert.Contains(t, out.String(), `Unknown choice "gemini"`)

	provider, err := config.Get(path, "provider")
	require.NoError(t, err)
	assert.Equal(t, "openai", provider)
}

func TestRunSetup_CredentialHintMatchesProvider(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	in := strings.NewReader("anthropic\n\n\n")
	var out bytes.Buffer

	require.NoError(t, runSetup(in, &out, path))
	assert.Contains(t, out.String(), "ANTHROPIC_API_KEY")
}
