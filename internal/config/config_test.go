// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFillsDefaults(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "openai", cfg.API.Provider)
	assert.Equal(t, "casual", cfg.Defaults.PromptStyle)
	assert.Equal(t, "twitter", cfg.Defaults.Platform)
	assert.InDelta(t, 0.7, cfg.Generation.Temperature, 0.001)
	assert.Equal(t, 500, cfg.Generation.MaxTokens)
	assert.True(t, cfg.IncludeHashtags())
	assert.True(t, cfg.CopyToClipboard())
}

func TestSaveAndReload(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	cfg.API.Provider = "groq"
	cfg.SetAPIKey("groq", "gsk_testkey12345")
	cfg.SetModel("groq", "llama-3.3-70b")
	require.NoError(t, cfg.Save())

	reloaded, err := LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, "groq", reloaded.API.Provider)
	assert.Equal(t, "gsk_testkey12345", reloaded.APIKey("groq"))
	assert.Equal(t, "llama-3.3-70b", reloaded.Model("groq"))
}

func TestAPIKeyEnvFallback(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)

	t.Setenv("GROQ_API_KEY", "gsk_from_env")
	assert.Equal(t, "gsk_from_env", cfg.APIKey("groq"))

	// A stored key wins over the environment.
	cfg.SetAPIKey("groq", "gsk_stored")
	assert.Equal(t, "gsk_stored", cfg.APIKey("groq"))
}

func TestModelFallsBackToProviderDefault(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o-mini", cfg.Model("openai"))
	assert.Equal(t, "", cfg.Model("copilot"))
}

func TestShowMasksKeys(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)

	cfg.SetAPIKey("openai", "sk-verysecretkey1234")
	cfg.SetAPIKey("groq", "short")

	rendered, err := cfg.Show()
	require.NoError(t, err)

	assert.NotContains(t, rendered, "sk-verysecretkey1234")
	assert.Contains(t, rendered, "sk-v...1234")
	assert.Contains(t, rendered, "***")
}

func TestReset(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)
	cfg.API.Provider = "ollama"
	cfg.Defaults.PromptStyle = "technical"
	require.NoError(t, cfg.Save())

	require.NoError(t, cfg.Reset())

	reloaded, err := LoadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, "openai", reloaded.API.Provider)
	assert.Equal(t, "casual", reloaded.Defaults.PromptStyle)
}

func TestEnsurePromptsFile(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	path, err := cfg.EnsurePromptsFile([]byte("prompts: {}\n"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "prompts.yaml"), path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "prompts: {}\n", string(raw))

	// An existing file is left untouched.
	require.NoError(t, os.WriteFile(path, []byte("prompts:\n  custom: {}\n"), 0o644))
	_, err = cfg.EnsurePromptsFile([]byte("prompts: {}\n"))
	require.NoError(t, err)

	raw, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "custom")
}
