// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourorg/buildpost/internal/errors"
)

func TestProviders(t *testing.T) {
	assert.Equal(t, []string{"openai", "groq", "ollama"}, Providers())
}

func TestLookup(t *testing.T) {
	info, ok := Lookup("groq")
	require.True(t, ok)
	assert.Equal(t, "Groq", info.DisplayName)
	assert.Equal(t, "GROQ_API_KEY", info.EnvVar)
	assert.True(t, info.RequiresKey)

	_, ok = Lookup("copilot")
	assert.False(t, ok)
}

func TestValidateKey(t *testing.T) {
	assert.True(t, ValidateKey("openai", "sk-abc"))
	assert.False(t, ValidateKey("openai", "pk-abc"))
	assert.True(t, ValidateKey("groq", "gsk_abc"))
	assert.True(t, ValidateKey("groq", "sk-abc"))
	assert.False(t, ValidateKey("groq", "abc"))
	assert.True(t, ValidateKey("ollama", "anything"))
	assert.False(t, ValidateKey("openai", ""))
}

func TestNewRejectsUnknownProvider(t *testing.T) {
	_, err := New(Options{Provider: "copilot"})
	assert.True(t, errors.HasCode(err, errors.ErrCodeProviderUnknown))
}

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := New(Options{Provider: "openai"})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeMissingAPIKey))

	// Ollama runs locally and needs no key.
	gen, err := New(Options{Provider: "ollama"})
	require.NoError(t, err)
	assert.NotNil(t, gen)
}

func TestChatClientGenerate(t *testing.T) {
	var captured chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "  A fine post.  "}},
			},
		})
	}))
	defer server.Close()

	gen, err := New(Options{Provider: "openai", APIKey: "sk-test", Model: "gpt-4o-mini", BaseURL: server.URL})
	require.NoError(t, err)

	text, err := gen.Generate(context.Background(), "system text", "user text", 500, 0.7)
	require.NoError(t, err)

	// The boundary trims whitespace before handing text back.
	assert.Equal(t, "A fine post.", text)
	assert.Equal(t, "gpt-4o-mini", captured.Model)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "system text", captured.Messages[0].Content)
	assert.Equal(t, "user", captured.Messages[1].Role)
	assert.Equal(t, 500, captured.MaxTokens)
}

func TestChatClientGenerateAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "invalid api key"},
		})
	}))
	defer server.Close()

	gen, err := New(Options{Provider: "openai", APIKey: "sk-test", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), "s", "u", 100, 0.5)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeGeneration))
	assert.Contains(t, err.Error(), "invalid api key")
}

func TestChatClientGenerateNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer server.Close()

	gen, err := New(Options{Provider: "groq", APIKey: "gsk_test", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), "s", "u", 100, 0.5)
	assert.True(t, errors.HasCode(err, errors.ErrCodeGeneration))
}

func TestOllamaGenerate(t *testing.T) {
	var captured ollamaRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		json.NewEncoder(w).Encode(map[string]any{"response": "Local post.\n"})
	}))
	defer server.Close()

	gen, err := New(Options{Provider: "ollama", Model: "qwen3:8b", BaseURL: server.URL})
	require.NoError(t, err)

	text, err := gen.Generate(context.Background(), "sys", "usr", 200, 0.3)
	require.NoError(t, err)

	assert.Equal(t, "Local post.", text)
	assert.Equal(t, "qwen3:8b", captured.Model)
	assert.Equal(t, "sys", captured.System)
	assert.Equal(t, "usr", captured.Prompt)
	assert.False(t, captured.Stream)
}

func TestOllamaGenerateServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"model not found"}`))
	}))
	defer server.Close()

	gen, err := New(Options{Provider: "ollama", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), "s", "u", 100, 0.5)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeGeneration))
}
