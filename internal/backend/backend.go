// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

// Package backend provides pluggable text-generation providers behind a
// single Generator interface. The pipeline holds only the interface and
// never branches on provider names.
package backend

import (
	"context"
	"strings"

	"github.com/yourorg/buildpost/internal/errors"
)

// Generator is the capability the pipeline needs from an LLM backend.
type Generator interface {
	// Generate sends a system/user prompt pair and returns the generated
	// text, trimmed of surrounding whitespace.
	Generate(ctx context.Context, system, user string, maxTokens int, temperature float32) (string, error)
}

// Info describes a supported provider.
type Info struct {
	ID           string
	DisplayName  string
	EnvVar       string
	SignupURL    string
	DefaultModel string
	RequiresKey  bool
}

// registry lists the supported providers in display order.
var registry = []Info{
	{
		ID:           "openai",
		DisplayName:  "OpenAI",
		EnvVar:       "OPENAI_API_KEY",
		SignupURL:    "https://platform.openai.com/api-keys",
		DefaultModel: "gpt-4o-mini",
		RequiresKey:  true,
	},
	{
		ID:           "groq",
		DisplayName:  "Groq",
		EnvVar:       "GROQ_API_KEY",
		SignupURL:    "https://console.groq.com/keys",
		DefaultModel: "qwen/qwen3-32b",
		RequiresKey:  true,
	},
	{
		ID:           "ollama",
		DisplayName:  "Ollama",
		DefaultModel: "qwen3:8b",
	},
}

// Providers returns the supported provider IDs.
func Providers() []string {
	ids := make([]string, 0, len(registry))
	for _, info := range registry {
		ids = append(ids, info.ID)
	}
	return ids
}

// Lookup returns provider metadata by ID.
func Lookup(id string) (Info, bool) {
	for _, info := range registry {
		if info.ID == id {
			return info, true
		}
	}
	return Info{}, false
}

// ValidateKey loosely checks an API key's shape for a provider. It is a
// hint for warnings, not an authorization check.
func ValidateKey(provider, key string) bool {
	if key == "" {
		return false
	}
	switch provider {
	case "openai":
		return strings.HasPrefix(key, "sk-")
	case "groq":
		return strings.HasPrefix(key, "gsk_") || strings.HasPrefix(key, "sk-")
	default:
		return true
	}
}

// Options carries the resolved settings a backend needs.
type Options struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
}

// New builds the Generator for the named provider.
func New(opts Options) (Generator, error) {
	info, ok := Lookup(opts.Provider)
	if !ok {
		return nil, errors.Newf(errors.ErrCodeProviderUnknown,
			"unsupported provider %q (supported: %s)", opts.Provider, strings.Join(Providers(), ", "))
	}

	if info.RequiresKey && opts.APIKey == "" {
		return nil, errors.Newf(errors.ErrCodeMissingAPIKey,
			"no API key found for %s", info.DisplayName).
			WithHint("Get a key at " + info.SignupURL +
				", then run 'buildpost config set-key --provider " + info.ID +
				" YOUR_KEY' or export " + info.EnvVar)
	}

	model := opts.Model
	if model == "" {
		model = info.DefaultModel
	}

	switch info.ID {
	case "openai":
		return newOpenAI(opts.APIKey, model, opts.BaseURL), nil
	case "groq":
		return newGroq(opts.APIKey, model, opts.BaseURL), nil
	case "ollama":
		return newOllama(model, opts.BaseURL), nil
	}
	return nil, errors.Newf(errors.ErrCodeProviderUnknown, "unsupported provider %q", opts.Provider)
}
