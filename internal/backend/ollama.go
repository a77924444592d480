// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/yourorg/buildpost/internal/errors"
)

const ollamaBaseURL = "http://localhost:11434"

// ollamaClient talks to a local Ollama server's generate endpoint.
type ollamaClient struct {
	model      string
	baseURL    string
	httpClient *http.Client
}

func newOllama(model, baseURL string) *ollamaClient {
	if baseURL == "" {
		baseURL = ollamaBaseURL
	}
	return &ollamaClient{
		model:   model,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

type ollamaRequest struct {
	Model   string         `json:"model"`
	System  string         `json:"system,omitempty"`
	Prompt  string         `json:"prompt"`
	Stream  bool           `json:"stream"`
	Options map[string]any `json:"options,omitempty"`
}

type ollamaResponse struct {
	Response string `json:"response"`
	Error    string `json:"error"`
}

// Generate implements Generator against /api/generate.
func (c *ollamaClient) Generate(ctx context.Context, system, user string, maxTokens int, temperature float32) (string, error) {
	payload := ollamaRequest{
		Model:  c.model,
		System: system,
		Prompt: user,
		Stream: false,
		Options: map[string]any{
			"temperature": temperature,
			"num_predict": maxTokens,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeGeneration, "marshal ollama payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeGeneration, "build ollama request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeGeneration, "call ollama").
			WithHint("Is the Ollama server running? Start it with 'ollama serve'")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return "", errors.Newf(errors.ErrCodeGeneration, "ollama error %d: %s", resp.StatusCode, string(raw))
	}

	var parsed ollamaResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", errors.Wrap(err, errors.ErrCodeGeneration, "decode ollama response")
	}
	if parsed.Error != "" {
		return "", errors.Newf(errors.ErrCodeGeneration, "ollama: %s", parsed.Error)
	}

	text := strings.TrimSpace(parsed.Response)
	if text == "" {
		return "", errors.New(errors.ErrCodeGeneration, "ollama returned empty text")
	}
	return text, nil
}
