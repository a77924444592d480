// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/yourorg/buildpost/internal/errors"
)

const openAIBaseURL = "https://api.openai.com/v1"

// chatClient talks to an OpenAI-compatible chat-completions endpoint. Both
// the OpenAI and Groq backends reduce to this client with different base
// URLs.
type chatClient struct {
	name       string
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// newOpenAI builds the OpenAI backend.
func newOpenAI(apiKey, model, baseURL string) *chatClient {
	if baseURL == "" {
		baseURL = openAIBaseURL
	}
	return &chatClient{
		name:    "openai",
		apiKey:  apiKey,
		model:   model,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float32       `json:"temperature,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Generate implements Generator over the chat-completions API.
func (c *chatClient) Generate(ctx context.Context, system, user string, maxTokens int, temperature float32) (string, error) {
	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeGeneration, "marshal chat payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeGeneration, "build chat request")
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeGeneration, fmt.Sprintf("call %s", c.name))
	}
	defer resp.Body.Close()

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", errors.Wrap(err, errors.ErrCodeGeneration, fmt.Sprintf("decode %s response", c.name))
	}

	if resp.StatusCode >= 400 {
		msg := resp.Status
		if parsed.Error != nil && parsed.Error.Message != "" {
			msg = parsed.Error.Message
		}
		return "", errors.Newf(errors.ErrCodeGeneration, "%s responded with an error: %s", c.name, msg)
	}

	if len(parsed.Choices) == 0 {
		return "", errors.Newf(errors.ErrCodeGeneration, "%s returned no choices", c.name)
	}

	text := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if text == "" {
		return "", errors.Newf(errors.ErrCodeGeneration, "%s returned empty text", c.name)
	}
	return text, nil
}
