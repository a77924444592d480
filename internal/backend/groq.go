// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package backend

import (
	"net/http"
	"strings"
	"time"
)

const groqBaseURL = "https://api.groq.com/openai/v1"

// newGroq builds the Groq backend. Groq exposes an OpenAI-compatible
// chat-completions API, so it shares the chat client.
func newGroq(apiKey, model, baseURL string) *chatClient {
	if baseURL == "" {
		baseURL = groqBaseURL
	}
	return &chatClient{
		name:    "groq",
		apiKey:  apiKey,
		model:   model,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}
