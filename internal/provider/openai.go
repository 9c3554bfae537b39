// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd004-providers R5 (OpenAI and Ollama adapters).
package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAI talks to the OpenAI chat completions API, or any compatible
// endpoint. The ollama provider reuses this adapter pointed at the local
// Ollama server.
type OpenAI struct {
	client *openai.Client
}

// NewOpenAI creates the OpenAI adapter. A missing API key fails
// immediately with ErrAuth.
func NewOpenAI(apiKey string) (*OpenAI, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: OPENAI_API_KEY is not set", ErrAuth)
	}
	return &OpenAI{client: openai.NewClient(apiKey)}, nil
}

// NewOllama creates an adapter for a local Ollama server via its
// OpenAI-compatible endpoint. Ollama needs no real API key.
func NewOllama(baseURL string) *OpenAI {
	cfg := openai.DefaultConfig("ollama")
	cfg.BaseURL = baseURL
	return &OpenAI{client: openai.NewClientWithConfig(cfg)}
}

// Submit sends one chat completion request and returns the generated text.
func (o *OpenAI) Submit(ctx context.Context, prompt, model string, temperature float64, maxTokens int) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Temperature: float32(temperature),
		MaxTokens:   maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", classifyOpenAIError(err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", ErrMalformedResponse)
	}
	return resp.Choices[0].Message.Content, nil
}

// classifyOpenAIError maps go-openai errors into the common taxonomy.
func classifyOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %v", ErrAuth, err)
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: %v", ErrRateLimit, err)
		case http.StatusNotFound:
			return fmt.Errorf("%w: %v", ErrUnsupportedModel, err)
		}
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	return fmt.Errorf("%w: %v", ErrTransport, err)
}
