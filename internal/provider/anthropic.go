// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd004-providers R4 (Anthropic adapter).
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const (
	anthropicBaseURL = "https://api.anthropic.com/v1/messages"
	anthropicVersion = "2023-06-01"
)

// Anthropic talks to the Anthropic Messages API over plain HTTP.
type Anthropic struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewAnthropic creates the Anthropic adapter. A missing API key fails
// immediately with ErrAuth rather than on the first request.
func NewAnthropic(apiKey string) (*Anthropic, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: ANTHROPIC_API_KEY is not set", ErrAuth)
	}
	return &Anthropic{
		apiKey:  apiKey,
		baseURL: anthropicBaseURL,
		client:  http.DefaultClient,
	}, nil
}

type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature float64            `json:"temperature"`
	Messages    []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Submit sends one Messages API request and returns the generated text.
func (a *Anthropic) Submit(ctx context.Context, prompt, model string, temperature float64, maxTokens int) (string, error) {
	body, err := json.Marshal(anthropicRequest{
		Model:       model,
		MaxTokens:   maxTokens,
		Temperature: temperature,
		Messages:    []anthropicMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", a.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading response: %v", ErrTransport, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", classifyHTTPStatus(resp.StatusCode, string(data))
	}

	var parsed anthropicResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if len(parsed.Content) == 0 {
		return "", fmt.Errorf("%w: empty content", ErrMalformedResponse)
	}
	return parsed.Content[0].Text, nil
}

// classifyHTTPStatus maps an HTTP error status into the common taxonomy.
func classifyHTTPStatus(status int, detail string) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: status %d: %s", ErrAuth, status, detail)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: status %d", ErrRateLimit, status)
	case http.StatusNotFound:
		return fmt.Errorf("%w: status %d: %s", ErrUnsupportedModel, status, detail)
	}
	return fmt.Errorf("%w: status %d: %s", ErrTransport, status, detail)
}
