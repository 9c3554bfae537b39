// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package provider dispatches generation requests to interchangeable
// text-generation backends and maps backend failures into a common error
// taxonomy.
// Implements: prd004-providers R1, R2, R3;
//
//	docs/ARCHITECTURE § Generation Dispatcher.
package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/petar-djukic/git-ai/internal/config"
	"github.com/petar-djukic/git-ai/pkg/types"
)

// Error taxonomy shared by all backends. The review loop never needs to
// know which backend produced a failure.
var (
	ErrAuth              = errors.New("authentication failed")
	ErrTransport         = errors.New("transport failure")
	ErrRateLimit         = errors.New("rate limited")
	ErrUnsupportedModel  = errors.New("unsupported model or provider")
	ErrMalformedResponse = errors.New("malformed backend response")
)

// Backend is the capability every provider adapter implements: one prompt
// in, raw generated text out. Implementations perform exactly one outbound
// call per Submit and never retry on their own.
type Backend interface {
	Submit(ctx context.Context, prompt, model string, temperature float64, maxTokens int) (string, error)
}

// Dispatcher routes requests to registered backends and normalizes their
// raw output into a GenerationResult.
type Dispatcher struct {
	cfg      *config.Config
	backends map[string]Backend
}

// NewDispatcher creates a dispatcher with an empty backend registry.
func NewDispatcher(cfg *config.Config) *Dispatcher {
	return &Dispatcher{cfg: cfg, backends: map[string]Backend{}}
}

// Register adds a backend under the given provider id.
func (d *Dispatcher) Register(id string, b Backend) {
	d.backends[id] = b
}

// NewBackend constructs the adapter for the given provider id. Only the
// selected provider is constructed; the bedrock adapter in particular
// loads AWS credentials, which should not happen for unrelated providers.
//
// Implements: prd004-providers R1.1-R1.5.
func NewBackend(ctx context.Context, cfg *config.Config, id string) (Backend, error) {
	switch id {
	case "anthropic":
		return NewAnthropic(cfg.APIKey("anthropic"))
	case "openai":
		return NewOpenAI(cfg.APIKey("openai"))
	case "ollama":
		return NewOllama(cfg.OllamaBaseURL), nil
	case "bedrock":
		return NewBedrock(ctx, cfg.AWSRegion)
	}
	return nil, fmt.Errorf("%w: unknown provider %q", ErrUnsupportedModel, id)
}

// Generate sends the request through the backend registered for backendID
// and parses the response. Exactly one backend call is made per
// invocation; nothing is cached.
//
// Implements: prd004-providers R2.1-R2.5.
func (d *Dispatcher) Generate(ctx context.Context, req types.GenerationRequest, backendID string) (*types.GenerationResult, error) {
	backend, ok := d.backends[backendID]
	if !ok {
		return nil, fmt.Errorf("%w: no backend registered for %q", ErrUnsupportedModel, backendID)
	}

	model, ok := d.cfg.Model(backendID)
	if !ok {
		return nil, fmt.Errorf("%w: no model configured for %q", ErrUnsupportedModel, backendID)
	}

	raw, err := backend.Submit(ctx, req.PromptText, model, req.Temperature, req.MaxTokens)
	if err != nil {
		return nil, err
	}

	return parseResult(raw)
}

// parseResult splits raw backend output into subject and body: the first
// line is the subject, remaining non-empty lines form the body.
//
// Implements: prd004-providers R3.1-R3.3.
func parseResult(raw string) (*types.GenerationResult, error) {
	text := strings.TrimSpace(raw)
	subject, rest, _ := strings.Cut(text, "\n")
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return nil, fmt.Errorf("%w: response has no subject line", ErrMalformedResponse)
	}

	var bodyLines []string
	for _, line := range strings.Split(rest, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		bodyLines = append(bodyLines, line)
	}

	return &types.GenerationResult{
		Subject: subject,
		Body:    strings.Join(bodyLines, "\n"),
		RawText: raw,
	}, nil
}
