// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd001-gitai-interface R4;
//
//	docs/ARCHITECTURE § Generator Interface.
package gitai

import (
	"context"
	"fmt"
	"os"

	"github.com/petar-djukic/git-ai/internal/config"
	"github.com/petar-djukic/git-ai/internal/provider"
	"github.com/petar-djukic/git-ai/pkg/types"
)

// Generator runs the commit message pipeline: collect staged changes,
// build a prompt, generate, review.
type Generator struct {
	opts       Config
	cfg        *config.Config
	style      types.Style
	providerID string
	dispatcher *provider.Dispatcher
}

// New loads the persisted configuration, applies overrides, and
// constructs the selected backend. It does not touch the repository;
// that happens in Run.
//
// Implements: prd001-gitai-interface R4.1-R4.4.
func New(opts Config) (*Generator, error) {
	applyDefaults(&opts)

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	providerID := cfg.Provider
	if opts.Provider != "" {
		providerID = opts.Provider
	}

	styleName := cfg.DefaultStyle
	if opts.Style != "" {
		styleName = opts.Style
	}
	style := types.Style(styleName)
	if !types.ValidStyle(style) {
		return nil, fmt.Errorf("%w: unknown style %q", ErrInvalidConfig, styleName)
	}

	backend, err := provider.NewBackend(context.Background(), cfg, providerID)
	if err != nil {
		return nil, err
	}

	dispatcher := provider.NewDispatcher(cfg)
	dispatcher.Register(providerID, backend)

	return &Generator{
		opts:       opts,
		cfg:        cfg,
		style:      style,
		providerID: providerID,
		dispatcher: dispatcher,
	}, nil
}

// applyDefaults fills in zero-value fields with their defaults.
func applyDefaults(opts *Config) {
	if opts.WorkDir == "" {
		opts.WorkDir = "."
	}
	if opts.ConfigPath == "" {
		if path, err := config.DefaultPath(); err == nil {
			opts.ConfigPath = path
		}
	}
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
}
