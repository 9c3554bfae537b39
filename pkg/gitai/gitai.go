// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package gitai defines the public interface for git-ai, an AI-assisted
// commit message generator.
// Implements: prd001-gitai-interface R1, R2, R3;
//
//	docs/ARCHITECTURE § Generator Interface.
package gitai

import (
	"errors"
	"io"

	"github.com/petar-djukic/git-ai/pkg/types"
)

// ErrInvalidConfig is returned by New for unusable configuration.
var ErrInvalidConfig = errors.New("invalid config")

// Config configures a Generator instance. Zero values fall back to the
// persisted configuration file and standard streams.
//
// Implements: prd001-gitai-interface R1.1-R1.8.
type Config struct {
	WorkDir    string // Directory inside the repository (default ".")
	ConfigPath string // Config file path (default ~/.git-ai/config.yaml)
	Provider   string // Backend override (default from config file)
	Style      string // Message style override (default from config file)
	DryRun     bool   // Generate and review without committing
	NoEdit     bool   // Skip the review loop, accept the first result

	In      io.Reader                                // Interactive input (default os.Stdin)
	Out     io.Writer                                // Interactive output (default os.Stdout)
	Present func(io.Writer, *types.GenerationResult) // Message rendering hook
}

// Result holds the outcome of a Generator.Run invocation.
//
// Implements: prd001-gitai-interface R3.1-R3.4.
type Result struct {
	Committed  bool   // The user accepted the message
	CommitHash string // Abbreviated hash; empty on dry run or cancel
	Message    string // Final message text at loop exit
}
