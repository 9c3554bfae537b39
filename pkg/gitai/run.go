// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd001-gitai-interface R2 (pipeline orchestration).
package gitai

import (
	"context"

	"github.com/petar-djukic/git-ai/internal/gitrepo"
	"github.com/petar-djukic/git-ai/internal/prompt"
	"github.com/petar-djukic/git-ai/internal/review"
	"github.com/petar-djukic/git-ai/pkg/types"
)

// historyLimit bounds how many recent subjects are fetched for context.
const historyLimit = 5

// Run executes one pipeline invocation: collect, build, generate, review.
// The repository is read once up front; the only write is the commit the
// user explicitly accepts.
//
// Implements: prd001-gitai-interface R2.1-R2.6.
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	repo, err := gitrepo.Open(g.opts.WorkDir)
	if err != nil {
		return nil, err
	}

	changes, err := repo.StagedChanges()
	if err != nil {
		return nil, err
	}

	history, err := repo.RecentSubjects(historyLimit)
	if err != nil {
		return nil, err
	}

	generate := func(ctx context.Context, feedback string) (*types.GenerationResult, error) {
		req := types.GenerationRequest{
			PromptText:  prompt.Build(changes, history, g.cfg, g.style, feedback),
			Style:       g.style,
			Temperature: g.cfg.Temperature,
			MaxTokens:   g.cfg.MaxTokens,
		}
		return g.dispatcher.Generate(ctx, req, g.providerID)
	}

	initial, err := generate(ctx, "")
	if err != nil {
		return nil, err
	}

	if g.opts.NoEdit {
		return g.acceptDirectly(repo, initial)
	}

	loop := &review.Loop{
		In:       g.opts.In,
		Out:      g.opts.Out,
		Commit:   repo,
		Generate: generate,
		Present:  g.opts.Present,
		DryRun:   g.opts.DryRun,
	}

	outcome, err := loop.Run(ctx, initial)
	if err != nil {
		return nil, err
	}

	return &Result{
		Committed:  outcome.State == review.StateCommitted,
		CommitHash: outcome.CommitHash,
		Message:    outcome.Result.Message(),
	}, nil
}

// acceptDirectly takes the first generated message without review.
func (g *Generator) acceptDirectly(repo *gitrepo.Repo, result *types.GenerationResult) (*Result, error) {
	if g.opts.DryRun {
		return &Result{Committed: true, Message: result.Message()}, nil
	}

	hash, err := repo.Commit(result.Message())
	if err != nil {
		return nil, err
	}
	return &Result{Committed: true, CommitHash: hash, Message: result.Message()}, nil
}
