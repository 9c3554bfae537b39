// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petar-djukic/git-ai/internal/gitrepo"
	"github.com/petar-djukic/git-ai/internal/provider"
	"github.com/petar-djukic/git-ai/pkg/gitai"
)

// newCommitCmd creates the "commit" command.
// Implements: prd007-cli R1.2, R1.3.
func newCommitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Generate a commit message for staged changes and commit",
		RunE:  runCommit,
	}
	cmd.Flags().String("style", "", "Message style: conventional, semantic, or simple")
	cmd.Flags().String("provider", "", "Backend: anthropic, openai, ollama, or bedrock")
	cmd.Flags().Bool("dry-run", false, "Generate the message without committing")
	cmd.Flags().Bool("no-edit", false, "Accept the first generated message without review")
	return cmd
}

func runCommit(cmd *cobra.Command, args []string) error {
	style, _ := cmd.Flags().GetString("style")
	providerID, _ := cmd.Flags().GetString("provider")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	noEdit, _ := cmd.Flags().GetBool("no-edit")
	workDir := viper.GetString("workdir")

	// Show what is staged before spending a generation on it.
	if err := showStaged(workDir); err != nil {
		return err
	}

	gen, err := gitai.New(gitai.Config{
		WorkDir:    workDir,
		ConfigPath: viper.GetString("config"),
		Provider:   providerID,
		Style:      style,
		DryRun:     dryRun,
		NoEdit:     noEdit,
		Present:    presentMessage,
	})
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	result, err := gen.Run(ctx)
	if err != nil {
		if errors.Is(err, provider.ErrAuth) || errors.Is(err, provider.ErrTransport) ||
			errors.Is(err, provider.ErrRateLimit) {
			fmt.Println(dimStyle.Render("Hint: retry, or switch backends with --provider."))
		}
		return err
	}
	if result.Committed && result.CommitHash != "" {
		fmt.Println(okStyle.Render(fmt.Sprintf("✓ Commit created: %s", result.CommitHash)))
	}
	return nil
}

// newStatusCmd creates the "status" command, which lists staged files
// the way commit would see them without contacting any backend.
// Implements: prd007-cli R1.4.
func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show staged changes as git-ai sees them",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := showStaged(viper.GetString("workdir"))
			if errors.Is(err, gitrepo.ErrNoStagedChanges) {
				return nil
			}
			return err
		},
	}
}

func showStaged(workDir string) error {
	repo, err := gitrepo.Open(workDir)
	if err != nil {
		return err
	}
	changes, err := repo.StagedChanges()
	if err != nil {
		if errors.Is(err, gitrepo.ErrNoStagedChanges) {
			fmt.Println(dimStyle.Render("No staged changes. Stage files with git add first."))
		}
		return err
	}
	renderStaged(os.Stdout, changes)
	return nil
}
