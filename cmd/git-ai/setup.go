// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/petar-djukic/git-ai/internal/config"
)

var (
	setupProviders = []string{"anthropic", "openai", "ollama", "bedrock"}
	setupStyles    = []string{"conventional", "semantic", "simple"}
)

// newSetupCmd creates the "setup" command, the guided first-run flow:
// pick a provider, a model, and a default style, then persist them.
// Implements: prd007-cli R1.8.
func newSetupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Interactive first-run configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath()
			if err != nil {
				return err
			}
			return runSetup(os.Stdin, os.Stdout, path)
		},
	}
}

// runSetup drives the wizard over injected streams. Empty answers keep
// the shown default; EOF keeps defaults for all remaining questions.
func runSetup(in io.Reader, out io.Writer, path string) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprintln(out, headerStyle.Render("git-ai setup"))

	providerID := choose(scanner, out, "Provider", setupProviders, config.DefaultProvider)

	model := ask(scanner, out, "Model", config.DefaultModels[providerID])

	style := choose(scanner, out, "Default style", setupStyles, config.DefaultStyle)

	if err := config.Set(path, "provider", providerID); err != nil {
		return err
	}
	if err := config.Set(path, "model."+providerID, model); err != nil {
		return err
	}
	if err := config.Set(path, "default_style", style); err != nil {
		return err
	}

	fmt.Fprintln(out, okStyle.Render(fmt.Sprintf("Configuration saved to %s", path)))
	printCredentialHint(out, providerID)
	return nil
}

// choose prompts until the answer is one of options; empty or exhausted
// input falls back to def.
func choose(in *bufio.Scanner, out io.Writer, label string, options []string, def string) string {
	for {
		fmt.Fprintf(out, "%s (%s) [%s]: ", label, strings.Join(options, "/"), def)
		if !in.Scan() {
			return def
		}
		text := strings.ToLower(strings.TrimSpace(in.Text()))
		if text == "" {
			return def
		}
		for _, o := range options {
			if o == text {
				return text
			}
		}
		fmt.Fprintf(out, "Unknown choice %q.\n", text)
	}
}

// ask prompts for free text with a default.
func ask(in *bufio.Scanner, out io.Writer, label, def string) string {
	fmt.Fprintf(out, "%s [%s]: ", label, def)
	if !in.Scan() {
		return def
	}
	text := strings.TrimSpace(in.Text())
	if text == "" {
		return def
	}
	return text
}

// printCredentialHint tells the user what credential the chosen provider
// reads at run time. Keys are never written to the config file.
func printCredentialHint(out io.Writer, providerID string) {
	switch providerID {
	case "anthropic":
		fmt.Fprintln(out, dimStyle.Render("Set ANTHROPIC_API_KEY in your environment before running git-ai commit."))
	case "openai":
		fmt.Fprintln(out, dimStyle.Render("Set OPENAI_API_KEY in your environment before running git-ai commit."))
	case "bedrock":
		fmt.Fprintln(out, dimStyle.Render("Bedrock uses your AWS credential chain (env, profile, or instance role)."))
	case "ollama":
		fmt.Fprintln(out, dimStyle.Render("Ollama needs no credentials; make sure the local server is running."))
	}
}
