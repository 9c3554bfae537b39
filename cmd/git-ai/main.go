// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command git-ai generates commit messages for staged changes with an
// LLM and drives the interactive review loop around them.
// Implements: prd007-cli R1.1-R1.8;
//
//	docs/ARCHITECTURE § Project Structure.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "git-ai",
		Short: "AI-powered git commit message generator",
		Long:  "git-ai inspects your staged changes, generates a commit message via an LLM backend, and lets you accept, edit, or refine it before committing.",
	}

	// Global flags.
	rootCmd.PersistentFlags().String("workdir", ".", "Repository directory")
	rootCmd.PersistentFlags().String("config", "", "Config file path (default ~/.git-ai/config.yaml)")

	// Bind flags to viper.
	viper.BindPFlag("workdir", rootCmd.PersistentFlags().Lookup("workdir"))
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	// Env vars: GIT_AI_WORKDIR, GIT_AI_CONFIG.
	viper.SetEnvPrefix("GIT_AI")
	viper.AutomaticEnv()

	// Add commands.
	rootCmd.AddCommand(newCommitCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newSetupCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print git-ai version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("git-ai %s\n", version)
		},
	}
}
