// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petar-djukic/git-ai/internal/config"
)

// configKeys lists the keys shown by "config get" without arguments.
var configKeys = []string{
	"provider",
	"default_style",
	"max_diff_length",
	"max_tokens",
	"temperature",
	"use_toon",
	"ollama_base_url",
	"aws_region",
}

// newConfigCmd creates the "config" command with get/set subcommands.
// Implements: prd007-cli R1.5, R1.6.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or change git-ai settings",
	}
	cmd.AddCommand(newConfigGetCmd())
	cmd.AddCommand(newConfigSetCmd())
	return cmd
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [key]",
		Short: "Print one setting, or all settings when no key is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				val, err := config.Get(path, args[0])
				if err != nil {
					return err
				}
				fmt.Println(val)
				return nil
			}
			for _, key := range configKeys {
				val, err := config.Get(path, key)
				if err != nil {
					return err
				}
				fmt.Printf("%s = %s\n", key, val)
			}
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set one setting and persist it, e.g. git-ai config set model.anthropic claude-sonnet-4-5",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath()
			if err != nil {
				return err
			}
			if err := config.Set(path, args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("%s = %s\n", args[0], args[1])
			return nil
		},
	}
}

// configPath resolves the --config flag, falling back to the default
// location under the user's home directory.
func configPath() (string, error) {
	if p := viper.GetString("config"); p != "" {
		return p, nil
	}
	return config.DefaultPath()
}
