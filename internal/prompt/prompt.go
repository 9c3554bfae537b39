// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package prompt builds bounded natural-language prompts from staged
// changes, recent history, and configuration.
// Implements: prd003-prompt-builder R1, R2, R3;
//
//	docs/ARCHITECTURE § Prompt Builder.
package prompt

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/petar-djukic/git-ai/internal/config"
	"github.com/petar-djukic/git-ai/pkg/types"
)

// truncationMarker is appended whenever the diff section is cut. The
// backend must always be told the diff is incomplete.
const truncationMarker = "\n... (diff truncated)"

// maxHistoryRendered caps how many recent subjects appear in the prompt.
// The collector already bounds the fetch; this bounds the render.
const maxHistoryRendered = 3

// Build assembles the generation prompt. The result is a pure function of
// its inputs: same changes, history, config, style, and feedback always
// produce byte-identical text.
//
// Implements: prd003-prompt-builder R1.1-R1.6.
func Build(changes types.ChangeSet, history []types.HistoryEntry, cfg *config.Config, style types.Style, feedback string) string {
	var buf strings.Builder

	buf.WriteString("Generate a git commit message for the following changes.\n\n")

	if cfg.UseCompact {
		buf.WriteString("Changes (compact notation: one row per file, then raw change lines per file):\n")
		buf.WriteString(compactSection(changes, cfg.MaxDiffLength))
		buf.WriteString("\n")
	} else {
		writeFileListing(&buf, changes)
		buf.WriteString("\nGit diff:\n```\n")
		buf.WriteString(diffSection(changes, cfg.MaxDiffLength))
		buf.WriteString("\n```\n")
	}

	if len(history) > 0 {
		buf.WriteString("\nRecent commits for context:\n")
		n := len(history)
		if n > maxHistoryRendered {
			n = maxHistoryRendered
		}
		for _, h := range history[:n] {
			buf.WriteString("- " + h.Subject + "\n")
		}
	}

	buf.WriteString("\n")
	buf.WriteString(styleGuide(style, cfg.CommitTypes))

	if feedback != "" {
		buf.WriteString("\nRefinement instructions from the user (apply these to the message, they are not part of the diff):\n")
		buf.WriteString(feedback)
		buf.WriteString("\n")
	}

	buf.WriteString("\nGenerate a clear, concise commit message. Return ONLY the commit message, no explanations.")

	return buf.String()
}

// writeFileListing renders the path/status listing and the per-status
// summary counts.
func writeFileListing(buf *strings.Builder, changes types.ChangeSet) {
	buf.WriteString("Files changed:\n")
	var added, modified, deleted int
	for _, c := range changes {
		buf.WriteString(fmt.Sprintf("- %s (%s)\n", c.Path, c.Status))
		switch c.Status {
		case types.StatusAdded:
			added++
		case types.StatusDeleted:
			deleted++
		default:
			modified++
		}
	}
	buf.WriteString("\nSummary:\n")
	buf.WriteString(fmt.Sprintf("- %d file(s) added\n", added))
	buf.WriteString(fmt.Sprintf("- %d file(s) modified\n", modified))
	buf.WriteString(fmt.Sprintf("- %d file(s) deleted\n", deleted))
}

// diffSection concatenates per-file diff text in collection order and
// applies the length ceiling.
//
// Implements: prd003-prompt-builder R2.1-R2.3.
func diffSection(changes types.ChangeSet, maxLen int) string {
	var buf strings.Builder
	for _, c := range changes {
		buf.WriteString(c.DiffText)
	}
	return truncate(buf.String(), maxLen)
}

// truncate cuts s at maxLen bytes and appends the truncation marker. The
// cut backs off to the previous rune start so a multi-byte character is
// never split. Text within the ceiling passes through untouched.
func truncate(s string, maxLen int) string {
	if maxLen <= 0 || len(s) <= maxLen {
		return s
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + truncationMarker
}

// styleGuide returns the format instructions for the requested style.
func styleGuide(style types.Style, commitTypes []string) string {
	switch style {
	case types.StyleSemantic:
		return `Format: <emoji> <type>: <subject>

Examples:
✨ feat: add user authentication
🐛 fix: resolve memory leak in worker
📝 docs: update API documentation
♻️ refactor: simplify database queries
`
	case types.StyleSimple:
		return `Format: <subject>

<body>

Keep it simple and clear. Focus on what changed and why.
`
	default:
		return fmt.Sprintf(`Format: <type>(<scope>): <subject>

<body>

Types: %s
- Use feat: for new features
- Use fix: for bug fixes
- Use docs: for documentation
- Use refactor: for code refactoring
- Use test: for test changes
- Use chore: for maintenance tasks

Rules:
1. Subject line max 50 chars, lowercase, no period
2. Body wraps at 72 chars
3. Explain WHAT and WHY, not HOW
4. Use imperative mood ("add" not "added")
`, strings.Join(commitTypes, ", "))
	}
}
