// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/petar-djukic/git-ai/internal/gitrepo"
	"github.com/petar-djukic/git-ai/pkg/types"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	dimStyle    = lipgloss.NewStyle().Faint(true)

	statusStyles = map[types.ChangeStatus]lipgloss.Style{
		types.StatusAdded:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		types.StatusModified: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		types.StatusDeleted:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		types.StatusRenamed:  lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	}
)

// presentMessage renders a generated message in a bordered panel. It is
// the Present hook handed to the review loop.
// Implements: prd007-cli R1.7.
func presentMessage(w io.Writer, result *types.GenerationResult) {
	fmt.Fprintln(w, headerStyle.Render("Generated commit message:"))
	fmt.Fprintln(w, panelStyle.Render(result.Message()))
}

// renderStaged prints the staged file table with a summary line.
func renderStaged(w io.Writer, changes types.ChangeSet) {
	fmt.Fprintln(w, headerStyle.Render("Staged changes:"))
	for _, c := range changes {
		style, ok := statusStyles[c.Status]
		if !ok {
			style = dimStyle
		}
		fmt.Fprintf(w, "  %s  %s\n", style.Render(fmt.Sprintf("%-8s", c.Status)), c.Path)
	}
	files, lines := gitrepo.Stats(changes)
	fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("%d file(s), %d line(s) changed", files, lines)))
}
