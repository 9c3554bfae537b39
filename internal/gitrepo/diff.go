// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd002-change-collector R2 (diff rendering).
package gitrepo

import (
	"strings"

	"github.com/go-git/go-git/v5/utils/diff"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// renderDiff produces a diff-style rendering of the change to path: a
// two-line file header followed by removed (-) and added (+) lines.
// Unchanged runs are omitted; the prompt only needs the delta.
func renderDiff(path, oldText, newText string) string {
	if oldText == newText {
		return ""
	}

	var buf strings.Builder
	buf.WriteString("--- a/" + path + "\n")
	buf.WriteString("+++ b/" + path + "\n")

	for _, d := range diff.Do(oldText, newText) {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		default:
			continue
		}
		for _, line := range splitLines(d.Text) {
			buf.WriteString(prefix + line + "\n")
		}
	}

	return buf.String()
}

// splitLines splits text into lines without a trailing empty element for a
// final newline.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
