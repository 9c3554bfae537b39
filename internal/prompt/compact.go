// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd003-prompt-builder R4 (compact encoding).
package prompt

import (
	"fmt"
	"strings"

	"github.com/petar-djukic/git-ai/pkg/types"
)

// compactSection renders the file listing and diff in a dense tabular
// notation: a header row naming the fields, one row per file, then the raw
// change lines grouped per file without diff headers. Semantics match the
// verbatim rendering; only the encoding is denser.
func compactSection(changes types.ChangeSet, maxLen int) string {
	var buf strings.Builder

	buf.WriteString(fmt.Sprintf("files[%d]{path,status}:\n", len(changes)))
	for _, c := range changes {
		buf.WriteString(fmt.Sprintf("  %s,%s\n", c.Path, c.Status))
	}

	var diffs strings.Builder
	for _, c := range changes {
		body := stripDiffHeaders(c.DiffText)
		if body == "" {
			continue
		}
		diffs.WriteString(fmt.Sprintf("diff[%s]:\n", c.Path))
		diffs.WriteString(body)
	}
	buf.WriteString(truncate(diffs.String(), maxLen))

	return buf.String()
}

// stripDiffHeaders drops the "--- a/" and "+++ b/" header lines; the
// compact form names the file once in its diff[...] label.
func stripDiffHeaders(diffText string) string {
	if diffText == "" {
		return ""
	}
	var buf strings.Builder
	for _, line := range strings.Split(diffText, "\n") {
		if strings.HasPrefix(line, "--- a/") || strings.HasPrefix(line, "+++ b/") {
			continue
		}
		if line == "" {
			continue
		}
		buf.WriteString(line + "\n")
	}
	return buf.String()
}
