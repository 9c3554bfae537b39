// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/git-ai/internal/config"
	"github.com/petar-djukic/git-ai/pkg/types"
)

func testConfig() *config.Config {
	return &config.Config{
		Provider:      "anthropic",
		CommitTypes:   config.DefaultCommitTypes,
		MaxDiffLength: config.DefaultMaxDiffLength,
		Temperature:   0.3,
		DefaultStyle:  "conventional",
	}
}

func singleChange() types.ChangeSet {
	return types.ChangeSet{
		{Path: "a.py", Status: types.StatusAdded, DiffText: "--- a/a.py\n+++ b/a.py\n+print('hi')\n"},
	}
}

func TestBuild_ContainsChangeContext(t *testing.T) {
	p := Build(singleChange(), nil, testConfig(), types.StyleConventional, "")

	assert.Contains(t, p, "- a.py (added)")
	assert.Contains(t, p, "+print('hi')")
	assert.Contains(t, p, "1 file(s) added")
	assert.Contains(t, p, "Return ONLY the commit message")
}

func TestBuild_Deterministic(t *testing.T) {
	changes := types.ChangeSet{
		{Path: "a.go", Status: types.StatusModified, DiffText: "-x\n+y\n"},
		{Path: "b.go", Status: types.StatusAdded, DiffText: "+new\n"},
	}
	history := []types.HistoryEntry{{Subject: "feat: earlier work"}}
	cfg := testConfig()

	first := Build(changes, history, cfg, types.StyleConventional, "")
	second := Build(changes, history, cfg, types.StyleConventional, "")
	assert.Equal(t, first, second)
}

func TestBuild_TruncatesAtCeiling(t *testing.T) {
	cfg := testConfig()
	cfg.MaxDiffLength = 100

	long := strings.Repeat("+x\n", 200)
	changes := types.ChangeSet{{Path: "big.go", Status: types.StatusModified, DiffText: long}}

	p := Build(changes, nil, cfg, types.StyleSimple, "")

	assert.Contains(t, p, truncationMarker)

	// The diff section is exactly the ceiling plus the marker, never more.
	start := strings.Index(p, "```\n") + len("```\n")
	end := strings.Index(p[start:], "\n```")
	require.Positive(t, end)
	assert.Equal(t, cfg.MaxDiffLength+len(truncationMarker), end)
}

func TestBuild_NoTruncationUnderCeiling(t *testing.T) {
	p := Build(singleChange(), nil, testConfig(), types.StyleConventional, "")
	assert.NotContains(t, p, truncationMarker)
}

func TestBuild_HistoryRendering(t *testing.T) {
	history := []types.HistoryEntry{
		{Subject: "fix: most recent"},
		{Subject: "feat: older"},
		{Subject: "docs: older still"},
		{Subject: "chore: beyond the render cap"},
	}

	p := Build(singleChange(), history, testConfig(), types.StyleConventional, "")

	assert.Contains(t, p, "- fix: most recent")
	assert.Contains(t, p, "- docs: older still")
	assert.NotContains(t, p, "beyond the render cap")

	// History appears after the diff, not interleaved with it.
	assert.Less(t, strings.Index(p, "+print('hi')"), strings.Index(p, "fix: most recent"))
}

func TestBuild_StyleGuides(t *testing.T) {
	tests := []struct {
		style types.Style
		want  string
	}{
		{types.StyleConventional, "<type>(<scope>): <subject>"},
		{types.StyleSemantic, "<emoji> <type>: <subject>"},
		{types.StyleSimple, "Keep it simple"},
	}

	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			p := Build(singleChange(), nil, testConfig(), tt.style, "")
			assert.Contains(t, p, tt.want)
		})
	}
}

func TestBuild_ConventionalListsConfiguredTypes(t *testing.T) {
	cfg := testConfig()
	cfg.CommitTypes = []string{"feat", "fix", "wip"}

	p := Build(singleChange(), nil, cfg, types.StyleConventional, "")
	assert.Contains(t, p, "Types: feat, fix, wip")
}

func TestBuild_FeedbackSection(t *testing.T) {
	p := Build(singleChange(), nil, testConfig(), types.StyleConventional, "mention the config change")

	assert.Contains(t, p, "Refinement instructions from the user")
	assert.Contains(t, p, "mention the config change")

	// Feedback is marked apart from the diff content.
	assert.Less(t, strings.Index(p, "+print('hi')"), strings.Index(p, "mention the config change"))
}

func TestBuild_BinaryOnlyChangeSet(t *testing.T) {
	changes := types.ChangeSet{
		{Path: "logo.png", Status: types.StatusAdded, DiffText: ""},
	}

	p := Build(changes, nil, testConfig(), types.StyleConventional, "")

	assert.Contains(t, p, "- logo.png (added)")
	assert.NotEmpty(t, p)
}

func TestBuild_CompactEncoding(t *testing.T) {
	cfg := testConfig()
	cfg.UseCompact = true

	changes := types.ChangeSet{
		{Path: "a.py", Status: types.StatusAdded, DiffText: "--- a/a.py\n+++ b/a.py\n+print('hi')\n"},
		{Path: "b.py", Status: types.StatusModified, DiffText: "--- a/b.py\n+++ b/b.py\n-old\n+new\n"},
	}

	p := Build(changes, nil, cfg, types.StyleConventional, "")

	assert.Contains(t, p, "files[2]{path,status}:")
	assert.Contains(t, p, "a.py,added")
	assert.Contains(t, p, "diff[b.py]:")
	assert.Contains(t, p, "+new")
	// Verbatim diff headers are dropped by the compact form.
	assert.NotContains(t, p, "+++ b/a.py")
}

func TestBuild_CompactDeterministic(t *testing.T) {
	cfg := testConfig()
	cfg.UseCompact = true

	first := Build(singleChange(), nil, cfg, types.StyleSimple, "")
	second := Build(singleChange(), nil, cfg, types.StyleSimple, "")
	assert.Equal(t, first, second)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"under ceiling", "short", 100, "short"},
		{"at ceiling", "12345", 5, "12345"},
		{"over ceiling", "1234567890", 5, "12345" + truncationMarker},
		{"zero ceiling passes through", "abc", 0, "abc"},
		// "é" is 2 bytes; a cut inside it backs off to the rune start.
		{"never splits a rune", "abcé", 4, "abc" + truncationMarker},
		{"cut lands on rune boundary", "abécd", 4, "abé" + truncationMarker},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, truncate(tt.input, tt.maxLen))
		})
	}
}
