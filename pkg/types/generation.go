// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd004-providers R2 (request/result types).
package types

// Style selects the output convention requested from the backend.
type Style string

const (
	StyleConventional Style = "conventional"
	StyleSemantic     Style = "semantic"
	StyleSimple       Style = "simple"
)

// ValidStyle reports whether s is one of the known styles.
func ValidStyle(s Style) bool {
	switch s {
	case StyleConventional, StyleSemantic, StyleSimple:
		return true
	}
	return false
}

// GenerationRequest holds everything one backend call needs. Built once per
// generation attempt and not modified afterwards.
type GenerationRequest struct {
	PromptText  string  // Bounded prompt text (diff section capped upstream)
	Style       Style   // Requested message convention
	Temperature float64 // Sampling temperature in [0,1]
	MaxTokens   int     // Response token cap
}

// GenerationResult is the backend-agnostic parse of a generation response.
type GenerationResult struct {
	Subject string // First line of the response, never empty
	Body    string // Remaining lines, may be empty
	RawText string // Untouched backend output
}

// Message renders the result as a commit message: subject, then a blank
// line and the body when a body is present.
func (r *GenerationResult) Message() string {
	if r.Body == "" {
		return r.Subject
	}
	return r.Subject + "\n\n" + r.Body
}
