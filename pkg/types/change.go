// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package types defines the shared data structures passed between git-ai
// components.
// Implements: prd001-gitai-interface R5 (shared types);
//
//	docs/ARCHITECTURE § Data Model.
package types

// ChangeStatus identifies how a staged file changed relative to HEAD.
type ChangeStatus string

const (
	StatusAdded    ChangeStatus = "added"
	StatusModified ChangeStatus = "modified"
	StatusDeleted  ChangeStatus = "deleted"
	StatusRenamed  ChangeStatus = "renamed"
)

// FileChange is one staged file with its diff text. DiffText is empty for
// binary files; Path and Status are always set.
type FileChange struct {
	Path     string       // Path relative to repository root (new path for renames)
	Status   ChangeStatus // How the file changed
	DiffText string       // Unified diff text, empty for binary files
}

// ChangeSet is the ordered staged change list for one invocation. It is
// collected fresh each run and never mutated afterwards.
type ChangeSet []FileChange

// HistoryEntry is one recent commit subject line, used as prompt context.
type HistoryEntry struct {
	Subject string
}
