// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package gitrepo collects staged changes and recent history from a git
// repository, and creates the final commit.
// Implements: prd002-change-collector R1, R2, R3;
//
//	docs/ARCHITECTURE § Change Collector.
package gitrepo

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/format/index"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/petar-djukic/git-ai/pkg/types"
)

// ErrNoRepository is returned when the directory is not inside a git
// working tree.
var ErrNoRepository = errors.New("not a git repository")

// ErrNoStagedChanges is returned when nothing is staged for commit.
var ErrNoStagedChanges = errors.New("no staged changes")

// ErrCommitFailed wraps failures from the commit operation.
var ErrCommitFailed = errors.New("commit failed")

// Repo wraps a go-git repository for the operations we need.
type Repo struct {
	repo *gogit.Repository
}

// Open opens the repository containing dir, searching parent directories
// the way the git CLI does. Returns ErrNoRepository when none is found.
//
// Implements: prd002-change-collector R1.1-R1.2.
func Open(dir string) (*Repo, error) {
	r, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoRepository, err)
	}
	return &Repo{repo: r}, nil
}

// StagedChanges returns the staged file list with per-file diff text,
// ordered by path. The diff is HEAD vs the index, so worktree edits made
// after staging never leak into it. Binary files keep path and status but
// carry no diff text. Returns ErrNoStagedChanges when the staged set is
// empty.
//
// Implements: prd002-change-collector R2.1-R2.6.
func (r *Repo) StagedChanges() (types.ChangeSet, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("getting worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("getting status: %w", err)
	}

	idx, err := r.repo.Storer.Index()
	if err != nil {
		return nil, fmt.Errorf("reading index: %w", err)
	}

	headFiles := r.headFiles()

	var paths []string
	for path, fs := range status {
		if staged(fs.Staging) {
			paths = append(paths, path)
		}
	}
	if len(paths) == 0 {
		return nil, ErrNoStagedChanges
	}
	sort.Strings(paths)

	changes := make(types.ChangeSet, 0, len(paths))
	for _, path := range paths {
		fs := status[path]

		var oldText, newText string
		oldPath := path
		if fs.Staging == gogit.Renamed && fs.Extra != "" {
			oldPath = fs.Extra
		}
		oldText = headFiles[oldPath]

		if fs.Staging != gogit.Deleted {
			newText, err = r.readIndexFile(idx, path)
			if err != nil {
				return nil, fmt.Errorf("reading staged %s: %w", path, err)
			}
		}

		change := types.FileChange{
			Path:   path,
			Status: changeStatus(fs.Staging),
		}
		if !isBinary(oldText) && !isBinary(newText) {
			change.DiffText = renderDiff(path, oldText, newText)
		}
		changes = append(changes, change)
	}

	return changes, nil
}

// RecentSubjects returns up to limit commit subject lines, most recent
// first. A repository with no commits yields an empty history.
//
// Implements: prd002-change-collector R3.1-R3.3.
func (r *Repo) RecentSubjects(limit int) ([]types.HistoryEntry, error) {
	iter, err := r.repo.Log(&gogit.LogOptions{})
	if err != nil {
		// No HEAD yet: history is simply empty.
		return nil, nil
	}
	defer iter.Close()

	var entries []types.HistoryEntry
	for len(entries) < limit {
		c, err := iter.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("walking history: %w", err)
		}
		subject, _, _ := strings.Cut(c.Message, "\n")
		entries = append(entries, types.HistoryEntry{Subject: strings.TrimSpace(subject)})
	}
	return entries, nil
}

// Commit creates a commit from the staged index with the given message and
// returns the abbreviated hash. Author identity comes from git config.
//
// Implements: prd002-change-collector R4.1-R4.3.
func (r *Repo) Commit(message string) (string, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("%w: getting worktree: %v", ErrCommitFailed, err)
	}

	hash, err := wt.Commit(message, &gogit.CommitOptions{})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCommitFailed, err)
	}
	return hash.String()[:7], nil
}

// Stats counts staged files and changed lines across a change set.
func Stats(changes types.ChangeSet) (files, lines int) {
	for _, c := range changes {
		files++
		for _, line := range strings.Split(c.DiffText, "\n") {
			if strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++") {
				lines++
			}
			if strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "---") {
				lines++
			}
		}
	}
	return files, lines
}

// headFiles returns path -> content for every blob in the HEAD tree. An
// unborn HEAD yields an empty map, so every staged file diffs as added.
func (r *Repo) headFiles() map[string]string {
	files := map[string]string{}

	head, err := r.repo.Head()
	if err != nil {
		return files
	}
	commit, err := r.repo.CommitObject(head.Hash())
	if err != nil {
		return files
	}
	tree, err := commit.Tree()
	if err != nil {
		return files
	}

	_ = tree.Files().ForEach(func(f *object.File) error {
		content, err := f.Contents()
		if err == nil {
			files[f.Name] = content
		}
		return nil
	})
	return files
}

func staged(code gogit.StatusCode) bool {
	switch code {
	case gogit.Added, gogit.Modified, gogit.Deleted, gogit.Renamed, gogit.Copied:
		return true
	}
	return false
}

func changeStatus(code gogit.StatusCode) types.ChangeStatus {
	switch code {
	case gogit.Added, gogit.Copied:
		return types.StatusAdded
	case gogit.Deleted:
		return types.StatusDeleted
	case gogit.Renamed:
		return types.StatusRenamed
	default:
		return types.StatusModified
	}
}

// readIndexFile returns the staged blob content for path. The index entry
// hash points at the blob written by git add, which is what the commit
// will contain regardless of later worktree edits.
func (r *Repo) readIndexFile(idx *index.Index, path string) (string, error) {
	entry, err := idx.Entry(path)
	if err != nil {
		return "", err
	}
	blob, err := object.GetBlob(r.repo.Storer, entry.Hash)
	if err != nil {
		return "", err
	}

	rd, err := blob.Reader()
	if err != nil {
		return "", err
	}
	defer rd.Close()

	data, err := io.ReadAll(rd)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// isBinary treats any content containing a NUL byte as binary, matching
// git's own heuristic.
func isBinary(content string) bool {
	return strings.IndexByte(content, 0) >= 0
}
