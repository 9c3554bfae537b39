// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package review drives the interactive accept/regenerate/edit/feedback
// loop around a generated commit message.
// Implements: prd005-review-loop R1, R2, R3;
//
//	docs/ARCHITECTURE § Review Loop.
package review

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/petar-djukic/git-ai/pkg/types"
)

// State is the review loop's machine state. Committed and Cancelled are
// terminal.
type State int

const (
	StatePresenting State = iota
	StateCommitted
	StateCancelled
)

// Choice is one of the five user selections available in Presenting.
type Choice string

const (
	ChoiceAccept     Choice = "a"
	ChoiceRegenerate Choice = "r"
	ChoiceEdit       Choice = "e"
	ChoiceFeedback   Choice = "f"
	ChoiceCancel     Choice = "c"
)

// editTerminator ends multi-line message entry in edit mode.
const editTerminator = "."

// Committer hands the final message to the version-control layer.
type Committer interface {
	Commit(message string) (string, error)
}

// GenerateFunc re-invokes the generation pipeline. An empty feedback
// string regenerates from the unchanged request; non-empty feedback is
// folded into a refinement prompt upstream.
type GenerateFunc func(ctx context.Context, feedback string) (*types.GenerationResult, error)

// Loop holds the review loop's collaborators. In and Out are injected so
// tests drive the loop without a terminal.
type Loop struct {
	In       io.Reader
	Out      io.Writer
	Commit   Committer
	Generate GenerateFunc
	Present  func(w io.Writer, r *types.GenerationResult) // Message rendering hook
	DryRun   bool
}

// Outcome is the terminal result of a review loop run.
type Outcome struct {
	State      State
	Result     *types.GenerationResult // Message at loop exit
	CommitHash string                  // Set when a commit was created
}

// transition maps one user choice to its action. Actions return the next
// state; any non-terminal action leaves the loop in Presenting.
type transition func(l *Loop, ctx context.Context, in *bufio.Scanner, out *Outcome) (State, error)

// transitions is the (Presenting, choice) -> action table. Keeping the
// terminal conditions in one table keeps them auditable.
var transitions = map[Choice]transition{
	ChoiceAccept:     (*Loop).accept,
	ChoiceRegenerate: (*Loop).regenerate,
	ChoiceEdit:       (*Loop).edit,
	ChoiceFeedback:   (*Loop).feedback,
	ChoiceCancel:     (*Loop).cancel,
}

// Run presents initial and loops on user choices until accept or cancel.
// Recoverable failures (commit failure, a failed regeneration) are
// reported and leave the current message intact.
//
// Implements: prd005-review-loop R1.1-R1.6, R2.1-R2.5.
func (l *Loop) Run(ctx context.Context, initial *types.GenerationResult) (*Outcome, error) {
	scanner := bufio.NewScanner(l.In)
	out := &Outcome{State: StatePresenting, Result: initial}

	for out.State == StatePresenting {
		l.present(out.Result)

		choice, ok := l.readChoice(scanner)
		if !ok {
			// Input exhausted: treat as cancel, nothing is committed.
			out.State = StateCancelled
			break
		}

		t, known := transitions[choice]
		if !known {
			fmt.Fprintf(l.Out, "Unknown choice %q.\n", choice)
			continue
		}

		next, err := t(l, ctx, scanner, out)
		if err != nil {
			// Surface and keep presenting the current message.
			fmt.Fprintf(l.Out, "Error: %v\n", err)
			continue
		}
		out.State = next
	}

	return out, nil
}

func (l *Loop) accept(ctx context.Context, in *bufio.Scanner, out *Outcome) (State, error) {
	if l.DryRun {
		fmt.Fprintln(l.Out, "Dry run - no commit created.")
		return StateCommitted, nil
	}

	hash, err := l.Commit.Commit(out.Result.Message())
	if err != nil {
		return StatePresenting, err
	}
	out.CommitHash = hash
	return StateCommitted, nil
}

func (l *Loop) regenerate(ctx context.Context, in *bufio.Scanner, out *Outcome) (State, error) {
	result, err := l.Generate(ctx, "")
	if err != nil {
		return StatePresenting, err
	}
	out.Result = result
	return StatePresenting, nil
}

func (l *Loop) edit(ctx context.Context, in *bufio.Scanner, out *Outcome) (State, error) {
	fmt.Fprintf(l.Out, "Enter your commit message (finish with %q on its own line):\n", editTerminator)

	var lines []string
	for in.Scan() {
		line := in.Text()
		if line == editTerminator {
			break
		}
		lines = append(lines, line)
	}

	text := strings.TrimSpace(strings.Join(lines, "\n"))
	if text == "" {
		fmt.Fprintln(l.Out, "Empty message, keeping the current one.")
		return StatePresenting, nil
	}

	subject, rest, _ := strings.Cut(text, "\n")
	out.Result = &types.GenerationResult{
		Subject: strings.TrimSpace(subject),
		Body:    strings.TrimSpace(rest),
		RawText: text,
	}
	return StatePresenting, nil
}

func (l *Loop) feedback(ctx context.Context, in *bufio.Scanner, out *Outcome) (State, error) {
	fmt.Fprint(l.Out, "What would you like to change? ")
	if !in.Scan() {
		return StatePresenting, nil
	}
	text := strings.TrimSpace(in.Text())
	if text == "" {
		return StatePresenting, nil
	}

	result, err := l.Generate(ctx, text)
	if err != nil {
		return StatePresenting, err
	}
	out.Result = result
	return StatePresenting, nil
}

func (l *Loop) cancel(ctx context.Context, in *bufio.Scanner, out *Outcome) (State, error) {
	fmt.Fprintln(l.Out, "Commit cancelled.")
	return StateCancelled, nil
}

// present renders the current message and the options menu.
func (l *Loop) present(r *types.GenerationResult) {
	if l.Present != nil {
		l.Present(l.Out, r)
	} else {
		fmt.Fprintf(l.Out, "\n%s\n", r.Message())
	}

	fmt.Fprintln(l.Out, "\nOptions:")
	fmt.Fprintln(l.Out, "  a - Accept and commit")
	fmt.Fprintln(l.Out, "  r - Regenerate")
	fmt.Fprintln(l.Out, "  e - Edit manually")
	fmt.Fprintln(l.Out, "  f - Provide feedback for refinement")
	fmt.Fprintln(l.Out, "  c - Cancel")
}

// readChoice reads one selection; an empty line defaults to accept. The
// second return is false when input is exhausted.
func (l *Loop) readChoice(in *bufio.Scanner) (Choice, bool) {
	fmt.Fprint(l.Out, "Choose [a]: ")
	if !in.Scan() {
		return "", false
	}
	text := strings.ToLower(strings.TrimSpace(in.Text()))
	if text == "" {
		return ChoiceAccept, true
	}
	return Choice(text), true
}
