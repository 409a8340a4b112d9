// Package gate drives the proof-of-reading challenge lifecycle for one
// pull request: NO_CHALLENGE -> PENDING -> VERIFIED | FAILED, with
// FAILED re-enterable on every new reply.
//
// The engine holds no state of its own. Everything it knows is re-read
// from the pull request's comment history on each invocation, so the
// whole protocol behaves as f(history, event) -> (comment?, check run?).
package gate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/readguard/readguard/internal/llm"
	"github.com/readguard/readguard/internal/quiz"
)

// CheckName is the status marker name merge gating keys on.
const CheckName = "ReadGuard Verification"

// MaxDiffChars caps how much diff text is handed to the question
// generator.
const MaxDiffChars = 10000

// State of the challenge lifecycle as derived from comment history.
type State string

const (
	StateNoChallenge State = "no_challenge"
	StatePending     State = "pending"
	StateVerified    State = "verified"
	StateFailed      State = "failed"
)

// Conclusion is the check-run conclusion emitted on a transition. The
// engine only ever creates completed check runs; the newest one with
// CheckName is authoritative.
type Conclusion string

const (
	ConclusionActionRequired Conclusion = "action_required"
	ConclusionSuccess        Conclusion = "success"
	ConclusionFailure        Conclusion = "failure"
)

var (
	// ErrNoChanges means the pull request has no patches to quiz on.
	// The generate path treats it as a clean no-op.
	ErrNoChanges = errors.New("pull request has no reviewable changes")

	// ErrNoOpenChallenge means a well-formed answer arrived but no
	// challenge exists in the comment history. This is an operator
	// condition, not something to tell the reviewer about.
	ErrNoOpenChallenge = errors.New("no open challenge found in comment history")
)

// ChangedFile is one entry of the pull request's change set. Files the
// API returns without a patch (binaries, huge files) have Patch == "".
type ChangedFile struct {
	Filename string
	Patch    string
}

// CheckRun is the external status marker the engine emits.
type CheckRun struct {
	Name       string
	HeadSHA    string
	Status     string // always "completed"
	Conclusion Conclusion
	Title      string
	Summary    string
}

// Host is the engine's view of the hosted change request. The GitHub
// adapter implements it; tests use a fake.
type Host interface {
	ChangedFiles(ctx context.Context) ([]ChangedFile, error)
	// Comments returns prior comment bodies in retrieval order
	// (oldest-first, as the API delivers them).
	Comments(ctx context.Context) ([]string, error)
	PostComment(ctx context.Context, body string) error
	CreateCheckRun(ctx context.Context, run CheckRun) error
	HeadSHA(ctx context.Context) (string, error)
}

// GenerateOptions tune the question-generation collaborator.
type GenerateOptions struct {
	Difficulty        string
	SystemPrompt      string
	ExtraInstructions string
}

// Outcome reports what a reply did to the lifecycle.
type Outcome struct {
	Handled    bool // false: the body was not a reply attempt
	Label      string
	State      State
	Conclusion Conclusion
}

// Engine evaluates lifecycle transitions against a Host.
type Engine struct {
	host Host
	gen  llm.Generator
	log  *slog.Logger
}

// NewEngine wires an engine. gen may be nil for reply-only use.
func NewEngine(host Host, gen llm.Generator, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{host: host, gen: gen, log: logger}
}

// Generate mints a fresh challenge: builds the diff text, asks the
// generator for a question, commits to the correct answer, posts the
// challenge comment, and sets the check run to action_required. A new
// challenge implicitly supersedes any prior one, since the matcher
// always binds to the latest quiz record.
//
// If the generator fails, nothing is posted and no check run is created:
// the gate stays unset rather than falsely open or closed.
func (e *Engine) Generate(ctx context.Context, opts GenerateOptions) error {
	files, err := e.host.ChangedFiles(ctx)
	if err != nil {
		return fmt.Errorf("failed to list changed files: %w", err)
	}
	diff := BuildDiffText(files, MaxDiffChars)
	if diff == "" {
		return ErrNoChanges
	}

	e.log.Info("requesting question from generator", "difficulty", opts.Difficulty, "diff_chars", len(diff))
	resp, err := e.gen.Generate(ctx, llm.Request{
		DiffText:          diff,
		Difficulty:        opts.Difficulty,
		SystemPrompt:      opts.SystemPrompt,
		ExtraInstructions: opts.ExtraInstructions,
	})
	if err != nil {
		return fmt.Errorf("failed to generate question: %w", err)
	}

	salt, err := quiz.NewSalt()
	if err != nil {
		return err
	}
	ch := quiz.Challenge{
		Question: resp.Question,
		Options:  quiz.Options{A: resp.Options.A, B: resp.Options.B, C: resp.Options.C},
		Meta: quiz.Metadata{
			Mode: quiz.ModeQuiz,
			Salt: salt,
			Hash: quiz.Commit(resp.CorrectAnswer, salt),
		},
	}

	if err := e.host.PostComment(ctx, RenderChallenge(ch)); err != nil {
		return fmt.Errorf("failed to post challenge comment: %w", err)
	}
	if err := e.emitCheckRun(ctx, ConclusionActionRequired,
		"ReadGuard Quiz", "Please answer the quiz in the PR comments to proceed."); err != nil {
		return err
	}

	e.log.Info("challenge posted", "state", StatePending)
	return nil
}

// HandleReply evaluates a comment body against the latest open
// challenge. Non-reply bodies are unrelated conversation: no transition,
// no marker, no error. A wrong answer leaves the challenge open for
// unlimited further attempts.
func (e *Engine) HandleReply(ctx context.Context, body string) (Outcome, error) {
	label, ok := quiz.ParseReply(body)
	if !ok {
		e.log.Debug("comment is not an answer attempt")
		return Outcome{}, nil
	}

	comments, err := e.host.Comments(ctx)
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to list comments: %w", err)
	}
	meta := quiz.FindOpenChallenge(newestFirst(comments))
	if meta == nil {
		return Outcome{}, ErrNoOpenChallenge
	}

	if quiz.VerifyCommitment(label, meta.Salt, meta.Hash) {
		if err := e.host.PostComment(ctx, RenderVerified(label)); err != nil {
			return Outcome{}, fmt.Errorf("failed to post confirmation: %w", err)
		}
		if err := e.emitCheckRun(ctx, ConclusionSuccess,
			"ReadGuard Verified", "Developer successfully answered the proof-of-reading quiz."); err != nil {
			return Outcome{}, err
		}
		e.log.Info("answer verified", "label", label)
		return Outcome{Handled: true, Label: label, State: StateVerified, Conclusion: ConclusionSuccess}, nil
	}

	if err := e.host.PostComment(ctx, RenderFailed()); err != nil {
		return Outcome{}, fmt.Errorf("failed to post rejection: %w", err)
	}
	if err := e.emitCheckRun(ctx, ConclusionFailure,
		"ReadGuard Failed", "Incorrect answer provided."); err != nil {
		return Outcome{}, err
	}
	e.log.Info("answer rejected", "label", label)
	return Outcome{Handled: true, Label: label, State: StateFailed, Conclusion: ConclusionFailure}, nil
}

func (e *Engine) emitCheckRun(ctx context.Context, conclusion Conclusion, title, summary string) error {
	sha, err := e.host.HeadSHA(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve head commit: %w", err)
	}
	run := CheckRun{
		Name:       CheckName,
		HeadSHA:    sha,
		Status:     "completed",
		Conclusion: conclusion,
		Title:      title,
		Summary:    summary,
	}
	if err := e.host.CreateCheckRun(ctx, run); err != nil {
		return fmt.Errorf("failed to create check run: %w", err)
	}
	return nil
}

// BuildDiffText concatenates the available patches in file order,
// truncated to limit characters. Files without a patch are skipped.
func BuildDiffText(files []ChangedFile, limit int) string {
	var sb strings.Builder
	for _, f := range files {
		if f.Patch == "" {
			continue
		}
		fmt.Fprintf(&sb, "File: %s\n%s\n\n", f.Filename, f.Patch)
	}
	diff := sb.String()
	if len(diff) > limit {
		diff = diff[:limit]
	}
	return diff
}

// newestFirst reverses API retrieval order for the matcher.
func newestFirst(bodies []string) []string {
	out := make([]string, len(bodies))
	for i, b := range bodies {
		out[len(bodies)-1-i] = b
	}
	return out
}
