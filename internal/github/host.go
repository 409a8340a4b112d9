package github

import (
	"context"

	"github.com/readguard/readguard/internal/gate"
)

// PullHost adapts the client to the gate's collaborator interface for
// one pull request.
type PullHost struct {
	client  *Client
	number  int
	headSHA string // cached after the first lookup
}

// NewPullHost binds a client to a pull request number.
func NewPullHost(client *Client, number int) *PullHost {
	return &PullHost{client: client, number: number}
}

// ChangedFiles implements gate.Host.
func (h *PullHost) ChangedFiles(ctx context.Context) ([]gate.ChangedFile, error) {
	files, err := h.client.ListPullFiles(ctx, h.number)
	if err != nil {
		return nil, err
	}
	out := make([]gate.ChangedFile, len(files))
	for i, f := range files {
		out[i] = gate.ChangedFile{Filename: f.Filename, Patch: f.Patch}
	}
	return out, nil
}

// Comments implements gate.Host. Bodies are returned in API order,
// oldest-first; the engine reverses before matching. Author filtering is
// deliberately not done here — the challenge metadata itself identifies
// our comments.
func (h *PullHost) Comments(ctx context.Context) ([]string, error) {
	comments, err := h.client.ListIssueComments(ctx, h.number)
	if err != nil {
		return nil, err
	}
	bodies := make([]string, len(comments))
	for i, c := range comments {
		bodies[i] = c.Body
	}
	return bodies, nil
}

// PostComment implements gate.Host.
func (h *PullHost) PostComment(ctx context.Context, body string) error {
	return h.client.CreateIssueComment(ctx, h.number, body)
}

// CreateCheckRun implements gate.Host.
func (h *PullHost) CreateCheckRun(ctx context.Context, run gate.CheckRun) error {
	return h.client.CreateCheckRun(ctx, CheckRunParams{
		Name:       run.Name,
		HeadSHA:    run.HeadSHA,
		Status:     run.Status,
		Conclusion: string(run.Conclusion),
		Output: &CheckRunOutput{
			Title:   run.Title,
			Summary: run.Summary,
		},
	})
}

// HeadSHA implements gate.Host.
func (h *PullHost) HeadSHA(ctx context.Context) (string, error) {
	if h.headSHA != "" {
		return h.headSHA, nil
	}
	pr, err := h.client.GetPullRequest(ctx, h.number)
	if err != nil {
		return "", err
	}
	h.headSHA = pr.Head.SHA
	return h.headSHA, nil
}
