package github

import (
	"encoding/json"
	"fmt"
	"os"
)

// Event is the slice of an Actions webhook payload the gate cares
// about. Two shapes arrive here: pull_request events carry the PR
// directly, issue_comment events carry it as an issue with a
// pull_request stub.
type Event struct {
	PullRequest *struct {
		Number int `json:"number"`
	} `json:"pull_request"`
	Issue *struct {
		Number      int `json:"number"`
		PullRequest *struct {
			URL string `json:"url"`
		} `json:"pull_request"`
	} `json:"issue"`
	Comment *struct {
		Body string `json:"body"`
	} `json:"comment"`
}

// LoadEvent reads and parses the webhook payload file the runner
// provides via GITHUB_EVENT_PATH.
func LoadEvent(path string) (*Event, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path comes from the Actions runner
	if err != nil {
		return nil, fmt.Errorf("failed to read event payload: %w", err)
	}
	var ev Event
	if err := json.Unmarshal(data, &ev); err != nil {
		return nil, fmt.Errorf("failed to parse event payload: %w", err)
	}
	return &ev, nil
}

// PullNumber resolves the pull request the event refers to. A comment
// on a plain issue is not a pull request and is an error here.
func (e *Event) PullNumber() (int, error) {
	if e.PullRequest != nil {
		return e.PullRequest.Number, nil
	}
	if e.Issue != nil && e.Issue.PullRequest != nil {
		return e.Issue.Number, nil
	}
	return 0, fmt.Errorf("event does not reference a pull request")
}

// CommentBody returns the triggering comment's body, or "" for events
// without one.
func (e *Event) CommentBody() string {
	if e.Comment == nil {
		return ""
	}
	return e.Comment.Body
}
