// Package github provides a client for the slice of the GitHub REST API
// the gate needs: pull request metadata and files, issue comments, and
// check runs.
package github

import (
	"net/http"
	"time"
)

// API configuration constants.
const (
	// DefaultAPIEndpoint is the GitHub REST API base URL.
	DefaultAPIEndpoint = "https://api.github.com"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// MaxRetries is the maximum number of retries for rate-limited requests.
	MaxRetries = 3

	// RetryDelay is the base delay between retries (exponential backoff).
	RetryDelay = time.Second

	// MaxPageSize is the maximum number of items to fetch per page.
	MaxPageSize = 100

	// MaxPages bounds pagination so a malformed Link header can't loop
	// forever.
	MaxPages = 50
)

// Client provides methods to interact with the GitHub REST API.
type Client struct {
	Token      string       // GitHub token (Actions-provided or PAT)
	Owner      string       // Repository owner (user or org)
	Repo       string       // Repository name
	BaseURL    string       // API base URL (default: https://api.github.com)
	HTTPClient *http.Client // Optional custom HTTP client
}

// PullRequest carries the fields the gate needs from a pull request.
type PullRequest struct {
	Number int `json:"number"`
	Head   struct {
		SHA string `json:"sha"`
	} `json:"head"`
}

// PullFile is one changed file of a pull request. Patch is empty for
// files GitHub doesn't diff (binaries, very large files).
type PullFile struct {
	Filename string `json:"filename"`
	Patch    string `json:"patch,omitempty"`
}

// User is a comment author.
type User struct {
	Login string `json:"login"`
}

// IssueComment is one comment on the pull request conversation.
type IssueComment struct {
	ID        int64      `json:"id"`
	Body      string     `json:"body"`
	User      *User      `json:"user,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// CheckRunOutput is the title/summary block of a check run.
type CheckRunOutput struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

// CheckRunParams creates a new check run on a commit. Check runs are
// append-only from this client's point of view: transitioning state
// means creating a fresh run under the same name.
type CheckRunParams struct {
	Name       string          `json:"name"`
	HeadSHA    string          `json:"head_sha"`
	Status     string          `json:"status"`
	Conclusion string          `json:"conclusion,omitempty"`
	Output     *CheckRunOutput `json:"output,omitempty"`
}
