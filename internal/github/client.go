package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"time"
)

// NewClient creates a new GitHub client.
func NewClient(token, owner, repo string) *Client {
	return &Client{
		Token:   token,
		Owner:   owner,
		Repo:    repo,
		BaseURL: DefaultAPIEndpoint,
		HTTPClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// WithHTTPClient returns a new client with a custom HTTP client.
func (c *Client) WithHTTPClient(httpClient *http.Client) *Client {
	return &Client{
		Token:      c.Token,
		Owner:      c.Owner,
		Repo:       c.Repo,
		BaseURL:    c.BaseURL,
		HTTPClient: httpClient,
	}
}

// WithBaseURL returns a new client with a custom base URL (for testing
// or GitHub Enterprise).
func (c *Client) WithBaseURL(baseURL string) *Client {
	return &Client{
		Token:      c.Token,
		Owner:      c.Owner,
		Repo:       c.Repo,
		BaseURL:    baseURL,
		HTTPClient: c.HTTPClient,
	}
}

// repoPath returns the "owner/repo" path segment.
func (c *Client) repoPath() string {
	return c.Owner + "/" + c.Repo
}

// buildURL constructs a full API URL.
func (c *Client) buildURL(path string, params map[string]string) string {
	u := c.BaseURL + path

	if len(params) > 0 {
		values := url.Values{}
		for k, v := range params {
			values.Set(k, v)
		}
		u += "?" + values.Encode()
	}

	return u
}

// doRequest performs an HTTP request with authentication and retry logic.
func (c *Client) doRequest(ctx context.Context, method, urlStr string, body interface{}) ([]byte, http.Header, error) {
	var jsonBody []byte
	if body != nil {
		var err error
		jsonBody, err = json.Marshal(body)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	var lastErr error
	for attempt := 0; attempt <= MaxRetries; attempt++ {
		var reqBody io.Reader
		if jsonBody != nil {
			reqBody = bytes.NewReader(jsonBody)
		}
		req, err := http.NewRequestWithContext(ctx, method, urlStr, reqBody)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("Authorization", "Bearer "+c.Token)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/vnd.github+json")
		req.Header.Set("X-GitHub-Api-Version", "2022-11-28")

		resp, err := c.HTTPClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("request failed (attempt %d/%d): %w", attempt+1, MaxRetries+1, err)
			continue
		}

		const maxResponseSize = 10 * 1024 * 1024
		respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
		_ = resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("failed to read response (attempt %d/%d): %w", attempt+1, MaxRetries+1, err)
			continue
		}

		// Handle rate limiting (GitHub uses 403 with X-RateLimit-Remaining: 0, or 429)
		if resp.StatusCode == http.StatusTooManyRequests || (resp.StatusCode == http.StatusForbidden && resp.Header.Get("X-RateLimit-Remaining") == "0") {
			delay := RetryDelay * time.Duration(1<<attempt)
			if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
				if seconds, err := strconv.Atoi(retryAfter); err == nil {
					delay = time.Duration(seconds) * time.Second
				}
			}
			lastErr = fmt.Errorf("rate limited (attempt %d/%d)", attempt+1, MaxRetries+1)
			select {
			case <-ctx.Done():
				return nil, nil, ctx.Err()
			case <-time.After(delay):
				continue
			}
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, nil, fmt.Errorf("API error: %s (status %d)", string(respBody), resp.StatusCode)
		}

		return respBody, resp.Header, nil
	}

	return nil, nil, fmt.Errorf("max retries (%d) exceeded: %w", MaxRetries+1, lastErr)
}

// linkNextPattern matches the "next" relation in GitHub Link headers.
var linkNextPattern = regexp.MustCompile(`<([^>]+)>;\s*rel="next"`)

// hasNextPage checks the Link header for a next page URL.
func hasNextPage(headers http.Header) bool {
	link := headers.Get("Link")
	if link == "" {
		return false
	}
	return linkNextPattern.MatchString(link)
}

// GetPullRequest fetches pull request metadata, including the head SHA
// check runs attach to.
func (c *Client) GetPullRequest(ctx context.Context, number int) (*PullRequest, error) {
	urlStr := c.buildURL(fmt.Sprintf("/repos/%s/pulls/%d", c.repoPath(), number), nil)
	respBody, _, err := c.doRequest(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pull request #%d: %w", number, err)
	}

	var pr PullRequest
	if err := json.Unmarshal(respBody, &pr); err != nil {
		return nil, fmt.Errorf("failed to parse pull request response: %w", err)
	}
	return &pr, nil
}

// ListPullFiles retrieves the changed files of a pull request, following
// pagination.
func (c *Client) ListPullFiles(ctx context.Context, number int) ([]PullFile, error) {
	var all []PullFile
	page := 1

	for {
		select {
		case <-ctx.Done():
			return all, ctx.Err()
		default:
		}

		params := map[string]string{
			"per_page": strconv.Itoa(MaxPageSize),
			"page":     strconv.Itoa(page),
		}
		urlStr := c.buildURL(fmt.Sprintf("/repos/%s/pulls/%d/files", c.repoPath(), number), params)
		respBody, headers, err := c.doRequest(ctx, http.MethodGet, urlStr, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch pull request files: %w", err)
		}

		var files []PullFile
		if err := json.Unmarshal(respBody, &files); err != nil {
			return nil, fmt.Errorf("failed to parse pull request files response: %w", err)
		}
		all = append(all, files...)

		if !hasNextPage(headers) {
			break
		}
		page++

		if page > MaxPages {
			return nil, fmt.Errorf("pagination limit exceeded: stopped after %d pages", MaxPages)
		}
	}

	return all, nil
}

// ListIssueComments retrieves the conversation comments of a pull
// request in API order (oldest-first), following pagination.
func (c *Client) ListIssueComments(ctx context.Context, number int) ([]IssueComment, error) {
	var all []IssueComment
	page := 1

	for {
		select {
		case <-ctx.Done():
			return all, ctx.Err()
		default:
		}

		params := map[string]string{
			"per_page": strconv.Itoa(MaxPageSize),
			"page":     strconv.Itoa(page),
		}
		urlStr := c.buildURL(fmt.Sprintf("/repos/%s/issues/%d/comments", c.repoPath(), number), params)
		respBody, headers, err := c.doRequest(ctx, http.MethodGet, urlStr, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch comments: %w", err)
		}

		var comments []IssueComment
		if err := json.Unmarshal(respBody, &comments); err != nil {
			return nil, fmt.Errorf("failed to parse comments response: %w", err)
		}
		all = append(all, comments...)

		if !hasNextPage(headers) {
			break
		}
		page++

		if page > MaxPages {
			return nil, fmt.Errorf("pagination limit exceeded: stopped after %d pages", MaxPages)
		}
	}

	return all, nil
}

// CreateIssueComment posts a comment on the pull request conversation.
func (c *Client) CreateIssueComment(ctx context.Context, number int, body string) error {
	urlStr := c.buildURL(fmt.Sprintf("/repos/%s/issues/%d/comments", c.repoPath(), number), nil)
	payload := map[string]string{"body": body}
	if _, _, err := c.doRequest(ctx, http.MethodPost, urlStr, payload); err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

// CreateCheckRun creates a new check run on a commit. Creating a run
// with an existing name supersedes the prior one in GitHub's UI, which
// is how the gate transitions state.
func (c *Client) CreateCheckRun(ctx context.Context, params CheckRunParams) error {
	urlStr := c.buildURL(fmt.Sprintf("/repos/%s/check-runs", c.repoPath()), nil)
	if _, _, err := c.doRequest(ctx, http.MethodPost, urlStr, params); err != nil {
		return fmt.Errorf("failed to create check run %q: %w", params.Name, err)
	}
	return nil
}
