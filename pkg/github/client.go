package github

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// DefaultAPIBase is the public GitHub REST API base URL.
const DefaultAPIBase = "https://api.github.com"

// Client is the HTTP wrapper for the GitHub REST API.
// The relay only needs a repository existence probe, so the surface is tiny.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a new GitHub HTTP client. Token is optional; without it
// the probe works for public repositories only.
func NewClient(baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = DefaultAPIBase
	}
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// SetAPIURL overrides the API base URL for testing purposes.
func (c *Client) SetAPIURL(url string) {
	c.baseURL = url
}

// RepositoryExists probes GET /repos/{owner}/{repo} and reports whether the
// repository is visible. A 404 means "does not exist"; any other non-200
// status is an error so callers can tell "unknown repo" from "GitHub is down".
func (c *Client) RepositoryExists(ctx context.Context, fullName string) (bool, error) {
	url := fmt.Sprintf("%s/repos/%s", c.baseURL, fullName)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("failed to build repo lookup request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to call github repo API: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("github repo API error %d for %s", resp.StatusCode, fullName)
	}
}
