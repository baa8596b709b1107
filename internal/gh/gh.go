// Package gh talks to the GitHub REST API to collect star events and
// repository metadata.
package gh

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/huangsam/stargaze/internal/contract"
	"github.com/huangsam/stargaze/schema"
)

// DefaultAPIBaseURL is the public GitHub REST endpoint.
const DefaultAPIBaseURL = "https://api.github.com"

// starPageSize is the maximum page size the stargazers endpoint allows.
const starPageSize = 100

// starAccept is the media type that makes the stargazers endpoint include
// starred_at timestamps.
const starAccept = "application/vnd.github.star+json"

// Client is a GitHub REST API client. The zero value is not usable; construct
// with NewClient.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

var _ contract.StarClient = &Client{} // Compile-time check

// NewClient creates a GitHub client. An empty baseURL falls back to the
// public API; an empty token sends unauthenticated requests, which GitHub
// rate-limits aggressively.
func NewClient(httpClient *http.Client, baseURL, token string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if baseURL == "" {
		baseURL = DefaultAPIBaseURL
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
	}
}

// starEvent mirrors one element of the stargazers response under the
// star+json media type.
type starEvent struct {
	StarredAt time.Time `json:"starred_at"`
}

// repoResponse mirrors the fields of the repository endpoint we keep.
type repoResponse struct {
	StargazersCount int    `json:"stargazers_count"`
	Language        string `json:"language"`
	Owner           struct {
		Login string `json:"login"`
		Type  string `json:"type"`
	} `json:"owner"`
}

// ListStarEvents returns the chronological starred-at timestamps for a
// repository, oldest first. It pages through the stargazers endpoint until an
// empty page is returned.
func (c *Client) ListStarEvents(ctx context.Context, owner, name string) ([]time.Time, error) {
	var events []time.Time

	for page := 1; ; page++ {
		u := fmt.Sprintf("%s/repos/%s/%s/stargazers?per_page=%d&page=%d",
			c.baseURL, url.PathEscape(owner), url.PathEscape(name), starPageSize, page)

		var batch []starEvent
		if err := c.getJSON(ctx, u, starAccept, &batch); err != nil {
			return nil, fmt.Errorf("failed to list stargazers for %s/%s: %w", owner, name, err)
		}
		if len(batch) == 0 {
			break
		}

		for _, ev := range batch {
			events = append(events, ev.StarredAt)
		}
		// A short page is the last one; skip the extra round trip.
		if len(batch) < starPageSize {
			break
		}
	}

	return events, nil
}

// GetRepoMeta returns passthrough metadata for a repository.
func (c *Client) GetRepoMeta(ctx context.Context, owner, name string) (*schema.RepoMeta, error) {
	u := fmt.Sprintf("%s/repos/%s/%s", c.baseURL, url.PathEscape(owner), url.PathEscape(name))

	var resp repoResponse
	if err := c.getJSON(ctx, u, "application/vnd.github+json", &resp); err != nil {
		return nil, fmt.Errorf("failed to get repository %s/%s: %w", owner, name, err)
	}

	meta := &schema.RepoMeta{
		Stars:    resp.StargazersCount,
		Owner:    resp.Owner.Login,
		Language: resp.Language,
	}
	if resp.Owner.Type == "Organization" {
		meta.Company = resp.Owner.Login
	}
	return meta, nil
}

// getJSON performs one GET request and decodes the JSON response body.
func (c *Client) getJSON(ctx context.Context, url, accept string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", accept)
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
		return json.NewDecoder(resp.Body).Decode(out)
	case http.StatusNotFound:
		return fmt.Errorf("repository not found (%s)", resp.Status)
	case http.StatusForbidden, http.StatusTooManyRequests:
		if resp.Header.Get("X-RateLimit-Remaining") == "0" {
			return fmt.Errorf("rate limit exceeded, resets at %s", resetTime(resp))
		}
		return fmt.Errorf("request forbidden (%s)", resp.Status)
	default:
		return fmt.Errorf("unexpected response: %s", resp.Status)
	}
}

// resetTime renders the X-RateLimit-Reset header as a readable timestamp.
func resetTime(resp *http.Response) string {
	raw := resp.Header.Get("X-RateLimit-Reset")
	var unix int64
	if _, err := fmt.Sscanf(raw, "%d", &unix); err != nil {
		return "unknown time"
	}
	return time.Unix(unix, 0).UTC().Format(time.RFC3339)
}
