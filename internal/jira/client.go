// Package jira provides the JQL query builder and search client for the
// weekly report.
package jira

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// searchTimeout bounds every search call; there is no retry.
const searchTimeout = 30 * time.Second

// maxResults is the fixed page cap. The server-reported total may exceed
// it; the key list never does.
const maxResults = 1000

// Config holds the Jira connection settings for one run.
type Config struct {
	BaseURL    string
	ProjectKey string
	AuthEmail  string
	APIToken   string
	VerifySSL  bool
}

// SearchResult is the outcome of one JQL search: the server-reported
// total and the returned issue keys in server order.
type SearchResult struct {
	Total int
	Keys  []string
}

// Client provides HTTP access to a Jira instance's search endpoint.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient creates a Jira search client from the given config.
func NewClient(cfg Config) *Client {
	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")

	transport := http.DefaultTransport
	if !cfg.VerifySSL {
		transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, // #nosec G402 - operator opt-in via JIRA_VERIFY_SSL
		}
	}

	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout:   searchTimeout,
			Transport: transport,
		},
	}
}

// BrowseURL returns the human-facing URL for an issue key.
func (c *Client) BrowseURL(key string) string {
	return fmt.Sprintf("%s/browse/%s", c.cfg.BaseURL, key)
}

// searchResponse is the subset of the Jira search payload the report
// needs. Total is a pointer so an absent field is distinguishable from
// zero.
type searchResponse struct {
	Total  *int `json:"total"`
	Issues []struct {
		Key string `json:"key"`
	} `json:"issues"`
}

// Search executes a single JQL query and returns the total count plus
// the matching issue keys. One attempt, one page.
func (c *Client) Search(ctx context.Context, jql string) (SearchResult, error) {
	params := url.Values{
		"jql":        {jql},
		"fields":     {"key"},
		"maxResults": {fmt.Sprintf("%d", maxResults)},
	}
	apiURL := fmt.Sprintf("%s/rest/api/3/search?%s", c.cfg.BaseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return SearchResult{}, &TransportError{Err: err}
	}
	req.SetBasicAuth(c.cfg.AuthEmail, c.cfg.APIToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return SearchResult{}, &TransportError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return SearchResult{}, &TransportError{Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return SearchResult{}, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return SearchResult{}, &DecodeError{Err: err}
	}

	keys := make([]string, 0, len(parsed.Issues))
	for _, issue := range parsed.Issues {
		keys = append(keys, issue.Key)
	}

	total := len(keys)
	if parsed.Total != nil {
		total = *parsed.Total
	}

	return SearchResult{Total: total, Keys: keys}, nil
}
