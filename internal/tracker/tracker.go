// Package tracker posts generated requirement summaries to the GitHub
// issue tracker so a scaffold can be linked back to a tracked feature.
package tracker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/redphase/redphase/internal/requirements"
)

const defaultBaseURL = "https://api.github.com"

// Client talks to the GitHub REST API.
type Client struct {
	hc      *http.Client
	baseURL string
	token   string
}

// New creates a Client authenticated with the given token.
func New(token string) *Client {
	return &Client{hc: &http.Client{}, baseURL: defaultBaseURL, token: token}
}

// NewWithBaseURL creates a Client against a non-default API base URL.
// Used by tests and GitHub Enterprise installs.
func NewWithBaseURL(token, baseURL string) *Client {
	return &Client{hc: &http.Client{}, baseURL: strings.TrimRight(baseURL, "/"), token: token}
}

// Issue is the created issue as reported by the API.
type Issue struct {
	Number int    `json:"number"`
	URL    string `json:"html_url"`
}

// CreateIssue opens an issue for the feature described by m. The title
// comes from the narrative; the body lists criteria and scenarios plus
// the generation summary.
func (c *Client) CreateIssue(ctx context.Context, owner, repo string, m *requirements.Model, summary string) (*Issue, error) {
	payload, err := json.Marshal(map[string]string{
		"title": issueTitle(m),
		"body":  FormatBody(m, summary),
	})
	if err != nil {
		return nil, fmt.Errorf("encoding issue: %w", err)
	}

	url := fmt.Sprintf("%s/repos/%s/%s/issues", c.baseURL, owner, repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("posting issue: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("issue tracker returned HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var issue Issue
	if err := json.Unmarshal(body, &issue); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}
	return &issue, nil
}

func issueTitle(m *requirements.Model) string {
	title := strings.TrimSpace(strings.Split(m.Narrative, "\n")[0])
	if len(title) > 80 {
		// Cut on a rune boundary so the title stays valid UTF-8.
		cut := 80
		for cut > 0 && !utf8.RuneStart(title[cut]) {
			cut--
		}
		title = title[:cut]
	}
	return title
}

// FormatBody renders the issue body markdown from the requirements and
// the generation summary.
func FormatBody(m *requirements.Model, summary string) string {
	var b strings.Builder

	b.WriteString("## User Story\n\n")
	b.WriteString(strings.TrimSpace(m.Narrative))
	b.WriteString("\n")

	writeList := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		fmt.Fprintf(&b, "\n## %s\n\n", title)
		for _, item := range items {
			fmt.Fprintf(&b, "- [ ] %s\n", item)
		}
	}
	writeList("Acceptance Criteria", m.AcceptanceCriteria)
	writeList("Happy Path", m.HappyPath)
	writeList("Edge Cases", m.EdgeCases)
	writeList("Error Handling", m.ErrorCases)

	if m.Props != "" {
		fmt.Fprintf(&b, "\n## Props\n\n%s\n", m.Props)
	}
	if m.Events != "" {
		fmt.Fprintf(&b, "\n## Events\n\n%s\n", m.Events)
	}

	if summary != "" {
		fmt.Fprintf(&b, "\n---\n\n%s\n", summary)
	}
	return b.String()
}
