package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/redphase/redphase/internal/scaffold"
	"github.com/redphase/redphase/internal/ui"
)

const (
	defaultModel       = "gpt-4o-mini"
	defaultMaxTokens   = 1024
	defaultTemperature = 0.2
)

// Config configures a Generator.
type Config struct {
	APIKey      string // explicit credential; env vars are checked when empty
	Model       string
	MaxTokens   int
	Temperature *float64 // nil means default; explicit 0 is honoured
	Conventions string   // extra project context appended to every prompt
	BaseURL     string   // overrides backend dispatch; used by tests

	Printer    *ui.Printer
	HTTPClient *http.Client
}

// Generator produces test bodies through a remote chat-completion
// backend. It implements scaffold.Remote: every failure mode degrades
// to absence so the orchestrator's fallback chain never blocks on
// network health.
type Generator struct {
	cfg    Config
	client *http.Client
}

// New creates a Generator, applying defaults for unset config fields.
func New(cfg Config) *Generator {
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = defaultMaxTokens
	}
	if cfg.Temperature == nil {
		t := defaultTemperature
		cfg.Temperature = &t
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{}
	}
	return &Generator{cfg: cfg, client: client}
}

// chatRequest is the chat-completion request shape shared by both
// endpoint families.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate builds a prompt for the case, calls the backend once, and
// extracts a clean test body from the response. Without a credential it
// returns absent immediately, making no network call. It never returns
// an error; failures are logged and reported as ok=false.
func (g *Generator) Generate(ctx context.Context, c scaffold.CaseContext) (string, bool) {
	key := resolveKey(g.cfg.APIKey)
	if key == "" {
		g.warnf("no API key found (set %s or %s); using local scaffold", EnvOpenAI, EnvOpenRouter)
		return "", false
	}

	b := backendFor(key)
	url := b.url
	if g.cfg.BaseURL != "" {
		url = g.cfg.BaseURL
	}

	payload, err := json.Marshal(chatRequest{
		Model: g.cfg.Model,
		Messages: []chatMessage{
			{Role: "user", Content: BuildPrompt(c, g.cfg.Conventions)},
		},
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: *g.cfg.Temperature,
	})
	if err != nil {
		g.warnf("building %s request: %v", b.name, err)
		return "", false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		g.warnf("building %s request: %v", b.name, err)
		return "", false
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+key)

	resp, err := g.client.Do(req)
	if err != nil {
		g.warnf("%s unreachable: %v", b.name, err)
		return "", false
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		g.warnf("reading %s response: %v", b.name, err)
		return "", false
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		g.warnf("%s returned HTTP %d", b.name, resp.StatusCode)
		return "", false
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		g.warnf("parsing %s response: %v", b.name, err)
		return "", false
	}
	if len(parsed.Choices) == 0 {
		g.warnf("%s returned no choices", b.name)
		return "", false
	}

	body := ExtractBody(parsed.Choices[0].Message.Content)
	if body == "" {
		g.warnf("%s returned an empty body", b.name)
		return "", false
	}
	return body, true
}

func (g *Generator) warnf(format string, a ...any) {
	if g.cfg.Printer != nil {
		g.cfg.Printer.Warnf("%s", fmt.Sprintf(format, a...))
	}
}
