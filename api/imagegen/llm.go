package imagegen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/elyanlabs/grazer/log"
	"github.com/morikuni/failure/v2"
)

const (
	// DefaultLLMModel is used when no model is configured
	DefaultLLMModel = "gpt-oss-120b"
	// DefaultLLMTimeout bounds a single generation request
	DefaultLLMTimeout = 30 * time.Second

	systemPrompt = "You draw compact SVG illustrations for social media posts. " +
		"Reply with a single <svg> element and nothing else. No scripts, no external references."
)

// LLMConfig points at an OpenAI compatible chat completions endpoint
type LLMConfig struct {
	URL     string
	Model   string
	APIKey  string
	Timeout time.Duration

	HTTPClient *http.Client
}

// Configured reports whether an endpoint is set
func (c LLMConfig) Configured() bool {
	return c.URL != ""
}

// LLMClient asks a language model for SVG markup
type LLMClient struct {
	cfg LLMConfig
}

func NewLLMClient(cfg LLMConfig) *LLMClient {
	if cfg.Model == "" {
		cfg.Model = DefaultLLMModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultLLMTimeout
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	return &LLMClient{cfg: cfg}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// endpoint accepts either a base URL or the full chat completions URL
func (c *LLMClient) endpoint() string {
	u := strings.TrimRight(c.cfg.URL, "/")
	if strings.HasSuffix(u, "/chat/completions") {
		return u
	}
	if !strings.HasSuffix(u, "/v1") {
		u += "/v1"
	}
	return u + "/chat/completions"
}

// Generate returns validated SVG markup. Every failure carries ErrSynthesisFailure.
func (c *LLMClient) Generate(ctx context.Context, prompt string, t Template, p Palette) (string, error) {
	var instruction strings.Builder
	fmt.Fprintf(&instruction, "Create an SVG image (max 512x512) for: %s", prompt)
	if t != "" {
		fmt.Fprintf(&instruction, "\nStyle: %s", t)
	}
	if p.Name != "" {
		fmt.Fprintf(&instruction, "\nUse only these colors: %s", strings.Join(p.Colors(), ", "))
	}

	body, err := json.Marshal(chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: instruction.String()},
		},
		Temperature: 0.7,
		MaxTokens:   4096,
	})
	if err != nil {
		return "", failure.Wrap(err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(body))
	if err != nil {
		return "", synthesisFailure("building llm request: " + err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		return "", synthesisFailure("llm unreachable: " + err.Error())
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 4*MaxSVGBytes))
	if err != nil {
		return "", synthesisFailure("reading llm response: " + err.Error())
	}
	if resp.StatusCode != http.StatusOK {
		return "", synthesisFailure(fmt.Sprintf("llm returned HTTP %d", resp.StatusCode))
	}

	var out chatResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return "", synthesisFailure("llm returned invalid JSON")
	}
	if len(out.Choices) == 0 {
		return "", synthesisFailure("llm returned no choices")
	}

	svg, ok := ExtractSVG(out.Choices[0].Message.Content)
	if !ok {
		return "", synthesisFailure("llm reply contains no svg")
	}
	if err := ValidateSVG(svg); err != nil {
		return "", err
	}

	log.Debug("LLM generated SVG", "model", c.cfg.Model, "bytes", len(svg))
	return svg, nil
}
