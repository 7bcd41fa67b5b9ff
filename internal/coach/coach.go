// Package coach generates short post-session coaching tips. It calls an
// OpenAI-compatible chat completion endpoint when one is configured and
// falls back to canned tips on any failure, so gameplay never depends on
// the network.
package coach

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/handwave/catchball/internal/config"
)

// Summary describes one finished session for the prompt.
type Summary struct {
	Score    int
	Throws   int
	Catches  int
	Drops    int
	Duration time.Duration
}

// Client talks to the chat completion endpoint.
type Client struct {
	cfg    config.CoachConfig
	http   *http.Client
	logger *log.Logger
}

// New creates a coach client. A client with an empty endpoint is valid
// and always serves fallback tips.
func New(cfg config.CoachConfig, logger *log.Logger) *Client {
	timeout := time.Duration(cfg.TimeoutMS) * time.Millisecond
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: timeout},
		logger: logger,
	}
}

var fallbackTips = []string{
	"Keep your palm steady under falling balls; the catch zone is wider than it looks.",
	"Flick upward sharply to throw. Slow lifts won't release the ball.",
	"Stack balls on one hand, then throw them in a quick rhythm for a score burst.",
	"Stay in frame. When tracking loses your hand, everything it holds drops.",
	"Use both hands: catch with one while the other is still in throw cooldown.",
}

// Tip returns a coaching tip for the session. Never returns an empty
// string and never returns an error; failures degrade to canned tips.
func (c *Client) Tip(ctx context.Context, s Summary) string {
	if c.cfg.Endpoint == "" {
		return c.fallback(s)
	}

	tip, err := c.request(ctx, s)
	if err != nil {
		c.logger.Warn("coach request failed, using fallback", "error", err)
		return c.fallback(s)
	}
	return tip
}

// fallback picks a canned tip deterministically from the summary.
func (c *Client) fallback(s Summary) string {
	idx := (s.Score/10 + s.Drops) % len(fallbackTips)
	if idx < 0 {
		idx = 0
	}
	return fallbackTips[idx]
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *Client) request(ctx context.Context, s Summary) (string, error) {
	prompt := fmt.Sprintf(
		"You are a motion-game coach. The player finished a catchball session: "+
			"score %d, %d throws, %d catches, %d drops, duration %s. "+
			"Give one short, encouraging tip (max two sentences).",
		s.Score, s.Throws, s.Catches, s.Drops, s.Duration.Round(time.Second),
	)

	body, err := json.Marshal(chatRequest{
		Model:    c.cfg.Model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("coach: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("coach: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if key := os.Getenv(c.cfg.APIKeyEnv); key != "" {
		req.Header.Set("Authorization", "Bearer "+key)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("coach: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("coach: endpoint returned %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("coach: read response: %w", err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("coach: decode response: %w", err)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("coach: response has no content")
	}

	return parsed.Choices[0].Message.Content, nil
}
