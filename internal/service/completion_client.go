package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"codexam/internal/config"
)

// ErrUpstream marks transport-level failures of the completion collaborator:
// request errors, non-success status codes, and empty response bodies. These
// surface to the caller as service errors and are never masked by fallbacks.
var ErrUpstream = fmt.Errorf("completion upstream failure")

// CompletionRequest is one chat-completion call: a fixed system prompt, the
// user content, and the sampling parameters from the task's prompt template.
type CompletionRequest struct {
	System      string
	User        string
	Temperature float64
	MaxTokens   int
}

// CompletionClient produces raw completion text for a request. The content is
// returned as-is; callers decide whether it parses as structured data.
type CompletionClient interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

type chatCompletionClient struct {
	cfg    *config.AIConfig
	client *http.Client
}

// NewCompletionClient creates a client for the chat-completions collaborator.
func NewCompletionClient(cfg *config.AIConfig) CompletionClient {
	return &chatCompletionClient{
		cfg: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func (c *chatCompletionClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	body := map[string]interface{}{
		"model": c.cfg.Model,
		"messages": []chatMessage{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.User},
		},
		"temperature": req.Temperature,
		"max_tokens":  req.MaxTokens,
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}
	if c.cfg.CustomerID != "" {
		httpReq.Header.Set("customerId", c.cfg.CustomerID)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	var completion struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respBody, &completion); err != nil {
		return "", fmt.Errorf("%w: malformed response envelope", ErrUpstream)
	}

	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%w: empty completion", ErrUpstream)
	}

	return completion.Choices[0].Message.Content, nil
}

// decodeJSON attempts to parse completion content as structured data. The
// false branch is what routes a response into the deterministic fallbacks.
func decodeJSON[T any](raw string) (T, bool) {
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		var zero T
		return zero, false
	}
	return v, true
}
