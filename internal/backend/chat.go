package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Sabharishraja/Multilinguistic-chatbot/pkg/model"
)

// Chat sends a message to the chatbot. Public endpoint, no bearer token.
func (c *Client) Chat(ctx context.Context, req model.ChatRequest) (*model.ChatResponse, error) {
	resp, err := c.do(ctx, http.MethodPost, "/chat", req, false)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		if text := strings.TrimSpace(string(body)); text != "" {
			return nil, fmt.Errorf("chat: %s", text)
		}
		return nil, fmt.Errorf("chat: backend returned status %d", resp.StatusCode)
	}

	var out model.ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("parse chat response: %w", err)
	}
	return &out, nil
}

// Health probes the backend health endpoint and returns its JSON payload.
func (c *Client) Health(ctx context.Context) (map[string]any, error) {
	resp, err := c.do(ctx, http.MethodGet, "/health", nil, false)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("health check failed: status %d", resp.StatusCode)
	}

	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("parse health response: %w", err)
	}
	return out, nil
}
