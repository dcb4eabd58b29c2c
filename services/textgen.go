package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// TextGenClient calls the hosted generative-text API: one prompt in, one
// completion out, no streaming.
type TextGenClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewTextGenClient(baseURL, apiKey string) *TextGenClient {
	return &TextGenClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

type completionRequest struct {
	Prompt    string `json:"prompt"`
	MaxTokens int    `json:"max_tokens"`
}

type completionResponse struct {
	Text  string `json:"text"`
	Error string `json:"error,omitempty"`
}

// Complete sends one prompt and returns the generated text.
func (c *TextGenClient) Complete(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", errors.New("text generation API key is not configured")
	}

	body, err := json.Marshal(completionRequest{Prompt: prompt, MaxTokens: 1024})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var out completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decoding completion response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if out.Error != "" {
			return "", fmt.Errorf("text generation failed: %s", out.Error)
		}
		return "", fmt.Errorf("text generation failed with status %d", resp.StatusCode)
	}
	return out.Text, nil
}
