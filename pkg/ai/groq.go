package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/xXxDanya2007xXx/speech-coach/pkg/config"
)

// GroqClient is a minimal client for Groq chat completions used for
// contextual filler judgment and feedback generation
type GroqClient struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// NewGroqClient creates a Groq client using values from the provided config.
// Pass a nil config to fall back to environment variables.
func NewGroqClient(cfg *config.LLMConfig) *GroqClient {
	var apiKey, base, model string
	if cfg != nil {
		apiKey = cfg.GroqAPIKey
		base = cfg.BaseURL
		model = cfg.Model
	}
	if apiKey == "" {
		apiKey = os.Getenv("GROQ_API_KEY")
	}
	if base == "" {
		base = "https://api.groq.com/openai/v1"
	}
	if model == "" {
		model = "llama-3.3-70b-versatile"
	}

	client := &http.Client{}
	if cfg != nil && cfg.Timeout > 0 {
		client.Timeout = cfg.Timeout
	}

	return &GroqClient{
		apiKey:  apiKey,
		baseURL: base,
		model:   model,
		client:  client,
	}
}

// Configured reports whether an API key is present; without one every
// call fails and callers should use their fallbacks immediately.
func (g *GroqClient) Configured() bool {
	return g.apiKey != ""
}

// ChatRequest is the shape for chat completion requests
type ChatRequest struct {
	Model       string      `json:"model,omitempty"`
	Messages    interface{} `json:"messages,omitempty"`
	Temperature float64     `json:"temperature,omitempty"`
	MaxTokens   int         `json:"max_tokens,omitempty"`
}

// ChatResponse is a minimal response shape
type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Chat sends a system+user prompt pair and returns the assistant content
func (g *GroqClient) Chat(ctx context.Context, system, user string) (string, error) {
	messages := []map[string]string{
		{"role": "system", "content": system},
		{"role": "user", "content": user},
	}

	reqBody := ChatRequest{
		Model:       g.model,
		Messages:    messages,
		Temperature: 0.3,
		MaxTokens:   8000,
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	endpoint := g.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("groq returned status %d", resp.StatusCode)
	}

	var cr ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", err
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("empty response from groq")
	}
	return cr.Choices[0].Message.Content, nil
}
