package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/insightstream/strategy-ai/pkg/model"
)

const perplexityBaseURL = "https://api.perplexity.ai"

// DefaultPerplexityModel is used when no model override is configured.
const DefaultPerplexityModel = "sonar-pro"

// Perplexity is a chat-completions client for the Perplexity API.
type Perplexity struct {
	apiKey  string
	baseURL string
	client  *http.Client
	model   string
}

// NewPerplexity creates a Perplexity client with the default model.
func NewPerplexity(apiKey string) *Perplexity {
	return NewPerplexityWithModel(apiKey, DefaultPerplexityModel)
}

// NewPerplexityWithModel creates a Perplexity client for a specific
// model.
func NewPerplexityWithModel(apiKey, model string) *Perplexity {
	return &Perplexity{
		apiKey:  apiKey,
		baseURL: perplexityBaseURL,
		client:  &http.Client{Timeout: 120 * time.Second},
		model:   model,
	}
}

// SetBaseURL overrides the API endpoint. Used by tests and by callers
// pointing at a relay.
func (p *Perplexity) SetBaseURL(url string) {
	p.baseURL = url
}

// GetModel returns the model this client requests.
func (p *Perplexity) GetModel() string {
	return p.model
}

type perplexityRequest struct {
	Model       string          `json:"model"`
	Messages    []model.Message `json:"messages"`
	Temperature float64         `json:"temperature"`
	MaxTokens   int             `json:"max_tokens"`
	TopP        float64         `json:"top_p"`
	Stream      bool            `json:"stream"`
}

type perplexityResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Chat sends one completion request and returns the raw content of the
// first choice. No retries; any transport or HTTP failure propagates
// with the provider detail attached.
func (p *Perplexity) Chat(ctx context.Context, messages []model.Message, opts Options) (string, error) {
	if p.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	body := perplexityRequest{
		Model:       p.model,
		Messages:    messages,
		Temperature: opts.Temperature,
		MaxTokens:   capTokens(opts.MaxTokens),
		TopP:        opts.TopP,
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("perplexity request failed: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("perplexity API error (status %d): %s", resp.StatusCode, string(respBytes))
	}

	var parsed perplexityResponse
	if err := json.Unmarshal(respBytes, &parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("perplexity API error: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("empty response from perplexity")
	}
	return parsed.Choices[0].Message.Content, nil
}
