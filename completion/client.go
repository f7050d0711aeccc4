// Package completion wraps the external chat-completion API behind a small
// client issuing exactly one JSON-mode request per call.
package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/magoc/flowgen/constants"
)

// Completer is the single integration point the operations depend on.
// Implementations return the raw JSON-object text produced by the model.
type Completer interface {
	CompleteJSON(ctx context.Context, system, user string) (string, error)
}

// Chat completion API structures
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ResponseFormat struct {
	Type string `json:"type"`
}

type ChatRequest struct {
	Model          string          `json:"model"`
	Messages       []ChatMessage   `json:"messages"`
	Temperature    *float64        `json:"temperature,omitempty"`
	MaxTokens      *int            `json:"max_tokens,omitempty"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
	Stream         bool            `json:"stream"`
}

type ChatChoice struct {
	Index   int `json:"index"`
	Message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"message"`
	FinishReason string `json:"finish_reason"`
}

type ChatResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"`
	Created int64        `json:"created"`
	Model   string       `json:"model"`
	Choices []ChatChoice `json:"choices"`
	Usage   struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// Options overrides the fixed completion parameters. Zero values fall back to
// the defaults every operation uses.
type Options struct {
	Model       string
	Temperature *float64
	MaxTokens   int
	BaseURL     string
	HTTPClient  *http.Client
}

// Client issues chat-completion requests over plain HTTP.
type Client struct {
	apiKey      string
	model       string
	temperature float64
	maxTokens   int
	baseURL     string
	httpClient  *http.Client
}

// NewClient builds a client. It fails fast when the credential is empty so no
// operation can proceed half-configured.
func NewClient(apiKey string, opts Options) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	c := &Client{
		apiKey:      apiKey,
		model:       opts.Model,
		temperature: constants.DefaultCompletionTemperature,
		maxTokens:   opts.MaxTokens,
		baseURL:     opts.BaseURL,
		httpClient:  opts.HTTPClient,
	}
	if c.model == "" {
		c.model = constants.DefaultCompletionModel
	}
	if opts.Temperature != nil {
		c.temperature = *opts.Temperature
	}
	if c.maxTokens == 0 {
		c.maxTokens = constants.DefaultCompletionMaxTokens
	}
	if c.baseURL == "" {
		c.baseURL = constants.DefaultCompletionBaseURL
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	return c, nil
}

// NewClientFromEnv builds a client with the credential from the environment.
func NewClientFromEnv(opts Options) (*Client, error) {
	return NewClient(os.Getenv(constants.EnvOpenAIAPIKey), opts)
}

// CompleteJSON sends one system+user exchange in strict JSON-object mode and
// returns the raw response text. A single attempt, no retries.
func (c *Client) CompleteJSON(ctx context.Context, system, user string) (string, error) {
	req := ChatRequest{
		Model: c.model,
		Messages: []ChatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature:    &c.temperature,
		MaxTokens:      &c.maxTokens,
		ResponseFormat: &ResponseFormat{Type: "json_object"},
		Stream:         false,
	}

	reqBody, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set(constants.HeaderContentType, constants.ContentTypeJSON)
	httpReq.Header.Set(constants.HeaderAuthorization, "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var chatResp ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("%w: decoding response: %v", ErrUpstream, err)
	}

	if len(chatResp.Choices) == 0 || chatResp.Choices[0].Message.Content == "" {
		return "", ErrEmptyResponse
	}
	return chatResp.Choices[0].Message.Content, nil
}
