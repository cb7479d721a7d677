package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const (
	defaultAnthropicBaseURL = "https://api.anthropic.com"
	defaultAnthropicModel   = "claude-sonnet-4-20250514"
	anthropicVersion        = "2023-06-01"
)

// AnthropicProvider implements Provider over the Anthropic messages REST API.
type AnthropicProvider struct {
	keyFn        KeyFunc
	defaultModel string
	baseURL      string
	httpClient   *http.Client
}

// NewAnthropicProvider creates the Anthropic provider. baseURL overrides the
// production endpoint, mainly for tests.
func NewAnthropicProvider(keyFn KeyFunc, defaultModel, baseURL string) *AnthropicProvider {
	if defaultModel == "" {
		defaultModel = defaultAnthropicModel
	}
	if baseURL == "" {
		baseURL = defaultAnthropicBaseURL
	}
	return &AnthropicProvider{
		keyFn:        keyFn,
		defaultModel: defaultModel,
		baseURL:      baseURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

func (p *AnthropicProvider) Name() string {
	return VendorAnthropic
}

func (p *AnthropicProvider) Configured() bool {
	return p.keyFn() != ""
}

func (p *AnthropicProvider) DefaultModel() string {
	return p.defaultModel
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature float64            `json:"temperature,omitempty"`
	TopP        float64            `json:"top_p,omitempty"`
	System      string             `json:"system,omitempty"`
	Messages    []anthropicMessage `json:"messages"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Generate posts the prompt pair to /v1/messages and returns the first
// text-typed content block.
func (p *AnthropicProvider) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	apiKey := p.keyFn()
	if apiKey == "" {
		return "", fmt.Errorf("%w: no Anthropic API key", ErrNotConfigured)
	}

	model := req.Model
	if model == "" {
		model = p.defaultModel
	}

	payload := anthropicRequest{
		Model:       model,
		MaxTokens:   maxOutputTokens,
		Temperature: temperature,
		TopP:        topP,
		System:      req.SystemPrompt,
		Messages: []anthropicMessage{
			{Role: "user", Content: req.UserPrompt},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%w: marshal request: %v", ErrUnknown, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: create request: %v", ErrUnknown, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", apiKey)
	httpReq.Header.Set("anthropic-version", anthropicVersion)

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return "", classifyTransport(VendorAnthropic, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", classifyTransport(VendorAnthropic, err)
	}

	var parsed anthropicResponse
	// Best effort: the error envelope is still useful on non-2xx statuses.
	_ = json.Unmarshal(respBody, &parsed)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := ""
		if parsed.Error != nil {
			message = parsed.Error.Message
		}
		return "", classifyStatus(VendorAnthropic, resp.StatusCode, message)
	}

	for _, block := range parsed.Content {
		if block.Type == "text" && block.Text != "" {
			return block.Text, nil
		}
	}

	return "", fmt.Errorf("%w: anthropic response has no text content block", ErrInvalidResponse)
}
