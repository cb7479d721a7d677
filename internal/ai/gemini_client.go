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
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"
	defaultGeminiModel   = "gemini-2.0-flash"
)

// GeminiProvider implements Provider over the Gemini generateContent REST API.
type GeminiProvider struct {
	keyFn        KeyFunc
	defaultModel string
	baseURL      string
	httpClient   *http.Client
}

// NewGeminiProvider creates the Gemini provider. baseURL overrides the
// production endpoint, mainly for tests.
func NewGeminiProvider(keyFn KeyFunc, defaultModel, baseURL string) *GeminiProvider {
	if defaultModel == "" {
		defaultModel = defaultGeminiModel
	}
	if baseURL == "" {
		baseURL = defaultGeminiBaseURL
	}
	return &GeminiProvider{
		keyFn:        keyFn,
		defaultModel: defaultModel,
		baseURL:      baseURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

func (p *GeminiProvider) Name() string {
	return VendorGemini
}

func (p *GeminiProvider) Configured() bool {
	return p.keyFn() != ""
}

func (p *GeminiProvider) DefaultModel() string {
	return p.defaultModel
}

type geminiPart struct {
	Text string `json:"text,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature      float64 `json:"temperature"`
	TopP             float64 `json:"topP"`
	MaxOutputTokens  int     `json:"maxOutputTokens"`
	ResponseMimeType string  `json:"responseMimeType"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent         `json:"systemInstruction,omitempty"`
	Contents          []geminiContent        `json:"contents"`
	GenerationConfig  geminiGenerationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Generate posts the prompt pair to :generateContent and returns the first
// candidate's first text part. The application/json mime type asks the model
// for raw JSON output; extraction downstream works regardless.
func (p *GeminiProvider) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	apiKey := p.keyFn()
	if apiKey == "" {
		return "", fmt.Errorf("%w: no Gemini API key", ErrNotConfigured)
	}

	model := req.Model
	if model == "" {
		model = p.defaultModel
	}

	payload := geminiRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: req.SystemPrompt}},
		},
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: req.UserPrompt}}},
		},
		GenerationConfig: geminiGenerationConfig{
			Temperature:      temperature,
			TopP:             topP,
			MaxOutputTokens:  maxOutputTokens,
			ResponseMimeType: "application/json",
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%w: marshal request: %v", ErrUnknown, err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", p.baseURL, model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: create request: %v", ErrUnknown, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", apiKey)

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return "", classifyTransport(VendorGemini, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", classifyTransport(VendorGemini, err)
	}

	var parsed geminiResponse
	_ = json.Unmarshal(respBody, &parsed)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := ""
		if parsed.Error != nil {
			message = parsed.Error.Message
		}
		return "", classifyStatus(VendorGemini, resp.StatusCode, message)
	}

	for _, candidate := range parsed.Candidates {
		for _, part := range candidate.Content.Parts {
			if part.Text != "" {
				return part.Text, nil
			}
		}
	}

	return "", fmt.Errorf("%w: gemini response has no text part", ErrInvalidResponse)
}
