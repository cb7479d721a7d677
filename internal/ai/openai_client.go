package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
)

const defaultOpenAIModel = "gpt-4o"

// OpenAIProvider implements Provider using the OpenAI chat completions API.
type OpenAIProvider struct {
	keyFn        KeyFunc
	defaultModel string
}

// NewOpenAIProvider creates the OpenAI provider. The credential is read
// through keyFn on every call rather than cached.
func NewOpenAIProvider(keyFn KeyFunc, defaultModel string) *OpenAIProvider {
	if defaultModel == "" {
		defaultModel = defaultOpenAIModel
	}
	return &OpenAIProvider{keyFn: keyFn, defaultModel: defaultModel}
}

func (p *OpenAIProvider) Name() string {
	return VendorOpenAI
}

func (p *OpenAIProvider) Configured() bool {
	return p.keyFn() != ""
}

func (p *OpenAIProvider) DefaultModel() string {
	return p.defaultModel
}

// Generate calls the chat completions endpoint, requesting a JSON object
// response as a best-effort hint; extraction downstream works regardless.
func (p *OpenAIProvider) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	apiKey := p.keyFn()
	if apiKey == "" {
		return "", fmt.Errorf("%w: no OpenAI API key", ErrNotConfigured)
	}

	model := req.Model
	if model == "" {
		model = p.defaultModel
	}

	// The client is cheap to build, so a fresh one per call keeps credential
	// changes effective without invalidation.
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithRequestTimeout(requestTimeout),
	)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.SystemPrompt),
			openai.UserMessage(req.UserPrompt),
		},
		MaxCompletionTokens: openai.Int(maxOutputTokens),
		Temperature:         openai.Float(temperature),
		TopP:                openai.Float(topP),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", classifyStatus(VendorOpenAI, apiErr.StatusCode, apiErr.Message)
		}
		return "", classifyTransport(VendorOpenAI, err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%w: openai response has no message content", ErrInvalidResponse)
	}

	return resp.Choices[0].Message.Content, nil
}
