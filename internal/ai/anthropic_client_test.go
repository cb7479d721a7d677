package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func staticKey(key string) KeyFunc {
	return func() string { return key }
}

func TestAnthropicGenerate_Success(t *testing.T) {
	var gotReq anthropicRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/messages" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("x-api-key") != "sk-ant-test" {
			t.Errorf("missing api key header")
		}
		if r.Header.Get("anthropic-version") != anthropicVersion {
			t.Errorf("missing version header")
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content": [{"type": "text", "text": "{\"healthSummary\": \"ok\"}"}]}`))
	}))
	defer server.Close()

	p := NewAnthropicProvider(staticKey("sk-ant-test"), "", server.URL)
	out, err := p.Generate(context.Background(), GenerateRequest{
		SystemPrompt: "system text",
		UserPrompt:   "user text",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != `{"healthSummary": "ok"}` {
		t.Errorf("output = %q", out)
	}

	if gotReq.Model != defaultAnthropicModel {
		t.Errorf("model = %q, want default", gotReq.Model)
	}
	if gotReq.MaxTokens != maxOutputTokens {
		t.Errorf("max_tokens = %d", gotReq.MaxTokens)
	}
	if gotReq.System != "system text" {
		t.Errorf("system = %q", gotReq.System)
	}
	if len(gotReq.Messages) != 1 || gotReq.Messages[0].Role != "user" || gotReq.Messages[0].Content != "user text" {
		t.Errorf("messages = %+v", gotReq.Messages)
	}
}

func TestAnthropicGenerate_ModelOverride(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req anthropicRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Model != "claude-opus-4-20250514" {
			t.Errorf("model = %q", req.Model)
		}
		_, _ = w.Write([]byte(`{"content": [{"type": "text", "text": "ok"}]}`))
	}))
	defer server.Close()

	p := NewAnthropicProvider(staticKey("k"), "", server.URL)
	if _, err := p.Generate(context.Background(), GenerateRequest{Model: "claude-opus-4-20250514"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAnthropicGenerate_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"unauthorized", 401, `{"error": {"type": "authentication_error", "message": "invalid x-api-key"}}`, ErrInvalidCredential},
		{"rate limited", 429, `{"error": {"type": "rate_limit_error", "message": "slow down"}}`, ErrRateLimited},
		{"overloaded", 529, `{"error": {"type": "overloaded_error", "message": "overloaded"}}`, ErrServer},
		{"internal", 500, `not even json`, ErrServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			p := NewAnthropicProvider(staticKey("k"), "", server.URL)
			_, err := p.Generate(context.Background(), GenerateRequest{})
			if !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want sentinel %v", err, tt.want)
			}
			if !strings.Contains(err.Error(), http.StatusText(tt.status)) && !strings.Contains(err.Error(), "status") {
				t.Errorf("status should be preserved: %v", err)
			}
		})
	}
}

func TestAnthropicGenerate_NoTextBlock(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"content": [{"type": "tool_use"}]}`))
	}))
	defer server.Close()

	p := NewAnthropicProvider(staticKey("k"), "", server.URL)
	_, err := p.Generate(context.Background(), GenerateRequest{})
	if !errors.Is(err, ErrInvalidResponse) {
		t.Fatalf("got %v, want ErrInvalidResponse", err)
	}
}

func TestAnthropicGenerate_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	p := NewAnthropicProvider(staticKey("k"), "", server.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := p.Generate(ctx, GenerateRequest{})
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("got %v, want ErrTimeout", err)
	}
	if ErrorKind(err) != "timeout" {
		t.Errorf("kind = %q", ErrorKind(err))
	}
}

func TestAnthropicGenerate_NotConfigured(t *testing.T) {
	p := NewAnthropicProvider(staticKey(""), "", "http://127.0.0.1:0")
	if p.Configured() {
		t.Error("empty key should report unconfigured")
	}
	_, err := p.Generate(context.Background(), GenerateRequest{})
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("got %v, want ErrNotConfigured", err)
	}
}

func TestAnthropicGenerate_KeyReadPerCall(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") != "rotated" {
			t.Errorf("key = %q, want rotated", r.Header.Get("x-api-key"))
		}
		_, _ = w.Write([]byte(`{"content": [{"type": "text", "text": "ok"}]}`))
	}))
	defer server.Close()

	key := "original"
	p := NewAnthropicProvider(func() string { return key }, "", server.URL)
	key = "rotated"
	if _, err := p.Generate(context.Background(), GenerateRequest{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
