package ai

import (
	"context"
	"fmt"
	"time"
)

// Vendor identifiers accepted by the API.
const (
	VendorOpenAI    = "openai"
	VendorAnthropic = "anthropic"
	VendorGemini    = "gemini"
)

// Generation parameters shared by all vendors. Recommendation generation is
// slow, hence the long request timeout.
const (
	requestTimeout  = 120 * time.Second
	maxOutputTokens = 8192
	temperature     = 0.7
	topP            = 0.95
)

// GenerateRequest carries one generation attempt's inputs. Model may be
// empty to select the vendor's configured default.
type GenerateRequest struct {
	SystemPrompt string
	UserPrompt   string
	Model        string
}

// Provider is a single LLM vendor able to answer one prompt pair with raw
// response text. Implementations read their credential fresh on every call
// so a key change takes effect on the next request.
type Provider interface {
	// Name returns the stable vendor identifier.
	Name() string
	// Configured reports whether a credential is currently available.
	Configured() bool
	// DefaultModel returns the model used when a request names none.
	DefaultModel() string
	// Generate sends the prompts and returns the raw response text.
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

// KeyFunc supplies the current credential for a vendor. Returning an empty
// string means the vendor is not configured.
type KeyFunc func() string

// ProviderSet holds the registered vendors and resolves one per request.
type ProviderSet struct {
	providers map[string]Provider
}

// NewProviderSet registers the given providers under their names.
func NewProviderSet(providers ...Provider) *ProviderSet {
	set := &ProviderSet{providers: make(map[string]Provider, len(providers))}
	for _, p := range providers {
		set.providers[p.Name()] = p
	}
	return set
}

// ForVendor returns the provider registered under the vendor id.
// Unknown vendors and unconfigured providers both fail with ErrNotConfigured.
func (s *ProviderSet) ForVendor(vendor string) (Provider, error) {
	p, ok := s.providers[vendor]
	if !ok {
		return nil, fmt.Errorf("%w: unknown vendor %q", ErrNotConfigured, vendor)
	}
	if !p.Configured() {
		return nil, fmt.Errorf("%w: no credential for %s", ErrNotConfigured, vendor)
	}
	return p, nil
}

// Vendors lists the registered vendor ids that currently hold a credential.
func (s *ProviderSet) Vendors() []string {
	var names []string
	for name, p := range s.providers {
		if p.Configured() {
			names = append(names, name)
		}
	}
	return names
}
