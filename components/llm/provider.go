package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// Provider names a hosted model service
type Provider string

const (
	ProviderGemini    Provider = "gemini"
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

// Providers lists the supported providers
var Providers = []Provider{ProviderGemini, ProviderOpenAI, ProviderAnthropic}

// ParseProvider maps a provider name to its Provider
func ParseProvider(v string) (Provider, error) {
	p := Provider(strings.ToLower(strings.TrimSpace(v)))
	if p == "google" {
		p = ProviderGemini
	}
	if p == "claude" {
		p = ProviderAnthropic
	}
	if _, ok := dialers[p]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownProvider, v)
	}
	return p, nil
}

// Transport performs one blocking generate call
type Transport interface {
	Generate(ctx context.Context, req *Request) (*Reply, error)
}

// Dialer builds a Transport bound to a credential and model
type Dialer func(ctx context.Context, apiKey string, model string) (Transport, error)

// Endpoint overrides where and how a transport connects
type Endpoint struct {
	BaseURL    string
	HTTPClient *http.Client
}

var dialers = map[Provider]func(Endpoint) Dialer{
	ProviderGemini:    GeminiDialer,
	ProviderOpenAI:    OpenAIDialer,
	ProviderAnthropic: AnthropicDialer,
}

// DialerFor returns the dialer of provider p for the endpoint
func DialerFor(p Provider, ep Endpoint) (Dialer, error) {
	fn, ok := dialers[p]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, p)
	}
	return fn(ep), nil
}
