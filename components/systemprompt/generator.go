package systemprompt

import (
	"fmt"
	"strings"
)

// Generator assembles prompt text from sections and context providers
type Generator interface {
	Generate() string
	// ContextProvider retrieves a context provider by title.
	// If the context provider is not found returns not found error
	ContextProvider(title string) (ContextProvider, error)
	// AddContextProviders registers new context providers
	AddContextProviders(providers ...ContextProvider)
	// RemoveContextProviders unregisters existing context providers
	RemoveContextProviders(titles ...string)
}

// BaseGenerator keeps the context providers shared by all generators
type BaseGenerator struct {
	contextProviders []ContextProvider
}

func (g *BaseGenerator) ContextProviders() []ContextProvider {
	return g.contextProviders
}

// ContextProvider retrieves a context provider by title.
// If the context provider is not found returns not found error
func (g *BaseGenerator) ContextProvider(title string) (ContextProvider, error) {
	for _, p := range g.contextProviders {
		if p.Title() == title {
			return p, nil
		}
	}
	return nil, fmt.Errorf("context provider '%s' not found", title)
}

// AddContextProviders registers new context providers, skipping titles already registered
func (g *BaseGenerator) AddContextProviders(providers ...ContextProvider) {
	for _, provider := range providers {
		if _, err := g.ContextProvider(provider.Title()); err != nil {
			g.contextProviders = append(g.contextProviders, provider)
		}
	}
}

// RemoveContextProviders unregisters existing context providers
func (g *BaseGenerator) RemoveContextProviders(titles ...string) {
	mp := make(map[string]struct{}, len(titles))
	for _, v := range titles {
		mp[v] = struct{}{}
	}
	providers := make([]ContextProvider, 0, len(g.contextProviders))
	for _, p := range g.contextProviders {
		if _, found := mp[p.Title()]; found {
			continue
		}
		providers = append(providers, p)
	}
	g.contextProviders = providers
}

// ContextSection renders the registered providers as an extra context section.
// Providers with empty info are skipped; no providers yields nil.
func (g *BaseGenerator) ContextSection() []string {
	var parts []string
	for _, provider := range g.contextProviders {
		info := provider.Info()
		if info == "" {
			continue
		}
		if len(parts) == 0 {
			parts = append(parts, "# EXTRA INFORMATION AND CONTEXT")
		}
		parts = append(parts, fmt.Sprintf("## %s", provider.Title()), info, "")
	}
	return parts
}

// Join trims and joins prompt parts with newlines
func Join(parts []string) string {
	return strings.TrimSpace(strings.Join(parts, "\n"))
}
