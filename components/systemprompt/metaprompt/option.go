package metaprompt

import "github.com/K-vino/promptgpt-suite-vmd/components/systemprompt"

type Option = func(g *Generator)

// WithPreamble replaces the default prompt engineer preamble
func WithPreamble(preamble string) Option {
	return func(g *Generator) {
		g.preamble = preamble
	}
}

// WithContextProviders set Generator context providers
func WithContextProviders(providers ...systemprompt.ContextProvider) Option {
	return func(g *Generator) {
		g.AddContextProviders(providers...)
	}
}
