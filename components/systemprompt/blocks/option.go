package blocks

import "github.com/K-vino/promptgpt-suite-vmd/components/systemprompt"

type Option = func(g *Generator)

// WithBlocks appends blocks to the Generator selection
func WithBlocks(blocks ...Block) Option {
	return func(g *Generator) {
		g.blocks = append(g.blocks, blocks...)
	}
}

// WithData set Generator block data
func WithData(data Data) Option {
	return func(g *Generator) {
		g.data = data
	}
}

// WithContextProviders set Generator context pproviders
func WithContextProviders(providers ...systemprompt.ContextProvider) Option {
	return func(g *Generator) {
		g.AddContextProviders(providers...)
	}
}
