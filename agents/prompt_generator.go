package agents

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/K-vino/promptgpt-suite-vmd/components/systemprompt"
	"github.com/K-vino/promptgpt-suite-vmd/components/systemprompt/metaprompt"
	"github.com/K-vino/promptgpt-suite-vmd/schema"
	"github.com/K-vino/promptgpt-suite-vmd/tools"
	"github.com/K-vino/promptgpt-suite-vmd/tools/strategy"
)

var (
	// ErrEmptyInstruction is returned by Rewrite without a rewrite instruction
	ErrEmptyInstruction = errors.New("rewrite instruction is empty")
	// ErrNothingToRewrite is returned by Rewrite when no previous prompt exists
	ErrNothingToRewrite = errors.New("no previous prompt to rewrite")
)

// PromptGenerator turns generation requests into engineered prompts.
// It remembers the last generated prompt so it can be rewritten.
type PromptGenerator struct {
	Agent
	providers []systemprompt.ContextProvider
	mtx       sync.RWMutex
	last      string
}

// NewPromptGenerator returns a new PromptGenerator
func NewPromptGenerator(options ...Option) *PromptGenerator {
	return &PromptGenerator{Agent: newAgent("PromptGenerator", options...)}
}

// RegisterContextProvider adds extra context to every meta-prompt
func (g *PromptGenerator) RegisterContextProvider(providers ...systemprompt.ContextProvider) {
	g.providers = append(g.providers, providers...)
}

// Last returns the most recently generated prompt
func (g *PromptGenerator) Last() string {
	g.mtx.RLock()
	defer g.mtx.RUnlock()
	return g.last
}

// SetLast replaces the prompt Rewrite falls back to
func (g *PromptGenerator) SetLast(prompt string) {
	g.mtx.Lock()
	g.last = prompt
	g.mtx.Unlock()
}

// Generate builds the meta-prompt for req and sends it to the model.
// A missing credential is reported before the request is validated.
func (g *PromptGenerator) Generate(ctx context.Context, req schema.GenerationRequest) (*schema.ModelResponse, error) {
	if err := g.ready(); err != nil {
		return nil, err
	}
	req.RewriteInstruction = ""
	return g.run(ctx, req)
}

// Rewrite asks the model to rewrite previous following instruction.
// An empty previous falls back to the last generated prompt.
func (g *PromptGenerator) Rewrite(ctx context.Context, req schema.GenerationRequest, previous string, instruction string) (*schema.ModelResponse, error) {
	if err := g.ready(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(instruction) == "" {
		return nil, ErrEmptyInstruction
	}
	if strings.TrimSpace(previous) == "" {
		previous = g.Last()
	}
	if strings.TrimSpace(previous) == "" {
		return nil, ErrNothingToRewrite
	}
	req.Task = previous
	req.RewriteInstruction = instruction
	return g.run(ctx, req)
}

// ApplyStrategy transforms the last generated prompt with a prompt-engineering strategy
func (g *PromptGenerator) ApplyStrategy(ctx context.Context, key schema.Strategy, in schema.StrategyInputs) (*strategy.Output, error) {
	tool := strategy.New(tools.WithLogger(g.logger))
	return tool.Run(ctx, strategy.NewInput(g.Last(), key, in))
}

func (g *PromptGenerator) run(ctx context.Context, req schema.GenerationRequest) (*schema.ModelResponse, error) {
	payload, err := metaprompt.Build(req, metaprompt.WithContextProviders(g.providers...))
	if err != nil {
		return nil, err
	}
	resp, err := g.invoke(ctx, payload)
	if err != nil {
		return nil, err
	}
	if !resp.Blocked {
		g.SetLast(resp.Text)
	}
	return resp, nil
}
