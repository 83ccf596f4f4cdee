package strategy

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/K-vino/promptgpt-suite-vmd/schema"
	"github.com/K-vino/promptgpt-suite-vmd/tools"
)

// ErrEmptyPrompt is returned when the base prompt is blank
var ErrEmptyPrompt = errors.New("base prompt must not be empty")

// Input of the strategy tool
type Input struct {
	// Prompt the base prompt to transform
	Prompt string `json:"prompt"`
	// Strategy the strategy key or display name
	Strategy string `json:"strategy"`
	// Inputs auxiliary fields of the strategy
	Inputs schema.StrategyInputs `json:"inputs,omitempty"`
}

func NewInput(prompt string, strategy schema.Strategy, in schema.StrategyInputs) *Input {
	return &Input{
		Prompt:   prompt,
		Strategy: strategy.String(),
		Inputs:   in,
	}
}

func (s Input) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

// Output of the strategy tool
type Output struct {
	// Prompt the transformed prompt
	Prompt string `json:"prompt"`
	// Strategy the resolved strategy
	Strategy schema.Strategy `json:"strategy"`
	// Applied is false when the strategy is unknown and the prompt passed through
	Applied bool `json:"applied"`
}

func (s Output) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

// Tool applies a prompt-engineering strategy to a base prompt
type Tool struct {
	tools.Config
}

var _ tools.Tool[Input, Output] = (*Tool)(nil)

func New(opts ...tools.Option) *Tool {
	ret := new(Tool)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Title() == "" {
		ret.SetTitle("PromptStrategyTool")
	}
	if ret.Description() == "" {
		ret.SetDescription("Rewrites a base prompt with a prompt-engineering strategy")
	}
	return ret
}

// Run validates the input and applies the strategy
func (t *Tool) Run(_ context.Context, input *Input) (*Output, error) {
	if input == nil || strings.TrimSpace(input.Prompt) == "" {
		return nil, ErrEmptyPrompt
	}
	key := schema.ParseStrategy(input.Strategy)
	out := &Output{Strategy: key, Applied: key.Known()}
	if !out.Applied {
		t.Logger().Warn("unknown strategy, prompt unchanged", zap.String("strategy", input.Strategy))
	}
	out.Prompt = Apply(input.Prompt, key, input.Inputs)
	return out, nil
}
