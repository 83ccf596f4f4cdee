package agents

import (
	"context"

	"go.uber.org/zap"

	"github.com/K-vino/promptgpt-suite-vmd/components/evaluator"
	"github.com/K-vino/promptgpt-suite-vmd/schema"
)

// Evaluation is the outcome of one prompt evaluation
type Evaluation struct {
	// Assessment is nil when the response was blocked
	Assessment *evaluator.Assessment
	Response   *schema.ModelResponse
}

// Evaluator asks the model to critique a prompt
type Evaluator struct {
	Agent
}

// NewEvaluator returns a new Evaluator
func NewEvaluator(options ...Option) *Evaluator {
	return &Evaluator{Agent: newAgent("Evaluator", options...)}
}

// Evaluate sends the evaluation request for prompt and parses the answer
func (e *Evaluator) Evaluate(ctx context.Context, prompt string) (*Evaluation, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}
	payload, err := evaluator.BuildPrompt(prompt)
	if err != nil {
		return nil, err
	}
	resp, err := e.invoke(ctx, payload)
	if err != nil {
		return nil, err
	}
	ret := &Evaluation{Response: resp}
	if resp.Blocked {
		return ret, nil
	}
	assessment, err := evaluator.Parse(resp.Text)
	if err != nil {
		e.logger.Warn("invalid assessment", zap.Error(err))
		return ret, err
	}
	ret.Assessment = assessment
	return ret, nil
}
