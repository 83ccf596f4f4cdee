package schema

import (
	"errors"
	"fmt"
)

// ErrContentBlocked is returned by ModelResponse.Err when the service returned
// no usable text, typically because of safety filtering
var ErrContentBlocked = errors.New("content blocked")

// Usage token usage reported by the model service
type Usage struct {
	InputTokens  int `json:"input_tokens,omitempty"`
	OutputTokens int `json:"output_tokens,omitempty"`
}

// Merge adds v to u
func (u *Usage) Merge(v *Usage) {
	if v == nil {
		return
	}
	u.InputTokens += v.InputTokens
	u.OutputTokens += v.OutputTokens
}

// ModelResponse is the outcome of one model invocation
type ModelResponse struct {
	// ID identifies the invocation in logs
	ID string `json:"id,omitempty"`
	// Model is the model that served the call
	Model string `json:"model,omitempty"`
	// Text is the generated text, empty when Blocked
	Text string `json:"text,omitempty"`
	// Blocked is set when the call succeeded but produced no usable text
	Blocked bool `json:"blocked,omitempty"`
	// Feedback is the diagnostic attached to a blocked response
	Feedback string `json:"feedback,omitempty"`
	// FinishReason as reported by the service
	FinishReason string `json:"finish_reason,omitempty"`
	// WordCount of Text
	WordCount int `json:"word_count,omitempty"`
	// SentenceCount of Text
	SentenceCount int `json:"sentence_count,omitempty"`
	// CharacterCount of Text in user-perceived characters
	CharacterCount int `json:"character_count,omitempty"`
	// Usage token usage, nil if not reported
	Usage *Usage `json:"usage,omitempty"`
}

// Err returns ErrContentBlocked wrapped with the feedback for blocked responses, nil otherwise
func (r *ModelResponse) Err() error {
	if r == nil || !r.Blocked {
		return nil
	}
	if r.Feedback == "" {
		return ErrContentBlocked
	}
	return fmt.Errorf("%w: %s", ErrContentBlocked, r.Feedback)
}
