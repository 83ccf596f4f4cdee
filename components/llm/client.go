package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/K-vino/promptgpt-suite-vmd/components"
	"github.com/K-vino/promptgpt-suite-vmd/schema"
)

const maxLoggedPayload = 500

// Client invokes a hosted generative model and normalizes the result shape
type Client struct {
	provider   Provider
	model      string
	endpoint   Endpoint
	dialer     Dialer
	factory    *Factory
	generation GenerationConfig
	safety     []SafetySetting
	limiter    *rate.Limiter
	logger     *zap.Logger
	stats      clientStats
}

type clientStats struct {
	calls       atomic.Int64
	blocked     atomic.Int64
	failures    atomic.Int64
	credentials atomic.Int64
}

// Stats counts the outcomes of Generate calls
type Stats struct {
	Calls             int64 `json:"calls"`
	Blocked           int64 `json:"blocked"`
	Failures          int64 `json:"failures"`
	MissingCredential int64 `json:"missing_credential"`
}

// New returns a Client. Without options it targets Gemini with the default model,
// sampling parameters and safety thresholds.
func New(opts ...Option) (*Client, error) {
	ret := &Client{
		provider:   ProviderGemini,
		model:      DefaultModel,
		generation: DefaultGenerationConfig(),
		safety:     DefaultSafetySettings(),
	}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.logger == nil {
		ret.logger = zap.NewNop()
	}
	if ret.dialer == nil {
		dialer, err := DialerFor(ret.provider, ret.endpoint)
		if err != nil {
			return nil, err
		}
		ret.dialer = dialer
	}
	ret.factory = NewFactory(ret.dialer)
	return ret, nil
}

func (c *Client) Provider() Provider {
	return c.provider
}

func (c *Client) Model() string {
	return c.model
}

// Factory returns the memoizing handle factory
func (c *Client) Factory() *Factory {
	return c.factory
}

// Stats returns a snapshot of the call counters
func (c *Client) Stats() Stats {
	return Stats{
		Calls:             c.stats.calls.Load(),
		Blocked:           c.stats.blocked.Load(),
		Failures:          c.stats.failures.Load(),
		MissingCredential: c.stats.credentials.Load(),
	}
}

// Generate sends payload to the model.
//
// A blank apiKey returns ErrCredentialMissing without dialing. Dial and call
// failures are returned as *TransportError and never retried. A successful call
// that yields no text returns a Blocked response and a nil error.
func (c *Client) Generate(ctx context.Context, apiKey string, payload string, opts ...CallOption) (*schema.ModelResponse, error) {
	c.stats.calls.Inc()
	if strings.TrimSpace(apiKey) == "" {
		c.stats.credentials.Inc()
		return nil, ErrCredentialMissing
	}
	req := &Request{
		Model:      c.model,
		Payload:    payload,
		Generation: c.generation,
		Safety:     c.safety,
	}
	for _, opt := range opts {
		opt(req)
	}
	id := uuid.NewString()
	logger := c.logger.With(
		zap.String("id", id),
		zap.String("provider", string(c.provider)),
		zap.String("model", req.Model),
	)
	logger.Debug("generate", zap.String("payload", truncate(payload, maxLoggedPayload)), zap.Int("history", len(req.History)))
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, c.transportError(logger, req.Model, err)
		}
	}
	transport, err := c.factory.Get(ctx, apiKey, req.Model)
	if err != nil {
		return nil, c.transportError(logger, req.Model, err)
	}
	reply, err := c.call(ctx, transport, req)
	if err != nil {
		return nil, c.transportError(logger, req.Model, err)
	}
	resp := &schema.ModelResponse{
		ID:           id,
		Model:        req.Model,
		FinishReason: reply.FinishReason,
		Usage:        reply.Usage,
	}
	if reply.Model != "" {
		resp.Model = reply.Model
	}
	if strings.TrimSpace(reply.Text) == "" {
		c.stats.blocked.Inc()
		resp.Blocked = true
		resp.Feedback = feedback(reply)
		logger.Warn("empty response", zap.String("feedback", resp.Feedback))
		return resp, nil
	}
	resp.Text = reply.Text
	stats := components.Stats(reply.Text)
	resp.WordCount = stats.Words
	resp.SentenceCount = stats.Sentences
	resp.CharacterCount = stats.Characters
	logger.Info("generated", zap.Int("words", resp.WordCount), zap.String("finish_reason", reply.FinishReason))
	return resp, nil
}

// call converts a transport panic into an error so nothing escapes the client
func (c *Client) call(ctx context.Context, t Transport, req *Request) (reply *Reply, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &panicError{value: r}
		}
	}()
	reply, err = t.Generate(ctx, req)
	if err == nil && reply == nil {
		reply = new(Reply)
	}
	return reply, err
}

func (c *Client) transportError(logger *zap.Logger, model string, err error) error {
	c.stats.failures.Inc()
	logger.Error("model call failed", zap.Error(err))
	return &TransportError{Provider: c.provider, Model: model, Err: err}
}

func feedback(r *Reply) string {
	parts := []string{"No text content in response."}
	if r.BlockReason != "" {
		fb := "Prompt feedback: " + r.BlockReason
		if r.BlockMessage != "" {
			fb += " (" + r.BlockMessage + ")"
		}
		parts = append(parts, fb+".")
	}
	if r.FinishReason != "" {
		parts = append(parts, "Finish reason: "+r.FinishReason+".")
	}
	if r.Candidates == 0 {
		parts = append(parts, "No candidates generated (potentially blocked by safety settings).")
	}
	return strings.Join(parts, " ")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

type panicError struct {
	value any
}

func (e *panicError) Error() string {
	return fmt.Sprintf("transport panic: %v", e.value)
}
