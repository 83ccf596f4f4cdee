package agents

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/K-vino/promptgpt-suite-vmd/components/llm"
	"github.com/K-vino/promptgpt-suite-vmd/schema"
)

var (
	// ErrNoClient is returned when an agent has no model client configured
	ErrNoClient = errors.New("agent has no model client")
	// ErrEmptyPrompt is returned when there is no prompt to send
	ErrEmptyPrompt = errors.New("prompt is empty")
)

type IAgent interface {
	Name() string
}

// ModelClient sends one payload to the model. *llm.Client implements it.
type ModelClient interface {
	Generate(ctx context.Context, apiKey string, payload string, opts ...llm.CallOption) (*schema.ModelResponse, error)
}

var _ ModelClient = (*llm.Client)(nil)

// Config represents general agents configuration
type Config struct {
	// client Client for interacting with the language model
	client ModelClient
	// apiKey credential passed to the client on every call
	apiKey string
	// logger structured logger, nop by default
	logger *zap.Logger
	// name is Agent name presentation
	name string
	// callOptions are applied to every call before per-call options
	callOptions []llm.CallOption
	startHook   func(ctx context.Context, name string, payload string)
	endHook     func(ctx context.Context, name string, payload string, resp *schema.ModelResponse)
	errorHook   func(ctx context.Context, name string, payload string, err error)
}

// Agent holds the model client and hooks shared by every agent
type Agent struct {
	Config
}

var _ IAgent = (*Agent)(nil)

func newAgent(name string, options ...Option) Agent {
	ret := Agent{Config: Config{name: name}}
	for _, opt := range options {
		opt(&ret.Config)
	}
	if ret.logger == nil {
		ret.logger = zap.NewNop()
	}
	ret.logger = ret.logger.With(zap.String("agent", ret.name))
	return ret
}

func (a Agent) Name() string {
	return a.name
}

func (a *Agent) SetName(name string) {
	a.name = name
}

func (a *Agent) SetClient(clt ModelClient) {
	a.client = clt
}

// SetAPIKey replaces the credential used by later calls
func (a *Agent) SetAPIKey(key string) {
	a.apiKey = strings.TrimSpace(key)
}

func (a *Agent) SetStartHook(fn func(ctx context.Context, name string, payload string)) {
	a.startHook = fn
}

func (a *Agent) SetEndHook(fn func(ctx context.Context, name string, payload string, resp *schema.ModelResponse)) {
	a.endHook = fn
}

func (a *Agent) SetErrorHook(fn func(ctx context.Context, name string, payload string, err error)) {
	a.errorHook = fn
}

func (a *Agent) Logger() *zap.Logger {
	return a.logger
}

// ready returns ErrNoClient or llm.ErrCredentialMissing when no call can be
// made. Agents check it before validating input or building a payload.
func (a *Agent) ready() error {
	if a.client == nil {
		return ErrNoClient
	}
	if strings.TrimSpace(a.apiKey) == "" {
		a.logger.Warn("missing api key")
		return llm.ErrCredentialMissing
	}
	return nil
}

// invoke sends payload through the client, running the hooks around the call
func (a *Agent) invoke(ctx context.Context, payload string, opts ...llm.CallOption) (*schema.ModelResponse, error) {
	if a.client == nil {
		return nil, ErrNoClient
	}
	if fn := a.startHook; fn != nil {
		fn(ctx, a.name, payload)
	}
	callOpts := make([]llm.CallOption, 0, len(a.callOptions)+len(opts))
	callOpts = append(callOpts, a.callOptions...)
	callOpts = append(callOpts, opts...)
	resp, err := a.client.Generate(ctx, a.apiKey, payload, callOpts...)
	if err != nil {
		a.logger.Error("generate failed", zap.Error(err))
		if fn := a.errorHook; fn != nil {
			fn(ctx, a.name, payload, err)
		}
		return nil, err
	}
	if resp.Blocked {
		a.logger.Warn("response blocked", zap.String("feedback", resp.Feedback))
	}
	if fn := a.endHook; fn != nil {
		fn(ctx, a.name, payload, resp)
	}
	return resp, nil
}

// Send forwards prompt to the model unchanged
func (a *Agent) Send(ctx context.Context, prompt string, opts ...llm.CallOption) (*schema.ModelResponse, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, ErrEmptyPrompt
	}
	return a.invoke(ctx, prompt, opts...)
}
