package agents

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/K-vino/promptgpt-suite-vmd/components/llm"
	"github.com/K-vino/promptgpt-suite-vmd/schema"
)

type Option func(c *Config)

func WithClient(clt ModelClient) Option {
	return func(c *Config) {
		c.client = clt
	}
}

// WithAPIKey set the credential passed to the client
func WithAPIKey(key string) Option {
	return func(c *Config) {
		c.apiKey = strings.TrimSpace(key)
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Config) {
		c.logger = l
	}
}

func WithName(name string) Option {
	return func(c *Config) {
		c.name = name
	}
}

// WithCallOptions set call options applied to every model call
func WithCallOptions(opts ...llm.CallOption) Option {
	return func(c *Config) {
		c.callOptions = append(c.callOptions, opts...)
	}
}

func WithStartHook(fn func(ctx context.Context, name string, payload string)) Option {
	return func(c *Config) {
		c.startHook = fn
	}
}

func WithEndHook(fn func(ctx context.Context, name string, payload string, resp *schema.ModelResponse)) Option {
	return func(c *Config) {
		c.endHook = fn
	}
}

func WithErrorHook(fn func(ctx context.Context, name string, payload string, err error)) Option {
	return func(c *Config) {
		c.errorHook = fn
	}
}
