package tools

import "go.uber.org/zap"

type Option func(c *Config)

func WithTitle(title string) Option {
	return func(c *Config) {
		c.SetTitle(title)
	}
}

func WithDescription(desc string) Option {
	return func(c *Config) {
		c.SetDescription(desc)
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Config) {
		c.SetLogger(l)
	}
}
