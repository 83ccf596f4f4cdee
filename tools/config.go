package tools

import "go.uber.org/zap"

// Config class for the deterministic prompt tools
type Config struct {
	// title the default title of the tool
	title string
	// description the default description of the tool
	description string
	// logger receives tool diagnostics
	logger *zap.Logger
}

func (c *Config) SetTitle(v string) {
	c.title = v
}

func (c Config) Title() string {
	return c.title
}

func (c *Config) SetDescription(v string) {
	c.description = v
}

func (c Config) Description() string {
	return c.description
}

func (c *Config) SetLogger(l *zap.Logger) {
	c.logger = l
}

// Logger returns the tool logger, a no-op logger if none was set
func (c Config) Logger() *zap.Logger {
	if c.logger == nil {
		return zap.NewNop()
	}
	return c.logger
}
