// Package config loads the suite configuration from YAML and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/K-vino/promptgpt-suite-vmd/components/llm"
)

// Environment variables read by Load
const (
	EnvProvider = "PROMPTGPT_PROVIDER"
	EnvModel    = "PROMPTGPT_MODEL"
	EnvLogLevel = "PROMPTGPT_LOG_LEVEL"
	EnvBaseURL  = "PROMPTGPT_BASE_URL"
)

// apiKeyEnv maps each provider to the variable holding its credential
var apiKeyEnv = map[llm.Provider]string{
	llm.ProviderGemini:    "GEMINI_API_KEY",
	llm.ProviderOpenAI:    "OPENAI_API_KEY",
	llm.ProviderAnthropic: "ANTHROPIC_API_KEY",
}

// APIKeyEnv returns the environment variable holding the credential of p
func APIKeyEnv(p llm.Provider) string {
	return apiKeyEnv[p]
}

// Config is the suite configuration
type Config struct {
	Provider   llm.Provider         `yaml:"provider" validate:"oneof=gemini openai anthropic"`
	Model      string               `yaml:"model" validate:"required"`
	APIKey     string               `yaml:"api_key,omitempty"`
	BaseURL    string               `yaml:"base_url,omitempty" validate:"omitempty,url"`
	Generation llm.GenerationConfig `yaml:"generation"`
	Safety     []llm.SafetySetting  `yaml:"safety" validate:"dive"`
	RateLimit  RateLimitConfig      `yaml:"rate_limit"`
	Chat       ChatConfig           `yaml:"chat"`
	Log        LogConfig            `yaml:"log"`
}

// RateLimitConfig configures the client token bucket; zero disables it
type RateLimitConfig struct {
	PerSecond float64 `yaml:"per_second" validate:"gte=0"`
	Burst     int     `yaml:"burst" validate:"gte=0"`
}

// ChatConfig configures the chat studio
type ChatConfig struct {
	// MaxMessages bounds the remembered history, zero keeps everything
	MaxMessages int `yaml:"max_messages" validate:"gte=0"`
}

// LogConfig configures the zap logger
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=json console"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Provider:   llm.ProviderGemini,
		Model:      llm.DefaultModel,
		Generation: llm.DefaultGenerationConfig(),
		Safety:     llm.DefaultSafetySettings(),
		Chat:       ChatConfig{MaxMessages: 50},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads path over the defaults, then applies environment overrides.
// An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}
	if p, err := llm.ParseProvider(string(cfg.Provider)); err == nil {
		cfg.Provider = p
	}
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to path, without the API key
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	out := *c
	out.APIKey = ""
	data, err := yaml.Marshal(&out)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvProvider); v != "" {
		p, err := llm.ParseProvider(v)
		if err != nil {
			return err
		}
		c.Provider = p
	}
	if v := os.Getenv(EnvModel); v != "" {
		c.Model = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = strings.ToLower(v)
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		c.BaseURL = v
	}
	if env := APIKeyEnv(c.Provider); env != "" {
		if key := os.Getenv(env); key != "" {
			c.APIKey = key
		}
	}
	return nil
}

// Validate checks the configuration
func (c *Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// ClientOptions maps the configuration to llm client options
func (c *Config) ClientOptions() []llm.Option {
	opts := []llm.Option{
		llm.WithProvider(c.Provider),
		llm.WithModel(c.Model),
		llm.WithGeneration(c.Generation),
		llm.WithSafety(c.Safety),
	}
	if c.BaseURL != "" {
		opts = append(opts, llm.WithBaseURL(c.BaseURL))
	}
	if c.RateLimit.PerSecond > 0 {
		opts = append(opts, llm.WithRateLimit(c.RateLimit.PerSecond, c.RateLimit.Burst))
	}
	return opts
}
