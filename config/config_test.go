package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/K-vino/promptgpt-suite-vmd/components/llm"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvProvider, EnvModel, EnvLogLevel, EnvBaseURL, "GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY"} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "promptgpt.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, llm.ProviderGemini, cfg.Provider)
	assert.Equal(t, "gemini-pro", cfg.Model)
	assert.Equal(t, float32(0.7), cfg.Generation.Temperature)
	assert.Equal(t, 1500, cfg.Generation.MaxOutputTokens)
	assert.Len(t, cfg.Safety, 4)
	assert.Len(t, cfg.ClientOptions(), 4)
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
provider: claude
model: claude-3-5-haiku-latest
api_key: from-file
generation:
  temperature: 0.2
  top_p: 0.9
  top_k: 0
  max_output_tokens: 800
rate_limit:
  per_second: 2
  burst: 4
log:
  level: debug
  format: json
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, llm.ProviderAnthropic, cfg.Provider)
	assert.Equal(t, "claude-3-5-haiku-latest", cfg.Model)
	assert.Equal(t, "from-file", cfg.APIKey)
	assert.Equal(t, 800, cfg.Generation.MaxOutputTokens)
	assert.Len(t, cfg.Safety, 4, "unset safety keeps defaults")
	assert.Equal(t, 50, cfg.Chat.MaxMessages)
	assert.Len(t, cfg.ClientOptions(), 5)
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "provider: gemini\napi_key: from-file\n")
	t.Setenv(EnvProvider, "openai")
	t.Setenv(EnvModel, "gpt-4o-mini")
	t.Setenv(EnvLogLevel, "WARN")
	t.Setenv("OPENAI_API_KEY", "from-env")
	t.Setenv("GEMINI_API_KEY", "ignored")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, llm.ProviderOpenAI, cfg.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "from-env", cfg.APIKey)
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)
	_, err := Load(writeConfig(t, "provider: [gemini"))
	assert.Error(t, err)

	t.Setenv(EnvProvider, "watsonx")
	_, err = Load("")
	assert.ErrorIs(t, err, llm.ErrUnknownProvider)
}

func TestValidate(t *testing.T) {
	for _, tc := range []struct {
		name   string
		mutate func(c *Config)
	}{
		{"provider", func(c *Config) { c.Provider = "watsonx" }},
		{"model", func(c *Config) { c.Model = "" }},
		{"base url", func(c *Config) { c.BaseURL = "not a url" }},
		{"temperature", func(c *Config) { c.Generation.Temperature = 3 }},
		{"max tokens", func(c *Config) { c.Generation.MaxOutputTokens = 0 }},
		{"safety", func(c *Config) { c.Safety = []llm.SafetySetting{{Category: "HARM_CATEGORY_HARASSMENT"}} }},
		{"log level", func(c *Config) { c.Log.Level = "verbose" }},
		{"rate limit", func(c *Config) { c.RateLimit.PerSecond = -1 }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestSave(t *testing.T) {
	clearEnv(t)
	cfg := Default()
	cfg.APIKey = "secret"
	cfg.Model = "gemini-1.5-flash"
	path := filepath.Join(t.TempDir(), "nested", "promptgpt.yaml")
	require.NoError(t, cfg.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret")

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "gemini-1.5-flash", loaded.Model)
	assert.Empty(t, loaded.APIKey)
}

func TestNewLogger(t *testing.T) {
	l, err := NewLogger(LogConfig{Level: "debug", Format: "json"})
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(-1))

	l, err = NewLogger(LogConfig{Level: "warn", Format: "console"})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(0))

	_, err = NewLogger(LogConfig{Level: "loud"})
	assert.Error(t, err)
}
