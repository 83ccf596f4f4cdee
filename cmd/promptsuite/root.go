package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/K-vino/promptgpt-suite-vmd/agents"
	"github.com/K-vino/promptgpt-suite-vmd/components/llm"
	"github.com/K-vino/promptgpt-suite-vmd/config"
	"github.com/K-vino/promptgpt-suite-vmd/schema"
)

// cli holds the state shared by every command of one invocation
type cli struct {
	configPath string
	apiKey     string
	provider   string
	model      string
	logLevel   string

	// dialer replaces the provider transport, used by tests
	dialer llm.Dialer

	cfg    *config.Config
	logger *zap.Logger
	client *llm.Client
}

// blockedError reports a response withheld by the model service
type blockedError struct {
	feedback string
}

func (e *blockedError) Error() string {
	return "response blocked: " + e.feedback
}

func newRootCmd(dialer llm.Dialer) *cobra.Command {
	c := &cli{dialer: dialer}
	root := &cobra.Command{
		Use:           "promptsuite",
		Short:         "PromptGPT Suite - build, transform and evaluate AI prompts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "path to a YAML config file")
	flags.StringVar(&c.apiKey, "api-key", "", "model service API key (defaults to the provider's environment variable)")
	flags.StringVar(&c.provider, "provider", "", "model provider: gemini, openai or anthropic")
	flags.StringVar(&c.model, "model", "", "model name")
	flags.StringVar(&c.logLevel, "log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(
		c.generateCmd(),
		c.rewriteCmd(),
		c.strategyCmd(),
		c.strategiesCmd(),
		c.formatCmd(),
		c.chatCmd(),
		c.evaluateCmd(),
		c.libraryCmd(),
		c.blocksCmd(),
	)
	return root
}

// setup loads the configuration and applies the flag overrides
func (c *cli) setup() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if c.provider != "" {
		p, err := llm.ParseProvider(c.provider)
		if err != nil {
			return err
		}
		cfg.Provider = p
	}
	if c.model != "" {
		cfg.Model = c.model
	}
	if c.logLevel != "" {
		cfg.Log.Level = strings.ToLower(c.logLevel)
	}
	if c.apiKey != "" {
		cfg.APIKey = c.apiKey
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.logger = logger
	return nil
}

// modelClient builds the llm client on first use
func (c *cli) modelClient() (*llm.Client, error) {
	if c.client != nil {
		return c.client, nil
	}
	opts := append(c.cfg.ClientOptions(), llm.WithLogger(c.logger))
	if c.dialer != nil {
		opts = append(opts, llm.WithDialer(c.dialer))
	}
	clt, err := llm.New(opts...)
	if err != nil {
		return nil, err
	}
	c.client = clt
	return clt, nil
}

// agentOptions returns the options every agent is built with
func (c *cli) agentOptions() ([]agents.Option, error) {
	clt, err := c.modelClient()
	if err != nil {
		return nil, err
	}
	return []agents.Option{
		agents.WithClient(clt),
		agents.WithAPIKey(c.cfg.APIKey),
		agents.WithLogger(c.logger),
	}, nil
}

// explain rewrites model errors into messages for the terminal
func (c *cli) explain(err error) error {
	if errors.Is(err, llm.ErrCredentialMissing) {
		return fmt.Errorf("this command needs an API key: pass --api-key or set %s", config.APIKeyEnv(c.cfg.Provider))
	}
	var te *llm.TransportError
	if errors.As(err, &te) {
		return fmt.Errorf("failed to generate content, please try again or check your API key and inputs: %w", err)
	}
	return err
}

// printResponse writes the text of resp, or its feedback when blocked
func printResponse(w io.Writer, errw io.Writer, resp *schema.ModelResponse) error {
	if resp.Blocked {
		fmt.Fprintln(errw, resp.Feedback)
		return &blockedError{feedback: resp.Feedback}
	}
	fmt.Fprintln(w, resp.Text)
	return nil
}

func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
