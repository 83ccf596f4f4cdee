package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/K-vino/promptgpt-suite-vmd/agents"
	"github.com/K-vino/promptgpt-suite-vmd/components/systemprompt/metaprompt"
	"github.com/K-vino/promptgpt-suite-vmd/schema"
)

type requestFlags struct {
	tone       string
	format     string
	words      int
	complexity string
	dryRun     bool
	stats      bool
}

func (f *requestFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.tone, "tone", schema.DefaultTone, "desired tone of the model's response")
	fs.StringVar(&f.format, "format", schema.DefaultFormat, "desired output format of the model's response")
	fs.IntVar(&f.words, "words", schema.DefaultWordLimit, fmt.Sprintf("approximate word limit (%d-%d)", schema.MinWordLimit, schema.MaxWordLimit))
	fs.StringVar(&f.complexity, "complexity", schema.DefaultComplexity, "complexity level of the engineered prompt")
	fs.BoolVar(&f.dryRun, "dry-run", false, "print the meta-prompt instead of sending it")
	fs.BoolVar(&f.stats, "stats", false, "print word, sentence and character counts of the result to stderr")
}

func (f *requestFlags) request(task string) schema.GenerationRequest {
	return schema.GenerationRequest{
		Task:       task,
		Tone:       f.tone,
		Format:     f.format,
		WordLimit:  f.words,
		Complexity: f.complexity,
	}
}

func (f *requestFlags) print(cmd *cobra.Command, resp *schema.ModelResponse) error {
	if err := printResponse(cmd.OutOrStdout(), cmd.ErrOrStderr(), resp); err != nil {
		return err
	}
	if f.stats {
		fmt.Fprintf(cmd.ErrOrStderr(), "Words: %d | Sentences: %d | Characters: %d\n",
			resp.WordCount, resp.SentenceCount, resp.CharacterCount)
	}
	return nil
}

func (c *cli) generateCmd() *cobra.Command {
	var flags requestFlags
	cmd := &cobra.Command{
		Use:   "generate [task]",
		Short: "Engineer a prompt for a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := flags.request(joinArgs(args))
			if flags.dryRun {
				payload, err := metaprompt.Build(req)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), payload)
				return nil
			}
			opts, err := c.agentOptions()
			if err != nil {
				return err
			}
			resp, err := agents.NewPromptGenerator(opts...).Generate(cmd.Context(), req)
			if err != nil {
				return c.explain(err)
			}
			return flags.print(cmd, resp)
		},
	}
	flags.register(cmd.Flags())
	return cmd
}

func (c *cli) rewriteCmd() *cobra.Command {
	var (
		flags       requestFlags
		instruction string
	)
	cmd := &cobra.Command{
		Use:   "rewrite [prompt]",
		Short: "Rewrite an existing prompt following an instruction",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			previous := joinArgs(args)
			if flags.dryRun {
				if instruction == "" {
					return agents.ErrEmptyInstruction
				}
				req := flags.request(previous)
				req.RewriteInstruction = instruction
				payload, err := metaprompt.Build(req)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), payload)
				return nil
			}
			opts, err := c.agentOptions()
			if err != nil {
				return err
			}
			g := agents.NewPromptGenerator(opts...)
			resp, err := g.Rewrite(cmd.Context(), flags.request(previous), previous, instruction)
			if err != nil {
				return c.explain(err)
			}
			return flags.print(cmd, resp)
		},
	}
	flags.register(cmd.Flags())
	cmd.Flags().StringVarP(&instruction, "instruction", "i", "", "how to rewrite the prompt")
	return cmd
}
