package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/K-vino/promptgpt-suite-vmd/agents"
	"github.com/K-vino/promptgpt-suite-vmd/schema"
	"github.com/K-vino/promptgpt-suite-vmd/tools"
	"github.com/K-vino/promptgpt-suite-vmd/tools/formatter"
	"github.com/K-vino/promptgpt-suite-vmd/tools/strategy"
)

// exampleSeparator splits an --example flag into input and output
const exampleSeparator = "=>"

func parseExamples(values []string) ([]schema.Example, error) {
	ret := make([]schema.Example, 0, len(values))
	for _, v := range values {
		in, out, ok := strings.Cut(v, exampleSeparator)
		if !ok {
			return nil, fmt.Errorf("example %q must look like 'input %s output'", v, exampleSeparator)
		}
		ret = append(ret, schema.Example{Input: strings.TrimSpace(in), Output: strings.TrimSpace(out)})
	}
	return ret, nil
}

func (c *cli) strategyCmd() *cobra.Command {
	var (
		in       schema.StrategyInputs
		examples []string
		send     bool
	)
	cmd := &cobra.Command{
		Use:   "strategy <strategy> [prompt]",
		Short: "Apply a prompt-engineering strategy to a base prompt",
		Long: `Rewrites a base prompt with one of the strategies listed by "promptsuite strategies".
An unknown strategy leaves the prompt unchanged.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if in.Examples, err = parseExamples(examples); err != nil {
				return err
			}
			tool := strategy.New(tools.WithLogger(c.logger))
			out, err := tool.Run(cmd.Context(), &strategy.Input{
				Prompt:   joinArgs(args[1:]),
				Strategy: args[0],
				Inputs:   in,
			})
			if err != nil {
				return err
			}
			if !out.Applied {
				fmt.Fprintf(cmd.ErrOrStderr(), "unknown strategy %q, prompt unchanged\n", args[0])
			}
			if !send {
				fmt.Fprintln(cmd.OutOrStdout(), out.Prompt)
				return nil
			}
			opts, err := c.agentOptions()
			if err != nil {
				return err
			}
			a := agents.NewPromptGenerator(opts...)
			resp, err := a.Send(cmd.Context(), out.Prompt)
			if err != nil {
				return c.explain(err)
			}
			return printResponse(cmd.OutOrStdout(), cmd.ErrOrStderr(), resp)
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&in.Role, "role", "", "role-play: the role the model assumes")
	fs.StringVar(&in.PersonaDescription, "persona", "", "persona-embedding: the persona description")
	fs.StringVar(&in.SystemInstruction, "system", "", "system-user-assistant: the system instruction")
	fs.StringArrayVar(&in.Constraints, "constraint", nil, "constraint-based: a constraint, repeatable")
	fs.StringArrayVar(&examples, "example", nil, "few-shot: an 'input => output' pair, repeatable")
	fs.BoolVar(&send, "send", false, "send the transformed prompt to the model")
	return cmd
}

func (c *cli) strategiesCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "strategies",
		Short: "List the prompt-engineering strategies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, rule := range strategy.Rules() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", rule.Key, rule.Name, rule.Description)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			if verbose {
				for _, rule := range strategy.Rules() {
					fmt.Fprintf(cmd.OutOrStdout(), "\n## %s\n%s\n", rule.Name, rule.Template)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "also print each template")
	return cmd
}

func (c *cli) formatCmd() *cobra.Command {
	var (
		format       string
		commentStyle string
	)
	cmd := &cobra.Command{
		Use:   "format [prompt]",
		Short: "Format a prompt for a target platform",
		Long:  "Formats: " + formatList(),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tool := formatter.New(tools.WithLogger(c.logger))
			out, err := tool.Run(cmd.Context(), &formatter.Input{
				Prompt:       joinArgs(args),
				Format:       format,
				CommentStyle: commentStyle,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.Text)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(formatter.Plaintext), "target format")
	cmd.Flags().StringVar(&commentStyle, "comment-style", "#", "comment prefix for the code-comment format: "+strings.Join(formatter.CommentStyles, " "))
	return cmd
}

func formatList() string {
	names := make([]string, 0, len(formatter.Formats))
	for _, f := range formatter.Formats {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}
