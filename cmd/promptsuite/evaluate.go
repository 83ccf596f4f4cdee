package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/K-vino/promptgpt-suite-vmd/agents"
	"github.com/K-vino/promptgpt-suite-vmd/components/evaluator"
)

func (c *cli) evaluateCmd() *cobra.Command {
	var (
		asJSON bool
		dryRun bool
	)
	cmd := &cobra.Command{
		Use:   "evaluate [prompt]",
		Short: "Score a prompt for clarity and hallucination risk",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt := joinArgs(args)
			if dryRun {
				payload, err := evaluator.BuildPrompt(prompt)
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
			ev, err := agents.NewEvaluator(opts...).Evaluate(cmd.Context(), prompt)
			if err != nil {
				return c.explain(err)
			}
			if ev.Assessment == nil {
				return printResponse(cmd.OutOrStdout(), cmd.ErrOrStderr(), ev.Response)
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(ev.Assessment)
			}
			printAssessment(cmd, ev.Assessment)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the assessment as JSON")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the evaluation request instead of sending it")
	return cmd
}

func printAssessment(cmd *cobra.Command, a *evaluator.Assessment) {
	w := cmd.OutOrStdout()
	score := a.ClarityScore
	if a.Scored() {
		score = fmt.Sprintf("%s (grade %s)", a.ClarityScore, a.Grade)
	}
	fmt.Fprintf(w, "%s: %s\n", evaluator.ClarityLabel, score)
	fmt.Fprintf(w, "%s: %s\n", evaluator.FeedbackLabel, a.Feedback)
	risk := a.HallucinationRisk
	if a.RiskReason != "" {
		risk += " - " + a.RiskReason
	}
	fmt.Fprintf(w, "%s: %s\n", evaluator.HallucinationLabel, risk)
	fmt.Fprintf(w, "%s: %s\n", evaluator.SuggestionsLabel, a.Suggestions)
}
