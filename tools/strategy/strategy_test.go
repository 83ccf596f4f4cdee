package strategy

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/K-vino/promptgpt-suite-vmd/schema"
)

const base = "Summarize this."

func TestApplyUnknownStrategy(t *testing.T) {
	for _, key := range []schema.Strategy{"unknown-strategy", "", "ZERO-SHOT"} {
		if got := Apply(base, key, schema.StrategyInputs{}); got != base {
			t.Errorf("Apply(%q) = %q, want base unchanged", key, got)
		}
	}
}

func TestApplyChainOfThought(t *testing.T) {
	got := Apply(base, schema.ChainOfThought, schema.StrategyInputs{})
	if !strings.HasPrefix(got, chainOfThoughtInstruction) {
		t.Fatalf("chain-of-thought prompt does not start with the instruction:\n%s", got)
	}
	if !strings.HasSuffix(got, "\n\n"+base) {
		t.Errorf("chain-of-thought prompt does not end with the base after a blank line:\n%s", got)
	}
}

func TestApplyZeroShot(t *testing.T) {
	want := zeroShotInstruction + "\n\n" + base
	if got := Apply(base, schema.ZeroShot, schema.StrategyInputs{}); got != want {
		t.Errorf("zero-shot got %q, want %q", got, want)
	}
}

func TestApplyFewShot(t *testing.T) {
	in := schema.StrategyInputs{Examples: []schema.Example{
		{Input: "A", Output: "B"},
		{Input: "C", Output: "D"},
	}}
	got := Apply(base, schema.FewShot, in)
	first := strings.Index(got, "Input 1: A\nOutput 1: B")
	second := strings.Index(got, "Input 2: C\nOutput 2: D")
	turn := strings.Index(got, YourTurnMarker+"\n"+base)
	if first < 0 || second < 0 || turn < 0 {
		t.Fatalf("few-shot prompt missing pairs or turn marker:\n%s", got)
	}
	if !(first < second && second < turn) {
		t.Errorf("few-shot sections out of order:\n%s", got)
	}
}

func TestApplyFewShotNoExamples(t *testing.T) {
	got := Apply(base, schema.FewShot, schema.StrategyInputs{})
	if strings.Contains(got, "Input 1:") {
		t.Errorf("few-shot without examples rendered a pair:\n%s", got)
	}
	for _, want := range []string{ExamplesHeading, YourTurnMarker, base} {
		if !strings.Contains(got, want) {
			t.Errorf("few-shot without examples missing %q", want)
		}
	}
}

func TestApplyConstraintBased(t *testing.T) {
	tests := []struct {
		name        string
		constraints []string
		want        string
	}{
		{"two constraints", []string{"Max 100 words", "No jargon"}, "- Max 100 words\n- No jargon\n"},
		{"blank entries skipped", []string{"  Max 100 words ", "", "   ", "No jargon"}, "- Max 100 words\n- No jargon\n"},
		{"none", nil, EmptyConstraintsBullet + "\n"},
		{"only blanks", []string{" ", ""}, EmptyConstraintsBullet + "\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(base, schema.ConstraintBased, schema.StrategyInputs{Constraints: tt.constraints})
			if !strings.Contains(got, tt.want) {
				t.Errorf("constraint block %q not found in:\n%s", tt.want, got)
			}
			if strings.Contains(got, ConstraintsMarker) {
				t.Error("constraints marker left in output")
			}
			if !strings.HasSuffix(got, "\n\n"+base) {
				t.Errorf("base not appended:\n%s", got)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	tests := []struct {
		key  schema.Strategy
		in   schema.StrategyInputs
		want string
	}{
		{schema.RolePlay, schema.StrategyInputs{}, "You are a " + DefaultRole + "."},
		{schema.RolePlay, schema.StrategyInputs{Role: "Travel Agent"}, "You are a Travel Agent."},
		{schema.PersonaEmbedding, schema.StrategyInputs{}, "persona of a " + DefaultPersona + "."},
		{schema.PersonaEmbedding, schema.StrategyInputs{PersonaDescription: "witty pirate"}, "persona of a witty pirate."},
		{schema.SystemUserAssistant, schema.StrategyInputs{}, "**System:** " + DefaultSystemInstruction},
		{schema.SystemUserAssistant, schema.StrategyInputs{SystemInstruction: "Be terse."}, "**System:** Be terse."},
	}
	for _, tt := range tests {
		got := Apply(base, tt.key, tt.in)
		if !strings.Contains(got, tt.want) {
			t.Errorf("%s: %q not found in:\n%s", tt.key, tt.want, got)
		}
		if !strings.Contains(got, base) {
			t.Errorf("%s: base missing from:\n%s", tt.key, got)
		}
	}
}

func TestApplySystemUserAssistant(t *testing.T) {
	got := Apply(base, schema.SystemUserAssistant, schema.StrategyInputs{})
	for _, want := range []string{"**User:** " + base, "**Assistant:** " + AssistantPlaceholder} {
		if !strings.Contains(got, want) {
			t.Errorf("multi-role prompt missing %q:\n%s", want, got)
		}
	}
}

func TestApplyLiteralReplacement(t *testing.T) {
	// a base containing a marker must not be substituted again
	got := Apply("Explain [ROLE] tokens.", schema.RolePlay, schema.StrategyInputs{Role: "teacher"})
	if !strings.HasSuffix(got, "Explain [ROLE] tokens.") {
		t.Errorf("base was rewritten:\n%s", got)
	}
}

func TestRules(t *testing.T) {
	got := Rules()
	if len(got) != len(schema.Strategies) {
		t.Fatalf("expect %d rules, got %d", len(schema.Strategies), len(got))
	}
	for i, r := range got {
		if r.Key != schema.Strategies[i] {
			t.Errorf("rule %d key %s, want %s", i, r.Key, schema.Strategies[i])
		}
		if r.Description == "" || r.Template == "" {
			t.Errorf("rule %s has empty description or template", r.Key)
		}
	}
	got[0].Template = "mutated"
	if r, _ := Rule(schema.ZeroShot); r.Template == "mutated" {
		t.Error("Rules exposed the static table")
	}
}

func TestToolRun(t *testing.T) {
	tool := New()
	ctx := context.Background()
	if _, err := tool.Run(ctx, NewInput("  ", schema.ZeroShot, schema.StrategyInputs{})); !errors.Is(err, ErrEmptyPrompt) {
		t.Fatalf("expect ErrEmptyPrompt, got %v", err)
	}
	out, err := tool.Run(ctx, &Input{Prompt: base, Strategy: "Chain-of-thought (CoT)"})
	if err != nil {
		t.Fatal(err)
	}
	if !out.Applied || out.Strategy != schema.ChainOfThought {
		t.Errorf("display name not resolved: %s", out)
	}
	out, err = tool.Run(ctx, &Input{Prompt: base, Strategy: "telepathy"})
	if err != nil {
		t.Fatal(err)
	}
	if out.Applied || out.Prompt != base {
		t.Errorf("unknown strategy changed the prompt: %s", out)
	}
	if tool.Title() != "PromptStrategyTool" {
		t.Errorf("unexpected default title %q", tool.Title())
	}
}

func ExampleApply() {
	fmt.Println(Apply("Write a tagline for a bakery.", schema.ConstraintBased, schema.StrategyInputs{
		Constraints: []string{"Max 8 words", "Mention bread"},
	}))
	// Output:
	// Your response must strictly adhere to the following constraints:
	// - Max 8 words
	// - Mention bread
	// Here is the request:
	//
	// Write a tagline for a bakery.
}
