package metaprompt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/K-vino/promptgpt-suite-vmd/components/systemprompt"
	"github.com/K-vino/promptgpt-suite-vmd/schema"
)

func TestBuildContainsAllFields(t *testing.T) {
	task := "Write a compelling blog post about the benefits of quantum computing for small businesses."
	for _, tone := range schema.Tones {
		for _, format := range schema.Formats {
			for _, complexity := range schema.ComplexityLevels {
				req := schema.GenerationRequest{
					Task:       task,
					Tone:       tone,
					Format:     format,
					WordLimit:  750,
					Complexity: complexity,
				}
				got, err := Build(req)
				if err != nil {
					t.Fatalf("Build(%s, %s, %s): %v", tone, format, complexity, err)
				}
				for _, want := range []string{task, tone, format, complexity, strconv.Itoa(req.WordLimit)} {
					if !strings.Contains(got, want) {
						t.Fatalf("meta-prompt for (%s, %s, %s) missing %q", tone, format, complexity, want)
					}
				}
			}
		}
	}
}

func TestBuildDeterministic(t *testing.T) {
	req := schema.NewGenerationRequest("Summarize the quarterly report.")
	first, err := Build(req)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Build(req)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("Build is not deterministic:\n%s\n---\n%s", first, second)
	}
}

func TestBuildSections(t *testing.T) {
	req := schema.NewGenerationRequest("Draft a welcome email.")
	got, err := Build(req)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got, DefaultPreamble) {
		t.Errorf("meta-prompt does not start with the preamble:\n%s", got)
	}
	for _, want := range []string{
		"**User's Core Task/Goal:**\nDraft a welcome email.",
		"**Desired Tone for LLM's Response:** `Neutral`",
		"**Desired Output Format for LLM's Response:** `Paragraph`",
		"**Word Count Limit for LLM's Response:** Approximately `500` words.",
		"**Complexity Level of the Engineered Prompt:** `Intermediate (Detailed & Clear)`",
		"**Instructions for Generating the Engineered Prompt:**",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("meta-prompt missing %q", want)
		}
	}
	if strings.Contains(got, "Specific Rewriting Instruction") {
		t.Error("generation meta-prompt contains rewrite instructions")
	}
}

func TestBuildRewrite(t *testing.T) {
	req := schema.NewGenerationRequest("Write a short poem about autumn leaves.")
	req.RewriteInstruction = "Make it more concise"
	got, err := Build(req)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"**Prompt to Rewrite:**\nWrite a short poem about autumn leaves.",
		"**Specific Rewriting Instruction:** `Make it more concise`",
		"maintaining all other previous parameters",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("rewrite meta-prompt missing %q", want)
		}
	}
	if strings.Contains(got, "Instructions for Generating the Engineered Prompt") {
		t.Error("rewrite meta-prompt still contains generation instructions")
	}
}

func TestBuildRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		req  schema.GenerationRequest
	}{
		{"empty task", schema.NewGenerationRequest("  ")},
		{"word limit", func() schema.GenerationRequest {
			r := schema.NewGenerationRequest("task")
			r.WordLimit = 10
			return r
		}()},
		{"tone", func() schema.GenerationRequest {
			r := schema.NewGenerationRequest("task")
			r.Tone = "Whimsical"
			return r
		}()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Build(tt.req)
			if !errors.Is(err, schema.ErrInvalidRequest) {
				t.Fatalf("expect ErrInvalidRequest, got %v", err)
			}
			if got != "" {
				t.Errorf("expect empty prompt on error, got %q", got)
			}
		})
	}
}

func TestGeneratePassesUnknownEnums(t *testing.T) {
	req := schema.NewGenerationRequest("task")
	req.Tone = "Whimsical"
	got := New(req).Generate()
	if !strings.Contains(got, "`Whimsical`") {
		t.Errorf("unchecked generator dropped the tone:\n%s", got)
	}
}

func TestGenerateContextProviders(t *testing.T) {
	g := New(schema.NewGenerationRequest("Plan a lesson on fractions."),
		WithContextProviders(
			systemprompt.NewStaticContext("Audience", "Fourth grade students"),
			systemprompt.NewStaticContext("Empty", ""),
		))
	got := g.Generate()
	if !strings.Contains(got, "# EXTRA INFORMATION AND CONTEXT\n## Audience\nFourth grade students") {
		t.Errorf("context section missing:\n%s", got)
	}
	if strings.Contains(got, "## Empty") {
		t.Error("empty context provider rendered")
	}
	g.RemoveContextProviders("Audience")
	if strings.Contains(g.Generate(), "EXTRA INFORMATION") {
		t.Error("context section still rendered after removal")
	}
}

func ExampleBuild() {
	req := schema.NewGenerationRequest("Write a haiku about the sea.")
	req.Tone = "Poetic"
	req.Format = "Poem"
	req.WordLimit = 50
	prompt, err := Build(req, WithPreamble("You are a prompt engineer."))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(strings.Join(strings.Split(prompt, "\n")[:9], "\n"))
	// Output:
	// You are a prompt engineer.
	//
	// **User's Core Task/Goal:**
	// Write a haiku about the sea.
	//
	// **Desired Tone for LLM's Response:** `Poetic`
	// **Desired Output Format for LLM's Response:** `Poem`
	// **Word Count Limit for LLM's Response:** Approximately `50` words.
	// **Complexity Level of the Engineered Prompt:** `Intermediate (Detailed & Clear)`
}
