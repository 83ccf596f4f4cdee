package metaprompt

import (
	"fmt"

	"github.com/K-vino/promptgpt-suite-vmd/components/systemprompt"
	"github.com/K-vino/promptgpt-suite-vmd/schema"
)

// DefaultPreamble establishes the model's role as a prompt engineer
const DefaultPreamble = "You are an expert AI prompt engineer specialized in creating highly effective, clear, " +
	"and comprehensive prompts for large language models (LLMs). " +
	"Your goal is to transform a user's raw task into a perfectly optimized LLM prompt. " +
	"The generated prompt should leave no ambiguity for the LLM and guide it to produce " +
	"the exact desired output, adhering to all specified constraints and nuances. " +
	"The final output should be ONLY the engineered prompt itself, without any conversational " +
	"introductions or explanations from you (e.g., 'Here's your prompt:')."

var generationInstructions = []string{
	"**Instructions for Generating the Engineered Prompt:**",
	"- The prompt should be self-contained and ready to be directly copied and pasted into an LLM.",
	"- It must clearly instruct the LLM on its role (if any), the task, the tone, the format, and any constraints (like word count).",
	"- For example, if the tone is 'Creative' and format is 'Poem', the prompt should say 'Write a creative poem...' or similar.",
	"- Ensure the engineered prompt is concise yet comprehensive.",
	"- Do not include example LLM outputs, only the prompt itself.",
}

const rewriteInstruction = "Focus solely on rewriting the provided prompt based on this instruction, " +
	"maintaining all other previous parameters (tone, format, word limit, complexity)."

// Generator builds the meta-prompt that instructs the model to engineer a prompt
type Generator struct {
	systemprompt.BaseGenerator
	preamble string
	request  schema.GenerationRequest
}

var _ systemprompt.Generator = (*Generator)(nil)

// New returns a meta-prompt Generator for the request.
// The request is not validated; use Build for the checked form.
func New(req schema.GenerationRequest, options ...Option) *Generator {
	ret := &Generator{request: req}
	for _, opt := range options {
		opt(ret)
	}
	if ret.preamble == "" {
		ret.preamble = DefaultPreamble
	}
	return ret
}

// Build validates the request and returns the meta-prompt text
func Build(req schema.GenerationRequest, options ...Option) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	return New(req, options...).Generate(), nil
}

// Request returns the request the generator was built for
func (g *Generator) Request() schema.GenerationRequest {
	return g.request
}

func (g *Generator) Generate() string {
	req := g.request
	taskLabel := "**User's Core Task/Goal:**"
	if req.IsRewrite() {
		taskLabel = "**Prompt to Rewrite:**"
	}
	promptParts := []string{
		g.preamble,
		"",
		taskLabel,
		req.Task,
		"",
		fmt.Sprintf("**Desired Tone for LLM's Response:** `%s`", req.Tone),
		fmt.Sprintf("**Desired Output Format for LLM's Response:** `%s`", req.Format),
		fmt.Sprintf("**Word Count Limit for LLM's Response:** Approximately `%d` words.", req.WordLimit),
		fmt.Sprintf("**Complexity Level of the Engineered Prompt:** `%s`", req.Complexity),
		"",
	}
	if req.IsRewrite() {
		promptParts = append(promptParts,
			fmt.Sprintf("**Specific Rewriting Instruction:** `%s`", req.RewriteInstruction),
			rewriteInstruction,
		)
	} else {
		promptParts = append(promptParts, generationInstructions...)
	}
	promptParts = append(promptParts, "")
	promptParts = append(promptParts, g.ContextSection()...)
	return systemprompt.Join(promptParts)
}
