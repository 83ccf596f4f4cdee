package evaluator

import (
	"errors"
	"strings"

	"github.com/K-vino/promptgpt-suite-vmd/components/systemprompt"
	"github.com/K-vino/promptgpt-suite-vmd/components/systemprompt/broke"
)

// ErrEmptyPrompt is returned when there is nothing to evaluate
var ErrEmptyPrompt = errors.New("evaluator: prompt is empty")

// Response labels the model is asked to answer with
const (
	ClarityLabel       = "Clarity Score"
	FeedbackLabel      = "Feedback"
	HallucinationLabel = "Potential Hallucination Risk"
	SuggestionsLabel   = "Suggested Enhancements"
)

const evaluatorBackground = "- You are an expert prompt evaluator. Analyze the following user prompt for clarity, " +
	"potential for hallucination, and alignment with common AI best practices. " +
	"Provide a score (out of 10) for clarity, and detailed feedback for improvement."

// SubjectTitle heads the prompt under evaluation
const SubjectTitle = "User Prompt"

// NewPromptGenerator returns the generator of the evaluation request for prompt
func NewPromptGenerator(prompt string, providers ...systemprompt.ContextProvider) *broke.Generator {
	return broke.New(
		broke.WithBackground([]string{evaluatorBackground}),
		broke.WithObjectives([]string{
			"- Rate how clear and unambiguous the prompt is.",
			"- Identify where the prompt invites the model to invent facts.",
			"- Suggest specific, actionable enhancements.",
		}),
		broke.WithEvolves([]string{
			"- Format your response using exactly these labels:",
			ClarityLabel + ": [X/10]",
			FeedbackLabel + ": [Specific points on ambiguity, vagueness, and areas for improvement]",
			HallucinationLabel + ": [Low/Medium/High] - [Reason]",
			SuggestionsLabel + ": [Specific actionable suggestions for the prompt]",
		}),
		broke.WithSubject(SubjectTitle, strings.TrimSpace(prompt)),
		broke.WithContextProviders(providers...),
	)
}

// BuildPrompt returns the evaluation request text for prompt
func BuildPrompt(prompt string, providers ...systemprompt.ContextProvider) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", ErrEmptyPrompt
	}
	return NewPromptGenerator(prompt, providers...).Generate(), nil
}
