package schema

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidRequest is returned when a request fails validation before any
// prompt text is built or any remote call is attempted.
var ErrInvalidRequest = errors.New("invalid request")

const (
	// MinWordLimit is the smallest accepted word limit
	MinWordLimit = 50
	// MaxWordLimit is the largest accepted word limit
	MaxWordLimit = 2000
	// DefaultWordLimit is the word limit used when none is given
	DefaultWordLimit = 500
)

const (
	DefaultTone       = "Neutral"
	DefaultFormat     = "Paragraph"
	DefaultComplexity = "Intermediate (Detailed & Clear)"
)

// Tones lists the accepted tones for the model's response
var Tones = []string{
	"Neutral", "Professional", "Friendly", "Formal", "Informal", "Persuasive",
	"Enthusiastic", "Empathetic", "Direct", "Concise", "Creative", "Humorous",
	"Sarcastic", "Informative", "Technical", "Casual", "Authoritative",
	"Urgent", "Calm", "Motivational", "Reflective", "Narrative", "Poetic",
	"Journalistic", "Academic", "Playful", "Skeptical", "Optimistic", "Pessimistic",
	"Inspiring", "Instructive", "Declarative", "Questioning", "Rhetorical",
}

// Formats lists the accepted output formats for the model's response
var Formats = []string{
	"Paragraph", "Bullet Points", "Numbered List", "Short Answer", "Long Essay",
	"Code Snippet", "Poem", "Email", "Blog Post", "News Article", "Summary",
	"Dialogue", "Table", "JSON", "Markdown", "User Story", "Headline", "Review",
	"Script", "Instructions", "Recipe", "Outline", "Description", "Speech",
	"Memo", "Report", "Press Release", "Case Study", "FAQ", "Glossary",
	"Ad Copy", "Social Media Post", "Interview Questions", "Lesson Plan",
}

// ComplexityLevels lists the accepted complexity levels of the engineered prompt
var ComplexityLevels = []string{
	"Beginner (Simple & Direct)",
	"Intermediate (Detailed & Clear)",
	"Advanced (Nuanced & Strategic)",
	"Expert (Highly Specific & Context-Aware)",
}

// GenerationRequest holds the parameters of one meta-prompt generation
type GenerationRequest struct {
	// Task is the user's core task or goal. On rewrite it carries the previous prompt.
	Task string `json:"task" yaml:"task" validate:"notblank"`
	// Tone is the desired tone of the model's response
	Tone string `json:"tone" yaml:"tone" validate:"tone"`
	// Format is the desired output format of the model's response
	Format string `json:"format" yaml:"format" validate:"format"`
	// WordLimit is the approximate word count of the model's response
	WordLimit int `json:"word_limit" yaml:"word_limit" validate:"min=50,max=2000"`
	// Complexity is the complexity level of the engineered prompt
	Complexity string `json:"complexity" yaml:"complexity" validate:"complexity"`
	// RewriteInstruction switches the builder into rewrite mode when set
	RewriteInstruction string `json:"rewrite_instruction,omitempty" yaml:"rewrite_instruction,omitempty"`
}

// NewGenerationRequest returns a GenerationRequest with default tone, format,
// word limit and complexity
func NewGenerationRequest(task string) GenerationRequest {
	return GenerationRequest{
		Task:       task,
		Tone:       DefaultTone,
		Format:     DefaultFormat,
		WordLimit:  DefaultWordLimit,
		Complexity: DefaultComplexity,
	}
}

// IsRewrite reports whether the request asks for a rewrite of an existing prompt
func (r GenerationRequest) IsRewrite() bool {
	return strings.TrimSpace(r.RewriteInstruction) != ""
}

// Validate checks the request against its constraints
func (r GenerationRequest) Validate() error {
	if err := Validator().Struct(r); err != nil {
		return validationError(err)
	}
	return nil
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator with the prompt enum validations registered
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validations := map[string]validator.Func{
			"tone":       memberOf(Tones),
			"format":     memberOf(Formats),
			"complexity": memberOf(ComplexityLevels),
			"notblank":   notBlank,
		}
		for tag, fn := range validations {
			if err := validate.RegisterValidation(tag, fn); err != nil {
				panic(fmt.Sprintf("register validation %s: %v", tag, err))
			}
		}
	})
	return validate
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func memberOf(list []string) validator.Func {
	set := make(map[string]struct{}, len(list))
	for _, v := range list {
		set[v] = struct{}{}
	}
	return func(fl validator.FieldLevel) bool {
		_, ok := set[fl.Field().String()]
		return ok
	}
}

func validationError(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	msgs := make([]string, 0, len(errs))
	for _, fe := range errs {
		switch fe.Tag() {
		case "notblank":
			msgs = append(msgs, fmt.Sprintf("%s must not be empty", fe.Field()))
		case "min", "max":
			msgs = append(msgs, fmt.Sprintf("%s must be between %d and %d, got %v", fe.Field(), MinWordLimit, MaxWordLimit, fe.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s %q is not a known %s", fe.Field(), fe.Value(), fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidRequest, strings.Join(msgs, "; "))
}
