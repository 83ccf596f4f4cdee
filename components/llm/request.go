package llm

import (
	"github.com/K-vino/promptgpt-suite-vmd/schema"
)

// Conversation roles understood by every transport
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Turn is one prior message of a conversation
type Turn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// GenerationConfig holds the sampling parameters of a call
type GenerationConfig struct {
	Temperature     float32 `json:"temperature" yaml:"temperature" validate:"gte=0,lte=2"`
	TopP            float32 `json:"top_p" yaml:"top_p" validate:"gte=0,lte=1"`
	TopK            int     `json:"top_k" yaml:"top_k" validate:"gte=0"`
	MaxOutputTokens int     `json:"max_output_tokens" yaml:"max_output_tokens" validate:"gt=0"`
}

// SafetySetting is a per-harm-category block threshold
type SafetySetting struct {
	Category  string `json:"category" yaml:"category" validate:"required"`
	Threshold string `json:"threshold" yaml:"threshold" validate:"required"`
}

const (
	HarmCategoryHarassment       = "HARM_CATEGORY_HARASSMENT"
	HarmCategoryHateSpeech       = "HARM_CATEGORY_HATE_SPEECH"
	HarmCategorySexuallyExplicit = "HARM_CATEGORY_SEXUALLY_EXPLICIT"
	HarmCategoryDangerousContent = "HARM_CATEGORY_DANGEROUS_CONTENT"

	BlockMediumAndAbove = "BLOCK_MEDIUM_AND_ABOVE"
)

const DefaultModel = "gemini-pro"

// DefaultGenerationConfig returns the sampling defaults
func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		Temperature:     0.7,
		TopP:            0.95,
		TopK:            60,
		MaxOutputTokens: 1500,
	}
}

// DefaultSafetySettings blocks medium and above for the four harm categories
func DefaultSafetySettings() []SafetySetting {
	categories := []string{
		HarmCategoryHarassment,
		HarmCategoryHateSpeech,
		HarmCategorySexuallyExplicit,
		HarmCategoryDangerousContent,
	}
	ret := make([]SafetySetting, 0, len(categories))
	for _, c := range categories {
		ret = append(ret, SafetySetting{Category: c, Threshold: BlockMediumAndAbove})
	}
	return ret
}

// Request is the provider-neutral form of one generate call
type Request struct {
	Model             string
	Payload           string
	SystemInstruction string
	History           []Turn
	Generation        GenerationConfig
	Safety            []SafetySetting
}

// Reply is the provider-neutral result of one generate call
type Reply struct {
	ID           string
	Model        string
	Text         string
	Candidates   int
	FinishReason string
	// BlockReason is the prompt-level block reason, if the service reported one
	BlockReason string
	// BlockMessage is the human readable detail of BlockReason
	BlockMessage string
	Usage        *schema.Usage
}
