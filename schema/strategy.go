package schema

import "strings"

// Strategy is a named prompt-engineering technique
type Strategy string

const (
	ZeroShot            Strategy = "zero-shot"
	FewShot             Strategy = "few-shot"
	ChainOfThought      Strategy = "chain-of-thought"
	RolePlay            Strategy = "role-play"
	ConstraintBased     Strategy = "constraint-based"
	PersonaEmbedding    Strategy = "persona-embedding"
	SystemUserAssistant Strategy = "system-user-assistant"
)

// Strategies lists every known strategy in display order
var Strategies = []Strategy{
	ZeroShot,
	FewShot,
	ChainOfThought,
	RolePlay,
	ConstraintBased,
	PersonaEmbedding,
	SystemUserAssistant,
}

var strategyAliases = map[string]Strategy{
	"zero-shot":                        ZeroShot,
	"few-shot":                         FewShot,
	"chain-of-thought":                 ChainOfThought,
	"chain-of-thought (cot)":           ChainOfThought,
	"cot":                              ChainOfThought,
	"role-play":                        RolePlay,
	"constraint-based":                 ConstraintBased,
	"persona-embedding":                PersonaEmbedding,
	"persona embedding":                PersonaEmbedding,
	"system-user-assistant":            SystemUserAssistant,
	"system + user + assistant format": SystemUserAssistant,
	"multi-role":                       SystemUserAssistant,
}

// ParseStrategy maps a key or display name to its Strategy.
// Unknown values are returned as-is so callers can pass them through.
func ParseStrategy(v string) Strategy {
	if s, ok := strategyAliases[strings.ToLower(strings.TrimSpace(v))]; ok {
		return s
	}
	return Strategy(v)
}

// Known reports whether the strategy is one of the supported strategies
func (s Strategy) Known() bool {
	for _, v := range Strategies {
		if v == s {
			return true
		}
	}
	return false
}

func (s Strategy) String() string {
	return string(s)
}

// StrategyRule is one static entry of the strategy table
type StrategyRule struct {
	Key         Strategy `json:"key" yaml:"key"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Template    string   `json:"template" yaml:"template"`
}

// Example is an input/output pair used by the few-shot strategy
type Example struct {
	Input  string `json:"input" yaml:"input"`
	Output string `json:"output" yaml:"output"`
}

// StrategyInputs carries the auxiliary fields of a strategy.
// Only the fields relevant to the selected strategy need to be set.
type StrategyInputs struct {
	// Examples few-shot input/output pairs
	Examples []Example `json:"examples,omitempty" yaml:"examples,omitempty"`
	// Role role-play role
	Role string `json:"role,omitempty" yaml:"role,omitempty"`
	// Constraints constraint-based rules, one per entry
	Constraints []string `json:"constraints,omitempty" yaml:"constraints,omitempty"`
	// PersonaDescription persona-embedding description
	PersonaDescription string `json:"persona_description,omitempty" yaml:"persona_description,omitempty"`
	// SystemInstruction system-user-assistant system part
	SystemInstruction string `json:"system_instruction,omitempty" yaml:"system_instruction,omitempty"`
}
