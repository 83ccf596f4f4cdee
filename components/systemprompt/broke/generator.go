package broke

import (
	"fmt"

	"github.com/K-vino/promptgpt-suite-vmd/components/systemprompt"
)

// Section titles in render order
const (
	BackgroundTitle = "BACKGROUND and PURPOSE"
	RolesTitle      = "CAPACITY and ROLE"
	ObjectivesTitle = "OBJECTIVEs and TASKs"
	KeyResultsTitle = "KEY RESULTS"
	EvolvesTitle    = "OPTIMIZATION and OUTPUT INSTRUCTIONS"
)

// Generator is BROKE prompt generator
type Generator struct {
	systemprompt.BaseGenerator
	// background agent role background
	background []string
	// roles Capacity and Role
	roles []string
	// objectives represents the task of the agent
	objectives []string
	// keyResults represents the key results of the answer
	keyResults []string
	// evolves sugested optimizations for response
	evolves []string
	// subject is the text under review, rendered last between fences
	subjectTitle string
	subject      string
}

var _ systemprompt.Generator = (*Generator)(nil)

// New returns a new prompt Generator
func New(options ...Option) *Generator {
	ret := new(Generator)
	for _, opt := range options {
		opt(ret)
	}
	if len(ret.background) == 0 {
		ret.background = []string{"- You are a helpful and precise AI assistant."}
	}
	if len(ret.ContextProviders()) > 0 {
		ret.evolves = append(ret.evolves, "- Always use the available additional information and context to enhance the response.")
	}
	return ret
}

func (g *Generator) Generate() string {
	var promptParts []string
	for _, section := range []struct {
		title   string
		content []string
	}{
		{BackgroundTitle, g.background},
		{RolesTitle, g.roles},
		{ObjectivesTitle, g.objectives},
		{KeyResultsTitle, g.keyResults},
		{EvolvesTitle, g.evolves},
	} {
		if len(section.content) > 0 {
			promptParts = append(promptParts, fmt.Sprintf("# %s", section.title))
			promptParts = append(promptParts, section.content...)
			promptParts = append(promptParts, "")
		}
	}
	if g.subject != "" {
		promptParts = append(promptParts, fmt.Sprintf("# %s", g.subjectTitle), "---", g.subject, "---", "")
	}
	promptParts = append(promptParts, g.ContextSection()...)
	return systemprompt.Join(promptParts)
}
