package simple

import (
	"strings"

	"github.com/K-vino/promptgpt-suite-vmd/components/systemprompt"
)

// ChatAssistant is the system instruction of the prompt chat assistant
const ChatAssistant = "You are 'PromptGPT Chat Assistant', an expert in crafting and refining AI prompts, " +
	"and generating high-quality content. You will respond to user queries, help them " +
	"optimize their prompts, generate creative or factual text based on their needs, " +
	"and maintain a helpful, concise, and professional tone throughout the conversation.\n" +
	"If a user asks for a prompt, provide a clear and actionable prompt.\n" +
	"If they ask for content, provide the content directly."

// Generator renders a fixed instruction followed by the registered context
type Generator struct {
	systemprompt.BaseGenerator
	content string
}

var _ systemprompt.Generator = (*Generator)(nil)

// New returns a new system prompt Generator
func New(content string, options ...Option) *Generator {
	ret := &Generator{content: strings.TrimSpace(content)}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

func (g *Generator) Generate() string {
	promptParts := make([]string, 0, len(g.ContextProviders())*3+3)
	promptParts = append(promptParts, g.content, "")
	promptParts = append(promptParts, g.ContextSection()...)
	return systemprompt.Join(promptParts)
}
