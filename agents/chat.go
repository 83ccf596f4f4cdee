package agents

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/K-vino/promptgpt-suite-vmd/components"
	"github.com/K-vino/promptgpt-suite-vmd/components/llm"
	"github.com/K-vino/promptgpt-suite-vmd/components/systemprompt"
	"github.com/K-vino/promptgpt-suite-vmd/components/systemprompt/simple"
	"github.com/K-vino/promptgpt-suite-vmd/schema"
)

// ErrEmptyMessage is returned when a chat message is blank
var ErrEmptyMessage = errors.New("chat message is empty")

// ExportTitle heads an exported conversation
const ExportTitle = "## PromptGPT Chat Studio Conversation Log"

// Chat is a multi-turn conversation with the prompt assistant
type Chat struct {
	Agent
	memory                *components.Memory
	systemPromptGenerator systemprompt.Generator
	usageMtx              sync.Mutex
	usage                 schema.Usage
}

// ChatOption configures a Chat
type ChatOption func(c *Chat)

// WithMemory set the conversation memory
func WithMemory(m *components.Memory) ChatOption {
	return func(c *Chat) {
		c.memory = m
	}
}

// WithSystemPromptGenerator set the system instruction generator
func WithSystemPromptGenerator(g systemprompt.Generator) ChatOption {
	return func(c *Chat) {
		c.systemPromptGenerator = g
	}
}

// NewChat returns a new Chat
func NewChat(options []Option, chatOptions ...ChatOption) *Chat {
	ret := &Chat{Agent: newAgent("Chat", options...)}
	for _, opt := range chatOptions {
		opt(ret)
	}
	if ret.memory == nil {
		ret.memory = components.NewMemory(0)
	}
	if ret.systemPromptGenerator == nil {
		ret.systemPromptGenerator = simple.New(simple.ChatAssistant)
	}
	return ret
}

// Memory returns the conversation memory
func (c *Chat) Memory() *components.Memory {
	return c.memory
}

// SystemPrompt returns the system instruction sent with every message
func (c *Chat) SystemPrompt() string {
	return c.systemPromptGenerator.Generate()
}

// RegisterSystemPromptContextProvider registers a new context provider
func (c *Chat) RegisterSystemPromptContextProvider(provider systemprompt.ContextProvider) {
	c.systemPromptGenerator.AddContextProviders(provider)
}

// UnregisterSystemPromptContextProvider unregisters an existing context provider.
func (c *Chat) UnregisterSystemPromptContextProvider(title string) {
	c.systemPromptGenerator.RemoveContextProviders(title)
}

// Send posts text with the conversation so far and records the reply.
// A failed or blocked turn is removed from memory so the history keeps
// alternating between user and model.
func (c *Chat) Send(ctx context.Context, text string) (*schema.ModelResponse, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}
	history := turns(c.memory.History())
	c.memory.NewTurn()
	msg := c.memory.NewMessage(components.UserRole, text)
	resp, err := c.invoke(ctx, text,
		llm.WithSystemInstruction(c.SystemPrompt()),
		llm.WithHistory(history),
	)
	if err != nil || resp.Blocked {
		if delErr := c.memory.DeleteTurn(msg.TurnID()); delErr != nil {
			c.logger.Warn("drop failed turn", zap.Error(delErr))
		}
		return resp, err
	}
	c.memory.NewMessage(components.AssistantRole, resp.Text)
	c.usageMtx.Lock()
	c.usage.Merge(resp.Usage)
	c.usageMtx.Unlock()
	return resp, nil
}

// Usage returns the tokens spent by the conversation since the last reset
func (c *Chat) Usage() schema.Usage {
	c.usageMtx.Lock()
	defer c.usageMtx.Unlock()
	return c.usage
}

// Reset clears the conversation and its token usage
func (c *Chat) Reset() {
	c.memory.Reset()
	c.usageMtx.Lock()
	c.usage = schema.Usage{}
	c.usageMtx.Unlock()
}

// History returns the conversation, oldest first
func (c *Chat) History() []components.Message {
	return c.memory.History()
}

// Export renders the conversation as markdown, followed by the token usage
// when the provider reported any
func (c *Chat) Export() string {
	var sb strings.Builder
	sb.WriteString(ExportTitle)
	sb.WriteString("\n\n")
	for _, msg := range c.memory.History() {
		speaker := "AI"
		if msg.Role() == components.UserRole {
			speaker = "You"
		}
		sb.WriteString("**")
		sb.WriteString(speaker)
		sb.WriteString(":** ")
		sb.WriteString(msg.Content())
		sb.WriteString("\n\n")
	}
	if u := c.Usage(); u.InputTokens > 0 || u.OutputTokens > 0 {
		fmt.Fprintf(&sb, "_Tokens used: %d input, %d output_\n", u.InputTokens, u.OutputTokens)
	}
	return sb.String()
}

func turns(history []components.Message) []llm.Turn {
	ret := make([]llm.Turn, 0, len(history))
	for _, msg := range history {
		switch msg.Role() {
		case components.UserRole:
			ret = append(ret, llm.Turn{Role: llm.RoleUser, Text: msg.Content()})
		case components.AssistantRole:
			ret = append(ret, llm.Turn{Role: llm.RoleModel, Text: msg.Content()})
		}
	}
	return ret
}
