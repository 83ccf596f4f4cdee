package strategy

import "github.com/K-vino/promptgpt-suite-vmd/schema"

// Placeholder markers substituted by the strategy handlers
const (
	ExamplesMarker    = "[EXAMPLES]"
	PromptMarker      = "[PROMPT]"
	RoleMarker        = "[ROLE]"
	ConstraintsMarker = "[CONSTRAINTS]"
	PersonaMarker     = "[PERSONA]"
	SystemMarker      = "[SYSTEM]"
	UserMarker        = "[USER]"
	AssistantMarker   = "[ASSISTANT]"
)

const (
	DefaultRole               = "general AI assistant"
	DefaultPersona            = "neutral and helpful AI"
	DefaultSystemInstruction  = "You are a helpful AI."
	AssistantPlaceholder      = "[Assistant response here...]"
	EmptyConstraintsBullet    = "- [Add your constraints here]"
	YourTurnMarker            = "**Your Turn:**"
	ExamplesHeading           = "**Examples:**"
	zeroShotInstruction       = "Based on the following request, provide a direct answer or complete the task:"
	chainOfThoughtInstruction = "Let's think step by step. First, analyze the problem, then outline your reasoning, " +
		"and finally provide the solution. Your output should clearly separate the thinking process from the final answer."
)

var rules = []schema.StrategyRule{
	{
		Key:         schema.ZeroShot,
		Name:        "Zero-shot",
		Description: "Provides a direct instruction to the AI without any examples. Assumes the AI has sufficient prior knowledge.",
		Template:    zeroShotInstruction,
	},
	{
		Key:         schema.FewShot,
		Name:        "Few-shot",
		Description: "Guides the AI with a few examples (input-output pairs) before the final request. Useful for specific formatting or nuanced tasks.",
		Template: "I will provide a few examples of input-output pairs. Understand the pattern and apply it to my final request.\n\n" +
			ExamplesHeading + "\n" + ExamplesMarker + "\n\n" +
			YourTurnMarker + "\n" + PromptMarker,
	},
	{
		Key:         schema.ChainOfThought,
		Name:        "Chain-of-thought (CoT)",
		Description: "Instructs the AI to think step-by-step, showing its reasoning process before giving the final answer. Improves accuracy for complex problems.",
		Template:    chainOfThoughtInstruction,
	},
	{
		Key:         schema.RolePlay,
		Name:        "Role-play",
		Description: "Asks the AI to adopt a specific persona or role when generating content. Enhances relevance and tone.",
		Template:    "You are a " + RoleMarker + ". Act in this role when responding to the following request:",
	},
	{
		Key:         schema.ConstraintBased,
		Name:        "Constraint-based",
		Description: "Applies strict rules or limitations to the AI's output (e.g., word count, specific keywords, forbidden phrases).",
		Template: "Your response must strictly adhere to the following constraints:\n" +
			ConstraintsMarker + "\n" +
			"Here is the request:",
	},
	{
		Key:         schema.PersonaEmbedding,
		Name:        "Persona Embedding",
		Description: "Guides the AI to adopt a specific identity, background, or style. More detailed than simple role-play.",
		Template:    "Adopt the persona of a " + PersonaMarker + ". Ensure your responses reflect this persona. Here is your task:",
	},
	{
		Key:         schema.SystemUserAssistant,
		Name:        "System + User + Assistant Format",
		Description: "Structures the prompt for multi-turn conversations, defining distinct roles for clarity in complex interactions.",
		Template: "You will participate in a multi-turn conversation. Here is the context and your role definition:\n" +
			"**System:** " + SystemMarker + "\n" +
			"**User:** " + UserMarker + "\n" +
			"**Assistant:** " + AssistantMarker,
	},
}
