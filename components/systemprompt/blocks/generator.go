// Package blocks assembles a prompt from an ordered selection of building blocks.
package blocks

import (
	"fmt"
	"strings"

	"github.com/K-vino/promptgpt-suite-vmd/components/systemprompt"
)

// Block names a prompt building block
type Block string

const (
	Task           Block = "task"
	Tone           Block = "tone"
	Format         Block = "format"
	Constraints    Block = "constraints"
	Role           Block = "role"
	Persona        Block = "persona"
	ChainOfThought Block = "chain-of-thought"
	OutputLength   Block = "output-length"
	Context        Block = "context"
	Audience       Block = "audience"
)

// Empty is returned when no selected block produced any text
const Empty = "No blocks selected or insufficient data to assemble a prompt."

const chainOfThoughtTrigger = "Think step-by-step to arrive at the answer."

// Blocks lists every block in its default order
var Blocks = []Block{Task, Role, Persona, Audience, Context, Tone, Format, Constraints, OutputLength, ChainOfThought}

var displayNames = map[string]Block{
	"task definition":          Task,
	"tone selector":            Tone,
	"format selector":          Format,
	"constraint block":         Constraints,
	"role definition":          Role,
	"persona description":      Persona,
	"chain-of-thought trigger": ChainOfThought,
	"output length":            OutputLength,
	"context information":      Context,
	"audience definition":      Audience,
}

// ParseBlock maps a block key or its display name to a Block
func ParseBlock(s string) (Block, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, b := range Blocks {
		if string(b) == key {
			return b, nil
		}
	}
	if b, ok := displayNames[key]; ok {
		return b, nil
	}
	return "", fmt.Errorf("unknown prompt block '%s'", s)
}

// Data holds the values blocks render
type Data struct {
	Task         string
	Tone         string
	Format       string
	Constraints  []string
	Role         string
	Persona      string
	Audience     string
	Context      string
	OutputLength int
}

// Generator renders the selected blocks separated by blank lines.
// Blocks without data are skipped, repeated blocks render once.
type Generator struct {
	systemprompt.BaseGenerator
	blocks []Block
	data   Data
}

var _ systemprompt.Generator = (*Generator)(nil)

// New returns a new block Generator
func New(options ...Option) *Generator {
	ret := new(Generator)
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

func (g *Generator) Generate() string {
	seen := make(map[Block]struct{}, len(g.blocks))
	parts := make([]string, 0, len(g.blocks))
	for _, b := range g.blocks {
		if _, ok := seen[b]; ok {
			continue
		}
		seen[b] = struct{}{}
		if text := g.render(b); text != "" {
			parts = append(parts, text)
		}
	}
	if len(parts) == 0 {
		return Empty
	}
	if extra := systemprompt.Join(g.ContextSection()); extra != "" {
		parts = append(parts, extra)
	}
	return strings.Join(parts, "\n\n")
}

func (g *Generator) render(b Block) string {
	d := g.data
	switch b {
	case Task:
		return labeled("Task", d.Task)
	case Tone:
		return labeled("Tone", d.Tone)
	case Format:
		return labeled("Format", d.Format)
	case Constraints:
		var items []string
		for _, c := range d.Constraints {
			if c = strings.TrimSpace(c); c != "" {
				items = append(items, c)
			}
		}
		if len(items) == 0 {
			return ""
		}
		return "Constraints: " + strings.Join(items, ", ")
	case Role:
		return labeled("Assume the role of", d.Role)
	case Persona:
		return labeled("Adopt this persona", d.Persona)
	case Audience:
		return labeled("Target audience", d.Audience)
	case Context:
		return labeled("Context", d.Context)
	case OutputLength:
		if d.OutputLength <= 0 {
			return ""
		}
		return fmt.Sprintf("Output length: approximately %d words.", d.OutputLength)
	case ChainOfThought:
		return chainOfThoughtTrigger
	}
	return ""
}

func labeled(label string, value string) string {
	if value = strings.TrimSpace(value); value == "" {
		return ""
	}
	return label + ": " + value
}

// Assemble renders blocks with data
func Assemble(blocks []Block, data Data) string {
	return New(WithBlocks(blocks...), WithData(data)).Generate()
}
