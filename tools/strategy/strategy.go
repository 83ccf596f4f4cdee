package strategy

import (
	"fmt"
	"strings"

	"github.com/K-vino/promptgpt-suite-vmd/schema"
)

type handler func(base string, tpl string, in schema.StrategyInputs) string

var handlers = map[schema.Strategy]handler{
	schema.ZeroShot:            prepend,
	schema.ChainOfThought:      prepend,
	schema.FewShot:             fewShot,
	schema.RolePlay:            rolePlay,
	schema.ConstraintBased:     constraintBased,
	schema.PersonaEmbedding:    personaEmbedding,
	schema.SystemUserAssistant: systemUserAssistant,
}

var ruleIndex = func() map[schema.Strategy]schema.StrategyRule {
	ret := make(map[schema.Strategy]schema.StrategyRule, len(rules))
	for _, r := range rules {
		ret[r.Key] = r
	}
	return ret
}()

// Rules returns a copy of the strategy table in display order
func Rules() []schema.StrategyRule {
	ret := make([]schema.StrategyRule, len(rules))
	copy(ret, rules)
	return ret
}

// Rule returns the table entry for key
func Rule(key schema.Strategy) (schema.StrategyRule, bool) {
	r, ok := ruleIndex[key]
	return r, ok
}

// Apply rewrites base according to the strategy. Unknown keys return base unchanged.
func Apply(base string, key schema.Strategy, in schema.StrategyInputs) string {
	rule, ok := ruleIndex[key]
	if !ok {
		return base
	}
	return handlers[key](base, rule.Template, in)
}

func prepend(base string, tpl string, _ schema.StrategyInputs) string {
	return tpl + "\n\n" + base
}

func fewShot(base string, tpl string, in schema.StrategyInputs) string {
	pairs := make([]string, 0, len(in.Examples))
	for i, ex := range in.Examples {
		pairs = append(pairs, fmt.Sprintf("Input %d: %s\nOutput %d: %s", i+1, ex.Input, i+1, ex.Output))
	}
	return strings.NewReplacer(
		ExamplesMarker, strings.Join(pairs, "\n\n"),
		PromptMarker, base,
	).Replace(tpl)
}

func rolePlay(base string, tpl string, in schema.StrategyInputs) string {
	role := orDefault(in.Role, DefaultRole)
	return strings.NewReplacer(RoleMarker, role).Replace(tpl) + "\n\n" + base
}

func constraintBased(base string, tpl string, in schema.StrategyInputs) string {
	bullets := make([]string, 0, len(in.Constraints))
	for _, c := range in.Constraints {
		if c = strings.TrimSpace(c); c != "" {
			bullets = append(bullets, "- "+c)
		}
	}
	list := EmptyConstraintsBullet
	if len(bullets) > 0 {
		list = strings.Join(bullets, "\n")
	}
	return strings.NewReplacer(ConstraintsMarker, list).Replace(tpl) + "\n\n" + base
}

func personaEmbedding(base string, tpl string, in schema.StrategyInputs) string {
	persona := orDefault(in.PersonaDescription, DefaultPersona)
	return strings.NewReplacer(PersonaMarker, persona).Replace(tpl) + "\n\n" + base
}

func systemUserAssistant(base string, tpl string, in schema.StrategyInputs) string {
	return strings.NewReplacer(
		SystemMarker, orDefault(in.SystemInstruction, DefaultSystemInstruction),
		UserMarker, base,
		AssistantMarker, AssistantPlaceholder,
	).Replace(tpl)
}

func orDefault(v string, def string) string {
	if v = strings.TrimSpace(v); v == "" {
		return def
	}
	return v
}
