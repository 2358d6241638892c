// Package effectgroups merges the three tier results of an ability into
// the effect groups its power roll executes.
package effectgroups

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/drawsteel-importer/internal/entities/drawsteel"
	"github.com/KirkDiggler/drawsteel-importer/internal/errors"
	"github.com/KirkDiggler/drawsteel-importer/internal/pkg/idgen"
)

// PotencyPlaceholder replaces the characteristic threshold in displays.
const PotencyPlaceholder = "{{potency}}"

var thresholdGlyph = regexp.MustCompile(`(?i)\b[marip]<\d+\]?`)

// Config configures an Assembler.
type Config struct {
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	return vb.Build()
}

// Assembler builds effect groups.
type Assembler struct {
	ids idgen.Generator
}

// NewAssembler creates an effect group assembler
func NewAssembler(cfg *Config) (*Assembler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Assembler{ids: cfg.IDGenerator}, nil
}

// Assemble returns, in order: one damage group (always), one applied group
// per distinct condition, at most one forced group and at most one other
// group for tiers whose narrative carries no condition.
//
// potencyDefaults supplies the potency value of sub-records that carry
// none. highest is the fallback potency characteristic.
func (a *Assembler) Assemble(tiers [3]*drawsteel.TierResult, potencyDefaults [3]string, highest drawsteel.Characteristic) []drawsteel.EffectGroup {
	fallback := func(i int, value string, ch drawsteel.Characteristic) drawsteel.Potency {
		if value == "" {
			value = potencyDefaults[i]
		}
		if value == "" {
			value = string(highest)
		}
		if ch == "" || ch == drawsteel.CharacteristicNone {
			ch = highest
		}
		if ch == "" {
			ch = drawsteel.CharacteristicNone
		}
		return drawsteel.Potency{Value: drawsteel.PotencyRef(value), Characteristic: ch}
	}

	groups := []drawsteel.EffectGroup{a.damage(tiers, fallback)}
	groups = append(groups, a.applied(tiers, fallback)...)
	if g, ok := a.forced(tiers, fallback); ok {
		groups = append(groups, g)
	}
	if g, ok := a.other(tiers); ok {
		groups = append(groups, g)
	}
	return groups
}

type potencyFunc func(i int, value string, ch drawsteel.Characteristic) drawsteel.Potency

func (a *Assembler) damage(tiers [3]*drawsteel.TierResult, potency potencyFunc) drawsteel.EffectGroup {
	g := drawsteel.EffectGroup{
		ID:     a.ids.Generate(),
		Type:   drawsteel.GroupDamage,
		Damage: map[drawsteel.TierKey]drawsteel.DamageTier{},
	}
	for i, t := range tiers {
		if t == nil || t.Damage == nil {
			continue
		}
		types := t.Damage.Types
		if types == nil {
			types = []string{}
		}
		g.Damage[drawsteel.TierKeyFor(i+1)] = drawsteel.DamageTier{
			Value:      strconv.Itoa(t.Damage.Value),
			Types:      types,
			Properties: []string{},
			Potency:    potency(i, "", ""),
		}
	}
	return g
}

func (a *Assembler) applied(tiers [3]*drawsteel.TierResult, potency potencyFunc) []drawsteel.EffectGroup {
	var names []string
	seen := make(map[string]bool)
	for _, t := range tiers {
		if t == nil {
			continue
		}
		for _, c := range t.Conditions {
			if !seen[c.Name] {
				seen[c.Name] = true
				names = append(names, c.Name)
			}
		}
	}

	// Casers keep state, so each call gets its own.
	title := cases.Title(language.English)
	groups := make([]drawsteel.EffectGroup, 0, len(names))
	for _, name := range names {
		g := drawsteel.EffectGroup{
			ID:      a.ids.Generate(),
			Type:    drawsteel.GroupApplied,
			Name:    title.String(name),
			Applied: map[drawsteel.TierKey]drawsteel.AppliedTier{},
		}
		for i, t := range tiers {
			if t == nil {
				continue
			}
			cond, ok := findCondition(t.Conditions, name)
			if !ok {
				continue
			}
			g.Applied[drawsteel.TierKeyFor(i+1)] = drawsteel.AppliedTier{
				Display: display(t.RawClauses, name),
				Potency: potency(i, cond.Potency, cond.Characteristic),
				Effects: map[string]drawsteel.AppliedEffect{
					name: {Condition: "failure", End: cond.End, Properties: []string{}},
				},
			}
		}
		groups = append(groups, g)
	}
	return groups
}

func (a *Assembler) forced(tiers [3]*drawsteel.TierResult, potency potencyFunc) (drawsteel.EffectGroup, bool) {
	g := drawsteel.EffectGroup{
		Type:   drawsteel.GroupForced,
		Forced: map[drawsteel.TierKey]drawsteel.ForcedTier{},
	}
	for i, t := range tiers {
		if t == nil || t.Movement == nil {
			continue
		}
		mv := t.Movement
		properties := []string{}
		if mv.Direction == "vertical" {
			properties = append(properties, "vertical")
		}
		g.Forced[drawsteel.TierKeyFor(i+1)] = drawsteel.ForcedTier{
			Display:    strings.TrimSpace(fmt.Sprintf("%s %s %d", mv.Direction, mv.Name, mv.Distance)),
			Movement:   []string{mv.Name},
			Distance:   mv.Distance,
			Properties: properties,
			Potency:    potency(i, "", ""),
		}
	}
	if len(g.Forced) == 0 {
		return drawsteel.EffectGroup{}, false
	}
	g.ID = a.ids.Generate()
	return g, true
}

func (a *Assembler) other(tiers [3]*drawsteel.TierResult) (drawsteel.EffectGroup, bool) {
	g := drawsteel.EffectGroup{
		Type:  drawsteel.GroupOther,
		Other: map[drawsteel.TierKey]drawsteel.OtherTier{},
	}
	for i, t := range tiers {
		if t == nil || t.Narrative == "" || len(t.Conditions) > 0 {
			continue
		}
		g.Other[drawsteel.TierKeyFor(i+1)] = drawsteel.OtherTier{Display: t.Narrative}
	}
	if len(g.Other) == 0 {
		return drawsteel.EffectGroup{}, false
	}
	g.ID = a.ids.Generate()
	return g, true
}

func findCondition(conds []drawsteel.ConditionEffect, name string) (drawsteel.ConditionEffect, bool) {
	for _, c := range conds {
		if c.Name == name {
			return c, true
		}
	}
	return drawsteel.ConditionEffect{}, false
}

// display is the clause that introduced the condition with its threshold
// glyph swapped for the potency placeholder.
func display(clauses []string, name string) string {
	for _, clause := range clauses {
		if strings.Contains(strings.ToLower(clause), name) {
			return thresholdGlyph.ReplaceAllString(clause, PotencyPlaceholder)
		}
	}
	return PotencyPlaceholder + " " + name
}
