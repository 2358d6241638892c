// Package actor turns parsed stat block records into the actor document
// handed to the virtual tabletop.
package actor

import (
	"strings"

	"github.com/KirkDiggler/drawsteel-importer/internal/entities/drawsteel"
	"github.com/KirkDiggler/drawsteel-importer/internal/errors"
	"github.com/KirkDiggler/drawsteel-importer/internal/pkg/clock"
	"github.com/KirkDiggler/drawsteel-importer/internal/vocab"
)

// Defaults applied when the header leaves a field unset.
const (
	DefaultName          = "Unnamed Monster"
	DefaultStamina       = 1
	DefaultSpeed         = 4
	DefaultLevel         = 1
	DefaultSaveThreshold = 6
	DefaultLicense       = "Draw Steel Creator License"
)

// Config configures a Builder.
type Config struct {
	Clock      clock.Clock
	Vocabulary *vocab.Tables
	// Icons defaults to DefaultIcons.
	Icons      IconLookup
	SourceBook string
	License    string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.Vocabulary == nil {
		vb.RequiredField("Vocabulary")
	}
	return vb.Build()
}

// Builder assembles actors.
type Builder struct {
	clock      clock.Clock
	vocabulary *vocab.Tables
	icons      IconLookup
	source     drawsteel.Source
}

// NewBuilder creates an actor builder
func NewBuilder(cfg *Config) (*Builder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	b := &Builder{
		clock:      cfg.Clock,
		vocabulary: cfg.Vocabulary,
		icons:      cfg.Icons,
		source: drawsteel.Source{
			Book:    cfg.SourceBook,
			License: cfg.License,
		},
	}
	if b.icons == nil {
		b.icons = DefaultIcons()
	}
	if b.source.License == "" {
		b.source.License = DefaultLicense
	}
	return b, nil
}

// BuildInput is what an actor is built from.
type BuildInput struct {
	Header    *drawsteel.Header
	Features  []*drawsteel.Feature
	Abilities []*drawsteel.Ability
	Folder    string
}

// Build returns the actor document. A nil header yields an actor made of
// defaults. Features come before abilities, each in input order.
func (b *Builder) Build(input *BuildInput) *drawsteel.Actor {
	h := input.Header
	if h == nil {
		h = &drawsteel.Header{}
	}

	a := &drawsteel.Actor{
		Name:       orDefault(h.Name, DefaultName),
		Type:       drawsteel.ActorTypeNPC,
		Img:        RoleImage(h.Role, h.Organization),
		Folder:     input.Folder,
		System:     b.system(h),
		Items:      make([]drawsteel.Item, 0, len(input.Features)+len(input.Abilities)),
		ImportedAt: b.clock.Now().UTC(),
	}

	for _, f := range input.Features {
		if f != nil {
			a.Items = append(a.Items, b.feature(f))
		}
	}
	for _, ab := range input.Abilities {
		if ab != nil {
			a.Items = append(a.Items, b.ability(ab, h))
		}
	}
	return a
}

func (b *Builder) system(h *drawsteel.Header) drawsteel.ActorSystem {
	stamina := positiveOr(h.Stamina, DefaultStamina)

	characteristics := make(map[drawsteel.Characteristic]drawsteel.ValueSlot, 5)
	for _, ch := range drawsteel.CharacteristicOrder() {
		characteristics[ch] = drawsteel.ValueSlot{Value: h.Characteristics.Value(ch)}
	}

	size := drawsteel.Size{Value: positiveOr(h.Size, 1)}
	if size.Value == 1 {
		size.Letter = orDefault(h.SizeLetter, "M")
	}

	turns := 1
	if h.Organization == "solo" || h.Role == "solo" {
		turns = 2
	}

	movement := drawsteel.ActorMovement{
		Value:     positiveOr(h.Speed, DefaultSpeed),
		Types:     h.MovementTypes,
		Disengage: 1,
	}
	if len(movement.Types) == 0 {
		movement.Types = []string{"walk"}
	}
	for _, t := range movement.Types {
		if t == "hover" {
			movement.Hover = true
		}
	}

	keywords := h.Keywords
	if keywords == nil {
		keywords = []string{}
	}

	return drawsteel.ActorSystem{
		Stamina:         drawsteel.Stamina{Value: stamina, Max: stamina},
		Characteristics: characteristics,
		Combat: drawsteel.Combat{
			Save:      drawsteel.Save{Threshold: DefaultSaveThreshold},
			Size:      size,
			Stability: h.Stability,
			Turns:     turns,
		},
		Movement: movement,
		Damage: drawsteel.ActorDamage{
			Immunities: b.damageMap(h.Immunities),
			Weaknesses: b.damageMap(h.Weaknesses),
		},
		Source: b.source,
		Negotiation: drawsteel.Negotiation{
			Motivation: []string{},
			Pitfalls:   []string{},
		},
		Monster: drawsteel.Monster{
			FreeStrike:   h.FreeStrike,
			Keywords:     keywords,
			Level:        positiveOr(h.Level, DefaultLevel),
			EV:           h.EV,
			Role:         h.Role,
			Organization: h.Organization,
			WithCaptain:  h.WithCaptain,
		},
	}
}

// damageMap fills every vocabulary slot, keeping parsed values.
func (b *Builder) damageMap(parsed drawsteel.DamageMap) drawsteel.DamageMap {
	m := drawsteel.NewDamageMap(b.vocabulary.DamageTypes())
	for k, v := range parsed {
		if _, ok := m[k]; ok {
			m[k] = v
		}
	}
	return m
}

func (b *Builder) feature(f *drawsteel.Feature) drawsteel.Item {
	item := drawsteel.Item{
		Name:    f.Name,
		Type:    drawsteel.ItemTypeFeature,
		Img:     b.icons.Icon(IconKey{ItemType: drawsteel.ItemTypeFeature}),
		DSID:    DSID(f.Name),
		System:  drawsteel.ItemSystem{Description: drawsteel.Description{Value: f.Description}},
		Effects: []drawsteel.StatusEffect{},
	}
	if f.Effect.Before != "" || f.Effect.After != "" {
		effect := f.Effect
		item.System.Effect = &effect
	}
	return item
}

func (b *Builder) ability(ab *drawsteel.Ability, h *drawsteel.Header) drawsteel.Item {
	actionType, category := itemCategory(ab.Category)

	characteristics := make([]string, 0, len(ab.Characteristics))
	for _, ch := range ab.Characteristics {
		characteristics = append(characteristics, string(ch))
	}
	if len(characteristics) == 0 && ab.HasTiers() {
		characteristics = append(characteristics, string(h.HighestOrDefault()))
	}

	effects := make(map[string]drawsteel.EffectGroup, len(ab.EffectGroups))
	for _, g := range ab.EffectGroups {
		effects[g.ID] = g
	}

	distance, target, effect := ab.Distance, ab.Target, ab.Effect
	spend := ab.Spend

	statuses := ab.StatusEffects
	if statuses == nil {
		statuses = []drawsteel.StatusEffect{}
	}

	return drawsteel.Item{
		Name: ab.Name,
		Type: drawsteel.ItemTypeAbility,
		Img:  b.icons.Icon(IconKey{ItemType: drawsteel.ItemTypeAbility, Category: string(ab.Category)}),
		DSID: DSID(ab.Name),
		System: drawsteel.ItemSystem{
			Type:          actionType,
			Category:      category,
			Keywords:      ab.Keywords,
			Distance:      &distance,
			Target:        &target,
			Trigger:       ab.Trigger,
			Resource:      ab.Resource,
			Spend:         &spend,
			Effect:        &effect,
			DamageDisplay: ab.DamageDisplay,
			Power: &drawsteel.Power{
				Roll: drawsteel.PowerRoll{
					Formula:         ab.Formula,
					Characteristics: characteristics,
				},
				Effects: effects,
			},
		},
		Effects: statuses,
	}
}

// itemCategory splits an ability category into the item's action type and
// its ability category. Signature abilities are main actions.
func itemCategory(c drawsteel.Category) (string, string) {
	switch c {
	case drawsteel.CategorySignature:
		return string(drawsteel.CategoryMain), "signature"
	case drawsteel.CategoryVillain:
		return string(drawsteel.CategoryVillain), "villain"
	case drawsteel.CategoryMalice:
		return string(drawsteel.CategoryMalice), "malice"
	default:
		return string(c), ""
	}
}

// DSID is the item's system identifier: the name lowercased with spaces
// turned into dashes.
func DSID(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func positiveOr(n, def int) int {
	if n <= 0 {
		return def
	}
	return n
}
