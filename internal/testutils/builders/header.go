// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/drawsteel-importer/internal/entities/drawsteel"
	"github.com/KirkDiggler/drawsteel-importer/internal/vocab"
)

// HeaderBuilder provides a fluent interface for building test Header instances
type HeaderBuilder struct {
	header *drawsteel.Header
}

// NewHeaderBuilder creates a builder for a level 1 goblin warrior horde
// with the default vocabulary's damage slots.
func NewHeaderBuilder() *HeaderBuilder {
	slots := vocab.Default().DamageTypes()
	return &HeaderBuilder{
		header: &drawsteel.Header{
			Name:                  "Goblin Warrior",
			Level:                 1,
			Role:                  "harrier",
			Organization:          "horde",
			Characteristics:       drawsteel.Characteristics{Might: -2, Agility: 2},
			HighestCharacteristic: drawsteel.CharacteristicAgility,
			Size:                  1,
			SizeLetter:            "S",
			Speed:                 6,
			Stamina:               15,
			FreeStrike:            1,
			MovementTypes:         []string{"walk", "climb"},
			Immunities:            drawsteel.NewDamageMap(slots),
			Weaknesses:            drawsteel.NewDamageMap(slots),
			EV:                    3,
			Keywords:              []string{"goblin", "humanoid"},
		},
	}
}

// WithName sets the monster name
func (b *HeaderBuilder) WithName(name string) *HeaderBuilder {
	b.header.Name = name
	return b
}

// WithLevel sets the level
func (b *HeaderBuilder) WithLevel(level int) *HeaderBuilder {
	b.header.Level = level
	return b
}

// WithRole sets role and organization
func (b *HeaderBuilder) WithRole(role, organization string) *HeaderBuilder {
	b.header.Role = role
	b.header.Organization = organization
	return b
}

// WithCharacteristics sets the characteristics and recomputes the highest
func (b *HeaderBuilder) WithCharacteristics(c drawsteel.Characteristics) *HeaderBuilder {
	b.header.Characteristics = c
	b.header.HighestCharacteristic = c.Highest()
	return b
}

// WithStats sets size, speed, stamina and stability
func (b *HeaderBuilder) WithStats(size, speed, stamina, stability int) *HeaderBuilder {
	b.header.Size = size
	b.header.Speed = speed
	b.header.Stamina = stamina
	b.header.Stability = stability
	if size != 1 {
		b.header.SizeLetter = ""
	}
	return b
}

// WithMovement sets the movement types
func (b *HeaderBuilder) WithMovement(types ...string) *HeaderBuilder {
	b.header.MovementTypes = types
	return b
}

// WithImmunity sets one immunity value
func (b *HeaderBuilder) WithImmunity(damageType string, value int) *HeaderBuilder {
	b.header.Immunities[damageType] = value
	return b
}

// WithWeakness sets one weakness value
func (b *HeaderBuilder) WithWeakness(damageType string, value int) *HeaderBuilder {
	b.header.Weaknesses[damageType] = value
	return b
}

// Build returns the built header
func (b *HeaderBuilder) Build() *drawsteel.Header {
	return b.header
}
