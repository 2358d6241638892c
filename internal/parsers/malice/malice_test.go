package malice_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/drawsteel-importer/internal/entities/drawsteel"
	"github.com/KirkDiggler/drawsteel-importer/internal/errors"
	"github.com/KirkDiggler/drawsteel-importer/internal/parsers/conditions"
	"github.com/KirkDiggler/drawsteel-importer/internal/parsers/dialect"
	"github.com/KirkDiggler/drawsteel-importer/internal/parsers/malice"
	"github.com/KirkDiggler/drawsteel-importer/internal/parsers/tier"
	"github.com/KirkDiggler/drawsteel-importer/internal/vocab"
)

const officialText = `*
Guarding Gale 3 Malice
The wind howls around the dragon.
! 6 damage; push 2
@ 10 damage; push 4
# 13 damage; push 6; M<3] they are slowed (save ends)
Effect: The area is difficult terrain until the end of the round.
*
Breath Weapon 2d10 + 3 5 Malice
! 4 fire damage
@ 7 fire damage
# 10 fire damage`

const preReleaseText = `Goblin Malice Features
a Goblin Rush 3 Malice
Each goblin shifts up to their speed.
b Crossfire 5 Malice
Ranged, Weapon Main action
e Ranged 10 Two creatures
1 5 damage
2 8 damage
3 11 damage; the target is bleeding (save ends)
c Spear Charge Signature Ability
Every goblin charges.`

type MaliceTestSuite struct {
	suite.Suite
	normalizer *conditions.Normalizer
	tiers      *tier.Parser
}

func TestMaliceSuite(t *testing.T) {
	suite.Run(t, new(MaliceTestSuite))
}

func (s *MaliceTestSuite) SetupTest() {
	tables := vocab.Default()
	s.normalizer = conditions.NewNormalizer(tables)
	tiers, err := tier.NewParser(&tier.Config{Vocabulary: tables, Normalizer: s.normalizer})
	s.Require().NoError(err)
	s.tiers = tiers
}

func (s *MaliceTestSuite) parser(d *dialect.Dialect) *malice.Parser {
	p, err := malice.NewParser(&malice.Config{Dialect: d, Tiers: s.tiers, Normalizer: s.normalizer})
	s.Require().NoError(err)
	return p
}

func (s *MaliceTestSuite) TestOfficial() {
	result := s.parser(dialect.Official()).Parse(officialText)

	s.Require().Len(result.Abilities, 2)
	s.Assert().Empty(result.Notices)
	s.Assert().Empty(result.Creature)

	gale := result.Abilities[0]
	s.Assert().Equal("Guarding Gale", gale.Name)
	s.Assert().Equal(drawsteel.CategoryMalice, gale.Category)
	s.Require().NotNil(gale.Resource)
	s.Assert().Equal(3, *gale.Resource)
	s.Assert().Equal("Spend 3 Malice.", gale.Trigger)
	s.Assert().Equal(drawsteel.DistanceSpecial, gale.Distance.Type)

	s.Require().NotNil(gale.Tiers[0])
	s.Assert().Equal(6, gale.Tiers[0].Damage.Value)
	s.Assert().Equal("push", gale.Tiers[0].Movement.Name)
	s.Require().NotNil(gale.Tiers[2])
	s.Require().Len(gale.Tiers[2].Conditions, 1)
	s.Assert().Equal("slowed", gale.Tiers[2].Conditions[0].Name)
	s.Assert().Empty(gale.StatusEffects)

	s.Assert().Contains(gale.Effect.Before,
		`<p>The wind howls around the dragon.</p><dl class="power-roll-display"><dt class="tier1"><p>11 or less</p></dt><dd><p>[[/damage 6]] damage; push 2</p></dd>`)
	s.Assert().Contains(gale.Effect.Before, `<dt class="tier3"><p>17+</p></dt>`)
	s.Assert().Contains(gale.Effect.Before, "M&lt;3")
	s.Assert().Contains(gale.Effect.Before, "[[/apply slowed")
	s.Assert().Equal("<p>The area is difficult terrain until the end of the round.</p>", gale.Effect.After)

	breath := result.Abilities[1]
	s.Assert().Equal("Breath Weapon", breath.Name)
	s.Assert().Equal("2d10 + 3", breath.Formula)
	s.Require().NotNil(breath.Resource)
	s.Assert().Equal(5, *breath.Resource)
	s.Assert().Equal([]string{"fire"}, breath.Tiers[0].Damage.Types)
	s.Assert().Equal(10, breath.Tiers[2].Damage.Value)
}

func (s *MaliceTestSuite) TestPreRelease() {
	result := s.parser(dialect.PreRelease()).Parse(preReleaseText)

	s.Assert().Equal("goblin", result.Creature)
	s.Require().Len(result.Abilities, 3)

	rush := result.Abilities[0]
	s.Assert().Equal("Goblin Rush", rush.Name)
	s.Assert().Equal("A goblin starts its turn.", rush.Trigger)
	s.Assert().Equal("<p>Each goblin shifts up to their speed.</p>", rush.Effect.Before)
	s.Assert().False(rush.HasTiers())

	crossfire := result.Abilities[1]
	s.Assert().Equal("Crossfire", crossfire.Name)
	s.Assert().Equal([]string{"ranged", "weapon"}, crossfire.Keywords)
	s.Assert().Equal("ranged", crossfire.DamageDisplay)
	s.Assert().Equal(drawsteel.DistanceRanged, crossfire.Distance.Type)
	s.Require().NotNil(crossfire.Distance.Primary)
	s.Assert().Equal(10, *crossfire.Distance.Primary)
	s.Assert().Equal(drawsteel.TargetCreature, crossfire.Target.Type)
	s.Require().NotNil(crossfire.Target.Value)
	s.Assert().Equal(2, *crossfire.Target.Value)
	s.Assert().Equal(5, crossfire.Tiers[0].Damage.Value)
	s.Assert().Equal(8, crossfire.Tiers[1].Damage.Value)
	s.Require().Len(crossfire.Tiers[2].Conditions, 1)
	s.Assert().Equal("bleeding", crossfire.Tiers[2].Conditions[0].Name)

	spear := result.Abilities[2]
	s.Assert().Equal("Spear Charge", spear.Name)
	s.Assert().Nil(spear.Resource)
	s.Assert().Equal("A goblin starts its turn.", spear.Trigger)
}

func (s *MaliceTestSuite) TestReviewMarkers() {
	result := s.parser(dialect.Review()).Parse("*\nGale 2 Malice\nT1 3 damage\nTier 2 5 damage\nT3: 7 damage")

	s.Require().Len(result.Abilities, 1)
	gale := result.Abilities[0]
	s.Assert().Equal(3, gale.Tiers[0].Damage.Value)
	s.Assert().Equal(5, gale.Tiers[1].Damage.Value)
	s.Assert().Equal(7, gale.Tiers[2].Damage.Value)
}

func (s *MaliceTestSuite) TestTierContinuation() {
	text := "*\nSnare 2 Malice\n! 3 damage; the target is\nrestrained (save ends)\nThe snare stays in place."
	result := s.parser(dialect.Official()).Parse(text)

	s.Require().Len(result.Abilities, 1)
	snare := result.Abilities[0]
	s.Require().NotNil(snare.Tiers[0])
	s.Require().Len(snare.Tiers[0].Conditions, 1)
	s.Assert().Equal("restrained", snare.Tiers[0].Conditions[0].Name)
	s.Assert().Equal("<p>The snare stays in place.</p>", snare.Effect.After)
}

func (s *MaliceTestSuite) TestHeaderNeedsDelimiter() {
	text := "*\nGale 2 Malice\nThe wind rises.\nSpend 3 Malice"
	result := s.parser(dialect.Official()).Parse(text)

	s.Require().Len(result.Abilities, 1)
	s.Assert().Equal("Gale", result.Abilities[0].Name)
	s.Assert().Contains(result.Abilities[0].Effect.Before, "Spend 3 Malice")
}

func (s *MaliceTestSuite) TestStrayLines() {
	result := s.parser(dialect.Official()).Parse("stray line\n*\nGale 2 Malice")

	s.Require().Len(result.Abilities, 1)
	s.Require().Len(result.Notices, 1)
	s.Assert().Equal(drawsteel.NoticeMissingHeader, result.Notices[0].Kind)
	s.Assert().Equal("stray line", result.Notices[0].Value)
}

func (s *MaliceTestSuite) TestCustomConditionStub() {
	result := s.parser(dialect.Official()).Parse("*\nMark 1 Malice\n! the target is marked (EoT)")

	s.Require().Len(result.Abilities, 1)
	effects := result.Abilities[0].StatusEffects
	s.Require().Len(effects, 1)
	s.Assert().Equal("marked", effects[0].Name)
	s.Assert().Equal([]string{"marked"}, effects[0].Statuses)
}

func (s *MaliceTestSuite) TestEmpty() {
	result := s.parser(dialect.Official()).Parse("  \n\n")

	s.Assert().NotNil(result.Abilities)
	s.Assert().Empty(result.Abilities)
	s.Assert().Empty(result.Notices)
}

func (s *MaliceTestSuite) TestConfigValidation() {
	_, err := malice.NewParser(&malice.Config{Dialect: dialect.Official()})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}
