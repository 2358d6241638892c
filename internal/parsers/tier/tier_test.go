package tier_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/drawsteel-importer/internal/entities/drawsteel"
	"github.com/KirkDiggler/drawsteel-importer/internal/errors"
	"github.com/KirkDiggler/drawsteel-importer/internal/parsers/conditions"
	"github.com/KirkDiggler/drawsteel-importer/internal/parsers/tier"
	"github.com/KirkDiggler/drawsteel-importer/internal/vocab"
)

type TierTestSuite struct {
	suite.Suite
	parser *tier.Parser
}

func TestTierSuite(t *testing.T) {
	suite.Run(t, new(TierTestSuite))
}

func (s *TierTestSuite) SetupTest() {
	tables := vocab.Default()
	p, err := tier.NewParser(&tier.Config{
		Vocabulary: tables,
		Normalizer: conditions.NewNormalizer(tables),
	})
	s.Require().NoError(err)
	s.parser = p
}

func (s *TierTestSuite) TestDamageAndCondition() {
	result := s.parser.Parse("! 6 fire damage; they are weakened (save ends)", 1)

	s.Require().NotNil(result.Damage)
	s.Assert().Equal(6, result.Damage.Value)
	s.Assert().Equal([]string{"fire"}, result.Damage.Types)
	s.Assert().Equal("weak", result.Potency)

	s.Require().Len(result.Conditions, 1)
	cond := result.Conditions[0]
	s.Assert().Equal("weakened", cond.Name)
	s.Assert().Equal("save", cond.End)
	s.Assert().True(cond.SaveEnds)
	s.Assert().Equal("weak", cond.Potency)
	s.Assert().Equal(drawsteel.CharacteristicNone, cond.Characteristic)
	s.Assert().False(cond.Custom)
	s.Assert().Empty(result.Narrative)
}

func (s *TierTestSuite) TestParse() {
	testCases := []struct {
		name      string
		text      string
		tier      int
		damage    *drawsteel.Damage
		movement  *drawsteel.Movement
		condNames []string
		narrative string
		potency   string
	}{
		{
			name:    "untyped damage",
			text:    "@ 9 damage",
			tier:    2,
			damage:  &drawsteel.Damage{Value: 9, Types: []string{}},
			potency: "average",
		},
		{
			name:     "damage with vertical push",
			text:     "# 12 damage; vertical push 4",
			tier:     3,
			damage:   &drawsteel.Damage{Value: 12, Types: []string{}},
			movement: &drawsteel.Movement{Name: "push", Distance: 4, Direction: "vertical"},
			potency:  "strong",
		},
		{
			name:      "movement and condition from disjoint text",
			text:      "✦ slide 2; m<1] they are slowed (save ends)",
			tier:      1,
			movement:  &drawsteel.Movement{Name: "slide", Distance: 2},
			condNames: []string{"slowed"},
			potency:   "weak",
		},
		{
			name:      "narrative remainder",
			text:      "T2: 5 damage; the target can't shift until the end of their next turn",
			tier:      2,
			damage:    &drawsteel.Damage{Value: 5, Types: []string{}},
			narrative: "the target can't shift until the end of their next turn",
			potency:   "average",
		},
		{
			name:      "connective left by damage is dropped",
			text:      "Tier 3 - 8 damage and pull 3",
			tier:      3,
			damage:    &drawsteel.Damage{Value: 8, Types: []string{}},
			movement:  &drawsteel.Movement{Name: "pull", Distance: 3},
			potency:   "strong",
		},
		{
			name:      "two conditions in one clause",
			text:      "★ 7 poison damage; they are bleeding and dazed (save ends)",
			tier:      2,
			damage:    &drawsteel.Damage{Value: 7, Types: []string{"poison"}},
			condNames: []string{"bleeding", "dazed"},
			potency:   "average",
		},
		{
			name:      "unknown damage word is not a type",
			text:      "! 3 extra damage",
			tier:      1,
			damage:    &drawsteel.Damage{Value: 3, Types: []string{}},
			potency:   "weak",
		},
		{
			name:      "condition words without a condition clause are narrative",
			text:      "! weakened (save ends)",
			tier:      1,
			narrative: "weakened (save ends)",
			potency:   "weak",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			result := s.parser.Parse(tc.text, tc.tier)
			s.Assert().Equal(tc.tier, result.Tier)
			s.Assert().Equal(tc.damage, result.Damage)
			s.Assert().Equal(tc.movement, result.Movement)
			s.Assert().Equal(tc.narrative, result.Narrative)
			s.Assert().Equal(tc.potency, result.Potency)

			var names []string
			for _, c := range result.Conditions {
				names = append(names, c.Name)
			}
			s.Assert().Equal(tc.condNames, names)
		})
	}
}

func (s *TierTestSuite) TestCharacteristicTrigger() {
	result := s.parser.Parse("! 4 damage; A<2] they are prone", 1)
	s.Require().Len(result.Conditions, 1)
	s.Assert().Equal(drawsteel.CharacteristicAgility, result.Conditions[0].Characteristic)
	s.Assert().Equal("", result.Conditions[0].End)
	s.Assert().Equal([]string{"A<2] they are prone"}, result.RawClauses)
}

func (s *TierTestSuite) TestCustomCondition() {
	result := s.parser.Parse("# they are marked until the end of the encounter", 3)
	s.Require().Len(result.Conditions, 1)
	cond := result.Conditions[0]
	s.Assert().Equal("marked", cond.Name)
	s.Assert().True(cond.Custom)
	s.Assert().Equal(drawsteel.EndEncounter, cond.Duration.End)
}

func (s *TierTestSuite) TestPotencyOverride() {
	tables := vocab.Default()
	p, err := tier.NewParser(&tier.Config{
		Vocabulary: tables,
		Normalizer: conditions.NewNormalizer(tables),
		Potencies:  []string{"a", "b", "c"},
	})
	s.Require().NoError(err)
	s.Assert().Equal("b", p.Parse("@ 2 damage", 2).Potency)
	s.Assert().Equal("c", p.Parse("# 2 damage", 9).Potency)
}

func (s *TierTestSuite) TestConfigValidation() {
	_, err := tier.NewParser(&tier.Config{Potencies: []string{"a"}})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *TierTestSuite) TestStripMarker() {
	s.Assert().Equal("6 damage", tier.StripMarker("! 6 damage"))
	s.Assert().Equal("6 damage", tier.StripMarker("Tier 1: 6 damage"))
	s.Assert().Equal("6 damage", tier.StripMarker("T1 6 damage"))
	s.Assert().Equal("12 damage", tier.StripMarker("12 damage"))
}
