package distance_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/drawsteel-importer/internal/entities/drawsteel"
	"github.com/KirkDiggler/drawsteel-importer/internal/parsers/distance"
)

type DistanceTestSuite struct {
	suite.Suite
}

func TestDistanceSuite(t *testing.T) {
	suite.Run(t, new(DistanceTestSuite))
}

func intPtr(n int) *int { return &n }

func (s *DistanceTestSuite) TestParse() {
	testCases := []struct {
		name     string
		line     string
		distance drawsteel.Distance
		target   drawsteel.Target
	}{
		{
			name:     "melee without target",
			line:     "Melee 2",
			distance: drawsteel.Distance{Type: drawsteel.DistanceMelee, Primary: intPtr(2)},
			target:   drawsteel.Target{Type: drawsteel.TargetSpecial},
		},
		{
			name: "cube within with each enemy",
			line: "4 cube within 20 Each enemy in the area",
			distance: drawsteel.Distance{
				Type:     drawsteel.DistanceCube,
				Primary:  intPtr(4),
				Tertiary: intPtr(20),
			},
			target: drawsteel.Target{Type: drawsteel.TargetEnemy},
		},
		{
			name:     "melee with counted creatures or objects",
			line:     "Melee 2 Two creatures or objects",
			distance: drawsteel.Distance{Type: drawsteel.DistanceMelee, Primary: intPtr(2)},
			target:   drawsteel.Target{Type: drawsteel.TargetCreatureObject, Value: intPtr(2)},
		},
		{
			name:     "ranged one creature",
			line:     "Ranged 10 One creature",
			distance: drawsteel.Distance{Type: drawsteel.DistanceRanged, Primary: intPtr(10)},
			target:   drawsteel.Target{Type: drawsteel.TargetCreature, Value: intPtr(1)},
		},
		{
			name: "line with unicode times",
			line: "10 × 1 line within 1 All creatures",
			distance: drawsteel.Distance{
				Type:      drawsteel.DistanceLine,
				Primary:   intPtr(10),
				Secondary: intPtr(1),
				Tertiary:  intPtr(1),
			},
			target: drawsteel.Target{Type: drawsteel.TargetCreature},
		},
		{
			name:     "burst",
			line:     "5 burst Each enemy in the area",
			distance: drawsteel.Distance{Type: drawsteel.DistanceBurst, Primary: intPtr(5)},
			target:   drawsteel.Target{Type: drawsteel.TargetEnemy},
		},
		{
			name:     "aura prefix form",
			line:     "Aura 3",
			distance: drawsteel.Distance{Type: drawsteel.DistanceAura, Primary: intPtr(3)},
			target:   drawsteel.Target{Type: drawsteel.TargetSpecial},
		},
		{
			name:     "wall",
			line:     "6 wall within 10",
			distance: drawsteel.Distance{Type: drawsteel.DistanceWall, Primary: intPtr(6), Secondary: intPtr(10)},
			target:   drawsteel.Target{Type: drawsteel.TargetSpecial},
		},
		{
			name:     "self",
			line:     "Self",
			distance: drawsteel.Distance{Type: drawsteel.DistanceSelf, Primary: intPtr(0)},
			target:   drawsteel.Target{Type: drawsteel.TargetSpecial},
		},
		{
			name:     "self self",
			line:     "Self Self",
			distance: drawsteel.Distance{Type: drawsteel.DistanceSelf, Primary: intPtr(0)},
			target:   drawsteel.Target{Type: drawsteel.TargetSelf},
		},
		{
			name:     "melee or ranged",
			line:     "Melee 1 or ranged 5 One creature",
			distance: drawsteel.Distance{Type: drawsteel.DistanceMeleeRanged, Primary: intPtr(1), Secondary: intPtr(5)},
			target:   drawsteel.Target{Type: drawsteel.TargetCreature, Value: intPtr(1)},
		},
		{
			name:     "unknown shape is special",
			line:     "Special",
			distance: drawsteel.Distance{Type: drawsteel.DistanceSpecial},
			target:   drawsteel.Target{Type: drawsteel.TargetSpecial},
		},
		{
			name:     "x separated target",
			line:     "Ranged 5 x Special",
			distance: drawsteel.Distance{Type: drawsteel.DistanceRanged, Primary: intPtr(5)},
			target:   drawsteel.Target{Type: drawsteel.TargetSpecial},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			result := distance.Parse(tc.line)
			s.Assert().Equal(tc.distance, result.Distance)
			s.Assert().Equal(tc.target, result.Target)
		})
	}
}

func (s *DistanceTestSuite) TestParseTarget() {
	testCases := []struct {
		phrase   string
		expected drawsteel.Target
	}{
		{"", drawsteel.Target{Type: drawsteel.TargetSpecial}},
		{"Three enemies", drawsteel.Target{Type: drawsteel.TargetEnemy, Value: intPtr(3)}},
		{"Each ally in the area", drawsteel.Target{Type: drawsteel.TargetAlly}},
		{"Self or one ally", drawsteel.Target{Type: drawsteel.TargetSelfOrAlly, Value: intPtr(1)}},
		{"Self or one creature", drawsteel.Target{Type: drawsteel.TargetSelfOrCreature, Value: intPtr(1)}},
		{"One object", drawsteel.Target{Type: drawsteel.TargetObject, Value: intPtr(1)}},
		{"All allies", drawsteel.Target{Type: drawsteel.TargetAlly}},
		{"Anyone nearby", drawsteel.Target{Type: drawsteel.TargetSpecial}},
	}

	for _, tc := range testCases {
		s.Run(tc.phrase, func() {
			s.Assert().Equal(tc.expected, distance.ParseTarget(tc.phrase))
		})
	}
}
