package segment_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/drawsteel-importer/internal/parsers/dialect"
	"github.com/KirkDiggler/drawsteel-importer/internal/parsers/segment"
	"github.com/KirkDiggler/drawsteel-importer/internal/vocab"
)

const officialBlock = `Gnasher Pack
A swarm of small biting things.

Goblin Sniper Level 1 Horde Artillery
Goblin, Humanoid EV 3
Might -2 Agility +2 Reason 0 Intuition 0 Presence -1

Crafty
The goblin doesn't provoke opportunity attacks.
*
Bow 2d10 + 2
Ranged, Strike, Weapon Main action
Ranged 10 One creature
! 3 damage
@ 5 damage
# 6 damage`

type SegmentTestSuite struct {
	suite.Suite
	official *segment.Segmenter
}

func TestSegmentSuite(t *testing.T) {
	suite.Run(t, new(SegmentTestSuite))
}

func (s *SegmentTestSuite) SetupTest() {
	seg, err := segment.NewSegmenter(&segment.Config{
		Dialect:    dialect.Official(),
		Vocabulary: vocab.Default(),
	})
	s.Require().NoError(err)
	s.official = seg
}

func (s *SegmentTestSuite) TestHeaderFoundOutOfPosition() {
	out := s.official.Segment(officialBlock)

	s.Require().True(out.HasHeader())
	s.Assert().Equal("Goblin Sniper Level 1 Horde Artillery", out.Header[0])
	s.Require().Len(out.Blocks, 3)
	s.Assert().Equal("Gnasher Pack", out.Blocks[0][0])
	s.Assert().Equal("Crafty", out.Blocks[1][0])
	s.Assert().Equal("Bow 2d10 + 2", out.Blocks[2][0])
	s.Assert().Len(out.Blocks[2], 6)
}

func (s *SegmentTestSuite) TestNoHeader() {
	out := s.official.Segment("Crafty\nThe goblin is sneaky.\n\nNimble\nIt moves fast.")

	s.Assert().False(out.HasHeader())
	s.Assert().Nil(out.Header)
	s.Assert().Len(out.Blocks, 2)
}

func (s *SegmentTestSuite) TestEmptyInput() {
	out := s.official.Segment("  \r\n\r\n ")
	s.Assert().False(out.HasHeader())
	s.Assert().Empty(out.Blocks)
}

func (s *SegmentTestSuite) TestIsHeader() {
	testCases := []struct {
		name     string
		lines    []string
		expected bool
	}{
		{name: "level and organization", lines: []string{"Ogre Level 3 Elite Brute"}, expected: true},
		{name: "level without rank", lines: []string{"Level 3 spell slot"}, expected: false},
		{name: "EV marker", lines: []string{"Giant EV 40"}, expected: true},
		{name: "characteristics", lines: []string{"Might +3 Agility 0"}, expected: true},
		{name: "weakness", lines: []string{"Weakness: holy 5"}, expected: true},
		{name: "feature", lines: []string{"Crafty", "The goblin is sneaky."}, expected: false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.expected, s.official.IsHeader(tc.lines))
		})
	}
}

func (s *SegmentTestSuite) TestSplit() {
	testCases := []struct {
		name     string
		text     string
		seg      dialect.Segmentation
		expected []string
	}{
		{
			name:     "blank runs of one",
			text:     "a\nb\n\nc\n\n\nd",
			seg:      dialect.Official().Segmentation,
			expected: []string{"a\nb", "c", "d"},
		},
		{
			name:     "blank runs of two keep single gaps together",
			text:     "a\n\nb\n\n\nc",
			seg:      dialect.Segmentation{Strategy: dialect.StrategyBlankRuns, MinBlankLines: 2, Delimiter: "*"},
			expected: []string{"a\nb", "c"},
		},
		{
			name:     "blank runs also split on delimiter",
			text:     "a\n*\nb",
			seg:      dialect.Official().Segmentation,
			expected: []string{"a", "b"},
		},
		{
			name:     "separator needs blank lines around it",
			text:     "a\n\n*\n\nb\n*\nc",
			seg:      dialect.PreRelease().Segmentation,
			expected: []string{"a", "b\n*\nc"},
		},
		{
			name:     "separator at the start",
			text:     "*\n\na",
			seg:      dialect.PreRelease().Segmentation,
			expected: []string{"a"},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.expected, segment.Split(tc.text, tc.seg))
		})
	}
}

func (s *SegmentTestSuite) TestConfigValidation() {
	_, err := segment.NewSegmenter(&segment.Config{})
	s.Assert().Error(err)
}
