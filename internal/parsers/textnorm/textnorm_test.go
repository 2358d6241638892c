package textnorm_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/drawsteel-importer/internal/parsers/textnorm"
)

type TextNormTestSuite struct {
	suite.Suite
}

func TestTextNormSuite(t *testing.T) {
	suite.Run(t, new(TextNormTestSuite))
}

func (s *TextNormTestSuite) TestPreservingLines() {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "ligatures",
			input:    "AcƟon ﬁre ﬂame aƩack",
			expected: "Action fire flame atack",
		},
		{
			name:     "dashes and quotes",
			input:    "Might −1 — “go” it’s",
			expected: `Might -1 - "go" it's`,
		},
		{
			name:     "line endings",
			input:    "one\r\ntwo\rthree",
			expected: "one\ntwo\nthree",
		},
		{
			name:     "whitespace collapse and trim",
			input:    "  Goblin \t Level   1 Minion  ",
			expected: "Goblin Level 1 Minion",
		},
		{
			name:     "blank lines survive",
			input:    "a\n\n\n  \nb",
			expected: "a\n\n\n\nb",
		},
		{
			name:     "tier glyphs untouched",
			input:    "✦ 5 damage\n★ 8 damage\né 3 damage",
			expected: "✦ 5 damage\n★ 8 damage\né 3 damage",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.expected, textnorm.PreservingLines(tc.input))
		})
	}
}

func (s *TextNormTestSuite) TestLine() {
	s.Assert().Equal("The creature moves quickly away.", textnorm.Line("The creature moves\n  quickly away. "))
	s.Assert().Equal("", textnorm.Line(" \n\t "))
}

func (s *TextNormTestSuite) TestIdempotent() {
	inputs := []string{
		"Goblin Sniper Level 1 Minion Artillery\n\nEV 3 for four minions",
		"  ! 6 fire damage;   they are weakened (save ends)  ",
		"a\r\n\r\nb\t\tc",
		"",
	}
	for _, in := range inputs {
		once := textnorm.PreservingLines(in)
		s.Assert().Equal(once, textnorm.PreservingLines(once))

		single := textnorm.Line(in)
		s.Assert().Equal(single, textnorm.Line(single))
	}
}

func (s *TextNormTestSuite) TestNonEmptyLines() {
	s.Assert().Equal([]string{"a", "b"}, textnorm.NonEmptyLines("a\n\n  \nb\n"))
	s.Assert().Nil(textnorm.NonEmptyLines("\n\n"))
}
