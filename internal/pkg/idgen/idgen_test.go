package idgen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/drawsteel-importer/internal/pkg/idgen"
)

type IDGenTestSuite struct {
	suite.Suite
}

func TestIDGenSuite(t *testing.T) {
	suite.Run(t, new(IDGenTestSuite))
}

func (s *IDGenTestSuite) TestRandom() {
	gen := idgen.NewRandom()
	seen := make(map[string]bool)
	for range 200 {
		id := gen.Generate()
		s.Require().Len(id, idgen.RandomIDLength)
		s.Require().False(seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func (s *IDGenTestSuite) TestSequential() {
	gen := idgen.NewSequential("group")
	s.Assert().Equal("group_1", gen.Generate())
	s.Assert().Equal("group_2", gen.Generate())

	bare := idgen.NewSequential("")
	s.Assert().Equal("1", bare.Generate())
}

func (s *IDGenTestSuite) TestUUID() {
	id := idgen.NewUUID("actor").Generate()
	s.Assert().True(strings.HasPrefix(id, "actor_"))
	s.Assert().Len(id, len("actor_")+36)
}
