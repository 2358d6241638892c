package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/drawsteel-importer/internal/entities/drawsteel"
	"github.com/KirkDiggler/drawsteel-importer/internal/testutils"
)

type LocalCommandsTestSuite struct {
	suite.Suite
	dir string
	out *bytes.Buffer
}

func TestLocalCommandsSuite(t *testing.T) {
	suite.Run(t, new(LocalCommandsTestSuite))
}

func (s *LocalCommandsTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.out = new(bytes.Buffer)
	rootCmd.SetOut(s.out)
	rootCmd.SetErr(new(bytes.Buffer))
	s.T().Setenv("LOG_LEVEL", "error")
}

func (s *LocalCommandsTestSuite) write(name, text string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(path, []byte(text), 0o600))
	return path
}

func (s *LocalCommandsTestSuite) TestParse() {
	path := s.write("sniper.txt", testutils.GoblinSniperText)
	malice := s.write("malice.txt", testutils.GoblinMaliceText)

	rootCmd.SetArgs([]string{"parse", path, "--malice", malice, "--env-file", filepath.Join(s.dir, "none.env")})
	s.Require().NoError(rootCmd.Execute())

	var out struct {
		Header  *drawsteel.Header
		Malice  []*drawsteel.Ability
		Actor   *drawsteel.Actor
		Notices []drawsteel.Notice
	}
	s.Require().NoError(json.Unmarshal(s.out.Bytes(), &out))
	s.Require().NotNil(out.Header)
	s.Assert().Equal(testutils.GoblinSniperName, out.Header.Name)
	s.Assert().Len(out.Malice, 2)
	s.Require().NotNil(out.Actor)
	s.Assert().Len(out.Actor.Items, 4)
}

func (s *LocalCommandsTestSuite) TestImport() {
	sniper := s.write("sniper.txt", testutils.GoblinSniperText)
	dest := filepath.Join(s.dir, "actors")

	rootCmd.SetArgs([]string{"import", sniper, "--out", dest, "--folder", "Goblins", "--env-file", filepath.Join(s.dir, "none.env")})
	s.Require().NoError(rootCmd.Execute())
	s.Assert().Contains(s.out.String(), "Imported 1 stat blocks")

	data, err := os.ReadFile(filepath.Join(dest, "goblin-sniper.json"))
	s.Require().NoError(err)

	var actor drawsteel.Actor
	s.Require().NoError(json.Unmarshal(data, &actor))
	s.Assert().Equal("Goblins", actor.Folder)
	s.Assert().NotEmpty(actor.ID)
}

func (s *LocalCommandsTestSuite) TestImportWithoutHeaderFails() {
	path := s.write("features.txt", testutils.FeatureOnlyText)

	rootCmd.SetArgs([]string{"import", path, "--out", s.dir, "--env-file", filepath.Join(s.dir, "none.env")})
	err := rootCmd.Execute()
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "no monster header found")
}
