package importer_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/drawsteel-importer/internal/entities/drawsteel"
	"github.com/KirkDiggler/drawsteel-importer/internal/errors"
	"github.com/KirkDiggler/drawsteel-importer/internal/orchestrators/importer"
	"github.com/KirkDiggler/drawsteel-importer/internal/parsers/dialect"
	"github.com/KirkDiggler/drawsteel-importer/internal/pkg/clock"
	"github.com/KirkDiggler/drawsteel-importer/internal/pkg/idgen"
	actorrepo "github.com/KirkDiggler/drawsteel-importer/internal/repositories/actor"
	actormock "github.com/KirkDiggler/drawsteel-importer/internal/repositories/actor/mock"
	"github.com/KirkDiggler/drawsteel-importer/internal/testutils"
	"github.com/KirkDiggler/drawsteel-importer/internal/testutils/mocks"
	"github.com/KirkDiggler/drawsteel-importer/internal/vocab"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *actormock.MockRepository
	orchestrator importer.Service
	ctx          context.Context
	now          time.Time
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = actormock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()
	s.now = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	orch, err := importer.NewOrchestrator(s.config(s.mockRepo))
	s.Require().NoError(err)
	s.orchestrator = orch
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) config(repo actorrepo.Repository) *importer.Config {
	return &importer.Config{
		Dialect:     dialect.Official(),
		Vocabulary:  vocab.Default(),
		ActorRepo:   repo,
		IDGenerator: idgen.NewSequential("grp"),
		Clock:       &clock.Fixed{At: s.now},
		SourceBook:  "Monsters",
	}
}

func groupsByType(groups []drawsteel.EffectGroup, t drawsteel.GroupType) []drawsteel.EffectGroup {
	var out []drawsteel.EffectGroup
	for _, g := range groups {
		if g.Type == t {
			out = append(out, g)
		}
	}
	return out
}

func (s *OrchestratorTestSuite) TestParseMonster() {
	out, err := s.orchestrator.ParseMonster(s.ctx, &importer.ParseMonsterInput{Text: testutils.GoblinSniperText})
	s.Require().NoError(err)

	s.Require().NotNil(out.Header)
	s.Assert().Equal(testutils.GoblinSniperName, out.Header.Name)
	s.Assert().Equal("artillery", out.Header.Role)
	s.Assert().Equal("horde", out.Header.Organization)
	s.Assert().Equal(drawsteel.CharacteristicAgility, out.Header.HighestCharacteristic)

	s.Require().Len(out.Features, 1)
	s.Assert().Equal("Crafty", out.Features[0].Name)

	s.Require().Len(out.Abilities, 1)
	bow := out.Abilities[0]
	s.Assert().Equal("Bow", bow.Name)
	s.Assert().Equal(drawsteel.CategoryMain, bow.Category)
	s.Assert().Equal("2d10 + 2", bow.Formula)

	damage := groupsByType(bow.EffectGroups, drawsteel.GroupDamage)
	s.Require().Len(damage, 1)
	s.Assert().Equal("grp_1", damage[0].ID)

	applied := groupsByType(bow.EffectGroups, drawsteel.GroupApplied)
	s.Require().Len(applied, 2)
	s.Assert().Equal("Slowed", applied[0].Name)
	s.Assert().Equal("Bleeding", applied[1].Name)

	s.Assert().Empty(out.Malice)

	s.Require().NotNil(out.Actor)
	s.Assert().Empty(out.Actor.ID)
	s.Assert().Equal(importer.DefaultFolder, out.Actor.Folder)
	s.Assert().Equal(s.now, out.Actor.ImportedAt)
	s.Require().Len(out.Actor.Items, 2)
	s.Assert().Equal(drawsteel.ItemTypeFeature, out.Actor.Items[0].Type)
	s.Assert().Equal("bow", out.Actor.Items[1].DSID)
}

func (s *OrchestratorTestSuite) TestParseMonsterWithMalice() {
	out, err := s.orchestrator.ParseMonster(s.ctx, &importer.ParseMonsterInput{
		Text:       testutils.GoblinSniperText,
		MaliceText: testutils.GoblinMaliceText,
	})
	s.Require().NoError(err)

	s.Require().Len(out.Malice, 2)
	s.Assert().Equal("Swarm Tactics", out.Malice[0].Name)
	s.Require().Len(out.Malice[0].EffectGroups, 1)
	s.Assert().Equal(drawsteel.GroupDamage, out.Malice[0].EffectGroups[0].Type)
	s.Assert().False(out.Malice[0].EffectGroups[0].HasTiers())
	s.Assert().Len(groupsByType(out.Malice[1].EffectGroups, drawsteel.GroupDamage), 1)
	s.Assert().True(out.Malice[1].EffectGroups[0].HasTiers())

	s.Require().Len(out.Actor.Items, 4)
	s.Assert().Equal("malice", out.Actor.Items[3].System.Type)
}

func (s *OrchestratorTestSuite) TestAbilityWithoutPowerRollHasEmptyDamageGroup() {
	out, err := s.orchestrator.ParseMonster(s.ctx, &importer.ParseMonsterInput{
		Text: testutils.GoblinSniperText + "\n" + testutils.GoblinSneakText,
	})
	s.Require().NoError(err)

	var sneak *drawsteel.Ability
	for _, a := range out.Abilities {
		if a.Name == "Sneak" {
			sneak = a
		}
	}
	s.Require().NotNil(sneak)
	s.Assert().Equal(drawsteel.CategoryManeuver, sneak.Category)
	s.Assert().False(sneak.HasTiers())

	s.Require().Len(sneak.EffectGroups, 1)
	damage := groupsByType(sneak.EffectGroups, drawsteel.GroupDamage)
	s.Require().Len(damage, 1)
	s.Assert().NotEmpty(damage[0].ID)
	s.Assert().Empty(damage[0].Damage)

	item := out.Actor.Items[len(out.Actor.Items)-1]
	s.Assert().Equal("sneak", item.DSID)
	s.Require().NotNil(item.System.Power)
	s.Assert().Len(item.System.Power.Effects, 1)
}

func (s *OrchestratorTestSuite) TestParseMonsterWithoutHeader() {
	out, err := s.orchestrator.ParseMonster(s.ctx, &importer.ParseMonsterInput{Text: testutils.FeatureOnlyText})
	s.Require().NoError(err)

	s.Assert().Nil(out.Header)
	s.Assert().Nil(out.Actor)
	s.Assert().Len(out.Features, 2)
	s.Assert().Contains(out.Notices, drawsteel.Notice{Kind: drawsteel.NoticeMissingHeader, Field: "header"})
}

func (s *OrchestratorTestSuite) TestInvalidInput() {
	testCases := []struct {
		name string
		call func() error
	}{
		{"parse nil input", func() error { _, err := s.orchestrator.ParseMonster(s.ctx, nil); return err }},
		{"parse blank text", func() error {
			_, err := s.orchestrator.ParseMonster(s.ctx, &importer.ParseMonsterInput{Text: " \n "})
			return err
		}},
		{"import empty text", func() error {
			_, err := s.orchestrator.ImportMonster(s.ctx, &importer.ImportMonsterInput{})
			return err
		}},
		{"malice empty text", func() error {
			_, err := s.orchestrator.ParseMalice(s.ctx, &importer.ParseMaliceInput{})
			return err
		}},
		{"get empty id", func() error {
			_, err := s.orchestrator.GetActor(s.ctx, &importer.GetActorInput{})
			return err
		}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.call()
			s.Require().Error(err)
			s.Assert().True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *OrchestratorTestSuite) TestImportMonster() {
	captured := mocks.ExpectActorSave(s.mockRepo, "actor_1")

	out, err := s.orchestrator.ImportMonster(s.ctx, &importer.ImportMonsterInput{
		Text:   testutils.GoblinSniperText,
		Folder: "Goblins",
	})
	s.Require().NoError(err)

	s.Assert().Equal("actor_1", out.Actor.ID)
	s.Assert().Equal(testutils.GoblinSniperName, out.Actor.Name)
	s.Require().NotNil(*captured)
	s.Assert().Equal("Goblins", (*captured).Folder)
	s.Assert().Empty((*captured).ID)
}

func (s *OrchestratorTestSuite) TestImportMonsterWithoutHeader() {
	_, err := s.orchestrator.ImportMonster(s.ctx, &importer.ImportMonsterInput{Text: testutils.FeatureOnlyText})
	s.Require().Error(err)
	s.Assert().True(errors.IsFailedPrecondition(err))
	s.Assert().Equal(2, errors.GetMeta(err)["blocks"])
	s.Assert().Equal("official", errors.GetMeta(err)["dialect"])
}

func (s *OrchestratorTestSuite) TestImportMonsterSaveFails() {
	mocks.ExpectActorSaveError(s.mockRepo, errors.Unavailable("redis down"))

	_, err := s.orchestrator.ImportMonster(s.ctx, &importer.ImportMonsterInput{Text: testutils.GoblinSniperText})
	s.Require().Error(err)
	s.Assert().Equal(errors.CodeUnavailable, errors.GetCode(err))
	s.Assert().Contains(err.Error(), "failed to save actor")
}

func (s *OrchestratorTestSuite) TestParseMalice() {
	header := &drawsteel.Header{Name: "Goblin", HighestCharacteristic: drawsteel.CharacteristicAgility}

	out, err := s.orchestrator.ParseMalice(s.ctx, &importer.ParseMaliceInput{
		Text:   testutils.GoblinMaliceText,
		Header: header,
	})
	s.Require().NoError(err)

	s.Require().Len(out.Abilities, 2)
	arrows := out.Abilities[1]
	s.Assert().Equal("Rain of Arrows", arrows.Name)
	s.Require().NotNil(arrows.Resource)
	s.Assert().Equal(5, *arrows.Resource)
	s.Assert().Len(groupsByType(arrows.EffectGroups, drawsteel.GroupDamage), 1)
}

func (s *OrchestratorTestSuite) TestGetActor() {
	stored := &drawsteel.Actor{ID: "actor_7", Name: "Goblin Sniper"}
	mocks.ExpectActorGet(s.mockRepo, stored)

	out, err := s.orchestrator.GetActor(s.ctx, &importer.GetActorInput{ID: "actor_7"})
	s.Require().NoError(err)
	s.Assert().Equal(stored, out.Actor)
}

func (s *OrchestratorTestSuite) TestGetActorNotFound() {
	s.mockRepo.EXPECT().
		Get(s.ctx, &actorrepo.GetInput{ID: "missing"}).
		Return(nil, errors.NotFound("actor not found"))

	_, err := s.orchestrator.GetActor(s.ctx, &importer.GetActorInput{ID: "missing"})
	s.Assert().True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestListActors() {
	testCases := []struct {
		name   string
		input  *importer.ListActorsInput
		folder string
	}{
		{"nil input uses default folder", nil, importer.DefaultFolder},
		{"empty folder uses default folder", &importer.ListActorsInput{}, importer.DefaultFolder},
		{"explicit folder", &importer.ListActorsInput{Folder: "Goblins"}, "Goblins"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			mocks.ExpectActorList(s.mockRepo, tc.folder, &drawsteel.Actor{ID: "actor_1"})

			out, err := s.orchestrator.ListActors(s.ctx, tc.input)
			s.Require().NoError(err)
			s.Assert().Len(out.Actors, 1)
		})
	}
}

func (s *OrchestratorTestSuite) TestImportThenReadBack() {
	orch, err := importer.NewOrchestrator(s.config(actorrepo.NewInMemory(idgen.NewSequential("actor"))))
	s.Require().NoError(err)

	imported, err := orch.ImportMonster(s.ctx, &importer.ImportMonsterInput{Text: testutils.GoblinSniperText})
	s.Require().NoError(err)

	got, err := orch.GetActor(s.ctx, &importer.GetActorInput{ID: imported.Actor.ID})
	s.Require().NoError(err)
	s.Assert().Equal(imported.Actor, got.Actor)

	list, err := orch.ListActors(s.ctx, &importer.ListActorsInput{})
	s.Require().NoError(err)
	s.Require().Len(list.Actors, 1)
	s.Assert().Equal("actor_1", list.Actors[0].ID)
}

func (s *OrchestratorTestSuite) TestConfigValidation() {
	_, err := importer.NewOrchestrator(&importer.Config{})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}
