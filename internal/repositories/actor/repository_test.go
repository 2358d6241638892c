package actor_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/drawsteel-importer/internal/entities/drawsteel"
	"github.com/KirkDiggler/drawsteel-importer/internal/errors"
	"github.com/KirkDiggler/drawsteel-importer/internal/pkg/idgen"
	"github.com/KirkDiggler/drawsteel-importer/internal/repositories/actor"
	"github.com/KirkDiggler/drawsteel-importer/internal/testutils"
)

// RepositoryTestSuite runs the same behavior against every implementation.
type RepositoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	newRepo func() (actor.Repository, func())
	repo    actor.Repository
	cleanup func()
}

func TestInMemoryRepositorySuite(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func() (actor.Repository, func()) {
			return actor.NewInMemory(idgen.NewSequential("actor")), func() {}
		},
	})
}

func TestRedisRepositorySuite(t *testing.T) {
	s := &RepositoryTestSuite{}
	s.newRepo = func() (actor.Repository, func()) {
		client, cleanup := testutils.CreateTestRedisClient(s.T())
		repo, err := actor.NewRedis(&actor.RedisConfig{
			Client:      client,
			IDGenerator: idgen.NewSequential("actor"),
		})
		s.Require().NoError(err)
		return repo, cleanup
	}
	suite.Run(t, s)
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo, s.cleanup = s.newRepo()
}

func (s *RepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func testActor(name, folder string) *drawsteel.Actor {
	return &drawsteel.Actor{
		Name:       name,
		Type:       drawsteel.ActorTypeNPC,
		Folder:     folder,
		ImportedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		System: drawsteel.ActorSystem{
			Characteristics: map[drawsteel.Characteristic]drawsteel.ValueSlot{
				drawsteel.CharacteristicMight: {Value: 2},
			},
			Monster: drawsteel.Monster{Level: 3, Role: "brute"},
		},
		Items: []drawsteel.Item{{Name: "Gore", Type: drawsteel.ItemTypeAbility, DSID: "gore"}},
	}
}

func (s *RepositoryTestSuite) TestSaveAssignsID() {
	in := testActor("Bugbear", "Goblins")

	out, err := s.repo.Save(s.ctx, &actor.SaveInput{Actor: in})
	s.Require().NoError(err)
	s.Assert().Equal("actor_1", out.Actor.ID)
	s.Assert().Empty(in.ID, "input must not be mutated")

	got, err := s.repo.Get(s.ctx, &actor.GetInput{ID: out.Actor.ID})
	s.Require().NoError(err)
	s.Assert().Equal(out.Actor, got.Actor)
	s.Assert().Equal(2, got.Actor.System.Characteristics[drawsteel.CharacteristicMight].Value)
}

func (s *RepositoryTestSuite) TestSaveReplacesAndMovesFolder() {
	out, err := s.repo.Save(s.ctx, &actor.SaveInput{Actor: testActor("Bugbear", "Goblins")})
	s.Require().NoError(err)

	moved := *out.Actor
	moved.Folder = "Bosses"
	moved.Name = "Bugbear Chief"
	_, err = s.repo.Save(s.ctx, &actor.SaveInput{Actor: &moved})
	s.Require().NoError(err)

	goblins, err := s.repo.ListByFolder(s.ctx, &actor.ListByFolderInput{Folder: "Goblins"})
	s.Require().NoError(err)
	s.Assert().Empty(goblins.Actors)

	bosses, err := s.repo.ListByFolder(s.ctx, &actor.ListByFolderInput{Folder: "Bosses"})
	s.Require().NoError(err)
	s.Require().Len(bosses.Actors, 1)
	s.Assert().Equal("Bugbear Chief", bosses.Actors[0].Name)
	s.Assert().Equal(out.Actor.ID, bosses.Actors[0].ID)
}

func (s *RepositoryTestSuite) TestListByFolder() {
	for _, name := range []string{"Goblin Warrior", "Goblin Sniper"} {
		_, err := s.repo.Save(s.ctx, &actor.SaveInput{Actor: testActor(name, "Goblins")})
		s.Require().NoError(err)
	}
	_, err := s.repo.Save(s.ctx, &actor.SaveInput{Actor: testActor("Kobold", "Kobolds")})
	s.Require().NoError(err)

	out, err := s.repo.ListByFolder(s.ctx, &actor.ListByFolderInput{Folder: "Goblins"})
	s.Require().NoError(err)
	s.Require().Len(out.Actors, 2)
	s.Assert().Equal("Goblin Warrior", out.Actors[0].Name)
	s.Assert().Equal("Goblin Sniper", out.Actors[1].Name)

	empty, err := s.repo.ListByFolder(s.ctx, &actor.ListByFolderInput{Folder: "Nobody"})
	s.Require().NoError(err)
	s.Assert().NotNil(empty.Actors)
	s.Assert().Empty(empty.Actors)
}

func (s *RepositoryTestSuite) TestDelete() {
	out, err := s.repo.Save(s.ctx, &actor.SaveInput{Actor: testActor("Bugbear", "Goblins")})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, &actor.DeleteInput{ID: out.Actor.ID})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, &actor.GetInput{ID: out.Actor.ID})
	s.Assert().True(errors.IsNotFound(err))

	list, err := s.repo.ListByFolder(s.ctx, &actor.ListByFolderInput{Folder: "Goblins"})
	s.Require().NoError(err)
	s.Assert().Empty(list.Actors)

	_, err = s.repo.Delete(s.ctx, &actor.DeleteInput{ID: out.Actor.ID})
	s.Assert().True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestInvalidInput() {
	testCases := []struct {
		name string
		call func() error
	}{
		{"save nil input", func() error { _, err := s.repo.Save(s.ctx, nil); return err }},
		{"save nil actor", func() error { _, err := s.repo.Save(s.ctx, &actor.SaveInput{}); return err }},
		{"save without folder", func() error {
			_, err := s.repo.Save(s.ctx, &actor.SaveInput{Actor: testActor("x", "")})
			return err
		}},
		{"get empty id", func() error { _, err := s.repo.Get(s.ctx, &actor.GetInput{}); return err }},
		{"list empty folder", func() error {
			_, err := s.repo.ListByFolder(s.ctx, &actor.ListByFolderInput{})
			return err
		}},
		{"delete empty id", func() error { _, err := s.repo.Delete(s.ctx, &actor.DeleteInput{}); return err }},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.call()
			s.Require().Error(err)
			s.Assert().True(errors.IsInvalidArgument(err))
		})
	}
}

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	mr      *miniredis.Miniredis
	repo    actor.Repository
	cleanup func()
}

func TestRedisRepositoryInternalsSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	client, mr, cleanup := testutils.CreateTestRedis(s.T())
	s.mr, s.cleanup = mr, cleanup

	repo, err := actor.NewRedis(&actor.RedisConfig{Client: client, IDGenerator: idgen.NewSequential("actor")})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestKeys() {
	_, err := s.repo.Save(s.ctx, &actor.SaveInput{Actor: testActor("Bugbear", "Goblins")})
	s.Require().NoError(err)

	raw, err := s.mr.Get("actor:actor_1")
	s.Require().NoError(err)
	var stored map[string]any
	s.Require().NoError(json.Unmarshal([]byte(raw), &stored))
	s.Assert().Equal("Bugbear", stored["name"])
	s.Assert().Equal("2026-01-02T03:04:05Z", stored["importedAt"])

	members, err := s.mr.Members("actor:folder:Goblins")
	s.Require().NoError(err)
	s.Assert().Equal([]string{"actor_1"}, members)
}

func (s *RedisRepositoryTestSuite) TestStaleIndexIsCleaned() {
	_, err := s.mr.SAdd("actor:folder:Goblins", "ghost")
	s.Require().NoError(err)

	out, err := s.repo.ListByFolder(s.ctx, &actor.ListByFolderInput{Folder: "Goblins"})
	s.Require().NoError(err)
	s.Assert().Empty(out.Actors)
	s.Assert().False(s.mr.Exists("actor:folder:Goblins"))
}

func (s *RedisRepositoryTestSuite) TestCorruptValue() {
	s.Require().NoError(s.mr.Set("actor:broken", "{not json"))

	_, err := s.repo.Get(s.ctx, &actor.GetInput{ID: "broken"})
	s.Require().Error(err)
	s.Assert().False(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestNewRedisValidation() {
	_, err := actor.NewRedis(nil)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = actor.NewRedis(&actor.RedisConfig{})
	s.Assert().True(errors.IsInvalidArgument(err))
}
