package game_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/champion-grid/internal/entities"
	"github.com/KirkDiggler/champion-grid/internal/errors"
	"github.com/KirkDiggler/champion-grid/internal/repositories/game"
	"github.com/KirkDiggler/champion-grid/internal/testutils"
)

type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time {
	return c.now
}

// RepositoryTestSuite runs the same behavior checks against every store
type RepositoryTestSuite struct {
	suite.Suite
	ctx  context.Context
	repo game.Repository

	// newRepo returns a fresh store and a function moving its time forward
	newRepo func(t *testing.T) (game.Repository, func(time.Duration), func())
	advance func(time.Duration)
	cleanup func()
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func(t *testing.T) (game.Repository, func(time.Duration), func()) {
			client, mr, cleanup := testutils.CreateTestRedisServer(t)
			repo, err := game.NewRedis(&game.RedisConfig{Client: client})
			require.NoError(t, err)
			return repo, mr.FastForward, cleanup
		},
	})
}

func TestInMemoryRepositorySuite(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func(_ *testing.T) (game.Repository, func(time.Duration), func()) {
			clk := &stepClock{now: time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)}
			repo := game.NewInMemory(&game.InMemoryConfig{Clock: clk})
			return repo, func(d time.Duration) { clk.now = clk.now.Add(d) }, func() {}
		},
	})
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo, s.advance, s.cleanup = s.newRepo(s.T())
}

func (s *RepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RepositoryTestSuite) newGame(id string) *entities.Game {
	g := &entities.Game{
		ID:               id,
		GuessesRemaining: 9,
		Difficulty:       0.42,
		TargetDifficulty: 0.5,
		Outcome:          "valid",
		CreatedAt:        time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC),
		Categories: entities.Axes{
			XAxis: []entities.AxisCategory{{Name: "Mage", Type: "role", Values: []string{"Mage", "Tank"}}},
			YAxis: []entities.AxisCategory{{Name: "Ionia", Type: "location", Values: []string{"Ionia"}}},
		},
	}
	g.Grid.Cells[0][0] = entities.Cell{
		RowCategory:      "Ionia",
		ColumnCategory:   "Mage",
		CorrectChampions: []string{"Ahri"},
	}
	return g
}

func (s *RepositoryTestSuite) newChallenge(date string) *entities.DailyChallenge {
	c := &entities.DailyChallenge{
		Date:       date,
		Rows:       []string{"Ionia", "Demacia", "Zaun"},
		Columns:    []string{"Mage", "Tank", "Assassin"},
		Difficulty: 0.5,
		Outcome:    "valid",
	}
	c.Solutions[0][0] = []string{"Ahri"}
	return c
}

func (s *RepositoryTestSuite) TestCreateAndGet() {
	created, err := s.repo.Create(s.ctx, &game.CreateInput{Game: s.newGame("game_1"), TTL: time.Hour})
	s.Require().NoError(err)
	s.Equal("game_1", created.Game.ID)

	got, err := s.repo.Get(s.ctx, &game.GetInput{GameID: "game_1"})
	s.Require().NoError(err)
	s.Equal("game_1", got.Game.ID)
	s.Equal(int32(9), got.Game.GuessesRemaining)
	s.Equal([]string{"Ahri"}, got.Game.Grid.Cells[0][0].CorrectChampions)
	s.Equal("Mage", got.Game.Categories.XAxis[0].Name)
	s.True(got.Game.CreatedAt.Equal(created.Game.CreatedAt))
}

func (s *RepositoryTestSuite) TestCreateDuplicate() {
	_, err := s.repo.Create(s.ctx, &game.CreateInput{Game: s.newGame("game_1")})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, &game.CreateInput{Game: s.newGame("game_1")})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *RepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, &game.GetInput{GameID: "nope"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Equal("nope", errors.GetMeta(err)["game_id"])
}

func (s *RepositoryTestSuite) TestGameExpires() {
	_, err := s.repo.Create(s.ctx, &game.CreateInput{Game: s.newGame("game_1"), TTL: time.Minute})
	s.Require().NoError(err)

	s.advance(2 * time.Minute)

	_, err = s.repo.Get(s.ctx, &game.GetInput{GameID: "game_1"})
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestUpdate() {
	_, err := s.repo.Create(s.ctx, &game.CreateInput{Game: s.newGame("game_1"), TTL: time.Hour})
	s.Require().NoError(err)

	updated := s.newGame("game_1")
	guess := "Ahri"
	correct := true
	updated.Grid.Cells[0][0].GuessedChampion = &guess
	updated.Grid.Cells[0][0].IsCorrect = &correct
	updated.Score = 1
	updated.GuessesRemaining = 8

	_, err = s.repo.Update(s.ctx, &game.UpdateInput{Game: updated})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, &game.GetInput{GameID: "game_1"})
	s.Require().NoError(err)
	s.Equal(int32(1), got.Game.Score)
	s.Equal(int32(8), got.Game.GuessesRemaining)
	s.Require().NotNil(got.Game.Grid.Cells[0][0].GuessedChampion)
	s.Equal("Ahri", *got.Game.Grid.Cells[0][0].GuessedChampion)
	s.True(*got.Game.Grid.Cells[0][0].IsCorrect)
}

func (s *RepositoryTestSuite) TestUpdateKeepsExpiry() {
	_, err := s.repo.Create(s.ctx, &game.CreateInput{Game: s.newGame("game_1"), TTL: time.Hour})
	s.Require().NoError(err)

	s.advance(40 * time.Minute)
	_, err = s.repo.Update(s.ctx, &game.UpdateInput{Game: s.newGame("game_1")})
	s.Require().NoError(err)

	s.advance(30 * time.Minute)
	_, err = s.repo.Get(s.ctx, &game.GetInput{GameID: "game_1"})
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestUpdateMissing() {
	_, err := s.repo.Update(s.ctx, &game.UpdateInput{Game: s.newGame("ghost")})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestStoredGameIsIsolated() {
	g := s.newGame("game_1")
	_, err := s.repo.Create(s.ctx, &game.CreateInput{Game: g})
	s.Require().NoError(err)

	g.Grid.Cells[0][0].CorrectChampions[0] = "Zed"

	got, err := s.repo.Get(s.ctx, &game.GetInput{GameID: "game_1"})
	s.Require().NoError(err)
	s.Equal([]string{"Ahri"}, got.Game.Grid.Cells[0][0].CorrectChampions)
}

func (s *RepositoryTestSuite) TestInputValidation() {
	testCases := []struct {
		name string
		call func() error
	}{
		{"nil create", func() error { _, err := s.repo.Create(s.ctx, nil); return err }},
		{"nil game", func() error { _, err := s.repo.Create(s.ctx, &game.CreateInput{}); return err }},
		{"empty id", func() error {
			_, err := s.repo.Create(s.ctx, &game.CreateInput{Game: &entities.Game{}})
			return err
		}},
		{"empty get", func() error { _, err := s.repo.Get(s.ctx, &game.GetInput{}); return err }},
		{"nil update", func() error { _, err := s.repo.Update(s.ctx, &game.UpdateInput{}); return err }},
		{"nil challenge", func() error { _, err := s.repo.SaveDaily(s.ctx, &game.SaveDailyInput{}); return err }},
		{"bad date", func() error {
			_, err := s.repo.GetDaily(s.ctx, &game.GetDailyInput{Date: "14/03/2025"})
			return err
		}},
		{"empty date", func() error {
			_, err := s.repo.SaveDaily(s.ctx, &game.SaveDailyInput{Challenge: &entities.DailyChallenge{}})
			return err
		}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.call()
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err), "unexpected error: %v", err)
		})
	}
}

func (s *RepositoryTestSuite) TestSaveDailyFirstWriterWins() {
	first, err := s.repo.SaveDaily(s.ctx, &game.SaveDailyInput{Challenge: s.newChallenge("2025-03-14")})
	s.Require().NoError(err)
	s.True(first.Created)

	other := s.newChallenge("2025-03-14")
	other.Rows = []string{"Noxus", "Freljord", "Shurima"}

	second, err := s.repo.SaveDaily(s.ctx, &game.SaveDailyInput{Challenge: other})
	s.Require().NoError(err)
	s.False(second.Created)
	s.Equal([]string{"Ionia", "Demacia", "Zaun"}, second.Challenge.Rows)

	got, err := s.repo.GetDaily(s.ctx, &game.GetDailyInput{Date: "2025-03-14"})
	s.Require().NoError(err)
	s.Equal([]string{"Ionia", "Demacia", "Zaun"}, got.Challenge.Rows)
	s.Equal([]string{"Ahri"}, got.Challenge.Solutions[0][0])
}

func (s *RepositoryTestSuite) TestGetDailyMissing() {
	_, err := s.repo.GetDaily(s.ctx, &game.GetDailyInput{Date: "2025-03-15"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Equal("2025-03-15", errors.GetMeta(err)["date"])
}

func (s *RepositoryTestSuite) TestDailyExpires() {
	_, err := s.repo.SaveDaily(s.ctx, &game.SaveDailyInput{
		Challenge: s.newChallenge("2025-03-14"),
		TTL:       time.Hour,
	})
	s.Require().NoError(err)

	s.advance(2 * time.Hour)

	_, err = s.repo.GetDaily(s.ctx, &game.GetDailyInput{Date: "2025-03-14"})
	s.True(errors.IsNotFound(err))
}

func TestRedisKeys(t *testing.T) {
	client, mr, cleanup := testutils.CreateTestRedisServer(t)
	defer cleanup()

	repo, err := game.NewRedis(&game.RedisConfig{Client: client})
	require.NoError(t, err)

	ctx := context.Background()
	_, err = repo.Create(ctx, &game.CreateInput{Game: &entities.Game{ID: "abc"}, TTL: time.Hour})
	require.NoError(t, err)
	_, err = repo.SaveDaily(ctx, &game.SaveDailyInput{
		Challenge: &entities.DailyChallenge{Date: "2025-03-14"},
	})
	require.NoError(t, err)

	assertKey(t, mr, "game:abc", time.Hour)
	assertKey(t, mr, "daily:2025-03-14", game.DefaultDailyTTL)
}

func assertKey(t *testing.T, mr *miniredis.Miniredis, key string, ttl time.Duration) {
	t.Helper()
	assert.True(t, mr.Exists(key), "expected key %q to exist", key)
	assert.Equal(t, ttl, mr.TTL(key))
}

func TestNewRedisRequiresClient(t *testing.T) {
	_, err := game.NewRedis(&game.RedisConfig{})
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = game.NewRedis(nil)
	assert.True(t, errors.IsInvalidArgument(err))
}
