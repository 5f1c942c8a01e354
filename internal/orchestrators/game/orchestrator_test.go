package game_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/champion-grid/internal/catalog"
	"github.com/KirkDiggler/champion-grid/internal/engine"
	enginemock "github.com/KirkDiggler/champion-grid/internal/engine/mock"
	"github.com/KirkDiggler/champion-grid/internal/entities"
	"github.com/KirkDiggler/champion-grid/internal/errors"
	"github.com/KirkDiggler/champion-grid/internal/index"
	"github.com/KirkDiggler/champion-grid/internal/orchestrators/game"
	"github.com/KirkDiggler/champion-grid/internal/pkg/clock"
	mockclock "github.com/KirkDiggler/champion-grid/internal/pkg/clock/mock"
	"github.com/KirkDiggler/champion-grid/internal/pkg/idgen"
	gamerepo "github.com/KirkDiggler/champion-grid/internal/repositories/game"
	gamerepomock "github.com/KirkDiggler/champion-grid/internal/repositories/game/mock"
	"github.com/KirkDiggler/champion-grid/internal/testutils"
)

// recordingBus keeps every published event
type recordingBus struct {
	mu        sync.Mutex
	published []events.Event
}

func (b *recordingBus) Publish(_ context.Context, event events.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published = append(b.published, event)
	return nil
}
func (b *recordingBus) Subscribe(_ string, _ events.Handler) string { return "sub-id" }
func (b *recordingBus) SubscribeFunc(_ string, _ int, _ events.HandlerFunc) string {
	return "sub-id"
}
func (b *recordingBus) Unsubscribe(_ string) error { return nil }
func (b *recordingBus) Clear(_ string)             {}
func (b *recordingBus) ClearAll()                  {}

func (b *recordingBus) types() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.published))
	for i, e := range b.published {
		out[i] = e.Type()
	}
	return out
}

func (b *recordingBus) last() events.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.published[len(b.published)-1]
}

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockEngine *enginemock.MockEngine
	mockRepo   *gamerepomock.MockRepository
	mockClock  *mockclock.MockClock
	bus        *recordingBus
	idx        *index.Index
	now        time.Time

	orchestrator game.Service
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockEngine = enginemock.NewMockEngine(s.ctrl)
	s.mockRepo = gamerepomock.NewMockRepository(s.ctrl)
	s.mockClock = mockclock.NewMockClock(s.ctrl)
	s.bus = &recordingBus{}
	s.now = time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)

	var err error
	s.idx, err = index.New(&index.Config{
		Champions: testutils.CreateTestChampions(),
		Catalog:   catalog.Default(),
	})
	s.Require().NoError(err)

	s.mockClock.EXPECT().Now().Return(s.now).AnyTimes()

	s.orchestrator, err = game.NewOrchestrator(&game.Config{
		Engine:      s.mockEngine,
		Index:       s.idx,
		Repository:  s.mockRepo,
		Clock:       s.mockClock,
		IDGenerator: idgen.NewSequential("game"),
		EventBus:    s.bus,
		SessionTTL:  2 * time.Hour,
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func sampleResult() *engine.Result {
	r := &engine.Result{
		Rows:       []string{"Ionia", "Demacia", "Noxus"},
		Columns:    []string{"Mage", "Fighter", "Assassin"},
		Difficulty: 0.42,
		Target:     0.5,
		Outcome:    engine.OutcomeValid,
		Attempts:   3,
	}
	for row := range r.Solutions {
		for col := range r.Solutions[row] {
			r.Solutions[row][col] = []string{"Garen"}
		}
	}
	r.Solutions[0][0] = []string{"Ahri", "Zed"}
	return r
}

func sampleGrid(r *engine.Result) *entities.Grid {
	grid := &entities.Grid{}
	for row := range grid.Cells {
		for col := range grid.Cells[row] {
			grid.Cells[row][col] = entities.Cell{
				RowCategory:      r.Rows[row],
				ColumnCategory:   r.Columns[col],
				CorrectChampions: r.Solutions[row][col],
			}
		}
	}
	return grid
}

func sampleGame(id string) *entities.Game {
	return &entities.Game{
		ID:               id,
		Grid:             *sampleGrid(sampleResult()),
		GuessesRemaining: entities.GridSize * entities.GridSize,
	}
}

func (s *OrchestratorTestSuite) expectGeneration(target float64) *engine.Result {
	result := sampleResult()
	s.mockEngine.EXPECT().Generate(gomock.Any(), target).Return(result, nil)
	s.mockEngine.EXPECT().BuildGrid(result).Return(sampleGrid(result), &entities.Axes{}, nil)
	return result
}

func (s *OrchestratorTestSuite) TestNewOrchestrator_RequiresDependencies() {
	_, err := game.NewOrchestrator(nil)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = game.NewOrchestrator(&game.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Require().True(ok)
	for _, field := range []string{"Engine", "Index", "Repository", "Clock", "IDGenerator"} {
		s.Contains(fields, field)
	}
}

func (s *OrchestratorTestSuite) TestCreateGame_DefaultDifficulty() {
	s.expectGeneration(game.DefaultDifficulty)

	var stored *entities.Game
	s.mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *gamerepo.CreateInput) (*gamerepo.CreateOutput, error) {
			s.Equal(2*time.Hour, input.TTL)
			stored = input.Game
			return &gamerepo.CreateOutput{Game: input.Game}, nil
		})

	output, err := s.orchestrator.CreateGame(context.Background(), &game.CreateGameInput{})
	s.Require().NoError(err)
	s.Require().NotNil(output.Game)

	g := output.Game
	s.Equal("game_1", g.ID)
	s.Same(stored, g)
	s.Equal(int32(9), g.GuessesRemaining)
	s.Zero(g.Score)
	s.False(g.IsGameOver)
	s.InDelta(0.42, g.Difficulty, 1e-9)
	s.InDelta(game.DefaultDifficulty, g.TargetDifficulty, 1e-9)
	s.Equal(string(engine.OutcomeValid), g.Outcome)
	s.Equal(s.now, g.CreatedAt)
	s.Equal(s.now.Add(2*time.Hour), g.ExpiresAt)
	s.Equal([]string{"Ahri", "Zed"}, g.Grid.Cells[0][0].CorrectChampions)

	s.Equal([]string{game.EventGameCreated}, s.bus.types())
	s.Equal("game_1", s.bus.last().Target().GetID())
}

func (s *OrchestratorTestSuite) TestCreateGame_ClampsDifficulty() {
	s.expectGeneration(1.0)
	s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(&gamerepo.CreateOutput{}, nil)

	output, err := s.orchestrator.CreateGame(context.Background(), &game.CreateGameInput{
		Difficulty: floatPtr(1.7),
	})
	s.Require().NoError(err)
	s.InDelta(1.0, output.Game.TargetDifficulty, 1e-9)
}

func (s *OrchestratorTestSuite) TestCreateGame_GenerationExhausted() {
	s.mockEngine.EXPECT().Generate(gomock.Any(), game.DefaultDifficulty).
		Return(nil, errors.ResourceExhausted("no solvable grid")).
		Times(game.DefaultGenerateRetries + 1)

	_, err := s.orchestrator.CreateGame(context.Background(), &game.CreateGameInput{})
	s.Require().Error(err)
	s.True(errors.IsResourceExhausted(err))
	s.Empty(s.bus.types())
}

func (s *OrchestratorTestSuite) TestCreateGame_RetriesExhaustedGeneration() {
	result := sampleResult()
	gomock.InOrder(
		s.mockEngine.EXPECT().Generate(gomock.Any(), game.DefaultDifficulty).
			Return(nil, errors.ResourceExhausted("no solvable grid")).Times(2),
		s.mockEngine.EXPECT().Generate(gomock.Any(), game.DefaultDifficulty).Return(result, nil),
	)
	s.mockEngine.EXPECT().BuildGrid(result).Return(sampleGrid(result), &entities.Axes{}, nil)
	s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *gamerepo.CreateInput) (*gamerepo.CreateOutput, error) {
			return &gamerepo.CreateOutput{Game: input.Game}, nil
		})

	output, err := s.orchestrator.CreateGame(context.Background(), &game.CreateGameInput{})
	s.Require().NoError(err)
	s.Equal(result.Rows[0], output.Game.Grid.Cells[0][0].RowCategory)
}

func (s *OrchestratorTestSuite) TestCreateGame_OtherGenerationErrorsNotRetried() {
	s.mockEngine.EXPECT().Generate(gomock.Any(), game.DefaultDifficulty).
		Return(nil, errors.FailedPrecondition("catalog too small")).Times(1)

	_, err := s.orchestrator.CreateGame(context.Background(), &game.CreateGameInput{})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestNewOrchestrator_RejectsNegativeRetries() {
	_, err := game.NewOrchestrator(&game.Config{
		Engine:          s.mockEngine,
		Index:           s.idx,
		Repository:      s.mockRepo,
		Clock:           s.mockClock,
		IDGenerator:     idgen.NewSequential("game"),
		GenerateRetries: -1,
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestCreateGame_StoreFails() {
	s.expectGeneration(game.DefaultDifficulty)
	s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("redis down"))

	_, err := s.orchestrator.CreateGame(context.Background(), &game.CreateGameInput{})
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
	s.Contains(err.Error(), "failed to store game")
}

func (s *OrchestratorTestSuite) TestGetGame() {
	stored := sampleGame("game_7")
	s.mockRepo.EXPECT().Get(gomock.Any(), &gamerepo.GetInput{GameID: "game_7"}).
		Return(&gamerepo.GetOutput{Game: stored}, nil)

	output, err := s.orchestrator.GetGame(context.Background(), &game.GetGameInput{GameID: "game_7"})
	s.Require().NoError(err)
	s.Same(stored, output.Game)
}

func (s *OrchestratorTestSuite) TestGetGame_Errors() {
	_, err := s.orchestrator.GetGame(context.Background(), &game.GetGameInput{})
	s.True(errors.IsInvalidArgument(err))

	s.mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("game not found"))
	_, err = s.orchestrator.GetGame(context.Background(), &game.GetGameInput{GameID: "nope"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) expectGuessRoundTrip(stored *entities.Game) {
	s.mockRepo.EXPECT().Get(gomock.Any(), &gamerepo.GetInput{GameID: stored.ID}).
		Return(&gamerepo.GetOutput{Game: stored}, nil)
	s.mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *gamerepo.UpdateInput) (*gamerepo.UpdateOutput, error) {
			return &gamerepo.UpdateOutput{Game: input.Game}, nil
		})
}

func (s *OrchestratorTestSuite) TestSubmitGuess_Correct() {
	stored := sampleGame("game_1")
	s.expectGuessRoundTrip(stored)

	output, err := s.orchestrator.SubmitGuess(context.Background(), &game.SubmitGuessInput{
		GameID:   "game_1",
		Row:      0,
		Col:      0,
		Champion: "  ahri ",
	})
	s.Require().NoError(err)

	s.True(output.IsCorrect)
	s.Equal("Ahri", output.Champion)
	s.Equal(int32(1), output.Game.Score)
	s.Equal(int32(8), output.Game.GuessesRemaining)
	s.False(output.Game.IsGameOver)

	cell := output.Game.Grid.Cells[0][0]
	s.Require().NotNil(cell.GuessedChampion)
	s.Equal("Ahri", *cell.GuessedChampion)
	s.Require().NotNil(cell.IsCorrect)
	s.True(*cell.IsCorrect)

	s.Equal([]string{game.EventGuessSubmitted}, s.bus.types())
	event := s.bus.last()
	s.Require().NotNil(event.Source())
	s.Equal("Ahri", event.Source().GetID())
}

func (s *OrchestratorTestSuite) TestSubmitGuess_Incorrect() {
	stored := sampleGame("game_1")
	s.expectGuessRoundTrip(stored)

	output, err := s.orchestrator.SubmitGuess(context.Background(), &game.SubmitGuessInput{
		GameID:   "game_1",
		Row:      1,
		Col:      2,
		Champion: "Teemo",
	})
	s.Require().NoError(err)

	s.False(output.IsCorrect)
	s.Zero(output.Game.Score)
	s.Equal(int32(8), output.Game.GuessesRemaining)
	s.False(*output.Game.Grid.Cells[1][2].IsCorrect)
}

func (s *OrchestratorTestSuite) TestSubmitGuess_LastGuessEndsGame() {
	stored := sampleGame("game_1")
	stored.GuessesRemaining = 1
	stored.Score = 4
	s.expectGuessRoundTrip(stored)

	output, err := s.orchestrator.SubmitGuess(context.Background(), &game.SubmitGuessInput{
		GameID:   "game_1",
		Row:      2,
		Col:      2,
		Champion: "Garen",
	})
	s.Require().NoError(err)

	s.True(output.Game.IsGameOver)
	s.Zero(output.Game.GuessesRemaining)
	s.Equal(int32(5), output.Game.Score)
	s.Equal([]string{game.EventGuessSubmitted, game.EventGameOver}, s.bus.types())
}

func (s *OrchestratorTestSuite) TestSubmitGuess_InvalidInput() {
	testCases := []struct {
		name  string
		input *game.SubmitGuessInput
	}{
		{"nil input", nil},
		{"missing game", &game.SubmitGuessInput{Champion: "Ahri"}},
		{"row out of range", &game.SubmitGuessInput{GameID: "game_1", Row: 5, Champion: "Ahri"}},
		{"negative column", &game.SubmitGuessInput{GameID: "game_1", Col: -1, Champion: "Ahri"}},
		{"missing champion", &game.SubmitGuessInput{GameID: "game_1"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.orchestrator.SubmitGuess(context.Background(), tc.input)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *OrchestratorTestSuite) TestSubmitGuess_CellAlreadyGuessed() {
	stored := sampleGame("game_1")
	name, correct := "Zed", true
	stored.Grid.Cells[0][0].GuessedChampion = &name
	stored.Grid.Cells[0][0].IsCorrect = &correct
	s.mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
		Return(&gamerepo.GetOutput{Game: stored}, nil)

	_, err := s.orchestrator.SubmitGuess(context.Background(), &game.SubmitGuessInput{
		GameID:   "game_1",
		Champion: "Ahri",
	})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
	s.Equal(0, errors.GetMeta(err)["row"])
}

func (s *OrchestratorTestSuite) TestSubmitGuess_GameOver() {
	stored := sampleGame("game_1")
	stored.IsGameOver = true
	stored.GuessesRemaining = 0
	s.mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
		Return(&gamerepo.GetOutput{Game: stored}, nil)

	_, err := s.orchestrator.SubmitGuess(context.Background(), &game.SubmitGuessInput{
		GameID:   "game_1",
		Row:      1,
		Col:      1,
		Champion: "Garen",
	})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestSubmitGuess_UnknownChampion() {
	s.mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
		Return(&gamerepo.GetOutput{Game: sampleGame("game_1")}, nil)

	_, err := s.orchestrator.SubmitGuess(context.Background(), &game.SubmitGuessInput{
		GameID:   "game_1",
		Row:      1,
		Col:      1,
		Champion: "Garne",
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Equal("Garen", errors.GetMeta(err)["suggestion"])
}

func (s *OrchestratorTestSuite) TestSubmitGuess_UpdateFails() {
	s.mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
		Return(&gamerepo.GetOutput{Game: sampleGame("game_1")}, nil)
	s.mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("game expired"))

	_, err := s.orchestrator.SubmitGuess(context.Background(), &game.SubmitGuessInput{
		GameID:   "game_1",
		Champion: "Ahri",
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Empty(s.bus.types())
}

func (s *OrchestratorTestSuite) TestGetDaily_Existing() {
	existing := &entities.DailyChallenge{Date: "2026-03-14", Rows: []string{"Ionia"}}
	s.mockRepo.EXPECT().GetDaily(gomock.Any(), &gamerepo.GetDailyInput{Date: "2026-03-14"}).
		Return(&gamerepo.GetDailyOutput{Challenge: existing}, nil)

	output, err := s.orchestrator.GetDaily(context.Background(), &game.GetDailyInput{})
	s.Require().NoError(err)
	s.Same(existing, output.Challenge)
	s.Empty(s.bus.types())
}

func (s *OrchestratorTestSuite) TestGetDaily_GeneratesToday() {
	s.mockRepo.EXPECT().GetDaily(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("no challenge"))
	s.expectGeneration(game.DefaultDailyDifficulty)
	s.mockRepo.EXPECT().SaveDaily(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *gamerepo.SaveDailyInput) (*gamerepo.SaveDailyOutput, error) {
			return &gamerepo.SaveDailyOutput{Challenge: input.Challenge, Created: true}, nil
		})

	output, err := s.orchestrator.GetDaily(context.Background(), &game.GetDailyInput{Date: "2026-03-14"})
	s.Require().NoError(err)

	challenge := output.Challenge
	s.Equal("2026-03-14", challenge.Date)
	s.Equal([]string{"Ionia", "Demacia", "Noxus"}, challenge.Rows)
	s.Equal([]string{"Mage", "Fighter", "Assassin"}, challenge.Columns)
	s.Equal([]string{"Ahri", "Zed"}, challenge.Solutions[0][0])
	s.Equal(s.now, challenge.CreatedAt)
	s.Equal([]string{game.EventDailyCreated}, s.bus.types())
}

func (s *OrchestratorTestSuite) TestGetDaily_LostRace() {
	theirs := &entities.DailyChallenge{Date: "2026-03-14", Rows: []string{"Zaun"}}
	s.mockRepo.EXPECT().GetDaily(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("no challenge"))
	s.expectGeneration(game.DefaultDailyDifficulty)
	s.mockRepo.EXPECT().SaveDaily(gomock.Any(), gomock.Any()).
		Return(&gamerepo.SaveDailyOutput{Challenge: theirs, Created: false}, nil)

	output, err := s.orchestrator.GetDaily(context.Background(), &game.GetDailyInput{})
	s.Require().NoError(err)
	s.Same(theirs, output.Challenge)
	s.Empty(s.bus.types())
}

func (s *OrchestratorTestSuite) TestGetDaily_PastDateMissing() {
	s.mockRepo.EXPECT().GetDaily(gomock.Any(), &gamerepo.GetDailyInput{Date: "2026-03-01"}).
		Return(nil, errors.NotFound("no challenge"))

	_, err := s.orchestrator.GetDaily(context.Background(), &game.GetDailyInput{Date: "2026-03-01"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestVerifyDaily() {
	r := sampleResult()
	existing := &entities.DailyChallenge{
		Date:      "2026-03-14",
		Rows:      r.Rows,
		Columns:   r.Columns,
		Solutions: r.Solutions,
	}
	s.mockRepo.EXPECT().GetDaily(gomock.Any(), gomock.Any()).
		Return(&gamerepo.GetDailyOutput{Challenge: existing}, nil).Times(2)

	output, err := s.orchestrator.VerifyDaily(context.Background(), &game.VerifyDailyInput{
		Row: 0, Col: 0, Champion: "zed",
	})
	s.Require().NoError(err)
	s.True(output.IsCorrect)
	s.Equal("Zed", output.Champion)

	output, err = s.orchestrator.VerifyDaily(context.Background(), &game.VerifyDailyInput{
		Row: 0, Col: 1, Champion: "Zed",
	})
	s.Require().NoError(err)
	s.False(output.IsCorrect)
}

func (s *OrchestratorTestSuite) TestVerifyDaily_InvalidCell() {
	_, err := s.orchestrator.VerifyDaily(context.Background(), &game.VerifyDailyInput{
		Row: 3, Col: 0, Champion: "Zed",
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestPreviewGrid() {
	result := sampleResult()
	s.mockEngine.EXPECT().Generate(gomock.Any(), 0.0).Return(result, nil)

	output, err := s.orchestrator.PreviewGrid(context.Background(), &game.PreviewGridInput{
		Difficulty: floatPtr(-2),
	})
	s.Require().NoError(err)
	s.Same(result, output.Result)
}

func (s *OrchestratorTestSuite) TestPreviewGrid_RetriesExhaustedGeneration() {
	result := sampleResult()
	gomock.InOrder(
		s.mockEngine.EXPECT().Generate(gomock.Any(), game.DefaultDifficulty).
			Return(nil, errors.ResourceExhausted("no solvable grid")),
		s.mockEngine.EXPECT().Generate(gomock.Any(), game.DefaultDifficulty).Return(result, nil),
	)

	output, err := s.orchestrator.PreviewGrid(context.Background(), &game.PreviewGridInput{})
	s.Require().NoError(err)
	s.Same(result, output.Result)
}

func (s *OrchestratorTestSuite) TestValidChampions() {
	s.mockEngine.EXPECT().ValidChampions("Ionia", "Mage").Return([]string{"Ahri"}, nil)

	output, err := s.orchestrator.ValidChampions(context.Background(), &game.ValidChampionsInput{
		RowCategory:    "Ionia",
		ColumnCategory: "Mage",
	})
	s.Require().NoError(err)
	s.Equal([]string{"Ahri"}, output.Champions)

	_, err = s.orchestrator.ValidChampions(context.Background(), &game.ValidChampionsInput{RowCategory: "Ionia"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestListCategories() {
	output, err := s.orchestrator.ListCategories(context.Background(), &game.ListCategoriesInput{})
	s.Require().NoError(err)
	s.Equal(catalog.Default().Version(), output.Version)
	s.Len(output.Types, len(catalog.Default().Types()))

	counts := make(map[string]int)
	for _, t := range output.Types {
		for _, c := range t.Categories {
			counts[c.Name] = c.Matches
		}
	}
	s.Equal(2, counts["Ionia"])
	s.Equal(2, counts["Demacia"])
	s.Equal(2, counts["Noxus"])
}

func (s *OrchestratorTestSuite) TestListChampions() {
	output, err := s.orchestrator.ListChampions(context.Background(), &game.ListChampionsInput{})
	s.Require().NoError(err)
	s.Equal([]string{"Ahri", "Briar", "Darius", "Garen", "Jinx", "Lux", "Teemo", "Thresh", "Zed"}, output.Champions)
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func floatPtr(v float64) *float64 {
	return &v
}

// Full games against the real generator and the in-memory store
type PlaythroughTestSuite struct {
	suite.Suite
	orchestrator game.Service
	bus          *recordingBus
}

func (s *PlaythroughTestSuite) SetupTest() {
	champions, cat := testutils.CreateAmpleDataset(12)
	idx, err := index.New(&index.Config{Champions: champions, Catalog: cat})
	s.Require().NoError(err)

	gen, err := engine.NewGenerator(&engine.Config{Index: idx})
	s.Require().NoError(err)

	s.bus = &recordingBus{}
	s.orchestrator, err = game.NewOrchestrator(&game.Config{
		Engine:      gen,
		Index:       idx,
		Repository:  gamerepo.NewInMemory(nil),
		Clock:       clock.New(),
		IDGenerator: idgen.NewSequential("game"),
		EventBus:    s.bus,
	})
	s.Require().NoError(err)
}

func (s *PlaythroughTestSuite) TestPlayFullGame() {
	ctx := context.Background()
	created, err := s.orchestrator.CreateGame(ctx, &game.CreateGameInput{})
	s.Require().NoError(err)
	gameID := created.Game.ID

	for row := 0; row < entities.GridSize; row++ {
		for col := 0; col < entities.GridSize; col++ {
			out, err := s.orchestrator.SubmitGuess(ctx, &game.SubmitGuessInput{
				GameID:   gameID,
				Row:      row,
				Col:      col,
				Champion: "champion 01",
			})
			s.Require().NoError(err)
			s.True(out.IsCorrect)
		}
	}

	got, err := s.orchestrator.GetGame(ctx, &game.GetGameInput{GameID: gameID})
	s.Require().NoError(err)
	s.True(got.Game.IsGameOver)
	s.Equal(int32(9), got.Game.Score)
	s.Zero(got.Game.GuessesRemaining)

	_, err = s.orchestrator.SubmitGuess(ctx, &game.SubmitGuessInput{
		GameID: gameID, Row: 1, Col: 1, Champion: "Champion 02",
	})
	s.True(errors.IsFailedPrecondition(err))

	types := s.bus.types()
	s.Equal(game.EventGameCreated, types[0])
	s.Equal(game.EventGameOver, types[len(types)-1])
}

func (s *PlaythroughTestSuite) TestDailyIsStable() {
	ctx := context.Background()
	first, err := s.orchestrator.GetDaily(ctx, &game.GetDailyInput{})
	s.Require().NoError(err)
	second, err := s.orchestrator.GetDaily(ctx, &game.GetDailyInput{Date: first.Challenge.Date})
	s.Require().NoError(err)

	s.Equal(first.Challenge.Rows, second.Challenge.Rows)
	s.Equal(first.Challenge.Columns, second.Challenge.Columns)
	s.Equal([]string{game.EventDailyCreated}, s.bus.types())
}

func (s *PlaythroughTestSuite) TestConcurrentCreates() {
	const players = 16

	var wg sync.WaitGroup
	ids := make(chan string, players)
	for i := 0; i < players; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := s.orchestrator.CreateGame(context.Background(), &game.CreateGameInput{})
			if s.NoError(err) {
				ids <- out.Game.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool)
	for id := range ids {
		s.False(seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	s.Len(seen, players)
}

func TestPlaythroughSuite(t *testing.T) {
	suite.Run(t, new(PlaythroughTestSuite))
}
