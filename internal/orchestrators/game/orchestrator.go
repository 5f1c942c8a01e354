// Package game implements the game orchestrator: game sessions, guesses,
// the daily challenge and catalog lookups
package game

//go:generate mockgen -destination=mock/mock_service.go -package=gamemock github.com/KirkDiggler/champion-grid/internal/orchestrators/game Service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/champion-grid/internal/engine"
	"github.com/KirkDiggler/champion-grid/internal/entities"
	"github.com/KirkDiggler/champion-grid/internal/errors"
	"github.com/KirkDiggler/champion-grid/internal/index"
	"github.com/KirkDiggler/champion-grid/internal/observe"
	"github.com/KirkDiggler/champion-grid/internal/pkg/clock"
	"github.com/KirkDiggler/champion-grid/internal/pkg/idgen"
	gamerepo "github.com/KirkDiggler/champion-grid/internal/repositories/game"
)

const (
	// DefaultSessionTTL is how long a game can be played
	DefaultSessionTTL = 24 * time.Hour

	// DefaultDifficulty is used when a request leaves difficulty unset
	DefaultDifficulty = 0.5

	// DefaultDailyDifficulty is the target of the daily challenge
	DefaultDailyDifficulty = 0.5

	// DefaultGenerateRetries is how many extra engine runs follow an
	// exhausted one before giving up
	DefaultGenerateRetries = 3

	maxChampionNameLength = 64

	kindStandard = "standard"
	kindDaily    = "daily"
)

// Service defines the game operations
type Service interface {
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)
	SubmitGuess(ctx context.Context, input *SubmitGuessInput) (*SubmitGuessOutput, error)

	GetDaily(ctx context.Context, input *GetDailyInput) (*GetDailyOutput, error)
	VerifyDaily(ctx context.Context, input *VerifyDailyInput) (*VerifyDailyOutput, error)

	PreviewGrid(ctx context.Context, input *PreviewGridInput) (*PreviewGridOutput, error)
	ValidChampions(ctx context.Context, input *ValidChampionsInput) (*ValidChampionsOutput, error)
	ListCategories(ctx context.Context, input *ListCategoriesInput) (*ListCategoriesOutput, error)
	ListChampions(ctx context.Context, input *ListChampionsInput) (*ListChampionsOutput, error)
}

// Config holds the dependencies for the game orchestrator
type Config struct {
	Engine      engine.Engine
	Index       *index.Index
	Repository  gamerepo.Repository
	Clock       clock.Clock
	IDGenerator idgen.Generator

	// EventBus and Metrics are optional
	EventBus events.EventBus
	Metrics  *observe.Metrics

	// Zero values take the package defaults
	SessionTTL        time.Duration
	DefaultDifficulty float64
	DailyDifficulty   float64
	GenerateRetries   int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Index == nil {
		vb.RequiredField("Index")
	}
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.SessionTTL < 0 {
		vb.InvalidField("SessionTTL", "must not be negative")
	}
	if c.GenerateRetries < 0 {
		vb.InvalidField("GenerateRetries", "must not be negative")
	}
	errors.ValidateFloatRange("DefaultDifficulty", c.DefaultDifficulty, 0, 1, vb)
	errors.ValidateFloatRange("DailyDifficulty", c.DailyDifficulty, 0, 1, vb)

	return vb.Build()
}

type orchestrator struct {
	// engineMu serialises engine access; generators are not safe for
	// concurrent use
	engineMu sync.Mutex
	engine   engine.Engine

	index    *index.Index
	repo     gamerepo.Repository
	clock    clock.Clock
	idGen    idgen.Generator
	eventBus events.EventBus
	metrics  *observe.Metrics

	sessionTTL        time.Duration
	defaultDifficulty float64
	dailyDifficulty   float64
	generateRetries   int
}

// NewOrchestrator creates a new game orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		engine:            cfg.Engine,
		index:             cfg.Index,
		repo:              cfg.Repository,
		clock:             cfg.Clock,
		idGen:             cfg.IDGenerator,
		eventBus:          cfg.EventBus,
		metrics:           cfg.Metrics,
		sessionTTL:        cfg.SessionTTL,
		defaultDifficulty: cfg.DefaultDifficulty,
		dailyDifficulty:   cfg.DailyDifficulty,
		generateRetries:   cfg.GenerateRetries,
	}
	if o.sessionTTL == 0 {
		o.sessionTTL = DefaultSessionTTL
	}
	if o.defaultDifficulty == 0 {
		o.defaultDifficulty = DefaultDifficulty
	}
	if o.dailyDifficulty == 0 {
		o.dailyDifficulty = DefaultDailyDifficulty
	}
	if o.generateRetries == 0 {
		o.generateRetries = DefaultGenerateRetries
	}

	return o, nil
}

// generate runs the engine under the lock and builds the playable grid
func (o *orchestrator) generate(ctx context.Context, difficulty float64) (*engine.Result, *entities.Grid, *entities.Axes, error) {
	o.engineMu.Lock()
	defer o.engineMu.Unlock()

	result, err := o.runEngine(ctx, difficulty)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "failed to generate grid")
	}

	grid, axes, err := o.engine.BuildGrid(result)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "failed to build grid")
	}

	return result, grid, axes, nil
}

// runEngine calls Generate, running it again while the engine reports an
// exhausted attempt budget. Callers hold engineMu.
func (o *orchestrator) runEngine(ctx context.Context, difficulty float64) (*engine.Result, error) {
	var lastErr error
	for run := 0; run <= o.generateRetries; run++ {
		result, err := o.engine.Generate(ctx, difficulty)
		if err == nil {
			return result, nil
		}
		if !errors.IsResourceExhausted(err) {
			return nil, err
		}

		slog.Debug("Grid generation exhausted its attempts",
			"run", run+1,
			"difficulty", difficulty)
		lastErr = err
	}
	return nil, lastErr
}

func (o *orchestrator) difficulty(requested *float64, fallback float64) float64 {
	if requested == nil {
		return fallback
	}
	return engine.ClampDifficulty(*requested)
}

// CreateGame generates and stores a new game
func (o *orchestrator) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	target := o.difficulty(input.Difficulty, o.defaultDifficulty)
	result, grid, axes, err := o.generate(ctx, target)
	if err != nil {
		return nil, err
	}

	now := o.clock.Now()
	game := &entities.Game{
		ID:               o.idGen.Generate(),
		Grid:             *grid,
		Categories:       *axes,
		GuessesRemaining: entities.GridSize * entities.GridSize,
		Difficulty:       result.Difficulty,
		TargetDifficulty: target,
		Outcome:          string(result.Outcome),
		CreatedAt:        now,
		ExpiresAt:        now.Add(o.sessionTTL),
	}

	if _, err := o.repo.Create(ctx, &gamerepo.CreateInput{Game: game, TTL: o.sessionTTL}); err != nil {
		return nil, errors.Wrap(err, "failed to store game")
	}

	observe.Logger(ctx).Info("Game created",
		"game_id", game.ID,
		"difficulty", game.Difficulty,
		"target_difficulty", target,
		"outcome", game.Outcome,
		"rows", result.Rows,
		"columns", result.Columns)

	if o.metrics != nil {
		o.metrics.RecordGameCreated(ctx, kindStandard)
	}
	o.publish(ctx, EventGameCreated, nil, game, map[string]any{
		EventKeyDifficulty: game.Difficulty,
	})

	return &CreateGameOutput{Game: game}, nil
}

// GetGame returns a stored game
func (o *orchestrator) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("game_id", input.GameID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.repo.Get(ctx, &gamerepo.GetInput{GameID: input.GameID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get game")
	}

	return &GetGameOutput{Game: out.Game}, nil
}

// SubmitGuess records a guess for one cell and updates score, guesses
// remaining and the game-over flag
func (o *orchestrator) SubmitGuess(ctx context.Context, input *SubmitGuessInput) (*SubmitGuessOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateGuess(input.GameID, input.Row, input.Col, input.Champion, true); err != nil {
		return nil, err
	}

	got, err := o.repo.Get(ctx, &gamerepo.GetInput{GameID: input.GameID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get game")
	}
	game := got.Game

	if game.IsGameOver {
		return nil, errors.FailedPreconditionf("game %s is over", game.ID).
			WithMeta("game_id", game.ID)
	}
	cell := &game.Grid.Cells[input.Row][input.Col]
	if cell.Guessed() {
		return nil, errors.FailedPreconditionf("cell (%d, %d) has already been guessed", input.Row, input.Col).
			WithMeta("game_id", game.ID).
			WithMeta("row", input.Row).
			WithMeta("col", input.Col)
	}

	name, err := o.index.Resolve(input.Champion)
	if err != nil {
		return nil, err
	}

	correct, err := engine.CheckGuess(&game.Grid, input.Row, input.Col, name)
	if err != nil {
		return nil, err
	}

	cell.GuessedChampion = &name
	cell.IsCorrect = &correct
	if correct {
		game.Score++
	}
	game.GuessesRemaining--
	if game.GuessesRemaining <= 0 {
		game.GuessesRemaining = 0
		game.IsGameOver = true
	}

	if _, err := o.repo.Update(ctx, &gamerepo.UpdateInput{Game: game}); err != nil {
		return nil, errors.Wrap(err, "failed to save guess")
	}

	log := observe.Logger(ctx)
	log.Info("Guess submitted",
		"game_id", game.ID,
		"row", input.Row,
		"col", input.Col,
		"champion", name,
		"correct", correct)
	if !correct {
		log.Debug("Guess rejected",
			"game_id", game.ID,
			"valid_champions", cell.CorrectChampions)
	}

	if o.metrics != nil {
		o.metrics.RecordGuess(ctx, correct)
	}

	var source core.Entity
	if champion, ok := o.index.Champion(name); ok {
		source = champion
	}
	o.publish(ctx, EventGuessSubmitted, source, game, map[string]any{
		EventKeyRow:     input.Row,
		EventKeyCol:     input.Col,
		EventKeyCorrect: correct,
	})
	if game.IsGameOver {
		log.Info("Game completed", "game_id", game.ID, "score", game.Score)
		o.publish(ctx, EventGameOver, nil, game, map[string]any{
			EventKeyScore: game.Score,
		})
	}

	return &SubmitGuessOutput{Game: game, Champion: name, IsCorrect: correct}, nil
}

// GetDaily returns the challenge of a day. Today's challenge is generated on
// first request; when several requests race, the first stored one wins.
func (o *orchestrator) GetDaily(ctx context.Context, input *GetDailyInput) (*GetDailyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	challenge, err := o.daily(ctx, input.Date)
	if err != nil {
		return nil, err
	}
	return &GetDailyOutput{Challenge: challenge}, nil
}

func (o *orchestrator) daily(ctx context.Context, date string) (*entities.DailyChallenge, error) {
	now := o.clock.Now()
	today := clock.Date(now)
	if date == "" {
		date = today
	}

	got, err := o.repo.GetDaily(ctx, &gamerepo.GetDailyInput{Date: date})
	if err == nil {
		return got.Challenge, nil
	}
	if !errors.IsNotFound(err) {
		return nil, errors.Wrap(err, "failed to get daily challenge")
	}
	if date != today {
		return nil, err
	}

	result, _, _, err := o.generate(ctx, o.dailyDifficulty)
	if err != nil {
		return nil, err
	}

	challenge := &entities.DailyChallenge{
		Date:       date,
		Rows:       result.Rows,
		Columns:    result.Columns,
		Solutions:  result.Solutions,
		Difficulty: result.Difficulty,
		Outcome:    string(result.Outcome),
		CreatedAt:  now,
	}

	saved, err := o.repo.SaveDaily(ctx, &gamerepo.SaveDailyInput{Challenge: challenge})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store daily challenge")
	}

	if saved.Created {
		observe.Logger(ctx).Info("Daily challenge created",
			"date", date,
			"difficulty", challenge.Difficulty,
			"rows", challenge.Rows,
			"columns", challenge.Columns)
		if o.metrics != nil {
			o.metrics.RecordGameCreated(ctx, kindDaily)
		}
		o.publish(ctx, EventDailyCreated, nil, saved.Challenge, map[string]any{
			EventKeyDate:       date,
			EventKeyDifficulty: challenge.Difficulty,
		})
	}

	return saved.Challenge, nil
}

// VerifyDaily checks a guess against a daily challenge without recording it
func (o *orchestrator) VerifyDaily(ctx context.Context, input *VerifyDailyInput) (*VerifyDailyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateGuess("", input.Row, input.Col, input.Champion, false); err != nil {
		return nil, err
	}

	challenge, err := o.daily(ctx, input.Date)
	if err != nil {
		return nil, err
	}

	name, err := o.index.Resolve(input.Champion)
	if err != nil {
		return nil, err
	}

	correct := challenge.Accepts(input.Row, input.Col, name)

	observe.Logger(ctx).Info("Daily guess verified",
		"date", challenge.Date,
		"row", input.Row,
		"col", input.Col,
		"champion", name,
		"correct", correct)
	if o.metrics != nil {
		o.metrics.RecordGuess(ctx, correct)
	}

	return &VerifyDailyOutput{Champion: name, IsCorrect: correct}, nil
}

// PreviewGrid generates a grid without storing a game
func (o *orchestrator) PreviewGrid(ctx context.Context, input *PreviewGridInput) (*PreviewGridOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.engineMu.Lock()
	defer o.engineMu.Unlock()

	result, err := o.runEngine(ctx, o.difficulty(input.Difficulty, o.defaultDifficulty))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate grid")
	}
	return &PreviewGridOutput{Result: result}, nil
}

// ValidChampions lists the answers of a row and column category pair
func (o *orchestrator) ValidChampions(_ context.Context, input *ValidChampionsInput) (*ValidChampionsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("row_category", input.RowCategory, vb)
	errors.ValidateRequired("column_category", input.ColumnCategory, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	o.engineMu.Lock()
	champions, err := o.engine.ValidChampions(input.RowCategory, input.ColumnCategory)
	o.engineMu.Unlock()
	if err != nil {
		return nil, err
	}

	slog.Debug("Resolved valid champions",
		"row_category", input.RowCategory,
		"column_category", input.ColumnCategory,
		"count", len(champions))

	return &ValidChampionsOutput{Champions: champions}, nil
}

// ListCategories returns the catalog with match counts
func (o *orchestrator) ListCategories(_ context.Context, _ *ListCategoriesInput) (*ListCategoriesOutput, error) {
	cat := o.index.Catalog()
	out := &ListCategoriesOutput{
		Version: cat.Version(),
		Types:   make([]CategoryType, 0, len(cat.Types())),
	}

	for _, t := range cat.Types() {
		ct := CategoryType{
			ID:          t.ID,
			Name:        t.Name,
			Description: t.Description,
			Categories:  make([]CategoryInfo, 0, len(t.Categories)),
		}
		for _, c := range t.Categories {
			count, err := o.index.Count(c.Name)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to count category %q", c.Name)
			}
			ct.Categories = append(ct.Categories, CategoryInfo{Name: c.Name, Matches: count})
		}
		out.Types = append(out.Types, ct)
	}

	return out, nil
}

// ListChampions returns every champion name, sorted
func (o *orchestrator) ListChampions(_ context.Context, _ *ListChampionsInput) (*ListChampionsOutput, error) {
	return &ListChampionsOutput{Champions: o.index.Names()}, nil
}

func validateGuess(gameID string, row, col int, champion string, requireGame bool) error {
	vb := errors.NewValidationBuilder()
	if requireGame {
		errors.ValidateRequired("game_id", gameID, vb)
	}
	errors.ValidateRange("row", row, 0, entities.GridSize-1, vb)
	errors.ValidateRange("col", col, 0, entities.GridSize-1, vb)
	errors.ValidateRequired("champion", champion, vb)
	errors.ValidateMaxLength("champion", champion, maxChampionNameLength, vb)
	return vb.Build()
}
