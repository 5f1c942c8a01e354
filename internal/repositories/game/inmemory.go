package game

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/champion-grid/internal/entities"
	"github.com/KirkDiggler/champion-grid/internal/errors"
	"github.com/KirkDiggler/champion-grid/internal/pkg/clock"
)

// InMemoryConfig holds the configuration for the in-memory repository
type InMemoryConfig struct {
	// Clock drives expiry. Defaults to the system clock.
	Clock clock.Clock
}

type entry[T any] struct {
	value     T
	expiresAt time.Time
}

// InMemoryRepository implements Repository for single-process use and tests.
// Expired entries are dropped lazily on read.
type InMemoryRepository struct {
	mu      sync.RWMutex
	clock   clock.Clock
	games   map[string]entry[*entities.Game]
	dailies map[string]entry[*entities.DailyChallenge]
}

// NewInMemory creates a new in-memory repository
func NewInMemory(cfg *InMemoryConfig) *InMemoryRepository {
	clk := clock.New()
	if cfg != nil && cfg.Clock != nil {
		clk = cfg.Clock
	}
	return &InMemoryRepository{
		clock:   clk,
		games:   make(map[string]entry[*entities.Game]),
		dailies: make(map[string]entry[*entities.DailyChallenge]),
	}
}

// Ensure InMemoryRepository implements Repository
var _ Repository = (*InMemoryRepository)(nil)

// Create stores a new game
func (r *InMemoryRepository) Create(_ context.Context, input *CreateInput) (*CreateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if err := validateGame(input.Game); err != nil {
		return nil, err
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	if existing, ok := r.games[input.Game.ID]; ok && now.Before(existing.expiresAt) {
		return nil, errors.AlreadyExistsf("game %s already exists", input.Game.ID).
			WithMeta("game_id", input.Game.ID)
	}

	r.games[input.Game.ID] = entry[*entities.Game]{
		value:     input.Game.Clone(),
		expiresAt: now.Add(ttl),
	}

	return &CreateOutput{Game: input.Game}, nil
}

// Get retrieves a game by ID
func (r *InMemoryRepository) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if input.GameID == "" {
		return nil, errors.InvalidArgument(errGameIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.games[input.GameID]
	if !ok || !r.clock.Now().Before(stored.expiresAt) {
		delete(r.games, input.GameID)
		return nil, errors.NotFoundf("game %s not found", input.GameID).
			WithMeta("game_id", input.GameID)
	}

	return &GetOutput{Game: stored.value.Clone()}, nil
}

// Update replaces a stored game and keeps its expiry
func (r *InMemoryRepository) Update(_ context.Context, input *UpdateInput) (*UpdateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if err := validateGame(input.Game); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.games[input.Game.ID]
	if !ok || !r.clock.Now().Before(stored.expiresAt) {
		return nil, errors.NotFoundf("game %s not found", input.Game.ID).
			WithMeta("game_id", input.Game.ID)
	}

	stored.value = input.Game.Clone()
	r.games[input.Game.ID] = stored

	return &UpdateOutput{Game: input.Game}, nil
}

// SaveDaily stores the challenge unless the day already has one
func (r *InMemoryRepository) SaveDaily(_ context.Context, input *SaveDailyInput) (*SaveDailyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if err := validateChallenge(input.Challenge); err != nil {
		return nil, err
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = DefaultDailyTTL
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	if existing, ok := r.dailies[input.Challenge.Date]; ok && now.Before(existing.expiresAt) {
		return &SaveDailyOutput{Challenge: existing.value.Clone()}, nil
	}

	r.dailies[input.Challenge.Date] = entry[*entities.DailyChallenge]{
		value:     input.Challenge.Clone(),
		expiresAt: now.Add(ttl),
	}

	return &SaveDailyOutput{Challenge: input.Challenge, Created: true}, nil
}

// GetDaily retrieves the challenge for a date
func (r *InMemoryRepository) GetDaily(_ context.Context, input *GetDailyInput) (*GetDailyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if err := validateDate(input.Date); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.dailies[input.Date]
	if !ok || !r.clock.Now().Before(stored.expiresAt) {
		return nil, errors.NotFoundf("no daily challenge for %s", input.Date).
			WithMeta("date", input.Date)
	}

	return &GetDailyOutput{Challenge: stored.value.Clone()}, nil
}
