// Package game provides storage for game sessions and daily challenges
package game

import (
	"context"
	"time"

	"github.com/KirkDiggler/champion-grid/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=gamerepomock github.com/KirkDiggler/champion-grid/internal/repositories/game Repository

// DefaultTTL is how long a game session lives when no TTL is given
const DefaultTTL = 24 * time.Hour

// CreateInput contains parameters for storing a new game
type CreateInput struct {
	Game *entities.Game
	TTL  time.Duration
}

// CreateOutput contains the stored game
type CreateOutput struct {
	Game *entities.Game
}

// GetInput contains parameters for retrieving a game
type GetInput struct {
	GameID string
}

// GetOutput contains the retrieved game
type GetOutput struct {
	Game *entities.Game
}

// UpdateInput contains the game to replace. The stored expiry is kept.
type UpdateInput struct {
	Game *entities.Game
}

// UpdateOutput contains the updated game
type UpdateOutput struct {
	Game *entities.Game
}

// SaveDailyInput contains the challenge of one day
type SaveDailyInput struct {
	Challenge *entities.DailyChallenge
	TTL       time.Duration
}

// SaveDailyOutput contains the challenge that is stored for the day. When
// another writer got there first, Challenge is theirs and Created is false.
type SaveDailyOutput struct {
	Challenge *entities.DailyChallenge
	Created   bool
}

// GetDailyInput contains the day to look up, formatted YYYY-MM-DD
type GetDailyInput struct {
	Date string
}

// GetDailyOutput contains the day's challenge
type GetDailyOutput struct {
	Challenge *entities.DailyChallenge
}

// Repository defines storage operations for games
type Repository interface {
	// Create stores a new game. An existing ID is an AlreadyExists error.
	Create(ctx context.Context, input *CreateInput) (*CreateOutput, error)

	// Get retrieves a game by ID
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Update replaces a stored game
	Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error)

	// SaveDaily stores the challenge for its date unless one exists already
	SaveDaily(ctx context.Context, input *SaveDailyInput) (*SaveDailyOutput, error)

	// GetDaily retrieves the challenge for a date
	GetDaily(ctx context.Context, input *GetDailyInput) (*GetDailyOutput, error)
}
