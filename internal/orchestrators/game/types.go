package game

import (
	"github.com/KirkDiggler/champion-grid/internal/engine"
	"github.com/KirkDiggler/champion-grid/internal/entities"
)

// CreateGameInput defines the request for a new game. A nil Difficulty uses
// the configured default; other values are clamped to [0, 1].
type CreateGameInput struct {
	Difficulty *float64
}

// CreateGameOutput defines the response for a new game
type CreateGameOutput struct {
	Game *entities.Game
}

// GetGameInput defines the request for an existing game
type GetGameInput struct {
	GameID string
}

// GetGameOutput defines the response for an existing game
type GetGameOutput struct {
	Game *entities.Game
}

// SubmitGuessInput defines a guess for one cell
type SubmitGuessInput struct {
	GameID   string
	Row      int
	Col      int
	Champion string
}

// SubmitGuessOutput defines the result of a guess
type SubmitGuessOutput struct {
	Game *entities.Game

	// Champion is the canonical name the input resolved to
	Champion  string
	IsCorrect bool
}

// GetDailyInput defines the request for a daily challenge. An empty Date
// means today.
type GetDailyInput struct {
	Date string
}

// GetDailyOutput defines the response for a daily challenge
type GetDailyOutput struct {
	Challenge *entities.DailyChallenge
}

// VerifyDailyInput defines a guess against a daily challenge. An empty Date
// means today.
type VerifyDailyInput struct {
	Date     string
	Row      int
	Col      int
	Champion string
}

// VerifyDailyOutput defines the verdict for a daily guess
type VerifyDailyOutput struct {
	Champion  string
	IsCorrect bool
}

// PreviewGridInput defines the request for a grid that is not stored
type PreviewGridInput struct {
	Difficulty *float64
}

// PreviewGridOutput defines the generated grid
type PreviewGridOutput struct {
	Result *engine.Result
}

// ValidChampionsInput defines the request for one cell's answers
type ValidChampionsInput struct {
	RowCategory    string
	ColumnCategory string
}

// ValidChampionsOutput lists the sorted champions satisfying both categories
type ValidChampionsOutput struct {
	Champions []string
}

// ListCategoriesInput defines the request for the category catalog
type ListCategoriesInput struct{}

// CategoryInfo is one category with the number of champions matching it
type CategoryInfo struct {
	Name    string
	Matches int
}

// CategoryType is one category type of the catalog
type CategoryType struct {
	ID          string
	Name        string
	Description string
	Categories  []CategoryInfo
}

// ListCategoriesOutput defines the catalog in declaration order
type ListCategoriesOutput struct {
	Version string
	Types   []CategoryType
}

// ListChampionsInput defines the request for champion names
type ListChampionsInput struct{}

// ListChampionsOutput lists every champion name, sorted
type ListChampionsOutput struct {
	Champions []string
}
