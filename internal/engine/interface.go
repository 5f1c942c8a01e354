// Package engine scores category pairs and assembles 3x3 puzzle grids
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/champion-grid/internal/engine Engine

import (
	"context"

	"github.com/KirkDiggler/champion-grid/internal/entities"
)

// Engine generates grids. Implementations are not safe for concurrent use;
// callers sharing one across goroutines must serialise access.
type Engine interface {
	// Generate runs the bounded retry loop toward the target difficulty
	Generate(ctx context.Context, target float64) (*Result, error)

	// BuildGrid turns a result into a playable grid plus its axis headers
	BuildGrid(result *Result) (*entities.Grid, *entities.Axes, error)

	// ValidChampions returns the sorted champions satisfying both categories
	ValidChampions(rowCategory, columnCategory string) ([]string, error)
}
