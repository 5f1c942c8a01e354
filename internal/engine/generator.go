package engine

import (
	"context"
	"math"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"go.opentelemetry.io/otel/attribute"

	"github.com/KirkDiggler/champion-grid/internal/entities"
	"github.com/KirkDiggler/champion-grid/internal/errors"
	"github.com/KirkDiggler/champion-grid/internal/index"
	"github.com/KirkDiggler/champion-grid/internal/observe"
)

// Config holds the dependencies and tunables of a Generator. Zero tunables
// take the package defaults.
type Config struct {
	Index  *index.Index
	Roller dice.Roller

	// Metrics is optional
	Metrics *observe.Metrics

	MaxAttempts     int
	Tolerance       float64
	RecencyCapacity int
	CrossTypeFactor float64
}

// Validate checks the config
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Index == nil {
		vb.RequiredField("Index")
	}
	if c.MaxAttempts < 0 {
		vb.InvalidField("MaxAttempts", "must not be negative")
	}
	if c.Tolerance < 0 || c.Tolerance > 1 {
		vb.InvalidField("Tolerance", "must be in [0, 1]")
	}
	if c.RecencyCapacity < 0 {
		vb.InvalidField("RecencyCapacity", "must not be negative")
	}
	if c.CrossTypeFactor < 0 || c.CrossTypeFactor > 1 {
		vb.InvalidField("CrossTypeFactor", "must be in [0, 1]")
	}

	return vb.Build()
}

func (c *Config) applyDefaults() {
	if c.Roller == nil {
		c.Roller = dice.DefaultRoller
	}
	if c.MaxAttempts == 0 {
		c.MaxAttempts = DefaultMaxAttempts
	}
	if c.Tolerance == 0 {
		c.Tolerance = DefaultTolerance
	}
	if c.RecencyCapacity == 0 {
		c.RecencyCapacity = DefaultRecencyCapacity
	}
	if c.CrossTypeFactor == 0 {
		c.CrossTypeFactor = DefaultCrossTypeFactor
	}
}

// Generator assembles grids. It owns its score caches and recency state and
// is not safe for concurrent use.
type Generator struct {
	index       *index.Index
	scorer      *Scorer
	selector    *Selector
	metrics     *observe.Metrics
	maxAttempts int
	tolerance   float64
	pool        []string
}

// NewGenerator creates a generator. The candidate pool of categories with at
// least one match is fixed here. Defaults are applied to a copy of cfg.
func NewGenerator(cfg *Config) (*Generator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	c := *cfg
	c.applyDefaults()

	scorer, err := NewScorer(&ScorerConfig{
		Index:           c.Index,
		CrossTypeFactor: c.CrossTypeFactor,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create scorer")
	}

	selector, err := NewSelector(&SelectorConfig{
		Scorer:          scorer,
		Roller:          c.Roller,
		RecencyCapacity: c.RecencyCapacity,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create selector")
	}

	return &Generator{
		index:       c.Index,
		scorer:      scorer,
		selector:    selector,
		metrics:     c.Metrics,
		maxAttempts: c.MaxAttempts,
		tolerance:   c.Tolerance,
		pool:        c.Index.Viable(),
	}, nil
}

// Verify that Generator implements Engine
var _ Engine = (*Generator)(nil)

// Scorer exposes the generator's scorer
func (g *Generator) Scorer() *Scorer {
	return g.scorer
}

// Selector exposes the generator's selector
func (g *Generator) Selector() *Selector {
	return g.selector
}

// Pool returns the categories eligible for selection
func (g *Generator) Pool() []string {
	out := make([]string, len(g.pool))
	copy(out, g.pool)
	return out
}

// ClampDifficulty limits a requested difficulty to [0, 1]. NaN becomes 0.
func ClampDifficulty(d float64) float64 {
	switch {
	case math.IsNaN(d), d < 0:
		return 0
	case d > 1:
		return 1
	default:
		return d
	}
}

// Generate picks row and column categories until every cell has solutions
// and the mean cell difficulty is within tolerance of target. If no attempt
// lands in the band, the last attempt with every cell solvable is returned as
// OutcomeOffTarget. If no attempt had every cell solvable, a ResourceExhausted
// error is returned instead of a grid.
func (g *Generator) Generate(ctx context.Context, target float64) (*Result, error) {
	ctx, span := observe.StartSpan(ctx, "engine.Generate")
	defer span.End()

	log := observe.Logger(ctx)
	started := time.Now()
	target = ClampDifficulty(target)

	if len(g.pool) < MinViableCategories {
		return nil, errors.FailedPreconditionf(
			"not enough viable categories: need at least %d, found %d",
			MinViableCategories, len(g.pool),
		).WithMeta("viable_categories", len(g.pool))
	}

	var lastSolvable *Result
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeCanceled, "grid generation canceled")
		}

		rows, err := g.selector.Select(entities.GridSize, nil, g.pool)
		if err != nil {
			return nil, errors.Wrap(err, "failed to select rows")
		}
		cols, err := g.selector.Select(entities.GridSize, rows, g.pool)
		if err != nil {
			return nil, errors.Wrap(err, "failed to select columns")
		}

		result, solvable, err := g.evaluate(rows, cols)
		if err != nil {
			return nil, err
		}
		if !solvable {
			log.Debug("Discarding attempt with an empty cell",
				"attempt", attempt,
				"rows", rows,
				"columns", cols)
			continue
		}

		result.Target = target
		result.Attempts = attempt
		if math.Abs(result.Difficulty-target) <= g.tolerance {
			result.Outcome = OutcomeValid
			g.finish(ctx, result.Outcome, attempt, started)
			span.SetAttributes(
				attribute.String("outcome", string(result.Outcome)),
				attribute.Int("attempts", attempt),
			)
			return result, nil
		}

		log.Debug("Discarding attempt outside difficulty band",
			"attempt", attempt,
			"difficulty", result.Difficulty,
			"target", target)
		lastSolvable = result
	}

	if lastSolvable != nil {
		lastSolvable.Outcome = OutcomeOffTarget
		lastSolvable.Attempts = g.maxAttempts
		log.Warn("No grid within difficulty tolerance, returning last solvable attempt",
			"target", target,
			"difficulty", lastSolvable.Difficulty,
			"tolerance", g.tolerance,
			"attempts", g.maxAttempts)
		g.finish(ctx, lastSolvable.Outcome, g.maxAttempts, started)
		span.SetAttributes(attribute.String("outcome", string(lastSolvable.Outcome)))
		return lastSolvable, nil
	}

	log.Warn("No solvable grid found",
		"target", target,
		"attempts", g.maxAttempts,
		"pool_size", len(g.pool))
	g.finish(ctx, OutcomeExhausted, g.maxAttempts, started)
	span.SetAttributes(attribute.String("outcome", string(OutcomeExhausted)))

	return nil, errors.ResourceExhaustedf("no solvable grid after %d attempts", g.maxAttempts).
		WithMeta("outcome", string(OutcomeExhausted)).
		WithMeta("attempts", g.maxAttempts)
}

// evaluate scores all nine cells. solvable is false as soon as one cell has
// no champions.
func (g *Generator) evaluate(rows, cols []string) (*Result, bool, error) {
	if len(rows) != entities.GridSize || len(cols) != entities.GridSize {
		return nil, false, nil
	}

	result := &Result{
		Rows:    append([]string(nil), rows...),
		Columns: append([]string(nil), cols...),
	}

	total := 0.0
	for r, row := range rows {
		for c, col := range cols {
			pair, err := g.scorer.ScorePair(row, col)
			if err != nil {
				return nil, false, errors.Wrap(err, "failed to score pair")
			}
			if len(pair.Champions) == 0 {
				return nil, false, nil
			}
			result.Solutions[r][c] = pair.Champions
			total += pair.Difficulty
		}
	}

	result.Difficulty = total / float64(entities.GridSize*entities.GridSize)
	return result, true, nil
}

func (g *Generator) finish(ctx context.Context, outcome Outcome, attempts int, started time.Time) {
	if g.metrics == nil {
		return
	}
	g.metrics.RecordGeneration(ctx, string(outcome), attempts, time.Since(started).Seconds())
}

// BuildGrid creates the playable grid with no guesses recorded, and the axis
// headers. Each header lists every category of the same type.
func (g *Generator) BuildGrid(result *Result) (*entities.Grid, *entities.Axes, error) {
	if result == nil {
		return nil, nil, errors.InvalidArgument("result is required")
	}
	if len(result.Rows) != entities.GridSize || len(result.Columns) != entities.GridSize {
		return nil, nil, errors.InvalidArgumentf("result must have %d rows and %d columns",
			entities.GridSize, entities.GridSize)
	}

	grid := &entities.Grid{}
	for r, row := range result.Rows {
		for c, col := range result.Columns {
			solutions := make([]string, len(result.Solutions[r][c]))
			copy(solutions, result.Solutions[r][c])
			grid.Cells[r][c] = entities.Cell{
				RowCategory:      row,
				ColumnCategory:   col,
				CorrectChampions: solutions,
			}
		}
	}

	axes := &entities.Axes{
		XAxis: make([]entities.AxisCategory, 0, entities.GridSize),
		YAxis: make([]entities.AxisCategory, 0, entities.GridSize),
	}
	for _, col := range result.Columns {
		axis, err := g.axis(col)
		if err != nil {
			return nil, nil, err
		}
		axes.XAxis = append(axes.XAxis, axis)
	}
	for _, row := range result.Rows {
		axis, err := g.axis(row)
		if err != nil {
			return nil, nil, err
		}
		axes.YAxis = append(axes.YAxis, axis)
	}

	return grid, axes, nil
}

func (g *Generator) axis(name string) (entities.AxisCategory, error) {
	cat, ok := g.index.Catalog().Category(name)
	if !ok {
		return entities.AxisCategory{}, errors.InvalidArgumentf("unknown category %q", name)
	}
	t, _ := g.index.Catalog().Type(cat.Type)
	return entities.AxisCategory{
		Name:   name,
		Type:   cat.Type,
		Values: t.CategoryNames(),
	}, nil
}

// ValidChampions returns the sorted champions satisfying both categories
func (g *Generator) ValidChampions(rowCategory, columnCategory string) ([]string, error) {
	pair, err := g.scorer.ScorePair(rowCategory, columnCategory)
	if err != nil {
		return nil, err
	}
	return pair.Champions, nil
}

// CheckGuess reports whether name solves the cell at row, col. Coordinates
// outside the grid are an InvalidArgument error.
func CheckGuess(grid *entities.Grid, row, col int, name string) (bool, error) {
	if grid == nil {
		return false, errors.InvalidArgument("grid is required")
	}
	if !entities.InBounds(row, col) {
		return false, errors.InvalidArgumentf("cell (%d, %d) is outside the %dx%d grid",
			row, col, entities.GridSize, entities.GridSize).
			WithMeta("row", row).
			WithMeta("col", col)
	}
	cell := grid.Cells[row][col]
	return cell.Accepts(name), nil
}
