package engine

import (
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/champion-grid/internal/errors"
)

const (
	baseWeight      = 1.0
	recentPenalty   = 0.5
	rollResolution  = 1_000_000
	difficultyFloor = 0.5
)

// SelectorConfig holds the dependencies of a Selector
type SelectorConfig struct {
	Scorer          *Scorer
	Roller          dice.Roller
	RecencyCapacity int
}

// Validate checks the config
func (c *SelectorConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Scorer == nil {
		vb.RequiredField("Scorer")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.RecencyCapacity <= 0 {
		vb.InvalidField("RecencyCapacity", "must be positive")
	}
	return vb.Build()
}

// Selector draws categories at random, weighted toward harder categories and
// away from recently used ones
type Selector struct {
	scorer *Scorer
	roller dice.Roller
	recent *recentSet
}

// NewSelector creates a selector with an empty recency set
func NewSelector(cfg *SelectorConfig) (*Selector, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Selector{
		scorer: cfg.Scorer,
		roller: cfg.Roller,
		recent: newRecentSet(cfg.RecencyCapacity),
	}, nil
}

// Weight is the relative chance of drawing a category
func (s *Selector) Weight(name string) (float64, error) {
	difficulty, err := s.scorer.ScoreCategory(name)
	if err != nil {
		return 0, err
	}

	weight := baseWeight
	if s.recent.Contains(name) {
		weight *= recentPenalty
	}
	return weight * (difficultyFloor + (1-difficultyFloor)*difficulty), nil
}

// Select draws up to count distinct categories from pool, skipping exclude.
// When exclusions leave nothing to draw from, the recency set is cleared and
// the whole pool is used instead. Drawn categories are marked as recent.
func (s *Selector) Select(count int, exclude []string, pool []string) ([]string, error) {
	if count <= 0 {
		return nil, errors.InvalidArgumentf("count must be positive, got %d", count)
	}

	candidates := available(pool, exclude)
	if len(candidates) == 0 {
		if len(pool) == 0 {
			return nil, errors.InvalidArgument("candidate pool is empty")
		}
		slog.Debug("Every candidate excluded, resetting recent categories",
			"pool_size", len(pool),
			"excluded", len(exclude))
		s.recent.Reset()
		candidates = available(pool, nil)
	}

	weights := make([]float64, len(candidates))
	for i, name := range candidates {
		w, err := s.Weight(name)
		if err != nil {
			return nil, err
		}
		weights[i] = w
	}

	if count > len(candidates) {
		count = len(candidates)
	}

	selected := make([]string, 0, count)
	for len(selected) < count {
		i, err := s.draw(weights)
		if err != nil {
			return nil, err
		}
		selected = append(selected, candidates[i])

		// without replacement
		candidates = append(candidates[:i], candidates[i+1:]...)
		weights = append(weights[:i], weights[i+1:]...)
	}

	s.recent.Add(selected...)
	return selected, nil
}

// Recent returns the recently used categories, oldest first
func (s *Selector) Recent() []string {
	return s.recent.Items()
}

// draw picks an index with probability proportional to its weight
func (s *Selector) draw(weights []float64) (int, error) {
	total := 0.0
	for _, w := range weights {
		total += w
	}

	roll, err := s.roller.Roll(rollResolution)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.CodeInternal, "failed to roll for category")
	}

	target := float64(roll-1) / rollResolution * total
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if target < cumulative {
			return i, nil
		}
	}
	return len(weights) - 1, nil
}

// available returns the distinct members of pool not in exclude, keeping pool order
func available(pool []string, exclude []string) []string {
	skip := make(map[string]struct{}, len(exclude)+len(pool))
	for _, name := range exclude {
		skip[name] = struct{}{}
	}

	out := make([]string, 0, len(pool))
	for _, name := range pool {
		if _, ok := skip[name]; ok {
			continue
		}
		skip[name] = struct{}{}
		out = append(out, name)
	}
	return out
}
