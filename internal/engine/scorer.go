package engine

import (
	"math"

	"github.com/KirkDiggler/champion-grid/internal/errors"
	"github.com/KirkDiggler/champion-grid/internal/index"
)

// ScorerConfig holds the dependencies of a Scorer
type ScorerConfig struct {
	Index           *index.Index
	CrossTypeFactor float64
}

// Validate checks the config
func (c *ScorerConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Index == nil {
		vb.RequiredField("Index")
	}
	if c.CrossTypeFactor <= 0 || c.CrossTypeFactor > 1 {
		vb.InvalidField("CrossTypeFactor", "must be in (0, 1]")
	}
	return vb.Build()
}

// Scorer converts match counts into difficulty scores. Scores are cached for
// the scorer's lifetime since the dataset and catalog never change.
type Scorer struct {
	index           *index.Index
	crossTypeFactor float64
	categories      map[string]float64
	pairs           map[string]*Pair
}

// NewScorer creates a scorer
func NewScorer(cfg *ScorerConfig) (*Scorer, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Scorer{
		index:           cfg.Index,
		crossTypeFactor: cfg.CrossTypeFactor,
		categories:      make(map[string]float64),
		pairs:           make(map[string]*Pair),
	}, nil
}

// Difficulty maps a match count to [0, 1]. Zero matches is the hardest
// possible score; matching every champion is the easiest.
func Difficulty(matches, total int) float64 {
	if matches <= 0 || total <= 0 {
		return 1.0
	}
	return 1.0 - math.Log(float64(matches)+1)/math.Log(float64(total)+1)
}

// ScoreCategory returns the difficulty of a single category
func (s *Scorer) ScoreCategory(name string) (float64, error) {
	if score, ok := s.categories[name]; ok {
		return score, nil
	}

	count, err := s.index.Count(name)
	if err != nil {
		return 0, err
	}

	score := Difficulty(count, s.index.Total())
	s.categories[name] = score
	return score, nil
}

// ScorePair returns the scored intersection of two categories. Pairs spanning
// two category types are scaled by the cross-type factor.
func (s *Scorer) ScorePair(a, b string) (*Pair, error) {
	key := pairKey(a, b)
	cached, ok := s.pairs[key]
	if !ok {
		champions, err := s.index.Intersect(a, b)
		if err != nil {
			return nil, err
		}

		score := Difficulty(len(champions), s.index.Total())
		if !s.index.Catalog().SameType(a, b) {
			score *= s.crossTypeFactor
		}

		cached = &Pair{Category1: a, Category2: b, Difficulty: score, Champions: champions}
		s.pairs[key] = cached
	}

	out := &Pair{
		Category1:  a,
		Category2:  b,
		Difficulty: cached.Difficulty,
		Champions:  make([]string, len(cached.Champions)),
	}
	copy(out.Champions, cached.Champions)
	return out, nil
}

// pairKey is order independent. The separator cannot appear in category names
// loaded from the catalog.
func pairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "\x00" + b
}
