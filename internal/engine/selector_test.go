package engine_test

import (
	"fmt"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/champion-grid/internal/engine"
	"github.com/KirkDiggler/champion-grid/internal/errors"
	"github.com/KirkDiggler/champion-grid/internal/index"
	"github.com/KirkDiggler/champion-grid/internal/testutils"
)

type SelectorTestSuite struct {
	suite.Suite
	scorer *engine.Scorer
	pool   []string
}

func (s *SelectorTestSuite) SetupTest() {
	champions, cat := testutils.CreateAmpleDataset(12)
	idx, err := index.New(&index.Config{Champions: champions, Catalog: cat})
	s.Require().NoError(err)

	scorer, err := engine.NewScorer(&engine.ScorerConfig{Index: idx, CrossTypeFactor: engine.DefaultCrossTypeFactor})
	s.Require().NoError(err)
	s.scorer = scorer
	s.pool = idx.Viable()
}

func (s *SelectorTestSuite) newSelector(roller dice.Roller, capacity int) *engine.Selector {
	sel, err := engine.NewSelector(&engine.SelectorConfig{
		Scorer:          s.scorer,
		Roller:          roller,
		RecencyCapacity: capacity,
	})
	s.Require().NoError(err)
	return sel
}

func (s *SelectorTestSuite) TestNewSelectorValidation() {
	testCases := []struct {
		name   string
		config *engine.SelectorConfig
		errMsg string
	}{
		{name: "nil config", config: nil, errMsg: "config is required"},
		{name: "missing scorer", config: &engine.SelectorConfig{Roller: dice.DefaultRoller, RecencyCapacity: 1}, errMsg: "Scorer"},
		{name: "missing roller", config: &engine.SelectorConfig{Scorer: s.scorer, RecencyCapacity: 1}, errMsg: "Roller"},
		{name: "zero capacity", config: &engine.SelectorConfig{Scorer: s.scorer, Roller: dice.DefaultRoller}, errMsg: "RecencyCapacity"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			sel, err := engine.NewSelector(tc.config)
			s.Require().Error(err)
			s.Nil(sel)
			s.Contains(err.Error(), tc.errMsg)
		})
	}
}

func (s *SelectorTestSuite) TestSelectReturnsDistinctPoolMembers() {
	sel := s.newSelector(dice.DefaultRoller, engine.DefaultRecencyCapacity)
	inPool := make(map[string]bool)
	for _, name := range s.pool {
		inPool[name] = true
	}

	for i := 0; i < 200; i++ {
		got, err := sel.Select(3, nil, s.pool)
		s.Require().NoError(err)
		s.Len(got, 3)

		seen := make(map[string]bool)
		for _, name := range got {
			s.True(inPool[name], "%s not in pool", name)
			s.False(seen[name], "duplicate %s", name)
			seen[name] = true
		}
	}
}

func (s *SelectorTestSuite) TestSelectHonoursExclusions() {
	sel := s.newSelector(dice.DefaultRoller, engine.DefaultRecencyCapacity)
	exclude := testutils.AmpleRows

	for i := 0; i < 100; i++ {
		got, err := sel.Select(3, exclude, s.pool)
		s.Require().NoError(err)
		s.Len(got, 3)
		for _, name := range got {
			s.NotContains(exclude, name)
		}
	}
}

func (s *SelectorTestSuite) TestSelectCapsAtAvailable() {
	sel := s.newSelector(dice.DefaultRoller, engine.DefaultRecencyCapacity)
	got, err := sel.Select(5, nil, []string{"Alpha 1", "Alpha 2", "Alpha 1"})
	s.Require().NoError(err)
	s.ElementsMatch([]string{"Alpha 1", "Alpha 2"}, got)
}

func (s *SelectorTestSuite) TestSelectWithEverythingExcludedUsesFullPool() {
	sel := s.newSelector(dice.DefaultRoller, engine.DefaultRecencyCapacity)
	_, err := sel.Select(3, nil, s.pool)
	s.Require().NoError(err)
	s.Len(sel.Recent(), 3)

	got, err := sel.Select(2, s.pool, s.pool)
	s.Require().NoError(err)
	s.Len(got, 2)
	for _, name := range got {
		s.Contains(s.pool, name)
	}
	// recency was reset before drawing
	s.ElementsMatch(got, sel.Recent())
}

func (s *SelectorTestSuite) TestDeterministicDraws() {
	pool := []string{"Alpha 1", "Alpha 2", "Beta 1", "Beta 2"}

	low := s.newSelector(&fixedRoller{face: 1}, engine.DefaultRecencyCapacity)
	got, err := low.Select(3, nil, pool)
	s.Require().NoError(err)
	s.Equal([]string{"Alpha 1", "Alpha 2", "Beta 1"}, got)

	high := s.newSelector(&fixedRoller{face: 1_000_000}, engine.DefaultRecencyCapacity)
	got, err = high.Select(3, nil, pool)
	s.Require().NoError(err)
	s.Equal([]string{"Beta 2", "Beta 1", "Alpha 2"}, got)
}

func (s *SelectorTestSuite) TestRecentlyUsedHalvesWeight() {
	sel := s.newSelector(&fixedRoller{face: 1}, engine.DefaultRecencyCapacity)

	before, err := sel.Weight("Alpha 1")
	s.Require().NoError(err)
	// every category matches every champion, so difficulty is 0 and weight is 0.5
	s.InDelta(0.5, before, 1e-12)

	_, err = sel.Select(1, nil, []string{"Alpha 1"})
	s.Require().NoError(err)

	after, err := sel.Weight("Alpha 1")
	s.Require().NoError(err)
	s.InDelta(before/2, after, 1e-12)
}

func (s *SelectorTestSuite) TestRecencyNeverExceedsCapacity() {
	pool := make([]string, 0)
	pool = append(pool, s.pool...)

	sel := s.newSelector(dice.DefaultRoller, 5)
	for i := 0; i < 100; i++ {
		_, err := sel.Select(3, nil, pool)
		s.Require().NoError(err)
		s.LessOrEqual(len(sel.Recent()), 5, fmt.Sprintf("after selection %d", i))
	}
}

func (s *SelectorTestSuite) TestSelectErrors() {
	sel := s.newSelector(dice.DefaultRoller, engine.DefaultRecencyCapacity)

	_, err := sel.Select(0, nil, s.pool)
	s.True(errors.IsInvalidArgument(err))

	_, err = sel.Select(3, nil, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = sel.Select(1, nil, []string{"Atlantis"})
	s.True(errors.IsInvalidArgument(err))

	jammed := s.newSelector(failingRoller{}, engine.DefaultRecencyCapacity)
	_, err = jammed.Select(1, nil, s.pool)
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
}

func TestSelectorTestSuite(t *testing.T) {
	suite.Run(t, new(SelectorTestSuite))
}
