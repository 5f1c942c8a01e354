package engine

import "github.com/KirkDiggler/champion-grid/internal/entities"

// Defaults for the generator tunables
const (
	DefaultMaxAttempts     = 100
	DefaultTolerance       = 0.3
	DefaultRecencyCapacity = 20
	DefaultCrossTypeFactor = 0.9

	// MinViableCategories is the fewest categories with matches a grid can be built from
	MinViableCategories = 2 * entities.GridSize
)

// Outcome tells callers how a generation run ended
type Outcome string

// Generation outcomes
const (
	// OutcomeValid means every cell has solutions and the difficulty is in band
	OutcomeValid Outcome = "valid"
	// OutcomeOffTarget means every cell has solutions but no attempt hit the band
	OutcomeOffTarget Outcome = "off_target"
	// OutcomeExhausted means no attempt produced a grid with all cells solvable
	OutcomeExhausted Outcome = "exhausted"
)

// Pair is the scored intersection of two categories
type Pair struct {
	Category1  string
	Category2  string
	Difficulty float64
	Champions  []string
}

// Result is the output of one generation run
type Result struct {
	Rows       []string
	Columns    []string
	Solutions  [entities.GridSize][entities.GridSize][]string
	Difficulty float64
	Target     float64
	Outcome    Outcome
	Attempts   int
}
