package entities

import (
	"strings"
	"time"
)

// GridSize is the number of rows and of columns in a puzzle grid
const GridSize = 3

// Entity types reported to rpg-toolkit
const (
	EntityTypeGame  = "grid_game"
	EntityTypeDaily = "daily_challenge"
)

// Cell is one row x column intersection of a grid
type Cell struct {
	RowCategory      string   `json:"row_category"`
	ColumnCategory   string   `json:"column_category"`
	CorrectChampions []string `json:"correct_champions"`
	GuessedChampion  *string  `json:"guessed_champion,omitempty"`
	IsCorrect        *bool    `json:"is_correct,omitempty"`
}

// Guessed reports whether a guess has been recorded for the cell
func (c *Cell) Guessed() bool {
	return c.GuessedChampion != nil
}

// Accepts reports whether name is one of the cell's solutions, ignoring case
func (c *Cell) Accepts(name string) bool {
	return containsFold(c.CorrectChampions, name)
}

func containsFold(names []string, name string) bool {
	for _, candidate := range names {
		if strings.EqualFold(candidate, name) {
			return true
		}
	}
	return false
}

// Grid is a 3x3 puzzle. Cells are addressed [row][column].
type Grid struct {
	Cells [GridSize][GridSize]Cell `json:"cells"`
}

// InBounds reports whether row and col address a cell
func InBounds(row, col int) bool {
	return row >= 0 && row < GridSize && col >= 0 && col < GridSize
}

// AxisCategory describes one axis header for client rendering. Values lists every
// category of the same type so clients can hint at alternatives.
type AxisCategory struct {
	Name   string   `json:"name"`
	Type   string   `json:"type"`
	Values []string `json:"values"`
}

// Axes holds the column (x) and row (y) headers of a grid
type Axes struct {
	XAxis []AxisCategory `json:"x_axis"`
	YAxis []AxisCategory `json:"y_axis"`
}

// Game is a playable grid session
type Game struct {
	ID               string    `json:"id"`
	Grid             Grid      `json:"grid"`
	Categories       Axes      `json:"categories"`
	GuessesRemaining int32     `json:"guesses_remaining"`
	Score            int32     `json:"score"`
	IsGameOver       bool      `json:"is_game_over"`
	Difficulty       float64   `json:"difficulty"`
	TargetDifficulty float64   `json:"target_difficulty"`
	Outcome          string    `json:"outcome"`
	CreatedAt        time.Time `json:"created_at"`
	ExpiresAt        time.Time `json:"expires_at"`
}

// GetID returns the game ID
func (g *Game) GetID() string {
	return g.ID
}

// GetType returns the entity type for rpg-toolkit
func (g *Game) GetType() string {
	return EntityTypeGame
}

// Clone returns a deep copy of the game
func (g *Game) Clone() *Game {
	if g == nil {
		return nil
	}
	out := *g
	for r := range g.Grid.Cells {
		for c := range g.Grid.Cells[r] {
			out.Grid.Cells[r][c] = g.Grid.Cells[r][c].clone()
		}
	}
	out.Categories = Axes{
		XAxis: cloneAxis(g.Categories.XAxis),
		YAxis: cloneAxis(g.Categories.YAxis),
	}
	return &out
}

func (c Cell) clone() Cell {
	out := c
	out.CorrectChampions = append([]string(nil), c.CorrectChampions...)
	if c.GuessedChampion != nil {
		guess := *c.GuessedChampion
		out.GuessedChampion = &guess
	}
	if c.IsCorrect != nil {
		correct := *c.IsCorrect
		out.IsCorrect = &correct
	}
	return out
}

func cloneAxis(axis []AxisCategory) []AxisCategory {
	if axis == nil {
		return nil
	}
	out := make([]AxisCategory, len(axis))
	for i, a := range axis {
		out[i] = AxisCategory{Name: a.Name, Type: a.Type, Values: append([]string(nil), a.Values...)}
	}
	return out
}

// RowCategories returns the row headers in order
func (g *Game) RowCategories() []string {
	rows := make([]string, 0, GridSize)
	for _, axis := range g.Categories.YAxis {
		rows = append(rows, axis.Name)
	}
	return rows
}

// ColumnCategories returns the column headers in order
func (g *Game) ColumnCategories() []string {
	cols := make([]string, 0, GridSize)
	for _, axis := range g.Categories.XAxis {
		cols = append(cols, axis.Name)
	}
	return cols
}

// DailyChallenge is the shared grid of one calendar day. Every player sees the
// same categories, so it carries solutions rather than per-player guesses.
type DailyChallenge struct {
	Date       string                       `json:"date"`
	Rows       []string                     `json:"rows"`
	Columns    []string                     `json:"columns"`
	Solutions  [GridSize][GridSize][]string `json:"solutions"`
	Difficulty float64                      `json:"difficulty"`
	Outcome    string                       `json:"outcome"`
	CreatedAt  time.Time                    `json:"created_at"`
}

// GetID returns the challenge date
func (d *DailyChallenge) GetID() string {
	return d.Date
}

// GetType returns the entity type for rpg-toolkit
func (d *DailyChallenge) GetType() string {
	return EntityTypeDaily
}

// Clone returns a deep copy of the challenge
func (d *DailyChallenge) Clone() *DailyChallenge {
	if d == nil {
		return nil
	}
	out := *d
	out.Rows = append([]string(nil), d.Rows...)
	out.Columns = append([]string(nil), d.Columns...)
	for r := range d.Solutions {
		for c := range d.Solutions[r] {
			out.Solutions[r][c] = append([]string(nil), d.Solutions[r][c]...)
		}
	}
	return &out
}

// Accepts reports whether name solves the cell at row, col, ignoring case.
// Coordinates outside the grid never match.
func (d *DailyChallenge) Accepts(row, col int, name string) bool {
	if !InBounds(row, col) {
		return false
	}
	return containsFold(d.Solutions[row][col], name)
}
