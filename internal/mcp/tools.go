package mcp

import (
	"context"
	"fmt"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/KirkDiggler/champion-grid/internal/entities"
	"github.com/KirkDiggler/champion-grid/internal/errors"
	"github.com/KirkDiggler/champion-grid/internal/orchestrators/game"
)

type CreateGameInput struct {
	Difficulty *float64 `json:"difficulty,omitempty" jsonschema:"target difficulty from 0 (easy) to 1 (hard)"`
}

type GetGameInput struct {
	GameID string `json:"game_id" jsonschema:"game id returned by create_game"`
}

type SubmitGuessInput struct {
	GameID   string `json:"game_id" jsonschema:"game id returned by create_game"`
	Row      int    `json:"row" jsonschema:"row index, 0 to 2"`
	Col      int    `json:"col" jsonschema:"column index, 0 to 2"`
	Champion string `json:"champion" jsonschema:"champion name"`
}

type GetDailyInput struct {
	Date string `json:"date,omitempty" jsonschema:"day as YYYY-MM-DD, defaults to today"`
}

type VerifyDailyInput struct {
	Date     string `json:"date,omitempty" jsonschema:"day as YYYY-MM-DD, defaults to today"`
	Row      int    `json:"row" jsonschema:"row index, 0 to 2"`
	Col      int    `json:"col" jsonschema:"column index, 0 to 2"`
	Champion string `json:"champion" jsonschema:"champion name"`
}

type ValidChampionsInput struct {
	RowCategory    string `json:"row_category" jsonschema:"category name of the row"`
	ColumnCategory string `json:"column_category" jsonschema:"category name of the column"`
}

type ListCategoriesInput struct{}

type ListChampionsInput struct{}

type CellOutput struct {
	RowCategory      string   `json:"row_category"`
	ColumnCategory   string   `json:"column_category"`
	GuessedChampion  string   `json:"guessed_champion,omitempty"`
	IsCorrect        *bool    `json:"is_correct,omitempty"`
	CorrectChampions []string `json:"correct_champions,omitempty"`
}

type GameOutput struct {
	ID               string         `json:"id"`
	Rows             []string       `json:"rows"`
	Columns          []string       `json:"columns"`
	Cells            [][]CellOutput `json:"cells"`
	GuessesRemaining int32          `json:"guesses_remaining"`
	Score            int32          `json:"score"`
	IsGameOver       bool           `json:"is_game_over"`
	Difficulty       float64        `json:"difficulty"`
	Outcome          string         `json:"outcome"`
}

type GuessOutput struct {
	Champion  string     `json:"champion"`
	IsCorrect bool       `json:"is_correct"`
	Game      GameOutput `json:"game"`
}

type DailyOutput struct {
	Date           string   `json:"date"`
	Rows           []string `json:"rows"`
	Columns        []string `json:"columns"`
	SolutionCounts [][]int  `json:"solution_counts"`
	Difficulty     float64  `json:"difficulty"`
}

type VerifyOutput struct {
	Champion  string `json:"champion"`
	IsCorrect bool   `json:"is_correct"`
}

type ChampionsOutput struct {
	Champions []string `json:"champions"`
}

type CategoryOutput struct {
	Name    string `json:"name"`
	Matches int    `json:"matches"`
}

type CategoryTypeOutput struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Categories  []CategoryOutput `json:"categories"`
}

type CategoriesOutput struct {
	Version string               `json:"version"`
	Types   []CategoryTypeOutput `json:"types"`
}

func (s *Server) registerTools() {
	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "create_game",
		Description: "Start a new 3x3 champion grid game",
	}, s.handleCreateGame)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_game",
		Description: "Show the state of a game",
	}, s.handleGetGame)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "submit_guess",
		Description: "Guess a champion for one cell of a game",
	}, s.handleSubmitGuess)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_daily",
		Description: "Show the daily challenge categories",
	}, s.handleGetDaily)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "verify_daily",
		Description: "Check a champion against one cell of the daily challenge",
	}, s.handleVerifyDaily)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "valid_champions",
		Description: "List every champion matching both a row and a column category",
	}, s.handleValidChampions)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_categories",
		Description: "List category types and categories with match counts",
	}, s.handleListCategories)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_champions",
		Description: "List every champion name",
	}, s.handleListChampions)
}

func (s *Server) handleCreateGame(ctx context.Context, _ *sdk.CallToolRequest, input CreateGameInput) (*sdk.CallToolResult, GameOutput, error) {
	out, err := s.games.CreateGame(ctx, &game.CreateGameInput{Difficulty: input.Difficulty})
	if err != nil {
		return nil, GameOutput{}, toolError(err)
	}
	return nil, gameOutput(out.Game), nil
}

func (s *Server) handleGetGame(ctx context.Context, _ *sdk.CallToolRequest, input GetGameInput) (*sdk.CallToolResult, GameOutput, error) {
	out, err := s.games.GetGame(ctx, &game.GetGameInput{GameID: input.GameID})
	if err != nil {
		return nil, GameOutput{}, toolError(err)
	}
	return nil, gameOutput(out.Game), nil
}

func (s *Server) handleSubmitGuess(ctx context.Context, _ *sdk.CallToolRequest, input SubmitGuessInput) (*sdk.CallToolResult, GuessOutput, error) {
	out, err := s.games.SubmitGuess(ctx, &game.SubmitGuessInput{
		GameID:   input.GameID,
		Row:      input.Row,
		Col:      input.Col,
		Champion: input.Champion,
	})
	if err != nil {
		return nil, GuessOutput{}, toolError(err)
	}
	return nil, GuessOutput{
		Champion:  out.Champion,
		IsCorrect: out.IsCorrect,
		Game:      gameOutput(out.Game),
	}, nil
}

func (s *Server) handleGetDaily(ctx context.Context, _ *sdk.CallToolRequest, input GetDailyInput) (*sdk.CallToolResult, DailyOutput, error) {
	out, err := s.games.GetDaily(ctx, &game.GetDailyInput{Date: input.Date})
	if err != nil {
		return nil, DailyOutput{}, toolError(err)
	}

	d := out.Challenge
	counts := make([][]int, entities.GridSize)
	for r := range d.Solutions {
		counts[r] = make([]int, entities.GridSize)
		for c := range d.Solutions[r] {
			counts[r][c] = len(d.Solutions[r][c])
		}
	}
	return nil, DailyOutput{
		Date:           d.Date,
		Rows:           d.Rows,
		Columns:        d.Columns,
		SolutionCounts: counts,
		Difficulty:     d.Difficulty,
	}, nil
}

func (s *Server) handleVerifyDaily(ctx context.Context, _ *sdk.CallToolRequest, input VerifyDailyInput) (*sdk.CallToolResult, VerifyOutput, error) {
	out, err := s.games.VerifyDaily(ctx, &game.VerifyDailyInput{
		Date:     input.Date,
		Row:      input.Row,
		Col:      input.Col,
		Champion: input.Champion,
	})
	if err != nil {
		return nil, VerifyOutput{}, toolError(err)
	}
	return nil, VerifyOutput{Champion: out.Champion, IsCorrect: out.IsCorrect}, nil
}

func (s *Server) handleValidChampions(ctx context.Context, _ *sdk.CallToolRequest, input ValidChampionsInput) (*sdk.CallToolResult, ChampionsOutput, error) {
	out, err := s.games.ValidChampions(ctx, &game.ValidChampionsInput{
		RowCategory:    input.RowCategory,
		ColumnCategory: input.ColumnCategory,
	})
	if err != nil {
		return nil, ChampionsOutput{}, toolError(err)
	}
	return nil, ChampionsOutput{Champions: out.Champions}, nil
}

func (s *Server) handleListCategories(ctx context.Context, _ *sdk.CallToolRequest, _ ListCategoriesInput) (*sdk.CallToolResult, CategoriesOutput, error) {
	out, err := s.games.ListCategories(ctx, &game.ListCategoriesInput{})
	if err != nil {
		return nil, CategoriesOutput{}, toolError(err)
	}

	result := CategoriesOutput{
		Version: out.Version,
		Types:   make([]CategoryTypeOutput, 0, len(out.Types)),
	}
	for _, t := range out.Types {
		typeOut := CategoryTypeOutput{
			ID:          t.ID,
			Name:        t.Name,
			Description: t.Description,
			Categories:  make([]CategoryOutput, 0, len(t.Categories)),
		}
		for _, c := range t.Categories {
			typeOut.Categories = append(typeOut.Categories, CategoryOutput{Name: c.Name, Matches: c.Matches})
		}
		result.Types = append(result.Types, typeOut)
	}
	return nil, result, nil
}

func (s *Server) handleListChampions(ctx context.Context, _ *sdk.CallToolRequest, _ ListChampionsInput) (*sdk.CallToolResult, ChampionsOutput, error) {
	out, err := s.games.ListChampions(ctx, &game.ListChampionsInput{})
	if err != nil {
		return nil, ChampionsOutput{}, toolError(err)
	}
	return nil, ChampionsOutput{Champions: out.Champions}, nil
}

// gameOutput renders a game; a cell's solutions show once it is guessed or
// the game is over
func gameOutput(g *entities.Game) GameOutput {
	out := GameOutput{
		ID:               g.ID,
		Rows:             rowNames(g),
		Columns:          columnNames(g),
		Cells:            make([][]CellOutput, entities.GridSize),
		GuessesRemaining: g.GuessesRemaining,
		Score:            g.Score,
		IsGameOver:       g.IsGameOver,
		Difficulty:       g.Difficulty,
		Outcome:          g.Outcome,
	}
	for r := range g.Grid.Cells {
		out.Cells[r] = make([]CellOutput, entities.GridSize)
		for c := range g.Grid.Cells[r] {
			cell := &g.Grid.Cells[r][c]
			cellOut := CellOutput{
				RowCategory:    cell.RowCategory,
				ColumnCategory: cell.ColumnCategory,
				IsCorrect:      cell.IsCorrect,
			}
			if cell.GuessedChampion != nil {
				cellOut.GuessedChampion = *cell.GuessedChampion
			}
			if cell.Guessed() || g.IsGameOver {
				cellOut.CorrectChampions = cell.CorrectChampions
			}
			out.Cells[r][c] = cellOut
		}
	}
	return out
}

// rowNames falls back to the grid when the game carries no axis headers
func rowNames(g *entities.Game) []string {
	if len(g.Categories.YAxis) > 0 {
		return g.RowCategories()
	}
	rows := make([]string, entities.GridSize)
	for r := range g.Grid.Cells {
		rows[r] = g.Grid.Cells[r][0].RowCategory
	}
	return rows
}

func columnNames(g *entities.Game) []string {
	if len(g.Categories.XAxis) > 0 {
		return g.ColumnCategories()
	}
	cols := make([]string, entities.GridSize)
	for c := range g.Grid.Cells[0] {
		cols[c] = g.Grid.Cells[0][c].ColumnCategory
	}
	return cols
}

// toolError folds a name suggestion into the message the model sees
func toolError(err error) error {
	if suggestion, ok := errors.GetMeta(err)["suggestion"].(string); ok {
		return fmt.Errorf("%s (did you mean %q?)", errors.GetMessage(err), suggestion)
	}
	return err
}
