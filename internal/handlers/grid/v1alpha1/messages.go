package v1alpha1

import (
	"math"
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/champion-grid/internal/engine"
	"github.com/KirkDiggler/champion-grid/internal/entities"
	"github.com/KirkDiggler/champion-grid/internal/errors"
	"github.com/KirkDiggler/champion-grid/internal/orchestrators/game"
)

// Message field names
const (
	FieldGameID         = "game_id"
	FieldDifficulty     = "difficulty"
	FieldRow            = "row"
	FieldCol            = "col"
	FieldChampion       = "champion"
	FieldDate           = "date"
	FieldRowCategory    = "row_category"
	FieldColumnCategory = "column_category"
)

// request wraps an incoming Struct with typed accessors
type request struct {
	fields map[string]*structpb.Value
}

func newRequest(in *structpb.Struct) request {
	return request{fields: in.GetFields()}
}

func (r request) getString(key string) (string, error) {
	v, ok := r.fields[key]
	if !ok {
		return "", nil
	}
	if _, isNull := v.GetKind().(*structpb.Value_NullValue); isNull {
		return "", nil
	}
	s, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return "", errors.InvalidArgumentf("%s must be a string", key).WithMeta("field", key)
	}
	return s.StringValue, nil
}

func (r request) getNumber(key string) (float64, bool, error) {
	v, ok := r.fields[key]
	if !ok {
		return 0, false, nil
	}
	if _, isNull := v.GetKind().(*structpb.Value_NullValue); isNull {
		return 0, false, nil
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, false, errors.InvalidArgumentf("%s must be a number", key).WithMeta("field", key)
	}
	return n.NumberValue, true, nil
}

// getInt reads a required whole number
func (r request) getInt(key string) (int, error) {
	n, ok, err := r.getNumber(key)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, errors.InvalidArgumentf("%s is required", key).WithMeta("field", key)
	}
	if n != math.Trunc(n) || n < math.MinInt32 || n > math.MaxInt32 {
		return 0, errors.InvalidArgumentf("%s must be a whole number", key).WithMeta("field", key)
	}
	return int(n), nil
}

func (r request) getOptionalFloat(key string) (*float64, error) {
	n, ok, err := r.getNumber(key)
	if err != nil || !ok {
		return nil, err
	}
	if math.IsNaN(n) {
		return nil, errors.InvalidArgumentf("%s must be a number", key).WithMeta("field", key)
	}
	return &n, nil
}

// cell reads the row, col and champion of a guess
func (r request) cell() (row, col int, champion string, err error) {
	if row, err = r.getInt(FieldRow); err != nil {
		return 0, 0, "", err
	}
	if col, err = r.getInt(FieldCol); err != nil {
		return 0, 0, "", err
	}
	if champion, err = r.getString(FieldChampion); err != nil {
		return 0, 0, "", err
	}
	return row, col, champion, nil
}

// NewCreateGameRequest builds a CreateGame request. A nil difficulty uses
// the server default.
func NewCreateGameRequest(difficulty *float64) *structpb.Struct {
	return difficultyRequest(difficulty)
}

// NewPreviewGridRequest builds a PreviewGrid request
func NewPreviewGridRequest(difficulty *float64) *structpb.Struct {
	return difficultyRequest(difficulty)
}

func difficultyRequest(difficulty *float64) *structpb.Struct {
	fields := map[string]*structpb.Value{}
	if difficulty != nil {
		fields[FieldDifficulty] = structpb.NewNumberValue(*difficulty)
	}
	return &structpb.Struct{Fields: fields}
}

// NewGetGameRequest builds a GetGame request
func NewGetGameRequest(gameID string) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldGameID: structpb.NewStringValue(gameID),
	}}
}

// NewSubmitGuessRequest builds a SubmitGuess request
func NewSubmitGuessRequest(gameID string, row, col int, champion string) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldGameID:   structpb.NewStringValue(gameID),
		FieldRow:      structpb.NewNumberValue(float64(row)),
		FieldCol:      structpb.NewNumberValue(float64(col)),
		FieldChampion: structpb.NewStringValue(champion),
	}}
}

// NewGetDailyRequest builds a GetDaily request. An empty date means today.
func NewGetDailyRequest(date string) *structpb.Struct {
	fields := map[string]*structpb.Value{}
	if date != "" {
		fields[FieldDate] = structpb.NewStringValue(date)
	}
	return &structpb.Struct{Fields: fields}
}

// NewVerifyDailyRequest builds a VerifyDaily request
func NewVerifyDailyRequest(date string, row, col int, champion string) *structpb.Struct {
	req := NewGetDailyRequest(date)
	req.Fields[FieldRow] = structpb.NewNumberValue(float64(row))
	req.Fields[FieldCol] = structpb.NewNumberValue(float64(col))
	req.Fields[FieldChampion] = structpb.NewStringValue(champion)
	return req
}

// NewValidChampionsRequest builds a ValidChampions request
func NewValidChampionsRequest(rowCategory, columnCategory string) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldRowCategory:    structpb.NewStringValue(rowCategory),
		FieldColumnCategory: structpb.NewStringValue(columnCategory),
	}}
}

func stringList(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func timestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func axisList(axis []entities.AxisCategory) []interface{} {
	out := make([]interface{}, len(axis))
	for i, a := range axis {
		out[i] = map[string]interface{}{
			"name":   a.Name,
			"type":   a.Type,
			"values": stringList(a.Values),
		}
	}
	return out
}

// gameMap renders a game. Solutions of a cell stay hidden until the cell is
// guessed or the game is over.
func gameMap(g *entities.Game) map[string]interface{} {
	rows := make([]interface{}, entities.GridSize)
	for r := range g.Grid.Cells {
		cells := make([]interface{}, entities.GridSize)
		for c := range g.Grid.Cells[r] {
			cell := &g.Grid.Cells[r][c]
			m := map[string]interface{}{
				"row_category":    cell.RowCategory,
				"column_category": cell.ColumnCategory,
			}
			if cell.GuessedChampion != nil {
				m["guessed_champion"] = *cell.GuessedChampion
			}
			if cell.IsCorrect != nil {
				m["is_correct"] = *cell.IsCorrect
			}
			if cell.Guessed() || g.IsGameOver {
				m["correct_champions"] = stringList(cell.CorrectChampions)
			}
			cells[c] = m
		}
		rows[r] = cells
	}

	return map[string]interface{}{
		"id":                g.ID,
		"grid":              rows,
		"categories":        map[string]interface{}{"x_axis": axisList(g.Categories.XAxis), "y_axis": axisList(g.Categories.YAxis)},
		"guesses_remaining": g.GuessesRemaining,
		"score":             g.Score,
		"is_game_over":      g.IsGameOver,
		"difficulty":        g.Difficulty,
		"target_difficulty": g.TargetDifficulty,
		"outcome":           g.Outcome,
		"created_at":        timestamp(g.CreatedAt),
		"expires_at":        timestamp(g.ExpiresAt),
	}
}

// challengeMap renders a daily challenge with solution counts only
func challengeMap(d *entities.DailyChallenge) map[string]interface{} {
	counts := make([]interface{}, entities.GridSize)
	for r := range d.Solutions {
		row := make([]interface{}, entities.GridSize)
		for c := range d.Solutions[r] {
			row[c] = len(d.Solutions[r][c])
		}
		counts[r] = row
	}

	return map[string]interface{}{
		"date":            d.Date,
		"rows":            stringList(d.Rows),
		"columns":         stringList(d.Columns),
		"solution_counts": counts,
		"difficulty":      d.Difficulty,
		"outcome":         d.Outcome,
		"created_at":      timestamp(d.CreatedAt),
	}
}

func resultMap(r *engine.Result) map[string]interface{} {
	solutions := make([]interface{}, entities.GridSize)
	for row := range r.Solutions {
		cells := make([]interface{}, entities.GridSize)
		for col := range r.Solutions[row] {
			cells[col] = stringList(r.Solutions[row][col])
		}
		solutions[row] = cells
	}

	return map[string]interface{}{
		"rows":       stringList(r.Rows),
		"columns":    stringList(r.Columns),
		"solutions":  solutions,
		"difficulty": r.Difficulty,
		"target":     r.Target,
		"outcome":    string(r.Outcome),
		"attempts":   r.Attempts,
	}
}

func categoriesMap(out *game.ListCategoriesOutput) map[string]interface{} {
	types := make([]interface{}, len(out.Types))
	for i, t := range out.Types {
		categories := make([]interface{}, len(t.Categories))
		for j, c := range t.Categories {
			categories[j] = map[string]interface{}{
				"name":    c.Name,
				"matches": c.Matches,
			}
		}
		types[i] = map[string]interface{}{
			"id":          t.ID,
			"name":        t.Name,
			"description": t.Description,
			"categories":  categories,
		}
	}

	return map[string]interface{}{
		"version": out.Version,
		"types":   types,
	}
}

func toStruct(m map[string]interface{}) (*structpb.Struct, error) {
	s, err := structpb.NewStruct(m)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to encode response")
	}
	return s, nil
}
