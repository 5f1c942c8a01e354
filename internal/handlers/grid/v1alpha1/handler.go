package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/champion-grid/internal/errors"
	"github.com/KirkDiggler/champion-grid/internal/orchestrators/game"
)

// HandlerConfig holds dependencies for the grid handler
type HandlerConfig struct {
	GameService game.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.GameService == nil {
		return errors.InvalidArgument("game service is required")
	}
	return nil
}

// Handler implements GridServiceServer
type Handler struct {
	gameService game.Service
}

// NewHandler creates a new grid handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		gameService: cfg.GameService,
	}, nil
}

// Ensure Handler implements GridServiceServer
var _ GridServiceServer = (*Handler)(nil)

// CreateGame starts a new game
func (h *Handler) CreateGame(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	difficulty, err := newRequest(req).getOptionalFloat(FieldDifficulty)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.gameService.CreateGame(ctx, &game.CreateGameInput{Difficulty: difficulty})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]interface{}{"game": gameMap(out.Game)})
}

// GetGame returns a stored game
func (h *Handler) GetGame(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	gameID, err := newRequest(req).getString(FieldGameID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.gameService.GetGame(ctx, &game.GetGameInput{GameID: gameID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]interface{}{"game": gameMap(out.Game)})
}

// SubmitGuess records a guess for one cell
func (h *Handler) SubmitGuess(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	gameID, err := r.getString(FieldGameID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	row, col, champion, err := r.cell()
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.gameService.SubmitGuess(ctx, &game.SubmitGuessInput{
		GameID:   gameID,
		Row:      row,
		Col:      col,
		Champion: champion,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]interface{}{
		"game":       gameMap(out.Game),
		"champion":   out.Champion,
		"is_correct": out.IsCorrect,
	})
}

// GetDaily returns the daily challenge
func (h *Handler) GetDaily(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	date, err := newRequest(req).getString(FieldDate)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.gameService.GetDaily(ctx, &game.GetDailyInput{Date: date})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]interface{}{"challenge": challengeMap(out.Challenge)})
}

// VerifyDaily checks a guess against the daily challenge
func (h *Handler) VerifyDaily(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	date, err := r.getString(FieldDate)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	row, col, champion, err := r.cell()
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.gameService.VerifyDaily(ctx, &game.VerifyDailyInput{
		Date:     date,
		Row:      row,
		Col:      col,
		Champion: champion,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]interface{}{
		"champion":   out.Champion,
		"is_correct": out.IsCorrect,
	})
}

// PreviewGrid generates a grid with its solutions without starting a game
func (h *Handler) PreviewGrid(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	difficulty, err := newRequest(req).getOptionalFloat(FieldDifficulty)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.gameService.PreviewGrid(ctx, &game.PreviewGridInput{Difficulty: difficulty})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]interface{}{"result": resultMap(out.Result)})
}

// ValidChampions lists the answers of a category pair
func (h *Handler) ValidChampions(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	rowCategory, err := r.getString(FieldRowCategory)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	columnCategory, err := r.getString(FieldColumnCategory)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.gameService.ValidChampions(ctx, &game.ValidChampionsInput{
		RowCategory:    rowCategory,
		ColumnCategory: columnCategory,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]interface{}{"champions": stringList(out.Champions)})
}

// ListCategories returns the category catalog with match counts
func (h *Handler) ListCategories(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.gameService.ListCategories(ctx, &game.ListCategoriesInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(categoriesMap(out))
}

// ListChampions returns every champion name
func (h *Handler) ListChampions(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.gameService.ListChampions(ctx, &game.ListChampionsInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]interface{}{"champions": stringList(out.Champions)})
}

func respond(m map[string]interface{}) (*structpb.Struct, error) {
	s, err := toStruct(m)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return s, nil
}
