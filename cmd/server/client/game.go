package client

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"

	gridv1alpha1 "github.com/KirkDiggler/champion-grid/internal/handlers/grid/v1alpha1"
)

var difficulty float64

var createGameCmd = &cobra.Command{
	Use:   "create-game",
	Short: "Start a new game",
	Long: `Start a new game and print its board. Examples:

  create-game
  create-game --difficulty 0.8`,
	Args: cobra.NoArgs,
	RunE: createGame,
}

var getGameCmd = &cobra.Command{
	Use:   "get-game [game-id]",
	Short: "Show a game",
	Args:  cobra.ExactArgs(1),
	RunE:  getGame,
}

var guessCmd = &cobra.Command{
	Use:   "guess [game-id] [row] [col] [champion]",
	Short: "Guess a champion for one cell",
	Long: `Guess a champion for the cell at row, col (0-2). Examples:

  guess game_abc 0 2 Ahri
  guess game_abc 1 1 "Miss Fortune"`,
	Args: cobra.ExactArgs(4),
	RunE: guess,
}

func init() {
	createGameCmd.Flags().Float64Var(&difficulty, "difficulty", -1, "Target difficulty from 0 to 1 (server default when unset)")
	previewCmd.Flags().Float64Var(&difficulty, "difficulty", -1, "Target difficulty from 0 to 1 (server default when unset)")
}

// difficultyFlag returns nil when --difficulty was not given
func difficultyFlag(cmd *cobra.Command) *float64 {
	if !cmd.Flags().Changed("difficulty") {
		return nil
	}
	d := difficulty
	return &d
}

func createGame(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createGridClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.CreateGame(ctx, gridv1alpha1.NewCreateGameRequest(difficultyFlag(cmd)))
	if err != nil {
		return callError("create game", err)
	}
	return printGameResponse(cmd, resp)
}

func getGame(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createGridClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.GetGame(ctx, gridv1alpha1.NewGetGameRequest(args[0]))
	if err != nil {
		return callError("get game", err)
	}
	return printGameResponse(cmd, resp)
}

func guess(cmd *cobra.Command, args []string) error {
	row, col, err := parseCell(args[1], args[2])
	if err != nil {
		return err
	}

	client, cleanup, err := createGridClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.SubmitGuess(ctx, gridv1alpha1.NewSubmitGuessRequest(args[0], row, col, args[3]))
	if err != nil {
		return callError("submit guess", err)
	}
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), resp)
	}

	m := resp.AsMap()
	verdict := "wrong"
	if correct, _ := m["is_correct"].(bool); correct {
		verdict = "correct"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s is %s\n\n", str(m, "champion"), verdict)
	game, _ := m["game"].(map[string]interface{})
	printBoard(cmd.OutOrStdout(), game)
	return nil
}

func printGameResponse(cmd *cobra.Command, resp *structpb.Struct) error {
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), resp)
	}
	game, _ := resp.AsMap()["game"].(map[string]interface{})
	printBoard(cmd.OutOrStdout(), game)
	return nil
}

func parseCell(rowArg, colArg string) (int, int, error) {
	row, err := strconv.Atoi(rowArg)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid row %q: %w", rowArg, err)
	}
	col, err := strconv.Atoi(colArg)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid col %q: %w", colArg, err)
	}
	return row, col, nil
}
