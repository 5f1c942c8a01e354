package client

import (
	"fmt"

	"github.com/spf13/cobra"

	gridv1alpha1 "github.com/KirkDiggler/champion-grid/internal/handlers/grid/v1alpha1"
)

var dailyDate string

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Show the daily challenge",
	Args:  cobra.NoArgs,
	RunE:  daily,
}

var verifyDailyCmd = &cobra.Command{
	Use:   "verify-daily [row] [col] [champion]",
	Short: "Check a champion against the daily challenge",
	Long: `Check a champion against one cell of the daily challenge. Nothing is
recorded; the same cell can be checked any number of times. Examples:

  verify-daily 0 0 Ahri
  verify-daily 2 1 Garen --date 2026-03-14`,
	Args: cobra.ExactArgs(3),
	RunE: verifyDaily,
}

func init() {
	dailyCmd.Flags().StringVar(&dailyDate, "date", "", "Day as YYYY-MM-DD (defaults to today)")
	verifyDailyCmd.Flags().StringVar(&dailyDate, "date", "", "Day as YYYY-MM-DD (defaults to today)")
}

func daily(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createGridClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.GetDaily(ctx, gridv1alpha1.NewGetDailyRequest(dailyDate))
	if err != nil {
		return callError("get daily challenge", err)
	}
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), resp)
	}

	w := cmd.OutOrStdout()
	challenge, _ := resp.AsMap()["challenge"].(map[string]interface{})
	fmt.Fprintf(w, "Daily challenge %s  (difficulty %.2f)\n\n", str(challenge, "date"), num(challenge, "difficulty"))

	fmt.Fprint(w, pad(""))
	for _, c := range strList(list(challenge, "columns")) {
		fmt.Fprint(w, pad(c))
	}
	fmt.Fprintln(w)

	counts := list(challenge, "solution_counts")
	for r, row := range strList(list(challenge, "rows")) {
		fmt.Fprint(w, pad(row))
		if r < len(counts) {
			cells, _ := counts[r].([]interface{})
			for _, n := range cells {
				count, _ := n.(float64)
				fmt.Fprint(w, pad(fmt.Sprintf("%d answers", int(count))))
			}
		}
		fmt.Fprintln(w)
	}
	return nil
}

func verifyDaily(cmd *cobra.Command, args []string) error {
	row, col, err := parseCell(args[0], args[1])
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

	resp, err := client.VerifyDaily(ctx, gridv1alpha1.NewVerifyDailyRequest(dailyDate, row, col, args[2]))
	if err != nil {
		return callError("verify daily guess", err)
	}
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), resp)
	}

	m := resp.AsMap()
	verdict := "does not fit"
	if correct, _ := m["is_correct"].(bool); correct {
		verdict = "fits"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s cell (%d, %d)\n", str(m, "champion"), verdict, row, col)
	return nil
}
