package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/champion-grid/internal/engine"
)

var (
	generateDifficulty float64
	generateCount      int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate grids locally and print their solutions",
	Long: `Generate grids from the dataset without a server. Examples:

  generate --champions data/champions.yaml
  generate --difficulty 0.8 --count 5`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	addDataFlags(generateCmd)
	generateCmd.Flags().Float64Var(&generateDifficulty, "difficulty", 0.5, "Target difficulty from 0 to 1")
	generateCmd.Flags().IntVar(&generateCount, "count", 1, "Number of grids to generate")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	if generateCount < 1 {
		return fmt.Errorf("count must be positive, got %d", generateCount)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	idx, err := buildIndex(cfg)
	if err != nil {
		return err
	}
	gen, err := buildGenerator(cfg, idx, nil)
	if err != nil {
		return err
	}

	target := engine.ClampDifficulty(generateDifficulty)
	for i := 0; i < generateCount; i++ {
		result, err := gen.Generate(cmd.Context(), target)
		if err != nil {
			return err
		}
		if generateCount > 1 {
			fmt.Fprintf(cmd.OutOrStdout(), "Grid %d\n", i+1)
		}
		printResult(cmd.OutOrStdout(), result)
	}
	return nil
}

func printResult(w io.Writer, r *engine.Result) {
	fmt.Fprintf(w, "Outcome %s after %d attempts  (difficulty %.3f, target %.2f)\n",
		r.Outcome, r.Attempts, r.Difficulty, r.Target)
	fmt.Fprintf(w, "Rows:    %s\n", strings.Join(r.Rows, " | "))
	fmt.Fprintf(w, "Columns: %s\n\n", strings.Join(r.Columns, " | "))
	for row := range r.Solutions {
		for col := range r.Solutions[row] {
			fmt.Fprintf(w, "  %s x %s (%d): %s\n",
				r.Rows[row], r.Columns[col], len(r.Solutions[row][col]),
				strings.Join(r.Solutions[row][col], ", "))
		}
	}
	fmt.Fprintln(w)
}
