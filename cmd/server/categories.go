package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/champion-grid/internal/index"
)

var strictCategories bool

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Check the category catalog against the dataset",
	Long: `Report the categories no champion in the dataset satisfies, grouped by
category type. With --strict the command fails when any are found.`,
	Args: cobra.NoArgs,
	RunE: runCategories,
}

func init() {
	addDataFlags(categoriesCmd)
	categoriesCmd.Flags().BoolVar(&strictCategories, "strict", false, "Fail when a category has no matches")
}

func runCategories(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	idx, err := buildIndex(cfg)
	if err != nil {
		return err
	}

	empty := printCategoryReport(cmd.OutOrStdout(), idx)
	if strictCategories && empty > 0 {
		return fmt.Errorf("%d categories have no matching champions", empty)
	}
	return nil
}

// printCategoryReport writes the empty categories by type and returns how
// many there are
func printCategoryReport(w io.Writer, idx *index.Index) int {
	cat := idx.Catalog()
	fmt.Fprintf(w, "Catalog %s: %d categories, %d viable, %d champions\n",
		cat.Version(), len(cat.Categories()), len(idx.Viable()), idx.Total())

	emptyByType := idx.EmptyCategories()
	if len(emptyByType) == 0 {
		fmt.Fprintln(w, "Every category has at least one champion")
		return 0
	}

	typeIDs := make([]string, 0, len(emptyByType))
	for id := range emptyByType {
		typeIDs = append(typeIDs, id)
	}
	sort.Strings(typeIDs)

	total := 0
	fmt.Fprintln(w, "\nCategories without champions:")
	for _, id := range typeIDs {
		name := id
		if t, ok := cat.Type(id); ok {
			name = t.Name
		}
		fmt.Fprintf(w, "  %s\n", name)
		for _, category := range emptyByType[id] {
			fmt.Fprintf(w, "    - %s\n", category)
			total++
		}
	}
	return total
}
