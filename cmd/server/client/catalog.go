package client

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"

	gridv1alpha1 "github.com/KirkDiggler/champion-grid/internal/handlers/grid/v1alpha1"
)

var listCategoriesCmd = &cobra.Command{
	Use:   "list-categories",
	Short: "List category types and categories with match counts",
	Args:  cobra.NoArgs,
	RunE:  listCategories,
}

var listChampionsCmd = &cobra.Command{
	Use:   "list-champions",
	Short: "List every champion name",
	Args:  cobra.NoArgs,
	RunE:  listChampions,
}

var validChampionsCmd = &cobra.Command{
	Use:   "valid-champions [row-category] [column-category]",
	Short: "List the champions matching both categories",
	Long: `List the champions matching both categories. Examples:

  valid-champions Ionia Mage
  valid-champions "Shadow Isles" "Melee (< 250)"`,
	Args: cobra.ExactArgs(2),
	RunE: validChampions,
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Generate a grid with its solutions without starting a game",
	Args:  cobra.NoArgs,
	RunE:  preview,
}

func listCategories(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createGridClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.ListCategories(ctx, &structpb.Struct{})
	if err != nil {
		return callError("list categories", err)
	}
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), resp)
	}

	w := cmd.OutOrStdout()
	m := resp.AsMap()
	fmt.Fprintf(w, "Catalog %s\n", str(m, "version"))
	for _, t := range list(m, "types") {
		typ, _ := t.(map[string]interface{})
		fmt.Fprintf(w, "\n%s (%s)\n", str(typ, "name"), str(typ, "id"))
		for _, c := range list(typ, "categories") {
			category, _ := c.(map[string]interface{})
			fmt.Fprintf(w, "  %-32s %4d\n", str(category, "name"), int(num(category, "matches")))
		}
	}
	return nil
}

func listChampions(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createGridClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.ListChampions(ctx, &structpb.Struct{})
	if err != nil {
		return callError("list champions", err)
	}
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), resp)
	}

	names := strList(list(resp.AsMap(), "champions"))
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, "\n"))
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d champions\n", len(names))
	return nil
}

func validChampions(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createGridClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.ValidChampions(ctx, gridv1alpha1.NewValidChampionsRequest(args[0], args[1]))
	if err != nil {
		return callError("list valid champions", err)
	}
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), resp)
	}

	names := strList(list(resp.AsMap(), "champions"))
	fmt.Fprintf(cmd.OutOrStdout(), "%s x %s: %d champions\n", args[0], args[1], len(names))
	for _, name := range names {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
	}
	return nil
}

func preview(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createGridClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.PreviewGrid(ctx, gridv1alpha1.NewPreviewGridRequest(difficultyFlag(cmd)))
	if err != nil {
		return callError("preview grid", err)
	}
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), resp)
	}

	result, _ := resp.AsMap()["result"].(map[string]interface{})
	printSolutions(cmd.OutOrStdout(), result)
	return nil
}
