// Package main is the entry point for the champion grid server and CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/champion-grid/cmd/server/client"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

var rootCmd = &cobra.Command{
	Use:     "champion-grid",
	Short:   "Champion grid puzzle server",
	Long:    `Champion grid builds 3x3 champion trivia puzzles and serves them over gRPC and MCP.`,
	Version: version,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
