package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/champion-grid/internal/mcp"
	"github.com/KirkDiggler/champion-grid/internal/observe"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve game tools over MCP on stdio",
	Long: `Serve the game as Model Context Protocol tools on stdin/stdout. Logs go
to stderr so they never corrupt the protocol stream.`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func init() {
	addDataFlags(mcpCmd)
	mcpCmd.Flags().StringSliceVar(&redisAddrs, "redis", nil, "Redis addresses; none keeps games in memory")
}

func runMCP(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gameService, closeStore, err := buildGameService(cfg, newEventBus(), observe.DefaultMetrics())
	if err != nil {
		return err
	}
	defer closeStore()

	server, err := mcp.NewServer(&mcp.Config{
		GameService: gameService,
		Version:     version,
	})
	if err != nil {
		return err
	}

	return server.Run(ctx, &sdk.StdioTransport{})
}
