// Package client provides commands that call the champion grid gRPC service
package client

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	gridv1alpha1 "github.com/KirkDiggler/champion-grid/internal/handlers/grid/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration

	// Output flags
	jsonOutput bool
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the champion grid service",
	Long:  `Client commands play and inspect games by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print raw JSON responses")

	// Game commands
	ClientCmd.AddCommand(createGameCmd)
	ClientCmd.AddCommand(getGameCmd)
	ClientCmd.AddCommand(guessCmd)

	// Daily challenge commands
	ClientCmd.AddCommand(dailyCmd)
	ClientCmd.AddCommand(verifyDailyCmd)

	// Catalog commands
	ClientCmd.AddCommand(listCategoriesCmd)
	ClientCmd.AddCommand(listChampionsCmd)
	ClientCmd.AddCommand(validChampionsCmd)
	ClientCmd.AddCommand(previewCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createGridClient creates a grid service client
func createGridClient() (gridv1alpha1.GridServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return gridv1alpha1.NewGridServiceClient(conn), cleanup, nil
}
