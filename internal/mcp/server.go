// Package mcp exposes the grid game as Model Context Protocol tools
package mcp

import (
	"context"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/KirkDiggler/champion-grid/internal/errors"
	"github.com/KirkDiggler/champion-grid/internal/orchestrators/game"
)

// ServerName is reported to MCP clients
const ServerName = "champion-grid"

// Config holds dependencies for the MCP server
type Config struct {
	GameService game.Service
	Version     string
}

// Validate ensures all required dependencies are present
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.GameService == nil {
		return errors.InvalidArgument("game service is required")
	}
	return nil
}

// Server serves game tools over an MCP transport
type Server struct {
	games game.Service
	mcp   *sdk.Server
}

// NewServer creates an MCP server with every game tool registered
func NewServer(cfg *Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	version := cfg.Version
	if version == "" {
		version = "dev"
	}

	s := &Server{
		games: cfg.GameService,
		mcp: sdk.NewServer(&sdk.Implementation{
			Name:    ServerName,
			Version: version,
		}, nil),
	}
	s.registerTools()
	return s, nil
}

// Run serves until the transport closes or ctx is cancelled
func (s *Server) Run(ctx context.Context, transport sdk.Transport) error {
	return s.mcp.Run(ctx, transport)
}
