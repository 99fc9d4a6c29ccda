// ABOUTME: MCP server setup for the productivity store.
// ABOUTME: Wraps the MCP server with a storage Repository and a sentiment scorer.
package mcp

import (
	"context"
	"time"

	"github.com/harperreed/productivity/internal/models"
	"github.com/harperreed/productivity/internal/sentiment"
	"github.com/harperreed/productivity/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
)

// Server wraps the MCP server with storage access.
type Server struct {
	mcpServer *mcp.Server
	repo      storage.Repository
	scorer    sentiment.Scorer
	log       zerolog.Logger
	today     func() time.Time
}

// Option configures a Server.
type Option func(*Server)

// WithLogger routes tool diagnostics to l.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Server) {
		s.log = l.With().Str("component", "mcp").Logger()
	}
}

// NewServer creates a new MCP server with the given storage and scorer.
func NewServer(repo storage.Repository, scorer sentiment.Scorer, opts ...Option) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "productivity",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		repo:      repo,
		scorer:    scorer,
		log:       zerolog.Nop(),
		today:     models.Today,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	s.log.Info().Msg("serving MCP over stdio")
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
