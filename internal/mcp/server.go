// Package mcp exposes the search pipeline as an MCP server over stdio.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/reonyanarticle/scryfall-mcp/pkg/pipeline"
)

// Version is the MCP server version.
const Version = "0.1.0"

// Server is the MCP server wrapping the search pipeline.
type Server struct {
	pipeline *pipeline.Pipeline
	server   *mcp.Server
}

// NewServer creates an MCP server exposing the pipeline's operations as
// tools.
func NewServer(p *pipeline.Pipeline) *Server {
	impl := &mcp.Implementation{
		Name:    "scryfall-mcp",
		Version: Version,
	}

	s := &Server{
		pipeline: p,
		server:   mcp.NewServer(impl, nil),
	}

	s.registerTools()

	return s
}

// Run starts the MCP server over stdio. It blocks until the context is
// cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}
