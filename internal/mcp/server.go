// Package mcp exposes the claim assistant to AI agents over the Model
// Context Protocol.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/claimpilot/internal/claims"
	"github.com/ziadkadry99/claimpilot/internal/engine"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes claim tools.
type Server struct {
	engine *engine.Engine
	store  *claims.Store
	mcp    *server.MCPServer
}

// NewServer creates a new MCP server with the given dependencies.
func NewServer(eng *engine.Engine, store *claims.Store) *Server {
	s := &Server{
		engine: eng,
		store:  store,
	}

	s.mcp = server.NewMCPServer(
		"claimpilot",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(chatTool, s.handleChat)
	s.mcp.AddTool(getClaimTool, s.handleGetClaim)
	s.mcp.AddTool(listClaimsTool, s.handleListClaims)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
