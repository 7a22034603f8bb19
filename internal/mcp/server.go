package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/avatars/internal/avatars"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes avatar rendering tools.
type Server struct {
	svc *avatars.Service
	mcp *server.MCPServer
}

// NewServer creates a new MCP server backed by svc.
func NewServer(svc *avatars.Service) *Server {
	s := &Server{svc: svc}

	s.mcp = server.NewMCPServer(
		"avatars",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(renderAvatarTool, s.handleRenderAvatar)
	s.mcp.AddTool(listCharactersTool, s.handleListCharacters)
	s.mcp.AddTool(describeCharacterTool, s.handleDescribeCharacter)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
