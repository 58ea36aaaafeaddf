package mcp

import (
	"github.com/elyanlabs/grazer/api"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server represents the MCP server for grazer
type Server struct {
	server *server.MCPServer
}

// NewServer creates a new MCP server exposing client
func NewServer(client *api.Client) *Server {
	s := server.NewMCPServer("grazer", api.Version)

	registerTools(s, client)

	return &Server{
		server: s,
	}
}

// Run serves over stdio until stdin closes
func (s *Server) Run() error {
	return server.ServeStdio(s.server)
}

func registerTools(s *server.MCPServer, client *api.Client) {
	s.AddTools(InitTools(client)...)
}

func newServerTool(tool mcp.Tool, handler server.ToolHandlerFunc) server.ServerTool {
	return server.ServerTool{
		Tool:    tool,
		Handler: handler,
	}
}
