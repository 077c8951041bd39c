// Package mcp exposes the node facade as MCP tools so agent tooling can
// read boards, write notes, and send DMs.
package mcp

import (
	"context"
	"fmt"
	"os"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/block-xaero/cyan/internal/node"
)

// Server wraps an open node and the MCP tool registry.
type Server struct {
	node   *node.Node
	server *mcp.Server
}

// NewServer opens the node at dataDir and registers the tool set.
func NewServer(dataDir, version string) (*Server, error) {
	n, err := node.Open(dataDir)
	if err != nil {
		return nil, err
	}
	logf("node opened: %s", dataDir)

	server := mcp.NewServer(&mcp.Implementation{Name: "cyan", Version: version}, nil)
	RegisterTools(server, &ToolContext{Node: n})

	return &Server{node: n, server: server}, nil
}

// Run serves MCP over stdio until the context ends or stdin closes.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// Close releases the node.
func (s *Server) Close() error {
	err := s.node.Close()
	logf("server closed")
	return err
}

// logf writes to stderr; stdout belongs to the protocol.
func logf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[cyan-mcp] %s\n", fmt.Sprintf(format, args...))
}
