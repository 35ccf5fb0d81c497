package mcpserver

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"wheelx-mcp/pkg/client"
)

const serverName = "wheelx"

// Server exposes the WheelX SDK as MCP tools and resources
type Server struct {
	mcp *server.MCPServer
	api *client.WheelXClient
}

// New builds an MCP server wrapping the given WheelX client
func New(api *client.WheelXClient, version string) *Server {
	s := &Server{
		mcp: server.NewMCPServer(
			serverName,
			version,
			server.WithToolCapabilities(false),
			server.WithResourceCapabilities(false, false),
			server.WithInstructions("WheelX DeFi swap and bridge service for cross-chain token transfers"),
		),
		api: api,
	}

	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio runs the server over stdin/stdout until the host closes
// the stream.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// toolHandler is a tool body returning a JSON-serializable result.
type toolHandler func(ctx context.Context, req mcp.CallToolRequest) (any, error)

// wrap converts a tool body into an MCP handler with the uniform
// error envelope: any failure becomes an {"error": ...} result so the
// protocol host never sees a raised error from a tool.
func wrap(h toolHandler) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		out, err := h(ctx, req)
		if err != nil {
			return errorResult(err), nil
		}
		return jsonResult(out), nil
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult(err)
	}
	return mcp.NewToolResultText(string(b))
}

func errorResult(err error) *mcp.CallToolResult {
	b, _ := json.Marshal(map[string]string{"error": err.Error()})
	return mcp.NewToolResultText(string(b))
}
