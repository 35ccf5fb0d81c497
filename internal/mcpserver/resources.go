package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"wheelx-mcp/pkg/chains"
)

const (
	statusURI      = "wheelx://status"
	docsURI        = "wheelx://docs/usage"
	tokensTemplate = "wheelx://chains/{chain_id}/tokens"
)

func (s *Server) registerResources() {
	s.mcp.AddResourceTemplate(mcp.NewResourceTemplate(tokensTemplate,
		"Chain tokens",
		mcp.WithTemplateDescription("Popular tokens on a specific chain"),
		mcp.WithTemplateMIMEType("application/json"),
	), s.handleChainTokens)

	s.mcp.AddResource(mcp.NewResource(statusURI,
		"Service status",
		mcp.WithResourceDescription("WheelX service status and availability"),
		mcp.WithMIMEType("application/json"),
	), s.handleServiceStatus)

	s.mcp.AddResource(mcp.NewResource(docsURI,
		"Usage guide",
		mcp.WithResourceDescription("Usage documentation for the WheelX MCP server"),
		mcp.WithMIMEType("text/markdown"),
	), s.handleUsageDocs)
}

func textContents(uri, mimeType, text string) []mcp.ResourceContents {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{URI: uri, MIMEType: mimeType, Text: text},
	}
}

func jsonContents(uri string, v any) []mcp.ResourceContents {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		b, _ = json.Marshal(map[string]string{"error": err.Error()})
	}
	return textContents(uri, "application/json", string(b))
}

// handleChainTokens serves the popular-token list for the chain id
// embedded in the resource URI. Unknown chains get an empty list.
func (s *Server) handleChainTokens(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	chainID, err := chainIDFromURI(req.Params.URI)
	if err != nil {
		return jsonContents(req.Params.URI, map[string]string{"error": err.Error()}), nil
	}

	tokens := chains.PopularTokens(chainID)
	return jsonContents(req.Params.URI, map[string]any{
		"chain_id": strconv.Itoa(chainID),
		"tokens":   tokens,
		"count":    len(tokens),
	}), nil
}

func chainIDFromURI(uri string) (int, error) {
	rest, ok := strings.CutPrefix(uri, "wheelx://chains/")
	if !ok {
		return 0, fmt.Errorf("unexpected resource URI %q", uri)
	}
	idPart, ok := strings.CutSuffix(rest, "/tokens")
	if !ok {
		return 0, fmt.Errorf("unexpected resource URI %q", uri)
	}

	chainID, err := strconv.Atoi(idPart)
	if err != nil {
		return 0, fmt.Errorf("invalid chain id %q", idPart)
	}
	return chainID, nil
}

// handleServiceStatus probes the provider and reports operational,
// degraded or unavailable. Probe failures are reported in-band, never
// raised.
func (s *Server) handleServiceStatus(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	started := time.Now()
	status := s.api.Ping(ctx)

	return jsonContents(req.Params.URI, map[string]any{
		"service":       "WheelX",
		"status":        status,
		"response_time": time.Since(started).Seconds(),
		"last_checked":  time.Now().UTC().Format(time.RFC3339),
	}), nil
}

func (s *Server) handleUsageDocs(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return textContents(req.Params.URI, "text/markdown", usageDocs), nil
}
