package mcpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/require"

	"wheelx-mcp/pkg/client"
)

func newTestServer(baseURL string) *Server {
	return New(client.New(baseURL), "test")
}

func callTool(t *testing.T, s *Server, h toolHandler, args map[string]any) map[string]any {
	t.Helper()

	req := mcp.CallToolRequest{}
	req.Params.Arguments = args

	res, err := wrap(h)(context.Background(), req)
	require.NoError(t, err, "tool handlers must never raise")
	require.Len(t, res.Content, 1)

	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)

	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(text.Text), &out))
	return out
}

func quoteArgsFixture() map[string]any {
	return map[string]any{
		"from_chain":   float64(1),
		"to_chain":     float64(1),
		"from_token":   "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48",
		"to_token":     "0xdAC17F958D2ee523a2206206994597C13D831ec7",
		"from_address": "0x742d35Cc6634C0532925a3b8Dc9F6A7c5D3a7C6a",
		"to_address":   "0x742d35Cc6634C0532925a3b8Dc9F6A7c5D3a7C6a",
		"amount":       float64(1000000),
	}
}

func TestGetQuoteTool(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"request_id": "req-1",
			"amount_out": "0.99",
			"fee": "0.01",
			"min_receive": "0.98",
			"slippage": 50,
			"tx": {"to": "0xrouter", "value": 0, "data": "0x"}
		}`))
	}))
	defer srv.Close()

	s := newTestServer(srv.URL)
	out := callTool(t, s, s.handleGetQuote, quoteArgsFixture())

	require.Equal(t, "req-1", out["request_id"])
	require.Equal(t, "0.99", out["amount_out"])
	require.Equal(t, false, out["approve_required"])
	require.Nil(t, out["approve_details"])
}

func TestGetQuoteToolRejectsBadAmount(t *testing.T) {
	// Negative or fractional amounts must be rejected before the request is
	// built; a bare uint64 cast would wrap -1000000 into a huge amount.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must not reach the provider")
	}))
	defer srv.Close()

	s := newTestServer(srv.URL)

	args := quoteArgsFixture()
	args["amount"] = float64(-1000000)
	out := callTool(t, s, s.handleGetQuote, args)
	require.Contains(t, out["error"], "amount")
	require.Contains(t, out["error"], "negative")

	args["amount"] = 1.5
	out = callTool(t, s, s.handleGetQuote, args)
	require.Contains(t, out["error"], "amount")

	out = callTool(t, s, s.handleCompareQuotes, args)
	require.Contains(t, out["error"], "amount")
}

func TestToolErrorEnvelope(t *testing.T) {
	// A dead backend must come back as {"error": ...}, never a raised error.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	s := newTestServer(srv.URL)
	out := callTool(t, s, s.handleGetQuote, quoteArgsFixture())
	require.Contains(t, out, "error")
	require.NotEmpty(t, out["error"])

	out = callTool(t, s, s.handleGetOrderStatus, map[string]any{"request_id": "req-1"})
	require.Contains(t, out, "error")

	// So must missing arguments.
	out = callTool(t, s, s.handleGetQuote, map[string]any{})
	require.Contains(t, out, "error")
}

func TestToolErrorEnvelopeOnHTTPStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"message": "router down"}`))
	}))
	defer srv.Close()

	s := newTestServer(srv.URL)
	out := callTool(t, s, s.handleGetQuote, quoteArgsFixture())
	require.Contains(t, out["error"], "router down")
}

func TestCalculateTokenAmountTool(t *testing.T) {
	s := newTestServer("http://unused.invalid")

	out := callTool(t, s, s.handleCalculateTokenAmount, map[string]any{
		"amount":   1.5,
		"decimals": float64(18),
	})
	require.Equal(t, "1500000000000000000", out["raw_amount"])

	out = callTool(t, s, s.handleCalculateTokenAmount, map[string]any{
		"amount":   float64(1),
		"decimals": float64(6),
	})
	require.Equal(t, "1000000", out["raw_amount"])

	out = callTool(t, s, s.handleCalculateTokenAmount, map[string]any{
		"amount":   float64(-1),
		"decimals": float64(6),
	})
	require.Contains(t, out, "error")
}

func TestEstimateGasCostTool(t *testing.T) {
	s := newTestServer("http://unused.invalid")

	out := callTool(t, s, s.handleEstimateGasCost, map[string]any{"chain_id": float64(1)})
	require.Equal(t, float64(21000), out["gas_limit"])
	require.Equal(t, 1.26, out["estimated_usd_cost"])

	out = callTool(t, s, s.handleEstimateGasCost, map[string]any{"chain_id": float64(999999)})
	require.Equal(t, 0.42, out["estimated_usd_cost"])

	out = callTool(t, s, s.handleEstimateGasCost, map[string]any{
		"chain_id":  float64(1),
		"gas_limit": float64(-21000),
	})
	require.Contains(t, out["error"], "gas_limit")
}

func TestGetSupportedChainsTool(t *testing.T) {
	s := newTestServer("http://unused.invalid")

	out := callTool(t, s, s.handleGetSupportedChains, nil)
	require.Equal(t, float64(7), out["total_chains"])
	require.Contains(t, out["supported_chains"], "1")
}

func TestCompareQuotesTool(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Slippage *int `json:"slippage"`
		}
		json.NewDecoder(r.Body).Decode(&payload)

		amounts := map[int]string{10: "100.0", 50: "105.5", 100: "99.9"}
		amount := amounts[*payload.Slippage]
		body, _ := json.Marshal(map[string]any{
			"request_id":  "req",
			"amount_out":  amount,
			"min_receive": amount,
			"fee":         "0.1",
			"slippage":    *payload.Slippage,
			"tx":          map[string]any{"to": "0x1", "value": 0, "data": "0x"},
		})
		w.Write(body)
	}))
	defer srv.Close()

	s := newTestServer(srv.URL)
	out := callTool(t, s, s.handleCompareQuotes, quoteArgsFixture())

	best, ok := out["best_quote"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, float64(50), best["slippage"])

	safest, ok := out["safest_quote"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, float64(10), safest["slippage"])
}
