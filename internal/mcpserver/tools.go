package mcpserver

import (
	"context"
	"math"

	"github.com/mark3labs/mcp-go/mcp"

	"wheelx-mcp/pkg/chains"
	"wheelx-mcp/pkg/client"
	"wheelx-mcp/pkg/types"
	"wheelx-mcp/pkg/units"
)

func (s *Server) registerTools() {
	s.mcp.AddTool(mcp.NewTool("get_quote",
		quoteArgs("Get a quote for token swap/bridge between chains")...,
	), wrap(s.handleGetQuote))

	s.mcp.AddTool(mcp.NewTool("get_order_status",
		mcp.WithDescription("Get the status of a previously submitted order"),
		mcp.WithString("request_id", mcp.Required(), mcp.Description("The request ID from a previous quote")),
	), wrap(s.handleGetOrderStatus))

	s.mcp.AddTool(mcp.NewTool("get_supported_chains",
		mcp.WithDescription("Get list of supported blockchain networks"),
	), wrap(s.handleGetSupportedChains))

	s.mcp.AddTool(mcp.NewTool("calculate_token_amount",
		mcp.WithDescription("Calculate the raw token amount from human-readable amount"),
		mcp.WithNumber("amount", mcp.Required(), mcp.Description("Human-readable token amount (e.g., 1.5 for 1.5 tokens)")),
		mcp.WithNumber("decimals", mcp.Required(), mcp.Description("Token decimals (e.g., 18 for ETH, 6 for USDC)")),
	), wrap(s.handleCalculateTokenAmount))

	s.mcp.AddTool(mcp.NewTool("estimate_gas_cost",
		mcp.WithDescription("Estimate gas cost for a transaction on a specific chain"),
		mcp.WithNumber("chain_id", mcp.Required(), mcp.Description("Chain ID to estimate gas for")),
		mcp.WithNumber("gas_limit", mcp.Description("Estimated gas limit for the transaction (default: 21000)")),
	), wrap(s.handleEstimateGasCost))

	s.mcp.AddTool(mcp.NewTool("compare_quotes",
		quoteArgs("Get multiple quotes with different slippage settings for comparison")...,
	), wrap(s.handleCompareQuotes))
}

// quoteArgs is the shared argument schema of get_quote and
// compare_quotes.
func quoteArgs(description string) []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithDescription(description),
		mcp.WithNumber("from_chain", mcp.Required(), mcp.Description("Source chain ID (e.g., 1 for Ethereum)")),
		mcp.WithNumber("to_chain", mcp.Required(), mcp.Description("Destination chain ID (e.g., 1 for Ethereum)")),
		mcp.WithString("from_token", mcp.Required(), mcp.Description("Source token address")),
		mcp.WithString("to_token", mcp.Required(), mcp.Description("Destination token address")),
		mcp.WithString("from_address", mcp.Required(), mcp.Description("User's source address")),
		mcp.WithString("to_address", mcp.Required(), mcp.Description("User's destination address")),
		mcp.WithNumber("amount", mcp.Required(), mcp.Description("Amount to swap, in the token's smallest unit")),
		mcp.WithNumber("slippage", mcp.Description("Slippage tolerance in basis points (optional)")),
	}
}

// quoteRequestFromArgs maps tool arguments onto a QuoteRequest,
// keeping slippage nil when the argument is absent.
func quoteRequestFromArgs(req mcp.CallToolRequest) (types.QuoteRequest, *int, error) {
	fromChain, err := req.RequireInt("from_chain")
	if err != nil {
		return types.QuoteRequest{}, nil, err
	}
	toChain, err := req.RequireInt("to_chain")
	if err != nil {
		return types.QuoteRequest{}, nil, err
	}
	fromToken, err := req.RequireString("from_token")
	if err != nil {
		return types.QuoteRequest{}, nil, err
	}
	toToken, err := req.RequireString("to_token")
	if err != nil {
		return types.QuoteRequest{}, nil, err
	}
	fromAddress, err := req.RequireString("from_address")
	if err != nil {
		return types.QuoteRequest{}, nil, err
	}
	toAddress, err := req.RequireString("to_address")
	if err != nil {
		return types.QuoteRequest{}, nil, err
	}
	amount, err := req.RequireFloat("amount")
	if err != nil {
		return types.QuoteRequest{}, nil, err
	}
	if amount < 0 {
		return types.QuoteRequest{}, nil, &client.ValidationError{Field: "amount", Reason: "must not be negative"}
	}
	if amount != math.Trunc(amount) || amount > math.MaxUint64 {
		return types.QuoteRequest{}, nil, &client.ValidationError{Field: "amount", Reason: "must be a whole number of the token's smallest unit"}
	}

	var slippage *int
	if _, ok := req.GetArguments()["slippage"]; ok {
		bps := req.GetInt("slippage", 0)
		slippage = &bps
	}

	return types.QuoteRequest{
		FromChain:   fromChain,
		ToChain:     toChain,
		FromToken:   fromToken,
		ToToken:     toToken,
		FromAddress: fromAddress,
		ToAddress:   toAddress,
		Amount:      uint64(amount),
		Slippage:    slippage,
	}, slippage, nil
}

func (s *Server) handleGetQuote(ctx context.Context, req mcp.CallToolRequest) (any, error) {
	quoteReq, _, err := quoteRequestFromArgs(req)
	if err != nil {
		return nil, err
	}

	quote, err := s.api.GetQuote(ctx, quoteReq)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"request_id":       quote.RequestID,
		"amount_out":       quote.AmountOut,
		"fee":              quote.Fee,
		"min_receive":      quote.MinReceive,
		"estimated_time":   quote.EstimatedTime,
		"slippage":         quote.Slippage,
		"router_type":      quote.RouterType,
		"router":           quote.Router,
		"points":           quote.Points,
		"approve_required": quote.Approve != nil,
		"approve_details":  quote.Approve,
		"transaction":      quote.Tx,
		"price_impact":     quote.PriceImpact,
	}, nil
}

func (s *Server) handleGetOrderStatus(ctx context.Context, req mcp.CallToolRequest) (any, error) {
	requestID, err := req.RequireString("request_id")
	if err != nil {
		return nil, err
	}
	return s.api.GetOrderStatus(ctx, requestID)
}

func (s *Server) handleGetSupportedChains(ctx context.Context, req mcp.CallToolRequest) (any, error) {
	supported := chains.Supported()
	return map[string]any{
		"supported_chains": supported,
		"total_chains":     len(supported),
	}, nil
}

func (s *Server) handleCalculateTokenAmount(ctx context.Context, req mcp.CallToolRequest) (any, error) {
	amount, err := req.RequireFloat("amount")
	if err != nil {
		return nil, err
	}
	decimals, err := req.RequireInt("decimals")
	if err != nil {
		return nil, err
	}

	raw, err := units.CalculateTokenAmount(amount, decimals)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"human_amount": amount,
		"decimals":     decimals,
		"raw_amount":   raw.String(),
	}, nil
}

func (s *Server) handleEstimateGasCost(ctx context.Context, req mcp.CallToolRequest) (any, error) {
	chainID, err := req.RequireInt("chain_id")
	if err != nil {
		return nil, err
	}
	gasLimit := req.GetInt("gas_limit", units.DefaultGasLimit)
	if gasLimit < 0 {
		return nil, &client.ValidationError{Field: "gas_limit", Reason: "must not be negative"}
	}

	return units.EstimateGasCost(int64(chainID), uint64(gasLimit)), nil
}

func (s *Server) handleCompareQuotes(ctx context.Context, req mcp.CallToolRequest) (any, error) {
	quoteReq, slippage, err := quoteRequestFromArgs(req)
	if err != nil {
		return nil, err
	}
	return s.api.CompareQuotes(ctx, quoteReq, slippage)
}
