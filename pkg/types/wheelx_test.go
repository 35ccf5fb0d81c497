package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuoteRequestSlippageOmitted(t *testing.T) {
	req := QuoteRequest{
		FromChain:   1,
		ToChain:     1,
		FromToken:   "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48",
		ToToken:     "0xdAC17F958D2ee523a2206206994597C13D831ec7",
		FromAddress: "0x742d35Cc6634C0532925a3b8Dc9F6A7c5D3a7C6a",
		ToAddress:   "0x742d35Cc6634C0532925a3b8Dc9F6A7c5D3a7C6a",
		Amount:      1000000,
	}

	body, err := json.Marshal(req)
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(body, &payload))
	_, present := payload["slippage"]
	require.False(t, present, "nil slippage must not serialize a key")

	bps := 50
	req.Slippage = &bps
	body, err = json.Marshal(req)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, &payload))
	require.Equal(t, float64(50), payload["slippage"])
}

func TestQuoteResponseDecodeDefaults(t *testing.T) {
	fixture := `{
		"request_id": "req-123",
		"amount_out": "105.5",
		"fee": "0.1",
		"min_receive": "104.9",
		"slippage": 50,
		"recipient": "0x742d35Cc6634C0532925a3b8Dc9F6A7c5D3a7C6a",
		"tx": {"to": "0xrouter", "value": 0, "data": "0xdeadbeef"}
	}`

	var quote QuoteResponse
	require.NoError(t, json.Unmarshal([]byte(fixture), &quote))

	require.Equal(t, "req-123", quote.RequestID)
	require.Equal(t, DefaultEstimatedTime, quote.EstimatedTime)
	require.Equal(t, DefaultRouterType, quote.RouterType)
	require.Equal(t, DefaultRouter, quote.Router)
	require.Equal(t, DefaultPoints, quote.Points)
	require.Equal(t, "0", quote.PriceImpact.BridgeFee)
	require.Equal(t, "0", quote.PriceImpact.SwapFee)
	require.Equal(t, "0", quote.PriceImpact.DstGasFee)
	require.Nil(t, quote.Approve)
}

func TestQuoteResponseDecodeExplicitFields(t *testing.T) {
	fixture := `{
		"request_id": "req-456",
		"amount_out": "99.9",
		"estimated_time": 45,
		"router_type": "bridge",
		"router": "stargate",
		"points": "12.5",
		"price_impact": {"bridge_fee": "0.01", "swap_fee": "0.02", "dst_gas_fee": "0.03"},
		"tx": {"to": "0xrouter", "value": 1, "data": "0x"}
	}`

	var quote QuoteResponse
	require.NoError(t, json.Unmarshal([]byte(fixture), &quote))

	require.Equal(t, 45, quote.EstimatedTime)
	require.Equal(t, "bridge", quote.RouterType)
	require.Equal(t, "stargate", quote.Router)
	require.Equal(t, "12.5", quote.Points)
	require.Equal(t, "0.01", quote.PriceImpact.BridgeFee)
	require.Equal(t, "0.02", quote.PriceImpact.SwapFee)
	require.Equal(t, "0.03", quote.PriceImpact.DstGasFee)
}

func TestQuoteResponseApprove(t *testing.T) {
	withApprove := `{
		"request_id": "req-789",
		"tx": {"to": "0xrouter", "value": 0, "data": "0x"},
		"approve": {
			"token": "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48",
			"spender": "0xspender",
			"amount": 1000000
		}
	}`

	var quote QuoteResponse
	require.NoError(t, json.Unmarshal([]byte(withApprove), &quote))
	require.NotNil(t, quote.Approve)
	require.Equal(t, "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48", quote.Approve.Token)
	require.Equal(t, "0xspender", quote.Approve.Spender)
	require.Equal(t, uint64(1000000), quote.Approve.Amount)

	nullApprove := `{"request_id": "req-789", "tx": {"to": "0x1", "value": 0, "data": "0x"}, "approve": null}`
	quote = QuoteResponse{}
	require.NoError(t, json.Unmarshal([]byte(nullApprove), &quote))
	require.Nil(t, quote.Approve)
}

func TestQuoteResponseMissingRequestID(t *testing.T) {
	fixture := `{"amount_out": "100.0", "tx": {"to": "0x1", "value": 0, "data": "0x"}}`

	var quote QuoteResponse
	err := json.Unmarshal([]byte(fixture), &quote)
	require.Error(t, err)
	require.Contains(t, err.Error(), "request_id")
}

func TestOrderStatusTokenInfoAbsent(t *testing.T) {
	fixture := `{
		"order_id": "ord-1",
		"status": "open",
		"from_chain": 1,
		"to_chain": 10,
		"open_tx_hash": "0xabc",
		"open_block": 19000000
	}`

	var order OrderStatus
	require.NoError(t, json.Unmarshal([]byte(fixture), &order))
	require.Nil(t, order.FromTokenInfo)
	require.Nil(t, order.ToTokenInfo)
	require.Empty(t, order.FillTxHash)
	require.Zero(t, order.FillBlock)
}

func TestOrderStatusTokenInfoPresent(t *testing.T) {
	fixture := `{
		"order_id": "ord-2",
		"status": "filled",
		"fill_tx_hash": "0xdef",
		"fill_block": 19000010,
		"from_token_info": {
			"symbol": "USDC",
			"name": "USD Coin",
			"decimals": 6,
			"address": "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48",
			"chain_id": 1,
			"tags": ["stablecoin"]
		}
	}`

	var order OrderStatus
	require.NoError(t, json.Unmarshal([]byte(fixture), &order))
	require.NotNil(t, order.FromTokenInfo)
	require.Equal(t, "USDC", order.FromTokenInfo.Symbol)
	require.Equal(t, 6, order.FromTokenInfo.Decimals)
	require.Equal(t, []string{"stablecoin"}, order.FromTokenInfo.Tags)
	require.Nil(t, order.ToTokenInfo)
}
