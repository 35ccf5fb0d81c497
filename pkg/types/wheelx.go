package types

import (
	"encoding/json"
	"fmt"
)

// Defaults applied when the quote endpoint omits optional fields.
const (
	DefaultEstimatedTime = 10
	DefaultRouterType    = "swap"
	DefaultRouter        = "wheelx"
	DefaultPoints        = "0"
)

// QuoteRequest represents the request parameters for getting a quote
type QuoteRequest struct {
	FromChain   int    `json:"from_chain"`
	ToChain     int    `json:"to_chain"`
	FromToken   string `json:"from_token"`
	ToToken     string `json:"to_token"`
	FromAddress string `json:"from_address"`
	ToAddress   string `json:"to_address"`
	Amount      uint64 `json:"amount"`
	// Slippage is in basis points. The key is omitted entirely when nil;
	// the provider treats an absent slippage differently from zero.
	Slippage *int `json:"slippage,omitempty"`
}

// Tx represents an unsigned transaction payload returned with a quote
type Tx struct {
	To                   string  `json:"to"`
	Value                uint64  `json:"value"`
	Data                 string  `json:"data"`
	ChainID              *uint64 `json:"chainId,omitempty"`
	Gas                  *uint64 `json:"gas,omitempty"`
	MaxFeePerGas         *uint64 `json:"maxFeePerGas,omitempty"`
	MaxPriorityFeePerGas *uint64 `json:"maxPriorityFeePerGas,omitempty"`
}

// ApproveAction represents an ERC-20 approval required before the swap.
// A nil ApproveAction on a quote means no approval step is needed.
type ApproveAction struct {
	Token   string `json:"token"`
	Spender string `json:"spender"`
	Amount  uint64 `json:"amount"`
}

// PriceImpact represents the informational fee breakdown of a quote
type PriceImpact struct {
	BridgeFee string `json:"bridge_fee"`
	SwapFee   string `json:"swap_fee"`
	DstGasFee string `json:"dst_gas_fee"`
}

// QuoteResponse represents a priced swap/bridge offer
type QuoteResponse struct {
	RequestID     string         `json:"request_id"`
	AmountOut     string         `json:"amount_out"`
	Fee           string         `json:"fee"`
	Tx            Tx             `json:"tx"`
	Approve       *ApproveAction `json:"approve,omitempty"`
	Slippage      int            `json:"slippage"`
	MinReceive    string         `json:"min_receive"`
	EstimatedTime int            `json:"estimated_time"`
	Recipient     string         `json:"recipient"`
	RouterType    string         `json:"router_type"`
	PriceImpact   PriceImpact    `json:"price_impact"`
	Router        string         `json:"router"`
	CreatedAt     string         `json:"created_at"`
	Points        string         `json:"points"`
}

// UnmarshalJSON decodes a quote response and fills in the documented
// defaults for fields the provider may omit. A response without a
// request_id is rejected since the id is the only handle for a later
// order-status lookup.
func (q *QuoteResponse) UnmarshalJSON(data []byte) error {
	type alias QuoteResponse
	aux := alias{
		EstimatedTime: DefaultEstimatedTime,
		RouterType:    DefaultRouterType,
		Router:        DefaultRouter,
		Points:        DefaultPoints,
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.RequestID == "" {
		return fmt.Errorf("quote response missing request_id")
	}
	if aux.PriceImpact.BridgeFee == "" {
		aux.PriceImpact.BridgeFee = "0"
	}
	if aux.PriceImpact.SwapFee == "" {
		aux.PriceImpact.SwapFee = "0"
	}
	if aux.PriceImpact.DstGasFee == "" {
		aux.PriceImpact.DstGasFee = "0"
	}
	*q = QuoteResponse(aux)
	return nil
}

// TokenInfo represents resolved token metadata on an order leg
type TokenInfo struct {
	Symbol   string   `json:"symbol"`
	Name     string   `json:"name"`
	Decimals int      `json:"decimals"`
	Address  string   `json:"address"`
	ChainID  int      `json:"chain_id"`
	Logo     string   `json:"logo"`
	Tags     []string `json:"tags"`
}

// OrderStatus represents the status of a previously quoted order.
// Fill fields are populated only once the order has progressed past
// "open"; token info sub-objects are nil when the provider omits them.
type OrderStatus struct {
	OrderID       string     `json:"order_id"`
	FromChain     int        `json:"from_chain"`
	FromToken     string     `json:"from_token"`
	FromAddress   string     `json:"from_address"`
	FromAmount    string     `json:"from_amount"`
	ToChain       int        `json:"to_chain"`
	ToToken       string     `json:"to_token"`
	ToAmount      string     `json:"to_amount"`
	ToAddress     string     `json:"to_address"`
	OpenTxHash    string     `json:"open_tx_hash"`
	OpenBlock     int64      `json:"open_block"`
	OpenTimestamp string     `json:"open_timestamp"`
	FillTxHash    string     `json:"fill_tx_hash"`
	FillBlock     int64      `json:"fill_block"`
	FillTimestamp string     `json:"fill_timestamp"`
	Status        string     `json:"status"`
	Points        string     `json:"points"`
	FromTokenInfo *TokenInfo `json:"from_token_info,omitempty"`
	ToTokenInfo   *TokenInfo `json:"to_token_info,omitempty"`
}
