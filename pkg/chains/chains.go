package chains

import "strings"

// Chain describes one supported blockchain network
type Chain struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	NativeCurrency string `json:"native_currency"`
	Explorer       string `json:"explorer"`
}

// Token describes one popular token on a chain
type Token struct {
	Symbol   string `json:"symbol"`
	Address  string `json:"address"`
	Decimals int    `json:"decimals"`
}

// GasPrice is a static per-chain gas-market snapshot used for rough
// cost estimates only.
type GasPrice struct {
	Gwei     float64
	USDPrice float64
}

// supported is the chain registry. Loaded once; treat as read-only.
var supported = map[int]Chain{
	1:     {ID: 1, Name: "Ethereum Mainnet", NativeCurrency: "ETH", Explorer: "https://etherscan.io"},
	10:    {ID: 10, Name: "Optimism", NativeCurrency: "ETH", Explorer: "https://optimistic.etherscan.io"},
	56:    {ID: 56, Name: "BNB Smart Chain", NativeCurrency: "BNB", Explorer: "https://bscscan.com"},
	137:   {ID: 137, Name: "Polygon", NativeCurrency: "MATIC", Explorer: "https://polygonscan.com"},
	42161: {ID: 42161, Name: "Arbitrum One", NativeCurrency: "ETH", Explorer: "https://arbiscan.io"},
	8453:  {ID: 8453, Name: "Base", NativeCurrency: "ETH", Explorer: "https://basescan.org"},
	43114: {ID: 43114, Name: "Avalanche C-Chain", NativeCurrency: "AVAX", Explorer: "https://snowtrace.io"},
}

// popularTokens lists well-known tokens per chain id
var popularTokens = map[int][]Token{
	1: {
		{Symbol: "ETH", Address: "0x0000000000000000000000000000000000000000", Decimals: 18},
		{Symbol: "USDC", Address: "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48", Decimals: 6},
		{Symbol: "USDT", Address: "0xdAC17F958D2ee523a2206206994597C13D831ec7", Decimals: 6},
		{Symbol: "DAI", Address: "0x6B175474E89094C44Da98b954EedeAC495271d0F", Decimals: 18},
		{Symbol: "WBTC", Address: "0x2260FAC5E5542a773Aa44fBCfeDf7C193bc2C599", Decimals: 8},
	},
	10: {
		{Symbol: "ETH", Address: "0x0000000000000000000000000000000000000000", Decimals: 18},
		{Symbol: "USDC", Address: "0x7F5c764cBc14f9669B88837ca1490cCa17c31607", Decimals: 6},
		{Symbol: "USDT", Address: "0x94b008aA00579c1307B0EF2c499aD98a8ce58e58", Decimals: 6},
	},
	56: {
		{Symbol: "BNB", Address: "0x0000000000000000000000000000000000000000", Decimals: 18},
		{Symbol: "BUSD", Address: "0xe9e7CEA3DedcA5984780Bafc599bD69ADd087D56", Decimals: 18},
		{Symbol: "USDT", Address: "0x55d398326f99059fF775485246999027B3197955", Decimals: 18},
	},
}

// gasPrices is a static gas-market table; estimates derived from it
// are advisory only.
var gasPrices = map[int64]GasPrice{
	1:     {Gwei: 30, USDPrice: 2000},
	10:    {Gwei: 0.1, USDPrice: 2000},
	56:    {Gwei: 5, USDPrice: 300},
	137:   {Gwei: 50, USDPrice: 0.7},
	42161: {Gwei: 0.1, USDPrice: 2000},
	8453:  {Gwei: 0.1, USDPrice: 2000},
	43114: {Gwei: 25, USDPrice: 30},
}

// FallbackGasPrice is used for chain ids missing from the table.
var FallbackGasPrice = GasPrice{Gwei: 10, USDPrice: 2000}

// Supported returns the chain registry keyed by chain id
func Supported() map[int]Chain {
	out := make(map[int]Chain, len(supported))
	for id, c := range supported {
		out[id] = c
	}
	return out
}

// Lookup returns the chain for an id
func Lookup(id int) (Chain, bool) {
	c, ok := supported[id]
	return c, ok
}

// PopularTokens returns the well-known tokens on a chain. Unrecognized
// chain ids yield an empty list, not an error.
func PopularTokens(chainID int) []Token {
	tokens := popularTokens[chainID]
	out := make([]Token, len(tokens))
	copy(out, tokens)
	return out
}

// FindToken resolves a token symbol on a chain, case-insensitively
func FindToken(chainID int, symbol string) (Token, bool) {
	for _, t := range popularTokens[chainID] {
		if strings.EqualFold(t.Symbol, symbol) {
			return t, true
		}
	}
	return Token{}, false
}

// GasPriceFor returns the static gas snapshot for a chain, falling
// back to FallbackGasPrice for unknown ids.
func GasPriceFor(chainID int64) GasPrice {
	if p, ok := gasPrices[chainID]; ok {
		return p
	}
	return FallbackGasPrice
}
