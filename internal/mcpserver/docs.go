package mcpserver

const usageDocs = `# WheelX MCP Server Usage Guide

## Available Tools

### get_quote
Get a quote for token swap/bridge between chains.

**Parameters:**
- ` + "`from_chain`" + `: Source chain ID (e.g., 1 for Ethereum)
- ` + "`to_chain`" + `: Destination chain ID
- ` + "`from_token`" + `: Source token address
- ` + "`to_token`" + `: Destination token address
- ` + "`from_address`" + `: User's source address
- ` + "`to_address`" + `: User's destination address
- ` + "`amount`" + `: Amount to swap, in the token's smallest unit
- ` + "`slippage`" + `: Slippage tolerance in basis points (optional)

### get_order_status
Get the status of a previously submitted order.

**Parameters:**
- ` + "`request_id`" + `: The request ID from a previous quote

### get_supported_chains
Get list of supported blockchain networks.

### calculate_token_amount
Calculate the raw token amount from human-readable amount.

**Parameters:**
- ` + "`amount`" + `: Human-readable token amount
- ` + "`decimals`" + `: Token decimals

### estimate_gas_cost
Estimate gas cost for a transaction on a specific chain.

**Parameters:**
- ` + "`chain_id`" + `: Chain ID to estimate gas for
- ` + "`gas_limit`" + `: Estimated gas limit (default: 21000)

### compare_quotes
Get multiple quotes with different slippage settings for comparison.

## Available Resources

- ` + "`wheelx://chains/{chain_id}/tokens`" + ` - Popular tokens for a chain
- ` + "`wheelx://status`" + ` - Service status
- ` + "`wheelx://docs/usage`" + ` - This documentation

## Example Usage

Get a quote for swapping USDC to USDT on Ethereum:

` + "```json" + `
{
  "from_chain": 1,
  "to_chain": 1,
  "from_token": "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48",
  "to_token": "0xdAC17F958D2ee523a2206206994597C13D831ec7",
  "from_address": "0x742d35Cc6634C0532925a3b8Dc9F6A7c5D3a7C6a",
  "to_address": "0x742d35Cc6634C0532925a3b8Dc9F6A7c5D3a7C6a",
  "amount": 1000000,
  "slippage": 50
}
` + "```" + `
`
