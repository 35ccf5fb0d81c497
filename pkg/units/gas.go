package units

import (
	"github.com/shopspring/decimal"

	"wheelx-mcp/pkg/chains"
)

// DefaultGasLimit is a plain native-currency transfer.
const DefaultGasLimit = 21000

// GasEstimate is a rough transaction cost estimate from the static
// per-chain gas table.
type GasEstimate struct {
	ChainID          int64   `json:"chain_id"`
	GasLimit         uint64  `json:"gas_limit"`
	GasPriceGwei     float64 `json:"gas_price_gwei"`
	TotalGasGwei     float64 `json:"total_gas_gwei"`
	TotalGasNative   float64 `json:"total_gas_native"`
	EstimatedUSDCost float64 `json:"estimated_usd_cost"`
	Note             string  `json:"note"`
}

const estimateNote = "This is a rough estimation. Actual gas costs may vary."

// EstimateGasCost computes gas_limit * price_gwei, converts to native
// units (/ 1e9) and prices it in USD at the chain's static rate,
// rounded to 2 decimal places. Unknown chain ids use the fallback of
// 10 gwei at $2000.
func EstimateGasCost(chainID int64, gasLimit uint64) GasEstimate {
	price := chains.GasPriceFor(chainID)

	priceGwei := decimal.NewFromFloat(price.Gwei)
	totalGwei := decimal.NewFromUint64(gasLimit).Mul(priceGwei)
	totalNative := totalGwei.Shift(-9)
	usd := totalNative.Mul(decimal.NewFromFloat(price.USDPrice)).Round(2)

	return GasEstimate{
		ChainID:          chainID,
		GasLimit:         gasLimit,
		GasPriceGwei:     price.Gwei,
		TotalGasGwei:     totalGwei.InexactFloat64(),
		TotalGasNative:   totalNative.InexactFloat64(),
		EstimatedUSDCost: usd.InexactFloat64(),
		Note:             estimateNote,
	}
}
