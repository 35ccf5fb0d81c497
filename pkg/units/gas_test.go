package units

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEstimateGasCostEthereum(t *testing.T) {
	est := EstimateGasCost(1, 21000)

	require.Equal(t, int64(1), est.ChainID)
	require.Equal(t, uint64(21000), est.GasLimit)
	require.Equal(t, 30.0, est.GasPriceGwei)
	require.Equal(t, 630000.0, est.TotalGasGwei)
	require.Equal(t, 0.00063, est.TotalGasNative)
	require.Equal(t, 1.26, est.EstimatedUSDCost)
	require.NotEmpty(t, est.Note)
}

func TestEstimateGasCostUnknownChainFallback(t *testing.T) {
	est := EstimateGasCost(999999, 21000)

	require.Equal(t, 10.0, est.GasPriceGwei)
	require.Equal(t, 210000.0, est.TotalGasGwei)
	require.Equal(t, 0.00021, est.TotalGasNative)
	require.Equal(t, 0.42, est.EstimatedUSDCost)
}

func TestEstimateGasCostNonEthPricing(t *testing.T) {
	// Polygon: 50 gwei at $0.70 MATIC.
	est := EstimateGasCost(137, 21000)
	require.Equal(t, 50.0, est.GasPriceGwei)
	require.Equal(t, 1050000.0, est.TotalGasGwei)
	require.Equal(t, 0.0, est.EstimatedUSDCost) // 0.00105 * 0.7 rounds to 0.00

	// BSC: 5 gwei at $300 BNB.
	est = EstimateGasCost(56, 100000)
	require.Equal(t, 500000.0, est.TotalGasGwei)
	require.Equal(t, 0.15, est.EstimatedUSDCost)
}

func TestEstimateGasCostCustomGasLimit(t *testing.T) {
	est := EstimateGasCost(1, 65000)
	require.Equal(t, 1950000.0, est.TotalGasGwei)
	require.Equal(t, 3.9, est.EstimatedUSDCost)
}
