package units

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// MaxDecimals is the largest token precision accepted (ERC-20 max).
const MaxDecimals = 18

// CalculateTokenAmount converts a human-readable token amount into the
// token's smallest unit: floor(amount * 10^decimals). The scaling runs
// through base-10 decimal arithmetic so values like 1.5 at 18 decimals
// come out exact rather than drifting through binary floats.
func CalculateTokenAmount(amount float64, decimals int) (*big.Int, error) {
	if amount < 0 {
		return nil, fmt.Errorf("amount must not be negative, got %v", amount)
	}
	if decimals < 0 || decimals > MaxDecimals {
		return nil, fmt.Errorf("decimals must be between 0 and %d, got %d", MaxDecimals, decimals)
	}

	raw := decimal.NewFromFloat(amount).Shift(int32(decimals)).Floor()
	return raw.BigInt(), nil
}

// FormatTokenAmount renders a raw smallest-unit amount back into its
// human-readable form.
func FormatTokenAmount(raw *big.Int, decimals int) (string, error) {
	if decimals < 0 || decimals > MaxDecimals {
		return "", fmt.Errorf("decimals must be between 0 and %d, got %d", MaxDecimals, decimals)
	}
	return decimal.NewFromBigInt(raw, -int32(decimals)).String(), nil
}
