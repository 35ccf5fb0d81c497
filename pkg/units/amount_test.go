package units

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalculateTokenAmountExact(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		decimals int
		want     string
	}{
		{"1.5 at 18 decimals", 1.5, 18, "1500000000000000000"},
		{"1.0 at 6 decimals", 1.0, 6, "1000000"},
		{"0.1 at 18 decimals", 0.1, 18, "100000000000000000"},
		{"0.000001 at 6 decimals", 0.000001, 6, "1"},
		{"zero", 0, 18, "0"},
		{"whole at 0 decimals", 42, 0, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := CalculateTokenAmount(tt.amount, tt.decimals)
			require.NoError(t, err)
			require.Equal(t, tt.want, raw.String())
		})
	}
}

func TestCalculateTokenAmountFloors(t *testing.T) {
	// Sub-unit residue truncates toward zero.
	raw, err := CalculateTokenAmount(1.5, 0)
	require.NoError(t, err)
	require.Equal(t, "1", raw.String())
}

func TestCalculateTokenAmountRejectsBadInput(t *testing.T) {
	_, err := CalculateTokenAmount(-1, 18)
	require.Error(t, err)

	_, err = CalculateTokenAmount(1, -1)
	require.Error(t, err)

	_, err = CalculateTokenAmount(1, 19)
	require.Error(t, err)
}

func TestFormatTokenAmount(t *testing.T) {
	raw, ok := new(big.Int).SetString("1500000000000000000", 10)
	require.True(t, ok)

	human, err := FormatTokenAmount(raw, 18)
	require.NoError(t, err)
	require.Equal(t, "1.5", human)

	human, err = FormatTokenAmount(big.NewInt(1000000), 6)
	require.NoError(t, err)
	require.Equal(t, "1", human)
}
