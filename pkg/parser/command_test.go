package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSwapPhrase(t *testing.T) {
	tests := []struct {
		command string
		amount  float64
		from    string
		to      string
	}{
		{"1.5 USDC to USDT", 1.5, "USDC", "USDT"},
		{"swap 1 ETH to DAI", 1, "ETH", "DAI"},
		{"  100.25 usdc TO dai ", 100.25, "USDC", "DAI"},
	}

	for _, tt := range tests {
		phrase, err := ParseSwapPhrase(tt.command)
		require.NoError(t, err, tt.command)
		require.Equal(t, tt.amount, phrase.Amount)
		require.Equal(t, tt.from, phrase.FromToken)
		require.Equal(t, tt.to, phrase.ToToken)
	}
}

func TestParseSwapPhraseKeepsAddressCase(t *testing.T) {
	// Mixed-case addresses carry an EIP-55 checksum; parsing must not
	// fold them to a single case.
	usdc := "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"
	usdt := "0xdAC17F958D2ee523a2206206994597C13D831ec7"

	phrase, err := ParseSwapPhrase("swap 100 " + usdc + " to " + usdt)
	require.NoError(t, err)
	require.Equal(t, usdc, phrase.FromToken)
	require.Equal(t, usdt, phrase.ToToken)

	phrase, err = ParseSwapPhrase("1.5 " + usdc + " to usdt")
	require.NoError(t, err)
	require.Equal(t, usdc, phrase.FromToken)
	require.Equal(t, "USDT", phrase.ToToken)
}

func TestParseSwapPhraseRejectsMalformed(t *testing.T) {
	for _, command := range []string{
		"",
		"USDC to USDT",
		"1.5 USDC",
		"1.5 USDC USDT",
		"one USDC to USDT",
	} {
		_, err := ParseSwapPhrase(command)
		require.Error(t, err, command)
	}
}

func TestNormalizeTokenSymbol(t *testing.T) {
	require.Equal(t, "ETH", NormalizeTokenSymbol("weth"))
	require.Equal(t, "BNB", NormalizeTokenSymbol("WBNB"))
	require.Equal(t, "USDC", NormalizeTokenSymbol(" usdc "))
}
