package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// SwapPhrase is the parsed form of a free-form quote command
type SwapPhrase struct {
	Amount    float64
	FromToken string
	ToToken   string
}

var phrasePattern = regexp.MustCompile(`(?i)^(\d+\.?\d*)\s+([A-Z0-9]+|0X[A-F0-9]{40})\s+TO\s+([A-Z0-9]+|0X[A-F0-9]{40})$`)

// ParseSwapPhrase parses a natural language quote command
// Examples:
//   - "swap 1.5 USDC to USDT"
//   - "1 ETH to DAI"
//   - "100 0xA0b8...6eB48 to USDT"
func ParseSwapPhrase(command string) (*SwapPhrase, error) {
	command = strings.TrimSpace(command)

	// Remove the word "swap" if present at the beginning
	if len(command) > 5 && strings.EqualFold(command[:5], "swap ") {
		command = strings.TrimSpace(command[5:])
	}

	matches := phrasePattern.FindStringSubmatch(command)
	if matches == nil {
		return nil, fmt.Errorf("invalid quote command format. Expected: '<amount> <token> to <token>' (e.g., '1.5 USDC to USDT')")
	}

	amount, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", matches[1], err)
	}

	return &SwapPhrase{
		Amount:    amount,
		FromToken: normalizeToken(matches[2]),
		ToToken:   normalizeToken(matches[3]),
	}, nil
}

// normalizeToken uppercases bare symbols. Addresses keep their original
// case so EIP-55 checksums survive parsing.
func normalizeToken(token string) string {
	if strings.HasPrefix(strings.ToLower(token), "0x") {
		return token
	}
	return strings.ToUpper(token)
}

// NormalizeTokenSymbol normalizes token symbols to standard format
func NormalizeTokenSymbol(symbol string) string {
	symbol = strings.TrimSpace(strings.ToUpper(symbol))

	// Common wrapped-asset aliases
	aliases := map[string]string{
		"WETH": "ETH",
		"WBNB": "BNB",
	}

	if normalized, exists := aliases[symbol]; exists {
		return normalized
	}

	return symbol
}
