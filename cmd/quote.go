package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"wheelx-mcp/config"
	"wheelx-mcp/pkg/chains"
	"wheelx-mcp/pkg/client"
	"wheelx-mcp/pkg/parser"
	"wheelx-mcp/pkg/types"
	"wheelx-mcp/pkg/units"
)

var (
	quoteFromChain int
	quoteToChain   int
	quoteRecipient string
	quoteSender    string
	quoteSlippage  int
	quoteDecimals  int
)

var quoteCmd = &cobra.Command{
	Use:   "quote <amount> <source-token> to <dest-token>",
	Short: "Get a swap/bridge quote",
	Long: `Fetch a quote from the WheelX API for swapping or bridging tokens.

Token symbols are resolved against the popular-token list of the source and
destination chains; raw 0x addresses are accepted as well, but then the
source token's decimals must be passed via --decimals.

Examples:
  wheelx quote 1.5 USDC to USDT --from-chain 1 --to-chain 1 --recipient 0x123...
  wheelx quote 0.5 ETH to USDC --from-chain 1 --to-chain 10 --recipient 0x123... --slippage 50`,
	Args: cobra.MinimumNArgs(1),
	Run:  runQuote,
}

func init() {
	rootCmd.AddCommand(quoteCmd)

	quoteCmd.Flags().IntVar(&quoteFromChain, "from-chain", 1, "Source chain ID")
	quoteCmd.Flags().IntVar(&quoteToChain, "to-chain", 1, "Destination chain ID")
	quoteCmd.Flags().StringVar(&quoteRecipient, "recipient", "", "Recipient address (REQUIRED - where you'll receive tokens)")
	quoteCmd.Flags().StringVar(&quoteSender, "sender", "", "Sender address (defaults to the recipient)")
	quoteCmd.Flags().IntVar(&quoteSlippage, "slippage", -1, "Slippage tolerance in basis points (omit for provider default)")
	quoteCmd.Flags().IntVar(&quoteDecimals, "decimals", -1, "Decimals of the source token (REQUIRED when it is given by address)")
}

// buildQuoteRequest turns the CLI phrase and flags into an API request
func buildQuoteRequest(args []string) (*types.QuoteRequest, error) {
	phrase, err := parser.ParseSwapPhrase(strings.Join(args, " "))
	if err != nil {
		return nil, err
	}

	if quoteRecipient == "" {
		return nil, fmt.Errorf("recipient address is required. Use --recipient to specify where you want to receive the tokens")
	}
	sender := quoteSender
	if sender == "" {
		sender = quoteRecipient
	}

	fromToken, fromDecimals, err := resolveToken(quoteFromChain, phrase.FromToken)
	if err != nil {
		return nil, err
	}
	toToken, _, err := resolveToken(quoteToChain, phrase.ToToken)
	if err != nil {
		return nil, err
	}

	// Decimals for a raw address can't be looked up locally; guessing
	// would silently mis-scale the amount for anything but an 18-decimal
	// token. Make the caller state them.
	if fromDecimals < 0 {
		if quoteDecimals < 0 {
			return nil, fmt.Errorf("token '%s' is given by address; pass --decimals so the amount can be converted", fromToken)
		}
		fromDecimals = quoteDecimals
	}

	rawAmount, err := units.CalculateTokenAmount(phrase.Amount, fromDecimals)
	if err != nil {
		return nil, err
	}
	if !rawAmount.IsUint64() {
		return nil, fmt.Errorf("amount %v is too large for %d decimals", phrase.Amount, fromDecimals)
	}

	req := &types.QuoteRequest{
		FromChain:   quoteFromChain,
		ToChain:     quoteToChain,
		FromToken:   fromToken,
		ToToken:     toToken,
		FromAddress: sender,
		ToAddress:   quoteRecipient,
		Amount:      rawAmount.Uint64(),
	}
	if quoteSlippage >= 0 {
		req.Slippage = &quoteSlippage
	}
	return req, nil
}

// resolveToken maps a symbol onto its address and decimals via the
// chain's popular-token list. 0x inputs pass through with decimals -1,
// meaning unknown.
func resolveToken(chainID int, symbolOrAddress string) (string, int, error) {
	if strings.HasPrefix(strings.ToLower(symbolOrAddress), "0x") {
		return symbolOrAddress, -1, nil
	}

	token, ok := chains.FindToken(chainID, parser.NormalizeTokenSymbol(symbolOrAddress))
	if !ok {
		return "", 0, fmt.Errorf("token '%s' not found on chain %d; pass the token address instead", symbolOrAddress, chainID)
	}
	return token.Address, token.Decimals, nil
}

func runQuote(cmd *cobra.Command, args []string) {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	verbose, _ := cmd.Flags().GetBool("verbose")

	req, err := buildQuoteRequest(args)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	if verbose && !jsonOutput {
		reqJSON, _ := json.MarshalIndent(req, "", "  ")
		fmt.Printf("Request:\n%s\n", string(reqJSON))
	}

	cfg, err := config.Load()
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	apiClient := client.New(cfg.BaseURL, client.WithTimeout(cfg.HTTPTimeout))

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	if !jsonOutput {
		s.Suffix = " Fetching quote..."
		s.Start()
	}

	quote, err := apiClient.GetQuote(context.Background(), *req)
	if !jsonOutput {
		s.Stop()
	}

	if err != nil {
		printError(err)
		os.Exit(1)
	}

	if jsonOutput {
		jsonData, _ := json.MarshalIndent(quote, "", "  ")
		fmt.Println(string(jsonData))
	} else {
		displayQuote(quote)
	}
}

func displayQuote(quote *types.QuoteResponse) {
	fmt.Println("\n" + strings.Repeat("=", 70))
	color.Green("                            QUOTE")
	fmt.Println(strings.Repeat("=", 70))

	fmt.Printf("\n  Request ID:     %s\n", color.CyanString(quote.RequestID))
	fmt.Printf("  Amount Out:     %s\n", quote.AmountOut)
	fmt.Printf("  Min Receive:    %s\n", quote.MinReceive)
	fmt.Printf("  Fee:            %s\n", quote.Fee)
	fmt.Printf("  Slippage:       %d bps\n", quote.Slippage)
	fmt.Printf("  Router:         %s (%s)\n", quote.Router, quote.RouterType)
	fmt.Printf("  Est. Time:      %ds\n", quote.EstimatedTime)
	fmt.Printf("  Recipient:      %s\n", quote.Recipient)

	fmt.Printf("\n  Price Impact:\n")
	fmt.Printf("    Bridge Fee:   %s\n", quote.PriceImpact.BridgeFee)
	fmt.Printf("    Swap Fee:     %s\n", quote.PriceImpact.SwapFee)
	fmt.Printf("    Dst Gas Fee:  %s\n", quote.PriceImpact.DstGasFee)

	if quote.Approve != nil {
		color.Yellow("\n  Approval required before swapping:")
		fmt.Printf("    Token:        %s\n", quote.Approve.Token)
		fmt.Printf("    Spender:      %s\n", quote.Approve.Spender)
		fmt.Printf("    Amount:       %d\n", quote.Approve.Amount)
	}

	fmt.Printf("\n  Tx To:          %s\n", color.HiBlackString(quote.Tx.To))
	fmt.Println("\n" + strings.Repeat("=", 70) + "\n")
}
