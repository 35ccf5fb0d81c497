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
	"wheelx-mcp/pkg/client"
)

var compareCmd = &cobra.Command{
	Use:   "compare <amount> <source-token> to <dest-token>",
	Short: "Compare quotes across slippage settings",
	Long: `Fetch quotes for several slippage values (10, 50 and 100 basis points by
default) and show the best output amount versus the safest slippage.

Examples:
  wheelx compare 1.5 USDC to USDT --from-chain 1 --to-chain 1 --recipient 0x123...
  wheelx compare 1.5 USDC to USDT --from-chain 1 --to-chain 1 --recipient 0x123... --slippage 25`,
	Args: cobra.MinimumNArgs(1),
	Run:  runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().IntVar(&quoteFromChain, "from-chain", 1, "Source chain ID")
	compareCmd.Flags().IntVar(&quoteToChain, "to-chain", 1, "Destination chain ID")
	compareCmd.Flags().StringVar(&quoteRecipient, "recipient", "", "Recipient address (REQUIRED)")
	compareCmd.Flags().StringVar(&quoteSender, "sender", "", "Sender address (defaults to the recipient)")
	compareCmd.Flags().IntVar(&quoteSlippage, "slippage", -1, "Compare only this slippage value in basis points")
	compareCmd.Flags().IntVar(&quoteDecimals, "decimals", -1, "Decimals of the source token (REQUIRED when it is given by address)")
}

func runCompare(cmd *cobra.Command, args []string) {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	req, err := buildQuoteRequest(args)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	var slippage *int
	if quoteSlippage >= 0 {
		slippage = &quoteSlippage
	}
	req.Slippage = nil

	cfg, err := config.Load()
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	apiClient := client.New(cfg.BaseURL, client.WithTimeout(cfg.HTTPTimeout))

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	if !jsonOutput {
		s.Suffix = " Comparing quotes..."
		s.Start()
	}

	comparison, err := apiClient.CompareQuotes(context.Background(), *req, slippage)
	if !jsonOutput {
		s.Stop()
	}

	if err != nil {
		printError(err)
		os.Exit(1)
	}

	if jsonOutput {
		jsonData, _ := json.MarshalIndent(comparison, "", "  ")
		fmt.Println(string(jsonData))
	} else {
		displayComparison(comparison)
	}
}

func displayComparison(c *client.Comparison) {
	fmt.Println("\n" + strings.Repeat("=", 70))
	color.Green("                       QUOTE COMPARISON")
	fmt.Println(strings.Repeat("=", 70))

	fmt.Printf("\n  %-10s %-20s %-20s %s\n", "Slippage", "Amount Out", "Min Receive", "Fee")
	for _, q := range c.Quotes {
		line := fmt.Sprintf("  %-10d %-20s %-20s %s", q.Slippage, q.AmountOut, q.MinReceive, q.Fee)
		switch q.RequestID {
		case c.Best.RequestID:
			color.Green("%s  <- best", line)
		case c.Safest.RequestID:
			color.Cyan("%s  <- safest", line)
		default:
			fmt.Println(line)
		}
	}

	fmt.Printf("\n  Best quote:    %s bps -> %s out\n", color.GreenString("%d", c.Best.Slippage), c.Best.AmountOut)
	fmt.Printf("  Safest quote:  %s bps -> %s out\n", color.CyanString("%d", c.Safest.Slippage), c.Safest.AmountOut)
	fmt.Println("\n" + strings.Repeat("=", 70) + "\n")
}
