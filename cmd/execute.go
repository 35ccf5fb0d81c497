package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"wheelx-mcp/config"
	"wheelx-mcp/pkg/client"
	"wheelx-mcp/pkg/executor"
)

var (
	executeNoConfirm bool
	executeEIP1559   bool
	executeWait      int
)

var executeCmd = &cobra.Command{
	Use:   "execute <amount> <source-token> to <dest-token>",
	Short: "Fetch a quote and execute its transaction",
	Long: `Fetch a fresh quote and sign/send its transaction through the configured
EVM RPC endpoint. Requires WHEELX_RPC_URL and WHEELX_PRIVATE_KEY.

If the quote requires an ERC-20 approval, the command stops and prints the
required allowance instead of sending.

Examples:
  wheelx execute 1.5 USDC to USDT --from-chain 1 --to-chain 1 --recipient 0x123...
  wheelx execute 0.5 ETH to USDC --from-chain 1 --to-chain 1 --recipient 0x123... --eip1559 --yes`,
	Args: cobra.MinimumNArgs(1),
	Run:  runExecute,
}

func init() {
	rootCmd.AddCommand(executeCmd)

	executeCmd.Flags().IntVar(&quoteFromChain, "from-chain", 1, "Source chain ID")
	executeCmd.Flags().IntVar(&quoteToChain, "to-chain", 1, "Destination chain ID")
	executeCmd.Flags().StringVar(&quoteRecipient, "recipient", "", "Recipient address (REQUIRED)")
	executeCmd.Flags().StringVar(&quoteSender, "sender", "", "Sender address (defaults to the recipient)")
	executeCmd.Flags().IntVar(&quoteSlippage, "slippage", -1, "Slippage tolerance in basis points")
	executeCmd.Flags().IntVar(&quoteDecimals, "decimals", -1, "Decimals of the source token (REQUIRED when it is given by address)")
	executeCmd.Flags().BoolVarP(&executeNoConfirm, "yes", "y", false, "Skip confirmation prompt")
	executeCmd.Flags().BoolVar(&executeEIP1559, "eip1559", false, "Send an EIP-1559 transaction instead of legacy")
	executeCmd.Flags().IntVar(&executeWait, "wait", 300, "Seconds to wait for the receipt")
}

func runExecute(cmd *cobra.Command, args []string) {
	req, err := buildQuoteRequest(args)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		printError(err)
		os.Exit(1)
	}
	if err := cfg.RequireExecutor(); err != nil {
		printError(err)
		os.Exit(1)
	}

	ctx := context.Background()
	apiClient := client.New(cfg.BaseURL, client.WithTimeout(cfg.HTTPTimeout))

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " Fetching quote..."
	s.Start()
	quote, err := apiClient.GetQuote(ctx, *req)
	s.Stop()

	if err != nil {
		printError(err)
		os.Exit(1)
	}

	displayQuote(quote)

	if quote.Approve != nil {
		color.Yellow("This swap needs an ERC-20 allowance before it can execute.")
		fmt.Printf("Grant spender %s an allowance of %d on token %s, then re-run.\n\n",
			quote.Approve.Spender, quote.Approve.Amount, quote.Approve.Token)
		os.Exit(1)
	}

	if !executeNoConfirm && !confirm("Send this transaction?") {
		printSuccess("Aborted.")
		return
	}

	exec, err := executor.New(cfg.RPCUrl)
	if err != nil {
		printError(err)
		os.Exit(1)
	}
	defer exec.Close()

	from := common.HexToAddress(req.FromAddress)

	var tx *ethtypes.Transaction
	if executeEIP1559 {
		tx, err = exec.BuildDynamicFeeTransaction(ctx, quote.Tx, from)
	} else {
		tx, err = exec.BuildTransaction(ctx, quote.Tx, from)
	}
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	txHash, err := exec.SignAndSend(ctx, tx, cfg.PrivateKey)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	fmt.Printf("\nTransaction sent: %s\n", color.CyanString(txHash.Hex()))

	s = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " Waiting for confirmation..."
	s.Start()

	waitCtx, cancel := context.WithTimeout(ctx, time.Duration(executeWait)*time.Second)
	defer cancel()
	receipt, err := exec.WaitMined(waitCtx, txHash)
	s.Stop()

	if err != nil {
		printError(fmt.Errorf("transaction not confirmed yet: %w", err))
		os.Exit(1)
	}

	printSuccess(fmt.Sprintf("Transaction confirmed in block %d", receipt.BlockNumber))
	fmt.Printf("Track the order with: wheelx status %s\n\n", quote.RequestID)
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
