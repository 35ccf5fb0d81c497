package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"wheelx-mcp/pkg/chains"
	"wheelx-mcp/pkg/units"
)

var gasLimit uint64

var gasCmd = &cobra.Command{
	Use:   "gas <chain-id>",
	Short: "Estimate transaction gas cost on a chain",
	Long: `Produce a rough gas-cost estimate from a static per-chain price table.
Unknown chain ids fall back to 10 gwei at $2000.

Examples:
  wheelx gas 1
  wheelx gas 137 --gas-limit 65000`,
	Args: cobra.ExactArgs(1),
	Run:  runGas,
}

func init() {
	rootCmd.AddCommand(gasCmd)

	gasCmd.Flags().Uint64Var(&gasLimit, "gas-limit", units.DefaultGasLimit, "Gas limit for the transaction")
}

func runGas(cmd *cobra.Command, args []string) {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	chainID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		printError(fmt.Errorf("invalid chain id %q", args[0]))
		os.Exit(1)
	}

	estimate := units.EstimateGasCost(chainID, gasLimit)

	if jsonOutput {
		jsonData, _ := json.MarshalIndent(estimate, "", "  ")
		fmt.Println(string(jsonData))
		return
	}

	chainName := "unknown chain"
	if c, ok := chains.Lookup(int(chainID)); ok {
		chainName = c.Name
	}

	fmt.Println("\n" + strings.Repeat("=", 70))
	color.Green("                       GAS ESTIMATE")
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("\n  Chain:          %s (%d)\n", chainName, estimate.ChainID)
	fmt.Printf("  Gas Limit:      %d\n", estimate.GasLimit)
	fmt.Printf("  Gas Price:      %g gwei\n", estimate.GasPriceGwei)
	fmt.Printf("  Total Gas:      %g gwei (%g native)\n", estimate.TotalGasGwei, estimate.TotalGasNative)
	fmt.Printf("  Estimated Cost: %s\n", color.YellowString("$%.2f", estimate.EstimatedUSDCost))
	fmt.Printf("\n  %s\n", color.HiBlackString(estimate.Note))
	fmt.Println("\n" + strings.Repeat("=", 70) + "\n")
}
