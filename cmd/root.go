package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the CLI and MCP server version.
const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "wheelx",
	Short: "A CLI and MCP server for WheelX cross-chain swaps",
	Long: `wheelx is a command-line tool for the WheelX swap/bridge API. It fetches
quotes, compares slippage settings, tracks order status, and can expose the
same operations to MCP hosts as tools and resources.

Examples:
  wheelx quote 1.5 USDC to USDT --from-chain 1 --to-chain 1 --recipient 0x123...
  wheelx compare 1.5 USDC to USDT --from-chain 1 --to-chain 1 --recipient 0x123...
  wheelx status <request-id>
  wheelx chains
  wheelx gas 1 --gas-limit 21000
  wheelx serve`,
	Version: Version,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Output in JSON format")
}

func printError(err error) {
	fmt.Printf("\nError: %v\n\n", err)
}

func printSuccess(message string) {
	fmt.Printf("\n%s\n\n", message)
}
