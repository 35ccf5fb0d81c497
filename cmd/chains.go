package cmd

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"wheelx-mcp/pkg/chains"
)

var tokensChain int

var chainsCmd = &cobra.Command{
	Use:   "chains",
	Short: "List supported blockchain networks",
	Run:   runChains,
}

var tokensCmd = &cobra.Command{
	Use:     "tokens",
	Aliases: []string{"list-tokens", "ls"},
	Short:   "List popular tokens on a chain",
	Long: `List the popular tokens known for a chain. Unrecognized chain ids yield
an empty list.

Examples:
  wheelx tokens --chain 1
  wheelx tokens --chain 56 --json`,
	Run: runTokens,
}

func init() {
	rootCmd.AddCommand(chainsCmd)
	rootCmd.AddCommand(tokensCmd)

	tokensCmd.Flags().IntVar(&tokensChain, "chain", 1, "Chain ID to list tokens for")
}

func runChains(cmd *cobra.Command, args []string) {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	supported := chains.Supported()

	if jsonOutput {
		jsonData, _ := json.MarshalIndent(supported, "", "  ")
		fmt.Println(string(jsonData))
		return
	}

	ids := make([]int, 0, len(supported))
	for id := range supported {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	fmt.Println("\n" + strings.Repeat("=", 70))
	color.Green("                      SUPPORTED CHAINS")
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("\n  %-8s %-22s %-8s %s\n", "ID", "Name", "Native", "Explorer")
	for _, id := range ids {
		c := supported[id]
		fmt.Printf("  %-8d %-22s %-8s %s\n", c.ID, c.Name, c.NativeCurrency, color.HiBlackString(c.Explorer))
	}
	fmt.Println("\n" + strings.Repeat("=", 70) + "\n")
}

func runTokens(cmd *cobra.Command, args []string) {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	tokens := chains.PopularTokens(tokensChain)

	if jsonOutput {
		jsonData, _ := json.MarshalIndent(tokens, "", "  ")
		fmt.Println(string(jsonData))
		return
	}

	if len(tokens) == 0 {
		fmt.Printf("\nNo known tokens for chain %d\n\n", tokensChain)
		return
	}

	fmt.Println("\n" + strings.Repeat("=", 70))
	color.Green("                  POPULAR TOKENS ON CHAIN %d", tokensChain)
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("\n  %-8s %-10s %s\n", "Symbol", "Decimals", "Address")
	for _, t := range tokens {
		fmt.Printf("  %-8s %-10d %s\n", t.Symbol, t.Decimals, color.HiBlackString(t.Address))
	}
	fmt.Println("\n" + strings.Repeat("=", 70) + "\n")
}
