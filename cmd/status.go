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
	"wheelx-mcp/pkg/types"
)

var (
	watchStatus   bool
	watchInterval int
)

var statusCmd = &cobra.Command{
	Use:   "status <request-id>",
	Short: "Check the status of an order",
	Long: `Check the status of a swap/bridge order by the request ID returned with
its quote.

Examples:
  wheelx status 7f3a9c...
  wheelx status 7f3a9c... --watch
  wheelx status 7f3a9c... --watch --interval 10`,
	Args: cobra.ExactArgs(1),
	Run:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().BoolVarP(&watchStatus, "watch", "w", false, "Watch status updates continuously")
	statusCmd.Flags().IntVar(&watchInterval, "interval", 5, "Polling interval in seconds (when watching)")
}

func runStatus(cmd *cobra.Command, args []string) {
	requestID := args[0]
	jsonOutput, _ := cmd.Flags().GetBool("json")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	// Create client
	apiClient := client.New(cfg.BaseURL, client.WithTimeout(cfg.HTTPTimeout))

	if watchStatus {
		watchOrderStatus(apiClient, requestID, jsonOutput)
	} else {
		checkOrderStatus(apiClient, requestID, jsonOutput)
	}
}

func checkOrderStatus(apiClient *client.WheelXClient, requestID string, jsonOutput bool) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	if !jsonOutput {
		s.Suffix = " Checking order status..."
		s.Start()
	}

	order, err := apiClient.GetOrderStatus(context.Background(), requestID)
	if !jsonOutput {
		s.Stop()
	}

	if err != nil {
		printError(err)
		os.Exit(1)
	}

	if jsonOutput {
		jsonData, _ := json.MarshalIndent(order, "", "  ")
		fmt.Println(string(jsonData))
	} else {
		displayOrder(order, requestID)
	}
}

func watchOrderStatus(apiClient *client.WheelXClient, requestID string, jsonOutput bool) {
	if jsonOutput {
		fmt.Println(`{"error": "watch mode not supported with JSON output"}`)
		os.Exit(1)
	}

	fmt.Printf("\nWatching order status (Request ID: %s)\n", color.CyanString(requestID))
	fmt.Printf("Checking every %d seconds. Press Ctrl+C to stop.\n\n", watchInterval)

	ticker := time.NewTicker(time.Duration(watchInterval) * time.Second)
	defer ticker.Stop()

	// Check immediately first
	checkAndDisplayOrder(apiClient, requestID)

	// Then check periodically
	for range ticker.C {
		checkAndDisplayOrder(apiClient, requestID)
	}
}

func checkAndDisplayOrder(apiClient *client.WheelXClient, requestID string) {
	order, err := apiClient.GetOrderStatus(context.Background(), requestID)
	if err != nil {
		color.Red("Error: %v", err)
		return
	}

	displayOrder(order, requestID)
}

func displayOrder(order *types.OrderStatus, requestID string) {
	fmt.Println("\n" + strings.Repeat("=", 70))
	color.Green("                        ORDER STATUS")
	fmt.Println(strings.Repeat("=", 70))

	fmt.Printf("\n  Request ID:      %s\n", color.CyanString(requestID))
	fmt.Printf("  Order ID:        %s\n", order.OrderID)
	fmt.Printf("  Status:          %s\n", coloredOrderStatus(order.Status))
	fmt.Printf("  Route:           chain %d -> chain %d\n", order.FromChain, order.ToChain)
	fmt.Printf("  Amount In:       %s %s\n", order.FromAmount, tokenSymbol(order.FromTokenInfo))
	fmt.Printf("  Amount Out:      %s %s\n", order.ToAmount, tokenSymbol(order.ToTokenInfo))

	if order.OpenTxHash != "" {
		fmt.Printf("  Open Tx:         %s (block %d)\n", color.HiBlackString(order.OpenTxHash), order.OpenBlock)
	}
	if order.FillTxHash != "" {
		fmt.Printf("  Fill Tx:         %s (block %d)\n", color.HiBlackString(order.FillTxHash), order.FillBlock)
	}
	if order.Points != "" {
		fmt.Printf("  Points:          %s\n", order.Points)
	}

	fmt.Println("\n" + strings.Repeat("=", 70) + "\n")
}

func tokenSymbol(info *types.TokenInfo) string {
	if info == nil {
		return ""
	}
	return info.Symbol
}

func coloredOrderStatus(status string) string {
	switch strings.ToLower(status) {
	case "filled", "completed":
		return color.GreenString(strings.ToUpper(status))
	case "open", "pending":
		return color.YellowString(strings.ToUpper(status))
	case "failed", "refunded", "expired":
		return color.RedString(strings.ToUpper(status))
	default:
		return strings.ToUpper(status)
	}
}
