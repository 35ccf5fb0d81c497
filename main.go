package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"wheelx-mcp/cmd"
)

func main() {
	// A .env file is optional; read-only commands need no secrets.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
