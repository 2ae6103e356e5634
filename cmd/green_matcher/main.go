// Package main provides the entry point for the green project matcher.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "green_matcher",
	Short: "Green Project-Investor Matcher",
	Long:  "Green Project-Investor Matcher ranks green investment projects against investor sector, funding, and ESG criteria, and serves the results over a REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
