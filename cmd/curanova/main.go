// Package main provides the entry point for the Curanova site server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "curanova",
	Short: "Curanova site HTTP server",
	Long:  "Curanova serves the marketing-site content API and the careers portal: jobs, candidate accounts, applications, referrals, and HR review.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
