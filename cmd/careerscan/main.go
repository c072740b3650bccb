// Package main provides the entry point for the careerscan document scanner.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "careerscan",
	Short: "Career document scanner and profile builder",
	Long:  "careerscan watches a folder of career documents (resumes, cover letters, application notes), extracts structured career facts through a language-understanding service, and reconciles them into a single persisted profile.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
