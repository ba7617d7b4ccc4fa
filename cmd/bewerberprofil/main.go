// Package main provides the entry point for the candidate profile generator CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bewerberprofil",
	Short: "Candidate profile generator for staffing agencies",
	Long:  "Bewerberprofil extracts structured candidate profiles from German résumés using entity recognition, summarization and rule-based heuristics, and renders them into the fixed agency document layout.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
