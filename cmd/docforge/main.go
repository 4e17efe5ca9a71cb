// Package main provides the entry point for the docforge CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "docforge",
	Short: "Format-agnostic document IR toolkit",
	Long:  "docforge parses heterogeneous source files into one canonical document representation, merges documents across files, and infers entity/relation schemas from their text via an LLM.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
