// Package main provides the entry point for the resume workspace server and tools.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_workspace",
	Short: "Resume Workspace HTTP API Server",
	Long:  "Resume Workspace manages a collection of resume documents with fine-grained editing, import/export, and markdown rendering via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
