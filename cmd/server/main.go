// Package main is the entry point for the brood API server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "brood-api",
	Short: "Brood API server",
	Long:  `Brood API serves exact breeding probabilities and the species catalog over a JSON REST interface.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(seedCmd)
}
