// Package main is the entry point for the gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/creature-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "creature-api",
	Short: "Creature battle gRPC server",
	Long:  `creature-api simulates turn-based battles between creatures from pokeapi.co and serves them over gRPC.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
