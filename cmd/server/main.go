package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "morafo",
	Short: "MorafoAI poultry and rabbit farming assistant",
	Long: `MorafoAI serves the bilingual (English / Sesotho) farmer assistant API:
chat, photo diagnosis, market prices and listings, feed suppliers,
weather risk and insights.

Running without a subcommand starts the server.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, suppliersCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
