// Package main implements resumectl, a command line companion to the résumé
// builder server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "resumectl",
	Short:        "Validate, preview, export and improve résumé documents",
	Long:         "resumectl works on résumé JSON documents: it validates them, renders the A4 preview, exports PDF and sends text to a running improvement service.",
	SilenceUsage: true,
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
