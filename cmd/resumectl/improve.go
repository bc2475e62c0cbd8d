package main

import (
	"fmt"
	"net/http"

	ai "resume-builder/pkg/ai"

	"github.com/spf13/cobra"
)

var improveCmd = &cobra.Command{
	Use:   "improve",
	Short: "Improve a piece of résumé text through a running server",
	RunE:  runImprove,
}

var (
	improveText      string
	improveFieldType string
	improveServer    string
)

func init() {
	improveCmd.Flags().StringVarP(&improveText, "text", "t", "", "Text to improve (required)")
	improveCmd.Flags().StringVar(&improveFieldType, "field-type", "", "Field type: summary, experience, education or skills")
	improveCmd.Flags().StringVar(&improveServer, "server", "", "Server base URL (default $IMPROVE_SERVICE_URL or http://localhost:3000)")
	rootCmd.AddCommand(improveCmd)
}

func runImprove(cmd *cobra.Command, _ []string) error {
	ft, err := ai.ParseFieldType(improveFieldType)
	if err != nil {
		return err
	}
	client := ai.NewClient()
	if improveServer != "" {
		client = ai.NewClientWithHTTP(improveServer, &http.Client{Timeout: ai.DefaultTimeout})
	}

	out, err := client.Improve(cmd.Context(), improveText, ft)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
