package main

import (
	"fmt"
	"os"

	"resume-builder/internal/usecase"
	"resume-builder/templates"

	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the A4 HTML preview of a résumé",
	RunE:  runPreview,
}

var (
	previewFile string
	previewOut  string
	previewLang string
)

func init() {
	previewCmd.Flags().StringVarP(&previewFile, "file", "f", "", "Path to résumé JSON file (required)")
	previewCmd.Flags().StringVarP(&previewOut, "out", "o", "preview.html", "Path to output HTML file")
	previewCmd.Flags().StringVarP(&previewLang, "lang", "l", "en", "Label language (en, pt)")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, _ []string) error {
	r, err := loadResume(previewFile)
	if err != nil {
		return err
	}
	p := usecase.NewPreviewer(templates.NewEngine(), templates.Stylesheet())
	html, err := p.RenderHTML(usecase.BuildPreview(r, usecase.LabelsFor(previewLang)))
	if err != nil {
		return err
	}
	if err := os.WriteFile(previewOut, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", previewOut, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", previewOut)
	return nil
}
