package main

import (
	"fmt"
	"os"
	"time"

	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"
	"resume-builder/templates"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a résumé to an A4 PDF",
	Long:  "Renders the preview and prints it to PDF with headless Chrome (set CHROME_PATH to pick the binary).",
	RunE:  runExport,
}

var (
	exportFile    string
	exportOut     string
	exportLang    string
	exportTimeout time.Duration
)

func init() {
	exportCmd.Flags().StringVarP(&exportFile, "file", "f", "", "Path to résumé JSON file (required)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", usecase.ArtifactName, "Path to output PDF file")
	exportCmd.Flags().StringVarP(&exportLang, "lang", "l", "en", "Label language (en, pt)")
	exportCmd.Flags().DurationVar(&exportTimeout, "timeout", 60*time.Second, "Render timeout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	r, err := loadResume(exportFile)
	if err != nil {
		return err
	}
	p := usecase.NewPreviewer(templates.NewEngine(), templates.Stylesheet())
	renderer := infra.NewChromedpRenderer(os.Getenv("CHROME_PATH"), exportTimeout)

	a, err := usecase.NewExporter(p, renderer).Export(cmd.Context(), r, exportLang)
	if err != nil {
		return err
	}
	if err := os.WriteFile(exportOut, a.Data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", exportOut, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", exportOut, len(a.Data))
	return nil
}
