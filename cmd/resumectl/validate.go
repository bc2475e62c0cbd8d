package main

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"resume-builder/internal/model"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a résumé document",
	Long:  "Checks a résumé JSON document against the schema and the field rules, printing every problem found.",
	RunE:  runValidate,
}

var validateFile string

// errValidationFailed makes the command exit non-zero after printing.
var errValidationFailed = errors.New("validation failed")

func init() {
	validateCmd.Flags().StringVarP(&validateFile, "file", "f", "", "Path to résumé JSON file (required)")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	r, err := loadResume(validateFile)
	var se *model.SchemaError
	if errors.As(err, &se) {
		fmt.Fprintln(out, "Validation failed:")
		for _, p := range se.Problems {
			fmt.Fprintf(out, "  - %s\n", p)
		}
		return errValidationFailed
	}
	if err != nil {
		return err
	}

	rep := model.ValidateResume(r)
	if rep.Valid() {
		fmt.Fprintln(out, "Validation passed")
		return nil
	}
	fmt.Fprintln(out, "Validation failed:")
	printProblems(out, "personalInfo", rep.PersonalInfo)
	printProblems(out, "experience", rep.Experience)
	printProblems(out, "education", rep.Education)
	return errValidationFailed
}

func printProblems(w io.Writer, section string, problems map[string]string) {
	keys := make([]string, 0, len(problems))
	for k := range problems {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "  - %s.%s: %s\n", section, k, problems[k])
	}
}
