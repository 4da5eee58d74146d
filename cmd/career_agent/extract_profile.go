package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/career-advisor/internal/observability"
	"github.com/jonathan/career-advisor/internal/profile"
	"github.com/jonathan/career-advisor/internal/types"
	"github.com/spf13/cobra"
)

var extractProfileCmd = &cobra.Command{
	Use:   "extract-profile",
	Short: "Derive a CareerProfile from quiz answers",
	Long:  "Read a JSON object of quiz answers keyed by question id and print the derived CareerProfile as JSON.",
	RunE:  runExtractProfile,
}

var (
	profileAnswersFile string
	profileVerbose     bool
)

func init() {
	extractProfileCmd.Flags().StringVarP(&profileAnswersFile, "answers", "a", "", "Path to quiz answers JSON file (required)")
	extractProfileCmd.Flags().BoolVarP(&profileVerbose, "verbose", "v", false, "Print a human readable summary instead of JSON")
	_ = extractProfileCmd.MarkFlagRequired("answers")

	rootCmd.AddCommand(extractProfileCmd)
}

func runExtractProfile(cmd *cobra.Command, _ []string) error {
	data, err := os.ReadFile(profileAnswersFile)
	if err != nil {
		return fmt.Errorf("failed to read answers file: %w", err)
	}

	var answers types.QuizAnswers
	if err := json.Unmarshal(data, &answers); err != nil {
		return fmt.Errorf("failed to parse answers JSON: %w", err)
	}

	p := profile.ExtractProfile(answers)

	if profileVerbose {
		observability.NewPrinter(cmd.OutOrStdout()).PrintCareerProfile(&p)
		return nil
	}
	return writeJSON(cmd, p)
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}
