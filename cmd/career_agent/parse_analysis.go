package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jonathan/career-advisor/internal/analysis"
	"github.com/jonathan/career-advisor/internal/observability"
	"github.com/spf13/cobra"
)

var parseAnalysisCmd = &cobra.Command{
	Use:   "parse-analysis",
	Short: "Split a generated analysis into structured JSON",
	Long:  "Parse model output that follows the three-header analysis template into summary, recommendations and next steps.",
	RunE:  runParseAnalysis,
}

var (
	analysisInputFile string
	analysisRender    bool
	analysisVerbose   bool
)

func init() {
	parseAnalysisCmd.Flags().StringVarP(&analysisInputFile, "in", "i", "", "Path to analysis text file, or - for stdin (required)")
	parseAnalysisCmd.Flags().BoolVar(&analysisRender, "render", false, "Print the parsed analysis back in template form")
	parseAnalysisCmd.Flags().BoolVarP(&analysisVerbose, "verbose", "v", false, "Print a human readable summary instead of JSON")
	_ = parseAnalysisCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(parseAnalysisCmd)
}

func runParseAnalysis(cmd *cobra.Command, _ []string) error {
	if analysisRender && analysisVerbose {
		return fmt.Errorf("cannot use --render with --verbose")
	}

	var (
		data []byte
		err  error
	)
	if analysisInputFile == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(analysisInputFile)
	}
	if err != nil {
		return fmt.Errorf("failed to read analysis input: %w", err)
	}

	parsed := analysis.ParseAnalysis(string(data))

	switch {
	case analysisRender:
		_, err = io.WriteString(cmd.OutOrStdout(), analysis.Render(parsed))
		return err
	case analysisVerbose:
		observability.NewPrinter(cmd.OutOrStdout()).PrintAnalysis(&parsed)
		return nil
	default:
		return writeJSON(cmd, parsed)
	}
}
