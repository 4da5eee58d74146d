// Package observability provides Prometheus metrics for the server and
// formatted output for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/career-advisor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCareerProfile outputs the profile derived from quiz answers.
func (p *Printer) PrintCareerProfile(profile *types.CareerProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Work style:  %s\n", orDash(profile.WorkStyle)))
	sb.WriteString(fmt.Sprintf("Goals:       %s\n", orDash(profile.CareerGoals)))
	sb.WriteString(fmt.Sprintf("Industry:    %s\n", orDash(profile.Industry)))
	sb.WriteString(fmt.Sprintf("Experience:  %s\n", orDash(profile.Experience)))
	writeList(&sb, "Interests", profile.Interests)
	writeList(&sb, "Skills", profile.Skills)

	p.printBox("CAREER PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAnalysis outputs a structured analysis with match percentages.
func (p *Printer) PrintAnalysis(analysis *types.StructuredAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	if analysis.Summary != "" {
		sb.WriteString(analysis.Summary)
		sb.WriteString("\n\n")
	}

	if len(analysis.Recommendations) > 0 {
		sb.WriteString("Recommendations:\n")
		for i, rec := range analysis.Recommendations {
			sb.WriteString(fmt.Sprintf("#%d  %s (%d%%)\n", i+1, rec.Title, rec.Match))
			sb.WriteString(fmt.Sprintf("    %s\n", rec.Description))
		}
		sb.WriteString("\n")
	} else {
		sb.WriteString("No recommendations parsed\n\n")
	}

	writeList(&sb, "Next steps", analysis.NextSteps)

	p.printBox("CAREER ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintIndustryInsights outputs one industry overview.
func (p *Printer) PrintIndustryInsights(insights *types.IndustryInsights) {
	if insights == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Outlook:  %s\n", insights.GrowthOutlook))
	sb.WriteString(fmt.Sprintf("Salary:   %s\n", insights.SalaryRange))
	writeList(&sb, "Trends", insights.Trends)
	writeList(&sb, "In-demand skills", insights.InDemandSkills)

	p.printBox(strings.ToUpper(insights.Industry)+" INSIGHTS", strings.TrimSuffix(sb.String(), "\n"))
}

func writeList(sb *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(label + ":\n")
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
