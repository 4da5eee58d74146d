package analysis

import (
	"fmt"
	"strings"

	"github.com/jonathan/career-advisor/internal/types"
)

// Render writes an analysis back out in the three-header template that ParseAnalysis reads.
func Render(a types.StructuredAnalysis) string {
	var sb strings.Builder

	sb.WriteString(HeaderProfile)
	sb.WriteString("\n")
	sb.WriteString(a.Summary)
	sb.WriteString("\n\n")

	sb.WriteString(HeaderRecommendations)
	sb.WriteString("\n")
	for i, rec := range a.Recommendations {
		sb.WriteString(fmt.Sprintf("%d. %s - %s Match: %d%%\n", i+1, rec.Title, rec.Description, rec.Match))
	}
	sb.WriteString("\n")

	sb.WriteString(HeaderNextSteps)
	sb.WriteString("\n")
	for _, step := range a.NextSteps {
		if step == "" {
			sb.WriteString("\n")
			continue
		}
		sb.WriteString("- ")
		sb.WriteString(step)
		sb.WriteString("\n")
	}

	return sb.String()
}
