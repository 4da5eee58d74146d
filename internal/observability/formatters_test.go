package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/career-advisor/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintCareerProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCareerProfile(&types.CareerProfile{
		Interests: []string{"Problem Solving", "Analysis"},
		Skills:    []string{"Technical Skills"},
		Industry:  "technology",
	})
	output := buf.String()

	assert.Contains(t, output, "CAREER PROFILE")
	assert.Contains(t, output, "technology")
	assert.Contains(t, output, "• Problem Solving")
	assert.Contains(t, output, "Work style:  -")
}

func TestPrintCareerProfile_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintCareerProfile(nil)

	assert.Empty(t, buf.String())
}

func TestPrintAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalysis(&types.StructuredAnalysis{
		Summary: "Analytical and curious.",
		Recommendations: []types.Recommendation{
			{Title: "Data Scientist", Description: "Analyzes data.", Match: 85},
		},
		NextSteps: []string{"a", "b", "c", "d", "e", "f", "g"},
	})
	output := buf.String()

	assert.Contains(t, output, "CAREER ANALYSIS")
	assert.Contains(t, output, "#1  Data Scientist (85%)")
	assert.Contains(t, output, "... and 2 more")
}

func TestPrintAnalysis_NoRecommendations(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	analysis := types.NewStructuredAnalysis()
	p.PrintAnalysis(&analysis)

	assert.Contains(t, buf.String(), "No recommendations parsed")
}

func TestPrintIndustryInsights(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintIndustryInsights(&types.IndustryInsights{
		Industry:       "Fintech",
		GrowthOutlook:  "growing",
		SalaryRange:    "$90k-$160k",
		InDemandSkills: []string{"Go", "Risk modelling"},
	})
	output := buf.String()

	assert.Contains(t, output, "FINTECH INSIGHTS")
	assert.Contains(t, output, "$90k-$160k")
	assert.Contains(t, output, "• Risk modelling")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("x", 200))

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
	assert.Contains(t, buf.String(), "...")
}
