// Package analysis splits a generated career analysis into summary, recommendations and next steps.
package analysis

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/career-advisor/internal/types"
)

// Section headers of the analysis template, in the order they must appear.
const (
	HeaderProfile         = "**CAREER PROFILE ANALYSIS:**"
	HeaderRecommendations = "**TOP 3 CAREER RECOMMENDATIONS:**"
	HeaderNextSteps       = "**NEXT STEPS:**"
)

var headers = []string{HeaderProfile, HeaderRecommendations, HeaderNextSteps}

const (
	profileSection = iota
	recommendationsSection
	nextStepsSection
)

// recommendationLine matches "<n>. <title> - <description> Match: <pct>%".
var recommendationLine = regexp.MustCompile(`^\s*\d+\.\s+(.+?)\s+-\s+(.+?)\s+Match:\s*(\d{1,3})%\s*$`)

// bulletPrefix is a single leading list marker.
var bulletPrefix = regexp.MustCompile(`^\s*[-•]`)

// ParseAnalysis extracts a StructuredAnalysis from model output following the
// three-header template. It is total: a missing header leaves its field empty.
func ParseAnalysis(text string) types.StructuredAnalysis {
	result := types.NewStructuredAnalysis()
	b := locate(text)

	if summary, ok := b.between(text, profileSection, recommendationsSection); ok {
		result.Summary = strings.TrimSpace(summary)
	}

	if recs, ok := b.from(text, recommendationsSection, nextStepsSection); ok {
		result.Recommendations = parseRecommendations(recs)
	}

	if steps, ok := b.from(text, nextStepsSection, -1); ok {
		result.NextSteps = parseNextSteps(steps)
	}

	return result
}

// bounds holds the first offset of every header, or -1 when absent.
type bounds []int

func locate(text string) bounds {
	b := make(bounds, len(headers))
	for i, h := range headers {
		b[i] = strings.Index(text, h)
	}
	return b
}

// between returns the text strictly between header start and header end.
// Both headers must be present and in order.
func (b bounds) between(text string, start, end int) (string, bool) {
	if b[start] < 0 || b[end] < 0 {
		return "", false
	}
	from := b[start] + len(headers[start])
	if b[end] < from {
		return "", false
	}
	return text[from:b[end]], true
}

// from returns the text after header start, up to header end when it is present
// and follows start, otherwise up to the end of text. end < 0 means end of text.
func (b bounds) from(text string, start, end int) (string, bool) {
	if b[start] < 0 {
		return "", false
	}
	from := b[start] + len(headers[start])
	if end >= 0 && b[end] >= from {
		return text[from:b[end]], true
	}
	return text[from:], true
}

func parseRecommendations(section string) []types.Recommendation {
	recs := []types.Recommendation{}
	for _, line := range strings.Split(section, "\n") {
		rec, ok := parseRecommendation(line)
		if ok {
			recs = append(recs, rec)
		}
	}
	return recs
}

func parseRecommendation(line string) (types.Recommendation, bool) {
	m := recommendationLine.FindStringSubmatch(line)
	if m == nil {
		return types.Recommendation{}, false
	}
	match, err := strconv.Atoi(m[3])
	if err != nil || match > 100 {
		return types.Recommendation{}, false
	}
	title := strings.TrimSpace(strings.Trim(strings.TrimSpace(m[1]), "*"))
	if title == "" {
		return types.Recommendation{}, false
	}
	return types.Recommendation{
		Title:       title,
		Description: strings.TrimSpace(m[2]),
		Match:       match,
	}, true
}

// parseNextSteps keeps blank lines between steps; only the section as a whole is trimmed.
func parseNextSteps(section string) []string {
	section = strings.TrimSpace(section)
	if section == "" {
		return []string{}
	}
	lines := strings.Split(section, "\n")
	steps := make([]string, 0, len(lines))
	for _, line := range lines {
		steps = append(steps, strings.TrimSpace(bulletPrefix.ReplaceAllString(line, "")))
	}
	return steps
}
