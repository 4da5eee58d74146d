// Package profile derives a career-interest profile from quiz answers.
package profile

import "github.com/jonathan/career-advisor/internal/types"

// Quiz question ids that contribute to the profile.
const (
	QuestionInterests  = 1
	QuestionWorkStyle  = 2
	QuestionGoals      = 3
	QuestionIndustry   = 4
	QuestionSkills     = 7
	QuestionExperience = 10
)

// interestTags maps a question 1 answer code to the interest tags it adds.
var interestTags = map[string][]string{
	"analytical":      {"Problem Solving", "Analysis"},
	"creative":        {"Creative Work", "Design"},
	"people-oriented": {"People Management", "Communication"},
	"leadership":      {"Leadership", "Management"},
}

// skillTags maps a question 7 answer code to the skill tags it adds.
var skillTags = map[string][]string{
	"technical":         {"Technical Skills", "Programming"},
	"communication":     {"Communication", "Public Speaking"},
	"leadership-skills": {"Leadership", "Team Management"},
	"creative-skills":   {"Creativity", "Design Thinking"},
}

// goalStatements maps a question 3 answer code to a career goal sentence.
var goalStatements = map[string]string{
	"financial":   "Financial stability and high earning potential",
	"impact":      "Making a positive impact on society",
	"growth":      "Continuous learning and professional growth",
	"recognition": "Recognition and career advancement",
}

// ExtractProfile maps quiz answers onto a CareerProfile.
// It never fails: unknown question ids and unrecognized answer codes are ignored.
// Answers are visited in ascending question id so the result is deterministic;
// list fields append and scalar fields keep the last value seen.
func ExtractProfile(answers types.QuizAnswers) types.CareerProfile {
	p := types.NewCareerProfile()

	for _, entry := range answers.Entries() {
		switch entry.QuestionID {
		case QuestionInterests:
			p.Interests = append(p.Interests, interestTags[entry.Answer]...)
		case QuestionSkills:
			p.Skills = append(p.Skills, skillTags[entry.Answer]...)
		case QuestionGoals:
			p.CareerGoals = goalStatements[entry.Answer]
		case QuestionWorkStyle:
			p.WorkStyle = entry.Answer
		case QuestionIndustry:
			p.Industry = entry.Answer
		case QuestionExperience:
			p.Experience = entry.Answer
		}
	}

	return p
}
