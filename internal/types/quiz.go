// Package types provides type definitions for structured data used throughout the career advisor.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// QuizAnswers maps a quiz question id to the answer code the user selected.
// Keys are kept as received; use Entries for a deterministic, parsed view.
type QuizAnswers map[string]string

// QuizEntry is a single parsed quiz answer
type QuizEntry struct {
	QuestionID int
	Key        string
	Answer     string
}

// UnmarshalJSON accepts string and numeric answer values.
// Any other JSON value (null, bool, object, array) is dropped.
func (q *QuizAnswers) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("answers must be a JSON object: %w", err)
	}

	out := make(QuizAnswers, len(raw))
	for key, value := range raw {
		value = bytes.TrimSpace(value)
		if len(value) == 0 {
			continue
		}
		switch value[0] {
		case '"':
			var s string
			if err := json.Unmarshal(value, &s); err != nil {
				return fmt.Errorf("answer %q: %w", key, err)
			}
			out[key] = s
		case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			var n json.Number
			if err := json.Unmarshal(value, &n); err != nil {
				return fmt.Errorf("answer %q: %w", key, err)
			}
			out[key] = n.String()
		}
	}

	*q = out
	return nil
}

// Entries returns the answers whose key is a positive integer question id,
// ordered by id and then by raw key so that "1" and "01" have a stable order.
func (q QuizAnswers) Entries() []QuizEntry {
	entries := make([]QuizEntry, 0, len(q))
	for key, answer := range q {
		id, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil || id <= 0 {
			continue
		}
		entries = append(entries, QuizEntry{QuestionID: id, Key: key, Answer: answer})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].QuestionID != entries[j].QuestionID {
			return entries[i].QuestionID < entries[j].QuestionID
		}
		return entries[i].Key < entries[j].Key
	})
	return entries
}

// CareerProfile is the normalized interest profile derived from quiz answers
type CareerProfile struct {
	Interests   []string `json:"interests"`
	Skills      []string `json:"skills"`
	WorkStyle   string   `json:"workStyle"`
	CareerGoals string   `json:"careerGoals"`
	Industry    string   `json:"industry"`
	Experience  string   `json:"experience"`
}

// NewCareerProfile returns an empty profile whose lists encode as [] rather than null.
func NewCareerProfile() CareerProfile {
	return CareerProfile{
		Interests: []string{},
		Skills:    []string{},
	}
}

// IsEmpty reports whether no quiz answer contributed to the profile.
func (p CareerProfile) IsEmpty() bool {
	return len(p.Interests) == 0 && len(p.Skills) == 0 &&
		p.WorkStyle == "" && p.CareerGoals == "" && p.Industry == "" && p.Experience == ""
}
