// Package scoring grades learner answers and aggregates session scores.
// Everything here is pure: same inputs, same outputs, no side effects.
package scoring

import (
	"strings"

	"assessment-service/internal/models"
)

// freeResponseThreshold is the fraction of canonical-answer tokens that
// must appear in the submitted text for a free response to count as
// correct. Deliberately lenient; kept in sync with the test fixtures.
const freeResponseThreshold = 0.5

// Grade applies the format-specific comparator for a question. A format
// mismatch or otherwise malformed value grades as incorrect, never as an
// error: grading always terminates with a boolean.
func Grade(q *models.Question, submitted string) bool {
	submitted = strings.TrimSpace(submitted)
	if submitted == "" {
		return false
	}

	switch q.Format {
	case models.FormatMultipleChoice, models.FormatTrueFalse, models.FormatOrdering:
		return strings.EqualFold(submitted, strings.TrimSpace(q.CorrectAnswer))
	case models.FormatFreeResponse:
		return gradeFreeResponse(q.CorrectAnswer, submitted)
	default:
		return false
	}
}

// gradeFreeResponse is a token-overlap heuristic: correct when at least
// half of the canonical answer's whitespace-delimited tokens appear in the
// submission, matching by substring containment in either direction.
func gradeFreeResponse(canonical, submitted string) bool {
	canonTokens := strings.Fields(strings.ToLower(canonical))
	if len(canonTokens) == 0 {
		return false
	}
	subTokens := strings.Fields(strings.ToLower(submitted))

	matched := 0
	for _, ct := range canonTokens {
		for _, st := range subTokens {
			if strings.Contains(st, ct) || strings.Contains(ct, st) {
				matched++
				break
			}
		}
	}

	return float64(matched)/float64(len(canonTokens)) >= freeResponseThreshold
}
