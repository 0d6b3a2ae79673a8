package engine

import (
	"time"

	"assessment-service/internal/models"
)

const (
	// fastAnswerSeconds is the cutoff under which a correct answer is
	// considered fast enough to nudge the empirical difficulty down.
	fastAnswerSeconds = 30

	difficultyFloor    = 1.0
	difficultyCeiling  = 5.0
	difficultyDecrease = 0.1
	difficultyIncrease = 0.2
)

// ApplyResult folds one graded answer into the learner's statistics for a
// question: counters, running mean answer time, and the empirical
// difficulty drift that feeds future selection. Called once per graded
// answer.
func ApplyResult(st *models.QuestionStats, isCorrect bool, timeTaken float64, now time.Time) {
	st.TimesAsked++
	if isCorrect {
		st.TimesCorrect++
	}

	n := float64(st.TimesAsked)
	st.AverageTimeSeconds = (st.AverageTimeSeconds*(n-1) + timeTaken) / n
	st.LastAsked = now

	switch {
	case isCorrect && timeTaken < fastAnswerSeconds:
		st.UserDifficulty -= difficultyDecrease
		if st.UserDifficulty < difficultyFloor {
			st.UserDifficulty = difficultyFloor
		}
	case !isCorrect:
		st.UserDifficulty += difficultyIncrease
		if st.UserDifficulty > difficultyCeiling {
			st.UserDifficulty = difficultyCeiling
		}
	}
}
