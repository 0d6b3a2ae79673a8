package engine

import (
	"time"

	"assessment-service/internal/models"
	"assessment-service/internal/scoring"
)

// needsReviewMinAttempts matches the weak-area eligibility guard: below
// this many attempts the accuracy signal is noise.
const needsReviewMinAttempts = 3

// ApplyTopicResult folds one graded answer into the long-lived per-topic
// aggregate as an online average. TopicPerformance is never reset here;
// reset is an explicit learner action at the service layer.
func ApplyTopicResult(tp *models.TopicPerformance, isCorrect bool, timeTaken float64, now time.Time) {
	tp.Attempted++
	if isCorrect {
		tp.Correct++
	}

	n := float64(tp.Attempted)
	tp.AverageTimeSeconds = (tp.AverageTimeSeconds*(n-1) + timeTaken) / n
	tp.Accuracy = scoring.RoundPercent(tp.Correct, tp.Attempted)
	tp.LastAttempted = now
	tp.NeedsReview = tp.Attempted >= needsReviewMinAttempts && tp.Accuracy < 60
	tp.RecommendedDifficulty = recommendDifficulty(tp.Accuracy)
}

// recommendDifficulty maps topic accuracy to the difficulty a learner
// should target next in that topic.
func recommendDifficulty(accuracy float64) int {
	switch {
	case accuracy >= 90:
		return 5
	case accuracy >= 75:
		return 4
	case accuracy >= 60:
		return 3
	case accuracy >= 40:
		return 2
	default:
		return 1
	}
}
