package models

import "time"

// QuestionStats carries the learner-specific empirical statistics for one
// question. UserDifficulty drifts from the authored difficulty based on the
// learner's answer speed and correctness; rows accumulate and are never
// deleted.
type QuestionStats struct {
	UserID             string    `bson:"user_id" json:"user_id"`
	QuestionID         string    `bson:"question_id" json:"question_id"`
	TimesAsked         int       `bson:"times_asked" json:"times_asked"`
	TimesCorrect       int       `bson:"times_correct" json:"times_correct"`
	AverageTimeSeconds float64   `bson:"average_time_seconds" json:"average_time_seconds"`
	LastAsked          time.Time `bson:"last_asked,omitempty" json:"last_asked,omitempty"`
	UserDifficulty     float64   `bson:"user_difficulty" json:"user_difficulty"`
}

// NewQuestionStats creates the statistics row for a learner's first
// exposure to a question. The empirical difficulty starts at the authored
// value and drifts from there.
func NewQuestionStats(userID string, q *Question) QuestionStats {
	return QuestionStats{
		UserID:         userID,
		QuestionID:     q.ID,
		UserDifficulty: float64(q.Difficulty),
	}
}

// Accuracy returns timesCorrect/timesAsked, and ok=false for an unseen
// question (callers pick their own default).
func (s QuestionStats) Accuracy() (float64, bool) {
	if s.TimesAsked == 0 {
		return 0, false
	}
	return float64(s.TimesCorrect) / float64(s.TimesAsked), true
}

// TopicPerformance is the long-lived per-topic aggregate, independent of
// any single session. Accuracy is stored as a rounded percentage (0-100).
type TopicPerformance struct {
	UserID                string    `bson:"user_id" json:"user_id"`
	Topic                 string    `bson:"topic" json:"topic"`
	Attempted             int       `bson:"attempted" json:"attempted"`
	Correct               int       `bson:"correct" json:"correct"`
	Accuracy              float64   `bson:"accuracy" json:"accuracy"`
	AverageTimeSeconds    float64   `bson:"average_time_seconds" json:"average_time_seconds"`
	LastAttempted         time.Time `bson:"last_attempted,omitempty" json:"last_attempted,omitempty"`
	NeedsReview           bool      `bson:"needs_review" json:"needs_review"`
	RecommendedDifficulty int       `bson:"recommended_difficulty" json:"recommended_difficulty"`
}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// WeakAreaRecommendation is purely derived from TopicPerformance and is
// regenerated on demand, never stored as source of truth.
type WeakAreaRecommendation struct {
	Topic      string   `json:"topic"`
	Accuracy   float64  `json:"accuracy"`
	Attempted  int      `json:"attempted"`
	Priority   Priority `json:"priority"`
	Suggestion string   `json:"suggestion"`
}
