package models

import "time"

const (
	// DefaultEaseFactor is the SM-2 starting ease for a new item.
	DefaultEaseFactor = 2.5
	// MinEaseFactor is the floor below which ease never drops.
	MinEaseFactor = 1.3
)

// RepetitionItem is one spaced-repetition scheduling row per question per
// learner. Created on first exposure, updated after every graded review.
type RepetitionItem struct {
	UserID       string    `bson:"user_id" json:"user_id"`
	QuestionID   string    `bson:"question_id" json:"question_id"`
	EaseFactor   float64   `bson:"ease_factor" json:"ease_factor"`
	IntervalDays int       `bson:"interval_days" json:"interval_days"`
	Repetitions  int       `bson:"repetitions" json:"repetitions"`
	NextReview   time.Time `bson:"next_review" json:"next_review"`
	LastReview   time.Time `bson:"last_review,omitempty" json:"last_review,omitempty"`
}

// NewRepetitionItem creates the scheduling row for a question's first
// exposure; it is immediately due.
func NewRepetitionItem(userID, questionID string, now time.Time) RepetitionItem {
	return RepetitionItem{
		UserID:     userID,
		QuestionID: questionID,
		EaseFactor: DefaultEaseFactor,
		NextReview: now,
	}
}
