package models

import "time"

// UserAnswer is one learner response. Correctness is computed by the
// scoring engine, never trusted from the caller. Immutable once appended
// to a session.
type UserAnswer struct {
	ID               string    `bson:"id" json:"id"`
	QuestionID       string    `bson:"question_id" json:"question_id"`
	Value            string    `bson:"value" json:"value"`
	IsCorrect        bool      `bson:"is_correct" json:"is_correct"`
	Skipped          bool      `bson:"skipped" json:"skipped"`
	TimeTakenSeconds float64   `bson:"time_taken_seconds" json:"time_taken_seconds"`
	AnsweredAt       time.Time `bson:"answered_at" json:"answered_at"`
	Confidence       int       `bson:"confidence,omitempty" json:"confidence,omitempty"`
}
