package models

import "time"

// QuizHistoryEntry is the flat summary of a finished session handed to the
// export/reporting module.
type QuizHistoryEntry struct {
	SessionID       string        `bson:"session_id" json:"session_id"`
	UserID          string        `bson:"user_id" json:"user_id"`
	Title           string        `bson:"title,omitempty" json:"title,omitempty"`
	Config          SessionConfig `bson:"config" json:"config"`
	CompletedAt     time.Time     `bson:"completed_at" json:"completed_at"`
	Score           QuizScore     `bson:"score" json:"score"`
	DurationSeconds float64       `bson:"duration_seconds" json:"duration_seconds"`
	Systems         []string      `bson:"systems" json:"systems"`
	Difficulty      int           `bson:"difficulty" json:"difficulty"`
	QuestionCount   int           `bson:"question_count" json:"question_count"`
}

// NewHistoryEntry projects a finished session into its history summary.
func NewHistoryEntry(s *QuizSession) QuizHistoryEntry {
	return QuizHistoryEntry{
		SessionID:       s.ID,
		UserID:          s.UserID,
		Title:           s.Title,
		Config:          s.Config,
		CompletedAt:     s.CompletedAt,
		Score:           s.Score,
		DurationSeconds: s.TotalTimeSeconds,
		Systems:         s.Config.Systems,
		Difficulty:      s.Config.Difficulty,
		QuestionCount:   len(s.Questions),
	}
}
