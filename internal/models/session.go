package models

import "time"

type SessionStatus string

const (
	StatusNotStarted SessionStatus = "not_started"
	StatusInProgress SessionStatus = "in_progress"
	StatusCompleted  SessionStatus = "completed"
	StatusAbandoned  SessionStatus = "abandoned"
)

// Terminal reports whether no further mutation of the session is allowed.
func (s SessionStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusAbandoned
}

// SessionConfig is the snapshot of selection parameters a session was
// built with. It is fixed once the session exists.
type SessionConfig struct {
	Systems          []string       `bson:"systems" json:"systems"`
	QuestionTypes    []QuestionType `bson:"question_types,omitempty" json:"question_types,omitempty"`
	Difficulty       int            `bson:"difficulty" json:"difficulty"`
	QuestionCount    int            `bson:"question_count" json:"question_count"`
	Adaptive         bool           `bson:"adaptive" json:"adaptive"`
	FocusOnWeakAreas bool           `bson:"focus_on_weak_areas" json:"focus_on_weak_areas"`
}

// QuizSession is one bounded attempt at a fixed, pre-selected question
// list. The question list never changes after creation; the answer list
// grows monotonically until a terminal status is reached.
type QuizSession struct {
	ID               string        `bson:"_id,omitempty" json:"id"`
	UserID           string        `bson:"user_id" json:"user_id"`
	Title            string        `bson:"title,omitempty" json:"title,omitempty"`
	Config           SessionConfig `bson:"config" json:"config"`
	Questions        []Question    `bson:"questions" json:"questions"`
	Answers          []UserAnswer  `bson:"answers" json:"answers"`
	CurrentIndex     int           `bson:"current_index" json:"current_index"`
	Status           SessionStatus `bson:"status" json:"status"`
	StartedAt        time.Time     `bson:"started_at,omitempty" json:"started_at,omitempty"`
	CompletedAt      time.Time     `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
	Score            QuizScore     `bson:"score" json:"score"`
	TotalTimeSeconds float64       `bson:"total_time_seconds" json:"total_time_seconds"`
	CreatedAt        time.Time     `bson:"created_at" json:"created_at"`
}

// CurrentQuestion returns the question awaiting an answer, or nil when
// every question has been answered.
func (s *QuizSession) CurrentQuestion() *Question {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.CurrentIndex]
}
