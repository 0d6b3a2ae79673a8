// Package engine owns the quiz session state machine and the per-answer
// bookkeeping applied to the learner's question bank and topic aggregates.
// It performs no I/O; callers persist the structures it mutates.
package engine

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"assessment-service/internal/models"
	"assessment-service/internal/scoring"
)

// ValidateConfig rejects a selection configuration before any session is
// built from it. An invalid config never silently produces an empty
// session.
func ValidateConfig(cfg models.SessionConfig) error {
	if len(cfg.Systems) == 0 {
		return ErrNoSystemsSelected
	}
	if cfg.QuestionCount <= 0 {
		return ErrInvalidQuestionCount
	}
	if cfg.Difficulty < 1 || cfg.Difficulty > 5 {
		return ErrInvalidDifficulty
	}
	return nil
}

// NewSession builds a not-started session over a fixed question list.
// The clock does not run until Start.
func NewSession(userID, title string, cfg models.SessionConfig, questions []models.Question, now time.Time) *models.QuizSession {
	return &models.QuizSession{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Config:    cfg,
		Questions: questions,
		Answers:   []models.UserAnswer{},
		Status:    models.StatusNotStarted,
		CreatedAt: now,
	}
}

// Start moves a session to in-progress and records the start timestamp.
// Starting twice is a logic error, reported rather than ignored.
func Start(s *models.QuizSession, now time.Time) error {
	switch s.Status {
	case models.StatusNotStarted:
		s.Status = models.StatusInProgress
		s.StartedAt = now
		return nil
	case models.StatusInProgress:
		return ErrAlreadyStarted
	case models.StatusCompleted:
		return ErrSessionCompleted
	default:
		return ErrSessionAbandoned
	}
}

// SubmitAnswer grades the current question, appends the answer, advances
// the index and recomputes the score in one step. When the advanced index
// reaches the question count the session completes. Terminal sessions are
// never mutated.
func SubmitAnswer(s *models.QuizSession, value string, timeTaken float64, confidence int, now time.Time) (*models.UserAnswer, error) {
	if err := activeGuard(s); err != nil {
		return nil, err
	}

	q := s.Questions[s.CurrentIndex]
	answer := models.UserAnswer{
		ID:               uuid.New().String(),
		QuestionID:       q.ID,
		Value:            value,
		Skipped:          strings.TrimSpace(value) == "",
		TimeTakenSeconds: timeTaken,
		AnsweredAt:       now,
		Confidence:       confidence,
	}
	if !answer.Skipped {
		answer.IsCorrect = scoring.Grade(&q, value)
	}

	s.Answers = append(s.Answers, answer)
	s.CurrentIndex++
	s.TotalTimeSeconds += timeTaken
	s.Score = scoring.Score(s.Questions, s.Answers)

	if s.CurrentIndex >= len(s.Questions) {
		s.Status = models.StatusCompleted
		s.CompletedAt = now
	}

	return &s.Answers[len(s.Answers)-1], nil
}

// Abandon is the explicit caller-driven terminal transition, allowed from
// in-progress only. There are no timeouts; abandonment never happens
// implicitly.
func Abandon(s *models.QuizSession, now time.Time) error {
	if err := activeGuard(s); err != nil {
		return err
	}
	s.Status = models.StatusAbandoned
	s.CompletedAt = now
	return nil
}

func activeGuard(s *models.QuizSession) error {
	switch s.Status {
	case models.StatusInProgress:
		return nil
	case models.StatusNotStarted:
		return ErrNotStarted
	case models.StatusCompleted:
		return ErrSessionCompleted
	case models.StatusAbandoned:
		return ErrSessionAbandoned
	default:
		return ErrNotInProgress
	}
}
