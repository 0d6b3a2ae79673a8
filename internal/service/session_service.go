package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"assessment-service/internal/engine"
	"assessment-service/internal/event"
	"assessment-service/internal/models"
	"assessment-service/internal/repetition"
	"assessment-service/internal/repository"
	"assessment-service/internal/selection"
	"assessment-service/pkg/logger"
)

// ErrNoCandidateQuestions is returned when the configuration matches no
// content at all; a short list is fine, an empty session is not.
var ErrNoCandidateQuestions = errors.New("no questions match the selected systems, types and difficulty")

// SessionService drives the quiz lifecycle: selection into a new session,
// the state machine transitions, and the bank/topic/scheduler bookkeeping
// that follows every graded answer.
type SessionService struct {
	Sessions    *repository.SessionRepository
	Stats       *repository.StatsRepository
	Performance *repository.PerformanceRepository
	Repetition  *repository.RepetitionRepository
	History     *repository.HistoryRepository
	Questions   *QuestionService
	selector    *selection.Selector
	publisher   *event.EventPublisher
}

func NewSessionService(
	sessions *repository.SessionRepository,
	stats *repository.StatsRepository,
	performance *repository.PerformanceRepository,
	repetitionRepo *repository.RepetitionRepository,
	history *repository.HistoryRepository,
	questions *QuestionService,
	publisher *event.EventPublisher,
) *SessionService {
	return &SessionService{
		Sessions:    sessions,
		Stats:       stats,
		Performance: performance,
		Repetition:  repetitionRepo,
		History:     history,
		Questions:   questions,
		selector:    selection.NewSelector(),
		publisher:   publisher,
	}
}

// CreateSession validates the configuration, runs the adaptive selector
// over the learner's bank and topic aggregates and persists a not-started
// session.
func (s *SessionService) CreateSession(ctx context.Context, userID, title string, cfg models.SessionConfig) (*models.QuizSession, error) {
	if err := engine.ValidateConfig(cfg); err != nil {
		return nil, err
	}

	questions, err := s.Questions.ListQuestions(ctx)
	if err != nil {
		return nil, err
	}
	stats, err := s.statsByQuestion(ctx, userID)
	if err != nil {
		return nil, err
	}
	performance, err := s.performanceByTopic(ctx, userID)
	if err != nil {
		return nil, err
	}

	selected := s.selector.Select(cfg, questions, stats, performance)
	if len(selected) == 0 {
		return nil, ErrNoCandidateQuestions
	}

	session := engine.NewSession(userID, title, cfg, selected, time.Now())
	if err := s.Sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *SessionService) GetSession(ctx context.Context, userID, id string) (*models.QuizSession, error) {
	return s.Sessions.FindByID(ctx, userID, id)
}

func (s *SessionService) StartSession(ctx context.Context, userID, id string) (*models.QuizSession, error) {
	session, err := s.Sessions.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := engine.Start(session, time.Now()); err != nil {
		return nil, err
	}
	if err := s.Sessions.Replace(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SubmitAnswer runs one state machine step and then the read-after-write
// bookkeeping: the bank and topic aggregates are updated before the next
// selection can read them. On completion the scheduler is fed one graded
// review per answer and the session is projected into history.
func (s *SessionService) SubmitAnswer(ctx context.Context, userID, sessionID, value string, timeTaken float64, confidence int) (*models.UserAnswer, *models.QuizSession, error) {
	session, err := s.Sessions.FindByID(ctx, userID, sessionID)
	if err != nil {
		return nil, nil, err
	}

	question := session.CurrentQuestion()
	answer, err := engine.SubmitAnswer(session, value, timeTaken, confidence, time.Now())
	if err != nil {
		return nil, nil, err
	}

	if err := s.Sessions.Replace(ctx, session); err != nil {
		return nil, nil, err
	}

	s.applyAnswerBookkeeping(ctx, userID, question, answer)

	if session.Status == models.StatusCompleted {
		s.completeSession(ctx, session)
	}

	return answer, session, nil
}

func (s *SessionService) AbandonSession(ctx context.Context, userID, id string) (*models.QuizSession, error) {
	session, err := s.Sessions.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := engine.Abandon(session, time.Now()); err != nil {
		return nil, err
	}
	if err := s.Sessions.Replace(ctx, session); err != nil {
		return nil, err
	}
	if err := s.publisher.Publish("session.abandoned", map[string]string{
		"session_id": session.ID,
		"user_id":    session.UserID,
	}); err != nil {
		logger.Log.Warn("failed to publish abandonment", zap.Error(err))
	}
	return session, nil
}

func (s *SessionService) GetHistory(ctx context.Context, userID string) ([]models.QuizHistoryEntry, error) {
	return s.History.FindByUser(ctx, userID)
}

// applyAnswerBookkeeping updates the learner's question statistics and
// topic aggregate for one graded answer. An unknown question id cannot
// corrupt state, so it is logged and skipped rather than raised.
func (s *SessionService) applyAnswerBookkeeping(ctx context.Context, userID string, question *models.Question, answer *models.UserAnswer) {
	if question == nil {
		logger.Log.Warn("answer without a matching question, skipping stats update",
			zap.String("question_id", answer.QuestionID))
		return
	}

	st, err := s.Stats.FindOne(ctx, userID, question.ID)
	switch {
	case err == nil:
	case errors.Is(err, mongo.ErrNoDocuments):
		created := models.NewQuestionStats(userID, question)
		st = &created
	default:
		logger.Log.Error("loading question stats", zap.Error(err))
		return
	}
	engine.ApplyResult(st, answer.IsCorrect, answer.TimeTakenSeconds, answer.AnsweredAt)
	if err := s.Stats.Upsert(ctx, st); err != nil {
		logger.Log.Error("saving question stats", zap.Error(err))
	}

	tp, err := s.Performance.FindOne(ctx, userID, question.Domain)
	switch {
	case err == nil:
	case errors.Is(err, mongo.ErrNoDocuments):
		tp = &models.TopicPerformance{UserID: userID, Topic: question.Domain}
	default:
		logger.Log.Error("loading topic performance", zap.Error(err))
		return
	}
	engine.ApplyTopicResult(tp, answer.IsCorrect, answer.TimeTakenSeconds, answer.AnsweredAt)
	if err := s.Performance.Upsert(ctx, tp); err != nil {
		logger.Log.Error("saving topic performance", zap.Error(err))
	}
}

// completeSession feeds the scheduler one graded review per answer,
// records the history projection and notifies the export module.
func (s *SessionService) completeSession(ctx context.Context, session *models.QuizSession) {
	for _, answer := range session.Answers {
		item, err := s.Repetition.FindOne(ctx, session.UserID, answer.QuestionID)
		switch {
		case err == nil:
		case errors.Is(err, mongo.ErrNoDocuments):
			created := models.NewRepetitionItem(session.UserID, answer.QuestionID, answer.AnsweredAt)
			item = &created
		default:
			logger.Log.Error("loading repetition item", zap.Error(err))
			continue
		}

		updated, err := repetition.Review(*item, engine.ReviewQuality(answer), session.CompletedAt)
		if err != nil {
			logger.Log.Error("grading repetition review", zap.Error(err))
			continue
		}
		if err := s.Repetition.Upsert(ctx, &updated); err != nil {
			logger.Log.Error("saving repetition item", zap.Error(err))
		}
	}

	entry := models.NewHistoryEntry(session)
	if err := s.History.Insert(ctx, &entry); err != nil {
		logger.Log.Error("recording session history", zap.Error(err))
	}

	if err := s.publisher.Publish("session.completed", entry); err != nil {
		logger.Log.Warn("failed to publish completion", zap.Error(err))
	}
}

func (s *SessionService) statsByQuestion(ctx context.Context, userID string) (map[string]models.QuestionStats, error) {
	stats, err := s.Stats.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	byQuestion := make(map[string]models.QuestionStats, len(stats))
	for _, st := range stats {
		byQuestion[st.QuestionID] = st
	}
	return byQuestion, nil
}

func (s *SessionService) performanceByTopic(ctx context.Context, userID string) (map[string]models.TopicPerformance, error) {
	performance, err := s.Performance.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	byTopic := make(map[string]models.TopicPerformance, len(performance))
	for _, tp := range performance {
		byTopic[tp.Topic] = tp
	}
	return byTopic, nil
}
