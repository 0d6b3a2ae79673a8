package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"assessment-service/internal/analysis"
	"assessment-service/internal/event"
	"assessment-service/internal/models"
	"assessment-service/internal/repetition"
	"assessment-service/internal/repository"
	"assessment-service/pkg/logger"
)

// ReviewService exposes the spaced-repetition schedule and the weak-area
// recommendations derived from the topic aggregates.
type ReviewService struct {
	Repetition  *repository.RepetitionRepository
	Performance *repository.PerformanceRepository
	Questions   *repository.QuestionRepository
	publisher   *event.EventPublisher
}

func NewReviewService(
	repetitionRepo *repository.RepetitionRepository,
	performance *repository.PerformanceRepository,
	questions *repository.QuestionRepository,
	publisher *event.EventPublisher,
) *ReviewService {
	return &ReviewService{
		Repetition:  repetitionRepo,
		Performance: performance,
		Questions:   questions,
		publisher:   publisher,
	}
}

// DueQuestions returns the questions whose review date has arrived,
// earliest first. This is how a remediation-focused quiz gets built.
func (s *ReviewService) DueQuestions(ctx context.Context, userID string) ([]models.Question, error) {
	items, err := s.Repetition.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	due := repetition.Due(items, time.Now())
	if len(due) == 0 {
		return []models.Question{}, nil
	}

	ids := make([]string, len(due))
	for i, item := range due {
		ids[i] = item.QuestionID
	}
	questions, err := s.Questions.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	// Keep the schedule's order, dropping ids whose content is gone.
	byID := make(map[string]models.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	ordered := make([]models.Question, 0, len(due))
	for _, item := range due {
		if q, ok := byID[item.QuestionID]; ok {
			ordered = append(ordered, q)
		}
	}
	return ordered, nil
}

// GradeReview applies one explicit recall grade to a question's schedule.
func (s *ReviewService) GradeReview(ctx context.Context, userID, questionID string, quality int) (*models.RepetitionItem, error) {
	item, err := s.Repetition.FindOne(ctx, userID, questionID)
	switch {
	case err == nil:
	case errors.Is(err, mongo.ErrNoDocuments):
		created := models.NewRepetitionItem(userID, questionID, time.Now())
		item = &created
	default:
		return nil, err
	}

	updated, err := repetition.Review(*item, quality, time.Now())
	if err != nil {
		return nil, err
	}
	if err := s.Repetition.Upsert(ctx, &updated); err != nil {
		return nil, err
	}

	if err := s.publisher.Publish("review.graded", map[string]interface{}{
		"user_id":     userID,
		"question_id": questionID,
		"quality":     quality,
		"next_review": updated.NextReview,
	}); err != nil {
		logger.Log.Warn("failed to publish review grade", zap.Error(err))
	}

	return &updated, nil
}

// WeakAreas regenerates the prioritized recommendations from the topic
// aggregates.
func (s *ReviewService) WeakAreas(ctx context.Context, userID string) ([]models.WeakAreaRecommendation, error) {
	performance, err := s.Performance.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analysis.IdentifyWeakAreas(performance), nil
}

func (s *ReviewService) TopicPerformance(ctx context.Context, userID string) ([]models.TopicPerformance, error) {
	return s.Performance.FindByUser(ctx, userID)
}

// ResetTopic is the explicit learner action that clears one topic
// aggregate; nothing else ever resets TopicPerformance.
func (s *ReviewService) ResetTopic(ctx context.Context, userID, topic string) error {
	return s.Performance.Reset(ctx, userID, topic)
}
