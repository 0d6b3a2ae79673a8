package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"assessment-service/internal/cache"
	"assessment-service/internal/models"
	"assessment-service/internal/repository"
	"assessment-service/pkg/logger"
)

const (
	questionCacheKey = "questions:all"
	questionCacheTTL = 5 * time.Minute
)

// QuestionService exposes the content source. Content is immutable from
// the engine's point of view, so the full list is cached aggressively.
type QuestionService struct {
	Repo  *repository.QuestionRepository
	Cache *cache.RedisClient
}

func NewQuestionService(repo *repository.QuestionRepository, c *cache.RedisClient) *QuestionService {
	return &QuestionService{Repo: repo, Cache: c}
}

func (s *QuestionService) ListQuestions(ctx context.Context) ([]models.Question, error) {
	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, questionCacheKey); err == nil {
			var questions []models.Question
			if err := json.Unmarshal([]byte(raw), &questions); err == nil {
				return questions, nil
			}
			logger.Log.Warn("discarding undecodable question cache entry")
		}
	}

	questions, err := s.Repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if raw, err := json.Marshal(questions); err == nil {
			if err := s.Cache.Set(ctx, questionCacheKey, raw, questionCacheTTL); err != nil {
				logger.Log.Warn("failed to cache question list", zap.Error(err))
			}
		}
	}

	return questions, nil
}

func (s *QuestionService) GetQuestion(ctx context.Context, id string) (*models.Question, error) {
	return s.Repo.FindByID(ctx, id)
}

// CreateQuestion seeds content and drops the list cache. Invalid content
// is rejected before it reaches the bank.
func (s *QuestionService) CreateQuestion(ctx context.Context, q *models.Question) error {
	if err := q.Validate(); err != nil {
		return err
	}
	if err := s.Repo.Create(ctx, q); err != nil {
		return err
	}
	if s.Cache != nil {
		if err := s.Cache.Delete(ctx, questionCacheKey); err != nil {
			logger.Log.Warn("failed to invalidate question cache", zap.Error(err))
		}
	}
	return nil
}
