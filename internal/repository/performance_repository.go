package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"assessment-service/internal/models"
)

// PerformanceRepository keeps the long-lived per-topic aggregates. Reset
// is the only destructive operation and only on explicit learner action.
type PerformanceRepository struct {
	Col *mongo.Collection
}

func NewPerformanceRepository(db *mongo.Database) *PerformanceRepository {
	return &PerformanceRepository{Col: db.Collection("topic_performance")}
}

func (r *PerformanceRepository) FindByUser(ctx context.Context, userID string) ([]models.TopicPerformance, error) {
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var performance []models.TopicPerformance
	for cur.Next(ctx) {
		var tp models.TopicPerformance
		if err := cur.Decode(&tp); err != nil {
			return nil, err
		}
		performance = append(performance, tp)
	}
	return performance, cur.Err()
}

func (r *PerformanceRepository) FindOne(ctx context.Context, userID, topic string) (*models.TopicPerformance, error) {
	var tp models.TopicPerformance
	err := r.Col.FindOne(ctx, bson.M{"user_id": userID, "topic": topic}).Decode(&tp)
	if err != nil {
		return nil, err
	}
	return &tp, nil
}

func (r *PerformanceRepository) Upsert(ctx context.Context, tp *models.TopicPerformance) error {
	filter := bson.M{"user_id": tp.UserID, "topic": tp.Topic}
	_, err := r.Col.ReplaceOne(ctx, filter, tp, options.Replace().SetUpsert(true))
	return err
}

func (r *PerformanceRepository) Reset(ctx context.Context, userID, topic string) error {
	_, err := r.Col.DeleteOne(ctx, bson.M{"user_id": userID, "topic": topic})
	return err
}
