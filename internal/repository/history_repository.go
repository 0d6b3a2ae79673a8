package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"assessment-service/internal/models"
)

// HistoryRepository keeps the flat completed-session summaries consumed by
// the export/reporting module.
type HistoryRepository struct {
	Col *mongo.Collection
}

func NewHistoryRepository(db *mongo.Database) *HistoryRepository {
	return &HistoryRepository{Col: db.Collection("history")}
}

func (r *HistoryRepository) Insert(ctx context.Context, entry *models.QuizHistoryEntry) error {
	_, err := r.Col.InsertOne(ctx, entry)
	return err
}

func (r *HistoryRepository) FindByUser(ctx context.Context, userID string) ([]models.QuizHistoryEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "completed_at", Value: -1}})
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var entries []models.QuizHistoryEntry
	for cur.Next(ctx) {
		var entry models.QuizHistoryEntry
		if err := cur.Decode(&entry); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, cur.Err()
}
