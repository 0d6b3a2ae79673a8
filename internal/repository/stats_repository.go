package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"assessment-service/internal/models"
)

// StatsRepository keeps the per-learner empirical statistics rows for
// questions. Rows accumulate; they are upserted, never deleted.
type StatsRepository struct {
	Col *mongo.Collection
}

func NewStatsRepository(db *mongo.Database) *StatsRepository {
	return &StatsRepository{Col: db.Collection("question_stats")}
}

func (r *StatsRepository) FindByUser(ctx context.Context, userID string) ([]models.QuestionStats, error) {
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var stats []models.QuestionStats
	for cur.Next(ctx) {
		var st models.QuestionStats
		if err := cur.Decode(&st); err != nil {
			return nil, err
		}
		stats = append(stats, st)
	}
	return stats, cur.Err()
}

func (r *StatsRepository) FindOne(ctx context.Context, userID, questionID string) (*models.QuestionStats, error) {
	var st models.QuestionStats
	err := r.Col.FindOne(ctx, bson.M{"user_id": userID, "question_id": questionID}).Decode(&st)
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func (r *StatsRepository) Upsert(ctx context.Context, st *models.QuestionStats) error {
	filter := bson.M{"user_id": st.UserID, "question_id": st.QuestionID}
	_, err := r.Col.ReplaceOne(ctx, filter, st, options.Replace().SetUpsert(true))
	return err
}
