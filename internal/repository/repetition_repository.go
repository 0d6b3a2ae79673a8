package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"assessment-service/internal/models"
)

// RepetitionRepository keeps one scheduling row per question per learner.
type RepetitionRepository struct {
	Col *mongo.Collection
}

func NewRepetitionRepository(db *mongo.Database) *RepetitionRepository {
	return &RepetitionRepository{Col: db.Collection("repetition_items")}
}

func (r *RepetitionRepository) FindByUser(ctx context.Context, userID string) ([]models.RepetitionItem, error) {
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var items []models.RepetitionItem
	for cur.Next(ctx) {
		var item models.RepetitionItem
		if err := cur.Decode(&item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, cur.Err()
}

func (r *RepetitionRepository) FindOne(ctx context.Context, userID, questionID string) (*models.RepetitionItem, error) {
	var item models.RepetitionItem
	err := r.Col.FindOne(ctx, bson.M{"user_id": userID, "question_id": questionID}).Decode(&item)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *RepetitionRepository) Upsert(ctx context.Context, item *models.RepetitionItem) error {
	filter := bson.M{"user_id": item.UserID, "question_id": item.QuestionID}
	_, err := r.Col.ReplaceOne(ctx, filter, item, options.Replace().SetUpsert(true))
	return err
}
