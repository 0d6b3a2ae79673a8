package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"assessment-service/internal/models"
)

// SessionRepository persists whole sessions with their embedded answer
// list and score. Sessions are owned by one learner; every read is scoped
// by user id.
type SessionRepository struct {
	Col *mongo.Collection
}

func NewSessionRepository(db *mongo.Database) *SessionRepository {
	return &SessionRepository{Col: db.Collection("sessions")}
}

func (r *SessionRepository) FindByID(ctx context.Context, userID, id string) (*models.QuizSession, error) {
	var session models.QuizSession
	err := r.Col.FindOne(ctx, bson.M{"_id": id, "user_id": userID}).Decode(&session)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) Create(ctx context.Context, session *models.QuizSession) error {
	_, err := r.Col.InsertOne(ctx, session)
	return err
}

// Replace writes the full session document back; submission mutates the
// answer list, index, score and status together, so partial updates would
// only invite drift.
func (r *SessionRepository) Replace(ctx context.Context, session *models.QuizSession) error {
	_, err := r.Col.ReplaceOne(ctx, bson.M{"_id": session.ID, "user_id": session.UserID}, session)
	return err
}
