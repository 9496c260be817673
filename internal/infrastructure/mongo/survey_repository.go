package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Vicky-2409/mern-survey-app/internal/public/domain"
)

// SurveyRepository はパブリック向けアンケート提出を MongoDB で扱う実装リポジトリ。
type SurveyRepository struct {
	surveys *mongo.Collection
}

// NewSurveyRepository binds the submissions collection.
func NewSurveyRepository(db *mongo.Database, surveyCollection string) *SurveyRepository {
	return &SurveyRepository{surveys: db.Collection(surveyCollection)}
}

// Insert はアンケート提出を Mongo に追加し、ドメインモデルへ採番結果を反映する。
func (r *SurveyRepository) Insert(ctx context.Context, survey *domain.Survey) error {
	createdAt := survey.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	doc := SurveyDocument{
		ID:          primitive.NewObjectID(),
		Name:        survey.Name,
		Gender:      survey.Gender,
		Nationality: survey.Nationality,
		Email:       survey.Email,
		Phone:       survey.Phone,
		Address:     survey.Address,
		Message:     survey.Message,
		IPAddress:   survey.IPAddress,
		UserAgent:   survey.UserAgent,
		CreatedAt:   createdAt,
	}

	if _, err := r.surveys.InsertOne(ctx, doc); err != nil {
		return err
	}

	survey.ID = doc.ID.Hex()
	survey.CreatedAt = doc.CreatedAt
	return nil
}

// CountRecentByEmail は指定時刻以降の同一メールアドレスからの提出件数を数える。
func (r *SurveyRepository) CountRecentByEmail(ctx context.Context, email string, since time.Time) (int64, error) {
	filter := bson.M{
		"email":     email,
		"createdAt": bson.M{"$gt": since},
	}
	return r.surveys.CountDocuments(ctx, filter)
}
