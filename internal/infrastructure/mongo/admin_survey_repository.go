package mongo

import (
	"context"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	adminapp "github.com/Vicky-2409/mern-survey-app/internal/admin/application"
	admindomain "github.com/Vicky-2409/mern-survey-app/internal/admin/domain"
)

// AdminSurveyRepository は管理者向けアンケート一覧を MongoDB 経由で扱うリポジトリ。
type AdminSurveyRepository struct {
	surveys *mongo.Collection
}

// NewAdminSurveyRepository binds the submissions collection for admin reads.
func NewAdminSurveyRepository(db *mongo.Database, surveyCollection string) *AdminSurveyRepository {
	return &AdminSurveyRepository{surveys: db.Collection(surveyCollection)}
}

// Find はキーワード条件を Mongo クエリへ変換し、作成日時の降順で一覧を返す。
func (r *AdminSurveyRepository) Find(ctx context.Context, filter adminapp.SurveyFilter, paging adminapp.Paging) ([]admindomain.Survey, error) {
	mongoFilter := bson.M{}
	if keyword := strings.TrimSpace(filter.Keyword); keyword != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(keyword), Options: "i"}
		mongoFilter["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"email": pattern},
			bson.M{"nationality": pattern},
			bson.M{"message": pattern},
		}
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if paging.Limit > 0 {
		findOpts.SetLimit(int64(paging.Limit))
		if paging.Page > 1 {
			skip := int64((paging.Page - 1) * paging.Limit)
			findOpts.SetSkip(skip)
		}
	}

	cursor, err := r.surveys.Find(ctx, mongoFilter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	surveys := make([]admindomain.Survey, 0)
	for cursor.Next(ctx) {
		var doc SurveyDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		surveys = append(surveys, mapAdminSurveyDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return surveys, nil
}

// mapAdminSurveyDocument は Mongo ドキュメントを管理ドメインの Survey へ復元する。
func mapAdminSurveyDocument(doc SurveyDocument) admindomain.Survey {
	return admindomain.Survey{
		ID:          doc.ID.Hex(),
		Name:        doc.Name,
		Gender:      doc.Gender,
		Nationality: doc.Nationality,
		Email:       doc.Email,
		Phone:       doc.Phone,
		Address:     doc.Address,
		Message:     doc.Message,
		IPAddress:   doc.IPAddress,
		UserAgent:   doc.UserAgent,
		CreatedAt:   doc.CreatedAt,
	}
}
