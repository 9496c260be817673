package application

import (
	"context"

	admindomain "github.com/Vicky-2409/mern-survey-app/internal/admin/domain"
)

// SurveyRepository provides read access to stored submissions.
// SurveyRepository は管理コンテキストで提出済みアンケートを読み取るためのポート。
type SurveyRepository interface {
	Find(ctx context.Context, filter SurveyFilter, paging Paging) ([]admindomain.Survey, error)
}

// SurveyFilter expresses search criteria for submissions.
type SurveyFilter struct {
	Keyword string
}

// Paging controls pagination. Zero values mean "everything".
type Paging struct {
	Page  int
	Limit int
}

// SurveyService describes the admin listing use-case.
type SurveyService interface {
	List(ctx context.Context, filter SurveyFilter, paging Paging) ([]admindomain.Survey, error)
}
