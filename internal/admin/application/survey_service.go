package application

import (
	"context"

	admindomain "github.com/Vicky-2409/mern-survey-app/internal/admin/domain"
)

type surveyService struct {
	repo SurveyRepository
}

func NewSurveyService(repo SurveyRepository) SurveyService {
	return &surveyService{repo: repo}
}

func (s *surveyService) List(ctx context.Context, filter SurveyFilter, paging Paging) ([]admindomain.Survey, error) {
	return s.repo.Find(ctx, filter, paging)
}
