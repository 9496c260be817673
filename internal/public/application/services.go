package application

import (
	"context"
	"errors"
	"time"

	"github.com/Vicky-2409/mern-survey-app/internal/public/domain"
)

// ErrDuplicateSubmission is returned when the same email address has already
// submitted too many surveys inside the throttle window.
var ErrDuplicateSubmission = errors.New("too many submissions from this email address")

const (
	// duplicateWindow is the trailing period inspected for prior
	// submissions from the same email address.
	duplicateWindow = 24 * time.Hour
	// duplicateLimit is the number of prior submissions that blocks the
	// next one.
	duplicateLimit = 3
)

// SurveyRepository handles submission writes and recency lookups.
type SurveyRepository interface {
	Insert(ctx context.Context, survey *domain.Survey) error
	CountRecentByEmail(ctx context.Context, email string, since time.Time) (int64, error)
}

// SubmitSurveyCommand captures a validated public submission together with
// the request metadata recorded alongside it.
type SubmitSurveyCommand struct {
	Name        string
	Gender      string
	Nationality string
	Email       string
	Phone       string
	Address     string
	Message     string
	IPAddress   string
	UserAgent   string
}

// SurveyCommandService handles the submission write use-case.
type SurveyCommandService interface {
	Submit(ctx context.Context, cmd SubmitSurveyCommand) (*domain.Survey, error)
}

func NewSurveyCommandService(repo SurveyRepository) SurveyCommandService {
	return &surveyCommandService{repo: repo}
}

type surveyCommandService struct {
	repo SurveyRepository
}

// Submit applies the duplicate-submission throttle and persists the survey.
// createdAt is set here, exactly once, in UTC.
func (s *surveyCommandService) Submit(ctx context.Context, cmd SubmitSurveyCommand) (*domain.Survey, error) {
	now := time.Now().UTC()

	recent, err := s.repo.CountRecentByEmail(ctx, cmd.Email, now.Add(-duplicateWindow))
	if err != nil {
		return nil, err
	}
	if recent >= duplicateLimit {
		return nil, ErrDuplicateSubmission
	}

	survey := &domain.Survey{
		Name:        cmd.Name,
		Gender:      cmd.Gender,
		Nationality: cmd.Nationality,
		Email:       cmd.Email,
		Phone:       cmd.Phone,
		Address:     cmd.Address,
		Message:     cmd.Message,
		IPAddress:   cmd.IPAddress,
		UserAgent:   cmd.UserAgent,
		CreatedAt:   now,
	}

	return survey, s.repo.Insert(ctx, survey)
}
