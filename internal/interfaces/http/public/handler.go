package public

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"

	"github.com/Vicky-2409/mern-survey-app/internal/interfaces/http/common"
	"github.com/Vicky-2409/mern-survey-app/internal/mail"
	publicapp "github.com/Vicky-2409/mern-survey-app/internal/public/application"
)

const (
	// submissionRateLimit caps accepted attempts per source IP inside the
	// sliding window before requests are turned away unseen.
	submissionRateLimit  = 5
	submissionRateWindow = 15 * time.Minute

	maxSubmissionBody = 1 << 16
)

// Handler wires the public submission endpoint to its collaborators.
type Handler struct {
	logger         *log.Logger
	surveyCommands publicapp.SurveyCommandService
	recaptcha      *RecaptchaVerifier
	mailer         mail.Sender
	adminEmail     string
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger         *log.Logger
	SurveyCommands publicapp.SurveyCommandService
	Recaptcha      *RecaptchaVerifier
	Mailer         mail.Sender
	AdminEmail     string
}

// NewHandler constructs the public HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:         cfg.Logger,
		surveyCommands: cfg.SurveyCommands,
		recaptcha:      cfg.Recaptcha,
		mailer:         cfg.Mailer,
		adminEmail:     cfg.AdminEmail,
	}
}

// Register mounts the public routes onto the router. The rate limiter wraps
// only the submission endpoint and runs before everything else on it.
func (h *Handler) Register(r chi.Router) {
	r.With(httprate.Limit(
		submissionRateLimit,
		submissionRateWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(h.rateLimitExceededHandler()),
	)).Post("/submissions", h.surveyCreateHandler())
}

func (h *Handler) rateLimitExceededHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		common.WriteMessage(h.logger, w, http.StatusTooManyRequests, "Too many submissions. Please try again later.")
	}
}
