package admin

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	adminapp "github.com/Vicky-2409/mern-survey-app/internal/admin/application"
	"github.com/Vicky-2409/mern-survey-app/internal/auth"
)

// Handler wires admin HTTP endpoints to application services.
type Handler struct {
	logger        *log.Logger
	surveyService adminapp.SurveyService
	issuer        *auth.Issuer
}

// Config provides dependencies for Handler.
type Config struct {
	Logger        *log.Logger
	SurveyService adminapp.SurveyService
	Issuer        *auth.Issuer
}

// NewHandler constructs an admin HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:        cfg.Logger,
		surveyService: cfg.SurveyService,
		issuer:        cfg.Issuer,
	}
}

// Register mounts the session endpoint and the token-gated listing.
func (h *Handler) Register(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Post("/admin/session", h.sessionCreateHandler())
	r.With(authMiddleware).Get("/submissions", h.surveyListHandler())
}
