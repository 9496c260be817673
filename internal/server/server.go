package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	adminapp "github.com/Vicky-2409/mern-survey-app/internal/admin/application"
	"github.com/Vicky-2409/mern-survey-app/internal/auth"
	"github.com/Vicky-2409/mern-survey-app/internal/config"
	mongodoc "github.com/Vicky-2409/mern-survey-app/internal/infrastructure/mongo"
	adminhttp "github.com/Vicky-2409/mern-survey-app/internal/interfaces/http/admin"
	commonhttp "github.com/Vicky-2409/mern-survey-app/internal/interfaces/http/common"
	publichttp "github.com/Vicky-2409/mern-survey-app/internal/interfaces/http/public"
	"github.com/Vicky-2409/mern-survey-app/internal/mail"
	publicapp "github.com/Vicky-2409/mern-survey-app/internal/public/application"
)

// Server manages the HTTP lifecycle and injects dependencies into the
// public and admin handlers. It is the composition root; no domain logic
// lives here.
type Server struct {
	logger             *log.Logger
	client             *mongo.Client
	database           *mongo.Database
	surveyCommands     publicapp.SurveyCommandService
	adminSurveyService adminapp.SurveyService
	issuer             *auth.Issuer
	mailer             mail.Sender
	recaptcha          *publichttp.RecaptchaVerifier
	adminEmail         string
	addr               string
	allowedOrigins     []string
	appEnv             string
	staticDir          string
}

// New assembles repositories, services and handler dependencies from the
// Config and Mongo client.
func New(cfg config.Config, client *mongo.Client) *Server {
	srv := &Server{
		logger:         cfg.ServerLog,
		client:         client,
		database:       client.Database(cfg.MongoDatabase),
		issuer:         auth.NewIssuer(cfg.JWTSecret, cfg.AdminUsername, cfg.AdminPassword),
		mailer:         mail.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.FromAddress, cfg.ServerLog),
		adminEmail:     cfg.AdminEmail,
		addr:           cfg.Addr,
		allowedOrigins: append([]string(nil), cfg.AllowedOrigins...),
		appEnv:         cfg.AppEnv,
		staticDir:      cfg.StaticDir,
	}

	surveyRepo := mongodoc.NewSurveyRepository(srv.database, cfg.SurveyCollection)
	srv.surveyCommands = publicapp.NewSurveyCommandService(surveyRepo)

	adminSurveyRepo := mongodoc.NewAdminSurveyRepository(srv.database, cfg.SurveyCollection)
	srv.adminSurveyService = adminapp.NewSurveyService(adminSurveyRepo)

	srv.recaptcha = publichttp.NewRecaptchaVerifier(
		&http.Client{Timeout: cfg.RecaptchaTimeout},
		cfg.RecaptchaVerifyURL,
		cfg.RecaptchaSecret,
	)

	return srv
}

// Run starts the HTTP server and assembles routing and middleware.
func (s *Server) Run() error {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(withCORS(s.allowedOrigins))

	router.Get("/healthz", s.healthHandler())

	publicHandler := publichttp.NewHandler(publichttp.Config{
		Logger:         s.logger,
		SurveyCommands: s.surveyCommands,
		Recaptcha:      s.recaptcha,
		Mailer:         s.mailer,
		AdminEmail:     s.adminEmail,
	})
	publicHandler.Register(router)

	adminHandler := adminhttp.NewHandler(adminhttp.Config{
		Logger:        s.logger,
		SurveyService: s.adminSurveyService,
		Issuer:        s.issuer,
	})
	adminHandler.Register(router, s.authMiddleware)

	if s.appEnv == "production" {
		// Unmatched routes hand the bundled frontend to the browser so
		// client-side routing keeps working after a hard refresh.
		router.NotFound(spaFallback(s.staticDir))
	}

	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Printf("HTTP server listening on %s", s.addr)
		errChan <- httpServer.ListenAndServe()
	}()

	waitForShutdown(httpServer, errChan, s)
	return nil
}

// authMiddleware verifies the bearer token and stores the asserted identity
// into the request context.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
		if authHeader == "" {
			commonhttp.WriteMessage(s.logger, w, http.StatusUnauthorized, "Authorization header required")
			return
		}

		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			commonhttp.WriteMessage(s.logger, w, http.StatusUnauthorized, "Bearer token required")
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
		if tokenString == "" {
			commonhttp.WriteMessage(s.logger, w, http.StatusUnauthorized, "Bearer token required")
			return
		}

		identity, err := s.issuer.Verify(tokenString)
		if err != nil {
			commonhttp.WriteMessage(s.logger, w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		ctx := commonhttp.ContextWithUser(r.Context(), commonhttp.AuthenticatedUser{Username: identity})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// withCORS returns middleware that sets CORS headers for allowed origins.
func withCORS(origins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{})
	allowAll := false
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if origin == "*" {
			allowAll = true
			continue
		}
		allowed[origin] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := strings.TrimSpace(r.Header.Get("Origin"))
			if origin == "" || (!allowAll && len(allowed) > 0 && !originAllowed(origin, allowed)) {
				if r.Method == http.MethodOptions {
					w.WriteHeader(http.StatusNoContent)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization,Content-Type")
			w.Header().Set("Access-Control-Max-Age", "300")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func originAllowed(origin string, allowed map[string]struct{}) bool {
	if len(allowed) == 0 {
		return true
	}
	_, ok := allowed[origin]
	return ok
}

// healthHandler reports Mongo connectivity for monitoring probes.
func (s *Server) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
			commonhttp.WriteJSON(s.logger, w, http.StatusServiceUnavailable, map[string]string{
				"status": "degraded",
				"error":  err.Error(),
			})
			return
		}

		commonhttp.WriteJSON(s.logger, w, http.StatusOK, map[string]string{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	}
}

// spaFallback serves files from staticDir, handing index.html to any path
// that does not resolve to a real file.
func spaFallback(staticDir string) http.HandlerFunc {
	fileServer := http.FileServer(http.Dir(staticDir))
	index := filepath.Join(staticDir, "index.html")
	return func(w http.ResponseWriter, r *http.Request) {
		requested := filepath.Join(staticDir, filepath.Clean("/"+r.URL.Path))
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			fileServer.ServeHTTP(w, r)
			return
		}
		http.ServeFile(w, r, index)
	}
}

// shutdown disconnects the Mongo client with a timeout.
func (s *Server) shutdown(ctx context.Context) {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.client.Disconnect(shutdownCtx); err != nil {
		s.logger.Printf("MongoDB disconnect error: %v", err)
	}
}

// waitForShutdown watches ListenAndServe and OS signals for a graceful stop.
func waitForShutdown(httpServer *http.Server, errChan <-chan error, srv *Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			srv.logger.Fatalf("server exited abnormally: %v", err)
		}
	case sig := <-sigChan:
		srv.logger.Printf("received signal %s, shutting down", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			srv.logger.Printf("server shutdown error: %v", err)
		}
	}

	srv.shutdown(context.Background())
}
