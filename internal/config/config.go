package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr               string
	MongoURI           string
	MongoDatabase      string
	SurveyCollection   string
	Timeout            time.Duration
	ServerLog          *log.Logger
	JWTSecret          []byte
	AdminUsername      string
	AdminPassword      string
	SMTPHost           string
	SMTPPort           int
	SMTPUser           string
	SMTPPassword       string
	FromAddress        string
	AdminEmail         string
	RecaptchaSecret    string
	RecaptchaVerifyURL string
	RecaptchaTimeout   time.Duration
	AllowedOrigins     []string
	AppEnv             string
	StaticDir          string
}

// Load reads environment variables and returns a fully populated Config.
// A local .env file is honoured when present so development matches the
// deployed environment shape.
func Load() Config {
	_ = godotenv.Load()

	timeout := 10 * time.Second
	if v := os.Getenv("MONGO_CONNECT_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			timeout = parsed
		}
	}

	recaptchaTimeout := 5 * time.Second
	if raw := strings.TrimSpace(os.Getenv("RECAPTCHA_TIMEOUT")); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			recaptchaTimeout = parsed
		}
	}

	jwtSecret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET must be configured")
	}

	recaptchaSecret := strings.TrimSpace(os.Getenv("RECAPTCHA_SECRET_KEY"))
	if recaptchaSecret == "" {
		log.Fatal("RECAPTCHA_SECRET_KEY must be configured")
	}

	smtpPort := 587
	if raw := strings.TrimSpace(os.Getenv("SMTP_PORT")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			smtpPort = parsed
		}
	}

	cfg := Config{
		Addr:               envOrDefault("HTTP_ADDR", ":5000"),
		MongoURI:           envOrDefault("MONGO_URI", "mongodb://mongo:27017"),
		MongoDatabase:      envOrDefault("MONGO_DB", "survey-app"),
		SurveyCollection:   envOrDefault("SURVEY_COLLECTION", "surveys"),
		Timeout:            timeout,
		ServerLog:          log.New(os.Stdout, "[survey-api] ", log.LstdFlags|log.Lshortfile),
		JWTSecret:          []byte(jwtSecret),
		AdminUsername:      envOrDefault("ADMIN_USERNAME", "Admin"),
		AdminPassword:      envOrDefault("ADMIN_PASSWORD", "Admin@123"),
		SMTPHost:           strings.TrimSpace(os.Getenv("SMTP_HOST")),
		SMTPPort:           smtpPort,
		SMTPUser:           strings.TrimSpace(os.Getenv("SMTP_USER")),
		SMTPPassword:       os.Getenv("SMTP_PASSWORD"),
		FromAddress:        strings.TrimSpace(os.Getenv("SMTP_FROM_ADDRESS")),
		AdminEmail:         strings.TrimSpace(os.Getenv("ADMIN_EMAIL")),
		RecaptchaSecret:    recaptchaSecret,
		RecaptchaVerifyURL: envOrDefault("RECAPTCHA_VERIFY_URL", "https://www.google.com/recaptcha/api/siteverify"),
		RecaptchaTimeout:   recaptchaTimeout,
		AllowedOrigins:     parseList("API_ALLOWED_ORIGINS", []string{"*"}),
		AppEnv:             envOrDefault("APP_ENV", "development"),
		StaticDir:          envOrDefault("STATIC_DIR", "frontend/build"),
	}

	if cfg.SMTPHost == "" {
		cfg.ServerLog.Printf("SMTP_HOST is not set; notification emails will be reported as failed")
	}

	return cfg
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}
