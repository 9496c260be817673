package public

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/mail"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Vicky-2409/mern-survey-app/internal/interfaces/http/common"
	mailtpl "github.com/Vicky-2409/mern-survey-app/internal/mail"
	publicapp "github.com/Vicky-2409/mern-survey-app/internal/public/application"
	"github.com/Vicky-2409/mern-survey-app/internal/public/domain"
)

var (
	namePattern  = regexp.MustCompile(`^[a-zA-Z\s-']+$`)
	phonePattern = regexp.MustCompile(`^\+?[\d\s\-()]{8,20}$`)
)

type createSurveyRequest struct {
	Name           string `json:"name"`
	Gender         string `json:"gender"`
	Nationality    string `json:"nationality"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	Message        string `json:"message"`
	Honeypot       string `json:"honeypot"`
	RecaptchaToken string `json:"recaptchaToken"`
}

type surveyResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Gender      string    `json:"gender"`
	Nationality string    `json:"nationality"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"createdAt"`
}

type notificationStatus struct {
	UserEmail  string `json:"userEmail"`
	AdminEmail string `json:"adminEmail"`
}

type createSurveyResponse struct {
	Message       string             `json:"message"`
	Survey        surveyResponse     `json:"survey"`
	Notifications notificationStatus `json:"notifications"`
}

// validate checks the four constrained fields in fixed order and returns the
// first violation as a caller-facing message.
func (req *createSurveyRequest) validate() error {
	nameLen := utf8.RuneCountInString(req.Name)
	if nameLen < 2 || nameLen > 50 || !namePattern.MatchString(req.Name) {
		return errors.New("Invalid name format")
	}

	addr, err := mail.ParseAddress(req.Email)
	if err != nil || addr.Address != req.Email {
		return errors.New("Invalid email format")
	}

	if !phonePattern.MatchString(req.Phone) {
		return errors.New("Invalid phone format")
	}

	messageLen := utf8.RuneCountInString(req.Message)
	if messageLen < 10 || messageLen > 1000 {
		return errors.New("Message must be between 10 and 1000 characters")
	}

	return nil
}

// missingFields lists the required business fields that arrived empty, in
// the order they are documented.
func (req *createSurveyRequest) missingFields() []string {
	fields := []struct {
		name  string
		value string
	}{
		{"name", req.Name},
		{"gender", req.Gender},
		{"nationality", req.Nationality},
		{"email", req.Email},
		{"phone", req.Phone},
		{"address", req.Address},
		{"message", req.Message},
	}

	missing := make([]string, 0)
	for _, field := range fields {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	return missing
}

// surveyCreateHandler runs the admission pipeline: honeypot, bot
// verification, field validation, spam heuristics, required fields, then the
// duplicate throttle and insert via the command service. Each stage rejects
// on its own; notification results never fail the request.
func (h *Handler) surveyCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		var req createSurveyRequest
		decoder := json.NewDecoder(io.LimitReader(r.Body, maxSubmissionBody))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil {
			common.WriteMessage(h.logger, w, http.StatusBadRequest, "Invalid input")
			return
		}

		// Bots that fill the hidden field get the success they expect and
		// nothing else happens.
		if strings.TrimSpace(req.Honeypot) != "" {
			common.WriteMessage(h.logger, w, http.StatusOK, "Survey submitted successfully")
			return
		}

		if strings.TrimSpace(req.RecaptchaToken) == "" {
			common.WriteMessage(h.logger, w, http.StatusBadRequest, "reCAPTCHA verification required")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
		defer cancel()

		human, err := h.recaptcha.Verify(ctx, req.RecaptchaToken)
		if err != nil {
			h.logger.Printf("reCAPTCHA verification call failed: %v", err)
			human = false
		}
		if !human {
			common.WriteMessage(h.logger, w, http.StatusBadRequest, "reCAPTCHA verification failed")
			return
		}

		if err := req.validate(); err != nil {
			common.WriteMessage(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		if domain.IsSuspicious(req.Message) {
			common.WriteMessage(h.logger, w, http.StatusBadRequest, "Message contains suspicious content")
			return
		}

		if missing := req.missingFields(); len(missing) > 0 {
			common.WriteMessage(h.logger, w, http.StatusBadRequest,
				fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", ")))
			return
		}

		cmd := publicapp.SubmitSurveyCommand{
			Name:        req.Name,
			Gender:      req.Gender,
			Nationality: req.Nationality,
			Email:       req.Email,
			Phone:       req.Phone,
			Address:     req.Address,
			Message:     req.Message,
			IPAddress:   clientIP(r),
			UserAgent:   r.UserAgent(),
		}

		created, err := h.surveyCommands.Submit(ctx, cmd)
		if err != nil {
			if errors.Is(err, publicapp.ErrDuplicateSubmission) {
				common.WriteMessage(h.logger, w, http.StatusTooManyRequests,
					"Too many submissions from this email address. Please try again later.")
				return
			}
			h.logger.Printf("survey insert failed: %v", err)
			common.WriteMessage(h.logger, w, http.StatusInternalServerError, "Error submitting survey")
			return
		}

		userSent := h.mailer.Send(created.Email, mailtpl.UserConfirmation(created.Name))
		adminSent := h.mailer.Send(h.adminEmail, mailtpl.AdminAlert(*created))

		common.WriteJSON(h.logger, w, http.StatusCreated, createSurveyResponse{
			Message: "Survey submitted successfully",
			Survey: surveyResponse{
				ID:          created.ID,
				Name:        created.Name,
				Gender:      created.Gender,
				Nationality: created.Nationality,
				Email:       created.Email,
				Phone:       created.Phone,
				Address:     created.Address,
				Message:     created.Message,
				CreatedAt:   created.CreatedAt,
			},
			Notifications: notificationStatus{
				UserEmail:  sentLabel(userSent),
				AdminEmail: sentLabel(adminSent),
			},
		})
	}
}

func sentLabel(sent bool) string {
	if sent {
		return "sent"
	}
	return "failed"
}

// clientIP extracts the source address. The RealIP middleware has already
// folded X-Forwarded-For into RemoteAddr by the time this runs.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
