package admin

import (
	"context"
	"net/http"
	"strings"
	"time"

	adminapp "github.com/Vicky-2409/mern-survey-app/internal/admin/application"
	admindomain "github.com/Vicky-2409/mern-survey-app/internal/admin/domain"
	"github.com/Vicky-2409/mern-survey-app/internal/interfaces/http/common"
)

type adminSurveyResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Gender      string    `json:"gender"`
	Nationality string    `json:"nationality"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	Message     string    `json:"message"`
	IPAddress   string    `json:"ipAddress"`
	UserAgent   string    `json:"userAgent"`
	CreatedAt   time.Time `json:"createdAt"`
}

// surveyListHandler returns stored submissions newest-first. keyword, page
// and limit are optional; without them the full list comes back.
func (h *Handler) surveyListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		keyword := strings.TrimSpace(query.Get("keyword"))
		page, _ := common.ParsePositiveInt(query.Get("page"), 0)
		limit, _ := common.ParsePositiveInt(query.Get("limit"), 0)

		filter := adminapp.SurveyFilter{Keyword: keyword}
		paging := adminapp.Paging{Page: page, Limit: limit}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		surveys, err := h.surveyService.List(ctx, filter, paging)
		if err != nil {
			h.logger.Printf("admin survey list fetch failed: %v", err)
			common.WriteMessage(h.logger, w, http.StatusInternalServerError, "Error fetching surveys")
			return
		}

		items := make([]adminSurveyResponse, 0, len(surveys))
		for _, survey := range surveys {
			items = append(items, adminSurveyDomainToResponse(survey))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, items)
	}
}

func adminSurveyDomainToResponse(survey admindomain.Survey) adminSurveyResponse {
	return adminSurveyResponse{
		ID:          survey.ID,
		Name:        survey.Name,
		Gender:      survey.Gender,
		Nationality: survey.Nationality,
		Email:       survey.Email,
		Phone:       survey.Phone,
		Address:     survey.Address,
		Message:     survey.Message,
		IPAddress:   survey.IPAddress,
		UserAgent:   survey.UserAgent,
		CreatedAt:   survey.CreatedAt,
	}
}
