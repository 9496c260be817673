package admin

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/Vicky-2409/mern-survey-app/internal/auth"
	"github.com/Vicky-2409/mern-survey-app/internal/interfaces/http/common"
)

const maxSessionRequestBody = 1 << 12

type createSessionRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type createSessionResponse struct {
	Token string `json:"token"`
}

// sessionCreateHandler exchanges the admin credential pair for a signed
// token. The rejection is the same whichever half of the pair was wrong.
func (h *Handler) sessionCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		var req createSessionRequest
		decoder := json.NewDecoder(io.LimitReader(r.Body, maxSessionRequestBody))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil {
			common.WriteMessage(h.logger, w, http.StatusBadRequest, "Invalid input")
			return
		}

		token, err := h.issuer.Authenticate(req.Username, req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				common.WriteMessage(h.logger, w, http.StatusUnauthorized, "Invalid credentials")
				return
			}
			h.logger.Printf("session token issue failed: %v", err)
			common.WriteMessage(h.logger, w, http.StatusInternalServerError, "Server error")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, createSessionResponse{Token: token})
	}
}
