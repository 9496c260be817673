package common

import (
	"encoding/json"
	"log"
	"net/http"
)

// WriteJSON serializes payload to JSON with status and logs on failure.
func WriteJSON(logger *log.Logger, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Printf("JSON encode failed: %v", err)
	}
}

// WriteMessage writes the standard {"message": ...} envelope every rejection
// and status reply in the API uses.
func WriteMessage(logger *log.Logger, w http.ResponseWriter, status int, message string) {
	WriteJSON(logger, w, status, map[string]string{"message": message})
}
