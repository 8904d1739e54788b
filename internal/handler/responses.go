package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ArmaRealms/ToolStats/internal/logger"
)

const contentTypeJSON = "application/json"

// SuccessResponse acknowledges an operation
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries a user-facing error message
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON encodes payload before writing anything, so an encoding failure
// can still be reported as a 500
func respondJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	buf := getBuffer()
	defer putBuffer(buf)

	log := logger.FromContext(r.Context())
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		log.Error(LogMsgEncodeFailed, "error", err, "path", r.URL.Path)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Warn(LogMsgWriteFailed, "error", err, "path", r.URL.Path)
	}
}

func respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	respondJSON(w, r, status, ErrorResponse{Error: message})
}
