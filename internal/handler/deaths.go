package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ArmaRealms/ToolStats/internal/logger"
)

// DeathTracker exposes the kill dedup set to the host
type DeathTracker interface {
	Attributed(id uuid.UUID) bool
	Forget(id uuid.UUID)
}

// DeathResponse reports whether an entity's death already credited a kill
type DeathResponse struct {
	EntityID   string `json:"entity_id"`
	Attributed bool   `json:"attributed"`
}

// HandleGetDeath reports whether a death was already attributed
func HandleGetDeath(tracker DeathTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, ParamEntityID))
		if err != nil {
			respondError(w, r, http.StatusBadRequest, ErrMsgInvalidEntityID)
			return
		}

		respondJSON(w, r, http.StatusOK, DeathResponse{
			EntityID:   id.String(),
			Attributed: tracker.Attributed(id),
		})
	}
}

// HandleForgetDeath clears a tracked death, e.g. when the host removes the
// entity
func HandleForgetDeath(tracker DeathTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, ParamEntityID))
		if err != nil {
			respondError(w, r, http.StatusBadRequest, ErrMsgInvalidEntityID)
			return
		}

		tracker.Forget(id)
		logger.FromContext(r.Context()).Info(LogMsgDeathForgotten, "entity_id", id)
		respondJSON(w, r, http.StatusOK, SuccessResponse{Message: MsgDeathForgotten})
	}
}
