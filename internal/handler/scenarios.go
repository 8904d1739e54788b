package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/ArmaRealms/ToolStats/internal/logger"
	"github.com/ArmaRealms/ToolStats/internal/scenario"
)

// ScenarioRunner replays a scenario document against the live tracker
type ScenarioRunner interface {
	RunScenario(ctx context.Context, doc []byte) (*scenario.ExecutionResult, error)
}

// clientErrors are scenario failures caused by the submitted document
var clientErrors = []error{
	scenario.ErrInvalidScenario,
	scenario.ErrInvalidParameter,
	scenario.ErrUnknownEntity,
	scenario.ErrDuplicateEntity,
}

// HandleRunScenario accepts a YAML scenario body and answers with its
// execution result. A scenario whose expectations fail is still a 200; the
// result carries success=false.
func HandleRunScenario(runner ScenarioRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := io.ReadAll(r.Body)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				respondError(w, r, http.StatusRequestEntityTooLarge, ErrMsgScenarioTooLarge)
				return
			}
			respondError(w, r, http.StatusBadRequest, ErrMsgReadBodyFailed)
			return
		}
		if len(doc) == 0 {
			respondError(w, r, http.StatusBadRequest, ErrMsgEmptyScenario)
			return
		}

		log := logger.FromContext(r.Context())
		result, err := runner.RunScenario(r.Context(), doc)
		if err != nil {
			for _, target := range clientErrors {
				if errors.Is(err, target) {
					respondError(w, r, http.StatusBadRequest, err.Error())
					return
				}
			}
			log.Error(LogMsgScenarioFailed, "error", err)
			respondError(w, r, http.StatusInternalServerError, ErrMsgScenarioFailed)
			return
		}

		log.Info(LogMsgScenarioReplayed, "scenario", result.ScenarioName, "success", result.Success, "ticks", result.Ticks)
		respondJSON(w, r, http.StatusOK, result)
	}
}
