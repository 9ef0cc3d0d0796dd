package handlers

import (
	"bytes"
	"net/http"
	"route-directions/internal/domain"
	"route-directions/internal/platform/obs"
	"route-directions/internal/render"
	"route-directions/internal/services"

	"go.uber.org/zap"
)

type ProcessHandler struct {
	Planner *services.Planner
	Logger  *zap.Logger
}

// Process runs the directions pipeline for the form's origin and dest fields
// and responds with the rendered fragments.
//
// Validation failures are 400. Failures that abort the pipeline (transport,
// undecodable upstream body) are 502. Upstream errors the pipeline renders
// itself are still 200, matching the CLI's exit status.
func (h *ProcessHandler) Process(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	origin := q.Get("origin")
	destination := q.Get("dest")

	var buf bytes.Buffer
	err := h.Planner.Run(r.Context(), origin, destination, render.NewHTML(&buf))

	status := http.StatusOK
	switch {
	case err == nil:
	case domain.IsValidationError(err):
		status = http.StatusBadRequest
	default:
		h.Logger.Error("process failed",
			zap.String("req_id", obs.RequestID(r.Context())),
			zap.Error(err),
		)
		buf.Reset()
		render.NewHTML(&buf).Error("Error: the directions service is unavailable. Please try again.")
		status = http.StatusBadGateway
	}

	writeHTML(w, r, status, buf.Bytes())
}
