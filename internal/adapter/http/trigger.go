package httpadapter

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"spendguard/internal/core/port"
)

// handleTick runs one control loop tick and returns its report. The tick is
// detached from the request so a caller timing out does not abandon it. A
// tick skipped because another is running returns HTTP 409 with the report.
// Failing to list credentials results in HTTP 500.
func (h *Handler) handleTick(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.Tick(context.WithoutCancel(r.Context()))
	if err != nil {
		h.logger.Error("tick error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	status := http.StatusOK
	if report.Skipped {
		status = http.StatusConflict
	}
	h.writeJSON(w, status, report)
}

// handleEvaluateCredentials evaluates one credential set identified by the
// {id} path parameter. Malformed ids result in HTTP 400 and unknown or
// disabled credentials in HTTP 404. Campaign failures are part of the
// returned report.
func (h *Handler) handleEvaluateCredentials(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid credentials id", http.StatusBadRequest)
		return
	}
	report, err := h.svc.RunCredentials(context.WithoutCancel(r.Context()), id)
	switch {
	case errors.Is(err, port.ErrCredentialsNotFound):
		http.NotFound(w, r)
		return
	case err != nil && report == nil:
		h.logger.Error("evaluate credentials error", slog.String("credentials_id", id.String()), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, report)
}
