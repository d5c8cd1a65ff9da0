package admin

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ryobiguy/timesheet/internal/domain"
	"github.com/ryobiguy/timesheet/pkg/validator"

	"log/slog"
)

func (h *Handler) AdminDisputeCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminDisputeCreate", slog.String("remote", r.RemoteAddr))

	var req domain.CreateDisputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	dispute, err := h.Disputes.Create(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("dispute created",
		slog.String("id", dispute.ID.String()),
		slog.String("time_entry_id", dispute.TimeEntryID.String()),
	)
	h.writeJSON(w, http.StatusCreated, dispute)
}

func (h *Handler) AdminDisputeResolve(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminDisputeResolve", slog.String("remote", r.RemoteAddr))

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req domain.ResolveDisputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	dispute, err := h.Disputes.Resolve(r.Context(), id, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("dispute resolved", slog.String("id", id.String()))
	h.writeJSON(w, http.StatusOK, dispute)
}

func (h *Handler) AdminDisputeGet(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminDisputeGet", slog.String("remote", r.RemoteAddr))

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	dispute, err := h.Disputes.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, dispute)
}

func (h *Handler) AdminDisputeList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminDisputeList", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	f := domain.DisputeFilter{
		TimeEntryID: parseUUIDParam(r.URL.Query().Get("time_entry_id")),
		Page:        parseInt(r.URL.Query().Get("page"), 1),
		Limit:       parseInt(r.URL.Query().Get("limit"), 20),
	}
	if s := r.URL.Query().Get("open"); s != "" {
		if open, err := strconv.ParseBool(s); err == nil {
			f.Open = &open
		}
	}

	disputes, total, err := h.Disputes.List(r.Context(), f)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("disputes listed", slog.Int("count", len(disputes)), slog.Int64("total", total))
	h.writeJSON(w, http.StatusOK, map[string]any{
		"disputes": disputes,
		"total":    total,
		"page":     f.Page,
		"limit":    f.Limit,
	})
}
