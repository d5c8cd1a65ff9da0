package admin

import (
	"encoding/json"
	"net/http"

	"github.com/ryobiguy/timesheet/internal/domain"
	"github.com/ryobiguy/timesheet/pkg/validator"

	"log/slog"
)

func (h *Handler) AdminEntryGet(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminEntryGet", slog.String("remote", r.RemoteAddr))

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	entry, err := h.Entries.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, entry)
}

func (h *Handler) AdminEntryList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminEntryList", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	f := domain.EntryFilter{
		WorkerID:  parseUUIDParam(r.URL.Query().Get("worker_id")),
		JobsiteID: parseUUIDParam(r.URL.Query().Get("jobsite_id")),
		From:      parseTimeParam(r.URL.Query().Get("from")),
		To:        parseTimeParam(r.URL.Query().Get("to")),
		Page:      parseInt(r.URL.Query().Get("page"), 1),
		Limit:     parseInt(r.URL.Query().Get("limit"), 20),
	}
	if s := r.URL.Query().Get("status"); s != "" {
		status := domain.EntryStatus(s)
		f.Status = &status
	}

	entries, total, err := h.Entries.List(r.Context(), f)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("entries listed", slog.Int("count", len(entries)), slog.Int64("total", total))
	h.writeJSON(w, http.StatusOK, map[string]any{
		"entries": entries,
		"total":   total,
		"page":    f.Page,
		"limit":   f.Limit,
	})
}

// AdminEntryUpdate is the manual-edit path. Shifting either bound
// recomputes the duration server side.
func (h *Handler) AdminEntryUpdate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminEntryUpdate", slog.String("remote", r.RemoteAddr))

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req domain.UpdateTimeEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	entry, err := h.Entries.Update(r.Context(), id, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("entry updated", slog.String("id", id.String()))
	h.writeJSON(w, http.StatusOK, entry)
}

func (h *Handler) AdminEntryDelete(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminEntryDelete", slog.String("remote", r.RemoteAddr))

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.Entries.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("entry deleted", slog.String("id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AdminEntryApprove(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminEntryApprove", slog.String("remote", r.RemoteAddr))

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	entry, err := h.Entries.Approve(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("entry approved", slog.String("id", id.String()))
	h.writeJSON(w, http.StatusOK, entry)
}
