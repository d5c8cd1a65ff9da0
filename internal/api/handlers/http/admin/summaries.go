package admin

import (
	"encoding/json"
	"net/http"

	"github.com/ryobiguy/timesheet/internal/domain"
	"github.com/ryobiguy/timesheet/pkg/validator"

	"log/slog"
)

// AdminSummaryCalculate recomputes the weekly totals for one worker. Any
// week_start inside the target week works; normalization happens server
// side. Recalculating drops a previous approval back to pending.
func (h *Handler) AdminSummaryCalculate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminSummaryCalculate", slog.String("remote", r.RemoteAddr))

	var req domain.CalculateSummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	summary, err := h.Summaries.Calculate(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("summary calculated",
		slog.String("id", summary.ID.String()),
		slog.String("worker_id", summary.WorkerID.String()),
		slog.Time("week_start", summary.WeekStart),
		slog.Int("regular", summary.TotalRegular),
		slog.Int("overtime", summary.TotalOvertime),
	)
	h.writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) AdminSummaryList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminSummaryList", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	f := domain.SummaryFilter{
		WorkerID:  parseUUIDParam(r.URL.Query().Get("worker_id")),
		WeekStart: parseTimeParam(r.URL.Query().Get("week_start")),
		Page:      parseInt(r.URL.Query().Get("page"), 1),
		Limit:     parseInt(r.URL.Query().Get("limit"), 20),
	}

	summaries, total, err := h.Summaries.List(r.Context(), f)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("summaries listed", slog.Int("count", len(summaries)), slog.Int64("total", total))
	h.writeJSON(w, http.StatusOK, map[string]any{
		"summaries": summaries,
		"total":     total,
		"page":      f.Page,
		"limit":     f.Limit,
	})
}

func (h *Handler) AdminSummaryApprove(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminSummaryApprove", slog.String("remote", r.RemoteAddr))

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.Summaries.Approve(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("summary approved", slog.String("id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}
