package admin

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ryobiguy/timesheet/pkg/e"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	l := h.log(r)

	l.Error("handler error",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)

	switch {
	case errors.Is(err, e.ErrNotFound):
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, e.ErrInvalidInput):
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid input"})
	case errors.Is(err, e.ErrConflict):
		h.writeJSON(w, http.StatusConflict, map[string]string{"error": "conflict"})
	default:
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("json encode failed", slog.Any("error", err))
	}
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.log(r).Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
