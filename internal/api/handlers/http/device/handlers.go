package device

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"log/slog"

	"github.com/ryobiguy/timesheet/internal/domain"
	"github.com/ryobiguy/timesheet/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type EventIngestion interface {
	Report(ctx context.Context, req domain.ReportEventRequest) (domain.ReportEventResponse, error)
	CheckLocation(ctx context.Context, req domain.GeofenceCheckRequest) (domain.GeofenceCheckResponse, error)
}

type Handler struct {
	logger    *slog.Logger
	Ingestion EventIngestion
}

func NewHandler(logger *slog.Logger, ingestion EventIngestion) *Handler {
	return &Handler{
		logger:    logger,
		Ingestion: ingestion,
	}
}

// DeviceEventReport takes one ENTER/EXIT crossing from a device. The
// response always carries the stored event plus the state-machine outcome.
func (h *Handler) DeviceEventReport(w http.ResponseWriter, r *http.Request) {
	var req domain.ReportEventRequest

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	resp, err := h.Ingestion.Report(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) DeviceGeofenceCheck(w http.ResponseWriter, r *http.Request) {
	var req domain.GeofenceCheckRequest

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	resp, err := h.Ingestion.CheckLocation(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}
