package admin

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/ryobiguy/timesheet/internal/domain"
	"github.com/ryobiguy/timesheet/pkg/validator"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Jobsites interface {
	Create(ctx context.Context, req domain.CreateJobsiteRequest) (uuid.UUID, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Jobsite, error)
	List(ctx context.Context, f domain.JobsiteFilter) ([]*domain.Jobsite, int64, error)
}

type Assignments interface {
	Create(ctx context.Context, req domain.CreateAssignmentRequest) (uuid.UUID, error)
	List(ctx context.Context, f domain.AssignmentFilter) ([]*domain.Assignment, error)
}

type Events interface {
	ListEvents(ctx context.Context, f domain.EventFilter) ([]*domain.GeofenceEvent, int64, error)
}

type Entries interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.TimeEntry, error)
	List(ctx context.Context, f domain.EntryFilter) ([]*domain.TimeEntry, int64, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateTimeEntryRequest) (*domain.TimeEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Approve(ctx context.Context, id uuid.UUID) (*domain.TimeEntry, error)
}

type Disputes interface {
	Create(ctx context.Context, req domain.CreateDisputeRequest) (*domain.Dispute, error)
	Resolve(ctx context.Context, id uuid.UUID, req domain.ResolveDisputeRequest) (*domain.Dispute, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Dispute, error)
	List(ctx context.Context, f domain.DisputeFilter) ([]*domain.Dispute, int64, error)
}

type Summaries interface {
	Calculate(ctx context.Context, req domain.CalculateSummaryRequest) (*domain.WeeklySummary, error)
	List(ctx context.Context, f domain.SummaryFilter) ([]*domain.WeeklySummary, int64, error)
	Approve(ctx context.Context, id uuid.UUID) error
}

type Handler struct {
	logger      *slog.Logger
	Jobsites    Jobsites
	Assignments Assignments
	Events      Events
	Entries     Entries
	Disputes    Disputes
	Summaries   Summaries
}

func NewHandler(
	logger *slog.Logger,
	jobsites Jobsites,
	assignments Assignments,
	events Events,
	entries Entries,
	disputes Disputes,
	summaries Summaries,
) *Handler {
	return &Handler{
		logger:      logger,
		Jobsites:    jobsites,
		Assignments: assignments,
		Events:      events,
		Entries:     entries,
		Disputes:    disputes,
		Summaries:   summaries,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) AdminJobsiteCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminJobsiteCreate", slog.String("remote", r.RemoteAddr))

	var req domain.CreateJobsiteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	l.Info("creating jobsite",
		slog.String("name", req.Name),
		slog.Float64("lat", req.Lat),
		slog.Float64("lng", req.Lng),
		slog.Float64("radius_m", req.RadiusM),
	)

	id, err := h.Jobsites.Create(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("jobsite created", slog.String("id", id.String()))
	h.writeJSON(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (h *Handler) AdminJobsiteGet(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminJobsiteGet", slog.String("remote", r.RemoteAddr))

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	site, err := h.Jobsites.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, site)
}

func (h *Handler) AdminJobsiteList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminJobsiteList", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	f := domain.JobsiteFilter{
		OrgID: parseUUIDParam(r.URL.Query().Get("org_id")),
		Page:  parseInt(r.URL.Query().Get("page"), 1),
		Limit: parseInt(r.URL.Query().Get("limit"), 20),
	}

	sites, total, err := h.Jobsites.List(r.Context(), f)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("jobsites listed", slog.Int("count", len(sites)), slog.Int64("total", total))
	h.writeJSON(w, http.StatusOK, map[string]any{
		"jobsites": sites,
		"total":    total,
		"page":     f.Page,
		"limit":    f.Limit,
	})
}

func (h *Handler) AdminAssignmentCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminAssignmentCreate", slog.String("remote", r.RemoteAddr))

	var req domain.CreateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	id, err := h.Assignments.Create(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("assignment created", slog.String("id", id.String()))
	h.writeJSON(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (h *Handler) AdminAssignmentList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminAssignmentList", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	f := domain.AssignmentFilter{
		WorkerID:  parseUUIDParam(r.URL.Query().Get("worker_id")),
		JobsiteID: parseUUIDParam(r.URL.Query().Get("jobsite_id")),
	}

	assignments, err := h.Assignments.List(r.Context(), f)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{"assignments": assignments})
}

func (h *Handler) AdminEventList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminEventList", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	f := domain.EventFilter{
		WorkerID:  parseUUIDParam(r.URL.Query().Get("worker_id")),
		JobsiteID: parseUUIDParam(r.URL.Query().Get("jobsite_id")),
		From:      parseTimeParam(r.URL.Query().Get("from")),
		To:        parseTimeParam(r.URL.Query().Get("to")),
		Page:      parseInt(r.URL.Query().Get("page"), 1),
		Limit:     parseInt(r.URL.Query().Get("limit"), 20),
	}

	events, total, err := h.Events.ListEvents(r.Context(), f)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("events listed", slog.Int("count", len(events)), slog.Int64("total", total))
	h.writeJSON(w, http.StatusOK, map[string]any{
		"events": events,
		"total":  total,
		"page":   f.Page,
		"limit":  f.Limit,
	})
}

func parseTimeParam(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	return &t
}

func parseUUIDParam(s string) *uuid.UUID {
	if s == "" {
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return &id
}
