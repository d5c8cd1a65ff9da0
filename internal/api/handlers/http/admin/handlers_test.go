package admin_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/ryobiguy/timesheet/internal/api/handlers/http/admin"
	mock_admin "github.com/ryobiguy/timesheet/internal/api/handlers/http/admin/mocks"
	"github.com/ryobiguy/timesheet/internal/domain"
	"github.com/ryobiguy/timesheet/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func addChiURLParam(r *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

type handlerMocks struct {
	jobsites    *mock_admin.MockJobsites
	assignments *mock_admin.MockAssignments
	events      *mock_admin.MockEvents
	entries     *mock_admin.MockEntries
	disputes    *mock_admin.MockDisputes
	summaries   *mock_admin.MockSummaries
}

func newHandler(ctrl *gomock.Controller) (*admin.Handler, handlerMocks) {
	m := handlerMocks{
		jobsites:    mock_admin.NewMockJobsites(ctrl),
		assignments: mock_admin.NewMockAssignments(ctrl),
		events:      mock_admin.NewMockEvents(ctrl),
		entries:     mock_admin.NewMockEntries(ctrl),
		disputes:    mock_admin.NewMockDisputes(ctrl),
		summaries:   mock_admin.NewMockSummaries(ctrl),
	}
	h := admin.NewHandler(newTestLogger(), m.jobsites, m.assignments, m.events, m.entries, m.disputes, m.summaries)
	return h, m
}

func TestAdminJobsiteCreate_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newHandler(ctrl)

	orgID := uuid.New()
	reqBody := fmt.Sprintf(`{"org_id":%q,"name":"Depot North","lat":55.75,"lng":37.61,"radius_m":150}`, orgID)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/jobsites/", bytes.NewBufferString(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	wantID := uuid.New()
	m.jobsites.EXPECT().
		Create(gomock.Any(), domain.CreateJobsiteRequest{
			OrgID: orgID.String(), Name: "Depot North", Lat: 55.75, Lng: 37.61, RadiusM: 150,
		}).
		Return(wantID, nil).
		Times(1)

	h.AdminJobsiteCreate(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d, body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}

	got := decodeJSON[map[string]string](t, rr)
	if got["id"] != wantID.String() {
		t.Fatalf("expected id=%s got=%s", wantID.String(), got["id"])
	}
}

func TestAdminJobsiteCreate_InvalidJSON_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newHandler(ctrl)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/jobsites/", bytes.NewBufferString("{bad json"))
	rr := httptest.NewRecorder()

	h.AdminJobsiteCreate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestAdminJobsiteCreate_RadiusOutOfRange_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newHandler(ctrl)

	reqBody := fmt.Sprintf(`{"org_id":%q,"name":"Tiny","lat":55.75,"lng":37.61,"radius_m":3}`, uuid.New())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/jobsites/", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	h.AdminJobsiteCreate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestAdminAssignmentCreate_Duplicate_409(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newHandler(ctrl)

	reqBody := fmt.Sprintf(`{"worker_id":%q,"jobsite_id":%q}`, uuid.New(), uuid.New())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/assignments/", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	m.assignments.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(uuid.Nil, e.ErrConflict).
		Times(1)

	h.AdminAssignmentCreate(rr, req)

	if rr.Code != http.StatusConflict {
		t.Fatalf("expected %d got %d, body=%s", http.StatusConflict, rr.Code, rr.Body.String())
	}
}

func TestAdminEntryUpdate_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newHandler(ctrl)

	entryID := uuid.New()
	editor := uuid.New()
	newEnd := time.Date(2025, 6, 2, 17, 0, 0, 0, time.UTC)
	minutes := 540

	reqBody := fmt.Sprintf(`{"end_at":%q,"modified_by":%q}`, newEnd.Format(time.RFC3339), editor)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/entries/"+entryID.String()+"/", bytes.NewBufferString(reqBody))
	req = addChiURLParam(req, "id", entryID.String())
	rr := httptest.NewRecorder()

	m.entries.EXPECT().
		Update(gomock.Any(), entryID, gomock.Any()).
		Return(&domain.TimeEntry{ID: entryID, DurationMinutes: &minutes}, nil).
		Times(1)

	h.AdminEntryUpdate(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
}

func TestAdminEntryUpdate_InvalidID_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newHandler(ctrl)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/entries/zzz/", bytes.NewBufferString(`{}`))
	req = addChiURLParam(req, "id", "zzz")
	rr := httptest.NewRecorder()

	h.AdminEntryUpdate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestAdminEntryApprove_NotFound_404(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newHandler(ctrl)

	entryID := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/entries/"+entryID.String()+"/approve", nil)
	req = addChiURLParam(req, "id", entryID.String())
	rr := httptest.NewRecorder()

	m.entries.EXPECT().
		Approve(gomock.Any(), entryID).
		Return(nil, e.ErrNotFound).
		Times(1)

	h.AdminEntryApprove(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d, body=%s", http.StatusNotFound, rr.Code, rr.Body.String())
	}
}

func TestAdminDisputeResolve_AlreadyResolved_409(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newHandler(ctrl)

	disputeID := uuid.New()
	reqBody := fmt.Sprintf(`{"resolution":"fixed","resolved_by":%q}`, uuid.New())
	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/disputes/"+disputeID.String()+"/resolve", bytes.NewBufferString(reqBody))
	req = addChiURLParam(req, "id", disputeID.String())
	rr := httptest.NewRecorder()

	m.disputes.EXPECT().
		Resolve(gomock.Any(), disputeID, gomock.Any()).
		Return(nil, e.ErrConflict).
		Times(1)

	h.AdminDisputeResolve(rr, req)

	if rr.Code != http.StatusConflict {
		t.Fatalf("expected %d got %d, body=%s", http.StatusConflict, rr.Code, rr.Body.String())
	}
}

func TestAdminSummaryCalculate_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newHandler(ctrl)

	workerID := uuid.New()
	weekStart := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	reqBody := fmt.Sprintf(`{"worker_id":%q,"week_start":%q}`, workerID, weekStart.Format(time.RFC3339))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/summaries/calculate", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	m.summaries.EXPECT().
		Calculate(gomock.Any(), gomock.Any()).
		Return(&domain.WeeklySummary{
			ID:            uuid.New(),
			WorkerID:      workerID,
			WeekStart:     weekStart,
			TotalRegular:  2400,
			TotalOvertime: 100,
			ApprovalState: domain.ApprovalPending,
		}, nil).
		Times(1)

	h.AdminSummaryCalculate(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[domain.WeeklySummary](t, rr)
	if got.TotalRegular != 2400 || got.TotalOvertime != 100 {
		t.Fatalf("unexpected totals: %+v", got)
	}
}

func TestAdminSummaryApprove_ServiceError_500(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newHandler(ctrl)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/summaries/"+id.String()+"/approve", nil)
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	m.summaries.EXPECT().
		Approve(gomock.Any(), id).
		Return(errors.New("boom")).
		Times(1)

	h.AdminSummaryApprove(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected %d got %d, body=%s", http.StatusInternalServerError, rr.Code, rr.Body.String())
	}
}

func TestAdminEntryList_PassesFilters(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newHandler(ctrl)

	workerID := uuid.New()
	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/admin/entries/?worker_id="+workerID.String()+"&status=APPROVED&page=2&limit=5", nil)
	rr := httptest.NewRecorder()

	m.entries.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f domain.EntryFilter) ([]*domain.TimeEntry, int64, error) {
			if f.WorkerID == nil || *f.WorkerID != workerID {
				t.Fatalf("expected worker filter, got %+v", f)
			}
			if f.Status == nil || *f.Status != domain.EntryApproved {
				t.Fatalf("expected status filter, got %+v", f)
			}
			if f.Page != 2 || f.Limit != 5 {
				t.Fatalf("expected page=2 limit=5, got %+v", f)
			}
			return nil, 0, nil
		})

	h.AdminEntryList(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
}
