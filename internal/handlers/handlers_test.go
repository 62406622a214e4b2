package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/interviewprep/practice-service/internal/report"
	"github.com/interviewprep/practice-service/internal/services"
	"github.com/interviewprep/practice-service/internal/utils"
)

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) GetGroupReport(ctx context.Context, groupID string) (*services.GroupReport, error) {
	args := m.Called(ctx, groupID)
	result, _ := args.Get(0).(*services.GroupReport)
	return result, args.Error(1)
}

func (m *MockReportService) GetLearningReport(ctx context.Context, req *services.LearningReportRequest) (*services.LearningReport, error) {
	args := m.Called(ctx, req)
	result, _ := args.Get(0).(*services.LearningReport)
	return result, args.Error(1)
}

func (m *MockReportService) GetCompetencyRadar(ctx context.Context, sessionID string) (*services.CompetencyReport, error) {
	args := m.Called(ctx, sessionID)
	result, _ := args.Get(0).(*services.CompetencyReport)
	return result, args.Error(1)
}

func (m *MockReportService) InvalidateGroup(ctx context.Context, groupID string) error {
	args := m.Called(ctx, groupID)
	return args.Error(0)
}

type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) ExportWorkbook(ctx context.Context) (*services.ExportResult, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).(*services.ExportResult)
	return result, args.Error(1)
}

type stubServiceManager struct {
	report services.ReportService
	export services.ExportService
}

func (s *stubServiceManager) Report() services.ReportService { return s.report }
func (s *stubServiceManager) Export() services.ExportService { return s.export }

func setupRouter(reportService *MockReportService, exportService *MockExportService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := utils.NewSlogLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	router := gin.New()
	router.Use(utils.ContextLogger(logger))
	NewHandlerManager(&stubServiceManager{report: reportService, export: exportService}, utils.NewValidator(), logger).SetupRoutes(router)
	return router
}

func perform(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHealthCheck(t *testing.T) {
	router := setupRouter(new(MockReportService), new(MockExportService))

	w := perform(router, http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestGetGroupReport(t *testing.T) {
	reportService := new(MockReportService)
	router := setupRouter(reportService, new(MockExportService))

	tier := report.TierHigh
	reportService.On("GetGroupReport", mock.Anything, "g-1").Return(&services.GroupReport{
		GroupID: "g-1",
		Stats:   report.Stats{TotalSessions: 2, AverageScore: 80, HighestScore: 90},
		Evaluation: &services.Evaluation{
			Tier:     tier,
			Feedback: report.Present(tier),
		},
		Sessions: []services.SessionItem{},
	}, nil)

	w := perform(router, http.MethodGet, "/api/v1/practice-groups/g-1/report")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "g-1", body["group_id"])
	stats := body["stats"].(map[string]interface{})
	assert.Equal(t, 2.0, stats["total_sessions"])
	assert.Equal(t, 80.0, stats["average_score"])
	evaluation := body["evaluation"].(map[string]interface{})
	assert.Equal(t, "high", evaluation["tier"])
}

func TestGetGroupReport_NotFound(t *testing.T) {
	reportService := new(MockReportService)
	router := setupRouter(reportService, new(MockExportService))
	reportService.On("GetGroupReport", mock.Anything, "missing").Return(nil, services.ErrGroupNotFound)

	w := perform(router, http.MethodGet, "/api/v1/practice-groups/missing/report")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "GROUP_NOT_FOUND", decodeError(t, w).Code)
}

func TestGetGroupReport_InternalError(t *testing.T) {
	reportService := new(MockReportService)
	router := setupRouter(reportService, new(MockExportService))
	reportService.On("GetGroupReport", mock.Anything, "g-1").Return(nil, errors.New("db down"))

	w := perform(router, http.MethodGet, "/api/v1/practice-groups/g-1/report")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "INTERNAL_ERROR", resp.Code)
	assert.NotContains(t, resp.Message, "db down")
}

func TestInvalidateGroupReport(t *testing.T) {
	reportService := new(MockReportService)
	router := setupRouter(reportService, new(MockExportService))
	reportService.On("InvalidateGroup", mock.Anything, "g-1").Return(nil)

	w := perform(router, http.MethodDelete, "/api/v1/practice-groups/g-1/report/cache")
	assert.Equal(t, http.StatusOK, w.Code)
	reportService.AssertExpectations(t)
}

func TestGetLearningReport(t *testing.T) {
	reportService := new(MockReportService)
	router := setupRouter(reportService, new(MockExportService))

	reportService.On("GetLearningReport", mock.Anything, mock.MatchedBy(func(req *services.LearningReportRequest) bool {
		return req.UserID == "u-1" &&
			req.From != nil && req.From.Equal(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)) &&
			req.To == nil
	})).Return(&services.LearningReport{UserID: "u-1", TotalSessions: 4, Tier: report.TierMedium}, nil)

	w := perform(router, http.MethodGet, "/api/v1/users/u-1/learning-report?from=2026-05-01")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"tier":"medium"`)
	reportService.AssertExpectations(t)
}

func TestGetLearningReport_BadDate(t *testing.T) {
	reportService := new(MockReportService)
	router := setupRouter(reportService, new(MockExportService))

	w := perform(router, http.MethodGet, "/api/v1/users/u-1/learning-report?from=yesterday")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	reportService.AssertNotCalled(t, "GetLearningReport", mock.Anything, mock.Anything)
}

func TestGetLearningReport_ListParams(t *testing.T) {
	reportService := new(MockReportService)
	router := setupRouter(reportService, new(MockExportService))

	reportService.On("GetLearningReport", mock.Anything, mock.MatchedBy(func(req *services.LearningReportRequest) bool {
		return req.Stage == "technical" && req.SortOrder == "asc" && req.Limit == 5 && req.Offset == 10
	})).Return(&services.LearningReport{UserID: "u-1"}, nil)

	w := perform(router, http.MethodGet, "/api/v1/users/u-1/learning-report?stage=technical&sort_order=asc&limit=5&offset=10")
	require.Equal(t, http.StatusOK, w.Code)
	reportService.AssertExpectations(t)
}

func TestGetLearningReport_InvalidListParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
		field string
	}{
		{name: "unknown stage", query: "stage=product_sense", field: "stage"},
		{name: "bad sort order", query: "sort_order=sideways", field: "sort_order"},
		{name: "page too large", query: "limit=500", field: "limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reportService := new(MockReportService)
			router := setupRouter(reportService, new(MockExportService))

			w := perform(router, http.MethodGet, "/api/v1/users/u-1/learning-report?"+tt.query)
			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), `"field":"`+tt.field+`"`)
			reportService.AssertNotCalled(t, "GetLearningReport", mock.Anything, mock.Anything)
		})
	}
}

func TestGetLearningReport_ValidationError(t *testing.T) {
	reportService := new(MockReportService)
	router := setupRouter(reportService, new(MockExportService))
	reportService.On("GetLearningReport", mock.Anything, mock.Anything).
		Return(nil, services.ValidationErrors{*services.NewValidationError("from", "must not be after to", "date_range", nil)})

	w := perform(router, http.MethodGet, "/api/v1/users/u-1/learning-report?from=2026-05-10&to=2026-05-01")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Validation failed", decodeError(t, w).Message)
}

func TestGetCompetencyRadar(t *testing.T) {
	reportService := new(MockReportService)
	router := setupRouter(reportService, new(MockExportService))
	reportService.On("GetCompetencyRadar", mock.Anything, "s-1").Return(&services.CompetencyReport{
		SessionID: "s-1",
		Points:    report.CompetencyRadar(map[report.Competency]float64{report.CompetencyExpression: 3}),
	}, nil)

	w := perform(router, http.MethodGet, "/api/v1/sessions/s-1/competencies")
	require.Equal(t, http.StatusOK, w.Code)

	var body services.CompetencyReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Points, 5)
	assert.Equal(t, 3.0, body.Points[2].Score)
}

func TestGetCompetencyRadar_NotFound(t *testing.T) {
	reportService := new(MockReportService)
	router := setupRouter(reportService, new(MockExportService))
	reportService.On("GetCompetencyRadar", mock.Anything, "s-9").Return(nil, services.ErrSessionNotFound)

	w := perform(router, http.MethodGet, "/api/v1/sessions/s-9/competencies")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExportWorkbook(t *testing.T) {
	exportService := new(MockExportService)
	router := setupRouter(new(MockReportService), exportService)
	exportService.On("ExportWorkbook", mock.Anything).Return(&services.ExportResult{
		Filename:  "practice_data_2026-06-01T12-00-00.xlsx",
		Data:      []byte("PK\x03\x04"),
		RowCounts: map[string]int{services.SheetProfiles: 3, services.SheetQuestions: 10, services.SheetSessions: 42},
	}, nil)

	w := perform(router, http.MethodGet, "/api/v1/exports/workbook")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="practice_data_2026-06-01T12-00-00.xlsx"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "42", w.Header().Get("X-Export-Sessions"))
	assert.Equal(t, []byte("PK\x03\x04"), w.Body.Bytes())
}

func TestExportWorkbook_NothingToExport(t *testing.T) {
	exportService := new(MockExportService)
	router := setupRouter(new(MockReportService), exportService)
	exportService.On("ExportWorkbook", mock.Anything).Return(nil, services.ErrNothingToExport)

	w := perform(router, http.MethodGet, "/api/v1/exports/workbook")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "NOTHING_TO_EXPORT", decodeError(t, w).Code)
}
