package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/interviewprep/practice-service/internal/services"
	"github.com/interviewprep/practice-service/internal/utils"
)

type ReportHandler struct {
	BaseHandler
	reportService services.ReportService
	validator     *utils.Validator
}

func NewReportHandler(
	reportService services.ReportService,
	validator *utils.Validator,
	logger utils.Logger,
) *ReportHandler {
	return &ReportHandler{
		BaseHandler:   NewBaseHandler(logger),
		reportService: reportService,
		validator:     validator,
	}
}

// GetGroupReport returns the evaluated report of one practice group
// @Summary Get practice group report
// @Tags reports
// @Produce json
// @Param id path string true "Practice group ID"
// @Success 200 {object} services.GroupReport
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /practice-groups/{id}/report [get]
func (h *ReportHandler) GetGroupReport(c *gin.Context) {
	groupID := ParseStringIDParam(c, "id")
	if groupID == "" {
		return
	}

	h.LogRequest(c, "Getting practice group report", "group_id", groupID)

	result, err := h.reportService.GetGroupReport(c.Request.Context(), groupID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// InvalidateGroupReport drops the cached report so the next read is rebuilt
// @Summary Invalidate practice group report
// @Tags reports
// @Produce json
// @Param id path string true "Practice group ID"
// @Success 200 {object} SuccessResponse
// @Failure 500 {object} ErrorResponse
// @Router /practice-groups/{id}/report/cache [delete]
func (h *ReportHandler) InvalidateGroupReport(c *gin.Context) {
	groupID := ParseStringIDParam(c, "id")
	if groupID == "" {
		return
	}

	h.LogRequest(c, "Invalidating practice group report", "group_id", groupID)

	if err := h.reportService.InvalidateGroup(c.Request.Context(), groupID); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "Report cache invalidated",
		Data:    gin.H{"group_id": groupID},
	})
}

// GetLearningReport returns a learner's growth over time
// @Summary Get learning report
// @Tags reports
// @Produce json
// @Param user_id path string true "User ID"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Param stage query string false "behavioral, technical or case_study"
// @Param sort_order query string false "asc or desc (session list)"
// @Param limit query int false "Session list page size (1-100)"
// @Param offset query int false "Session list offset"
// @Success 200 {object} services.LearningReport
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{user_id}/learning-report [get]
func (h *ReportHandler) GetLearningReport(c *gin.Context) {
	userID := ParseStringIDParam(c, "user_id")
	if userID == "" {
		return
	}

	var req services.LearningReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid query parameters", err, err.Error())
		return
	}
	req.UserID = userID

	if err := h.validator.Validate(&req); err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogRequest(c, "Getting learning report", "user_id", userID)

	result, err := h.reportService.GetLearningReport(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetCompetencyRadar returns the five-axis competency breakdown of one session
// @Summary Get session competencies
// @Tags reports
// @Produce json
// @Param id path string true "Practice session ID"
// @Success 200 {object} services.CompetencyReport
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id}/competencies [get]
func (h *ReportHandler) GetCompetencyRadar(c *gin.Context) {
	sessionID := ParseStringIDParam(c, "id")
	if sessionID == "" {
		return
	}

	h.LogRequest(c, "Getting competency radar", "session_id", sessionID)

	result, err := h.reportService.GetCompetencyRadar(c.Request.Context(), sessionID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
