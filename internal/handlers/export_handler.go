package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/interviewprep/practice-service/internal/services"
	"github.com/interviewprep/practice-service/internal/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportHandler struct {
	BaseHandler
	exportService services.ExportService
}

func NewExportHandler(exportService services.ExportService, logger utils.Logger) *ExportHandler {
	return &ExportHandler{
		BaseHandler:   NewBaseHandler(logger),
		exportService: exportService,
	}
}

// ExportWorkbook streams a spreadsheet of all profiles, questions and sessions
// @Summary Export practice data
// @Tags exports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 503 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /exports/workbook [get]
func (h *ExportHandler) ExportWorkbook(c *gin.Context) {
	h.LogRequest(c, "Exporting practice workbook")

	result, err := h.exportService.ExportWorkbook(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, result.Filename))
	c.Header("X-Export-Profiles", strconv.Itoa(result.RowCounts[services.SheetProfiles]))
	c.Header("X-Export-Questions", strconv.Itoa(result.RowCounts[services.SheetQuestions]))
	c.Header("X-Export-Sessions", strconv.Itoa(result.RowCounts[services.SheetSessions]))
	c.Data(http.StatusOK, xlsxContentType, result.Data)
}
