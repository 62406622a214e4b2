package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/interviewprep/practice-service/internal/services"
	"github.com/interviewprep/practice-service/internal/utils"
)

type HandlerManager struct {
	reportHandler *ReportHandler
	exportHandler *ExportHandler
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	validator *utils.Validator,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		reportHandler: NewReportHandler(serviceManager.Report(), validator, logger),
		exportHandler: NewExportHandler(serviceManager.Export(), logger),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", HealthCheck)

	v1 := router.Group("/api/v1")
	{
		groups := v1.Group("/practice-groups")
		{
			groups.GET("/:id/report", hm.reportHandler.GetGroupReport)
			groups.DELETE("/:id/report/cache", hm.reportHandler.InvalidateGroupReport)
		}

		users := v1.Group("/users")
		{
			users.GET("/:user_id/learning-report", hm.reportHandler.GetLearningReport)
		}

		sessions := v1.Group("/sessions")
		{
			sessions.GET("/:id/competencies", hm.reportHandler.GetCompetencyRadar)
		}

		exports := v1.Group("/exports")
		{
			exports.GET("/workbook", hm.exportHandler.ExportWorkbook)
		}
	}
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "practice-service",
	})
}
