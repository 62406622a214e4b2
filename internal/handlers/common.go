package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/interviewprep/practice-service/internal/services"
	"github.com/interviewprep/practice-service/internal/utils"
)

// ===== COMMON RESPONSE STRUCTURES =====

// ErrorResponse represents an error response
type ErrorResponse struct {
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	Code    string      `json:"code,omitempty"`
}

// SuccessResponse represents a success response
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ===== BASE HANDLER STRUCT =====

// BaseHandler provides common logging functionality for all handlers
type BaseHandler struct {
	logger utils.Logger
}

func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{
		logger: logger,
	}
}

// requestLogger prefers the request-scoped logger set by utils.ContextLogger
func (h *BaseHandler) requestLogger(c *gin.Context) utils.Logger {
	return utils.LoggerFromContextOr(c, h.logger.With(
		"request_id", c.GetHeader("X-Request-ID"),
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	))
}

// LogRequest logs incoming HTTP requests with context information
func (h *BaseHandler) LogRequest(c *gin.Context, message string, additionalFields ...interface{}) {
	fields := []interface{}{
		"remote_addr", c.ClientIP(),
		"user_agent", c.Request.UserAgent(),
	}
	fields = append(fields, additionalFields...)

	h.requestLogger(c).Info(message, fields...)
}

// LogError logs error details with context information
func (h *BaseHandler) LogError(c *gin.Context, err error, message string, additionalFields ...interface{}) {
	h.requestLogger(c).LogError(err, message, additionalFields...)
}

func (h *BaseHandler) LogWarn(c *gin.Context, message string, additionalFields ...interface{}) {
	h.requestLogger(c).Warn(message, additionalFields...)
}

// RespondWithError sends a consistent error response and logs it
func (h *BaseHandler) RespondWithError(c *gin.Context, statusCode int, message string, err error, details ...interface{}) {
	errorResp := ErrorResponse{
		Message: message,
	}

	if len(details) > 0 {
		errorResp.Details = details[0]
	}

	if err != nil && statusCode >= http.StatusInternalServerError {
		h.LogError(c, err, message, "status_code", statusCode)
	} else {
		h.LogWarn(c, message, "status_code", statusCode)
	}

	c.JSON(statusCode, errorResp)
}

// handleServiceError maps service errors onto HTTP responses
func (h *BaseHandler) handleServiceError(c *gin.Context, err error) {
	var validationErrors services.ValidationErrors
	if errors.As(err, &validationErrors) {
		h.RespondWithError(c, http.StatusBadRequest, "Validation failed", err, validationErrors)
		return
	}

	switch {
	case errors.Is(err, services.ErrGroupNotFound):
		h.respondWithCode(c, http.StatusNotFound, "Practice group not found", "GROUP_NOT_FOUND", err)
	case errors.Is(err, services.ErrSessionNotFound):
		h.respondWithCode(c, http.StatusNotFound, "Practice session not found", "SESSION_NOT_FOUND", err)
	case errors.Is(err, services.ErrProfileNotFound):
		h.respondWithCode(c, http.StatusNotFound, "User not found", "PROFILE_NOT_FOUND", err)
	case services.IsNotFound(err):
		h.respondWithCode(c, http.StatusNotFound, "Resource not found", "NOT_FOUND", err)
	case services.IsValidation(err):
		h.respondWithCode(c, http.StatusBadRequest, "Validation failed", "VALIDATION_FAILED", err)
	case errors.Is(err, services.ErrNothingToExport):
		h.respondWithCode(c, http.StatusServiceUnavailable, "No data could be exported", "NOTHING_TO_EXPORT", err)
	default:
		h.respondWithCode(c, http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR", err)
	}
}

func (h *BaseHandler) respondWithCode(c *gin.Context, statusCode int, message, code string, err error) {
	if statusCode >= http.StatusInternalServerError {
		h.LogError(c, err, message, "status_code", statusCode)
	} else {
		h.LogWarn(c, message, "status_code", statusCode, "error", err.Error())
	}
	c.JSON(statusCode, ErrorResponse{Message: message, Code: code})
}
