package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// ServiceLogger provides structured logging for service layer operations
type ServiceLogger struct {
	logger *slog.Logger
}

func NewServiceLogger(logger *slog.Logger, component string) *ServiceLogger {
	return &ServiceLogger{
		logger: logger.With("service", "practice-service", "component", component),
	}
}

// LogOperation logs the outcome of an operation. The level follows the error class:
// not found is info, validation is warn, anything else is error.
func (l *ServiceLogger) LogOperation(ctx context.Context, operation, resourceID, resourceType string, duration time.Duration, err error) {
	level := slog.LevelInfo
	status := "success"

	if err != nil {
		switch {
		case IsNotFound(err):
			status = "not_found"
		case IsValidation(err):
			level = slog.LevelWarn
			status = "validation_error"
		default:
			level = slog.LevelError
			status = "error"
		}
	}

	attrs := []slog.Attr{
		slog.String("operation", operation),
		slog.String("resource_id", resourceID),
		slog.String("resource_type", resourceType),
		slog.String("status", status),
		slog.Duration("duration", duration),
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		if verrs, ok := err.(ValidationErrors); ok {
			attrs = append(attrs, slog.Int("validation_errors_count", len(verrs)))
		}
	}

	l.logger.LogAttrs(ctx, level, fmt.Sprintf("%s operation %s", operation, status), attrs...)
}

// ContextualLogger times a single operation
type ContextualLogger struct {
	logger    *ServiceLogger
	operation string
	startTime time.Time
	ctx       context.Context
}

func (l *ServiceLogger) WithOperation(ctx context.Context, operation string) *ContextualLogger {
	return &ContextualLogger{
		logger:    l,
		operation: operation,
		startTime: time.Now(),
		ctx:       ctx,
	}
}

func (cl *ContextualLogger) LogResult(resourceID, resourceType string, err error) {
	cl.logger.LogOperation(cl.ctx, cl.operation, resourceID, resourceType, time.Since(cl.startTime), err)
}
