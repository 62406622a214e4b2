package services

import (
	"log/slog"
	"time"

	"github.com/interviewprep/practice-service/internal/cache"
	"github.com/interviewprep/practice-service/internal/events"
	"github.com/interviewprep/practice-service/internal/repositories"
)

// ServiceManager exposes the services to the handler layer
type ServiceManager interface {
	Report() ReportService
	Export() ExportService
}

type serviceManager struct {
	report ReportService
	export ExportService
}

func NewServiceManager(
	repo repositories.Repository,
	cacheService cache.CacheService,
	publisher events.EventPublisher,
	logger *slog.Logger,
	reportCacheTTL time.Duration,
) ServiceManager {
	return &serviceManager{
		report: NewReportService(repo, cacheService, publisher, logger, reportCacheTTL),
		export: NewExportService(repo, publisher, logger),
	}
}

func (m *serviceManager) Report() ReportService { return m.report }
func (m *serviceManager) Export() ExportService { return m.export }
