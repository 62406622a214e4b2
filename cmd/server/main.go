package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/interviewprep/practice-service/internal/cache"
	"github.com/interviewprep/practice-service/internal/config"
	"github.com/interviewprep/practice-service/internal/handlers"
	"github.com/interviewprep/practice-service/internal/repositories/postgres"
	"github.com/interviewprep/practice-service/internal/services"
	"github.com/interviewprep/practice-service/internal/utils"
	"github.com/interviewprep/practice-service/pkg"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.NewLogger("development").Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logger := utils.NewLogger(cfg.Environment)
	if err := run(cfg, logger); err != nil {
		logger.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger utils.Logger) error {
	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		return err
	}
	logger.Info("Database connection established")

	redisClient, err := pkg.NewRedisClient(cfg)
	if err != nil {
		logger.Warn("Redis unavailable, report caching disabled", "error", err)
	} else if redisClient == nil {
		logger.Info("REDIS_URL not set, report caching disabled")
	} else {
		defer redisClient.Close()
	}
	cacheService := cache.NewRedisCache(redisClient, "practice", logger.Slog())

	publisher, err := cfg.Events.CreateEventPublisher(logger.Slog())
	if err != nil {
		return err
	}
	defer publisher.Close()

	repo := postgres.NewRepository(db)
	serviceManager := services.NewServiceManager(repo, cacheService, publisher, logger.Slog(), cfg.ReportCacheTTL)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), utils.LoggerMiddleware(logger), utils.ContextLogger(logger))
	handlers.NewHandlerManager(serviceManager, utils.NewValidator(), logger).SetupRoutes(router)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", "addr", server.Addr, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("Server shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
