package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/course-report-api/internal/handler"
	"github.com/noah-isme/course-report-api/internal/repository"
	"github.com/noah-isme/course-report-api/internal/service"
	"github.com/noah-isme/course-report-api/pkg/cache"
	"github.com/noah-isme/course-report-api/pkg/config"
	"github.com/noah-isme/course-report-api/pkg/database"
	"github.com/noah-isme/course-report-api/pkg/format"
	"github.com/noah-isme/course-report-api/pkg/logger"
)

// @title Course Report API
// @version 0.1.0
// @description Course enrolment and revenue reports with CSV and Excel export
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer db.Close() //nolint:errcheck

	metrics := service.NewMetricsService()
	dependencies := map[string]handler.Pinger{"postgres": handler.PingerFunc(db.PingContext)}

	cacheRepo := repository.NewCacheRepository(nil, logr)
	if cfg.Reports.CacheEnabled {
		client, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, serving reports without cache", zap.Error(err))
		} else {
			cacheRepo = repository.NewCacheRepository(client, logr)
			dependencies["redis"] = cacheRepo
		}
	}
	defer cacheRepo.Close() //nolint:errcheck

	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Reports.SnapshotCacheTTL, logr, cfg.Reports.CacheEnabled)
	exporter := service.NewExportService(service.ExportConfig{}, service.NewLogNotifier(logr), metrics, logr)
	reports := service.NewCourseReportService(service.CourseReportServiceParams{
		Source:    repository.NewCourseSnapshotRepository(db),
		Cache:     cacheSvc,
		Exporter:  exporter,
		Formatter: format.New(cfg.Reports.DisplayLocale, cfg.Reports.CurrencySymbol, cfg.Reports.DateLayout),
		Metrics:   metrics,
		Validator: validator.New(),
		Logger:    logr,
		Config:    service.CourseReportServiceConfig{SnapshotTTL: cfg.Reports.SnapshotCacheTTL},
	})

	router := newRouter(routerDeps{
		cfg:     cfg,
		logger:  logr,
		metrics: metrics,
		auth:    service.NewAuthService(service.AuthConfig{AccessTokenSecret: cfg.JWT.Secret, Issuer: cfg.JWT.Issuer}),
		reports: handler.NewCourseReportHandler(reports),
		system:  handler.NewMetricsHandler(metrics, dependencies),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "cache", cfg.Reports.CacheEnabled)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}
