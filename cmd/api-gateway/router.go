package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/course-report-api/api/swagger"
	"github.com/noah-isme/course-report-api/internal/handler"
	"github.com/noah-isme/course-report-api/internal/middleware"
	"github.com/noah-isme/course-report-api/internal/models"
	"github.com/noah-isme/course-report-api/internal/service"
	"github.com/noah-isme/course-report-api/pkg/config"
	"github.com/noah-isme/course-report-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/course-report-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/course-report-api/pkg/middleware/requestid"
)

type routerDeps struct {
	cfg     *config.Config
	logger  *zap.Logger
	metrics *service.MetricsService
	auth    *service.AuthService
	reports *handler.CourseReportHandler
	system  *handler.MetricsHandler
}

func newRouter(d routerDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(d.logger))
	r.Use(corsmiddleware.New(d.cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(d.metrics))

	r.GET("/health", d.system.Health)
	r.GET("/ready", d.system.Ready)
	r.GET("/metrics", d.system.Prometheus)

	if d.cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(d.cfg.APIPrefix)
	api.Use(middleware.WithResponseMeta())
	api.GET("/metrics/summary", d.system.Summary)

	if !d.cfg.Reports.Enabled {
		return r
	}

	reports := api.Group("/reports/courses")
	refreshGuard := []gin.HandlerFunc{}
	if d.cfg.Reports.RequireAuth {
		reports.Use(middleware.JWT(d.auth), middleware.RequireRoles(models.RoleAdmin, models.RoleFinance))
		refreshGuard = append(refreshGuard, middleware.RequireRoles(models.RoleAdmin))
	}
	reports.GET("", d.reports.Report)
	reports.GET("/providers", d.reports.Providers)
	reports.GET("/export", d.reports.Export)
	reports.POST("/refresh", append(refreshGuard, d.reports.Refresh)...)

	return r
}
