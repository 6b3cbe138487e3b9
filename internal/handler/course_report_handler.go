package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/course-report-api/internal/dto"
	"github.com/noah-isme/course-report-api/internal/middleware"
	"github.com/noah-isme/course-report-api/internal/service"
	appErrors "github.com/noah-isme/course-report-api/pkg/errors"
	"github.com/noah-isme/course-report-api/pkg/response"
)

const (
	headerNoticeTitle       = "X-Export-Notice-Title"
	headerNoticeDescription = "X-Export-Notice-Description"
)

type courseReportService interface {
	Report(ctx context.Context, query dto.CourseReportQuery) (*dto.CourseReportResponse, bool, error)
	Providers(ctx context.Context) ([]string, bool, error)
	Export(ctx context.Context, query dto.CourseExportQuery, deliverer service.FileDeliverer) (*service.ExportResult, error)
	Refresh(ctx context.Context) error
}

// CourseReportHandler exposes course report endpoints.
type CourseReportHandler struct {
	service courseReportService
}

// NewCourseReportHandler constructs the handler.
func NewCourseReportHandler(service courseReportService) *CourseReportHandler {
	return &CourseReportHandler{service: service}
}

// Report godoc
// @Summary Course report
// @Description Per-course enrolment and revenue figures with overall and filtered totals
// @Tags Reports
// @Produce json
// @Param status query string false "Status filter" Enums(all, active, inactive)
// @Param provider query string false "Provider filter, or all"
// @Success 200 {object} response.Envelope{data=dto.CourseReportResponse}
// @Failure 400 {object} response.Envelope
// @Router /reports/courses [get]
func (h *CourseReportHandler) Report(c *gin.Context) {
	var query dto.CourseReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid query parameters"))
		return
	}
	report, cacheHit, err := h.service.Report(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	response.JSON(c, http.StatusOK, report, middleware.ExtractMeta(c))
}

// Providers godoc
// @Summary Course providers
// @Tags Reports
// @Produce json
// @Success 200 {object} response.Envelope{data=dto.ProvidersResponse}
// @Router /reports/courses/providers [get]
func (h *CourseReportHandler) Providers(c *gin.Context) {
	providers, cacheHit, err := h.service.Providers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	response.JSON(c, http.StatusOK, dto.ProvidersResponse{Providers: providers}, middleware.ExtractMeta(c))
}

// Export godoc
// @Summary Export course report
// @Description Downloads the filtered course report as quoted CSV or tab separated .xls
// @Tags Reports
// @Produce text/csv
// @Produce application/vnd.ms-excel
// @Param format query string true "Export format" Enums(csv, excel)
// @Param status query string false "Status filter" Enums(all, active, inactive)
// @Param provider query string false "Provider filter, or all"
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /reports/courses/export [get]
func (h *CourseReportHandler) Export(c *gin.Context) {
	var query dto.CourseExportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid query parameters"))
		return
	}
	download := &bufferedDownload{}
	result, err := h.service.Export(c.Request.Context(), query, download)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header(headerNoticeTitle, result.Notice.Title)
	c.Header(headerNoticeDescription, result.Notice.Description)
	response.Attachment(c, download.content, download.mimeType, download.filename)
}

// Refresh godoc
// @Summary Drop cached course data
// @Tags Reports
// @Success 204
// @Router /reports/courses/refresh [post]
func (h *CourseReportHandler) Refresh(c *gin.Context) {
	if err := h.service.Refresh(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// bufferedDownload holds the rendered file until the notice headers are set.
type bufferedDownload struct {
	content  []byte
	mimeType string
	filename string
}

func (d *bufferedDownload) Deliver(ctx context.Context, content []byte, mimeType, filename string) error {
	if err := ctx.Err(); err != nil {
		return appErrors.Wrap(err, appErrors.ErrUnavailable.Code, appErrors.ErrUnavailable.Status, "client cancelled download")
	}
	d.content = content
	d.mimeType = mimeType
	d.filename = filename
	return nil
}
