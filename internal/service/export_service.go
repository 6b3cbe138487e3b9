package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/course-report-api/internal/models"
	appErrors "github.com/noah-isme/course-report-api/pkg/errors"
	"github.com/noah-isme/course-report-api/pkg/export"
)

const exportDateLayout = "2006-01-02"

// Course report columns, in export order.
var courseReportHeaders = []string{
	"Code",
	"Name",
	"Provider",
	"Monthly Fee",
	"Status",
	"Total Enrolments",
	"Active Enrolments",
	"Total Revenue",
	"Start Date",
	"End Date",
}

type renderer interface {
	Render(data export.Dataset) ([]byte, error)
	MimeType() string
	Extension() string
}

// FileDeliverer hands a rendered file to the requesting client.
type FileDeliverer interface {
	Deliver(ctx context.Context, content []byte, mimeType, filename string) error
}

// Notifier tells the user an export completed. It is advisory only.
type Notifier interface {
	Notify(ctx context.Context, title, description string)
}

// LogNotifier writes export notifications to the application log.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier constructs a LogNotifier.
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogNotifier{logger: logger}
}

// Notify logs the notification.
func (n *LogNotifier) Notify(_ context.Context, title, description string) {
	n.logger.Info("export notification", zap.String("title", title), zap.String("description", description))
}

// ExportConfig tunes export behaviour.
type ExportConfig struct {
	FilePrefix string
}

// ExportResult describes a delivered export.
type ExportResult struct {
	Artifact *models.ExportArtifact
	Notice   models.ExportNotice
}

// ExportService renders course report rows and hands them to a deliverer.
type ExportService struct {
	renderers map[models.ReportFormat]renderer
	notifier  Notifier
	metrics   *MetricsService
	logger    *zap.Logger
	now       func() time.Time
	cfg       ExportConfig
}

// NewExportService constructs an ExportService with the CSV and tab separated renderers.
func NewExportService(cfg ExportConfig, notifier Notifier, metrics *MetricsService, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if notifier == nil {
		notifier = NewLogNotifier(logger)
	}
	if cfg.FilePrefix == "" {
		cfg.FilePrefix = "courses_report"
	}
	return &ExportService{
		renderers: map[models.ReportFormat]renderer{
			models.ReportFormatCSV:   export.NewCSVExporter(),
			models.ReportFormatExcel: export.NewTSVExporter(),
		},
		notifier: notifier,
		metrics:  metrics,
		logger:   logger,
		now:      time.Now,
		cfg:      cfg,
	}
}

// Render serializes rows in the requested format. It only fails for unknown formats.
func (s *ExportService) Render(rows []models.CourseStats, format models.ReportFormat) (*models.ExportArtifact, error) {
	r, ok := s.renderers[format]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrUnsupportedFormat, fmt.Sprintf("unsupported export format %q", format))
	}
	content, err := r.Render(BuildCourseDataset(rows))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}
	return &models.ExportArtifact{
		Filename: s.buildFilename(r.Extension()),
		MimeType: r.MimeType(),
		Format:   format,
		Content:  content,
		Rows:     len(rows),
	}, nil
}

// Export renders rows, delivers the file and notifies the user. Delivery errors are returned
// unchanged and suppress the notification.
func (s *ExportService) Export(ctx context.Context, rows []models.CourseStats, format models.ReportFormat, deliverer FileDeliverer) (*ExportResult, error) {
	artifact, err := s.Render(rows, format)
	if err != nil {
		return nil, err
	}
	if err := deliverer.Deliver(ctx, artifact.Content, artifact.MimeType, artifact.Filename); err != nil {
		s.logger.Warn("export delivery failed", zap.String("filename", artifact.Filename), zap.Error(err))
		return nil, err
	}
	notice := exportNotice(artifact)
	s.notifier.Notify(ctx, notice.Title, notice.Description)
	s.metrics.RecordExport(format)
	s.logger.Info("course report exported",
		zap.String("format", string(format)),
		zap.String("filename", artifact.Filename),
		zap.Int("rows", artifact.Rows),
		zap.Int("bytes", len(artifact.Content)),
	)
	return &ExportResult{Artifact: artifact, Notice: notice}, nil
}

func (s *ExportService) buildFilename(ext string) string {
	return fmt.Sprintf("%s_%s.%s", s.cfg.FilePrefix, s.now().UTC().Format(exportDateLayout), ext)
}

func exportNotice(artifact *models.ExportArtifact) models.ExportNotice {
	label := "CSV"
	if artifact.Format == models.ReportFormatExcel {
		label = "Excel"
	}
	noun := "courses"
	if artifact.Rows == 1 {
		noun = "course"
	}
	return models.ExportNotice{
		Title:       "Export successful",
		Description: fmt.Sprintf("Course report exported as %s (%d %s) to %s", label, artifact.Rows, noun, artifact.Filename),
	}
}

// BuildCourseDataset maps stats rows onto the fixed course report columns using raw values.
func BuildCourseDataset(rows []models.CourseStats) export.Dataset {
	dataRows := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		dataRows = append(dataRows, map[string]string{
			"Code":              row.Code,
			"Name":              row.Name,
			"Provider":          row.Provider,
			"Monthly Fee":       row.MonthlyFee.String(),
			"Status":            row.StatusLabel(),
			"Total Enrolments":  strconv.Itoa(row.TotalEnrolments),
			"Active Enrolments": strconv.Itoa(row.ActiveEnrolments),
			"Total Revenue":     row.TotalRevenue.String(),
			"Start Date":        formatExportDate(row.StartDate),
			"End Date":          formatExportDate(row.EndDate),
		})
	}
	headers := make([]string, len(courseReportHeaders))
	copy(headers, courseReportHeaders)
	return export.Dataset{Headers: headers, Rows: dataRows}
}

func formatExportDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(exportDateLayout)
}

// ParseReportFormat normalises a user supplied format name.
func ParseReportFormat(raw string) (models.ReportFormat, error) {
	switch models.ReportFormat(strings.ToLower(strings.TrimSpace(raw))) {
	case models.ReportFormatCSV:
		return models.ReportFormatCSV, nil
	case models.ReportFormatExcel:
		return models.ReportFormatExcel, nil
	default:
		return "", appErrors.Clone(appErrors.ErrUnsupportedFormat, fmt.Sprintf("unsupported export format %q", raw))
	}
}
