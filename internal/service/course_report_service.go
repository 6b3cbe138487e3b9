package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/noah-isme/course-report-api/internal/dto"
	"github.com/noah-isme/course-report-api/internal/models"
	appErrors "github.com/noah-isme/course-report-api/pkg/errors"
)

const (
	snapshotCacheKey     = "course-report:snapshot"
	snapshotCachePattern = "course-report:*"

	emptyFilterMessage = "No courses match the selected filters."
	noCoursesMessage   = "No courses available yet."
)

type courseSnapshotSource interface {
	LoadSnapshot(ctx context.Context) (*models.CourseSnapshot, error)
}

type displayFormatter interface {
	Currency(amount decimal.Decimal) string
	Date(isoDate string) string
}

// CourseReportServiceConfig tunes snapshot caching.
type CourseReportServiceConfig struct {
	SnapshotTTL time.Duration
}

// CourseReportServiceParams groups constructor dependencies.
type CourseReportServiceParams struct {
	Source    courseSnapshotSource
	Cache     *CacheService
	Exporter  *ExportService
	Formatter displayFormatter
	Metrics   *MetricsService
	Validator *validator.Validate
	Logger    *zap.Logger
	Config    CourseReportServiceConfig
}

// CourseReportService computes course reports from a fresh or cached input snapshot.
// Derived figures are never cached; every call recomputes them.
type CourseReportService struct {
	source    courseSnapshotSource
	cache     *CacheService
	exporter  *ExportService
	formatter displayFormatter
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
	cfg       CourseReportServiceConfig
}

// NewCourseReportService constructs a CourseReportService with sane defaults.
func NewCourseReportService(params CourseReportServiceParams) *CourseReportService {
	cfg := params.Config
	if cfg.SnapshotTTL <= 0 {
		cfg.SnapshotTTL = time.Minute
	}
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	validate := params.Validator
	if validate == nil {
		validate = validator.New()
	}
	exporter := params.Exporter
	if exporter == nil {
		exporter = NewExportService(ExportConfig{}, nil, params.Metrics, logger)
	}
	return &CourseReportService{
		source:    params.Source,
		cache:     params.Cache,
		exporter:  exporter,
		formatter: params.Formatter,
		metrics:   params.Metrics,
		validator: validate,
		logger:    logger,
		cfg:       cfg,
	}
}

// Snapshot returns the input collections. The boolean indicates a cache hit.
func (s *CourseReportService) Snapshot(ctx context.Context) (*models.CourseSnapshot, bool, error) {
	var cached models.CourseSnapshot
	if hit, err := s.cache.Get(ctx, snapshotCacheKey, &cached); err != nil {
		s.logger.Warn("snapshot cache unavailable, loading from store", zap.Error(err))
	} else if hit {
		return &cached, true, nil
	}

	start := time.Now()
	snapshot, err := s.source.LoadSnapshot(ctx)
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load course data")
	}
	s.metrics.ObserveSnapshotLoad("database", time.Since(start))
	if err := s.cache.Set(ctx, snapshotCacheKey, snapshot, s.cfg.SnapshotTTL); err != nil {
		s.logger.Debug("snapshot served uncached", zap.Error(err))
	}
	return snapshot, false, nil
}

// Report builds the filtered course report with overall and filtered totals.
func (s *CourseReportService) Report(ctx context.Context, query dto.CourseReportQuery) (*dto.CourseReportResponse, bool, error) {
	if err := s.validate(query); err != nil {
		return nil, false, err
	}
	snapshot, cacheHit, err := s.Snapshot(ctx)
	if err != nil {
		return nil, false, err
	}
	selection := query.Selection()

	stats := AggregateCourseStats(snapshot.Courses, snapshot.Enrolments, snapshot.Transactions)
	rows := FilterCourseStats(stats, selection)
	overall := CalculateOverallStats(snapshot.Courses, snapshot.Enrolments, snapshot.Transactions)
	filtered := SummarizeFiltered(rows)
	s.metrics.RecordReportRows(len(rows))

	resp := &dto.CourseReportResponse{
		Filter:    selection,
		Rows:      make([]dto.CourseReportRow, 0, len(rows)),
		Overall:   dto.OverallStatsView{OverallStats: overall, TotalRevenueDisplay: s.currency(overall.TotalRevenue)},
		Filtered:  dto.FilteredSummaryView{FilteredSummary: filtered, TotalRevenueDisplay: s.currency(filtered.TotalRevenue)},
		Providers: ProviderOptions(snapshot.Courses),
	}
	for _, row := range rows {
		resp.Rows = append(resp.Rows, s.displayRow(row))
	}
	switch {
	case len(snapshot.Courses) == 0:
		resp.EmptyMessage = noCoursesMessage
	case len(rows) == 0:
		resp.EmptyMessage = emptyFilterMessage
	}
	return resp, cacheHit, nil
}

// Providers lists provider filter options.
func (s *CourseReportService) Providers(ctx context.Context) ([]string, bool, error) {
	snapshot, cacheHit, err := s.Snapshot(ctx)
	if err != nil {
		return nil, false, err
	}
	return ProviderOptions(snapshot.Courses), cacheHit, nil
}

// Export renders the filtered rows in the requested format and hands them to deliverer.
func (s *CourseReportService) Export(ctx context.Context, query dto.CourseExportQuery, deliverer FileDeliverer) (*ExportResult, error) {
	if err := s.validate(query); err != nil {
		return nil, err
	}
	format, err := ParseReportFormat(query.Format)
	if err != nil {
		return nil, err
	}
	snapshot, _, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	stats := AggregateCourseStats(snapshot.Courses, snapshot.Enrolments, snapshot.Transactions)
	rows := FilterCourseStats(stats, query.Selection())
	return s.exporter.Export(ctx, rows, format, deliverer)
}

// Refresh drops the cached snapshot so the next report reads the store.
func (s *CourseReportService) Refresh(ctx context.Context) error {
	if err := s.cache.Invalidate(ctx, snapshotCachePattern); err != nil {
		return appErrors.Wrap(err, appErrors.ErrUnavailable.Code, appErrors.ErrUnavailable.Status, "failed to invalidate report cache")
	}
	return nil
}

func (s *CourseReportService) validate(payload interface{}) error {
	if err := s.validator.Struct(payload); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid report query")
	}
	return nil
}

func (s *CourseReportService) displayRow(row models.CourseStats) dto.CourseReportRow {
	startDate := formatExportDate(row.StartDate)
	endDate := formatExportDate(row.EndDate)
	return dto.CourseReportRow{
		ID:                  row.ID,
		Code:                row.Code,
		Name:                row.Name,
		Provider:            row.Provider,
		MonthlyFee:          row.MonthlyFee,
		MonthlyFeeDisplay:   s.currency(row.MonthlyFee),
		IsActive:            row.IsActive,
		Status:              row.StatusLabel(),
		TotalEnrolments:     row.TotalEnrolments,
		ActiveEnrolments:    row.ActiveEnrolments,
		TotalRevenue:        row.TotalRevenue,
		TotalRevenueDisplay: s.currency(row.TotalRevenue),
		StartDate:           startDate,
		StartDateDisplay:    s.date(startDate),
		EndDate:             endDate,
		EndDateDisplay:      s.date(endDate),
	}
}

func (s *CourseReportService) currency(amount decimal.Decimal) string {
	if s.formatter == nil {
		return amount.StringFixed(2)
	}
	return s.formatter.Currency(amount)
}

func (s *CourseReportService) date(iso string) string {
	if s.formatter == nil || iso == "" {
		return iso
	}
	return s.formatter.Date(iso)
}
