package dto

import (
	"github.com/shopspring/decimal"

	"github.com/noah-isme/course-report-api/internal/models"
)

// CourseReportQuery captures GET /reports/courses filters.
type CourseReportQuery struct {
	Status   string `form:"status" validate:"omitempty,oneof=all active inactive"`
	Provider string `form:"provider" validate:"max=200"`
}

// Selection converts the query into a filter selection; blanks mean "all".
func (q CourseReportQuery) Selection() models.FilterSelection {
	selection := models.DefaultFilterSelection()
	if q.Status != "" {
		selection.Status = models.StatusFilter(q.Status)
	}
	if q.Provider != "" {
		selection.Provider = q.Provider
	}
	return selection
}

// CourseExportQuery captures GET /reports/courses/export parameters.
type CourseExportQuery struct {
	CourseReportQuery
	Format string `form:"format" validate:"required,oneof=csv excel"`
}

// CourseReportRow is a course stats row with display renderings next to raw values.
type CourseReportRow struct {
	ID                  string          `json:"id"`
	Code                string          `json:"code"`
	Name                string          `json:"name"`
	Provider            string          `json:"provider"`
	MonthlyFee          decimal.Decimal `json:"monthlyFee"`
	MonthlyFeeDisplay   string          `json:"monthlyFeeDisplay"`
	IsActive            bool            `json:"isActive"`
	Status              string          `json:"status"`
	TotalEnrolments     int             `json:"totalEnrolments"`
	ActiveEnrolments    int             `json:"activeEnrolments"`
	TotalRevenue        decimal.Decimal `json:"totalRevenue"`
	TotalRevenueDisplay string          `json:"totalRevenueDisplay"`
	StartDate           string          `json:"startDate"`
	StartDateDisplay    string          `json:"startDateDisplay"`
	EndDate             string          `json:"endDate"`
	EndDateDisplay      string          `json:"endDateDisplay"`
}

// OverallStatsView renders overall totals for display.
type OverallStatsView struct {
	models.OverallStats
	TotalRevenueDisplay string `json:"totalRevenueDisplay"`
}

// FilteredSummaryView renders filtered totals for display.
type FilteredSummaryView struct {
	models.FilteredSummary
	TotalRevenueDisplay string `json:"totalRevenueDisplay"`
}

// CourseReportResponse is the course report payload. Rows is always an array; an empty
// array with EmptyMessage means no course matched the filters.
type CourseReportResponse struct {
	Filter       models.FilterSelection `json:"filter"`
	Rows         []CourseReportRow      `json:"rows"`
	Overall      OverallStatsView       `json:"overall"`
	Filtered     FilteredSummaryView    `json:"filtered"`
	Providers    []string               `json:"providers"`
	EmptyMessage string                 `json:"emptyMessage,omitempty"`
}

// ProvidersResponse lists provider filter options.
type ProvidersResponse struct {
	Providers []string `json:"providers"`
}
