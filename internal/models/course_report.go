package models

import "github.com/shopspring/decimal"

// CourseStats decorates a course with enrolment and revenue figures.
type CourseStats struct {
	Course
	TotalEnrolments  int             `json:"totalEnrolments"`
	ActiveEnrolments int             `json:"activeEnrolments"`
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
}

// StatusLabel renders the course activity as shown in reports.
func (s CourseStats) StatusLabel() string {
	if s.IsActive {
		return "Active"
	}
	return "Inactive"
}

// OverallStats totals the unfiltered collections.
type OverallStats struct {
	TotalCourses     int             `json:"totalCourses"`
	ActiveCourses    int             `json:"activeCourses"`
	TotalEnrolments  int             `json:"totalEnrolments"`
	ActiveEnrolments int             `json:"activeEnrolments"`
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
}

// FilteredSummary totals the rows left after filtering.
type FilteredSummary struct {
	RowCount         int             `json:"rowCount"`
	ActiveEnrolments int             `json:"activeEnrolments"`
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
}

// StatusFilter narrows courses by activity.
type StatusFilter string

// Status filter values.
const (
	StatusFilterAll      StatusFilter = "all"
	StatusFilterActive   StatusFilter = "active"
	StatusFilterInactive StatusFilter = "inactive"
)

// ProviderFilterAll disables provider filtering.
const ProviderFilterAll = "all"

// FilterSelection is the status and provider choice applied to a report.
type FilterSelection struct {
	Status   StatusFilter `json:"status"`
	Provider string       `json:"provider"`
}

// DefaultFilterSelection passes every course.
func DefaultFilterSelection() FilterSelection {
	return FilterSelection{Status: StatusFilterAll, Provider: ProviderFilterAll}
}

// ReportFormat enumerates supported export formats.
type ReportFormat string

const (
	ReportFormatCSV   ReportFormat = "csv"
	ReportFormatExcel ReportFormat = "excel"
)

// ExportArtifact is a rendered export ready for delivery.
type ExportArtifact struct {
	Filename string
	MimeType string
	Format   ReportFormat
	Content  []byte
	Rows     int
}

// ExportNotice is the user-facing confirmation of a delivered export.
type ExportNotice struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
