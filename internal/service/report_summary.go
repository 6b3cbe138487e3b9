package service

import (
	"github.com/shopspring/decimal"

	"github.com/noah-isme/course-report-api/internal/models"
)

// CalculateOverallStats totals the unfiltered collections. Revenue only counts completed
// charges that are tied to a course.
func CalculateOverallStats(courses []models.Course, enrolments []models.Enrolment, transactions []models.Transaction) models.OverallStats {
	overall := models.OverallStats{
		TotalCourses:    len(courses),
		TotalEnrolments: len(enrolments),
		TotalRevenue:    decimal.Zero,
	}
	for _, course := range courses {
		if course.IsActive {
			overall.ActiveCourses++
		}
	}
	for _, e := range enrolments {
		if e.IsActive {
			overall.ActiveEnrolments++
		}
	}
	for _, t := range transactions {
		if t.CourseID == nil || !t.IsRecognizedRevenue() {
			continue
		}
		overall.TotalRevenue = overall.TotalRevenue.Add(t.Amount.Abs())
	}
	return overall
}

// SummarizeFiltered totals the rows currently selected by the filter.
func SummarizeFiltered(rows []models.CourseStats) models.FilteredSummary {
	summary := models.FilteredSummary{
		RowCount:     len(rows),
		TotalRevenue: decimal.Zero,
	}
	for _, row := range rows {
		summary.ActiveEnrolments += row.ActiveEnrolments
		summary.TotalRevenue = summary.TotalRevenue.Add(row.TotalRevenue)
	}
	return summary
}
