package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/course-report-api/internal/models"
)

func TestCalculateOverallStats(t *testing.T) {
	snap := twoCourseSnapshot()

	overall := CalculateOverallStats(snap.Courses, snap.Enrolments, snap.Transactions)

	assert.Equal(t, 2, overall.TotalCourses)
	assert.Equal(t, 1, overall.ActiveCourses)
	assert.Equal(t, 3, overall.TotalEnrolments)
	assert.Equal(t, 2, overall.ActiveEnrolments)
	assert.Equal(t, "50", overall.TotalRevenue.String())
}

func TestCalculateOverallStatsSkipsChargesWithoutCourse(t *testing.T) {
	snap := twoCourseSnapshot()
	snap.Transactions = append(snap.Transactions,
		charge("t9", "", "-20", models.TransactionStatusCompleted),
		charge("t10", "B", "-5", models.TransactionStatusCompleted),
	)

	overall := CalculateOverallStats(snap.Courses, snap.Enrolments, snap.Transactions)

	assert.Equal(t, "55", overall.TotalRevenue.String())
}

func TestCalculateOverallStatsEmpty(t *testing.T) {
	overall := CalculateOverallStats(nil, nil, nil)

	assert.Zero(t, overall.TotalCourses)
	assert.Zero(t, overall.ActiveCourses)
	assert.Zero(t, overall.TotalEnrolments)
	assert.Zero(t, overall.ActiveEnrolments)
	assert.True(t, overall.TotalRevenue.IsZero())
}

func TestSummarizeFiltered(t *testing.T) {
	snap := twoCourseSnapshot()
	stats := AggregateCourseStats(snap.Courses, snap.Enrolments, snap.Transactions)

	all := SummarizeFiltered(stats)
	assert.Equal(t, 2, all.RowCount)
	assert.Equal(t, 2, all.ActiveEnrolments)
	assert.Equal(t, "50", all.TotalRevenue.String())

	inactive := SummarizeFiltered(FilterCourseStats(stats, models.FilterSelection{Status: models.StatusFilterInactive}))
	assert.Equal(t, 1, inactive.RowCount)
	assert.Equal(t, 1, inactive.ActiveEnrolments)
	assert.True(t, inactive.TotalRevenue.IsZero())
}

func TestSummarizeFilteredEmpty(t *testing.T) {
	summary := SummarizeFiltered([]models.CourseStats{})

	assert.Zero(t, summary.RowCount)
	assert.Zero(t, summary.ActiveEnrolments)
	assert.Equal(t, "0", summary.TotalRevenue.String())
}
