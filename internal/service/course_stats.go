package service

import (
	"github.com/shopspring/decimal"

	"github.com/noah-isme/course-report-api/internal/models"
)

type enrolmentCounts struct {
	total  int
	active int
}

// AggregateCourseStats joins enrolments and transactions onto each course by course id.
// The result has one entry per course in the order of courses. Revenue is the sum of
// absolute amounts of completed charges; every other transaction is ignored.
func AggregateCourseStats(courses []models.Course, enrolments []models.Enrolment, transactions []models.Transaction) []models.CourseStats {
	counts := indexEnrolments(enrolments)
	revenue := indexRevenue(transactions)

	stats := make([]models.CourseStats, 0, len(courses))
	for _, course := range courses {
		c := counts[course.ID]
		total, ok := revenue[course.ID]
		if !ok {
			total = decimal.Zero
		}
		stats = append(stats, models.CourseStats{
			Course:           course,
			TotalEnrolments:  c.total,
			ActiveEnrolments: c.active,
			TotalRevenue:     total,
		})
	}
	return stats
}

func indexEnrolments(enrolments []models.Enrolment) map[string]enrolmentCounts {
	index := make(map[string]enrolmentCounts)
	for _, e := range enrolments {
		c := index[e.CourseID]
		c.total++
		if e.IsActive {
			c.active++
		}
		index[e.CourseID] = c
	}
	return index
}

func indexRevenue(transactions []models.Transaction) map[string]decimal.Decimal {
	index := make(map[string]decimal.Decimal)
	for _, t := range transactions {
		if t.CourseID == nil || !t.IsRecognizedRevenue() {
			continue
		}
		current, ok := index[*t.CourseID]
		if !ok {
			current = decimal.Zero
		}
		index[*t.CourseID] = current.Add(t.Amount.Abs())
	}
	return index
}
