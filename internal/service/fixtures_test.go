package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/noah-isme/course-report-api/internal/models"
)

func strPtr(s string) *string {
	return &s
}

func datePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func course(id, code, provider string, fee int64, active bool) models.Course {
	return models.Course{
		ID:         id,
		Code:       code,
		Name:       code + " course",
		Provider:   provider,
		MonthlyFee: decimal.NewFromInt(fee),
		IsActive:   active,
	}
}

func charge(id, courseID, amount string, status models.TransactionStatus) models.Transaction {
	var ref *string
	if courseID != "" {
		ref = strPtr(courseID)
	}
	return models.Transaction{
		ID:       id,
		CourseID: ref,
		Type:     models.TransactionTypeCharge,
		Status:   status,
		Amount:   decimal.RequireFromString(amount),
	}
}

// twoCourseSnapshot is a small catalogue with one active and one inactive course.
func twoCourseSnapshot() *models.CourseSnapshot {
	return &models.CourseSnapshot{
		Courses: []models.Course{
			course("A", "A1", "Acme", 100, true),
			course("B", "B1", "Beta", 80, false),
		},
		Enrolments: []models.Enrolment{
			{ID: "e1", CourseID: "A", IsActive: true},
			{ID: "e2", CourseID: "A", IsActive: false},
			{ID: "e3", CourseID: "B", IsActive: true},
		},
		Transactions: []models.Transaction{
			charge("t1", "A", "50", models.TransactionStatusCompleted),
			charge("t2", "A", "30", models.TransactionStatusPending),
		},
	}
}
