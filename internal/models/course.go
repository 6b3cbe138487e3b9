package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Course is a read-only snapshot of an offered course.
type Course struct {
	ID         string          `db:"id" json:"id"`
	Code       string          `db:"code" json:"code"`
	Name       string          `db:"name" json:"name"`
	Provider   string          `db:"provider" json:"provider"`
	MonthlyFee decimal.Decimal `db:"monthly_fee" json:"monthlyFee"`
	IsActive   bool            `db:"is_active" json:"isActive"`
	StartDate  *time.Time      `db:"start_date" json:"startDate,omitempty"`
	EndDate    *time.Time      `db:"end_date" json:"endDate,omitempty"`
}

// Enrolment links a learner to a course.
type Enrolment struct {
	ID       string `db:"id" json:"id"`
	CourseID string `db:"course_id" json:"courseId"`
	IsActive bool   `db:"is_active" json:"isActive"`
}

// TransactionType classifies a ledger entry.
type TransactionType string

// Known transaction types. Only charges count as revenue.
const (
	TransactionTypeCharge  TransactionType = "charge"
	TransactionTypeRefund  TransactionType = "refund"
	TransactionTypePayment TransactionType = "payment"
)

// TransactionStatus tracks settlement of a ledger entry.
type TransactionStatus string

// Known transaction statuses.
const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// Transaction is a signed ledger entry optionally tied to a course.
type Transaction struct {
	ID       string            `db:"id" json:"id"`
	CourseID *string           `db:"course_id" json:"courseId,omitempty"`
	Type     TransactionType   `db:"type" json:"type"`
	Status   TransactionStatus `db:"status" json:"status"`
	Amount   decimal.Decimal   `db:"amount" json:"amount"`
}

// IsRecognizedRevenue reports whether the transaction is a completed charge.
func (t Transaction) IsRecognizedRevenue() bool {
	return t.Type == TransactionTypeCharge && t.Status == TransactionStatusCompleted
}

// CourseSnapshot groups the three collections a report is computed from.
type CourseSnapshot struct {
	Courses      []Course      `json:"courses"`
	Enrolments   []Enrolment   `json:"enrolments"`
	Transactions []Transaction `json:"transactions"`
}
