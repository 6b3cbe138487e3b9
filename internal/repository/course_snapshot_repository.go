package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/course-report-api/internal/models"
)

const (
	selectCourses      = `SELECT id, code, name, provider, monthly_fee, is_active, start_date, end_date FROM courses ORDER BY created_at, id`
	selectEnrolments   = `SELECT id, course_id, is_active FROM enrolments`
	selectTransactions = `SELECT id, course_id, type, status, amount FROM transactions`
)

// CourseSnapshotRepository reads the course, enrolment and transaction collections.
// It never writes.
type CourseSnapshotRepository struct {
	db *sqlx.DB
}

// NewCourseSnapshotRepository constructs the repository.
func NewCourseSnapshotRepository(db *sqlx.DB) *CourseSnapshotRepository {
	return &CourseSnapshotRepository{db: db}
}

// LoadSnapshot reads all three collections inside one read-only transaction so the
// report sees a consistent view.
func (r *CourseSnapshotRepository) LoadSnapshot(ctx context.Context) (*models.CourseSnapshot, error) {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("begin snapshot: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	courses, err := listCourses(ctx, tx)
	if err != nil {
		return nil, err
	}
	enrolments, err := listEnrolments(ctx, tx)
	if err != nil {
		return nil, err
	}
	transactions, err := listTransactions(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit snapshot: %w", err)
	}
	return &models.CourseSnapshot{Courses: courses, Enrolments: enrolments, Transactions: transactions}, nil
}

// listCourses returns every course in report order.
func listCourses(ctx context.Context, q sqlx.QueryerContext) ([]models.Course, error) {
	courses := make([]models.Course, 0)
	if err := sqlx.SelectContext(ctx, q, &courses, selectCourses); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

func listEnrolments(ctx context.Context, q sqlx.QueryerContext) ([]models.Enrolment, error) {
	enrolments := make([]models.Enrolment, 0)
	if err := sqlx.SelectContext(ctx, q, &enrolments, selectEnrolments); err != nil {
		return nil, fmt.Errorf("list enrolments: %w", err)
	}
	return enrolments, nil
}

// listTransactions includes transactions not tied to a course; revenue code filters them.
func listTransactions(ctx context.Context, q sqlx.QueryerContext) ([]models.Transaction, error) {
	transactions := make([]models.Transaction, 0)
	if err := sqlx.SelectContext(ctx, q, &transactions, selectTransactions); err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return transactions, nil
}
