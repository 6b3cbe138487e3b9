package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/course-report-api/internal/models"
)

func newSnapshotRepoMock(t *testing.T) (*CourseSnapshotRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewCourseSnapshotRepository(sqlx.NewDb(db, "sqlmock")), mock, func() { db.Close() }
}

func courseRows() *sqlmock.Rows {
	start := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	return sqlmock.NewRows([]string{"id", "code", "name", "provider", "monthly_fee", "is_active", "start_date", "end_date"}).
		AddRow("course-1", "C1", "Intro", "Acme", "100.00", true, start, nil).
		AddRow("course-2", "C2", "Advanced", "Beta", "49.5", false, nil, nil)
}

func TestCourseSnapshotRepositoryLoadSnapshot(t *testing.T) {
	repo, mock, cleanup := newSnapshotRepoMock(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(selectCourses)).WillReturnRows(courseRows())
	mock.ExpectQuery(regexp.QuoteMeta(selectEnrolments)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "course_id", "is_active"}).
			AddRow("enr-1", "course-1", true).
			AddRow("enr-2", "course-1", false))
	mock.ExpectQuery(regexp.QuoteMeta(selectTransactions)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "course_id", "type", "status", "amount"}).
			AddRow("tx-1", "course-1", "charge", "completed", "-75.00").
			AddRow("tx-2", nil, "charge", "completed", "20"))
	mock.ExpectCommit()

	snapshot, err := repo.LoadSnapshot(context.Background())
	require.NoError(t, err)

	require.Len(t, snapshot.Courses, 2)
	assert.Equal(t, "C1", snapshot.Courses[0].Code)
	assert.Equal(t, "100", snapshot.Courses[0].MonthlyFee.String())
	require.NotNil(t, snapshot.Courses[0].StartDate)
	assert.Nil(t, snapshot.Courses[0].EndDate)
	assert.False(t, snapshot.Courses[1].IsActive)

	require.Len(t, snapshot.Enrolments, 2)
	require.Len(t, snapshot.Transactions, 2)
	require.NotNil(t, snapshot.Transactions[0].CourseID)
	assert.Equal(t, "course-1", *snapshot.Transactions[0].CourseID)
	assert.Equal(t, models.TransactionTypeCharge, snapshot.Transactions[0].Type)
	assert.Equal(t, "-75", snapshot.Transactions[0].Amount.String())
	assert.Nil(t, snapshot.Transactions[1].CourseID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseSnapshotRepositoryLoadSnapshotEmptyCollections(t *testing.T) {
	repo, mock, cleanup := newSnapshotRepoMock(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(selectCourses)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "code", "name", "provider", "monthly_fee", "is_active", "start_date", "end_date"}))
	mock.ExpectQuery(regexp.QuoteMeta(selectEnrolments)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "course_id", "is_active"}))
	mock.ExpectQuery(regexp.QuoteMeta(selectTransactions)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "course_id", "type", "status", "amount"}))
	mock.ExpectCommit()

	snapshot, err := repo.LoadSnapshot(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, snapshot.Courses)
	assert.Empty(t, snapshot.Courses)
	assert.NotNil(t, snapshot.Transactions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseSnapshotRepositoryLoadSnapshotQueryError(t *testing.T) {
	repo, mock, cleanup := newSnapshotRepoMock(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(selectCourses)).WillReturnRows(courseRows())
	mock.ExpectQuery(regexp.QuoteMeta(selectEnrolments)).WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	_, err := repo.LoadSnapshot(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list enrolments")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListCoursesOutsideTransaction(t *testing.T) {
	repo, mock, cleanup := newSnapshotRepoMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(selectCourses)).WillReturnRows(courseRows())

	courses, err := listCourses(context.Background(), repo.db)
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, "Beta", courses[1].Provider)
	assert.Equal(t, "49.5", courses[1].MonthlyFee.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseSnapshotRepositoryLoadSnapshotTransactionQueryError(t *testing.T) {
	repo, mock, cleanup := newSnapshotRepoMock(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(selectCourses)).WillReturnRows(courseRows())
	mock.ExpectQuery(regexp.QuoteMeta(selectEnrolments)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "course_id", "is_active"}))
	mock.ExpectQuery(regexp.QuoteMeta(selectTransactions)).WillReturnError(errors.New("canceling statement"))
	mock.ExpectRollback()

	_, err := repo.LoadSnapshot(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list transactions")
	assert.NoError(t, mock.ExpectationsWereMet())
}
