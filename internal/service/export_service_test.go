package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/course-report-api/internal/models"
	appErrors "github.com/noah-isme/course-report-api/pkg/errors"
)

type recordingDeliverer struct {
	content  []byte
	mimeType string
	filename string
	err      error
	calls    int
}

func (d *recordingDeliverer) Deliver(_ context.Context, content []byte, mimeType, filename string) error {
	d.calls++
	d.content = content
	d.mimeType = mimeType
	d.filename = filename
	return d.err
}

type recordingNotifier struct {
	titles       []string
	descriptions []string
}

func (n *recordingNotifier) Notify(_ context.Context, title, description string) {
	n.titles = append(n.titles, title)
	n.descriptions = append(n.descriptions, description)
}

func newTestExportService(notifier Notifier) *ExportService {
	svc := NewExportService(ExportConfig{}, notifier, nil, zap.NewNop())
	svc.now = func() time.Time { return time.Date(2024, 3, 9, 23, 30, 0, 0, time.UTC) }
	return svc
}

func introRow() models.CourseStats {
	return models.CourseStats{
		Course: models.Course{
			ID:         "c-1",
			Code:       "C1",
			Name:       "Intro",
			Provider:   "Acme",
			MonthlyFee: decimal.NewFromInt(100),
			IsActive:   true,
		},
		TotalRevenue: decimal.Zero,
	}
}

const expectedHeaderCSV = `"Code","Name","Provider","Monthly Fee","Status","Total Enrolments","Active Enrolments","Total Revenue","Start Date","End Date"`

func TestExportServiceRenderCSV(t *testing.T) {
	svc := newTestExportService(nil)

	artifact, err := svc.Render([]models.CourseStats{introRow()}, models.ReportFormatCSV)
	require.NoError(t, err)

	expected := expectedHeaderCSV + "\n" + `"C1","Intro","Acme","100","Active","0","0","0","",""`
	assert.Equal(t, expected, string(artifact.Content))
	assert.Equal(t, "text/csv", artifact.MimeType)
	assert.Equal(t, "courses_report_2024-03-09.csv", artifact.Filename)
	assert.Equal(t, 1, artifact.Rows)
}

func TestExportServiceRenderExcelUsesTabs(t *testing.T) {
	svc := newTestExportService(nil)
	row := introRow()
	row.IsActive = false
	row.StartDate = datePtr(2024, time.January, 15)
	row.EndDate = datePtr(2024, time.June, 30)
	row.TotalEnrolments = 3
	row.ActiveEnrolments = 2
	row.TotalRevenue = decimal.RequireFromString("75.5")

	artifact, err := svc.Render([]models.CourseStats{row}, models.ReportFormatExcel)
	require.NoError(t, err)

	expected := "Code\tName\tProvider\tMonthly Fee\tStatus\tTotal Enrolments\tActive Enrolments\tTotal Revenue\tStart Date\tEnd Date\n" +
		"C1\tIntro\tAcme\t100\tInactive\t3\t2\t75.5\t2024-01-15\t2024-06-30"
	assert.Equal(t, expected, string(artifact.Content))
	assert.Equal(t, "application/vnd.ms-excel", artifact.MimeType)
	assert.Equal(t, "courses_report_2024-03-09.xls", artifact.Filename)
}

func TestExportServiceRenderEmptyRowsKeepsHeader(t *testing.T) {
	svc := newTestExportService(nil)

	artifact, err := svc.Render([]models.CourseStats{}, models.ReportFormatCSV)
	require.NoError(t, err)

	assert.Equal(t, expectedHeaderCSV, string(artifact.Content))
	assert.Zero(t, artifact.Rows)
}

func TestExportServiceRenderUnsupportedFormat(t *testing.T) {
	svc := newTestExportService(nil)

	_, err := svc.Render(nil, models.ReportFormat("pdf"))
	require.Error(t, err)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrUnsupportedFormat.Code, appErr.Code)
}

func TestExportServiceExportDeliversAndNotifies(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := newTestExportService(notifier)
	deliverer := &recordingDeliverer{}

	result, err := svc.Export(context.Background(), []models.CourseStats{introRow(), introRow()}, models.ReportFormatCSV, deliverer)
	require.NoError(t, err)

	assert.Equal(t, 1, deliverer.calls)
	assert.Equal(t, "text/csv", deliverer.mimeType)
	assert.Equal(t, "courses_report_2024-03-09.csv", deliverer.filename)
	assert.Equal(t, result.Artifact.Content, deliverer.content)
	assert.Equal(t, []string{"Export successful"}, notifier.titles)
	assert.Equal(t, []string{"Course report exported as CSV (2 courses) to courses_report_2024-03-09.csv"}, notifier.descriptions)
	assert.Equal(t, notifier.descriptions[0], result.Notice.Description)
}

func TestExportServiceExportSingularNotice(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := newTestExportService(notifier)

	_, err := svc.Export(context.Background(), []models.CourseStats{introRow()}, models.ReportFormatExcel, &recordingDeliverer{})
	require.NoError(t, err)

	assert.Equal(t, "Course report exported as Excel (1 course) to courses_report_2024-03-09.xls", notifier.descriptions[0])
}

func TestExportServiceDeliveryFailureSkipsNotification(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := newTestExportService(notifier)
	deliveryErr := errors.New("client went away")

	result, err := svc.Export(context.Background(), []models.CourseStats{introRow()}, models.ReportFormatCSV, &recordingDeliverer{err: deliveryErr})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, deliveryErr)
	assert.Empty(t, notifier.titles)
}

func TestExportServiceUnsupportedFormatSkipsDelivery(t *testing.T) {
	deliverer := &recordingDeliverer{}
	svc := newTestExportService(&recordingNotifier{})

	_, err := svc.Export(context.Background(), nil, models.ReportFormat("xlsx"), deliverer)

	require.Error(t, err)
	assert.Zero(t, deliverer.calls)
}

func TestParseReportFormat(t *testing.T) {
	format, err := ParseReportFormat(" CSV ")
	require.NoError(t, err)
	assert.Equal(t, models.ReportFormatCSV, format)

	format, err = ParseReportFormat("excel")
	require.NoError(t, err)
	assert.Equal(t, models.ReportFormatExcel, format)

	_, err = ParseReportFormat("pdf")
	assert.Error(t, err)
}
