package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/course-report-api/internal/service"
)

func TestMetricsHandlerReady(t *testing.T) {
	handler := NewMetricsHandler(nil, map[string]Pinger{
		"postgres": PingerFunc(func(context.Context) error { return nil }),
	})
	c, rec := newTestContext(http.MethodGet, "/ready")

	handler.Ready(c)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMetricsHandlerReadyReportsFailingDependency(t *testing.T) {
	handler := NewMetricsHandler(nil, map[string]Pinger{
		"postgres": PingerFunc(func(context.Context) error { return nil }),
		"redis":    PingerFunc(func(context.Context) error { return errors.New("connection refused") }),
	})
	c, rec := newTestContext(http.MethodGet, "/ready")

	handler.Ready(c)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var body struct {
		Checks map[string]string `json:"checks"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Checks["postgres"])
	assert.Equal(t, "connection refused", body.Checks["redis"])
}

func TestMetricsHandlerSummary(t *testing.T) {
	metrics := service.NewMetricsService()
	metrics.RecordExport("csv")
	handler := NewMetricsHandler(metrics, nil)
	c, rec := newTestContext(http.MethodGet, "/metrics/summary")

	handler.Summary(c)

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	exports, ok := envelope.Data["exports_by_format"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), exports["csv"])
}

func TestMetricsHandlerSummaryWithoutMetrics(t *testing.T) {
	c, rec := newTestContext(http.MethodGet, "/metrics/summary")

	NewMetricsHandler(nil, nil).Summary(c)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
