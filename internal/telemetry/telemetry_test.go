package telemetry

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

func TestNew_Disabled(t *testing.T) {
	t.Parallel()

	for _, cfg := range []*Config{nil, {Enabled: false}} {
		tel, err := New(context.Background(), cfg)
		require.NoError(t, err)

		assert.IsType(t, tracenoop.TracerProvider{}, tel.TracerProvider())
		assert.IsType(t, metricnoop.MeterProvider{}, tel.MeterProvider())
		assert.Nil(t, tel.MetricsHandler())
		require.NoError(t, tel.Shutdown(context.Background()))
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := New(context.Background(), &Config{
		Enabled: true,
		Tracing: &TracingConfig{Enabled: true, Sampling: 2},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid telemetry configuration")
}

// Not parallel: a Prometheus-backed provider registers itself as the global meter provider.
func TestNew_PrometheusHandlerServesMetrics(t *testing.T) {
	ctx := context.Background()
	tel, err := New(ctx, &Config{
		Enabled: true,
		Metrics: &MetricsConfig{Enabled: true, Exporter: ExporterPrometheus},
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = tel.Shutdown(ctx) })
	require.NotNil(t, tel.MetricsHandler())

	syncMetrics, err := NewSyncMetrics(tel.MeterProvider())
	require.NoError(t, err)
	syncMetrics.RecordSyncSkipped(ctx, "scheduled")

	srv := httptest.NewServer(tel.MetricsHandler())
	t.Cleanup(srv.Close)

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "crane_dashboard_sync_skipped_total")
}
