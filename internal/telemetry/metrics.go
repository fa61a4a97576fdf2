package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	// SyncMetricsMeterName is the meter used by the sync coordinator
	SyncMetricsMeterName = "github.com/plantops/crane-dashboard/sync"

	// StoreMetricsMeterName is the meter used for record store sizes
	StoreMetricsMeterName = "github.com/plantops/crane-dashboard/store"
)

// SyncMetrics holds the instruments for sync passes. A nil *SyncMetrics records nothing.
type SyncMetrics struct {
	syncDuration metric.Float64Histogram
	syncSkipped  metric.Int64Counter
}

// NewSyncMetrics creates sync instruments on provider. A nil provider yields nil metrics.
func NewSyncMetrics(provider metric.MeterProvider) (*SyncMetrics, error) {
	if provider == nil {
		return nil, nil
	}

	meter := provider.Meter(SyncMetricsMeterName)

	syncDuration, err := meter.Float64Histogram(
		"crane_dashboard_sync_duration_seconds",
		metric.WithDescription("Duration of sync passes in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60),
	)
	if err != nil {
		return nil, err
	}

	syncSkipped, err := meter.Int64Counter(
		"crane_dashboard_sync_skipped_total",
		metric.WithDescription("Sync requests skipped because a pass was already running"),
		metric.WithUnit("{pass}"),
	)
	if err != nil {
		return nil, err
	}

	return &SyncMetrics{syncDuration: syncDuration, syncSkipped: syncSkipped}, nil
}

// RecordSyncDuration records how long a pass took and whether it succeeded
func (m *SyncMetrics) RecordSyncDuration(ctx context.Context, trigger string, duration time.Duration, success bool) {
	if m == nil {
		return
	}
	m.syncDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("trigger", trigger),
		attribute.Bool("success", success),
	))
}

// RecordSyncSkipped counts a request rejected by the single-flight guard
func (m *SyncMetrics) RecordSyncSkipped(ctx context.Context, trigger string) {
	if m == nil {
		return
	}
	m.syncSkipped.Add(ctx, 1, metric.WithAttributes(attribute.String("trigger", trigger)))
}

// StoreMetrics holds the instruments describing the record store. A nil *StoreMetrics records nothing.
type StoreMetrics struct {
	collectionSize metric.Int64Gauge
	rowsSkipped    metric.Int64Counter
}

// NewStoreMetrics creates store instruments on provider. A nil provider yields nil metrics.
func NewStoreMetrics(provider metric.MeterProvider) (*StoreMetrics, error) {
	if provider == nil {
		return nil, nil
	}

	meter := provider.Meter(StoreMetricsMeterName)

	collectionSize, err := meter.Int64Gauge(
		"crane_dashboard_records_total",
		metric.WithDescription("Number of records held in each collection"),
		metric.WithUnit("{record}"),
	)
	if err != nil {
		return nil, err
	}

	rowsSkipped, err := meter.Int64Counter(
		"crane_dashboard_ingest_rows_skipped_total",
		metric.WithDescription("Spreadsheet rows skipped during ingest"),
		metric.WithUnit("{row}"),
	)
	if err != nil {
		return nil, err
	}

	return &StoreMetrics{collectionSize: collectionSize, rowsSkipped: rowsSkipped}, nil
}

// RecordCollectionSize records the current size of a collection such as "cranes"
func (m *StoreMetrics) RecordCollectionSize(ctx context.Context, collection string, count int) {
	if m == nil {
		return
	}
	m.collectionSize.Record(ctx, int64(count), metric.WithAttributes(attribute.String("collection", collection)))
}

// RecordRowsSkipped adds the number of rows dropped from a sheet during ingest
func (m *StoreMetrics) RecordRowsSkipped(ctx context.Context, collection string, count int) {
	if m == nil || count == 0 {
		return
	}
	m.rowsSkipped.Add(ctx, int64(count), metric.WithAttributes(attribute.String("collection", collection)))
}
