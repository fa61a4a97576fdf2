package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/plantops/crane-dashboard/internal/config"
	"github.com/plantops/crane-dashboard/internal/notify"
	"github.com/plantops/crane-dashboard/internal/otel"
	"github.com/plantops/crane-dashboard/internal/service"
	"github.com/plantops/crane-dashboard/internal/sources"
	"github.com/plantops/crane-dashboard/internal/store"
	"github.com/plantops/crane-dashboard/internal/telemetry"
)

// ManagerTracerName is the name used for the ingest tracer
const ManagerTracerName = "github.com/plantops/crane-dashboard/sync"

var (
	// ErrMissingSpreadsheetID is returned when a required sheet reference has no document
	ErrMissingSpreadsheetID = sources.ErrMissingSpreadsheetID
	// ErrNoRows is returned when a sheet that must carry data is empty
	ErrNoRows = errors.New("sheet contains no rows")
)

// Reasons attached to Error
const (
	ReasonInvalidRequest = "InvalidRequest"
	ReasonFetchFailed    = "FetchFailed"
	ReasonNoRows         = "NoRows"
)

// Error is a structured ingest failure
type Error struct {
	Err     error
	Message string
	Reason  string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(reason string, err error, format string, args ...any) *Error {
	return &Error{
		Err:     err,
		Message: fmt.Sprintf(format, args...),
		Reason:  reason,
	}
}

// IngestRequest names the sheets of one ingest. Failures and Maintenance are optional.
type IngestRequest struct {
	Cranes      sources.SheetRef
	Failures    *sources.SheetRef
	Maintenance *sources.SheetRef
}

// NewIngestRequest builds the request for the sheets configured in cfg
func NewIngestRequest(cfg *config.SourceConfig) IngestRequest {
	req := IngestRequest{Cranes: sources.NewSheetRef(cfg.Resolve(cfg.Cranes))}
	if cfg.Failures != nil {
		ref := sources.NewSheetRef(cfg.Resolve(*cfg.Failures))
		req.Failures = &ref
	}
	if cfg.Maintenance != nil {
		ref := sources.NewSheetRef(cfg.Resolve(*cfg.Maintenance))
		req.Maintenance = &ref
	}
	return req
}

// IngestResult is the outcome of a successful ingest
type IngestResult struct {
	Report   store.IngestReport `json:"report"`
	Warnings []string           `json:"warnings,omitempty"`
	SyncedAt time.Time          `json:"syncedAt"`
}

// ConnectionReport previews a sheet
type ConnectionReport struct {
	RowCount   int         `json:"rowCount"`
	Headers    []string    `json:"headers"`
	SampleRows []store.Row `json:"sampleData"`
}

// SpecSyncResult is the outcome of a crane spec update
type SpecSyncResult struct {
	UpdatedCount int `json:"updatedCount"`
	TotalRows    int `json:"totalRows"`
}

//go:generate mockgen -destination=mocks/mock_manager.go -package=mocks -source=manager.go Manager

// Manager ingests source rows into the record store
type Manager interface {
	// Ingest replaces the store contents with the rows of the requested sheets
	Ingest(ctx context.Context, req IngestRequest) (*IngestResult, error)

	// TestConnection reads a sheet and reports its shape without storing anything
	TestConnection(ctx context.Context, ref sources.SheetRef) (*ConnectionReport, error)

	// SyncCraneSpecs updates the specification fields of existing cranes from a sheet
	SyncCraneSpecs(ctx context.Context, ref sources.SheetRef) (*SpecSyncResult, error)
}

type defaultManager struct {
	source    sources.SourceHandler
	store     store.RecordStore
	hotPath   service.HotPathService
	publisher notify.Publisher
	metrics   *telemetry.StoreMetrics
	tracer    trace.Tracer
	now       func() time.Time
}

// Option configures the manager
type Option func(*defaultManager)

// WithPublisher sets where regenerated alerts are published
func WithPublisher(p notify.Publisher) Option {
	return func(m *defaultManager) {
		if p != nil {
			m.publisher = p
		}
	}
}

// WithStoreMetrics sets the instruments updated after every ingest
func WithStoreMetrics(metrics *telemetry.StoreMetrics) Option {
	return func(m *defaultManager) {
		m.metrics = metrics
	}
}

// WithTracer sets the tracer used for ingest spans
func WithTracer(tracer trace.Tracer) Option {
	return func(m *defaultManager) {
		m.tracer = tracer
	}
}

// WithClock sets the clock stamped on ingest results
func WithClock(now func() time.Time) Option {
	return func(m *defaultManager) {
		if now != nil {
			m.now = now
		}
	}
}

// NewManager creates a Manager. hotPath is used to drop cached reads after each write.
func NewManager(
	source sources.SourceHandler,
	recordStore store.RecordStore,
	hotPath service.HotPathService,
	opts ...Option,
) (Manager, error) {
	if source == nil {
		return nil, fmt.Errorf("source handler is required")
	}
	if recordStore == nil {
		return nil, fmt.Errorf("record store is required")
	}
	if hotPath == nil {
		return nil, fmt.Errorf("dashboard service is required")
	}

	m := &defaultManager{
		source:    source,
		store:     recordStore,
		hotPath:   hotPath,
		publisher: notify.NewNoopPublisher(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Ingest implements Manager.Ingest
func (m *defaultManager) Ingest(ctx context.Context, req IngestRequest) (*IngestResult, error) {
	ctx, span := otel.StartSpan(ctx, m.tracer, "sync.Ingest",
		trace.WithAttributes(otel.AttrSheetName.String(req.Cranes.SheetName)))
	defer span.End()

	if req.Cranes.SpreadsheetID == "" {
		err := newError(ReasonInvalidRequest, ErrMissingSpreadsheetID, "crane spreadsheet id is required")
		otel.RecordError(span, err)
		return nil, err
	}

	cranes, err := m.source.FetchSheet(ctx, req.Cranes)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to fetch crane sheet", "sheet", req.Cranes.SheetName, "error", err)
		syncErr := newError(ReasonFetchFailed, err, "failed to fetch crane sheet: %v", err)
		otel.RecordError(span, syncErr)
		return nil, syncErr
	}

	var warnings []string
	failures := m.fetchOptional(ctx, "failure", req.Failures, &warnings)
	maintenance := m.fetchOptional(ctx, "maintenance", req.Maintenance, &warnings)

	report := m.store.SyncDataset(store.Dataset{
		Cranes:      cranes.Rows,
		Failures:    failures,
		Maintenance: maintenance,
	})
	m.recordMetrics(ctx, report)

	slog.InfoContext(ctx, "Ingest completed",
		"cranes", report.Cranes.Accepted,
		"failures", report.Failures.Accepted,
		"maintenance", report.Maintenance.Accepted,
		"skipped", report.Skipped(),
		"alerts", report.AlertsGenerated)

	if err := m.hotPath.InvalidateCache(ctx); err != nil {
		slog.WarnContext(ctx, "Failed to invalidate read cache after ingest", "error", err)
		warnings = append(warnings, fmt.Sprintf("read cache not cleared: %v", err))
	}

	if err := m.publisher.PublishAlerts(ctx, m.store.GetActiveAlerts()); err != nil {
		slog.WarnContext(ctx, "Failed to publish alerts", "error", err)
		warnings = append(warnings, fmt.Sprintf("alerts not published: %v", err))
	}

	span.SetAttributes(otel.AttrResultCount.Int(report.Accepted()))
	return &IngestResult{
		Report:   report,
		Warnings: warnings,
		SyncedAt: m.now().UTC(),
	}, nil
}

// fetchOptional reads a sheet that may be absent; any failure becomes a warning and no rows
func (m *defaultManager) fetchOptional(
	ctx context.Context,
	kind string,
	ref *sources.SheetRef,
	warnings *[]string,
) []store.Row {
	if ref == nil || ref.SpreadsheetID == "" {
		return nil
	}
	sheet, err := m.source.FetchSheet(ctx, *ref)
	if err != nil {
		slog.WarnContext(ctx, "Optional sheet not available, ingesting without it",
			"kind", kind, "sheet", ref.SheetName, "error", err)
		*warnings = append(*warnings, fmt.Sprintf("%s sheet not available: %v", kind, err))
		return nil
	}
	return sheet.Rows
}

func (m *defaultManager) recordMetrics(ctx context.Context, report store.IngestReport) {
	for collection, r := range map[string]store.CollectionReport{
		store.CollectionCranes:      report.Cranes,
		store.CollectionFailures:    report.Failures,
		store.CollectionMaintenance: report.Maintenance,
	} {
		m.metrics.RecordCollectionSize(ctx, collection, r.Accepted)
		m.metrics.RecordRowsSkipped(ctx, collection, r.Skipped)
	}
	m.metrics.RecordCollectionSize(ctx, "alerts", report.AlertsGenerated)
}

// spanAttrs is shared by the auxiliary sheet operations
func spanAttrs(ref sources.SheetRef) trace.SpanStartOption {
	return trace.WithAttributes(
		otel.AttrSheetName.String(ref.SheetName),
		attribute.Bool("source.has_spreadsheet", ref.SpreadsheetID != ""),
	)
}
