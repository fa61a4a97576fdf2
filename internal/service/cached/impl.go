// Package cached provides the DashboardService implementation that reads the
// hot-path queries through the read cache and everything else straight from the record store
package cached

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/plantops/crane-dashboard/internal/cache"
	"github.com/plantops/crane-dashboard/internal/config"
	"github.com/plantops/crane-dashboard/internal/otel"
	"github.com/plantops/crane-dashboard/internal/service"
	"github.com/plantops/crane-dashboard/internal/store"
)

// ServiceTracerName is the name used for the cached service tracer
const ServiceTracerName = "github.com/plantops/crane-dashboard/service/cached"

// Cache keys of the hot-path queries
const (
	keyCranes         = "cranes"
	keyFailureRecords = "failure-records"
	keyFactories      = "factories"
	keyCraneNames     = "crane-names"
	keySummary        = "dashboard-summary"
)

// dashboardSvc implements the DashboardService interface
type dashboardSvc struct {
	store  store.RecordStore
	cache  cache.Cache
	ttl    time.Duration
	now    func() time.Time
	tracer trace.Tracer

	// fillMu orders cache fills against clears; generation counts clears
	fillMu     sync.RWMutex
	generation uint64
}

var _ service.DashboardService = (*dashboardSvc)(nil)

// Option is a functional option for configuring the dashboardSvc
type Option func(*dashboardSvc)

// WithTTL sets the lifetime of cached reads
func WithTTL(ttl time.Duration) Option {
	return func(s *dashboardSvc) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithClock sets the clock used for inspection countdowns
func WithClock(now func() time.Time) Option {
	return func(s *dashboardSvc) {
		if now != nil {
			s.now = now
		}
	}
}

// WithTracer sets the tracer used for cache spans
func WithTracer(tracer trace.Tracer) Option {
	return func(s *dashboardSvc) {
		s.tracer = tracer
	}
}

// New creates a cached dashboard service. recordStore is required;
// a nil cache is replaced with an in-memory one.
func New(recordStore store.RecordStore, readCache cache.Cache, opts ...Option) (service.DashboardService, error) {
	if recordStore == nil {
		return nil, fmt.Errorf("record store is required")
	}
	if readCache == nil {
		readCache = cache.NewMemoryCache()
	}

	s := &dashboardSvc{
		store: recordStore,
		cache: readCache,
		ttl:   config.DefaultCacheTTL,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// readThrough returns the cached value of key, or loads it from the store and caches it.
// Cache failures are logged and never surface to the caller.
func readThrough[T any](ctx context.Context, s *dashboardSvc, key string, load func() T) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	ctx, span := otel.StartSpan(ctx, s.tracer, "cached.readThrough",
		trace.WithAttributes(otel.AttrCacheKey.String(key)))
	defer span.End()

	data, err := s.cache.Get(ctx, key)
	switch {
	case err == nil:
		var out T
		decodeErr := json.Unmarshal(data, &out)
		if decodeErr == nil {
			span.SetAttributes(otel.AttrCacheHit.Bool(true))
			return out, nil
		}
		slog.WarnContext(ctx, "Discarding undecodable cache entry", "key", key, "error", decodeErr)
	case errors.Is(err, cache.ErrCacheMiss):
	default:
		slog.WarnContext(ctx, "Cache read failed, reading from store", "key", key, "error", err)
	}
	span.SetAttributes(otel.AttrCacheHit.Bool(false))

	gen := s.currentGeneration()
	out := load()

	encoded, err := json.Marshal(out)
	if err != nil {
		slog.WarnContext(ctx, "Failed to encode cache entry", "key", key, "error", err)
		return out, nil
	}
	s.fill(ctx, key, encoded, gen)
	return out, nil
}

func (s *dashboardSvc) currentGeneration() uint64 {
	s.fillMu.RLock()
	defer s.fillMu.RUnlock()
	return s.generation
}

// fill stores a loaded value unless the cache was cleared since gen was read.
// A value loaded before a clear may predate the write that caused it.
func (s *dashboardSvc) fill(ctx context.Context, key string, value []byte, gen uint64) {
	s.fillMu.RLock()
	defer s.fillMu.RUnlock()

	if s.generation != gen {
		slog.DebugContext(ctx, "Skipping cache fill loaded before invalidation", "key", key)
		return
	}
	if err := s.cache.Set(ctx, key, value, s.ttl); err != nil {
		slog.WarnContext(ctx, "Cache write failed", "key", key, "error", err)
	}
}

// clear bumps the generation and empties the cache while no fill is in flight
func (s *dashboardSvc) clear(ctx context.Context) error {
	s.fillMu.Lock()
	defer s.fillMu.Unlock()

	s.generation++
	return s.cache.Clear(ctx)
}

// invalidate drops cached reads after a write; failures only leave stale entries until their TTL
func (s *dashboardSvc) invalidate(ctx context.Context) {
	if err := s.clear(ctx); err != nil {
		slog.WarnContext(ctx, "Failed to invalidate read cache after write", "error", err)
	}
}

// CheckReadiness implements DashboardService.CheckReadiness
func (s *dashboardSvc) CheckReadiness(ctx context.Context) error {
	if err := s.cache.Ping(ctx); err != nil {
		return fmt.Errorf("read cache is not reachable: %w", err)
	}
	return nil
}

// InvalidateCache implements HotPathService.InvalidateCache
func (s *dashboardSvc) InvalidateCache(ctx context.Context) error {
	if err := s.clear(ctx); err != nil {
		return fmt.Errorf("failed to clear read cache: %w", err)
	}
	slog.DebugContext(ctx, "Read cache cleared")
	return nil
}

// GetCranes implements HotPathService.GetCranes
func (s *dashboardSvc) GetCranes(ctx context.Context) ([]store.Crane, error) {
	return readThrough(ctx, s, keyCranes, s.store.GetCranes)
}

// GetUniqueFactories implements HotPathService.GetUniqueFactories
func (s *dashboardSvc) GetUniqueFactories(ctx context.Context) ([]string, error) {
	return readThrough(ctx, s, keyFactories, s.store.GetUniqueFactories)
}

// GetUniqueCraneNames implements HotPathService.GetUniqueCraneNames
func (s *dashboardSvc) GetUniqueCraneNames(ctx context.Context) ([]string, error) {
	return readThrough(ctx, s, keyCraneNames, s.store.GetUniqueCraneNames)
}

// GetDashboardSummary implements HotPathService.GetDashboardSummary
func (s *dashboardSvc) GetDashboardSummary(ctx context.Context) (store.DashboardSummary, error) {
	return readThrough(ctx, s, keySummary, s.store.GetDashboardSummary)
}

// GetCrane implements DashboardService.GetCrane
func (s *dashboardSvc) GetCrane(_ context.Context, id int) (store.Crane, error) {
	crane, ok := s.store.GetCrane(id)
	if !ok {
		return store.Crane{}, fmt.Errorf("%w: id %d", service.ErrCraneNotFound, id)
	}
	return crane, nil
}

// GetCraneByCraneID implements DashboardService.GetCraneByCraneID
func (s *dashboardSvc) GetCraneByCraneID(_ context.Context, craneID string) (store.Crane, error) {
	crane, ok := s.store.GetCraneByCraneID(craneID)
	if !ok {
		return store.Crane{}, fmt.Errorf("%w: %s", service.ErrCraneNotFound, craneID)
	}
	return crane, nil
}

// GetCranesByFactoryAndName implements DashboardService.GetCranesByFactoryAndName
func (s *dashboardSvc) GetCranesByFactoryAndName(_ context.Context, factory, craneName string) ([]store.Crane, error) {
	return s.store.GetCranesByFactoryAndName(normalizeFilter(factory), normalizeFilter(craneName)), nil
}

// CreateCrane implements DashboardService.CreateCrane
func (s *dashboardSvc) CreateCrane(ctx context.Context, in store.CraneInput) (store.Crane, error) {
	if err := service.ValidateCraneInput(in); err != nil {
		return store.Crane{}, err
	}
	crane, err := s.store.CreateCrane(in)
	if err != nil {
		return store.Crane{}, fmt.Errorf("failed to create crane: %w", err)
	}
	s.invalidate(ctx)
	slog.InfoContext(ctx, "Crane created", "crane_id", crane.CraneID, "id", crane.ID)
	return crane, nil
}

// UpdateCrane implements DashboardService.UpdateCrane
func (s *dashboardSvc) UpdateCrane(ctx context.Context, id int, patch store.CraneUpdate) (store.Crane, error) {
	crane, err := s.store.UpdateCrane(id, patch)
	switch {
	case errors.Is(err, store.ErrCraneNotFound):
		return store.Crane{}, fmt.Errorf("%w: id %d", service.ErrCraneNotFound, id)
	case err != nil:
		return store.Crane{}, fmt.Errorf("failed to update crane: %w", err)
	}
	s.invalidate(ctx)
	return crane, nil
}

// GetCraneNamesByFactory implements DashboardService.GetCraneNamesByFactory
func (s *dashboardSvc) GetCraneNamesByFactory(ctx context.Context, factory string) ([]string, error) {
	if normalizeFilter(factory) == "" {
		return s.GetUniqueCraneNames(ctx)
	}
	return s.store.GetCraneNamesByFactory(factory), nil
}

// GetMaintenanceRecords implements DashboardService.GetMaintenanceRecords
func (s *dashboardSvc) GetMaintenanceRecords(_ context.Context, craneID string) ([]store.MaintenanceRecord, error) {
	if craneID == "" {
		return s.store.GetMaintenanceRecords(), nil
	}
	return s.store.GetMaintenanceRecordsByCraneID(craneID), nil
}

// GetMaintenanceRecord implements DashboardService.GetMaintenanceRecord
func (s *dashboardSvc) GetMaintenanceRecord(_ context.Context, id int) (store.MaintenanceRecord, error) {
	record, ok := s.store.GetMaintenanceRecord(id)
	if !ok {
		return store.MaintenanceRecord{}, fmt.Errorf("%w: id %d", service.ErrMaintenanceRecordNotFound, id)
	}
	return record, nil
}

// CreateMaintenanceRecord implements DashboardService.CreateMaintenanceRecord
func (s *dashboardSvc) CreateMaintenanceRecord(
	ctx context.Context,
	in store.MaintenanceRecordInput,
) (store.MaintenanceRecord, error) {
	if err := service.ValidateMaintenanceRecordInput(in); err != nil {
		return store.MaintenanceRecord{}, err
	}
	record := s.store.CreateMaintenanceRecord(in)
	s.invalidate(ctx)
	return record, nil
}

// GetFailureRecord implements DashboardService.GetFailureRecord
func (s *dashboardSvc) GetFailureRecord(_ context.Context, id int) (store.FailureRecord, error) {
	record, ok := s.store.GetFailureRecord(id)
	if !ok {
		return store.FailureRecord{}, fmt.Errorf("%w: id %d", service.ErrFailureRecordNotFound, id)
	}
	return record, nil
}

// CreateFailureRecord implements DashboardService.CreateFailureRecord
func (s *dashboardSvc) CreateFailureRecord(ctx context.Context, in store.FailureRecordInput) (store.FailureRecord, error) {
	if err := service.ValidateFailureRecordInput(in); err != nil {
		return store.FailureRecord{}, err
	}
	record := s.store.CreateFailureRecord(in)
	s.invalidate(ctx)
	return record, nil
}

// GetMaintenanceStats implements DashboardService.GetMaintenanceStats
func (s *dashboardSvc) GetMaintenanceStats(_ context.Context) ([]store.TypeCount, error) {
	return s.store.GetMaintenanceStats(), nil
}

// GetFailureStats implements DashboardService.GetFailureStats
func (s *dashboardSvc) GetFailureStats(_ context.Context) ([]store.TypeCount, error) {
	return s.store.GetFailureStats(), nil
}

// GetMonthlyTrends implements DashboardService.GetMonthlyTrends
func (s *dashboardSvc) GetMonthlyTrends(_ context.Context) ([]store.MonthlyTrend, error) {
	return s.store.GetMonthlyTrends(), nil
}

// GetAlerts implements DashboardService.GetAlerts
func (s *dashboardSvc) GetAlerts(_ context.Context, includeInactive bool) ([]store.Alert, error) {
	if includeInactive {
		return s.store.GetAlerts(), nil
	}
	return s.store.GetActiveAlerts(), nil
}

// CreateAlert implements DashboardService.CreateAlert
func (s *dashboardSvc) CreateAlert(ctx context.Context, in store.AlertInput) (store.Alert, error) {
	if err := service.ValidateAlertInput(in); err != nil {
		return store.Alert{}, err
	}
	alert := s.store.CreateAlert(in)
	s.invalidate(ctx)
	return alert, nil
}

// DeactivateAlert implements DashboardService.DeactivateAlert
func (s *dashboardSvc) DeactivateAlert(ctx context.Context, id int) error {
	s.store.DeactivateAlert(id)
	s.invalidate(ctx)
	return nil
}

// normalizeFilter maps the dashboard's "all" sentinel to an empty filter
func normalizeFilter(value string) string {
	if value == service.AllFilter {
		return ""
	}
	return value
}
