// Package storage creates the components that hold dashboard data: the record store,
// the read cache in front of it and the alert publisher fed from it.
// They are created as a family so every consumer shares one store and one cache.
package storage

import (
	"context"
	"fmt"
	"log/slog"
	gosync "sync"

	"go.opentelemetry.io/otel/trace"

	"github.com/plantops/crane-dashboard/internal/cache"
	"github.com/plantops/crane-dashboard/internal/config"
	"github.com/plantops/crane-dashboard/internal/notify"
	"github.com/plantops/crane-dashboard/internal/service"
	"github.com/plantops/crane-dashboard/internal/service/cached"
	"github.com/plantops/crane-dashboard/internal/store"
)

//go:generate mockgen -destination=mocks/mock_factory.go -package=mocks -source=factory.go Factory

// Factory creates storage-dependent components as a family.
//
// Every Create method returns the same instance on repeated calls.
// Cleanup releases the cache and publisher connections.
type Factory interface {
	// CreateRecordStore returns the record store
	CreateRecordStore(ctx context.Context) (store.RecordStore, error)

	// CreateDashboardService returns the cached service over the record store
	CreateDashboardService(ctx context.Context) (service.DashboardService, error)

	// CreatePublisher returns the alert publisher
	CreatePublisher(ctx context.Context) (notify.Publisher, error)

	// Cleanup releases any resources held by this factory
	Cleanup()
}

// FactoryOption configures the default factory
type FactoryOption func(*MemoryFactory)

// WithTracerProvider sets the tracer provider used by the dashboard service
func WithTracerProvider(tp trace.TracerProvider) FactoryOption {
	return func(f *MemoryFactory) {
		f.tracerProvider = tp
	}
}

// WithReadCache overrides the cache selected by the configuration
func WithReadCache(c cache.Cache) FactoryOption {
	return func(f *MemoryFactory) {
		f.readCache = c
	}
}

// MemoryFactory keeps records in process memory behind the configured read cache
type MemoryFactory struct {
	config         *config.Config
	tracerProvider trace.TracerProvider

	mu        gosync.Mutex
	store     store.RecordStore
	readCache cache.Cache
	service   service.DashboardService
	publisher notify.Publisher
}

var _ Factory = (*MemoryFactory)(nil)

// NewStorageFactory creates the storage factory for cfg
func NewStorageFactory(ctx context.Context, cfg *config.Config, opts ...FactoryOption) (*MemoryFactory, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	f := &MemoryFactory{
		config: cfg,
		store:  store.NewMemoryStore(),
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.readCache == nil {
		readCache, err := cache.New(ctx, &cfg.Cache)
		if err != nil {
			return nil, fmt.Errorf("failed to create read cache: %w", err)
		}
		f.readCache = readCache
	}

	slog.Info("Created storage factory", "cache_type", cfg.Cache.GetCacheType())
	return f, nil
}

// CreateRecordStore implements Factory.CreateRecordStore
func (f *MemoryFactory) CreateRecordStore(_ context.Context) (store.RecordStore, error) {
	return f.store, nil
}

// CreateDashboardService implements Factory.CreateDashboardService
func (f *MemoryFactory) CreateDashboardService(_ context.Context) (service.DashboardService, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.service != nil {
		return f.service, nil
	}

	opts := []cached.Option{cached.WithTTL(f.config.Cache.GetTTL())}
	if f.tracerProvider != nil {
		opts = append(opts, cached.WithTracer(f.tracerProvider.Tracer(cached.ServiceTracerName)))
	}

	svc, err := cached.New(f.store, f.readCache, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create dashboard service: %w", err)
	}
	f.service = svc
	return svc, nil
}

// CreatePublisher implements Factory.CreatePublisher
func (f *MemoryFactory) CreatePublisher(_ context.Context) (notify.Publisher, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.publisher != nil {
		return f.publisher, nil
	}

	publisher, err := notify.New(&f.config.Notify)
	if err != nil {
		return nil, fmt.Errorf("failed to create alert publisher: %w", err)
	}
	f.publisher = publisher
	return publisher, nil
}

// Cleanup implements Factory.Cleanup
func (f *MemoryFactory) Cleanup() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.publisher != nil {
		f.publisher.Close()
		f.publisher = nil
	}
	if f.readCache != nil {
		if err := f.readCache.Close(); err != nil {
			slog.Warn("Failed to close read cache", "error", err)
		}
		f.readCache = nil
	}
}
