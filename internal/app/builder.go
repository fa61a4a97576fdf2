package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/netip"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/plantops/crane-dashboard/internal/api"
	"github.com/plantops/crane-dashboard/internal/app/storage"
	"github.com/plantops/crane-dashboard/internal/config"
	"github.com/plantops/crane-dashboard/internal/service"
	"github.com/plantops/crane-dashboard/internal/sources"
	pkgsync "github.com/plantops/crane-dashboard/internal/sync"
	"github.com/plantops/crane-dashboard/internal/sync/coordinator"
	"github.com/plantops/crane-dashboard/internal/telemetry"
)

const (
	defaultHTTPAddress    = ":8080"
	defaultRequestTimeout = 10 * time.Second
	defaultReadTimeout    = 10 * time.Second
	defaultWriteTimeout   = 15 * time.Second
	defaultIdleTimeout    = 60 * time.Second
)

// DashboardAppOptions is a function that configures the dashboard app builder
type DashboardAppOptions func(*dashboardAppConfig) error

// dashboardAppConfig collects what NewDashboardApp wires together.
// Component overrides are mostly used by tests.
type dashboardAppConfig struct {
	config *config.Config

	sourceHandler  sources.SourceHandler
	syncManager    pkgsync.Manager
	storageFactory storage.Factory

	// HTTP server options
	address        string
	middlewares    []func(http.Handler) http.Handler
	requestTimeout time.Duration
	readTimeout    time.Duration
	writeTimeout   time.Duration
	idleTimeout    time.Duration

	// Telemetry components
	meterProvider  metric.MeterProvider
	tracerProvider trace.TracerProvider
	metricsHandler http.Handler
}

func baseConfig(opts ...DashboardAppOptions) (*dashboardAppConfig, error) {
	cfg := &dashboardAppConfig{
		address:        defaultHTTPAddress,
		requestTimeout: defaultRequestTimeout,
		readTimeout:    defaultReadTimeout,
		writeTimeout:   defaultWriteTimeout,
		idleTimeout:    defaultIdleTimeout,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// NewDashboardApp wires the storage, sync and HTTP components into a runnable app
func NewDashboardApp(
	ctx context.Context,
	opts ...DashboardAppOptions,
) (*DashboardApp, error) {
	cfg, err := baseConfig(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build base configuration: %w", err)
	}
	if cfg.config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	if cfg.storageFactory == nil {
		var factoryOpts []storage.FactoryOption
		if cfg.tracerProvider != nil {
			factoryOpts = append(factoryOpts, storage.WithTracerProvider(cfg.tracerProvider))
		}
		cfg.storageFactory, err = storage.NewStorageFactory(ctx, cfg.config, factoryOpts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage factory: %w", err)
		}
	}

	// Ensure cleanup happens on error
	var cleanupNeeded = true
	defer func() {
		if cleanupNeeded && cfg.storageFactory != nil {
			cfg.storageFactory.Cleanup()
		}
	}()

	dashboardService, err := buildServiceComponents(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build service components: %w", err)
	}

	syncCoordinator, err := buildSyncComponents(ctx, cfg, dashboardService)
	if err != nil {
		return nil, fmt.Errorf("failed to build sync components: %w", err)
	}

	httpServer, err := buildHTTPServer(ctx, cfg, dashboardService, syncCoordinator)
	if err != nil {
		return nil, fmt.Errorf("failed to build HTTP server: %w", err)
	}

	appCtx, cancel := context.WithCancel(ctx)

	// From here on the app owns the factory
	cleanupNeeded = false

	factory := cfg.storageFactory
	cancelFunc := func() {
		factory.Cleanup()
		cancel()
	}

	return &DashboardApp{
		config: cfg.config,
		components: &AppComponents{
			SyncCoordinator:  syncCoordinator,
			SyncManager:      cfg.syncManager,
			DashboardService: dashboardService,
		},
		httpServer: httpServer,
		ctx:        appCtx,
		cancelFunc: cancelFunc,
	}, nil
}

// WithConfig sets the configuration
func WithConfig(c *config.Config) DashboardAppOptions {
	return func(cfg *dashboardAppConfig) error {
		cfg.config = c
		return nil
	}
}

// WithAddress sets the HTTP server address
func WithAddress(addr string) DashboardAppOptions {
	return func(cfg *dashboardAppConfig) error {
		if addr == "" {
			return fmt.Errorf("address cannot be empty")
		}

		host, port, found := strings.Cut(addr, ":")
		if !found || port == "" {
			return fmt.Errorf("address is not a valid port: %s", addr)
		}
		switch host {
		case "localhost":
			host = "127.0.0.1"
		case "":
			host = "0.0.0.0"
		}

		if _, err := netip.ParseAddrPort(host + ":" + port); err != nil {
			return fmt.Errorf("address is not a valid port: %w", err)
		}

		cfg.address = addr
		return nil
	}
}

// WithMiddlewares sets custom HTTP middlewares
func WithMiddlewares(mw ...func(http.Handler) http.Handler) DashboardAppOptions {
	return func(cfg *dashboardAppConfig) error {
		cfg.middlewares = mw
		return nil
	}
}

// WithSourceHandler allows injecting a custom spreadsheet source (for testing)
func WithSourceHandler(h sources.SourceHandler) DashboardAppOptions {
	return func(cfg *dashboardAppConfig) error {
		cfg.sourceHandler = h
		return nil
	}
}

// WithStorageFactory allows injecting a custom storage factory (for testing)
func WithStorageFactory(f storage.Factory) DashboardAppOptions {
	return func(cfg *dashboardAppConfig) error {
		cfg.storageFactory = f
		return nil
	}
}

// WithSyncManager allows injecting a custom sync manager (for testing)
func WithSyncManager(sm pkgsync.Manager) DashboardAppOptions {
	return func(cfg *dashboardAppConfig) error {
		cfg.syncManager = sm
		return nil
	}
}

// WithMeterProvider sets the OpenTelemetry meter provider for HTTP, sync and store metrics
func WithMeterProvider(mp metric.MeterProvider) DashboardAppOptions {
	return func(cfg *dashboardAppConfig) error {
		cfg.meterProvider = mp
		return nil
	}
}

// WithTracerProvider sets the OpenTelemetry tracer provider
func WithTracerProvider(tp trace.TracerProvider) DashboardAppOptions {
	return func(cfg *dashboardAppConfig) error {
		cfg.tracerProvider = tp
		return nil
	}
}

// WithMetricsHandler exposes h on /metrics
func WithMetricsHandler(h http.Handler) DashboardAppOptions {
	return func(cfg *dashboardAppConfig) error {
		cfg.metricsHandler = h
		return nil
	}
}

// WithTelemetry sets every telemetry option from an initialized Telemetry
func WithTelemetry(t *telemetry.Telemetry) DashboardAppOptions {
	return func(cfg *dashboardAppConfig) error {
		if t == nil {
			return nil
		}
		cfg.meterProvider = t.MeterProvider()
		cfg.tracerProvider = t.TracerProvider()
		cfg.metricsHandler = t.MetricsHandler()
		return nil
	}
}

// buildServiceComponents builds the dashboard service
func buildServiceComponents(
	ctx context.Context,
	b *dashboardAppConfig,
) (service.DashboardService, error) {
	slog.Info("Initializing service components")

	svc, err := b.storageFactory.CreateDashboardService(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create dashboard service: %w", err)
	}

	slog.Info("Service components initialized successfully")
	return svc, nil
}

// buildSyncComponents builds the sync manager and the coordinator driving it
func buildSyncComponents(
	ctx context.Context,
	b *dashboardAppConfig,
	svc service.DashboardService,
) (coordinator.Coordinator, error) {
	slog.Info("Initializing sync components")

	if b.syncManager == nil {
		manager, err := buildSyncManager(ctx, b, svc)
		if err != nil {
			return nil, err
		}
		b.syncManager = manager
	}

	var coordOpts []coordinator.Option

	if b.meterProvider != nil {
		syncMetrics, err := telemetry.NewSyncMetrics(b.meterProvider)
		if err != nil {
			return nil, fmt.Errorf("failed to create sync metrics: %w", err)
		}
		if syncMetrics != nil {
			coordOpts = append(coordOpts, coordinator.WithSyncMetrics(syncMetrics))
			slog.Info("Sync metrics enabled")
		}
	}
	if b.tracerProvider != nil {
		coordOpts = append(coordOpts,
			coordinator.WithTracer(b.tracerProvider.Tracer(coordinator.CoordinatorTracerName)))
	}
	if b.config.Sync.IngestOnSchedule {
		coordOpts = append(coordOpts,
			coordinator.WithScheduledIngest(b.syncManager, pkgsync.NewIngestRequest(&b.config.Source)))
		slog.Info("Scheduled ingestion enabled")
	}

	syncCoordinator := coordinator.New(svc, &b.config.Sync, coordOpts...)
	slog.Info("Sync components initialized successfully")

	return syncCoordinator, nil
}

func buildSyncManager(
	ctx context.Context,
	b *dashboardAppConfig,
	svc service.DashboardService,
) (pkgsync.Manager, error) {
	if b.sourceHandler == nil {
		handler, err := sources.NewSourceHandler(&b.config.Source)
		if err != nil {
			return nil, fmt.Errorf("failed to create source handler: %w", err)
		}
		b.sourceHandler = handler
	}

	recordStore, err := b.storageFactory.CreateRecordStore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create record store: %w", err)
	}

	publisher, err := b.storageFactory.CreatePublisher(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create alert publisher: %w", err)
	}

	managerOpts := []pkgsync.Option{pkgsync.WithPublisher(publisher)}
	if b.meterProvider != nil {
		storeMetrics, err := telemetry.NewStoreMetrics(b.meterProvider)
		if err != nil {
			return nil, fmt.Errorf("failed to create store metrics: %w", err)
		}
		if storeMetrics != nil {
			managerOpts = append(managerOpts, pkgsync.WithStoreMetrics(storeMetrics))
		}
	}
	if b.tracerProvider != nil {
		managerOpts = append(managerOpts,
			pkgsync.WithTracer(b.tracerProvider.Tracer(pkgsync.ManagerTracerName)))
	}

	manager, err := pkgsync.NewManager(b.sourceHandler, recordStore, svc, managerOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sync manager: %w", err)
	}
	return manager, nil
}

// buildHTTPServer builds the HTTP server with router and middleware
//
//nolint:unparam // we prefer having a similar interface
func buildHTTPServer(
	_ context.Context,
	b *dashboardAppConfig,
	svc service.DashboardService,
	syncCoordinator coordinator.Coordinator,
) (*http.Server, error) {
	slog.Info("Initializing HTTP server")

	if b.middlewares == nil {
		b.middlewares = []func(http.Handler) http.Handler{
			middleware.RequestID,
			middleware.RealIP,
			middleware.Recoverer,
			middleware.Timeout(b.requestTimeout),
			api.LoggingMiddleware,
		}
	}

	// Telemetry middlewares go first so they see every request
	var telemetryMiddlewares []func(http.Handler) http.Handler
	if b.tracerProvider != nil {
		telemetryMiddlewares = append(telemetryMiddlewares, telemetry.TracingMiddleware(b.tracerProvider))
	}
	if b.meterProvider != nil {
		metricsMiddleware, err := telemetry.MetricsMiddleware(b.meterProvider)
		if err != nil {
			return nil, fmt.Errorf("failed to create metrics middleware: %w", err)
		}
		if metricsMiddleware != nil {
			telemetryMiddlewares = append(telemetryMiddlewares, metricsMiddleware)
			slog.Info("HTTP metrics middleware enabled")
		}
	}
	middlewares := append(telemetryMiddlewares, b.middlewares...)

	router := api.NewServer(svc,
		api.WithMiddlewares(middlewares...),
		api.WithSyncManager(b.syncManager),
		api.WithCoordinator(syncCoordinator),
		api.WithMetricsHandler(b.metricsHandler),
	)

	server := &http.Server{
		Addr:         b.address,
		Handler:      router,
		ReadTimeout:  b.readTimeout,
		WriteTimeout: b.writeTimeout,
		IdleTimeout:  b.idleTimeout,
	}

	slog.Info("HTTP server configured", "address", b.address)
	return server, nil
}
